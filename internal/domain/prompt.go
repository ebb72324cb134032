package domain

import "fmt"

// Prompt builders are pure: they embed the extracted text, the requested
// question count and the source filename into an instruction string with
// the output schema shown as a literal example. The schema is enforced
// after the fact by Question.Validate, not by the model.

// BuildMCQPrompt renders the multiple-choice generation prompt.
func BuildMCQPrompt(text string, count int, filename string) string {
	return fmt.Sprintf(`
Generate exactly %d Multiple Choice Questions.
Return JSON ONLY. No explanations. No markdown.

Rules:
- Answer must contain the FULL correct option text
- Follow the structure EXACTLY

Expected JSON format (example with 2 questions):

{
  "file_name": "%s",
  "question_type": "Multiple Choice",
  "questions": [
    {
      "question": "What is the main goal of Data Mining?",
      "options": [
        "A) Extracting useful knowledge from data",
        "B) Storing large datasets",
        "C) Designing databases",
        "D) Visualizing data only"
      ],
      "answer": "A) Extracting useful knowledge from data"
    },
    {
      "question": "Which task predicts numerical values?",
      "options": [
        "A) Classification",
        "B) Clustering",
        "C) Regression",
        "D) Association Rule Mining"
      ],
      "answer": "C) Regression"
    }
  ]
}

Content:
%s
`, count, filename, text)
}

// BuildTFPrompt renders the true/false generation prompt.
func BuildTFPrompt(text string, count int, filename string) string {
	return fmt.Sprintf(`
Generate exactly %d True or False Questions.
Return JSON ONLY. No explanations. No markdown.

Rules:
- Follow the structure EXACTLY
- Each question has only "question" and "answer" fields

Expected JSON format (example with 2 questions):

{
  "file_name": "%s",
  "question_type": "True or False",
  "questions": [
    {
      "question": "Clustering groups data without predefined labels.",
      "answer": "True"
    },
    {
      "question": "Regression is used for categorical outputs.",
      "answer": "False"
    }
  ]
}

Content:
%s
`, count, filename, text)
}

// BuildPrompt dispatches to the builder for the given quiz type.
func BuildPrompt(quizType QuizType, text string, count int, filename string) string {
	if quizType == TypeTrueFalse {
		return BuildTFPrompt(text, count, filename)
	}
	return BuildMCQPrompt(text, count, filename)
}
