package dto

import (
	"encoding/json"

	"quiz-ai/internal/domain"
)

// ExtractTextResponse is the body returned by POST /extract_text.
type ExtractTextResponse struct {
	Filename string `json:"filename"`
	Text     string `json:"text"`
}

// GenerateQuizResponse is the body returned by POST /generate_quiz.
// Output is either the parsed document the model produced or a list
// containing a single error object when generation failed.
type GenerateQuizResponse struct {
	Document     string          `json:"document"`
	QuestionType string          `json:"question_type"`
	Output       json.RawMessage `json:"output"`
}

// GenerationError is the error marker embedded in GenerateQuizResponse.Output.
type GenerationError struct {
	Error string `json:"error"`
}

// QuizQuestions groups generated questions by type. Both keys are always
// present in the response, even when a type was not requested or returned
// nothing.
type QuizQuestions struct {
	MultipleChoice []domain.Question `json:"multiple_choice"`
	TrueFalse      []domain.Question `json:"true_false"`
}

// QuizSummary reflects the requested counts, not how many questions the
// model actually returned.
type QuizSummary struct {
	MCQCount       int `json:"mcq_count"`
	TFCount        int `json:"tf_count"`
	TotalQuestions int `json:"total_questions"`
}

// QuizSetResponse is the body returned by POST /ask_ai_model.
type QuizSetResponse struct {
	Filename  string        `json:"filename"`
	Questions QuizQuestions `json:"questions"`
	Summary   QuizSummary   `json:"summary"`
}

// NewQuizSetResponse builds an empty response document with both question
// lists present and the summary filled from the requested counts.
func NewQuizSetResponse(filename string, mcqCount, tfCount int) *QuizSetResponse {
	return &QuizSetResponse{
		Filename: filename,
		Questions: QuizQuestions{
			MultipleChoice: []domain.Question{},
			TrueFalse:      []domain.Question{},
		},
		Summary: QuizSummary{
			MCQCount:       mcqCount,
			TFCount:        tfCount,
			TotalQuestions: mcqCount + tfCount,
		},
	}
}

// ErrorResponse represents an error in the API response. The single
// "detail" field is the boundary contract for every non-2xx body.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
