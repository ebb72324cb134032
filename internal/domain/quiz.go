package domain

import (
	"encoding/json"
	"strings"
)

// QuizType distinguishes the kinds of questions the service can generate.
type QuizType string

const (
	TypeMCQ       QuizType = "mcq"
	TypeTrueFalse QuizType = "tf"
)

// ParseQuizType validates a quiz type coming from the request boundary.
func ParseQuizType(s string) (QuizType, error) {
	switch QuizType(s) {
	case TypeMCQ, TypeTrueFalse:
		return QuizType(s), nil
	default:
		return "", NewValidationError("quiz_type must be one of: mcq, tf")
	}
}

// MCQOptionCount is the number of labeled options an MCQ question carries.
const MCQOptionCount = 4

// Question is a single generated question as the model returned it.
// Options is empty for true/false questions. Fields are passed through
// to the caller exactly as received; unknown keys in the model output are
// ignored by the JSON decoder.
type Question struct {
	Question string   `json:"question"`
	Options  []string `json:"options,omitempty"`
	Answer   string   `json:"answer"`
}

// Validate checks that the question is complete for the given quiz type.
func (q *Question) Validate(quizType QuizType) error {
	if strings.TrimSpace(q.Question) == "" {
		return NewValidationError("question text is empty")
	}
	switch quizType {
	case TypeMCQ:
		if len(q.Options) != MCQOptionCount {
			return NewValidationError("mcq question must have exactly 4 options")
		}
		for _, opt := range q.Options {
			if q.Answer == opt {
				return nil
			}
		}
		return NewValidationError("mcq answer does not match any option")
	case TypeTrueFalse:
		if len(q.Options) != 0 {
			return NewValidationError("true/false question must not have options")
		}
		if q.Answer != "True" && q.Answer != "False" {
			return NewValidationError(`true/false answer must be "True" or "False"`)
		}
		return nil
	default:
		return NewValidationError("unknown quiz type")
	}
}

// QuestionSet is the parsed, validated result of one generation call.
type QuestionSet struct {
	Type      QuizType
	Questions []Question
}

// GeneratedDocument is the top-level shape the model is instructed to
// return for a single quiz type.
type GeneratedDocument struct {
	FileName     string     `json:"file_name"`
	QuestionType string     `json:"question_type"`
	Questions    []Question `json:"questions"`
}

// ParseGeneratedDocument parses the model's free-text output as JSON.
// Markdown code fences are stripped first since models frequently wrap
// the payload even when told not to; anything that still fails to parse
// is the caller's error to classify.
func ParseGeneratedDocument(raw string) (*GeneratedDocument, error) {
	cleaned := StripCodeFences(raw)
	var doc GeneratedDocument
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// StripCodeFences removes a surrounding markdown code fence, if any,
// and trims whitespace.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	if idx := strings.LastIndex(s, "```"); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
