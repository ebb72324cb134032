package validation

import (
	"quiz-ai/internal/domain"
)

// maxQuestionCount bounds a single generation request.
const maxQuestionCount = 100

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateQuizType validates the quiz_type query parameter. An empty value
// defaults to MCQ, matching the original endpoint's default.
func (v *Validator) ValidateQuizType(raw string) (domain.QuizType, error) {
	if raw == "" {
		return domain.TypeMCQ, nil
	}
	return domain.ParseQuizType(raw)
}

// ValidateCount validates a question-count query parameter. An empty value
// falls back to the given default; zero is allowed (that type is skipped).
func (v *Validator) ValidateCount(name, raw string, defaultCount int) (int, error) {
	if raw == "" {
		return defaultCount, nil
	}
	count, err := parseCount(raw)
	if err != nil {
		return 0, domain.NewValidationError(name + " must be a non-negative integer")
	}
	return count, nil
}

// parseCount parses a count parameter, rejecting signs and junk.
func parseCount(raw string) (int, error) {
	count := 0
	for _, char := range raw {
		if char < '0' || char > '9' {
			return 0, domain.NewValidationError("count must be a number")
		}
		count = count*10 + int(char-'0')
		if count > maxQuestionCount {
			return 0, domain.NewValidationError("count exceeds maximum value")
		}
	}
	return count, nil
}
