package domain

import (
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal   ErrorCode = "INTERNAL_ERROR"
	CodeValidation ErrorCode = "VALIDATION_ERROR"

	// Extraction errors
	CodeUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	CodeEmptyContent      ErrorCode = "EMPTY_CONTENT"

	// Generation errors
	CodeLLMServiceError      ErrorCode = "LLM_SERVICE_ERROR"
	CodeInvalidLLMResponse   ErrorCode = "INVALID_LLM_RESPONSE"
	CodeInvalidGeneratedJSON ErrorCode = "INVALID_GENERATED_JSON"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper constructors for the error taxonomy

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewValidationError(message string) *DomainError {
	return NewError(CodeValidation, message, nil)
}

func NewUnsupportedFormatError() *DomainError {
	return NewError(CodeUnsupportedFormat, "Unsupported file type", nil)
}

func NewEmptyContentError() *DomainError {
	return NewError(CodeEmptyContent, "No text found in file", nil)
}

func NewLLMServiceError(cause error) *DomainError {
	return NewError(CodeLLMServiceError, fmt.Sprintf("AI model unreachable: %v", cause), cause)
}

func NewInvalidLLMResponseError(cause error) *DomainError {
	return NewError(CodeInvalidLLMResponse, "Invalid response from AI model", cause)
}

func NewInvalidGeneratedJSONError(quizType QuizType, cause error) *DomainError {
	return NewError(CodeInvalidGeneratedJSON, fmt.Sprintf("AI returned invalid JSON for %s", quizType), cause)
}
