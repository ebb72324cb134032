package domain

import "context"

// QuizGenerator defines the interface (port) for a single LLM completion.
// Implementations issue one request per call with no retries; a failed
// attempt is terminal for that prompt.
type QuizGenerator interface {
	// Generate sends the prompt to the inference endpoint and returns the
	// model's raw text output.
	Generate(ctx context.Context, prompt string) (string, error)
}

// TextExtractor defines the interface (port) for document text extraction.
// The filename is used only for extension sniffing; the path points at a
// request-scoped temporary copy of the upload.
type TextExtractor interface {
	Extract(path string, filename string) (string, error)
}
