// Package extractor turns uploaded documents into plain text. The gateway
// sniffs the extension of the declared filename and dispatches to a
// format-specific extractor; the upload itself is only ever read.
package extractor

import (
	"path/filepath"
	"strings"

	"quiz-ai/internal/domain"
	"quiz-ai/internal/logger"

	"go.uber.org/zap"
)

// formatExtractor extracts text from one concrete document format.
type formatExtractor interface {
	Extract(path string) (string, error)
}

// Service implements domain.TextExtractor.
type Service struct {
	formats map[string]formatExtractor
}

// NewService builds the gateway with all supported formats registered.
func NewService() *Service {
	return &Service{
		formats: map[string]formatExtractor{
			".pdf":  pdfExtractor{},
			".docx": ooxmlExtractor{kind: kindDocx},
			".pptx": ooxmlExtractor{kind: kindPptx},
			".doc":  legacyExtractor{},
			".ppt":  legacyExtractor{},
		},
	}
}

// Extract returns the document's plain text. Unrecognized extensions fail
// with UNSUPPORTED_FORMAT before the file is opened.
func (s *Service) Extract(path string, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	fe, ok := s.formats[ext]
	if !ok {
		return "", domain.NewUnsupportedFormatError()
	}

	text, err := fe.Extract(path)
	if err != nil {
		logger.Get().Error("Text extraction failed",
			zap.String("filename", filename),
			zap.String("extension", ext),
			zap.Error(err),
		)
		return "", domain.NewInternalError("Failed to extract text from file", err)
	}

	return text, nil
}

// SupportedExtensions lists the extensions the gateway dispatches on.
func (s *Service) SupportedExtensions() []string {
	return []string{".pdf", ".docx", ".doc", ".pptx", ".ppt"}
}

// Static assertion to ensure Service implements TextExtractor
var _ domain.TextExtractor = (*Service)(nil)
