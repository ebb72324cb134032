package extractor

import (
	"bytes"

	"github.com/ledongthuc/pdf"
)

// pdfExtractor reads the text layer of a PDF. Scanned documents without a
// text layer yield an empty string, which the caller treats as
// EMPTY_CONTENT.
type pdfExtractor struct{}

func (pdfExtractor) Extract(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		return "", err
	}
	return buf.String(), nil
}
