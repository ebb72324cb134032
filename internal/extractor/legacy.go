package extractor

import (
	"os"
	"strings"
	"unicode"
	"unicode/utf16"
)

// Legacy .doc and .ppt files are OLE compound documents. Full parsing of
// that container is out of scope here; instead the extractor salvages
// readable runs from the raw bytes, which recovers the body text of
// typical Word/PowerPoint binaries well enough for prompt building.

// minRunLength filters out field codes and binary noise.
const minRunLength = 4

type legacyExtractor struct{}

func (legacyExtractor) Extract(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	ascii := printableRuns(data)
	utf := printableRuns(decodeUTF16LE(data))
	if len(utf) > len(ascii) {
		return utf, nil
	}
	return ascii, nil
}

// printableRuns joins maximal runs of printable characters of at least
// minRunLength, separated by newlines.
func printableRuns(data []byte) string {
	var sb strings.Builder
	var run []rune

	flush := func() {
		if len(run) >= minRunLength {
			sb.WriteString(strings.TrimSpace(string(run)))
			sb.WriteString("\n")
		}
		run = run[:0]
	}

	for _, r := range string(data) {
		if r == '\t' || r == ' ' || unicode.IsPrint(r) && r != unicode.ReplacementChar {
			run = append(run, r)
		} else {
			flush()
		}
	}
	flush()
	return sb.String()
}

// decodeUTF16LE reinterprets the bytes as little-endian UTF-16, which is
// how Word stores body text in most .doc files.
func decodeUTF16LE(data []byte) []byte {
	if len(data) < 2 {
		return nil
	}
	u := make([]uint16, 0, len(data)/2)
	for i := 0; i+1 < len(data); i += 2 {
		u = append(u, uint16(data[i])|uint16(data[i+1])<<8)
	}
	return []byte(string(utf16.Decode(u)))
}
