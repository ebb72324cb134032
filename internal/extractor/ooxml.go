package extractor

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strings"
)

// OOXML documents are zip archives of XML parts. DOCX keeps its body in
// word/document.xml with runs in <w:t> elements; PPTX keeps one XML part
// per slide with runs in <a:t> elements. Both are walked with a streaming
// token decoder, collecting character data inside text elements and
// breaking lines at paragraph boundaries.

type ooxmlKind int

const (
	kindDocx ooxmlKind = iota
	kindPptx
)

type ooxmlExtractor struct {
	kind ooxmlKind
}

func (e ooxmlExtractor) Extract(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("not a valid OOXML archive: %w", err)
	}
	defer zr.Close()

	parts, err := e.textParts(&zr.Reader)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, f := range parts {
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		text, err := collectXMLText(rc)
		rc.Close()
		if err != nil {
			return "", err
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// textParts returns the archive members carrying document text, slides
// ordered by their number.
func (e ooxmlExtractor) textParts(zr *zip.Reader) ([]*zip.File, error) {
	var parts []*zip.File
	for _, f := range zr.File {
		switch e.kind {
		case kindDocx:
			if f.Name == "word/document.xml" {
				parts = append(parts, f)
			}
		case kindPptx:
			if strings.HasPrefix(f.Name, "ppt/slides/slide") && strings.HasSuffix(f.Name, ".xml") {
				parts = append(parts, f)
			}
		}
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("archive has no document body")
	}
	sort.Slice(parts, func(i, j int) bool { return parts[i].Name < parts[j].Name })
	return parts, nil
}

// collectXMLText gathers character data inside <w:t>/<a:t> elements and
// emits a newline when a paragraph element closes.
func collectXMLText(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	var sb strings.Builder
	inText := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			if t.Name.Local == "t" {
				inText = false
			}
			if t.Name.Local == "p" {
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}
	return sb.String(), nil
}
