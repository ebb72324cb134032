package extractor

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"quiz-ai/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeZipFixture creates a zip archive with the given member files.
func writeZipFixture(t *testing.T, name string, members map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for member, content := range members {
		w, err := zw.Create(member)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return path
}

func TestExtract_UnsupportedExtension(t *testing.T) {
	svc := NewService()

	for _, filename := range []string{"notes.txt", "data.xyz", "archive", "song.mp3"} {
		_, err := svc.Extract("/nonexistent", filename)
		require.Error(t, err, filename)

		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr, filename)
		assert.Equal(t, domain.CodeUnsupportedFormat, domainErr.Code, filename)
		assert.Equal(t, "Unsupported file type", domainErr.Message)
	}
}

func TestExtract_ExtensionIsCaseInsensitive(t *testing.T) {
	svc := NewService()
	path := writeZipFixture(t, "upper.docx", map[string]string{
		"word/document.xml": `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>Case test</w:t></w:r></w:p></w:body></w:document>`,
	})

	text, err := svc.Extract(path, "Upper.DOCX")
	require.NoError(t, err)
	assert.Contains(t, text, "Case test")
}

func TestExtract_Docx(t *testing.T) {
	svc := NewService()
	path := writeZipFixture(t, "lecture.docx", map[string]string{
		"[Content_Types].xml": `<Types/>`,
		"word/document.xml": `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
			<w:body>
				<w:p><w:r><w:t>Data mining extracts patterns.</w:t></w:r></w:p>
				<w:p><w:r><w:t>Clustering groups similar items.</w:t></w:r></w:p>
			</w:body>
		</w:document>`,
	})

	text, err := svc.Extract(path, "lecture.docx")
	require.NoError(t, err)
	assert.Contains(t, text, "Data mining extracts patterns.")
	assert.Contains(t, text, "Clustering groups similar items.")
}

func TestExtract_Pptx(t *testing.T) {
	svc := NewService()
	path := writeZipFixture(t, "slides.pptx", map[string]string{
		"ppt/slides/slide1.xml": `<p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
			<p:cSld><a:p><a:r><a:t>First slide text</a:t></a:r></a:p></p:cSld>
		</p:sld>`,
		"ppt/slides/slide2.xml": `<p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
			<p:cSld><a:p><a:r><a:t>Second slide text</a:t></a:r></a:p></p:cSld>
		</p:sld>`,
	})

	text, err := svc.Extract(path, "slides.pptx")
	require.NoError(t, err)
	assert.Contains(t, text, "First slide text")
	assert.Contains(t, text, "Second slide text")
}

func TestExtract_DocxWithoutBodyFails(t *testing.T) {
	svc := NewService()
	path := writeZipFixture(t, "empty.docx", map[string]string{
		"[Content_Types].xml": `<Types/>`,
	})

	_, err := svc.Extract(path, "empty.docx")
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeInternal, domainErr.Code)
}

func TestExtract_LegacyDocSalvagesText(t *testing.T) {
	svc := NewService()
	path := filepath.Join(t.TempDir(), "old.doc")

	var data []byte
	data = append(data, 0xD0, 0xCF, 0x11, 0xE0) // OLE magic-ish noise
	data = append(data, []byte("Regression predicts numerical values.")...)
	data = append(data, 0x00, 0x01, 0x02)
	data = append(data, []byte("Classification assigns labels.")...)
	data = append(data, 0x00)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	text, err := svc.Extract(path, "old.doc")
	require.NoError(t, err)
	assert.Contains(t, text, "Regression predicts numerical values.")
	assert.Contains(t, text, "Classification assigns labels.")
}

func TestExtract_CorruptPDFFails(t *testing.T) {
	svc := NewService()
	path := filepath.Join(t.TempDir(), "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("this is not a pdf"), 0o644))

	_, err := svc.Extract(path, "broken.pdf")
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeInternal, domainErr.Code)
}
