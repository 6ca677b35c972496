package extract

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeBytes(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestTextUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeBytes(t, dir, "archive.zip", []byte("whatever"))

	assert.Equal(t, "", Text(path))
	assert.Equal(t, "", Text("missing.exe"))
	assert.Equal(t, "", Text("no-extension"))
	assert.Equal(t, "", Text(""))
}

func TestTextMissingFile(t *testing.T) {
	assert.Equal(t, "", Text("/does/not/exist/notes.txt"))
	assert.Equal(t, "", Text("/does/not/exist/report.pdf"))
}

func TestPlainText(t *testing.T) {
	dir := t.TempDir()

	path := writeBytes(t, dir, "notes.txt", []byte("hello plain text"))
	assert.Equal(t, "hello plain text", Text(path))

	path = writeBytes(t, dir, "readme.md", []byte("# heading\nbody"))
	assert.Equal(t, "# heading\nbody", Text(path))
}

func TestPlainTextStripsBOM(t *testing.T) {
	dir := t.TempDir()
	path := writeBytes(t, dir, "bom.txt", []byte{0xEF, 0xBB, 0xBF, 'h', 'i'})
	assert.Equal(t, "hi", Text(path))
}

func TestPlainTextReplacesInvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	path := writeBytes(t, dir, "mangled.txt", []byte{'o', 'k', 0xFF, 0xFE, '!'})

	got := Text(path)
	assert.NotEmpty(t, got)
	assert.Contains(t, got, "ok")
	assert.Contains(t, got, "!")
}

func TestMalformedDocumentsYieldEmpty(t *testing.T) {
	dir := t.TempDir()
	garbage := []byte("definitely not a valid document body")

	for _, name := range []string{"bad.pdf", "bad.docx", "bad.pptx", "bad.xlsx", "bad.xls"} {
		path := writeBytes(t, dir, name, garbage)
		assert.Equal(t, "", Text(path), "%s must degrade to empty text", name)
	}
}

func TestSheetText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grades.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "registrar"))
	require.NoError(t, f.SetCellValue("Sheet1", "C2", "capstone project"))
	require.NoError(t, f.SetCellValue("Sheet1", "B4", 42))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	got := Text(path)
	assert.Contains(t, got, "registrar")
	assert.Contains(t, got, "capstone project")
	assert.Contains(t, got, "42")
}

func writeZip(t *testing.T, path string, parts map[string]string) {
	t.Helper()
	out, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(out)
	for name, body := range parts {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, out.Close())
}

func TestDocxText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.docx")

	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>first paragraph</w:t></w:r></w:p>
    <w:p><w:r><w:t>second </w:t></w:r><w:r><w:t>paragraph</w:t></w:r></w:p>
  </w:body>
</w:document>`
	writeZip(t, path, map[string]string{"word/document.xml": document})

	assert.Equal(t, "first paragraph\nsecond paragraph", Text(path))
}

func TestDocxWithoutDocumentPart(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.docx")
	writeZip(t, path, map[string]string{"other.xml": "<x/>"})

	assert.Equal(t, "", Text(path))
}

func TestPptxText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.pptx")

	slide := func(title, body string) string {
		return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"
       xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
  <p:cSld><p:spTree>
    <p:sp><p:txBody><a:p><a:r><a:t>` + title + `</a:t></a:r></a:p></p:txBody></p:sp>
    <p:sp><p:txBody><a:p><a:r><a:t>` + body + `</a:t></a:r></a:p></p:txBody></p:sp>
  </p:spTree></p:cSld>
</p:sld>`
	}
	writeZip(t, path, map[string]string{
		"ppt/slides/slide2.xml": slide("slide two title", "slide two body"),
		"ppt/slides/slide1.xml": slide("slide one title", "slide one body"),
	})

	got := Text(path)
	assert.Equal(t,
		"slide one title\nslide one body\nslide two title\nslide two body",
		got, "slides must be visited in numeric order, one shape per line")
}

func TestTextExtensionCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	path := writeBytes(t, dir, "NOTES.TXT", []byte("upper case extension"))
	assert.Equal(t, "upper case extension", Text(path))
}
