package usecase

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainDocument "github.com/voicebook/voicebook/domains/document"
	pkgError "github.com/voicebook/voicebook/pkg/error"
)

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		filename string
		want     domainDocument.Format
	}{
		{"notes.txt", domainDocument.FormatTXT},
		{"README.md", domainDocument.FormatMarkdown},
		{"guide.markdown", domainDocument.FormatMarkdown},
		{"page.html", domainDocument.FormatHTML},
		{"page.HTM", domainDocument.FormatHTML},
		{"paper.pdf", domainDocument.FormatPDF},
		{"report.docx", domainDocument.FormatDOCX},
		{"archive.zip", domainDocument.FormatUnsupported},
		{"noextension", domainDocument.FormatUnsupported},
	}
	for _, tc := range tests {
		t.Run(tc.filename, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectFormat(tc.filename))
		})
	}
}

func TestIsFormatSupported(t *testing.T) {
	svc := NewDocumentService()

	assert.True(t, svc.IsFormatSupported(".txt"))
	assert.True(t, svc.IsFormatSupported("pdf"))
	assert.True(t, svc.IsFormatSupported(".DOCX"))
	assert.False(t, svc.IsFormatSupported(".exe"))
	assert.False(t, svc.IsFormatSupported(""))
}

func TestParseTXT(t *testing.T) {
	svc := NewDocumentService()

	path := writeTestFile(t, "plain.txt", "Hello world.\nSecond line.")
	result, err := svc.Parse(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Hello world.\nSecond line.", result.Text)
	assert.Equal(t, "txt", result.Format)
}

func TestParseTXTLatin1Fallback(t *testing.T) {
	svc := NewDocumentService()

	// 0xE9 is é in latin-1 and invalid as a standalone UTF-8 byte.
	path := filepath.Join(t.TempDir(), "legacy.txt")
	require.NoError(t, os.WriteFile(path, []byte{'c', 'a', 'f', 0xE9}, 0644))

	result, err := svc.Parse(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "café", result.Text)
}

func TestParseMarkdownStripsSyntax(t *testing.T) {
	svc := NewDocumentService()

	md := "# Title\n\nSome **bold** and *italic* text with a [link](https://example.com).\n\n" +
		"```go\nfmt.Println(\"skipped\")\n```\n\n" +
		"![diagram](img.png) and `inline code` end."
	path := writeTestFile(t, "doc.md", md)

	result, err := svc.Parse(context.Background(), path)
	require.NoError(t, err)
	assert.Contains(t, result.Text, "Title")
	assert.Contains(t, result.Text, "Some bold and italic text with a link.")
	assert.Contains(t, result.Text, "diagram and inline code end.")
	assert.NotContains(t, result.Text, "```")
	assert.NotContains(t, result.Text, "fmt.Println")
	assert.NotContains(t, result.Text, "https://example.com")
	assert.Equal(t, "markdown", result.Format)
}

func TestParseHTMLExtractsContent(t *testing.T) {
	svc := NewDocumentService()

	html := `<html><head><style>body { color: red; }</style>
		<script>alert("never spoken")</script></head>
		<body><h1>Heading</h1><p>First paragraph.</p><ul><li>Item one</li></ul></body></html>`
	path := writeTestFile(t, "page.html", html)

	result, err := svc.Parse(context.Background(), path)
	require.NoError(t, err)
	assert.Contains(t, result.Text, "Heading")
	assert.Contains(t, result.Text, "First paragraph.")
	assert.Contains(t, result.Text, "Item one")
	assert.NotContains(t, result.Text, "alert")
	assert.NotContains(t, result.Text, "color: red")
}

func TestParseDOCX(t *testing.T) {
	svc := NewDocumentService()

	path := filepath.Join(t.TempDir(), "report.docx")
	writeMinimalDOCX(t, path, []string{"First paragraph.", "Second paragraph."})

	result, err := svc.Parse(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "First paragraph.\n\nSecond paragraph.", result.Text)
	assert.Equal(t, "docx", result.Format)
}

func TestParseErrors(t *testing.T) {
	svc := NewDocumentService()
	ctx := context.Background()

	t.Run("missing file", func(t *testing.T) {
		_, err := svc.Parse(ctx, filepath.Join(t.TempDir(), "nope.txt"))
		require.Error(t, err)
		assert.IsType(t, pkgError.ParseError(""), err)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeTestFile(t, "binary.bin", "data")
		_, err := svc.Parse(ctx, path)
		require.Error(t, err)
		assert.IsType(t, pkgError.ParseError(""), err)
	})

	t.Run("empty document", func(t *testing.T) {
		path := writeTestFile(t, "empty.txt", "   \n\t  ")
		_, err := svc.Parse(ctx, path)
		require.Error(t, err)
		assert.IsType(t, pkgError.ParseError(""), err)
	})

	t.Run("docx without document xml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.docx")
		f, err := os.Create(path)
		require.NoError(t, err)
		zw := zip.NewWriter(f)
		require.NoError(t, zw.Close())
		require.NoError(t, f.Close())

		_, err = svc.Parse(ctx, path)
		require.Error(t, err)
		assert.IsType(t, pkgError.ParseError(""), err)
	})
}

func writeMinimalDOCX(t *testing.T, path string, paragraphs []string) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	doc, err := zw.Create("word/document.xml")
	require.NoError(t, err)

	body := `<?xml version="1.0" encoding="UTF-8"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`
	for _, p := range paragraphs {
		body += `<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`
	}
	body += `</w:body></w:document>`

	_, err = doc.Write([]byte(body))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
}
