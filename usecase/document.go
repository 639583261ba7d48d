package usecase

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"

	domainDocument "github.com/voicebook/voicebook/domains/document"
	pkgError "github.com/voicebook/voicebook/pkg/error"
)

type documentService struct{}

func NewDocumentService() domainDocument.IDocumentUsecase {
	return &documentService{}
}

var formatByExt = map[string]domainDocument.Format{
	".txt":      domainDocument.FormatTXT,
	".md":       domainDocument.FormatMarkdown,
	".markdown": domainDocument.FormatMarkdown,
	".html":     domainDocument.FormatHTML,
	".htm":      domainDocument.FormatHTML,
	".pdf":      domainDocument.FormatPDF,
	".docx":     domainDocument.FormatDOCX,
}

// DetectFormat maps a filename to the closed format set.
func DetectFormat(filename string) domainDocument.Format {
	ext := strings.ToLower(filepath.Ext(filename))
	if format, ok := formatByExt[ext]; ok {
		return format
	}
	return domainDocument.FormatUnsupported
}

func (s *documentService) IsFormatSupported(ext string) bool {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	_, ok := formatByExt[strings.ToLower(ext)]
	return ok
}

func (s *documentService) SupportedFormats() []string {
	return []string{".txt", ".md", ".markdown", ".html", ".htm", ".pdf", ".docx"}
}

func (s *documentService) Parse(ctx context.Context, filePath string) (domainDocument.ParseResult, error) {
	if _, err := os.Stat(filePath); err != nil {
		return domainDocument.ParseResult{}, pkgError.ParseError("file does not exist: " + filepath.Base(filePath))
	}

	format := DetectFormat(filePath)

	var (
		text string
		err  error
	)
	switch format {
	case domainDocument.FormatTXT:
		text, err = parseTXT(filePath)
	case domainDocument.FormatMarkdown:
		text, err = parseMarkdown(filePath)
	case domainDocument.FormatHTML:
		text, err = parseHTML(filePath)
	case domainDocument.FormatPDF:
		text, err = parsePDF(filePath)
	case domainDocument.FormatDOCX:
		text, err = parseDOCX(filePath)
	default:
		return domainDocument.ParseResult{}, pkgError.ParseError("unsupported file format: " + filepath.Ext(filePath))
	}
	if err != nil {
		return domainDocument.ParseResult{}, err
	}

	if strings.TrimSpace(text) == "" {
		return domainDocument.ParseResult{}, pkgError.ParseError("no text could be extracted from the document")
	}

	return domainDocument.ParseResult{Text: text, Format: format.String()}, nil
}

func parseTXT(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", pkgError.ParseError("failed to read text file: " + err.Error())
	}
	if utf8.Valid(data) {
		return string(data), nil
	}

	// Latin-1 fallback: every byte maps 1:1 onto a code point.
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes), nil
}

var (
	mdCodeFenceRe = regexp.MustCompile("(?s)```.*?```")
	mdImageRe     = regexp.MustCompile(`!\[([^\]]*)\]\([^)]*\)`)
	mdLinkRe      = regexp.MustCompile(`\[([^\]]+)\]\([^)]*\)`)
	mdHeadingRe   = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	mdEmphasisRe  = regexp.MustCompile(`(\*{1,3}|_{1,3}|~~)`)
	mdInlineCode  = regexp.MustCompile("`([^`]*)`")
)

// parseMarkdown strips markdown syntax down to readable prose; the TTS voice
// should not speak asterisks and link targets.
func parseMarkdown(filePath string) (string, error) {
	text, err := parseTXT(filePath)
	if err != nil {
		return "", err
	}

	text = mdCodeFenceRe.ReplaceAllString(text, "")
	text = mdImageRe.ReplaceAllString(text, "$1")
	text = mdLinkRe.ReplaceAllString(text, "$1")
	text = mdInlineCode.ReplaceAllString(text, "$1")
	text = mdHeadingRe.ReplaceAllString(text, "")
	text = mdEmphasisRe.ReplaceAllString(text, "")

	return text, nil
}

func parseHTML(filePath string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", pkgError.ParseError("failed to open html file: " + err.Error())
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return "", pkgError.ParseError("failed to parse html: " + err.Error())
	}

	doc.Find("script, style, noscript").Remove()

	var parts []string
	doc.Find("h1, h2, h3, h4, h5, h6, p, li, blockquote, td").Each(func(_ int, sel *goquery.Selection) {
		if t := strings.TrimSpace(sel.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	if len(parts) == 0 {
		// No block structure; take the whole body text.
		return strings.TrimSpace(doc.Find("body").Text()), nil
	}

	return strings.Join(parts, "\n\n"), nil
}

func parsePDF(filePath string) (string, error) {
	f, reader, err := pdf.Open(filePath)
	if err != nil {
		return "", pkgError.ParseError("failed to parse pdf: " + err.Error())
	}
	defer f.Close()

	content, err := reader.GetPlainText()
	if err != nil {
		return "", pkgError.ParseError("failed to extract pdf text: " + err.Error())
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, content); err != nil {
		return "", pkgError.ParseError("failed to read pdf text: " + err.Error())
	}

	return buf.String(), nil
}

// docx paragraph/text nodes from word/document.xml. Only w:t character data
// matters; everything else in the WordprocessingML schema is layout.
func parseDOCX(filePath string) (string, error) {
	archive, err := zip.OpenReader(filePath)
	if err != nil {
		return "", pkgError.ParseError("failed to open docx archive: " + err.Error())
	}
	defer archive.Close()

	var docXML io.ReadCloser
	for _, file := range archive.File {
		if file.Name == "word/document.xml" {
			docXML, err = file.Open()
			if err != nil {
				return "", pkgError.ParseError("failed to read docx document: " + err.Error())
			}
			break
		}
	}
	if docXML == nil {
		return "", pkgError.ParseError("docx archive has no word/document.xml")
	}
	defer docXML.Close()

	var (
		paragraphs []string
		current    strings.Builder
		inText     bool
	)

	decoder := xml.NewDecoder(docXML)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", pkgError.ParseError("malformed docx document: " + err.Error())
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if p := strings.TrimSpace(current.String()); p != "" {
					paragraphs = append(paragraphs, p)
				}
				current.Reset()
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}
	if p := strings.TrimSpace(current.String()); p != "" {
		paragraphs = append(paragraphs, p)
	}

	return strings.Join(paragraphs, "\n\n"), nil
}
