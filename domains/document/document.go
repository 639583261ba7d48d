package document

import "context"

// Format is the closed set of document types the parser understands. An
// unrecognized extension maps to FormatUnsupported instead of falling
// through on a raw extension string.
type Format int

const (
	FormatUnsupported Format = iota
	FormatTXT
	FormatMarkdown
	FormatHTML
	FormatPDF
	FormatDOCX
)

func (f Format) String() string {
	switch f {
	case FormatTXT:
		return "txt"
	case FormatMarkdown:
		return "markdown"
	case FormatHTML:
		return "html"
	case FormatPDF:
		return "pdf"
	case FormatDOCX:
		return "docx"
	default:
		return "unsupported"
	}
}

type ParseResult struct {
	Text   string `json:"text"`
	Format string `json:"format"`
}

type IDocumentUsecase interface {
	Parse(ctx context.Context, filePath string) (ParseResult, error)
	IsFormatSupported(ext string) bool
	SupportedFormats() []string
}
