// Package textclean normalizes extracted document text before synthesis.
// Passes run in a fixed order; each one can be toggled independently.
package textclean

import (
	"regexp"
	"strings"
)

// Options selects which normalization passes run.
type Options struct {
	StripPageNumbers    bool `json:"strip_page_numbers"`
	StripURLs           bool `json:"strip_urls"`
	NormalizeBullets    bool `json:"normalize_bullets"`
	NormalizeQuotes     bool `json:"normalize_quotes"`
	NormalizeWhitespace bool `json:"normalize_whitespace"`
}

// AllPasses enables every pass.
func AllPasses() Options {
	return Options{
		StripPageNumbers:    true,
		StripURLs:           true,
		NormalizeBullets:    true,
		NormalizeQuotes:     true,
		NormalizeWhitespace: true,
	}
}

var (
	standalonePageNumberRe = regexp.MustCompile(`(?m)^\s*\d+\s*$`)
	pageLabelRe            = regexp.MustCompile(`(?i)Page\s+\d+(\s+of\s+\d+)?`)
	httpURLRe              = regexp.MustCompile(`https?://\S+`)
	wwwURLRe               = regexp.MustCompile(`www\.\S+`)
	bulletMarkerRe         = regexp.MustCompile(`(?m)^[\x{2022}\x{2023}\x{2043}\x{204C}\x{204D}\x{2219}\x{25CB}\x{25CF}\x{25C6}\x{25C7}\x{25A0}\x{25A1}\x{25AA}\x{25AB}]\s*`)
	multiSpaceRe           = regexp.MustCompile(` +`)
	multiNewlineRe         = regexp.MustCompile(`\n\s*\n+`)
)

// Clean applies the enabled passes in order: page numbers, URLs, bullets,
// quotes, whitespace. Whitespace runs last so earlier passes may leave
// blank residue behind.
func Clean(text string, opts Options) string {
	if text == "" {
		return ""
	}

	if opts.StripPageNumbers {
		text = StripPageNumbers(text)
	}
	if opts.StripURLs {
		text = StripURLs(text)
	}
	if opts.NormalizeBullets {
		text = NormalizeBullets(text)
	}
	if opts.NormalizeQuotes {
		text = NormalizeQuotes(text)
	}
	if opts.NormalizeWhitespace {
		text = NormalizeWhitespace(text)
	}

	return text
}

// StripPageNumbers removes standalone numeric lines and "Page X [of Y]"
// labels that PDF extraction leaves behind.
func StripPageNumbers(text string) string {
	text = standalonePageNumberRe.ReplaceAllString(text, "")
	return pageLabelRe.ReplaceAllString(text, "")
}

// StripURLs drops http(s) and www links; spoken URLs are noise.
func StripURLs(text string) string {
	text = httpURLRe.ReplaceAllString(text, "")
	return wwwURLRe.ReplaceAllString(text, "")
}

// NormalizeBullets replaces unicode list markers with a plain dash.
func NormalizeBullets(text string) string {
	return bulletMarkerRe.ReplaceAllString(text, "- ")
}

// NormalizeQuotes maps smart quotes to their ASCII forms.
func NormalizeQuotes(text string) string {
	replacer := strings.NewReplacer(
		"“", `"`, "”", `"`,
		"‘", "'", "’", "'",
	)
	return replacer.Replace(text)
}

// NormalizeWhitespace collapses runs of spaces and blank lines while
// preserving paragraph breaks, and trims each line.
func NormalizeWhitespace(text string) string {
	text = multiSpaceRe.ReplaceAllString(text, " ")
	text = multiNewlineRe.ReplaceAllString(text, "\n\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}
