package textclean

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripPageNumbers(t *testing.T) {
	input := "First paragraph.\n42\nSecond paragraph.\nPage 3 of 10\nThird."
	got := StripPageNumbers(input)

	assert.NotContains(t, got, "42")
	assert.NotContains(t, got, "Page 3 of 10")
	assert.Contains(t, got, "First paragraph.")
	assert.Contains(t, got, "Third.")
}

func TestStripPageNumbersKeepsInlineNumbers(t *testing.T) {
	input := "Chapter 7 covers 42 topics."
	assert.Equal(t, input, StripPageNumbers(input))
}

func TestStripURLs(t *testing.T) {
	input := "See https://example.com/docs for details, or www.example.org instead."
	got := StripURLs(input)

	assert.NotContains(t, got, "https://")
	assert.NotContains(t, got, "www.")
	assert.Contains(t, got, "See")
	assert.Contains(t, got, "for details")
}

func TestNormalizeBullets(t *testing.T) {
	input := "• first item\n● second item\n▪ third item"
	got := NormalizeBullets(input)

	assert.Equal(t, "- first item\n- second item\n- third item", got)
}

func TestNormalizeQuotes(t *testing.T) {
	input := "She said “hello” and it’s ‘fine’."
	got := NormalizeQuotes(input)

	assert.Equal(t, `She said "hello" and it's 'fine'.`, got)
}

func TestNormalizeWhitespace(t *testing.T) {
	input := "  Too   many    spaces.  \n\n\n\nAnd blank lines.\n\n\n"
	got := NormalizeWhitespace(input)

	assert.Equal(t, "Too many spaces.\n\nAnd blank lines.", got)
}

func TestCleanRunsEnabledPassesOnly(t *testing.T) {
	input := "Text with https://example.com and “quotes”."

	urlsOnly := Clean(input, Options{StripURLs: true})
	assert.NotContains(t, urlsOnly, "https://")
	assert.Contains(t, urlsOnly, "“quotes”")

	quotesOnly := Clean(input, Options{NormalizeQuotes: true})
	assert.Contains(t, quotesOnly, "https://example.com")
	assert.Contains(t, quotesOnly, `"quotes"`)
}

func TestCleanAllPasses(t *testing.T) {
	input := "Intro   text.\n17\n• bullet with “quote”\nSee https://example.com\n\n\n\nEnd."
	got := Clean(input, AllPasses())

	assert.NotContains(t, got, "17\n")
	assert.NotContains(t, got, "•")
	assert.NotContains(t, got, "https://")
	assert.NotContains(t, got, "“")
	assert.NotContains(t, got, "   ")
	assert.Contains(t, got, "End.")
}

func TestCleanEmptyInput(t *testing.T) {
	assert.Equal(t, "", Clean("", AllPasses()))
}

func TestTextStats(t *testing.T) {
	text := "First sentence. Second sentence!\n\nNew paragraph? Yes."
	stats := TextStats(text)

	assert.Equal(t, 7, stats.Words)
	assert.Equal(t, 4, stats.Sentences)
	assert.Equal(t, 2, stats.Paragraphs)
	assert.Equal(t, len([]rune(text)), stats.Characters)
}

func TestTextStatsEmpty(t *testing.T) {
	stats := TextStats("")

	assert.Equal(t, 0, stats.Characters)
	assert.Equal(t, 0, stats.Words)
	assert.Equal(t, 0, stats.Sentences)
	assert.Equal(t, 0, stats.Paragraphs)
}

func TestPreviewShortTextUnchanged(t *testing.T) {
	assert.Equal(t, "Short text.", Preview("Short text.", 100))
}

func TestPreviewCutsAtSentenceBoundary(t *testing.T) {
	text := strings.Repeat("word ", 18) + "ends here. Trailing fragment that overflows the window"
	got := Preview(text, 105)

	assert.True(t, strings.HasSuffix(got, "ends here."), "got %q", got)
}

func TestPreviewMultibyteBoundary(t *testing.T) {
	// 60 two-byte runes, a period, then filler past the window. The period
	// sits at rune 60 of a 100-rune window, under the 70% threshold, so the
	// preview must not cut there even though its byte offset is past 70.
	text := strings.Repeat("é", 60) + "." + strings.Repeat("x", 80)
	got := Preview(text, 100)

	assert.True(t, strings.HasSuffix(got, "..."), "got %q", got)
	assert.Equal(t, 103, len([]rune(got)))
}

func TestPreviewMultibyteSentenceCut(t *testing.T) {
	// Here the period lands at rune 90, inside the last 30% of the window.
	text := strings.Repeat("é", 90) + "." + strings.Repeat("x", 80)
	got := Preview(text, 100)

	assert.Equal(t, strings.Repeat("é", 90)+".", got)
}

func TestPreviewFallsBackToEllipsis(t *testing.T) {
	text := strings.Repeat("nostop ", 40)
	got := Preview(text, 50)

	assert.True(t, strings.HasSuffix(got, "..."))
	assert.LessOrEqual(t, len([]rune(got)), 53)
}
