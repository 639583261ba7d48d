package textclean

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Stats summarizes a text for the UI's pre-generation preview.
type Stats struct {
	Characters int `json:"characters"`
	Words      int `json:"words"`
	Sentences  int `json:"sentences"`
	Paragraphs int `json:"paragraphs"`
}

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

func TextStats(text string) Stats {
	sentences := 0
	for _, s := range sentenceSplitRe.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}

	paragraphs := 0
	for _, p := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(p) != "" {
			paragraphs++
		}
	}

	return Stats{
		Characters: utf8.RuneCountInString(text),
		Words:      len(strings.Fields(text)),
		Sentences:  sentences,
		Paragraphs: paragraphs,
	}
}

// Preview returns at most maxChars of text, preferring to cut at a sentence
// boundary when one falls in the last 30% of the window.
func Preview(text string, maxChars int) string {
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}

	// Work in runes throughout; the 70% threshold and the cut position
	// must share a unit or multibyte text skews the boundary.
	window := runes[:maxChars]
	cut := -1
	for i := len(window) - 1; i >= 0; i-- {
		if window[i] == '.' || window[i] == '!' || window[i] == '?' {
			cut = i
			break
		}
	}
	if cut > int(float64(maxChars)*0.7) {
		return string(window[:cut+1])
	}

	return string(window) + "..."
}
