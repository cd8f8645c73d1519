// Package content converts the HTML job descriptions returned by the backend
// into plain text for page rendering, excerpts, and the terminal UI.
package content

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// Text parses an HTML fragment and returns its visible text with normalized
// whitespace. Script and style content is dropped.
func Text(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript").Remove()

	// Block-level boundaries become newlines so paragraphs stay separated.
	doc.Find("p, br, li, div, h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	return cleanWhitespace(doc.Text()), nil
}

// TextOrRaw is Text with a fallback: if the input does not parse as HTML it
// is returned as-is. Upstream descriptions are sometimes already plain text.
func TextOrRaw(s string) string {
	text, err := Text(s)
	if err != nil || text == "" {
		return strings.TrimSpace(s)
	}
	return text
}

// Excerpt returns the first maxRunes runes of the text form of s, cut at a
// word boundary with an ellipsis when truncated.
func Excerpt(s string, maxRunes int) string {
	text := strings.Join(strings.Fields(TextOrRaw(s)), " ")
	if utf8.RuneCountInString(text) <= maxRunes {
		return text
	}

	runes := []rune(text)
	cut := maxRunes
	for cut > 0 && runes[cut-1] != ' ' {
		cut--
	}
	if cut == 0 {
		cut = maxRunes
	}
	return strings.TrimSpace(string(runes[:cut])) + "…"
}

// cleanWhitespace trims each line and drops empty ones.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
