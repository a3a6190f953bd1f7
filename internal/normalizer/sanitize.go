package normalizer

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// chrome tags carry navigation and scripting, never posting content
var strippedTags = []string{
	"script", "style", "noscript", "iframe", "svg",
	"nav", "header", "footer", "aside", "form", "button",
}

// SanitizeHTML converts pasted HTML to plain text. Job postings frequently
// arrive copied from a browser; downstream offsets are computed against the
// sanitized text this returns. Non-HTML input passes through unchanged.
func SanitizeHTML(input string) string {
	if !strings.Contains(input, "<") || !strings.Contains(input, ">") {
		return input
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(input))
	if err != nil {
		return input
	}

	for _, tag := range strippedTags {
		doc.Find(tag).Remove()
	}

	// Block-level elements become line breaks so section headers stay on
	// their own lines after flattening.
	doc.Find("p, div, li, br, h1, h2, h3, h4, h5, h6, tr").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	text := doc.Text()
	if strings.TrimSpace(text) == "" {
		return input
	}

	// Collapse runs of blank lines left behind by removed markup
	var out []string
	blank := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			blank++
			if blank > 1 {
				continue
			}
		} else {
			blank = 0
		}
		out = append(out, strings.TrimLeft(line, " \t"))
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
