package ingestion

import (
	"fmt"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// fromHTML extracts the visible text from an HTML resume export, dropping
// navigation, script and style noise.
func fromHTML(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &ExtractionError{Path: path, Message: "reading file", Cause: err}
	}

	content, err := extractHTMLText(string(raw))
	if err != nil {
		return nil, &ExtractionError{Path: path, Message: "parsing html", Cause: err}
	}
	if content == "" {
		return nil, &ExtractionError{Path: path, Message: "no text content in html"}
	}
	return &Document{Content: content, Method: "html"}, nil
}

func extractHTMLText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing html: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript").Remove()

	body := doc.Find("body")
	if body.Length() == 0 {
		return "", nil
	}

	// Block elements become separate lines so section headers stay on their
	// own line.
	var sb strings.Builder
	body.Find("p, div, li, h1, h2, h3, h4, h5, h6, br").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Clone().Children().Remove().End().Text()); text != "" {
			sb.WriteString(text)
			sb.WriteByte('\n')
		}
	})
	if sb.Len() == 0 {
		sb.WriteString(body.Text())
	}

	return CleanText(sb.String()), nil
}
