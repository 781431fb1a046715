package ingestion

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog/log"
)

// maxPDFAttempts bounds retries against transient read failures.
const maxPDFAttempts = 3

// fromPDF extracts text from a PDF page by page. Row-based extraction keeps
// the line structure the section locator depends on.
func fromPDF(path string) (*Document, error) {
	var lastErr error
	for attempt := 1; attempt <= maxPDFAttempts; attempt++ {
		doc, err := readPDF(path)
		if err == nil {
			return doc, nil
		}
		lastErr = err
		log.Warn().Err(err).Int("attempt", attempt).Str("path", path).Msg("pdf extraction failed")
	}
	return nil, &ExtractionError{Path: path, Message: "pdf extraction failed", Cause: lastErr}
}

func readPDF(path string) (doc *Document, err error) {
	// The pdf library panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening pdf: %w", err)
	}
	defer func() { _ = f.Close() }()

	var sb strings.Builder
	pageCount := reader.NumPage()
	for i := 1; i <= pageCount; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		rows, rowErr := page.GetTextByRow()
		if rowErr != nil {
			return nil, fmt.Errorf("reading page %d: %w", i, rowErr)
		}
		for _, row := range rows {
			var words []string
			for _, word := range row.Content {
				if w := strings.TrimSpace(word.S); w != "" {
					words = append(words, w)
				}
			}
			if len(words) > 0 {
				sb.WriteString(strings.Join(words, " "))
				sb.WriteByte('\n')
			}
		}
	}

	content := CleanText(sb.String())
	if content == "" {
		return nil, fmt.Errorf("no text content in %d pages", pageCount)
	}
	return &Document{Content: content, PageCount: pageCount, Method: "pdf"}, nil
}
