// Package ingestion turns uploaded resume files (PDF, HTML, plain text) into
// the cleaned text the extraction pipeline consumes.
package ingestion

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// Document is the normalized result of reading one resume file.
type Document struct {
	// Content is the cleaned plain text.
	Content string
	// PageCount is the number of pages, when the format has pages.
	PageCount int
	// Method names the extraction path taken ("pdf", "html", "text").
	Method string
}

// FromFile reads a resume file and extracts its text, dispatching on the
// file extension.
func FromFile(path string) (*Document, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var (
		doc *Document
		err error
	)
	switch ext {
	case ".pdf":
		doc, err = fromPDF(path)
	case ".html", ".htm":
		doc, err = fromHTML(path)
	case ".txt":
		doc, err = fromText(path)
	default:
		return nil, &ExtractionError{
			Path:    path,
			Message: fmt.Sprintf("unsupported file extension %q", ext),
		}
	}
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("path", path).
		Str("method", doc.Method).
		Int("chars", len(doc.Content)).
		Msg("ingested document")
	return doc, nil
}
