package ingestion

import (
	"os"
	"regexp"
	"strings"
)

var (
	innerSpaces    = regexp.MustCompile(`\s+`)
	tripleNewlines = regexp.MustCompile(`\n\n\n+`)
)

// fromText reads a plain-text resume and normalizes its whitespace.
func fromText(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &ExtractionError{Path: path, Message: "reading file", Cause: err}
	}
	return &Document{Content: CleanText(string(raw)), Method: "text"}, nil
}

// CleanText normalizes line endings and whitespace while preserving the line
// structure the extractors depend on. Bullet lines keep their glyph and
// indentation; consecutive blank lines collapse to at most two.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = tripleNewlines.ReplaceAllString(result, "\n\n")
	// Trim blank edge lines only; a bullet on the first or last line keeps
	// its indentation.
	return strings.Trim(result, "\n")
}

func cleanLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}

	indent := len(line) - len(strings.TrimLeft(line, " \t"))
	content := innerSpaces.ReplaceAllString(trimmed, " ")
	if indent > 0 && isBulletLine(trimmed) {
		return strings.Repeat(" ", indent) + content
	}
	return content
}

func isBulletLine(trimmed string) bool {
	for _, prefix := range []string{"- ", "* ", "• ", "· "} {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}
