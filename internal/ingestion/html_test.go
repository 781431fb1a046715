package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractHTMLText_BlocksBecomeLines(t *testing.T) {
	html := `<html><body>
		<h1>John Smith</h1>
		<p>john@example.com</p>
		<h2>SKILLS</h2>
		<p>Python, Go</p>
	</body></html>`

	text, err := extractHTMLText(html)

	require.NoError(t, err)
	assert.Equal(t, "John Smith\njohn@example.com\nSKILLS\nPython, Go", text)
}

func TestExtractHTMLText_StripsChrome(t *testing.T) {
	html := `<html><body>
		<nav>Home | About</nav>
		<script>alert("hi")</script>
		<style>p { color: red; }</style>
		<p>EDUCATION</p>
		<footer>Copyright</footer>
	</body></html>`

	text, err := extractHTMLText(html)

	require.NoError(t, err)
	assert.Equal(t, "EDUCATION", text)
}

func TestFromFile_HTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.html")
	content := "<html><body><h1>Jane Doe</h1><p>jane@example.com</p></body></html>"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	doc, err := FromFile(path)

	require.NoError(t, err)
	assert.Equal(t, "html", doc.Method)
	assert.Equal(t, "Jane Doe\njane@example.com", doc.Content)
}

func TestFromHTML_EmptyBody(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.html")
	require.NoError(t, os.WriteFile(path, []byte("<html><body></body></html>"), 0o644))

	doc, err := FromFile(path)

	assert.Nil(t, doc)
	var extractErr *ExtractionError
	require.ErrorAs(t, err, &extractErr)
}
