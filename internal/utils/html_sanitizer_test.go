package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeStripsScripts(t *testing.T) {
	s := NewHTMLSanitizer()

	out := s.Sanitize(`<p>hello</p><script>alert("x")</script>`)
	assert.Contains(t, out, "<p>hello</p>")
	assert.NotContains(t, out, "script")
	assert.NotContains(t, out, "alert")
}

func TestSanitizeKeepsFormatting(t *testing.T) {
	s := NewHTMLSanitizer()

	out := s.Sanitize(`<strong>bold</strong> <em>italic</em> <ul><li>item</li></ul>`)
	assert.Contains(t, out, "<strong>bold</strong>")
	assert.Contains(t, out, "<em>italic</em>")
	assert.Contains(t, out, "<li>item</li>")
}

func TestSanitizeRemovesEventHandlers(t *testing.T) {
	s := NewHTMLSanitizer()

	out := s.Sanitize(`<p onclick="steal()">text</p>`)
	assert.Contains(t, out, "text")
	assert.NotContains(t, out, "onclick")
}

func TestMarkdownToHTML(t *testing.T) {
	s := NewHTMLSanitizer()

	out := s.Sanitize(MarkdownToHTML("**urgent** suction line down"))
	assert.Contains(t, out, "<strong>urgent</strong>")
}

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "plain", StripHTML("<b>plain</b>"))
}
