package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToHTML_Heading(t *testing.T) {
	c := NewConverter()
	out, err := c.ToHTML("# Hi")
	require.NoError(t, err)
	// Headings carry stable slug IDs so in-page anchors work.
	require.Contains(t, out, `<h1 id="hi">Hi</h1>`)
}

func TestToHTML_GFMTable(t *testing.T) {
	c := NewConverter()
	out, err := c.ToHTML("| a | b |\n|---|---|\n| 1 | 2 |\n")
	require.NoError(t, err)
	require.Contains(t, out, "<table>")
}

func TestToHTML_RawHTMLPassesThrough(t *testing.T) {
	c := NewConverter()
	out, err := c.ToHTML("before\n\n<div class=\"note\">kept</div>\n")
	require.NoError(t, err)
	require.Contains(t, out, `<div class="note">kept</div>`)
}

func TestToHTML_FencedCodeIsHighlighted(t *testing.T) {
	c := NewConverter()
	out, err := c.ToHTML("```go\npackage main\n```\n")
	require.NoError(t, err)
	require.Contains(t, out, "<pre")
	require.Contains(t, out, "chroma")
}

// Conversion must be deterministic: indices and rebuild idempotence depend on it.
func TestToHTML_Deterministic(t *testing.T) {
	c := NewConverter()
	const src = "# Title\n\nSome *text* with a [link](/x).\n"

	first, err := c.ToHTML(src)
	require.NoError(t, err)
	second, err := c.ToHTML(src)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
