// Package markdown converts Markdown document bodies to HTML.
package markdown

import (
	"bytes"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Converter renders Markdown to HTML. Construction is cheap; a single
// Converter is reused for every document in a build.
type Converter struct {
	md goldmark.Markdown
}

// NewConverter creates a Converter with GFM, footnotes, and fenced code
// highlighting enabled.
func NewConverter() *Converter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes so the layout controls the palette
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			html.WithUnsafe(), // content files are trusted local input; raw HTML passes through
		),
	)
	return &Converter{md: md}
}

// ToHTML converts a Markdown body to HTML.
func (c *Converter) ToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}
