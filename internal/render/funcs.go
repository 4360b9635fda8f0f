package render

import (
	"strings"
	"text/template"

	"golang.org/x/net/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Funcs returns the FuncMap available inside all templates.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"titleCase":  titleCaser.String,
		"lower":      strings.ToLower,
		"replaceAll": strings.ReplaceAll,
		"truncate":   Truncate,
		"absURL": func(base, path string) string {
			if base == "" {
				return path
			}
			return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
		},
	}
}

// Truncate strips HTML tags from text and keeps the first n words.
// Used to derive listing and feed summaries from rendered bodies.
func Truncate(text string, n int) string {
	plain := stripTags(text)
	words := strings.Fields(strings.ReplaceAll(plain, `"`, "'"))
	if len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}

// stripTags removes markup using the HTML tokenizer, keeping text nodes.
func stripTags(s string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	for {
		tt := tokenizer.Next()
		switch tt {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(tokenizer.Text())
			b.WriteByte(' ')
		}
	}
}
