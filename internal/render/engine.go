// Package render wraps the template engine used for pages, listings, and feeds.
//
// Templates are loaded by name from the layout directory; names without a file
// there fall back to the embedded defaults. The engine supplies a FuncMap and
// strict missing-key handling: referencing an undefined variable is a fatal
// template error, never silently wrong output.
package render

import (
	"bytes"
	"os"
	"path/filepath"
	"text/template"

	sgerrors "git.home.luguber.info/inful/sitegen/internal/errors"
)

// Engine loads and renders named templates against context maps.
type Engine struct {
	layoutDir string
	cache     map[string]*template.Template
	funcs     template.FuncMap
}

// NewEngine creates an engine reading templates from layoutDir.
// layoutDir may be empty or missing; embedded defaults are used then.
func NewEngine(layoutDir string) *Engine {
	return &Engine{
		layoutDir: layoutDir,
		cache:     make(map[string]*template.Template),
		funcs:     Funcs(),
	}
}

// Render renders the named template with the given context.
func (e *Engine) Render(name string, ctx map[string]any) (string, error) {
	tpl, err := e.lookup(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, ctx); err != nil {
		return "", sgerrors.TemplateRenderError(name, err)
	}
	return buf.String(), nil
}

// RenderString renders an inline template source (used to expand placeholders
// inside document bodies) with the given context.
func (e *Engine) RenderString(source string, ctx map[string]any) (string, error) {
	tpl, err := template.New("inline").Funcs(e.funcs).Option("missingkey=error").Parse(source)
	if err != nil {
		return "", sgerrors.TemplateRenderError("inline", err)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, ctx); err != nil {
		return "", sgerrors.TemplateRenderError("inline", err)
	}
	return buf.String(), nil
}

// Has reports whether a template is available (layout file or embedded default).
func (e *Engine) Has(name string) bool {
	if e.layoutDir != "" {
		if fi, err := os.Stat(filepath.Join(e.layoutDir, name)); err == nil && !fi.IsDir() {
			return true
		}
	}
	_, ok := defaultLayouts[name]
	return ok
}

func (e *Engine) lookup(name string) (*template.Template, error) {
	if tpl, ok := e.cache[name]; ok {
		return tpl, nil
	}

	source, err := e.source(name)
	if err != nil {
		return nil, err
	}

	tpl, err := template.New(name).Funcs(e.funcs).Option("missingkey=error").Parse(source)
	if err != nil {
		return nil, sgerrors.TemplateRenderError(name, err)
	}

	e.cache[name] = tpl
	return tpl, nil
}

func (e *Engine) source(name string) (string, error) {
	if e.layoutDir != "" {
		path := filepath.Join(e.layoutDir, name)
		if data, err := os.ReadFile(path); err == nil {
			return string(data), nil
		}
	}
	if source, ok := defaultLayouts[name]; ok {
		return source, nil
	}
	return "", sgerrors.TemplateNotFound(name)
}
