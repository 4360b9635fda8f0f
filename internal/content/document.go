// Package content discovers and parses content documents.
//
// A document is one file under the content root: a metadata header block
// followed by a Markdown or HTML body. Documents are created during scanning,
// enriched during parsing, and consumed by the site generator.
package content

import (
	"time"

	"git.home.luguber.info/inful/sitegen/internal/config"
)

// FileRef identifies a scanned content file before parsing.
type FileRef struct {
	Path string            // filesystem path to the source file
	Name string            // base name including extension
	Dir  *config.DirConfig // owning content directory; nil for the content root
}

// Document is one parsed content file.
type Document struct {
	SourcePath string
	Dir        *config.DirConfig // nil for the content root
	Slug       string
	Title      string
	Date       time.Time
	RawBody    string
	HTML       string         // rendered body, populated by the generator
	Summary    string         // populated by the generator for listings/feeds
	Meta       map[string]any // header key/value pairs, passed to templates
	IsMarkdown bool
	IsIndex    bool // true for _index files supplying directory front content
}

// DirName returns the owning content directory name, or "" at the root.
func (d *Document) DirName() string {
	if d.Dir == nil {
		return ""
	}
	return d.Dir.Name
}

// DirSlug returns the output directory slug, or "" at the root.
func (d *Document) DirSlug() string {
	if d.Dir == nil {
		return ""
	}
	return d.Dir.Slug
}
