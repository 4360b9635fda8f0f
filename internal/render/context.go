package render

import (
	"time"

	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/content"
)

// ContextBuilder assembles render contexts: the mapping of template variable
// names to values that is the public contract of the layout templates.
//
// A context is built fresh per render and never mutated afterwards. Merge
// order is config extras, then document header fields, then computed fields,
// so computed values always win.
type ContextBuilder struct {
	site *config.Site
	now  func() time.Time
}

// NewContextBuilder creates a builder for the given site configuration.
func NewContextBuilder(site *config.Site) *ContextBuilder {
	return &ContextBuilder{site: site, now: time.Now}
}

// Site returns the global context shared by every render: config fields,
// pass-through extras, and the current year.
func (b *ContextBuilder) Site() map[string]any {
	ctx := map[string]any{
		// Defaults for contract keys templates may reference; extras override.
		"body_class": "",
		"social":     "",
	}
	for k, v := range b.site.Extra {
		ctx[k] = v
	}

	menu := make([]map[string]string, 0, len(b.site.Menu))
	for _, entry := range b.site.Menu {
		menu = append(menu, map[string]string{"label": entry.Label, "target": entry.Target})
	}

	ctx["author"] = b.site.Author
	ctx["site_subtitle"] = b.site.Subtitle
	ctx["site_description"] = b.site.Description
	ctx["site_url"] = b.site.URL
	ctx["menu"] = menu
	ctx["current_year"] = b.now().Year()
	return ctx
}

// Document returns the full page context for one document.
// basePath is the relative prefix from the page to the site root.
func (b *ContextBuilder) Document(doc *content.Document, basePath string) map[string]any {
	ctx := b.Site()
	for k, v := range doc.Meta {
		ctx[k] = v
	}

	ctx["title"] = doc.Title
	ctx["slug"] = doc.Slug
	ctx["content"] = doc.HTML
	ctx["summary"] = doc.Summary
	ctx["base_path"] = basePath
	ctx["current_content_dir"] = dirContext(doc.Dir)
	addDateFields(ctx, doc.Date, b.site.DateHumanFormat)
	return ctx
}

// Directory returns the context for a directory's index or feed render.
// updated should be the newest document date in the directory, so rebuilds of
// unchanged content stay byte-identical.
func (b *ContextBuilder) Directory(dc *config.DirConfig, basePath string, updated time.Time) map[string]any {
	ctx := b.Site()
	ctx["title"] = dc.Title
	ctx["slug"] = dc.Slug
	ctx["summary"] = ""
	ctx["base_path"] = basePath
	ctx["current_content_dir"] = dirContext(dc)
	addDateFields(ctx, updated, b.site.DateHumanFormat)
	return ctx
}

func addDateFields(ctx map[string]any, date time.Time, humanFormat string) {
	ctx["date"] = date.Format("2006-01-02")
	ctx["short_date"] = date.Format("2006-01-02")
	ctx["human_date"] = date.Format(humanFormat)
	ctx["rfc_2822_date"] = date.Format("Mon, 02 Jan 2006 15:04:05 -0700")
	ctx["rfc_3339_date"] = date.Format(time.RFC3339)
}

func dirContext(dc *config.DirConfig) any {
	if dc == nil {
		return nil
	}
	return map[string]any{
		"name":           dc.Name,
		"title":          dc.Title,
		"slug":           dc.Slug,
		"generate_index": dc.GenerateIndex,
		"generate_rss":   dc.GenerateRSS,
	}
}
