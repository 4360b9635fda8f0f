package site

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/sitegen/internal/content"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
	"git.home.luguber.info/inful/sitegen/internal/render"
)

// summaryWords is how many words of the rendered body go into listing and
// feed summaries.
const summaryWords = 25

// stagePages renders every document to its output page, plus the root _index
// as the site front page.
func stagePages(ctx context.Context, bs *buildState) error {
	written := make(map[string]string) // output path -> source path

	for _, doc := range bs.docs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		relFile := pagePath(doc.DirSlug(), doc.Slug)
		if prev, ok := written[relFile]; ok {
			slog.Warn("Slug collision, later file wins",
				logfields.Slug(doc.Slug), logfields.File(doc.SourcePath), slog.String("shadowed", prev))
			bs.report.AddWarning("slug collision at " + relFile + ": " + prev + " shadowed by " + doc.SourcePath)
		}
		written[relFile] = doc.SourcePath

		if err := bs.renderPage(doc, relFile); err != nil {
			return err
		}
		bs.report.Pages++
	}

	// Root front content becomes the site front page, unless a content
	// directory named by an empty slug already produced one.
	if root, ok := bs.front[""]; ok {
		if err := bs.renderPage(root, indexPath("")); err != nil {
			return err
		}
		bs.report.Pages++
	}
	return nil
}

// renderPage expands, converts, and lays out one document, then writes it.
func (bs *buildState) renderPage(doc *content.Document, relFile string) error {
	basePath := basePathFor(relFile)
	bs.prepareBody(doc, basePath)

	pctx := bs.gen.contexts.Document(doc, basePath)
	out, err := bs.gen.engine.Render(bs.layoutFor(doc), pctx)
	if err != nil {
		return err
	}
	return bs.gen.writer.Write(relFile, []byte(out))
}

// prepareBody expands template placeholders inside the body, converts
// Markdown, and derives the summary. Expansion failures keep the raw body;
// a half-broken page beats a failed build.
func (bs *buildState) prepareBody(doc *content.Document, basePath string) {
	body := doc.RawBody
	ectx := bs.gen.contexts.Document(doc, basePath)
	if expanded, err := bs.gen.engine.RenderString(body, ectx); err == nil {
		body = expanded
	} else {
		slog.Warn("Can't expand placeholders in body, using raw text",
			logfields.File(doc.SourcePath), logfields.Error(err))
		bs.report.AddWarning("body expansion failed: " + doc.SourcePath)
	}

	if doc.IsMarkdown {
		html, err := bs.gen.conv.ToHTML(body)
		if err != nil {
			slog.Warn("Markdown conversion failed, emitting raw body",
				logfields.File(doc.SourcePath), logfields.Error(err))
			bs.report.AddWarning("markdown conversion failed: " + doc.SourcePath)
			html = body
		}
		doc.HTML = html
	} else {
		doc.HTML = body
	}
	doc.Summary = headerSummary(doc)
	if doc.Summary == "" {
		doc.Summary = render.Truncate(doc.HTML, summaryWords)
	}
}

// headerSummary returns an explicit summary from the document header, if any.
// A summary key wins over description.
func headerSummary(doc *content.Document) string {
	for _, key := range []string{"summary", "description"} {
		if v, ok := doc.Meta[key]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

// layoutFor picks the template: an explicit header override, post.html for
// documents in a content directory, page.html elsewhere.
func (bs *buildState) layoutFor(doc *content.Document) string {
	if v, ok := doc.Meta["template"]; ok {
		if name, ok := v.(string); ok && name != "" {
			return name
		}
	}
	if doc.Dir != nil {
		return "post.html"
	}
	return "page.html"
}
