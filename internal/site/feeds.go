package site

import (
	"context"
	"log/slog"
	"path"
	"strings"

	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/content"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
)

// feedDef pairs the feed template names with the output file name.
type feedDef struct {
	feedTemplate string
	itemTemplate string
	fileName     string
}

var feedDefs = []feedDef{
	{"feed.xml", "item.xml", "feed.xml"},
	{"feed.atom", "item.atom", "feed.atom"},
}

// stageFeeds renders RSS and Atom feeds for every directory with
// generate_rss enabled.
func stageFeeds(ctx context.Context, bs *buildState) error {
	for _, name := range sortedDirNames(bs.gen.site.ContentDirs) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		dc := bs.gen.site.ContentDirs[name]
		if !dc.GenerateRSS {
			continue
		}

		docs := sortedByDateDesc(bs.byDir[name])
		for _, def := range feedDefs {
			if !bs.gen.engine.Has(def.feedTemplate) {
				continue
			}
			if err := bs.renderFeed(&dc, docs, def); err != nil {
				return err
			}
			bs.report.Feeds++
		}
		slog.Info("Feeds rendered", logfields.Dir(dc.Name), logfields.Count(len(docs)))
	}
	return nil
}

func (bs *buildState) renderFeed(dc *config.DirConfig, docs []*content.Document, def feedDef) error {
	relFile := path.Join(dc.Slug, def.fileName)
	basePath := basePathFor(relFile)
	indexURL := absURL(bs.gen.site.URL, dc.Slug)

	var items strings.Builder
	for _, doc := range docs {
		bs.prepareBody(doc, basePath)
		ictx := bs.gen.contexts.Document(doc, basePath)
		ictx["url"] = doc.Slug + "/"
		ictx["abs_url"] = absURL(bs.gen.site.URL, dc.Slug, doc.Slug)
		ictx["index_url"] = indexURL
		rendered, err := bs.gen.engine.Render(def.itemTemplate, ictx)
		if err != nil {
			return err
		}
		items.WriteString(rendered)
	}

	fctx := bs.gen.contexts.Directory(dc, basePath, newestDate(docs))
	fctx["content"] = items.String()
	fctx["index_url"] = indexURL
	fctx["feed_url"] = strings.TrimRight(absURL(bs.gen.site.URL, dc.Slug), "/") + "/" + def.fileName

	out, err := bs.gen.engine.Render(def.feedTemplate, fctx)
	if err != nil {
		return err
	}
	return bs.gen.writer.Write(relFile, []byte(out))
}
