package site

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/content"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
)

// stageIndexes renders the listing page for every directory with
// generate_index enabled. Directories without listings but with front content
// get a plain page at their index path instead.
func stageIndexes(ctx context.Context, bs *buildState) error {
	for _, name := range sortedDirNames(bs.gen.site.ContentDirs) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		dc := bs.gen.site.ContentDirs[name]
		if !dc.GenerateIndex {
			if front, ok := bs.front[name]; ok {
				if err := bs.renderPage(front, indexPath(dc.Slug)); err != nil {
					return err
				}
				bs.report.Pages++
			}
			continue
		}

		if err := bs.renderIndex(&dc, bs.byDir[name]); err != nil {
			return err
		}
		bs.report.Indexes++
	}
	return nil
}

func (bs *buildState) renderIndex(dc *config.DirConfig, docs []*content.Document) error {
	docs = sortedByDateDesc(docs)
	relFile := indexPath(dc.Slug)
	basePath := basePathFor(relFile)

	var items strings.Builder
	for _, doc := range docs {
		ictx := bs.gen.contexts.Document(doc, basePath)
		ictx["url"] = doc.Slug + "/"
		ictx["abs_url"] = absURL(bs.gen.site.URL, dc.Slug, doc.Slug)
		rendered, err := bs.gen.engine.Render("item.html", ictx)
		if err != nil {
			return err
		}
		items.WriteString(rendered)
	}

	lctx := bs.gen.contexts.Directory(dc, basePath, newestDate(docs))
	lctx["content"] = items.String()
	lctx["front_content"] = bs.frontContent(dc, basePath)

	out, err := bs.gen.engine.Render("list.html", lctx)
	if err != nil {
		return err
	}
	if err := bs.gen.writer.Write(relFile, []byte(out)); err != nil {
		return err
	}
	slog.Info("Index rendered", logfields.Dir(dc.Name), logfields.Count(len(docs)))
	return nil
}

// frontContent converts the directory's _index body for inclusion above the
// listing. Empty when there is no _index file.
func (bs *buildState) frontContent(dc *config.DirConfig, basePath string) string {
	front, ok := bs.front[dc.Name]
	if !ok {
		return ""
	}
	bs.prepareBody(front, basePath)
	return front.HTML
}

// sortedByDateDesc orders documents newest first; path breaks ties so the
// order is stable across builds.
func sortedByDateDesc(docs []*content.Document) []*content.Document {
	out := make([]*content.Document, len(docs))
	copy(out, docs)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].SourcePath < out[j].SourcePath
	})
	return out
}

// newestDate returns the most recent document date, or the zero time for an
// empty directory. Derived from content so rebuilds stay byte-identical.
func newestDate(docs []*content.Document) time.Time {
	var newest time.Time
	for _, doc := range docs {
		if doc.Date.After(newest) {
			newest = doc.Date
		}
	}
	return newest
}

func sortedDirNames(dirs map[string]config.DirConfig) []string {
	names := make([]string, 0, len(dirs))
	for name := range dirs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
