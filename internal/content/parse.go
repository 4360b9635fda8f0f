package content

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	sgerrors "git.home.luguber.info/inful/sitegen/internal/errors"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
)

var (
	dateSlugPattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})-(.+)$`)
	datePatterns    = []string{"2006-01-02", "20060102"}
	titleCaser      = cases.Title(language.English)
)

// ParseFile reads and parses one content file into a Document.
//
// Read failures return a content error the caller can treat as recoverable
// (skip the file, continue the build). Header problems degrade to warnings.
func ParseFile(ref FileRef) (*Document, error) {
	raw, err := os.ReadFile(ref.Path)
	if err != nil {
		return nil, sgerrors.ContentReadError(ref.Path, err)
	}

	var mtime time.Time
	if fi, err := os.Stat(ref.Path); err == nil {
		mtime = fi.ModTime()
	} else {
		mtime = time.Now()
	}

	return Parse(ref, raw, mtime), nil
}

// Parse builds a Document from raw file content.
//
// Metadata fallbacks: slug from the filename (a YYYY-MM-DD- prefix is split
// off as the date), title from the slug, date from header, then filename,
// then the file modification time.
func Parse(ref FileRef, raw []byte, mtime time.Time) *Document {
	doc := &Document{
		SourcePath: ref.Path,
		Dir:        ref.Dir,
		Meta:       map[string]any{},
		IsMarkdown: IsMarkdownFile(ref.Name),
		IsIndex:    isIndexName(ref.Name),
	}

	base := strings.TrimSuffix(ref.Name, filepath.Ext(ref.Name))
	doc.Slug = base
	var filenameDate string
	if m := dateSlugPattern.FindStringSubmatch(base); m != nil {
		filenameDate = m[1]
		doc.Slug = m[2]
	}

	header, body, had, err := SplitHeader(raw)
	if err != nil {
		if errors.Is(err, ErrMissingClosingDelimiter) {
			slog.Warn("Unterminated header block, treating file as body only", logfields.File(ref.Path))
		}
		body = raw
		had = false
	}
	if had {
		fields, err := ParseHeader(header)
		if err != nil {
			slog.Warn("Invalid header block, ignoring metadata", logfields.File(ref.Path), logfields.Error(err))
		} else {
			doc.Meta = fields
		}
	}
	doc.RawBody = string(body)

	if v, ok := doc.Meta["slug"]; ok {
		doc.Slug = metaString(v)
	}

	doc.Title = titleFromSlug(doc.Slug)
	if v, ok := doc.Meta["title"]; ok {
		doc.Title = metaString(v)
	}

	doc.Date = resolveDate(doc.Meta["date"], filenameDate, mtime, ref.Path)

	return doc
}

// resolveDate picks the publication date: header, then filename, then mtime.
func resolveDate(headerDate any, filenameDate string, mtime time.Time, path string) time.Time {
	if headerDate != nil {
		if t, ok := parseDateValue(headerDate); ok {
			return t
		}
		slog.Warn("Can't parse date from header", logfields.File(path), slog.Any("date", headerDate))
	}
	if filenameDate != "" {
		if t, err := time.Parse("2006-01-02", filenameDate); err == nil {
			return t
		}
	}
	return mtime
}

func parseDateValue(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case string:
		for _, pattern := range datePatterns {
			if t, err := time.Parse(pattern, v); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

// titleFromSlug derives a human title from a slug: "my-first-post" → "My First Post".
func titleFromSlug(slug string) string {
	words := strings.NewReplacer("-", " ", "_", " ").Replace(slug)
	return titleCaser.String(words)
}

func metaString(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}
