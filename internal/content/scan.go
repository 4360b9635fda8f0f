package content

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
)

// markdownExtensions are the recognized Markdown source extensions.
var markdownExtensions = map[string]bool{
	".md":       true,
	".mkd":      true,
	".mkdn":     true,
	".mdown":    true,
	".markdown": true,
}

// Scanner discovers content files under a content root.
//
// Scanning is non-recursive: the root and each declared content directory are
// listed directly. Undeclared subdirectories are not scanned.
type Scanner struct {
	root          string
	includeDrafts bool
}

// NewScanner creates a scanner over the given content root.
// When includeDrafts is true, files whose names start with "_" are included
// as pages (except _index, which is always reserved for front content).
func NewScanner(root string, includeDrafts bool) *Scanner {
	return &Scanner{root: root, includeDrafts: includeDrafts}
}

// Scan lists content files in the root and every declared content directory.
// Results are ordered by path so builds are deterministic.
func (s *Scanner) Scan(dirs map[string]config.DirConfig) ([]FileRef, error) {
	refs, err := s.scanDir(s.root, nil)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(dirs))
	for name := range dirs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		dc := dirs[name]
		dirRefs, err := s.scanDir(filepath.Join(s.root, name), &dc)
		if err != nil {
			return nil, err
		}
		refs = append(refs, dirRefs...)
	}

	slog.Info("Content scan complete", logfields.Count(len(refs)))
	return refs, nil
}

// IndexFile returns the _index file for a directory, if one exists.
// dir is the content directory name; "" means the content root.
func (s *Scanner) IndexFile(dir string) (FileRef, bool) {
	base := s.root
	if dir != "" {
		base = filepath.Join(s.root, dir)
	}
	for ext := range markdownExtensions {
		p := filepath.Join(base, "_index"+ext)
		if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
			return FileRef{Path: p, Name: "_index" + ext}, true
		}
	}
	p := filepath.Join(base, "_index.html")
	if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
		return FileRef{Path: p, Name: "_index.html"}, true
	}
	return FileRef{}, false
}

func (s *Scanner) scanDir(dir string, dc *config.DirConfig) ([]FileRef, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("Content directory not found", logfields.Dir(dir))
			return nil, nil
		}
		return nil, err
	}

	var refs []FileRef
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !isContentFile(name) {
			continue
		}
		if strings.HasPrefix(name, "_") {
			if isIndexName(name) || !s.includeDrafts {
				continue
			}
		}
		if strings.HasPrefix(name, ".") {
			continue
		}

		refs = append(refs, FileRef{
			Path: filepath.Join(dir, name),
			Name: name,
			Dir:  dc,
		})
		slog.Debug("Discovered content file", logfields.File(name), logfields.Dir(dir))
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Path < refs[j].Path })
	return refs, nil
}

func isContentFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return markdownExtensions[ext] || ext == ".html"
}

func isIndexName(name string) bool {
	return strings.TrimSuffix(name, filepath.Ext(name)) == "_index"
}

// IsMarkdownFile reports whether the file name has a Markdown extension.
func IsMarkdownFile(name string) bool {
	return markdownExtensions[strings.ToLower(filepath.Ext(name))]
}
