package site

import (
	"path"
	"strings"
)

// pagePath returns the output-relative path for a document page, using the
// extensionless-directory convention: <dir-slug>/<slug>/index.html.
func pagePath(dirSlug, slug string) string {
	if dirSlug == "" {
		return path.Join(slug, "index.html")
	}
	return path.Join(dirSlug, slug, "index.html")
}

// indexPath returns the output-relative path for a directory index page.
// dirSlug "" means the site root.
func indexPath(dirSlug string) string {
	if dirSlug == "" {
		return "index.html"
	}
	return path.Join(dirSlug, "index.html")
}

// basePathFor computes the relative prefix from a page to the site root,
// given the page's output-relative file path. Pages always live in their own
// directory, so depth equals the number of path separators.
func basePathFor(relFile string) string {
	depth := strings.Count(path.Clean(relFile), "/")
	if depth == 0 {
		return "."
	}
	parts := make([]string, depth)
	for i := range parts {
		parts[i] = ".."
	}
	return strings.Join(parts, "/")
}

// absURL joins the site base URL with path segments. Returns a relative path
// when the base URL is unset; feed readers mishandle that, but it is a
// documented limitation rather than an error.
func absURL(base string, segments ...string) string {
	p := path.Join(segments...)
	if base == "" {
		return "/" + p + "/"
	}
	return strings.TrimRight(base, "/") + "/" + p + "/"
}
