package commands

import (
	"log/slog"
	"os"
	"path/filepath"

	sgerrors "git.home.luguber.info/inful/sitegen/internal/errors"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
	"git.home.luguber.info/inful/sitegen/internal/render"
)

// InitCmd scaffolds a minimal site: configuration, sample content, the
// built-in layouts as editable files, and a stylesheet stub.
type InitCmd struct {
	Dir   string `arg:"" optional:"" default:"." help:"Directory to scaffold into."`
	Force bool   `help:"Overwrite existing files."`
}

const initConfig = `{
  "author": "Admin",
  "site_subtitle": "A new site",
  "site_description": "Built with sitegen",
  "site_url": "",
  "menu": [
    {"label": "Home", "target": "/"},
    {"label": "Blog", "target": "/blog/"}
  ],
  "content_dirs": {
    "blog": {"title": "Blog", "generate_index": true, "generate_rss": true}
  }
}
`

const initHello = `---
title: Hello World
---
Welcome to your new site. Add Markdown files under content/blog/ to publish posts.
`

const initFrontPage = `---
title: Home
---
This is the front page. Its body comes from content/_index.md.
`

const initStylesheet = `body { max-width: 46rem; margin: 0 auto; padding: 0 1rem; font-family: sans-serif; }
`

func (i *InitCmd) Run(g *Global) error {
	files := map[string]string{
		g.Config:            initConfig,
		"content/_index.md": initFrontPage,
		"content/blog/2026-01-01-hello-world.md": initHello,
		"static/style.css":                       initStylesheet,
	}
	for name, source := range render.DefaultLayouts() {
		files[filepath.Join("layout", name)] = source
	}

	for rel, content := range files {
		path := filepath.Join(i.Dir, rel)
		if !i.Force {
			if _, err := os.Stat(path); err == nil {
				return sgerrors.ValidationFailed(rel, "already exists (use --force to overwrite)")
			}
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return sgerrors.OutputWriteError(path, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return sgerrors.OutputWriteError(path, err)
		}
		slog.Debug("Wrote scaffold file", logfields.Path(path))
	}

	slog.Info("Site scaffolded", logfields.Dir(i.Dir), logfields.Count(len(files)))
	return nil
}
