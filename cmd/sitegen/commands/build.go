package commands

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"git.home.luguber.info/inful/sitegen/internal/config"
	sgerrors "git.home.luguber.info/inful/sitegen/internal/errors"
	"git.home.luguber.info/inful/sitegen/internal/gitfetch"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
	"git.home.luguber.info/inful/sitegen/internal/site"
	"git.home.luguber.info/inful/sitegen/internal/workspace"
)

// BuildCmd builds the site from content, layouts, and static files.
type BuildCmd struct {
	Output  string `short:"o" default:"public" help:"Output directory."`
	Content string `default:"content" help:"Content directory."`
	Layout  string `default:"layout" help:"Layout directory (falls back to built-in templates)."`
	Static  string `default:"static" help:"Static files directory."`
	All     bool   `short:"a" help:"Include draft files (names starting with _)."`
	Repo    string `help:"Git repository URL to build from instead of the local directory."`
	Branch  string `default:"main" help:"Branch to check out when --repo is given."`
	Report  string `help:"Write a JSON build report to this path."`
}

func (b *BuildCmd) Run(g *Global) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configPath := g.Config
	contentDir := b.Content
	layoutDir := b.Layout
	staticDir := b.Static

	switch {
	case b.Repo != "" && gitfetch.LocalPath(b.Repo):
		configPath = filepath.Join(b.Repo, g.Config)
		contentDir = filepath.Join(b.Repo, b.Content)
		layoutDir = filepath.Join(b.Repo, b.Layout)
		staticDir = filepath.Join(b.Repo, b.Static)
	case b.Repo != "":
		ws := workspace.NewManager(os.TempDir())
		if err := ws.Create(); err != nil {
			return err
		}
		defer func() {
			if err := ws.Cleanup(); err != nil {
				slog.Warn("Can't clean up workspace", logfields.Error(err))
			}
		}()

		checkout, err := gitfetch.Checkout(ws.Path(), b.Repo, b.Branch)
		if err != nil {
			return err
		}
		configPath = filepath.Join(checkout, g.Config)
		contentDir = filepath.Join(checkout, b.Content)
		layoutDir = filepath.Join(checkout, b.Layout)
		staticDir = filepath.Join(checkout, b.Static)
	}

	siteCfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	gen := site.New(siteCfg, site.Options{
		ContentDir:    contentDir,
		LayoutDir:     layoutDir,
		StaticDir:     staticDir,
		OutputDir:     b.Output,
		IncludeDrafts: b.All,
		ReportPath:    b.Report,
	})

	report, err := gen.Build(ctx)
	if err != nil {
		var sge *sgerrors.SiteGenError
		if errors.As(err, &sge) {
			return sge
		}
		return sgerrors.InternalError("build failed", err)
	}

	slog.Info("Site written",
		logfields.Dir(b.Output),
		slog.Int("pages", report.Pages),
		slog.Int("indexes", report.Indexes),
		slog.Int("feeds", report.Feeds),
		slog.Int("static", report.StaticFiles))
	return nil
}
