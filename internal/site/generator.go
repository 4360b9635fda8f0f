// Package site orchestrates the build: it wires scanning, parsing, rendering,
// and output writing into a staged pipeline and produces a build report.
package site

import (
	"context"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/content"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
	"git.home.luguber.info/inful/sitegen/internal/markdown"
	"git.home.luguber.info/inful/sitegen/internal/metrics"
	"git.home.luguber.info/inful/sitegen/internal/render"
)

// Options describes the filesystem layout and behavior of one build.
type Options struct {
	ContentDir    string
	LayoutDir     string
	StaticDir     string
	OutputDir     string
	IncludeDrafts bool
	ReportPath    string // optional; JSON report dump location
	Recorder      metrics.Recorder
}

// Generator builds a site from content, layouts, and static files.
type Generator struct {
	site     *config.Site
	opts     Options
	engine   *render.Engine
	contexts *render.ContextBuilder
	conv     *markdown.Converter
	scanner  *content.Scanner
	writer   *Writer
	recorder metrics.Recorder
}

// New creates a generator for the given site configuration and options.
func New(site *config.Site, opts Options) *Generator {
	if opts.Recorder == nil {
		opts.Recorder = metrics.NoopRecorder{}
	}
	return &Generator{
		site:     site,
		opts:     opts,
		engine:   render.NewEngine(opts.LayoutDir),
		contexts: render.NewContextBuilder(site),
		conv:     markdown.NewConverter(),
		scanner:  content.NewScanner(opts.ContentDir, opts.IncludeDrafts),
		writer:   NewWriter(opts.OutputDir),
		recorder: opts.Recorder,
	}
}

// buildState carries per-build data between stages.
type buildState struct {
	gen      *Generator
	report   *Report
	recorder metrics.Recorder

	refs  []content.FileRef
	docs  []*content.Document            // renderable pages, deterministic order
	byDir map[string][]*content.Document // content dir name -> its documents
	front map[string]*content.Document   // dir name ("" = root) -> _index document
}

// Build runs the full pipeline and returns the build report. The report is
// returned even on failure so callers can inspect partial results.
func (g *Generator) Build(ctx context.Context) (*Report, error) {
	bs := &buildState{
		gen:      g,
		report:   newReport(),
		recorder: g.recorder,
		byDir:    make(map[string][]*content.Document),
		front:    make(map[string]*content.Document),
	}
	slog.Info("Build starting", slog.String("build_id", bs.report.BuildID), logfields.Dir(g.opts.ContentDir))

	stages := []stageDef{
		{"prepare", stagePrepare},
		{"scan", stageScan},
		{"parse", stageParse},
		{"pages", stagePages},
		{"indexes", stageIndexes},
		{"feeds", stageFeeds},
		{"static", stageStatic},
	}

	err := runStages(ctx, bs, stages)
	bs.report.Finish()

	g.recorder.ObserveBuildDuration(bs.report.Duration)
	g.recorder.IncBuildOutcome(bs.report.Outcome)
	g.recorder.IncPagesRendered(bs.report.Pages)
	g.recorder.IncFilesSkipped(bs.report.SkippedFiles)

	if g.opts.ReportPath != "" {
		if werr := bs.report.WriteJSON(g.opts.ReportPath); werr != nil {
			slog.Warn("Can't write build report", logfields.Path(g.opts.ReportPath), logfields.Error(werr))
		}
	}

	if err != nil {
		slog.Error("Build failed", slog.String("build_id", bs.report.BuildID), logfields.Error(err))
		return bs.report, err
	}
	slog.Info("Build complete",
		slog.String("build_id", bs.report.BuildID),
		slog.String("outcome", bs.report.Outcome),
		logfields.Count(bs.report.Pages),
		logfields.DurationMS(float64(bs.report.Duration.Milliseconds())))
	return bs.report, nil
}

// stagePrepare wipes and recreates the output directory.
func stagePrepare(_ context.Context, bs *buildState) error {
	return bs.gen.writer.Reset()
}

// stageScan discovers content files in the root and declared directories.
func stageScan(_ context.Context, bs *buildState) error {
	refs, err := bs.gen.scanner.Scan(bs.gen.site.ContentDirs)
	if err != nil {
		return err
	}
	bs.refs = refs
	return nil
}

// stageParse parses every scanned file plus the _index front-content files.
// Unreadable files are skipped with a warning, never a failed build.
func stageParse(ctx context.Context, bs *buildState) error {
	for _, ref := range bs.refs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		doc, err := content.ParseFile(ref)
		if err != nil {
			slog.Warn("Skipping unreadable content file", logfields.File(ref.Path), logfields.Error(err))
			bs.report.AddWarning("unreadable content file: " + ref.Path)
			bs.report.SkippedFiles++
			continue
		}
		bs.docs = append(bs.docs, doc)
		bs.byDir[doc.DirName()] = append(bs.byDir[doc.DirName()], doc)
	}

	// Front content: _index at the root and in each content directory.
	bs.parseFront("", nil)
	for name := range bs.gen.site.ContentDirs {
		dc := bs.gen.site.ContentDirs[name]
		bs.parseFront(name, &dc)
	}
	return nil
}

func (bs *buildState) parseFront(dirName string, dc *config.DirConfig) {
	ref, ok := bs.gen.scanner.IndexFile(dirName)
	if !ok {
		return
	}
	ref.Dir = dc
	doc, err := content.ParseFile(ref)
	if err != nil {
		slog.Warn("Skipping unreadable front content", logfields.File(ref.Path), logfields.Error(err))
		bs.report.AddWarning("unreadable front content: " + ref.Path)
		return
	}
	bs.front[dirName] = doc
}

// stageStatic copies the static tree into the output root last, so static
// assets win name collisions with generated files.
func stageStatic(_ context.Context, bs *buildState) error {
	dir := bs.gen.opts.StaticDir
	if dir == "" {
		return nil
	}
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		slog.Debug("No static directory, skipping", logfields.Dir(dir))
		return nil
	}

	n, err := bs.gen.writer.CopyTree(dir)
	bs.report.StaticFiles = n
	if err != nil {
		return err
	}
	slog.Info("Static files copied", logfields.Count(n))
	return nil
}
