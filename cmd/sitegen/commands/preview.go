package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/sitegen/internal/config"
	sgerrors "git.home.luguber.info/inful/sitegen/internal/errors"
	"git.home.luguber.info/inful/sitegen/internal/metrics"
	"git.home.luguber.info/inful/sitegen/internal/site"
)

// PreviewCmd builds the site and serves it over HTTP for local review.
type PreviewCmd struct {
	Port    int    `short:"p" default:"8080" help:"Port to listen on."`
	Output  string `short:"o" default:"public" help:"Directory to serve."`
	Content string `default:"content" help:"Content directory."`
	Layout  string `default:"layout" help:"Layout directory."`
	Static  string `default:"static" help:"Static files directory."`
	NoBuild bool   `help:"Serve the output directory without rebuilding first."`
}

func (p *PreviewCmd) Run(g *Global) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	recorder := metrics.NewPrometheusRecorder(prometheus.NewRegistry())

	if !p.NoBuild {
		siteCfg, err := config.Load(g.Config)
		if err != nil {
			return err
		}
		gen := site.New(siteCfg, site.Options{
			ContentDir: p.Content,
			LayoutDir:  p.Layout,
			StaticDir:  p.Static,
			OutputDir:  p.Output,
			Recorder:   recorder,
		})
		if _, err := gen.Build(ctx); err != nil {
			var sge *sgerrors.SiteGenError
			if errors.As(err, &sge) {
				return sge
			}
			return sgerrors.InternalError("preview build failed", err)
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.GET("/metrics", echo.WrapHandler(recorder.HTTPHandler()))
	e.Static("/", p.Output)

	addr := ":" + strconv.Itoa(p.Port)
	slog.Info("Preview server listening", slog.String("addr", addr), slog.String("dir", p.Output))

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return sgerrors.InternalError("preview server failed", err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			return sgerrors.InternalError("preview server shutdown failed", err)
		}
		slog.Info("Preview server stopped")
		return nil
	}
}
