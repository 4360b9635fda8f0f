// Package commands defines the sitegen CLI surface.
package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

// Global holds flags shared by every subcommand.
type Global struct {
	Config  string           `short:"c" default:"site.json" help:"Path to the site configuration file."`
	Verbose bool             `short:"v" help:"Enable debug logging."`
	Version kong.VersionFlag `help:"Print version and exit."`
}

// CLI is the root command structure.
type CLI struct {
	Global

	Build   BuildCmd   `cmd:"" default:"1" help:"Build the site into the output directory."`
	Init    InitCmd    `cmd:"" help:"Scaffold a new site in the current directory."`
	Preview PreviewCmd `cmd:"" help:"Serve the built site locally."`
}

// AfterApply configures the process-wide logger once flags are parsed.
func (g *Global) AfterApply() error {
	level := slog.LevelInfo
	if g.Verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	return nil
}

// Vars supplies interpolation variables for help text.
func Vars() kong.Vars {
	return kong.Vars{
		"version": Version,
	}
}

// Version is stamped at build time via -ldflags.
var Version = "dev"
