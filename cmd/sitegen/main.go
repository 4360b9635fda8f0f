// Command sitegen builds static sites from Markdown content, a JSON
// configuration file, and a set of layout templates.
package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/sitegen/cmd/sitegen/commands"
	sgerrors "git.home.luguber.info/inful/sitegen/internal/errors"
)

func main() {
	var cli commands.CLI

	kctx := kong.Parse(&cli,
		kong.Name("sitegen"),
		kong.Description("A static site generator: Markdown in, HTML and feeds out."),
		kong.UsageOnError(),
		commands.Vars(),
	)

	if err := kctx.Run(&cli.Global); err != nil {
		adapter := sgerrors.NewCLIErrorAdapter(cli.Verbose, slog.Default())
		adapter.HandleError(err)
	}
}
