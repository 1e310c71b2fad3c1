package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/spf13/afero"

	"git.home.luguber.info/inful/docnav/cmd/docnav/commands"
	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("docnav"),
		kong.Description("Validate, lint and export documentation site navigation."),
		kong.UsageOnError(),
		commands.Vars(),
	)

	global := &commands.Global{Fs: afero.NewOsFs(), Out: os.Stdout}
	err := parser.Run(global, cli)

	var status commands.ExitStatus
	if errors.As(err, &status) {
		os.Exit(int(status))
	}
	ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
}
