package commands

import (
	"bytes"
	"log/slog"

	"github.com/spf13/afero"

	"git.home.luguber.info/inful/docnav/internal/export"
	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/logfields"
)

// ExportCmd implements the 'export' command.
type ExportCmd struct {
	Output string `short:"o" help:"Write to this file instead of stdout"`
	Format string `short:"f" default:"json" help:"Output format (json or yaml)"`
}

func (e *ExportCmd) Run(g *Global, root *CLI) error {
	format, err := export.ParseFormat(e.Format)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(g, root)
	if err != nil {
		return err
	}

	if e.Output == "" {
		return export.Write(g.Out, cfg, format)
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, cfg, format); err != nil {
		return err
	}
	if err := afero.WriteFile(g.Fs, e.Output, buf.Bytes(), 0o644); err != nil {
		return ferrors.ExportError("failed to write export").
			WithContext(ferrors.ContextPath, e.Output).
			WithCause(err).
			Build()
	}
	slog.Info("Exported configuration", logfields.Path(e.Output), logfields.Format(string(format)))
	return nil
}
