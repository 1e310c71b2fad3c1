package commands

import (
	"fmt"
	"io"

	"git.home.luguber.info/inful/docnav/internal/lint"
	"git.home.luguber.info/inful/docnav/internal/pages"
	"git.home.luguber.info/inful/docnav/internal/site"
)

// LintCmd implements the 'lint' command.
type LintCmd struct {
	Docs   string `help:"Docs directory to check page links against"`
	Format string `short:"f" default:"text" help:"Output format (text or json)" enum:"text,json"`
	Quiet  bool   `short:"q" help:"Quiet mode: hide info findings and never fail on warnings"`
}

// Run executes the lint command. Warnings exit with status 1.
func (l *LintCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(g, root)
	if err != nil {
		return err
	}
	failed, err := runLint(g.Out, g, cfg, root.source(), l.Docs, &lint.Config{Quiet: l.Quiet, Format: l.Format})
	if err != nil {
		return err
	}
	if failed {
		return ExitStatus(1)
	}
	return nil
}

// runLint lints cfg, optionally against a docs tree, and writes the report.
func runLint(w io.Writer, g *Global, cfg *site.Configuration, source, docs string, lc *lint.Config) (bool, error) {
	in := lint.Input{Config: cfg}
	if docs != "" {
		index, err := pages.Scan(g.Fs, docs)
		if err != nil {
			return false, err
		}
		in.Pages = index
	}

	linter := lint.NewLinter(lc)
	result := linter.Lint(in)
	if err := lint.NewFormatter(lc.Format).Format(w, result, source); err != nil {
		return false, fmt.Errorf("formatting output: %w", err)
	}
	return linter.Failed(result), nil
}
