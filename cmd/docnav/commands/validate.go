package commands

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/docnav/internal/logfields"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct{}

func (v *ValidateCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(g, root)
	if err != nil {
		return err
	}

	nav := 0
	for _, e := range cfg.Nav() {
		nav += len(e.Leaves())
	}
	sidebar := cfg.Sidebar()
	slog.Debug("Configuration valid", logfields.Path(root.source()), logfields.Count(sidebar.Len()))

	_, err = fmt.Fprintf(g.Out, "configuration valid: %s\n  %d nav link%s, %d sidebar%s, %d social link%s, search %s\n",
		root.source(),
		nav, plural(nav),
		sidebar.Len(), plural(sidebar.Len()),
		len(cfg.SocialLinks()), plural(len(cfg.SocialLinks())),
		cfg.Search().Provider())
	return err
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
