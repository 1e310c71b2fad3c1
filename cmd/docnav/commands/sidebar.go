package commands

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/docnav/internal/site"
)

// SidebarCmd implements the 'sidebar' command.
type SidebarCmd struct {
	Route string `arg:"" help:"Page route, for example /guide/intro"`
}

func (s *SidebarCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(g, root)
	if err != nil {
		return err
	}

	prefix, ok := cfg.Sidebar().Match(s.Route)
	if !ok {
		_, err := fmt.Fprintf(g.Out, "no sidebar for %s\n", s.Route)
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "sidebar %s for %s\n", prefix, s.Route)
	for _, group := range cfg.SidebarFor(s.Route) {
		writeGroup(&b, group)
	}
	_, err = fmt.Fprint(g.Out, b.String())
	return err
}

func writeGroup(b *strings.Builder, group site.SidebarGroup) {
	b.WriteString("\n" + group.Text())
	if collapsed, collapsible := group.Collapsed(); collapsible {
		if collapsed {
			b.WriteString(" (collapsed)")
		} else {
			b.WriteString(" (collapsible)")
		}
	}
	b.WriteString("\n")

	width := 0
	for _, item := range group.Items() {
		width = max(width, len(item.Text()))
	}
	for _, item := range group.Items() {
		fmt.Fprintf(b, "  %-*s  %s\n", width, item.Text(), item.Link())
	}
}
