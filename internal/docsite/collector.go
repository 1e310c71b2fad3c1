package docsite

import (
	"git.home.luguber.info/inful/docnav/internal/site"
)

// collector wraps the site constructors for a literal declaration. The
// first error is kept and every later call returns a zero value.
type collector struct {
	err error
}

func keep[T any](c *collector, v T, err error) T {
	if c.err != nil {
		var zero T
		return zero
	}
	if err != nil {
		c.err = err
		var zero T
		return zero
	}
	return v
}

func (c *collector) metadata(title, description, lang string, head ...site.HeadTag) site.Metadata {
	meta, err := site.NewMetadata(title, description, lang, head...)
	return keep(c, meta, err)
}

func (c *collector) head(name string, attrs map[string]string) site.HeadTag {
	tag, err := site.NewHeadTag(name, attrs)
	return keep(c, tag, err)
}

func (c *collector) link(text, link string) site.NavEntry {
	entry, err := site.NewNavLink(text, link)
	return keep(c, entry, err)
}

func (c *collector) activeLink(text, link, pattern string) site.NavEntry {
	entry := c.link(text, link)
	if c.err != nil {
		return entry
	}
	entry, err := entry.WithActiveMatch(pattern)
	return keep(c, entry, err)
}

func (c *collector) group(text string, items ...site.NavEntry) site.NavEntry {
	entry, err := site.NewNavGroup(text, items...)
	return keep(c, entry, err)
}

func (c *collector) item(text, link string) site.SidebarItem {
	item, err := site.NewSidebarItem(text, link)
	return keep(c, item, err)
}

func (c *collector) sidebarGroup(text string, items ...site.SidebarItem) site.SidebarGroup {
	group, err := site.NewSidebarGroup(text, items...)
	return keep(c, group, err)
}

func (c *collector) knownIcon(name string) site.Icon {
	icon, err := site.KnownIcon(name)
	return keep(c, icon, err)
}

func (c *collector) inlineIcon(svg string) site.Icon {
	icon, err := site.InlineIcon(svg)
	return keep(c, icon, err)
}

func (c *collector) social(icon site.Icon, link, ariaLabel string) site.SocialLink {
	s, err := site.NewSocialLink(icon, link)
	s = keep(c, s, err)
	if ariaLabel != "" {
		s = s.WithAriaLabel(ariaLabel)
	}
	return s
}

func (c *collector) search(provider string, opts ...site.SearchOption) site.SearchConfig {
	s, err := site.NewSearchConfig(provider, opts...)
	return keep(c, s, err)
}

func (c *collector) labels(values map[site.LabelKey]string) site.ThemeLabels {
	l, err := site.NewThemeLabels(values)
	return keep(c, l, err)
}

func (c *collector) outline(lo, hi int) site.Outline {
	o, err := site.NewOutline(lo, hi)
	return keep(c, o, err)
}

func (c *collector) lastUpdated(dateStyle, timeStyle string) site.LastUpdated {
	lu, err := site.NewLastUpdated(dateStyle, timeStyle)
	return keep(c, lu, err)
}
