package site

// Configuration is the complete, validated navigation configuration of a
// site. It is built once and never mutated.
type Configuration struct {
	meta        Metadata
	nav         []NavEntry
	sidebar     SidebarMap
	social      []SocialLink
	search      SearchConfig
	labels      ThemeLabels
	footer      Footer
	outline     Outline
	lastUpdated *LastUpdated
}

func (c *Configuration) Metadata() Metadata        { return c.meta }
func (c *Configuration) Nav() []NavEntry           { return cloneOrNil(c.nav) }
func (c *Configuration) Sidebar() SidebarMap       { return c.sidebar }
func (c *Configuration) SocialLinks() []SocialLink { return cloneOrNil(c.social) }
func (c *Configuration) Search() SearchConfig      { return c.search }
func (c *Configuration) Labels() ThemeLabels       { return c.labels }
func (c *Configuration) Footer() Footer            { return c.footer }
func (c *Configuration) Outline() Outline          { return c.outline }

// LastUpdated returns the last-updated options and whether the stamp is enabled.
func (c *Configuration) LastUpdated() (LastUpdated, bool) {
	if c.lastUpdated == nil {
		return LastUpdated{}, false
	}
	return *c.lastUpdated, true
}

// SidebarFor returns the sidebar shown on the page at path: the groups of
// the longest sidebar prefix path starts with, or nothing.
func (c *Configuration) SidebarFor(path string) []SidebarGroup {
	return c.sidebar.Select(path)
}
