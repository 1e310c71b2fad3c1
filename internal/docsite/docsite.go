// Package docsite holds the navigation configuration of the docnav
// documentation site itself.
package docsite

import (
	"git.home.luguber.info/inful/docnav/internal/site"
)

const (
	repoURL  = "https://github.com/inful/docnav"
	chatIcon = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path d="M4 4h16v12H7l-3 3z" fill="none" stroke="currentColor" stroke-width="2"/></svg>`
)

// Config assembles the built-in configuration. It has no inputs and always
// returns the same value; an error means the declaration below is broken.
func Config() (*site.Configuration, error) {
	var c collector

	meta := c.metadata("docnav", "Declarative navigation for documentation sites", "en-US",
		c.head("link", map[string]string{"rel": "icon", "type": "image/svg+xml", "href": "/logo.svg"}),
		c.head("meta", map[string]string{"name": "theme-color", "content": "#3c8772"}),
	)

	nav := []site.NavEntry{
		c.activeLink("Guide", "/guide/getting-started", "^/guide/"),
		c.activeLink("Performance", "/performance/", "^/performance/"),
		c.group("Links",
			c.link("Changelog", repoURL+"/releases"),
			c.link("Contributing", repoURL+"/blob/main/CONTRIBUTING.md"),
		),
	}

	basics := c.sidebarGroup("Introduction",
		c.item("Getting started", "/guide/getting-started"),
		c.item("Configuration file", "/guide/configuration"),
		c.item("Command line", "/guide/cli"),
	)
	navigation := c.sidebarGroup("Navigation",
		c.item("Top navigation", "/guide/nav"),
		c.item("Sidebars", "/guide/sidebars"),
		c.item("Social links", "/guide/social-links"),
		c.item("Search", "/guide/search"),
	)
	advanced := c.sidebarGroup("Advanced",
		c.item("Locale bundles", "/guide/advanced/locales"),
		c.item("Inline icons", "/guide/advanced/icons"),
		c.item("Exporting", "/guide/advanced/export"),
	).WithCollapsed(true)
	advancedOpen := c.sidebarGroup("Advanced",
		c.item("Locale bundles", "/guide/advanced/locales"),
		c.item("Inline icons", "/guide/advanced/icons"),
		c.item("Exporting", "/guide/advanced/export"),
	)
	performance := c.sidebarGroup("Performance",
		c.item("Overview", "/performance/"),
		c.item("Benchmarks", "/performance/benchmarks"),
	)

	social := []site.SocialLink{
		c.social(c.knownIcon("github"), repoURL, ""),
		c.social(c.inlineIcon(chatIcon), "https://matrix.to/#/%23docnav:matrix.org", "Chat"),
	}

	search := c.search("local", site.WithSearchLocale("zh", map[site.SearchKey]string{
		site.SearchButtonText:      "搜索文档",
		site.SearchButtonAriaLabel: "搜索文档",
		site.SearchDisplayDetails:  "显示详细列表",
		site.SearchResetTitle:      "清除查询条件",
		site.SearchBackTitle:       "关闭搜索",
		site.SearchNoResults:       "无法找到相关结果",
		site.SearchFooterSelect:    "选择",
		site.SearchFooterNavigate:  "切换",
		site.SearchFooterClose:     "关闭",
	}))

	labels := c.labels(map[site.LabelKey]string{
		site.LabelOutline:        "On this page",
		site.LabelDocFooterPrev:  "Previous page",
		site.LabelDocFooterNext:  "Next page",
		site.LabelLastUpdated:    "Last updated",
		site.LabelDarkModeSwitch: "Appearance",
		site.LabelLightModeTitle: "Switch to light theme",
		site.LabelDarkModeTitle:  "Switch to dark theme",
		site.LabelSidebarMenu:    "Menu",
		site.LabelReturnToTop:    "Return to top",
		site.LabelLanguageMenu:   "Change language",
	})

	outline := c.outline(2, 3)
	lastUpdated := c.lastUpdated("medium", "")

	if c.err != nil {
		return nil, c.err
	}
	return site.NewBuilder(meta).
		Nav(nav...).
		Sidebar("/guide/", basics, navigation, advanced).
		Sidebar("/guide/advanced/", advancedOpen).
		Sidebar("/performance/", performance).
		Social(social...).
		Search(search).
		Labels(labels).
		Footer("Released under the MIT License.", "Copyright © 2026 docnav contributors").
		Outline(outline).
		LastUpdated(lastUpdated).
		Build()
}
