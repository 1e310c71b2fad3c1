package site

import (
	"testing"

	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
)

func englishLabels() map[LabelKey]string {
	return map[LabelKey]string{
		LabelOutline:        "On this page",
		LabelDocFooterPrev:  "Previous page",
		LabelDocFooterNext:  "Next page",
		LabelLastUpdated:    "Last updated",
		LabelDarkModeSwitch: "Appearance",
		LabelLightModeTitle: "Switch to light theme",
		LabelDarkModeTitle:  "Switch to dark theme",
		LabelSidebarMenu:    "Menu",
		LabelReturnToTop:    "Return to top",
		LabelLanguageMenu:   "Change language",
	}
}

func englishSearch() map[SearchKey]string {
	return map[SearchKey]string{
		SearchButtonText:      "Search",
		SearchButtonAriaLabel: "Search docs",
		SearchDisplayDetails:  "Display detailed list",
		SearchResetTitle:      "Reset search",
		SearchBackTitle:       "Close search",
		SearchNoResults:       "No results for",
		SearchFooterSelect:    "to select",
		SearchFooterNavigate:  "to navigate",
		SearchFooterClose:     "to close",
	}
}

func must[T any](t *testing.T) func(T, error) T {
	t.Helper()
	return func(v T, err error) T {
		t.Helper()
		require.NoError(t, err)
		return v
	}
}

func requireField(t *testing.T, err error, field string) *ferrors.ClassifiedError {
	t.Helper()
	require.Error(t, err)
	classified, ok := ferrors.AsClassified(err)
	require.True(t, ok, "expected classified error, got %T: %v", err, err)
	require.Equal(t, ferrors.CategoryValidation, classified.Category())
	require.Equal(t, field, classified.Field())
	return classified
}

// fullConfig builds a configuration that exercises every record type.
func fullConfig(t *testing.T) *Configuration {
	t.Helper()

	favicon := must[HeadTag](t)(NewHeadTag("link", map[string]string{"rel": "icon", "href": "/favicon.ico"}))
	analytics := must[HeadTag](t)(NewHeadTag("script", map[string]string{"async": ""}))
	analytics = must[HeadTag](t)(analytics.WithContent("window.dataLayer = [];"))
	meta := must[Metadata](t)(NewMetadata("Widget", "Widget documentation", "en-US", favicon, analytics))

	guide := must[NavEntry](t)(NewNavLink("Guide", "/guide/getting-started"))
	guide = must[NavEntry](t)(guide.WithActiveMatch("^/guide/"))
	perf := must[NavEntry](t)(NewNavLink("Performance", "/performance/"))
	changelog := must[NavEntry](t)(NewNavLink("Changelog", "https://example.com/widget/releases"))
	links := must[NavEntry](t)(NewNavGroup("Links", changelog))
	empty := must[NavEntry](t)(NewNavGroup("v2.0"))

	item := must[SidebarItem](t)
	group := must[SidebarGroup](t)
	basics := group(NewSidebarGroup("Basics",
		item(NewSidebarItem("Getting started", "/guide/getting-started")),
		item(NewSidebarItem("Configuration", "/guide/configuration")),
	))
	advanced := group(NewSidebarGroup("Advanced",
		item(NewSidebarItem("Transactions", "/guide/advanced/transaction")),
	)).WithCollapsed(true)
	bench := group(NewSidebarGroup("Benchmarks",
		item(NewSidebarItem("Results", "/performance/results")),
	))

	github := must[Icon](t)(KnownIcon("github"))
	custom := must[Icon](t)(InlineIcon(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path d="M0 0h24v24H0z"/></svg>`))
	social := must[SocialLink](t)
	search := must[SearchConfig](t)(NewSearchConfig("local", WithSearchLocale("zh", englishSearch())))
	labels := must[ThemeLabels](t)(NewThemeLabels(englishLabels()))
	lastUpdated := must[LastUpdated](t)(NewLastUpdated("medium", "short"))

	cfg, err := NewBuilder(meta).
		Nav(guide, perf, links, empty).
		Sidebar("/guide/", basics, advanced).
		Sidebar("/guide/advanced/", advanced).
		Sidebar("/performance/", bench).
		Social(
			social(NewSocialLink(github, "https://github.com/example/widget")),
			social(NewSocialLink(custom, "https://chat.example.com")).WithAriaLabel("Chat"),
		).
		Search(search).
		Labels(labels).
		Footer("Released under the MIT License.", "Copyright © 2026 Widget contributors").
		Outline(must[Outline](t)(NewOutline(2, 3))).
		LastUpdated(lastUpdated).
		Build()
	require.NoError(t, err)
	return cfg
}
