package site

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSidebarSelection(t *testing.T) {
	cfg := fullConfig(t)

	t.Run("guide page selects the guide sidebar", func(t *testing.T) {
		groups := cfg.SidebarFor("/guide/getting-started")
		require.Len(t, groups, 2)
		assert.Equal(t, "Basics", groups[0].Text())
		assert.Equal(t, "Advanced", groups[1].Text())
	})

	t.Run("unmatched path has no sidebar", func(t *testing.T) {
		assert.Empty(t, cfg.SidebarFor("/about"))
	})

	t.Run("longest prefix wins", func(t *testing.T) {
		groups := cfg.SidebarFor("/guide/advanced/transaction")
		require.Len(t, groups, 1)
		assert.Equal(t, "Advanced", groups[0].Text())

		prefix, ok := cfg.Sidebar().Match("/guide/advanced/transaction")
		assert.True(t, ok)
		assert.Equal(t, "/guide/advanced/", prefix)
	})

	t.Run("selection is idempotent", func(t *testing.T) {
		for _, path := range []string{"/guide/getting-started", "/about", "/performance/results", "/guide/advanced/"} {
			assert.Equal(t, cfg.SidebarFor(path), cfg.SidebarFor(path), path)
		}
	})

	t.Run("prefix must match exactly as a string prefix", func(t *testing.T) {
		assert.Empty(t, cfg.SidebarFor("/guide"))
		assert.Empty(t, cfg.SidebarFor("/guides/other"))
	})
}

func TestSidebarPrefixesAreUniqueAndSlashDelimited(t *testing.T) {
	cfg := fullConfig(t)
	seen := map[string]bool{}
	for _, prefix := range cfg.Sidebar().Prefixes() {
		assert.True(t, strings.HasPrefix(prefix, "/") && strings.HasSuffix(prefix, "/"), prefix)
		assert.False(t, seen[prefix], "duplicate prefix %s", prefix)
		seen[prefix] = true
	}
	assert.Equal(t, []string{"/guide/", "/guide/advanced/", "/performance/"}, cfg.Sidebar().Prefixes())
}

func TestSidebarPrefixValidation(t *testing.T) {
	meta := must[Metadata](t)(NewMetadata("Widget", "", "en"))
	labels := must[ThemeLabels](t)(NewThemeLabels(englishLabels()))

	tests := []struct {
		name   string
		prefix string
	}{
		{"missing leading slash", "guide/"},
		{"missing trailing slash", "/guide"},
		{"empty", ""},
		{"fragment", "/guide#x/"},
		{"whitespace", "/my guide/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBuilder(meta).Sidebar(tt.prefix).Labels(labels).Build()
			requireField(t, err, `themeConfig.sidebar["`+tt.prefix+`"]`)
		})
	}

	t.Run("duplicate prefix", func(t *testing.T) {
		_, err := NewBuilder(meta).Sidebar("/guide/").Sidebar("/guide/").Labels(labels).Build()
		c := requireField(t, err, `themeConfig.sidebar["/guide/"]`)
		assert.Equal(t, "duplicate sidebar prefix", c.Message())
	})

	t.Run("zero-value group", func(t *testing.T) {
		_, err := NewBuilder(meta).Sidebar("/guide/", SidebarGroup{}).Labels(labels).Build()
		requireField(t, err, `themeConfig.sidebar["/guide/"][0]`)
	})
}

func TestSidebarRecords(t *testing.T) {
	_, err := NewSidebarItem("", "/guide/")
	requireField(t, err, "text")

	_, err = NewSidebarItem("Intro", "guide/intro")
	requireField(t, err, "link")

	_, err = NewSidebarGroup("  ")
	requireField(t, err, "text")

	external, err := NewSidebarItem("RFC", "https://example.com/rfc")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/rfc", external.Link())

	group := must[SidebarGroup](t)(NewSidebarGroup("Basics", external))
	collapsed, collapsible := group.Collapsed()
	assert.False(t, collapsed)
	assert.False(t, collapsible)

	collapsed, collapsible = group.WithCollapsed(false).Collapsed()
	assert.False(t, collapsed)
	assert.True(t, collapsible)
}

func TestSidebarAccessorsReturnCopies(t *testing.T) {
	cfg := fullConfig(t)

	groups := cfg.SidebarFor("/guide/")
	groups[0] = SidebarGroup{}
	assert.Equal(t, "Basics", cfg.SidebarFor("/guide/")[0].Text())

	items := cfg.SidebarFor("/guide/")[0].Items()
	items[0] = SidebarItem{}
	assert.Equal(t, "Getting started", cfg.SidebarFor("/guide/")[0].Items()[0].Text())
}
