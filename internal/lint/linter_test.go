package lint

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docnav/internal/pages"
	"git.home.luguber.info/inful/docnav/internal/site"
)

const labelsYAML = `
  labels:
    outlineLabel: On this page
    docFooterPrev: Previous page
    docFooterNext: Next page
    lastUpdatedText: Last updated
    darkModeSwitchLabel: Appearance
    lightModeSwitchTitle: Switch to light theme
    darkModeSwitchTitle: Switch to dark theme
    sidebarMenuLabel: Menu
    returnToTopLabel: Return to top
    langMenuLabel: Change language
`

const searchStrings = `
        button.buttonText: Search
        button.buttonAriaLabel: Search
        modal.displayDetails: Details
        modal.resetButtonTitle: Reset
        modal.backButtonTitle: Back
        modal.noResultsText: No results
        modal.footer.selectText: select
        modal.footer.navigateText: navigate
        modal.footer.closeText: close
`

func parse(t *testing.T, theme string) *site.Configuration {
	t.Helper()
	cfg, err := site.Parse([]byte("title: Widget\nlang: en\nthemeConfig:\n" + theme + labelsYAML))
	require.NoError(t, err)
	return cfg
}

func issuesFor(result *Result, rule string) []Issue {
	var out []Issue
	for _, issue := range result.Issues {
		if issue.Rule == rule {
			out = append(out, issue)
		}
	}
	return out
}

const sectionsTheme = `  nav:
    - { text: Guide, link: /guide/intro }
    - { text: About, link: /about }
    - { text: Repo, link: "https://github.com/example/widget" }
  sidebar:
    /guide/:
      - text: Basics
        items:
          - { text: Intro, link: /guide/intro }
          - { text: Transactions, link: /guide/advanced/tx }
          - { text: Team, link: /team/ }
          - { text: RFC, link: "https://example.com/rfc" }
    /guide/advanced/:
      - text: Advanced
        items:
          - { text: Transactions, link: /guide/advanced/tx }
`

func TestSidebarRules(t *testing.T) {
	result := NewLinter(nil).Lint(Input{Config: parse(t, sectionsTheme)})

	unscoped := issuesFor(result, "sidebar-link-unscoped")
	require.Len(t, unscoped, 1)
	assert.Equal(t, SeverityWarning, unscoped[0].Severity)
	assert.Equal(t, `themeConfig.sidebar["/guide/"][0].items[2].link`, unscoped[0].Field)

	foreign := issuesFor(result, "sidebar-link-foreign-section")
	require.Len(t, foreign, 1)
	assert.Equal(t, SeverityInfo, foreign[0].Severity)
	assert.Equal(t, `themeConfig.sidebar["/guide/"][0].items[1].link`, foreign[0].Field)
	assert.Contains(t, foreign[0].Message, "/guide/advanced/")

	noSidebar := issuesFor(result, "nav-link-no-sidebar")
	require.Len(t, noSidebar, 1)
	assert.Equal(t, "themeConfig.nav[1].link", noSidebar[0].Field)

	assert.Equal(t, 8, result.LinksTotal)
	assert.True(t, result.HasWarnings())
}

func TestDuplicateAndEmptyGroups(t *testing.T) {
	cfg := parse(t, `  nav:
    - { text: Guide, link: /guide/ }
    - text: More
      items:
        - { text: Blog, link: "https://example.com/blog" }
        - { text: Blog, link: "https://example.com/news" }
    - { text: Guide, link: /guide/other }
    - text: v2.0
      items: []
`)
	result := NewLinter(nil).Lint(Input{Config: cfg})

	dups := issuesFor(result, "duplicate-sibling-text")
	require.Len(t, dups, 2)
	assert.Equal(t, "themeConfig.nav[2].text", dups[0].Field)
	assert.Equal(t, "themeConfig.nav[1].items[1].text", dups[1].Field)

	empty := issuesFor(result, "empty-nav-group")
	require.Len(t, empty, 1)
	assert.Equal(t, "themeConfig.nav[3]", empty[0].Field)
	assert.Contains(t, empty[0].Message, "v2.0")

	assert.False(t, result.HasWarnings())
}

func TestUnusedSearchLocales(t *testing.T) {
	cfg := parse(t, "  search:\n    provider: none\n    locales:\n      zh:"+searchStrings)
	result := NewLinter(nil).Lint(Input{Config: cfg})

	issues := issuesFor(result, "search-locales-unused")
	require.Len(t, issues, 1)
	assert.Equal(t, "themeConfig.search.locales", issues[0].Field)

	cfg = parse(t, "  search:\n    provider: local\n    locales:\n      zh:"+searchStrings)
	assert.Empty(t, issuesFor(NewLinter(nil).Lint(Input{Config: cfg}), "search-locales-unused"))
}

func TestFooterRules(t *testing.T) {
	cfg := parse(t, `  footer:
    message: 'Read the <a href="/guide/license">license</a> or <a href="guide/x">this</a>.'
    copyright: '© Widget <img src="x" onerror="alert(1)">'
`)
	result := NewLinter(nil).Lint(Input{Config: cfg})

	unsafe := issuesFor(result, "footer-html-unsafe")
	require.Len(t, unsafe, 1)
	assert.Equal(t, "themeConfig.footer.copyright", unsafe[0].Field)

	malformed := issuesFor(result, "footer-link-malformed")
	require.Len(t, malformed, 1)
	assert.Equal(t, "themeConfig.footer.message", malformed[0].Field)
	assert.Contains(t, malformed[0].Message, "guide/x")
}

func TestPlainFooterIsClean(t *testing.T) {
	cfg := parse(t, `  footer:
    message: 'Released under the MIT License. <a href="#top">Back to top</a>'
    copyright: 'Copyright © 2026 <a href="https://example.com">Widget</a>'
`)
	result := NewLinter(nil).Lint(Input{Config: cfg})
	assert.Empty(t, issuesFor(result, "footer-html-unsafe"))
	assert.Empty(t, issuesFor(result, "footer-link-malformed"))
	assert.False(t, NewLinter(nil).Failed(result))
}

func TestPageRules(t *testing.T) {
	fsys := afero.NewMemMapFs()
	for name, content := range map[string]string{
		"docs/guide/intro.md":          "# Intro\n\nSee [setup](setup.md) and [transactions](advanced/tx).\n\n![diagram](diagram.png)\n",
		"docs/guide/advanced/tx.md":    "# Transactions\n\nBack to [intro](../intro).\n",
		"docs/guide/advanced/index.md": "# Advanced\n",
	} {
		require.NoError(t, afero.WriteFile(fsys, name, []byte(content), 0o644))
	}
	ix, err := pages.Scan(fsys, "docs")
	require.NoError(t, err)

	result := NewLinter(nil).Lint(Input{Config: parse(t, sectionsTheme), Pages: ix})
	assert.Equal(t, 3, result.PagesTotal)

	missing := issuesFor(result, "page-missing")
	fields := make([]string, 0, len(missing))
	for _, issue := range missing {
		fields = append(fields, issue.Field)
	}
	assert.Equal(t, []string{
		"themeConfig.nav[1].link",
		`themeConfig.sidebar["/guide/"][0].items[2].link`,
	}, fields)

	unresolved := issuesFor(result, "page-link-unresolved")
	require.Len(t, unresolved, 1)
	assert.Equal(t, "guide/intro.md", unresolved[0].FilePath)
	assert.Equal(t, 3, unresolved[0].Line)
	assert.Contains(t, unresolved[0].Message, "/guide/setup")
	assert.Equal(t, "guide/intro.md:3", unresolved[0].Location())
}

func TestPageRulesNeedDocs(t *testing.T) {
	result := NewLinter(nil).Lint(Input{Config: parse(t, sectionsTheme)})
	assert.Empty(t, issuesFor(result, "page-missing"))
	assert.Empty(t, issuesFor(result, "page-link-unresolved"))
	assert.Zero(t, result.PagesTotal)
}

func TestQuiet(t *testing.T) {
	cfg := parse(t, sectionsTheme)

	loud := NewLinter(&Config{})
	result := loud.Lint(Input{Config: cfg})
	assert.NotZero(t, result.InfoCount())
	assert.True(t, loud.Failed(result))

	quiet := NewLinter(&Config{Quiet: true})
	result = quiet.Lint(Input{Config: cfg})
	assert.Zero(t, result.InfoCount())
	assert.Equal(t, 1, result.WarningCount())
	assert.False(t, quiet.Failed(result))
}

func TestRulesAreUnique(t *testing.T) {
	names := NewLinter(nil).Rules()
	seen := map[string]bool{}
	for _, name := range names {
		assert.False(t, seen[name], name)
		seen[name] = true
	}
	assert.Len(t, names, 10)
}
