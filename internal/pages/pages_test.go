package pages

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
)

func TestRouteFor(t *testing.T) {
	tests := map[string]string{
		"index.md":                 "/",
		"guide/index.md":           "/guide/",
		"guide/getting-started.md": "/guide/getting-started",
		"guide/advanced/index.md":  "/guide/advanced/",
		"notes.markdown":           "/notes",
		`guide\windows.md`:         "/guide/windows",
	}
	for file, want := range tests {
		assert.Equal(t, want, RouteFor(file), file)
	}
}

func TestResolveLink(t *testing.T) {
	tests := []struct {
		from, target string
		want         string
		ok           bool
	}{
		{"/guide/intro", "/performance/", "/performance/", true},
		{"/guide/intro", "setup", "/guide/setup", true},
		{"/guide/intro", "./setup.md#install", "/guide/setup.md", true},
		{"/guide/", "advanced/", "/guide/advanced/", true},
		{"/guide/advanced/tx", "../intro", "/guide/intro", true},
		{"/", "guide/", "/guide/", true},
		{"/guide/intro", "#section", "", false},
		{"/guide/intro", "https://example.com", "", false},
		{"/guide/intro", "mailto:a@example.com", "", false},
		{"/guide/intro", "//cdn.example.com/x", "", false},
		{"/guide/intro", "", "", false},
	}
	for _, tt := range tests {
		got, ok := ResolveLink(tt.from, tt.target)
		assert.Equal(t, tt.ok, ok, "%s -> %s", tt.from, tt.target)
		assert.Equal(t, tt.want, got, "%s -> %s", tt.from, tt.target)
	}
}

func newDocs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fsys, name, []byte(content), 0o644))
	}
	return fsys
}

func TestScanAndLookup(t *testing.T) {
	fsys := newDocs(t, map[string]string{
		"docs/index.md":                 "# Home\n",
		"docs/guide/getting-started.md": "---\ntitle: Getting started\n---\n\nSee [setup](./setup.md).\n",
		"docs/guide/index.md":           "# Guide\n",
		"docs/guide/advanced/index.md":  "# Advanced\n",
		"docs/.vitepress/config.md":     "# hidden\n",
		"docs/logo.svg":                 "<svg/>",
	})

	ix, err := Scan(fsys, "docs")
	require.NoError(t, err)
	assert.Equal(t, 4, ix.Len())
	assert.Equal(t, "docs", ix.Root())

	tests := map[string]string{
		"/":                           "index.md",
		"/index.html":                 "index.md",
		"/guide/":                     "guide/index.md",
		"/guide":                      "guide/index.md",
		"/guide/index":                "guide/index.md",
		"/guide/getting-started":      "guide/getting-started.md",
		"/guide/getting-started.html": "guide/getting-started.md",
		"/guide/getting-started#x":    "guide/getting-started.md",
		"/guide/advanced/":            "guide/advanced/index.md",
	}
	for route, want := range tests {
		page, ok := ix.Lookup(route)
		if assert.True(t, ok, route) {
			assert.Equal(t, want, page.Path, route)
		}
	}

	assert.False(t, ix.Has("/guide/setup"))
	assert.False(t, ix.Has("/performance/"))
	assert.False(t, ix.Has("/.vitepress/config"))

	page, _ := ix.Lookup("/guide/getting-started")
	assert.Equal(t, "Getting started", page.Title)
	require.Len(t, page.Links, 1)
	assert.Equal(t, "./setup.md", page.Links[0].Destination)
	assert.Equal(t, 5, page.Links[0].Line)

	home, _ := ix.Lookup("/")
	assert.Equal(t, "Home", home.Title)
}

func TestScanMissingDirectory(t *testing.T) {
	_, err := Scan(afero.NewMemMapFs(), "docs")
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryFileSystem))
}

func TestParsePage(t *testing.T) {
	content := []byte("# The `docnav` tool\n\nIntro with <https://example.com> and [a link](/guide/).\n\n" +
		"Another [ref][r].\n\n[r]: ../other\n")

	title, links := parsePage(content)
	assert.Equal(t, "The docnav tool", title)
	require.Len(t, links, 3)
	assert.Equal(t, "https://example.com", links[0].Destination)
	assert.Equal(t, "/guide/", links[1].Destination)
	assert.Equal(t, 3, links[1].Line)
	assert.Equal(t, "../other", links[2].Destination)
	assert.Equal(t, 5, links[2].Line)
}

func TestSplitFrontmatter(t *testing.T) {
	front, body, lines := splitFrontmatter([]byte("---\r\ntitle: x\r\n---\r\nbody\r\n"))
	assert.Equal(t, "title: x\n", string(front))
	assert.Equal(t, "body\n", string(body))
	assert.Equal(t, 3, lines)

	front, body, lines = splitFrontmatter([]byte("no frontmatter\n"))
	assert.Nil(t, front)
	assert.Equal(t, "no frontmatter\n", string(body))
	assert.Zero(t, lines)

	_, body, _ = splitFrontmatter([]byte("---\nunterminated\n"))
	assert.Equal(t, "---\nunterminated\n", string(body))
}
