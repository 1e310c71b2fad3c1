// Package pages indexes the Markdown files of a docs directory and maps
// site routes to them.
package pages

import (
	"io/fs"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"

	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/logfields"
)

// Page is one Markdown file of the docs tree.
type Page struct {
	// Path is relative to the docs root, slash separated.
	Path  string
	Route string
	Title string
	Links []Link
}

// Index is a read-only snapshot of a docs directory.
type Index struct {
	root   string
	pages  []Page
	routes map[string]int
}

// Scan walks root and parses every Markdown file below it. Hidden files and
// directories are skipped.
func Scan(fsys afero.Fs, root string) (*Index, error) {
	ok, err := afero.DirExists(fsys, root)
	if err != nil || !ok {
		return nil, ferrors.FileSystemError("docs directory not found").
			WithContext(ferrors.ContextPath, root).
			WithCause(err).
			Build()
	}

	ix := &Index{root: root, routes: map[string]int{}}
	err = afero.Walk(fsys, root, func(p string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		name := info.Name()
		if strings.HasPrefix(name, ".") && p != root {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() || !isMarkdown(name) {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		content, err := afero.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		title, links := parsePage(content)
		ix.pages = append(ix.pages, Page{Path: rel, Route: RouteFor(rel), Title: title, Links: links})
		return nil
	})
	if err != nil {
		return nil, ferrors.FileSystemError("failed to scan docs directory").
			WithContext(ferrors.ContextPath, root).
			WithCause(err).
			Build()
	}

	slices.SortFunc(ix.pages, func(a, b Page) int { return strings.Compare(a.Path, b.Path) })
	for i, p := range ix.pages {
		if _, dup := ix.routes[p.Route]; !dup {
			ix.routes[p.Route] = i
		}
	}
	slog.Debug("Indexed docs", logfields.Path(root), logfields.Count(len(ix.pages)))
	return ix, nil
}

// Root returns the scanned directory.
func (ix *Index) Root() string { return ix.root }

// Len returns the number of pages.
func (ix *Index) Len() int { return len(ix.pages) }

// Pages returns all pages ordered by path.
func (ix *Index) Pages() []Page { return slices.Clone(ix.pages) }

// Lookup returns the page serving route.
func (ix *Index) Lookup(route string) (Page, bool) {
	for _, candidate := range candidates(route) {
		if i, ok := ix.routes[candidate]; ok {
			return ix.pages[i], true
		}
	}
	return Page{}, false
}

// Has reports whether some page serves route.
func (ix *Index) Has(route string) bool {
	_, ok := ix.Lookup(route)
	return ok
}

func isMarkdown(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".md" || ext == ".markdown"
}
