package site

import (
	"regexp"
	"strings"
)

// NavEntry is a top navigation entry: either a leaf with a link or a group
// of further entries. A group with no items renders as a plain label.
type NavEntry struct {
	text        string
	link        string
	activeMatch string
	group       bool
	items       []NavEntry
}

// NewNavLink creates a leaf entry.
func NewNavLink(text, link string) (NavEntry, error) {
	if strings.TrimSpace(text) == "" {
		return NavEntry{}, required("text", "nav entry text")
	}
	if err := checkLink("link", link); err != nil {
		return NavEntry{}, err
	}
	return NavEntry{text: text, link: link}, nil
}

// NewNavGroup creates a group entry. Zero items is legal.
func NewNavGroup(text string, items ...NavEntry) (NavEntry, error) {
	if strings.TrimSpace(text) == "" {
		return NavEntry{}, required("text", "nav group text")
	}
	return NavEntry{text: text, group: true, items: cloneOrNil(items)}, nil
}

// WithActiveMatch returns a copy of a leaf that is highlighted whenever the
// current route matches pattern.
func (e NavEntry) WithActiveMatch(pattern string) (NavEntry, error) {
	if e.group {
		return NavEntry{}, invalid("activeMatch", "no activeMatch on groups", "activeMatch is only valid on links", pattern)
	}
	if _, err := regexp.Compile(pattern); err != nil {
		return NavEntry{}, invalid("activeMatch", "regular expression", "activeMatch does not compile", pattern)
	}
	e.activeMatch = pattern
	return e, nil
}

func (e NavEntry) Text() string        { return e.text }
func (e NavEntry) Link() string        { return e.link }
func (e NavEntry) ActiveMatch() string { return e.activeMatch }
func (e NavEntry) IsGroup() bool       { return e.group }
func (e NavEntry) Items() []NavEntry   { return cloneOrNil(e.items) }

// Leaves returns every leaf below and including e, depth first.
func (e NavEntry) Leaves() []NavEntry {
	if !e.group {
		return []NavEntry{e}
	}
	var out []NavEntry
	for _, item := range e.items {
		out = append(out, item.Leaves()...)
	}
	return out
}
