package site

import (
	"strconv"
	"strings"
)

// SidebarItem is a leaf link in a sidebar group.
type SidebarItem struct {
	text string
	link string
}

// NewSidebarItem validates a sidebar link.
func NewSidebarItem(text, link string) (SidebarItem, error) {
	if strings.TrimSpace(text) == "" {
		return SidebarItem{}, required("text", "sidebar item text")
	}
	if err := checkLink("link", link); err != nil {
		return SidebarItem{}, err
	}
	return SidebarItem{text: text, link: link}, nil
}

func (i SidebarItem) Text() string { return i.text }
func (i SidebarItem) Link() string { return i.link }

// SidebarGroup is a headed, ordered list of sidebar items.
type SidebarGroup struct {
	text      string
	collapsed *bool
	items     []SidebarItem
}

// NewSidebarGroup creates a group; its heading must not be empty.
func NewSidebarGroup(text string, items ...SidebarItem) (SidebarGroup, error) {
	if strings.TrimSpace(text) == "" {
		return SidebarGroup{}, required("text", "sidebar group heading")
	}
	return SidebarGroup{text: text, items: cloneOrNil(items)}, nil
}

// WithCollapsed makes the group collapsible, initially collapsed or not.
func (g SidebarGroup) WithCollapsed(collapsed bool) SidebarGroup {
	g.collapsed = &collapsed
	return g
}

func (g SidebarGroup) Text() string         { return g.text }
func (g SidebarGroup) Items() []SidebarItem { return cloneOrNil(g.items) }

// Collapsed reports the collapse state and whether the group is collapsible at all.
func (g SidebarGroup) Collapsed() (collapsed, collapsible bool) {
	if g.collapsed == nil {
		return false, false
	}
	return *g.collapsed, true
}

// SidebarMap maps path prefixes to sidebar groups. Declaration order is kept.
type SidebarMap struct {
	entries []sidebarEntry
}

type sidebarEntry struct {
	prefix string
	groups []SidebarGroup
}

const prefixShape = "path prefix starting and ending with '/', such as /guide/"

func sidebarField(prefix string) string {
	return "themeConfig.sidebar[" + strconv.Quote(prefix) + "]"
}

func (m SidebarMap) with(prefix string, groups []SidebarGroup) (SidebarMap, error) {
	field := sidebarField(prefix)
	if !strings.HasPrefix(prefix, "/") || !strings.HasSuffix(prefix, "/") {
		return m, invalid(field, prefixShape, "sidebar prefix must start and end with '/'", prefix)
	}
	if ClassifyLink(prefix) != LinkInternal || strings.ContainsAny(prefix, "?#") {
		return m, invalid(field, prefixShape, "sidebar prefix is not a plain path", prefix)
	}
	if _, ok := m.Lookup(prefix); ok {
		return m, invalid(field, "unique prefix", "duplicate sidebar prefix", prefix)
	}
	for i, g := range groups {
		if g.text == "" {
			return m, invalid(field+"["+strconv.Itoa(i)+"]", "group created with NewSidebarGroup", "zero sidebar group", nil)
		}
		for j, item := range g.items {
			if item.link == "" {
				return m, invalid(field+"["+strconv.Itoa(i)+"].items["+strconv.Itoa(j)+"]", "item created with NewSidebarItem", "zero sidebar item", nil)
			}
		}
	}
	entries := make([]sidebarEntry, len(m.entries), len(m.entries)+1)
	copy(entries, m.entries)
	return SidebarMap{entries: append(entries, sidebarEntry{prefix: prefix, groups: cloneOrNil(groups)})}, nil
}

// Len returns the number of prefixes.
func (m SidebarMap) Len() int { return len(m.entries) }

// Prefixes returns the keys in declaration order.
func (m SidebarMap) Prefixes() []string {
	out := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e.prefix)
	}
	return out
}

// Lookup returns the groups registered for exactly prefix.
func (m SidebarMap) Lookup(prefix string) ([]SidebarGroup, bool) {
	for _, e := range m.entries {
		if e.prefix == prefix {
			return cloneOrNil(e.groups), true
		}
	}
	return nil, false
}

// Match returns the longest prefix that path starts with.
func (m SidebarMap) Match(path string) (string, bool) {
	best, found := "", false
	for _, e := range m.entries {
		if strings.HasPrefix(path, e.prefix) && len(e.prefix) > len(best) {
			best, found = e.prefix, true
		}
	}
	return best, found
}

// Select returns the sidebar for path: the groups of the longest matching
// prefix, or an empty sequence when no prefix matches.
func (m SidebarMap) Select(path string) []SidebarGroup {
	prefix, ok := m.Match(path)
	if !ok {
		return nil
	}
	groups, _ := m.Lookup(prefix)
	return groups
}
