package lint

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"

	"git.home.luguber.info/inful/docnav/internal/site"
)

// UnscopedSidebarLinkRule flags sidebar items whose page would render
// without any sidebar.
type UnscopedSidebarLinkRule struct{}

func (r *UnscopedSidebarLinkRule) Name() string            { return "sidebar-link-unscoped" }
func (r *UnscopedSidebarLinkRule) AppliesTo(in Input) bool { return in.Config != nil }

func (r *UnscopedSidebarLinkRule) Check(in Input) []Issue {
	sidebar := in.Config.Sidebar()
	var issues []Issue
	for _, l := range configLinks(in.Config) {
		if l.source != fromSidebar || !l.internal() {
			continue
		}
		if _, ok := sidebar.Match(l.route()); ok {
			continue
		}
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Rule:     r.Name(),
			Field:    l.field,
			Message:  fmt.Sprintf("Sidebar link %s is outside every sidebar prefix", l.link),
			Explanation: `The page is listed in a sidebar but no sidebar prefix matches its route,
so it renders without a sidebar. Readers who follow the link lose their navigation.`,
			Fix: "Move the page below a sidebar prefix or add a prefix that covers it",
		})
	}
	return issues
}

// ForeignSectionRule notes sidebar items that select a different sidebar
// than the one listing them.
type ForeignSectionRule struct{}

func (r *ForeignSectionRule) Name() string            { return "sidebar-link-foreign-section" }
func (r *ForeignSectionRule) AppliesTo(in Input) bool { return in.Config != nil }

func (r *ForeignSectionRule) Check(in Input) []Issue {
	sidebar := in.Config.Sidebar()
	var issues []Issue
	for _, l := range configLinks(in.Config) {
		if l.source != fromSidebar || !l.internal() {
			continue
		}
		selected, ok := sidebar.Match(l.route())
		if !ok || selected == l.prefix {
			continue
		}
		issues = append(issues, Issue{
			Severity:    SeverityInfo,
			Rule:        r.Name(),
			Field:       l.field,
			Message:     fmt.Sprintf("Sidebar link %s opens the %s sidebar", l.link, selected),
			Explanation: fmt.Sprintf("The item is listed under %s, but the page shows the sidebar of %s.", l.prefix, selected),
		})
	}
	return issues
}

// NavWithoutSidebarRule notes top navigation links to pages without a sidebar.
type NavWithoutSidebarRule struct{}

func (r *NavWithoutSidebarRule) Name() string            { return "nav-link-no-sidebar" }
func (r *NavWithoutSidebarRule) AppliesTo(in Input) bool { return in.Config != nil }

func (r *NavWithoutSidebarRule) Check(in Input) []Issue {
	sidebar := in.Config.Sidebar()
	var issues []Issue
	for _, l := range configLinks(in.Config) {
		if l.source != fromNav || !l.internal() {
			continue
		}
		if _, ok := sidebar.Match(l.route()); ok {
			continue
		}
		issues = append(issues, Issue{
			Severity: SeverityInfo,
			Rule:     r.Name(),
			Field:    l.field,
			Message:  fmt.Sprintf("Nav link %s selects no sidebar", l.link),
		})
	}
	return issues
}

// DuplicateSiblingRule notes siblings sharing the same text.
type DuplicateSiblingRule struct{}

func (r *DuplicateSiblingRule) Name() string            { return "duplicate-sibling-text" }
func (r *DuplicateSiblingRule) AppliesTo(in Input) bool { return in.Config != nil }

func (r *DuplicateSiblingRule) Check(in Input) []Issue {
	var issues []Issue
	report := func(field string, texts []string) {
		counts := lo.CountValues(texts)
		seen := map[string]bool{}
		for i, text := range texts {
			if counts[text] > 1 && seen[text] {
				issues = append(issues, Issue{
					Severity: SeverityInfo,
					Rule:     r.Name(),
					Field:    field + "[" + strconv.Itoa(i) + "].text",
					Message:  fmt.Sprintf("%q appears %d times among its siblings", text, counts[text]),
					Fix:      "Rename one of the entries so readers can tell them apart",
				})
			}
			seen[text] = true
		}
	}

	var walkNav func(field string, entries []site.NavEntry)
	walkNav = func(field string, entries []site.NavEntry) {
		report(field, lo.Map(entries, func(e site.NavEntry, _ int) string { return e.Text() }))
		for i, e := range entries {
			if e.IsGroup() {
				walkNav(field+"["+strconv.Itoa(i)+"].items", e.Items())
			}
		}
	}
	walkNav("themeConfig.nav", in.Config.Nav())

	sidebar := in.Config.Sidebar()
	for _, prefix := range sidebar.Prefixes() {
		groups, _ := sidebar.Lookup(prefix)
		field := "themeConfig.sidebar[" + strconv.Quote(prefix) + "]"
		report(field, lo.Map(groups, func(g site.SidebarGroup, _ int) string { return g.Text() }))
		for i, g := range groups {
			report(field+"["+strconv.Itoa(i)+"].items", lo.Map(g.Items(), func(item site.SidebarItem, _ int) string { return item.Text() }))
		}
	}
	return issues
}

// EmptyNavGroupRule notes nav groups without items, which render as labels.
type EmptyNavGroupRule struct{}

func (r *EmptyNavGroupRule) Name() string            { return "empty-nav-group" }
func (r *EmptyNavGroupRule) AppliesTo(in Input) bool { return in.Config != nil }

func (r *EmptyNavGroupRule) Check(in Input) []Issue {
	var issues []Issue
	var walk func(field string, entries []site.NavEntry)
	walk = func(field string, entries []site.NavEntry) {
		for i, e := range entries {
			if !e.IsGroup() {
				continue
			}
			f := field + "[" + strconv.Itoa(i) + "]"
			if len(e.Items()) == 0 {
				issues = append(issues, Issue{
					Severity: SeverityInfo,
					Rule:     r.Name(),
					Field:    f,
					Message:  fmt.Sprintf("Nav group %q has no items and renders as a plain label", e.Text()),
				})
			}
			walk(f+".items", e.Items())
		}
	}
	walk("themeConfig.nav", in.Config.Nav())
	return issues
}

// UnusedSearchLocalesRule flags search strings that no provider will show.
type UnusedSearchLocalesRule struct{}

func (r *UnusedSearchLocalesRule) Name() string            { return "search-locales-unused" }
func (r *UnusedSearchLocalesRule) AppliesTo(in Input) bool { return in.Config != nil }

func (r *UnusedSearchLocalesRule) Check(in Input) []Issue {
	search := in.Config.Search()
	if search.Provider() != site.SearchNone || len(search.Locales()) == 0 {
		return nil
	}
	return []Issue{{
		Severity: SeverityWarning,
		Rule:     r.Name(),
		Field:    "themeConfig.search.locales",
		Message:  fmt.Sprintf("Search is disabled but %d locale bundle(s) are declared", len(search.Locales())),
		Fix:      "Set search.provider to local or algolia, or drop the locales",
	}}
}
