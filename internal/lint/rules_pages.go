package lint

import (
	"fmt"
	"path"

	"git.home.luguber.info/inful/docnav/internal/pages"
)

// MissingPageRule flags internal configuration links without a page file.
type MissingPageRule struct{}

func (r *MissingPageRule) Name() string            { return "page-missing" }
func (r *MissingPageRule) AppliesTo(in Input) bool { return in.Config != nil && in.Pages != nil }

func (r *MissingPageRule) Check(in Input) []Issue {
	var issues []Issue
	for _, l := range configLinks(in.Config) {
		if !l.internal() || in.Pages.Has(l.route()) {
			continue
		}
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Rule:     r.Name(),
			Field:    l.field,
			Message:  fmt.Sprintf("No page serves %s", l.route()),
			Explanation: fmt.Sprintf(`Looked for %s in %s.
The link still renders but leads to a not-found page.`, describeCandidates(l.route()), in.Pages.Root()),
			Fix: "Create the page or correct the link",
		})
	}
	return issues
}

// UnresolvedPageLinkRule flags Markdown links between pages that lead nowhere.
type UnresolvedPageLinkRule struct{}

func (r *UnresolvedPageLinkRule) Name() string            { return "page-link-unresolved" }
func (r *UnresolvedPageLinkRule) AppliesTo(in Input) bool { return in.Pages != nil }

func (r *UnresolvedPageLinkRule) Check(in Input) []Issue {
	var issues []Issue
	for _, page := range in.Pages.Pages() {
		for _, link := range page.Links {
			route, ok := pages.ResolveLink(page.Route, link.Destination)
			if !ok || !isPageRoute(route) || in.Pages.Has(route) {
				continue
			}
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Rule:     r.Name(),
				FilePath: page.Path,
				Line:     link.Line,
				Message:  fmt.Sprintf("Link %s resolves to %s, which has no page", link.Destination, route),
				Fix:      "Create the page or correct the link",
			})
		}
	}
	return issues
}

// isPageRoute excludes links to assets such as images or downloads.
func isPageRoute(route string) bool {
	switch path.Ext(route) {
	case "", ".md", ".html":
		return true
	default:
		return false
	}
}

func describeCandidates(route string) string {
	switch {
	case route == "/":
		return "index.md"
	case route[len(route)-1] == '/':
		return route[1:] + "index.md"
	default:
		return route[1:] + ".md or " + route[1:] + "/index.md"
	}
}
