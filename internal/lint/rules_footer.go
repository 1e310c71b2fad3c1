package lint

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"

	"git.home.luguber.info/inful/docnav/internal/site"
)

// footerPolicy describes the markup a footer is expected to need.
var footerPolicy = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(false)
	p.AllowAttrs("target").Matching(bluemonday.SpaceSeparatedTokens).OnElements("a")
	return p
}()

// FooterMarkupRule flags footer HTML that a user-content sanitizer would
// strip, such as scripts or event handlers. The generator injects the
// footer verbatim.
type FooterMarkupRule struct{}

func (r *FooterMarkupRule) Name() string { return "footer-html-unsafe" }
func (r *FooterMarkupRule) AppliesTo(in Input) bool {
	return in.Config != nil && !in.Config.Footer().IsZero()
}

func (r *FooterMarkupRule) Check(in Input) []Issue {
	footer := in.Config.Footer()
	var issues []Issue
	for _, part := range []struct{ field, html string }{
		{"themeConfig.footer.message", footer.Message},
		{"themeConfig.footer.copyright", footer.Copyright},
	} {
		if !strings.Contains(part.html, "<") {
			continue
		}
		sanitized := footerPolicy.Sanitize(part.html)
		beforeElems, beforeAttrs := markupShape(part.html)
		afterElems, afterAttrs := markupShape(sanitized)
		if afterElems >= beforeElems && afterAttrs >= beforeAttrs {
			continue
		}
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Rule:     r.Name(),
			Field:    part.field,
			Message:  "Footer contains markup that is unsafe to inject into every page",
			Explanation: fmt.Sprintf(`The footer is rendered as raw HTML on every page. Sanitized, it would read:
%s`, sanitized),
			Fix: "Keep the footer to plain links and inline formatting",
		})
	}
	return issues
}

// markupShape counts elements and attributes in an HTML fragment.
func markupShape(fragment string) (elements, attrs int) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return 0, 0
	}
	doc.Find("*").Each(func(_ int, s *goquery.Selection) {
		elements++
		for _, n := range s.Nodes {
			attrs += len(n.Attr)
		}
	})
	return elements, attrs
}

// FooterLinkRule flags footer anchors with malformed hrefs.
type FooterLinkRule struct{}

func (r *FooterLinkRule) Name() string { return "footer-link-malformed" }
func (r *FooterLinkRule) AppliesTo(in Input) bool {
	return in.Config != nil && !in.Config.Footer().IsZero()
}

func (r *FooterLinkRule) Check(in Input) []Issue {
	var issues []Issue
	for _, l := range configLinks(in.Config) {
		if l.source != fromFooter || site.ClassifyLink(l.link) != site.LinkInvalid {
			continue
		}
		// In-page anchors such as "back to top".
		if strings.HasPrefix(l.link, "#") {
			continue
		}
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Rule:     r.Name(),
			Field:    l.field,
			Message:  fmt.Sprintf("Footer link %q is neither a site path nor an absolute URL", l.link),
			Fix:      "Use a path starting with /, a #fragment or a full http(s) URL",
		})
	}
	return issues
}
