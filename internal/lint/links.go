package lint

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"git.home.luguber.info/inful/docnav/internal/site"
)

type linkSource int

const (
	fromNav linkSource = iota
	fromSidebar
	fromFooter
)

// configLink is one link declared somewhere in a configuration.
type configLink struct {
	source linkSource
	field  string
	link   string
	// prefix is the sidebar that lists the link.
	prefix string
}

func (c configLink) internal() bool { return site.IsInternal(c.link) }

func (c configLink) route() string { return site.RoutePath(c.link) }

// configLinks collects nav leaves, sidebar items and footer anchors in
// declaration order.
func configLinks(cfg *site.Configuration) []configLink {
	if cfg == nil {
		return nil
	}
	var out []configLink
	out = append(out, navLinks(cfg.Nav(), "themeConfig.nav")...)

	sidebar := cfg.Sidebar()
	for _, prefix := range sidebar.Prefixes() {
		groups, _ := sidebar.Lookup(prefix)
		base := "themeConfig.sidebar[" + strconv.Quote(prefix) + "]"
		for i, g := range groups {
			for j, item := range g.Items() {
				out = append(out, configLink{
					source: fromSidebar,
					field:  base + "[" + strconv.Itoa(i) + "].items[" + strconv.Itoa(j) + "].link",
					link:   item.Link(),
					prefix: prefix,
				})
			}
		}
	}

	footer := cfg.Footer()
	for _, part := range []struct{ field, html string }{
		{"themeConfig.footer.message", footer.Message},
		{"themeConfig.footer.copyright", footer.Copyright},
	} {
		for _, href := range anchors(part.html) {
			out = append(out, configLink{source: fromFooter, field: part.field, link: href})
		}
	}
	return out
}

func navLinks(entries []site.NavEntry, base string) []configLink {
	var out []configLink
	for i, e := range entries {
		field := base + "[" + strconv.Itoa(i) + "]"
		if e.IsGroup() {
			out = append(out, navLinks(e.Items(), field+".items")...)
			continue
		}
		out = append(out, configLink{source: fromNav, field: field + ".link", link: e.Link()})
	}
	return out
}

// anchors returns the href of every <a> element in an HTML fragment.
func anchors(fragment string) []string {
	if !strings.Contains(fragment, "<") {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil
	}
	var out []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		out = append(out, href)
	})
	return out
}
