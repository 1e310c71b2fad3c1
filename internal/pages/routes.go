package pages

import (
	"path"
	"strings"
)

// RouteFor returns the site route of a page file given relative to the docs
// root: guide/intro.md is /guide/intro, guide/index.md is /guide/.
func RouteFor(file string) string {
	file = strings.TrimPrefix(path.Clean("/"+filepathToSlash(file)), "/")
	trimmed := strings.TrimSuffix(file, path.Ext(file))
	switch {
	case trimmed == "index":
		return "/"
	case strings.HasSuffix(trimmed, "/index"):
		return "/" + strings.TrimSuffix(trimmed, "index")
	default:
		return "/" + trimmed
	}
}

// candidates lists the routes a page may be registered under for a link to
// route: /a/b is served by a/b.md or a/b/index.md, /a/ only by a/index.md.
func candidates(route string) []string {
	route = stripQuery(route)
	route = strings.TrimSuffix(route, ".html")
	route = strings.TrimSuffix(route, ".md")
	if route == "index" || strings.HasSuffix(route, "/index") {
		route = strings.TrimSuffix(route, "index")
	}
	if route == "" || route == "/" {
		return []string{"/"}
	}
	if strings.HasSuffix(route, "/") {
		return []string{route}
	}
	return []string{route, route + "/"}
}

// ResolveLink turns a link found on the page at fromRoute into a site
// route. ok is false for external links, pure fragments and other targets
// that do not address a page.
func ResolveLink(fromRoute, target string) (route string, ok bool) {
	target = strings.TrimSpace(target)
	if target == "" || strings.HasPrefix(target, "#") || strings.HasPrefix(target, "//") {
		return "", false
	}
	if i := strings.IndexAny(target, ":/?#"); i >= 0 && target[i] == ':' {
		// Has a scheme: http:, mailto: and the like.
		return "", false
	}
	target = stripQuery(target)
	if target == "" {
		return "", false
	}
	if strings.HasPrefix(target, "/") {
		return cleanRoute(target), true
	}

	dir := fromRoute
	if !strings.HasSuffix(dir, "/") {
		dir = path.Dir(dir) + "/"
	}
	return cleanRoute(dir + target), true
}

func cleanRoute(route string) string {
	trailing := strings.HasSuffix(route, "/")
	cleaned := path.Clean(route)
	if trailing && cleaned != "/" {
		cleaned += "/"
	}
	return cleaned
}

func stripQuery(s string) string {
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		return s[:i]
	}
	return s
}

func filepathToSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}
