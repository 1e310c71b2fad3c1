package site

import (
	"net/url"
	"strings"
	"unicode"
)

// LinkKind classifies a navigation link.
type LinkKind int

const (
	LinkInvalid LinkKind = iota
	// LinkInternal is an absolute site path such as /guide/intro.
	LinkInternal
	// LinkExternal is an absolute URL with a recognized scheme.
	LinkExternal
)

func (k LinkKind) String() string {
	switch k {
	case LinkInternal:
		return "internal"
	case LinkExternal:
		return "external"
	default:
		return "invalid"
	}
}

const linkShape = "internal path starting with '/' or absolute http(s)/mailto URL"

// ClassifyLink reports whether s is an internal path, an external URL or neither.
func ClassifyLink(s string) LinkKind {
	if s == "" || strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return LinkInvalid
	}
	if strings.HasPrefix(s, "//") {
		// Protocol-relative URLs are neither a route nor a complete URL.
		return LinkInvalid
	}
	if strings.HasPrefix(s, "/") {
		return LinkInternal
	}

	u, err := url.Parse(s)
	if err != nil {
		return LinkInvalid
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		if u.Host != "" {
			return LinkExternal
		}
	case "mailto":
		if u.Opaque != "" {
			return LinkExternal
		}
	}
	return LinkInvalid
}

// isWebURL reports whether s is an external http(s) URL.
func isWebURL(s string) bool {
	if ClassifyLink(s) != LinkExternal {
		return false
	}
	u, err := url.Parse(s)
	return err == nil && (strings.EqualFold(u.Scheme, "http") || strings.EqualFold(u.Scheme, "https"))
}

// IsInternal reports whether s is an internal site path.
func IsInternal(s string) bool { return ClassifyLink(s) == LinkInternal }

// RoutePath strips any query or fragment from an internal link, leaving the
// route used for sidebar selection and page lookup.
func RoutePath(link string) string {
	if i := strings.IndexAny(link, "?#"); i >= 0 {
		return link[:i]
	}
	return link
}

func checkLink(field, link string) error {
	if ClassifyLink(link) == LinkInvalid {
		return invalid(field, linkShape, "malformed link", link)
	}
	return nil
}
