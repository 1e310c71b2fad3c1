package site

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/net/html/atom"
	"golang.org/x/text/language"
)

// Metadata is the site-wide title, description, language and head tags.
type Metadata struct {
	title       string
	description string
	lang        string
	head        []HeadTag
}

// NewMetadata validates and returns site metadata.
func NewMetadata(title, description, lang string, head ...HeadTag) (Metadata, error) {
	if strings.TrimSpace(title) == "" {
		return Metadata{}, required("title", "site title")
	}
	if err := checkLocale("lang", lang, false); err != nil {
		return Metadata{}, err
	}
	return Metadata{
		title:       title,
		description: description,
		lang:        lang,
		head:        cloneOrNil(head),
	}, nil
}

func (m Metadata) Title() string       { return m.title }
func (m Metadata) Description() string { return m.description }
func (m Metadata) Lang() string        { return m.lang }
func (m Metadata) Head() []HeadTag     { return cloneOrNil(m.head) }

// checkLocale accepts BCP 47 tags, and "root" when allowRoot is set.
func checkLocale(field, tag string, allowRoot bool) error {
	if allowRoot && tag == RootLocale {
		return nil
	}
	expected := "BCP 47 language tag such as en-US"
	if allowRoot {
		expected = `"root" or ` + expected
	}
	if tag == "" {
		return invalid(field, expected, "language tag must not be empty", nil)
	}
	if _, err := language.Parse(tag); err != nil {
		return invalid(field, expected, "invalid language tag", tag)
	}
	return nil
}

// RootLocale names the default locale in locale tables.
const RootLocale = "root"

var headElements = map[atom.Atom]bool{
	atom.Base:     false,
	atom.Link:     false,
	atom.Meta:     false,
	atom.Noscript: true,
	atom.Script:   true,
	atom.Style:    true,
	atom.Title:    true,
}

const headShape = "[tag, {attributes}] with tag one of base|link|meta|noscript|script|style|title"

// HeadTag is an element injected into the document head.
type HeadTag struct {
	name    string
	attrs   map[string]string
	content string
}

// NewHeadTag validates a head element and its attributes.
func NewHeadTag(name string, attrs map[string]string) (HeadTag, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	a := atom.Lookup([]byte(lower))
	if _, ok := headElements[a]; !ok {
		return HeadTag{}, invalid("[0]", headShape, "unsupported head element", name)
	}

	for _, key := range slices.Sorted(maps.Keys(attrs)) {
		if !validAttrName(key) {
			return HeadTag{}, invalid("[1]."+strconv.Quote(key), "HTML attribute name", "malformed attribute name", key)
		}
	}

	var cloned map[string]string
	if len(attrs) > 0 {
		cloned = maps.Clone(attrs)
	}
	return HeadTag{name: lower, attrs: cloned}, nil
}

// WithContent returns a copy of the tag carrying an element body. Only
// elements that take text content accept one.
func (h HeadTag) WithContent(content string) (HeadTag, error) {
	if !headElements[atom.Lookup([]byte(h.name))] {
		return HeadTag{}, invalid("[2]", "no content for void element "+h.name, "head element cannot have content", content)
	}
	h.attrs = maps.Clone(h.attrs)
	h.content = content
	return h, nil
}

func (h HeadTag) Name() string    { return h.name }
func (h HeadTag) Content() string { return h.content }

// Attrs returns a copy of the attribute map.
func (h HeadTag) Attrs() map[string]string {
	if h.attrs == nil {
		return map[string]string{}
	}
	return maps.Clone(h.attrs)
}

func validAttrName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if r <= ' ' || r == 0x7f || strings.ContainsRune(`"'=<>/`, r) {
			return false
		}
	}
	return true
}
