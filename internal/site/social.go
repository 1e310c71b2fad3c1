package site

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"git.home.luguber.info/inful/docnav/internal/foundation/normalization"
)

var knownIcons = normalization.NewNormalizer("icon", map[string]string{
	"bluesky":   "bluesky",
	"discord":   "discord",
	"facebook":  "facebook",
	"github":    "github",
	"gitlab":    "gitlab",
	"instagram": "instagram",
	"linkedin":  "linkedin",
	"mastodon":  "mastodon",
	"npm":       "npm",
	"slack":     "slack",
	"twitter":   "twitter",
	"x":         "x",
	"youtube":   "youtube",
}, "")

// Icon is either a well-known icon identifier or an inline SVG payload.
type Icon struct {
	name string
	svg  string
}

// KnownIcon returns the icon with the given identifier.
func KnownIcon(name string) (Icon, error) {
	id, err := knownIcons.Parse(name)
	if err != nil {
		return Icon{}, invalid("icon", "one of "+knownIcons.Describe()+" or {svg: ...}", "unknown icon", name)
	}
	return Icon{name: id}, nil
}

// InlineIcon wraps an SVG payload. The markup is only checked for
// well-formedness and an <svg> root element.
func InlineIcon(svg string) (Icon, error) {
	if err := checkSVG(svg); err != nil {
		return Icon{}, invalid("icon.svg", "well-formed <svg> markup", err.Error(), nil)
	}
	return Icon{svg: svg}, nil
}

// Name returns the identifier; empty for inline icons.
func (i Icon) Name() string { return i.name }

// SVG returns the inline payload; empty for named icons.
func (i Icon) SVG() string { return i.svg }

func (i Icon) IsInline() bool { return i.svg != "" }

func checkSVG(payload string) error {
	if strings.TrimSpace(payload) == "" {
		return errors.New("svg payload is empty")
	}

	dec := xml.NewDecoder(strings.NewReader(payload))
	depth, roots := 0, 0
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return errors.New("svg payload is not well-formed: " + err.Error())
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				roots++
				if roots > 1 {
					return errors.New("svg payload has more than one root element")
				}
				if t.Name.Local != "svg" {
					return errors.New("svg payload root element is <" + t.Name.Local + ">")
				}
			}
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 0 && strings.TrimSpace(string(t)) != "" {
				return errors.New("svg payload has text outside the root element")
			}
		}
	}
	if roots == 0 {
		return errors.New("svg payload has no root element")
	}
	return nil
}

// SocialLink is an icon linking to an external profile or project page.
type SocialLink struct {
	icon      Icon
	link      string
	ariaLabel string
}

// NewSocialLink validates a social link; link must be an http(s) URL.
func NewSocialLink(icon Icon, link string) (SocialLink, error) {
	if icon == (Icon{}) {
		return SocialLink{}, invalid("icon", "icon identifier or {svg: ...}", "social link icon missing", nil)
	}
	if !isWebURL(link) {
		return SocialLink{}, invalid("link", "absolute http(s) URL", "social link must be an http(s) URL", link)
	}
	return SocialLink{icon: icon, link: link}, nil
}

// WithAriaLabel returns a copy with an accessible label.
func (s SocialLink) WithAriaLabel(label string) SocialLink {
	s.ariaLabel = label
	return s
}

func (s SocialLink) Icon() Icon        { return s.icon }
func (s SocialLink) Link() string      { return s.link }
func (s SocialLink) AriaLabel() string { return s.ariaLabel }
