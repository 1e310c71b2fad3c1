package site

import (
	"git.home.luguber.info/inful/docnav/internal/foundation/normalization"
)

// Footer is the text shown at the bottom of every page. Both parts may
// contain inline HTML, which is passed through untouched.
type Footer struct {
	Message   string
	Copyright string
}

func (f Footer) IsZero() bool { return f == Footer{} }

// Outline selects the heading levels listed in the on-page outline.
type Outline struct {
	lo, hi int
}

const outlineShape = "level n, range [min, max] or \"deep\", with 2 <= min <= max <= 6"

// NewOutline validates a heading range.
func NewOutline(lo, hi int) (Outline, error) {
	if lo < 2 || hi > 6 || lo > hi {
		return Outline{}, invalid("level", outlineShape, "invalid outline level range", []int{lo, hi})
	}
	return Outline{lo: lo, hi: hi}, nil
}

// DefaultOutline lists h2 and h3.
func DefaultOutline() Outline { return Outline{lo: 2, hi: 3} }

// DeepOutline lists h2 through h6.
func DeepOutline() Outline { return Outline{lo: 2, hi: 6} }

func (o Outline) Levels() (lo, hi int) { return o.lo, o.hi }
func (o Outline) IsDeep() bool         { return o == DeepOutline() }

// DateStyle is an Intl.DateTimeFormat style.
type DateStyle string

const (
	StyleFull   DateStyle = "full"
	StyleLong   DateStyle = "long"
	StyleMedium DateStyle = "medium"
	StyleShort  DateStyle = "short"
)

var dateStyles = normalization.NewNormalizer("date style", map[string]DateStyle{
	"full":   StyleFull,
	"long":   StyleLong,
	"medium": StyleMedium,
	"short":  StyleShort,
}, "")

// LastUpdated enables the per-page last-updated stamp and formats it.
type LastUpdated struct {
	dateStyle DateStyle
	timeStyle DateStyle
}

// NewLastUpdated validates the format options; empty styles are left to the generator.
func NewLastUpdated(dateStyle, timeStyle string) (LastUpdated, error) {
	var lu LastUpdated
	for _, s := range []struct {
		field string
		raw   string
		dst   *DateStyle
	}{
		{"formatOptions.dateStyle", dateStyle, &lu.dateStyle},
		{"formatOptions.timeStyle", timeStyle, &lu.timeStyle},
	} {
		if s.raw == "" {
			continue
		}
		style, err := dateStyles.Parse(s.raw)
		if err != nil {
			return LastUpdated{}, invalid(s.field, dateStyles.Describe(), "unknown date style", s.raw)
		}
		*s.dst = style
	}
	return lu, nil
}

func (l LastUpdated) DateStyle() DateStyle { return l.dateStyle }
func (l LastUpdated) TimeStyle() DateStyle { return l.timeStyle }
