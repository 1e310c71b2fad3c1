package site

import (
	"strconv"
)

// Builder assembles a Configuration. The first error sticks; later calls
// are ignored and Build reports it.
//
//	cfg, err := site.NewBuilder(meta).
//		Nav(guide, api).
//		Sidebar("/guide/", basics, advanced).
//		Labels(labels).
//		Build()
type Builder struct {
	cfg Configuration
	err error
}

// NewBuilder starts a configuration from validated metadata.
func NewBuilder(meta Metadata) *Builder {
	b := &Builder{cfg: Configuration{
		meta:    meta,
		search:  DisabledSearch(),
		outline: DefaultOutline(),
	}}
	if meta.title == "" {
		b.err = required("title", "site title")
	}
	return b
}

// Nav appends top navigation entries.
func (b *Builder) Nav(entries ...NavEntry) *Builder {
	if b.err == nil {
		b.cfg.nav = append(b.cfg.nav, entries...)
	}
	return b
}

// Sidebar registers the groups shown on pages under prefix.
func (b *Builder) Sidebar(prefix string, groups ...SidebarGroup) *Builder {
	if b.err != nil {
		return b
	}
	b.cfg.sidebar, b.err = b.cfg.sidebar.with(prefix, groups)
	return b
}

// Social appends social links.
func (b *Builder) Social(links ...SocialLink) *Builder {
	if b.err == nil {
		b.cfg.social = append(b.cfg.social, links...)
	}
	return b
}

// Search replaces the search configuration.
func (b *Builder) Search(search SearchConfig) *Builder {
	if b.err == nil {
		b.cfg.search = search
	}
	return b
}

// Labels sets the theme UI strings.
func (b *Builder) Labels(labels ThemeLabels) *Builder {
	if b.err == nil {
		b.cfg.labels = labels
	}
	return b
}

// Footer sets the page footer.
func (b *Builder) Footer(message, copyright string) *Builder {
	if b.err == nil {
		b.cfg.footer = Footer{Message: message, Copyright: copyright}
	}
	return b
}

// Outline sets the heading levels of the on-page outline.
func (b *Builder) Outline(outline Outline) *Builder {
	if b.err == nil {
		b.cfg.outline = outline
	}
	return b
}

// LastUpdated enables the last-updated stamp.
func (b *Builder) LastUpdated(lu LastUpdated) *Builder {
	if b.err == nil {
		b.cfg.lastUpdated = &lu
	}
	return b
}

// Build validates cross-field requirements and returns the configuration.
func (b *Builder) Build() (*Configuration, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.cfg.labels.IsZero() {
		return nil, invalid("themeConfig.labels", "mapping with "+joinKeys(LabelKeys), "theme labels are required", nil)
	}
	if lo, hi := b.cfg.outline.Levels(); lo == 0 || hi == 0 {
		return nil, invalid("themeConfig.outline.level", outlineShape, "outline was not constructed", nil)
	}
	for i, e := range b.cfg.nav {
		if e.text == "" {
			return nil, invalid("themeConfig.nav["+strconv.Itoa(i)+"]", "entry created with NewNavLink or NewNavGroup", "zero nav entry", nil)
		}
	}
	for i, s := range b.cfg.social {
		if s.link == "" {
			return nil, invalid("themeConfig.socialLinks["+strconv.Itoa(i)+"]", "link created with NewSocialLink", "zero social link", nil)
		}
	}

	cfg := b.cfg
	cfg.nav = cloneOrNil(cfg.nav)
	cfg.social = cloneOrNil(cfg.social)
	return &cfg, nil
}
