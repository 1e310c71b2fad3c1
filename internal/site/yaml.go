package site

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
)

// document is the YAML shape of a Configuration. Decoding always goes
// through the validating constructors.
type document struct {
	Title       string        `yaml:"title"`
	Description string        `yaml:"description,omitempty"`
	Lang        string        `yaml:"lang"`
	Head        [][]any       `yaml:"head,omitempty"`
	ThemeConfig themeDocument `yaml:"themeConfig"`
}

type themeDocument struct {
	Nav         []navDocument        `yaml:"nav,omitempty"`
	Sidebar     yaml.Node            `yaml:"sidebar,omitempty"`
	SocialLinks []socialDocument     `yaml:"socialLinks,omitempty"`
	Search      *searchDocument      `yaml:"search,omitempty"`
	Labels      map[string]string    `yaml:"labels,omitempty"`
	Footer      *footerDocument      `yaml:"footer,omitempty"`
	Outline     *outlineDocument     `yaml:"outline,omitempty"`
	LastUpdated *lastUpdatedDocument `yaml:"lastUpdated,omitempty"`
}

type navDocument struct {
	Text        string         `yaml:"text"`
	Link        string         `yaml:"link,omitempty"`
	ActiveMatch string         `yaml:"activeMatch,omitempty"`
	Items       *[]navDocument `yaml:"items,omitempty"`
}

type sidebarGroupDocument struct {
	Text      string                `yaml:"text"`
	Collapsed *bool                 `yaml:"collapsed,omitempty"`
	Items     []sidebarItemDocument `yaml:"items"`
}

type sidebarItemDocument struct {
	Text string `yaml:"text"`
	Link string `yaml:"link"`
}

type socialDocument struct {
	Icon      any    `yaml:"icon"`
	Link      string `yaml:"link"`
	AriaLabel string `yaml:"ariaLabel,omitempty"`
}

type searchDocument struct {
	Provider  string    `yaml:"provider"`
	AppID     string    `yaml:"appId,omitempty"`
	APIKey    string    `yaml:"apiKey,omitempty"`
	IndexName string    `yaml:"indexName,omitempty"`
	Locales   yaml.Node `yaml:"locales,omitempty"`
}

type footerDocument struct {
	Message   string `yaml:"message,omitempty"`
	Copyright string `yaml:"copyright,omitempty"`
}

type outlineDocument struct {
	Level any `yaml:"level"`
}

type lastUpdatedDocument struct {
	DateStyle string `yaml:"dateStyle,omitempty"`
	TimeStyle string `yaml:"timeStyle,omitempty"`
}

// Parse decodes and validates a YAML configuration document.
func Parse(data []byte) (*Configuration, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, ferrors.ConfigError("configuration is not valid YAML").WithCause(err).Build()
	}
	if node.Kind != yaml.DocumentNode || len(node.Content) == 0 {
		return nil, invalid("", "mapping with title, lang and themeConfig", "configuration document is empty", nil)
	}
	var cfg Configuration
	if err := cfg.UnmarshalYAML(node.Content[0]); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(c *Configuration) ([]byte, error) {
	return yaml.Marshal(c)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Configuration) UnmarshalYAML(node *yaml.Node) error {
	var doc document
	if err := node.Decode(&doc); err != nil {
		return ferrors.ValidationError("configuration document has the wrong shape").
			WithExpected("mapping with title, lang and themeConfig").
			WithCause(err).
			Build()
	}
	built, err := doc.build()
	if err != nil {
		return err
	}
	*c = *built
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c *Configuration) MarshalYAML() (any, error) {
	return c.document()
}

func (d document) build() (*Configuration, error) {
	head := make([]HeadTag, 0, len(d.Head))
	for i, raw := range d.Head {
		tag, err := headFromDocument(raw)
		if err != nil {
			return nil, nestField(err, "head["+strconv.Itoa(i)+"]")
		}
		head = append(head, tag)
	}
	meta, err := NewMetadata(d.Title, d.Description, d.Lang, head...)
	if err != nil {
		return nil, err
	}

	b := NewBuilder(meta)
	if err := d.ThemeConfig.apply(b); err != nil {
		return nil, err
	}
	return b.Build()
}

func themeField(err error, field string) error {
	return nestField(nestField(err, field), "themeConfig")
}

// apply converts the theme section onto b.
func (t themeDocument) apply(b *Builder) error {
	nav, err := navFromDocuments(t.Nav)
	if err != nil {
		return themeField(err, "nav")
	}
	b.Nav(nav...)

	if err := t.applySidebar(b); err != nil {
		return err
	}

	for i, sd := range t.SocialLinks {
		link, err := sd.build()
		if err != nil {
			return themeField(err, "socialLinks["+strconv.Itoa(i)+"]")
		}
		b.Social(link)
	}

	if t.Search != nil {
		search, err := t.Search.build()
		if err != nil {
			return themeField(err, "search")
		}
		b.Search(search)
	}

	if t.Labels != nil {
		values := make(map[LabelKey]string, len(t.Labels))
		for k, v := range t.Labels {
			values[LabelKey(k)] = v
		}
		labels, err := NewThemeLabels(values)
		if err != nil {
			return themeField(err, "labels")
		}
		b.Labels(labels)
	}

	if t.Footer != nil {
		b.Footer(t.Footer.Message, t.Footer.Copyright)
	}

	if t.Outline != nil {
		outline, err := outlineFromLevel(t.Outline.Level)
		if err != nil {
			return themeField(err, "outline")
		}
		b.Outline(outline)
	}

	if t.LastUpdated != nil {
		lu, err := NewLastUpdated(t.LastUpdated.DateStyle, t.LastUpdated.TimeStyle)
		if err != nil {
			return themeField(err, "lastUpdated")
		}
		b.LastUpdated(lu)
	}
	return b.err
}

func (t themeDocument) applySidebar(b *Builder) error {
	// A zero Kind means the key was absent.
	if t.Sidebar.Kind == 0 {
		return nil
	}
	if t.Sidebar.Kind != yaml.MappingNode {
		return invalid("themeConfig.sidebar", "mapping of path prefix to sidebar groups", "malformed sidebar", nil)
	}
	for i := 0; i+1 < len(t.Sidebar.Content); i += 2 {
		prefix := t.Sidebar.Content[i].Value
		field := "sidebar[" + strconv.Quote(prefix) + "]"

		var docs []sidebarGroupDocument
		if err := t.Sidebar.Content[i+1].Decode(&docs); err != nil {
			return ferrors.ValidationError("malformed sidebar groups").
				WithField("themeConfig." + field).
				WithExpected("sequence of {text, items: [{text, link}]}").
				WithCause(err).
				Build()
		}

		groups := make([]SidebarGroup, 0, len(docs))
		for j, gd := range docs {
			group, err := gd.build()
			if err != nil {
				return themeField(err, field+"["+strconv.Itoa(j)+"]")
			}
			groups = append(groups, group)
		}
		if b.Sidebar(prefix, groups...); b.err != nil {
			return b.err
		}
	}
	return nil
}

func (gd sidebarGroupDocument) build() (SidebarGroup, error) {
	items := make([]SidebarItem, 0, len(gd.Items))
	for k, id := range gd.Items {
		item, err := NewSidebarItem(id.Text, id.Link)
		if err != nil {
			return SidebarGroup{}, nestField(err, "items["+strconv.Itoa(k)+"]")
		}
		items = append(items, item)
	}
	group, err := NewSidebarGroup(gd.Text, items...)
	if err != nil {
		return SidebarGroup{}, err
	}
	if gd.Collapsed != nil {
		group = group.WithCollapsed(*gd.Collapsed)
	}
	return group, nil
}

func navFromDocuments(docs []navDocument) ([]NavEntry, error) {
	entries := make([]NavEntry, 0, len(docs))
	for i, d := range docs {
		entry, err := d.build()
		if err != nil {
			return nil, nestField(err, "["+strconv.Itoa(i)+"]")
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (d navDocument) build() (NavEntry, error) {
	switch {
	case d.Items != nil && d.Link != "":
		return NavEntry{}, invalid("", "either {text, link} or {text, items}", "nav entry has both link and items", nil)
	case d.Items != nil:
		if d.ActiveMatch != "" {
			return NavEntry{}, invalid("activeMatch", "no activeMatch on groups", "activeMatch is only valid on links", d.ActiveMatch)
		}
		items, err := navFromDocuments(*d.Items)
		if err != nil {
			return NavEntry{}, nestField(err, "items")
		}
		return NewNavGroup(d.Text, items...)
	case d.Link == "":
		return NavEntry{}, invalid("link", "either {text, link} or {text, items}", "nav entry has neither link nor items", nil)
	}

	entry, err := NewNavLink(d.Text, d.Link)
	if err != nil || d.ActiveMatch == "" {
		return entry, err
	}
	return entry.WithActiveMatch(d.ActiveMatch)
}

func (sd socialDocument) build() (SocialLink, error) {
	var (
		icon Icon
		err  error
	)
	switch v := sd.Icon.(type) {
	case string:
		icon, err = KnownIcon(v)
	case map[string]any:
		svg, ok := v["svg"].(string)
		if !ok {
			return SocialLink{}, invalid("icon", "{svg: \"<svg ...>\"}", "inline icon without svg payload", nil)
		}
		icon, err = InlineIcon(svg)
	default:
		return SocialLink{}, invalid("icon", "icon identifier or {svg: ...}", "social link icon missing", nil)
	}
	if err != nil {
		return SocialLink{}, err
	}

	link, err := NewSocialLink(icon, sd.Link)
	if err != nil {
		return SocialLink{}, err
	}
	if sd.AriaLabel != "" {
		link = link.WithAriaLabel(sd.AriaLabel)
	}
	return link, nil
}

func (sd searchDocument) build() (SearchConfig, error) {
	var opts []SearchOption
	if sd.AppID != "" || sd.APIKey != "" || sd.IndexName != "" {
		opts = append(opts, WithAlgolia(AlgoliaOptions{AppID: sd.AppID, APIKey: sd.APIKey, IndexName: sd.IndexName}))
	}
	if sd.Locales.Kind != 0 {
		if sd.Locales.Kind != yaml.MappingNode {
			return SearchConfig{}, invalid("locales", "mapping of locale to UI strings", "malformed search locales", nil)
		}
		for i := 0; i+1 < len(sd.Locales.Content); i += 2 {
			locale := sd.Locales.Content[i].Value
			var raw map[string]string
			if err := sd.Locales.Content[i+1].Decode(&raw); err != nil {
				return SearchConfig{}, ferrors.ValidationError("malformed search UI strings").
					WithField("locales[" + strconv.Quote(locale) + "]").
					WithExpected("mapping of " + joinKeys(SearchKeys) + " to strings").
					WithCause(err).
					Build()
			}
			values := make(map[SearchKey]string, len(raw))
			for k, v := range raw {
				values[SearchKey(k)] = v
			}
			opts = append(opts, WithSearchLocale(locale, values))
		}
	}
	return NewSearchConfig(sd.Provider, opts...)
}

func headFromDocument(raw []any) (HeadTag, error) {
	if len(raw) < 2 || len(raw) > 3 {
		return HeadTag{}, invalid("", headShape, "head entry must have 2 or 3 elements", len(raw))
	}
	name, ok := raw[0].(string)
	if !ok {
		return HeadTag{}, invalid("[0]", headShape, "head tag name must be a string", raw[0])
	}
	rawAttrs, ok := raw[1].(map[string]any)
	if !ok && raw[1] != nil {
		return HeadTag{}, invalid("[1]", "mapping of attribute name to value", "malformed head attributes", raw[1])
	}
	attrs := make(map[string]string, len(rawAttrs))
	for k, v := range rawAttrs {
		switch v.(type) {
		case string, bool, int, float64:
			attrs[k] = fmt.Sprint(v)
		default:
			return HeadTag{}, invalid("[1]."+strconv.Quote(k), "scalar attribute value", "malformed head attribute value", v)
		}
	}

	tag, err := NewHeadTag(name, attrs)
	if err != nil || len(raw) == 2 {
		return tag, err
	}
	content, ok := raw[2].(string)
	if !ok {
		return HeadTag{}, invalid("[2]", "string content", "head tag content must be a string", raw[2])
	}
	return tag.WithContent(content)
}

func outlineFromLevel(level any) (Outline, error) {
	switch v := level.(type) {
	case nil:
		return DefaultOutline(), nil
	case int:
		return NewOutline(v, v)
	case string:
		if v == "deep" {
			return DeepOutline(), nil
		}
	case []any:
		if len(v) == 2 {
			lo, okLo := v[0].(int)
			hi, okHi := v[1].(int)
			if okLo && okHi {
				return NewOutline(lo, hi)
			}
		}
	}
	return Outline{}, invalid("level", outlineShape, "malformed outline level", level)
}

func (c *Configuration) document() (document, error) {
	doc := document{
		Title:       c.meta.title,
		Description: c.meta.description,
		Lang:        c.meta.lang,
	}
	for _, h := range c.meta.head {
		entry := []any{h.name, h.Attrs()}
		if h.content != "" {
			entry = append(entry, h.content)
		}
		doc.Head = append(doc.Head, entry)
	}

	t := &doc.ThemeConfig
	t.Nav = navToDocuments(c.nav)

	if c.sidebar.Len() > 0 {
		t.Sidebar = yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, e := range c.sidebar.entries {
			groups := make([]sidebarGroupDocument, 0, len(e.groups))
			for _, g := range e.groups {
				gd := sidebarGroupDocument{Text: g.text, Collapsed: g.collapsed, Items: []sidebarItemDocument{}}
				for _, item := range g.items {
					gd.Items = append(gd.Items, sidebarItemDocument{Text: item.text, Link: item.link})
				}
				groups = append(groups, gd)
			}
			var value yaml.Node
			if err := value.Encode(groups); err != nil {
				return document{}, err
			}
			t.Sidebar.Content = append(t.Sidebar.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.prefix},
				&value,
			)
		}
	}

	for _, s := range c.social {
		sd := socialDocument{Link: s.link, AriaLabel: s.ariaLabel, Icon: s.icon.name}
		if s.icon.IsInline() {
			sd.Icon = map[string]string{"svg": s.icon.svg}
		}
		t.SocialLinks = append(t.SocialLinks, sd)
	}

	search, err := searchToDocument(c.search)
	if err != nil {
		return document{}, err
	}
	t.Search = search

	if !c.labels.IsZero() {
		t.Labels = make(map[string]string, len(c.labels.values))
		for k, v := range c.labels.values {
			t.Labels[string(k)] = v
		}
	}
	if !c.footer.IsZero() {
		t.Footer = &footerDocument{Message: c.footer.Message, Copyright: c.footer.Copyright}
	}

	lo, hi := c.outline.Levels()
	switch {
	case c.outline.IsDeep():
		t.Outline = &outlineDocument{Level: "deep"}
	case lo == hi:
		t.Outline = &outlineDocument{Level: lo}
	default:
		t.Outline = &outlineDocument{Level: []int{lo, hi}}
	}

	if c.lastUpdated != nil {
		t.LastUpdated = &lastUpdatedDocument{
			DateStyle: string(c.lastUpdated.dateStyle),
			TimeStyle: string(c.lastUpdated.timeStyle),
		}
	}
	return doc, nil
}

func navToDocuments(entries []NavEntry) []navDocument {
	var docs []navDocument
	for _, e := range entries {
		d := navDocument{Text: e.text, Link: e.link, ActiveMatch: e.activeMatch}
		if e.group {
			items := navToDocuments(e.items)
			if items == nil {
				items = []navDocument{}
			}
			d.Items = &items
		}
		docs = append(docs, d)
	}
	return docs
}

func searchToDocument(s SearchConfig) (*searchDocument, error) {
	if s.Provider() == SearchNone && len(s.locales) == 0 {
		return nil, nil
	}
	sd := &searchDocument{Provider: string(s.Provider())}
	if s.algolia != nil {
		sd.AppID, sd.APIKey, sd.IndexName = s.algolia.AppID, s.algolia.APIKey, s.algolia.IndexName
	}
	if len(s.locales) > 0 {
		sd.Locales = yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, l := range s.locales {
			values := make(map[string]string, len(l.strings.values))
			for k, v := range l.strings.values {
				values[string(k)] = v
			}
			var value yaml.Node
			if err := value.Encode(values); err != nil {
				return nil, err
			}
			sd.Locales.Content = append(sd.Locales.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: l.locale},
				&value,
			)
		}
	}
	return sd, nil
}
