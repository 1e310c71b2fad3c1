// Package export renders a configuration as the document a documentation
// site generator reads.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/foundation/normalization"
	"git.home.luguber.info/inful/docnav/internal/site"
)

// Format selects the output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var formats = normalization.NewNormalizer("export format", map[string]Format{
	"json": FormatJSON,
	"yaml": FormatYAML,
	"yml":  FormatYAML,
}, FormatJSON)

// ParseFormat resolves a format name.
func ParseFormat(raw string) (Format, error) {
	f, err := formats.Parse(raw)
	if err != nil {
		return "", ferrors.ValidationError("unknown export format").
			WithField("format").
			WithExpected(formats.Describe()).
			WithValue(raw).
			Build()
	}
	return f, nil
}

// Write encodes cfg in format to w.
func Write(w io.Writer, cfg *site.Configuration, format Format) error {
	data, err := Encode(cfg, format)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return ferrors.ExportError("failed to write export").WithCause(err).Build()
	}
	return nil
}

// Encode renders cfg in format. Map keys are sorted, so the output is
// stable for equal configurations.
func Encode(cfg *site.Configuration, format Format) ([]byte, error) {
	root := Document(cfg)
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(root); err != nil {
			return nil, ferrors.ExportError("failed to encode YAML").WithCause(err).Build()
		}
		if err := enc.Close(); err != nil {
			return nil, ferrors.ExportError("failed to encode YAML").WithCause(err).Build()
		}
		return buf.Bytes(), nil
	case FormatJSON:
		data, err := json.MarshalIndent(root, "", "  ")
		if err != nil {
			return nil, ferrors.ExportError("failed to encode JSON").WithCause(err).Build()
		}
		return append(data, '\n'), nil
	default:
		return nil, ferrors.InternalError(fmt.Sprintf("unsupported export format %q", format)).Build()
	}
}

// Document builds the generator document: site metadata at the top level
// and everything else below themeConfig.
func Document(cfg *site.Configuration) map[string]any {
	meta := cfg.Metadata()
	root := map[string]any{
		"title": meta.Title(),
		"lang":  meta.Lang(),
	}
	if meta.Description() != "" {
		root["description"] = meta.Description()
	}
	if head := headTags(meta.Head()); len(head) > 0 {
		root["head"] = head
	}

	labels := cfg.Labels()
	theme := map[string]any{
		"nav":         navEntries(cfg.Nav()),
		"sidebar":     sidebar(cfg.Sidebar()),
		"socialLinks": socialLinks(cfg.SocialLinks()),
		"outline":     outline(cfg.Outline(), labels),
		"docFooter": map[string]any{
			"prev": labels.Get(site.LabelDocFooterPrev),
			"next": labels.Get(site.LabelDocFooterNext),
		},
	}

	// Labels without a nested home are theme-level keys.
	for _, key := range []site.LabelKey{
		site.LabelDarkModeSwitch,
		site.LabelLightModeTitle,
		site.LabelDarkModeTitle,
		site.LabelSidebarMenu,
		site.LabelReturnToTop,
		site.LabelLanguageMenu,
	} {
		theme[string(key)] = labels.Get(key)
	}

	if s := search(cfg.Search()); s != nil {
		theme["search"] = s
	}
	if f := cfg.Footer(); !f.IsZero() {
		footer := map[string]any{}
		if f.Message != "" {
			footer["message"] = f.Message
		}
		if f.Copyright != "" {
			footer["copyright"] = f.Copyright
		}
		theme["footer"] = footer
	}
	if lu, ok := cfg.LastUpdated(); ok {
		theme["lastUpdated"] = lastUpdated(lu, labels)
	}

	root["themeConfig"] = theme
	return root
}

func headTags(tags []site.HeadTag) []any {
	out := make([]any, 0, len(tags))
	for _, h := range tags {
		entry := []any{h.Name(), h.Attrs()}
		if h.Content() != "" {
			entry = append(entry, h.Content())
		}
		out = append(out, entry)
	}
	return out
}

func navEntries(entries []site.NavEntry) []any {
	out := make([]any, 0, len(entries))
	for _, e := range entries {
		m := map[string]any{"text": e.Text()}
		if e.IsGroup() {
			m["items"] = navEntries(e.Items())
		} else {
			m["link"] = e.Link()
			if e.ActiveMatch() != "" {
				m["activeMatch"] = e.ActiveMatch()
			}
		}
		out = append(out, m)
	}
	return out
}

func sidebar(m site.SidebarMap) map[string]any {
	out := make(map[string]any, m.Len())
	for _, prefix := range m.Prefixes() {
		groups, _ := m.Lookup(prefix)
		list := make([]any, 0, len(groups))
		for _, g := range groups {
			items := make([]any, 0, len(g.Items()))
			for _, item := range g.Items() {
				items = append(items, map[string]any{"text": item.Text(), "link": item.Link()})
			}
			group := map[string]any{"text": g.Text(), "items": items}
			if collapsed, collapsible := g.Collapsed(); collapsible {
				group["collapsed"] = collapsed
			}
			list = append(list, group)
		}
		out[prefix] = list
	}
	return out
}

func socialLinks(links []site.SocialLink) []any {
	out := make([]any, 0, len(links))
	for _, s := range links {
		var icon any = s.Icon().Name()
		if s.Icon().IsInline() {
			icon = map[string]any{"svg": s.Icon().SVG()}
		}
		m := map[string]any{"icon": icon, "link": s.Link()}
		if s.AriaLabel() != "" {
			m["ariaLabel"] = s.AriaLabel()
		}
		out = append(out, m)
	}
	return out
}

func search(s site.SearchConfig) map[string]any {
	if s.Provider() == site.SearchNone {
		return nil
	}
	options := map[string]any{}
	if algolia, ok := s.Algolia(); ok {
		options["appId"] = algolia.AppID
		options["apiKey"] = algolia.APIKey
		options["indexName"] = algolia.IndexName
	}
	if locales := s.Locales(); len(locales) > 0 {
		table := make(map[string]any, len(locales))
		for _, locale := range locales {
			bundle, _ := s.Strings(locale)
			translations := map[string]any{}
			for _, key := range site.SearchKeys {
				setPath(translations, string(key), bundle.Get(key))
			}
			table[locale] = map[string]any{"translations": translations}
		}
		options["locales"] = table
	}
	return map[string]any{"provider": string(s.Provider()), "options": options}
}

// setPath stores value at a dotted key, creating intermediate objects.
func setPath(m map[string]any, dotted string, value string) {
	parts := strings.Split(dotted, ".")
	for _, p := range parts[:len(parts)-1] {
		next, ok := m[p].(map[string]any)
		if !ok {
			next = map[string]any{}
			m[p] = next
		}
		m = next
	}
	m[parts[len(parts)-1]] = value
}

func outline(o site.Outline, labels site.ThemeLabels) map[string]any {
	lo, hi := o.Levels()
	return map[string]any{
		"level": []int{lo, hi},
		"label": labels.Get(site.LabelOutline),
	}
}

func lastUpdated(lu site.LastUpdated, labels site.ThemeLabels) map[string]any {
	format := map[string]any{}
	if lu.DateStyle() != "" {
		format["dateStyle"] = string(lu.DateStyle())
	}
	if lu.TimeStyle() != "" {
		format["timeStyle"] = string(lu.TimeStyle())
	}
	return map[string]any{
		"text":          labels.Get(site.LabelLastUpdated),
		"formatOptions": format,
	}
}
