package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docnav/internal/docsite"
	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/site"
)

func builtin(t *testing.T) *site.Configuration {
	t.Helper()
	cfg, err := docsite.Config()
	require.NoError(t, err)
	return cfg
}

func decodeJSON(t *testing.T, cfg *site.Configuration) map[string]any {
	t.Helper()
	data, err := Encode(cfg, FormatJSON)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

func TestDocumentTopLevel(t *testing.T) {
	doc := decodeJSON(t, builtin(t))

	assert.Equal(t, "docnav", doc["title"])
	assert.Equal(t, "en-US", doc["lang"])
	head := doc["head"].([]any)
	require.Len(t, head, 2)
	assert.Equal(t, "link", head[0].([]any)[0])

	theme := doc["themeConfig"].(map[string]any)
	for _, key := range []string{
		"nav", "sidebar", "socialLinks", "search", "footer", "outline",
		"lastUpdated", "docFooter", "darkModeSwitchLabel", "sidebarMenuLabel",
		"returnToTopLabel", "langMenuLabel", "lightModeSwitchTitle", "darkModeSwitchTitle",
	} {
		assert.Contains(t, theme, key)
	}
}

func TestDocumentThemeConfig(t *testing.T) {
	theme := decodeJSON(t, builtin(t))["themeConfig"].(map[string]any)

	nav := theme["nav"].([]any)
	require.Len(t, nav, 3)
	guide := nav[0].(map[string]any)
	assert.Equal(t, "/guide/getting-started", guide["link"])
	assert.Equal(t, "^/guide/", guide["activeMatch"])
	links := nav[2].(map[string]any)
	assert.NotContains(t, links, "link")
	assert.Len(t, links["items"], 2)

	sidebar := theme["sidebar"].(map[string]any)
	assert.Len(t, sidebar, 3)
	guideGroups := sidebar["/guide/"].([]any)
	advanced := guideGroups[2].(map[string]any)
	assert.Equal(t, true, advanced["collapsed"])
	assert.NotContains(t, guideGroups[0].(map[string]any), "collapsed")

	social := theme["socialLinks"].([]any)
	assert.Equal(t, "github", social[0].(map[string]any)["icon"])
	inline := social[1].(map[string]any)["icon"].(map[string]any)
	assert.Contains(t, inline["svg"], "<svg")

	assert.Equal(t, map[string]any{"prev": "Previous page", "next": "Next page"}, theme["docFooter"])
	assert.Equal(t, map[string]any{"level": []any{2.0, 3.0}, "label": "On this page"}, theme["outline"])
	assert.Equal(t, map[string]any{
		"text":          "Last updated",
		"formatOptions": map[string]any{"dateStyle": "medium"},
	}, theme["lastUpdated"])
}

func TestSearchTranslationsAreNested(t *testing.T) {
	theme := decodeJSON(t, builtin(t))["themeConfig"].(map[string]any)

	search := theme["search"].(map[string]any)
	assert.Equal(t, "local", search["provider"])
	options := search["options"].(map[string]any)
	zh := options["locales"].(map[string]any)["zh"].(map[string]any)
	translations := zh["translations"].(map[string]any)

	button := translations["button"].(map[string]any)
	assert.Equal(t, "搜索文档", button["buttonText"])
	footer := translations["modal"].(map[string]any)["footer"].(map[string]any)
	assert.Equal(t, "关闭", footer["closeText"])
	assert.NotContains(t, translations, "button.buttonText")
}

func TestSearchNoneIsOmitted(t *testing.T) {
	meta, err := site.NewMetadata("Plain", "", "en")
	require.NoError(t, err)
	labels, err := site.NewThemeLabels(builtin(t).Labels().Values())
	require.NoError(t, err)
	cfg, err := site.NewBuilder(meta).Labels(labels).Build()
	require.NoError(t, err)

	doc := Document(cfg)
	theme := doc["themeConfig"].(map[string]any)
	assert.NotContains(t, theme, "search")
	assert.NotContains(t, theme, "footer")
	assert.NotContains(t, theme, "lastUpdated")
	assert.NotContains(t, doc, "description")
	assert.NotContains(t, doc, "head")
}

func TestAlgoliaOptions(t *testing.T) {
	meta, err := site.NewMetadata("Hosted", "", "en")
	require.NoError(t, err)
	labels, err := site.NewThemeLabels(builtin(t).Labels().Values())
	require.NoError(t, err)
	search, err := site.NewSearchConfig("algolia", site.WithAlgolia(site.AlgoliaOptions{AppID: "APP", APIKey: "KEY", IndexName: "docs"}))
	require.NoError(t, err)
	cfg, err := site.NewBuilder(meta).Labels(labels).Search(search).Build()
	require.NoError(t, err)

	theme := Document(cfg)["themeConfig"].(map[string]any)
	assert.Equal(t, map[string]any{
		"provider": "algolia",
		"options":  map[string]any{"appId": "APP", "apiKey": "KEY", "indexName": "docs"},
	}, theme["search"])
}

func TestEncodeIsDeterministic(t *testing.T) {
	cfg := builtin(t)
	for _, format := range []Format{FormatJSON, FormatYAML} {
		first, err := Encode(cfg, format)
		require.NoError(t, err)
		for range 5 {
			again, err := Encode(cfg, format)
			require.NoError(t, err)
			assert.Equal(t, string(first), string(again))
		}
	}
}

func TestYAMLMatchesJSON(t *testing.T) {
	cfg := builtin(t)
	data, err := Encode(cfg, FormatYAML)
	require.NoError(t, err)

	var fromYAML map[string]any
	require.NoError(t, yaml.Unmarshal(data, &fromYAML))
	theme := fromYAML["themeConfig"].(map[string]any)
	assert.Equal(t, "Appearance", theme["darkModeSwitchLabel"])
	assert.Len(t, theme["sidebar"], 3)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, builtin(t), FormatYAML))
	assert.Contains(t, buf.String(), "themeConfig:")
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("toml")
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))

	_, err = Encode(builtin(t), Format("toml"))
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryInternal))
}
