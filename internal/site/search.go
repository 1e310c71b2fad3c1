package site

import (
	"strconv"
	"strings"

	"git.home.luguber.info/inful/docnav/internal/foundation/normalization"
)

// SearchProvider selects how the generated site searches its pages.
type SearchProvider string

const (
	SearchLocal   SearchProvider = "local"
	SearchAlgolia SearchProvider = "algolia"
	SearchNone    SearchProvider = "none"
)

var searchProviders = normalization.NewNormalizer("search provider", map[string]SearchProvider{
	"local":   SearchLocal,
	"algolia": SearchAlgolia,
	"none":    SearchNone,
}, SearchNone)

// SearchConfig is the search provider plus its per-locale UI strings.
type SearchConfig struct {
	provider SearchProvider
	algolia  *AlgoliaOptions
	locales  []searchLocale
}

type searchLocale struct {
	locale  string
	strings Bundle[SearchKey]
}

// AlgoliaOptions are the credentials of the hosted search service.
type AlgoliaOptions struct {
	AppID     string
	APIKey    string
	IndexName string
}

// SearchOption configures a SearchConfig during construction.
type SearchOption func(*SearchConfig) error

// WithSearchLocale adds the UI strings of one locale. locale is "root" or a
// BCP 47 tag; every SearchKey must be present.
func WithSearchLocale(locale string, values map[SearchKey]string) SearchOption {
	return func(c *SearchConfig) error {
		field := "locales[" + strconv.Quote(locale) + "]"
		if err := checkLocale(field, locale, true); err != nil {
			return err
		}
		for _, l := range c.locales {
			if l.locale == locale {
				return invalid(field, "unique locale", "duplicate search locale", locale)
			}
		}
		bundle, err := NewBundle(SearchKeys, values)
		if err != nil {
			return nestField(err, field)
		}
		c.locales = append(c.locales, searchLocale{locale: locale, strings: bundle})
		return nil
	}
}

// WithAlgolia sets the hosted search credentials; only valid for SearchAlgolia.
func WithAlgolia(opts AlgoliaOptions) SearchOption {
	return func(c *SearchConfig) error {
		c.algolia = &opts
		return nil
	}
}

// NewSearchConfig validates the provider name and applies options.
func NewSearchConfig(provider string, opts ...SearchOption) (SearchConfig, error) {
	p, err := searchProviders.Parse(provider)
	if err != nil {
		return SearchConfig{}, invalid("provider", searchProviders.Describe(), "unknown search provider", provider)
	}
	cfg := SearchConfig{provider: p}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return SearchConfig{}, err
		}
	}

	switch {
	case p == SearchAlgolia && cfg.algolia == nil:
		return SearchConfig{}, invalid("appId", "appId, apiKey and indexName", "algolia search requires credentials", nil)
	case p == SearchAlgolia:
		for _, f := range [][2]string{{"appId", cfg.algolia.AppID}, {"apiKey", cfg.algolia.APIKey}, {"indexName", cfg.algolia.IndexName}} {
			if strings.TrimSpace(f[1]) == "" {
				return SearchConfig{}, required(f[0], "algolia "+f[0])
			}
		}
	case cfg.algolia != nil:
		return SearchConfig{}, invalid("appId", "no credentials for provider "+string(p), "algolia credentials given for another provider", nil)
	}
	return cfg, nil
}

// DisabledSearch is the configuration used when none is declared.
func DisabledSearch() SearchConfig { return SearchConfig{provider: SearchNone} }

func (c SearchConfig) Provider() SearchProvider {
	if c.provider == "" {
		return SearchNone
	}
	return c.provider
}

// Algolia returns the hosted search credentials, if any.
func (c SearchConfig) Algolia() (AlgoliaOptions, bool) {
	if c.algolia == nil {
		return AlgoliaOptions{}, false
	}
	return *c.algolia, true
}

// Locales returns the declared locales in order.
func (c SearchConfig) Locales() []string {
	out := make([]string, 0, len(c.locales))
	for _, l := range c.locales {
		out = append(out, l.locale)
	}
	return out
}

// Strings returns the UI strings of locale.
func (c SearchConfig) Strings(locale string) (Bundle[SearchKey], bool) {
	for _, l := range c.locales {
		if l.locale == locale {
			return l.strings, true
		}
	}
	return Bundle[SearchKey]{}, false
}
