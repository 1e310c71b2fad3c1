package site

import (
	"maps"
	"slices"
	"strings"
)

// Bundle is a set of localized UI strings over a closed key set. Every
// required key is present and no unknown key is, checked at construction.
type Bundle[K ~string] struct {
	values map[K]string
}

// NewBundle validates values against the required key set.
func NewBundle[K ~string](keys []K, values map[K]string) (Bundle[K], error) {
	known := make(map[K]bool, len(keys))
	for _, k := range keys {
		known[k] = true
		if strings.TrimSpace(values[k]) == "" {
			return Bundle[K]{}, invalid(string(k), "non-empty translated string", "missing UI string", nil)
		}
	}
	for _, k := range slices.Sorted(maps.Keys(values)) {
		if !known[k] {
			return Bundle[K]{}, invalid(string(k), "one of "+joinKeys(keys), "unknown UI string key", string(k))
		}
	}
	return Bundle[K]{values: maps.Clone(values)}, nil
}

// Get returns the string for key.
func (b Bundle[K]) Get(key K) string { return b.values[key] }

// Values returns a copy of all strings.
func (b Bundle[K]) Values() map[K]string { return maps.Clone(b.values) }

// IsZero reports whether the bundle was never constructed.
func (b Bundle[K]) IsZero() bool { return b.values == nil }

func joinKeys[K ~string](keys []K) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = string(k)
	}
	return strings.Join(parts, "|")
}

// LabelKey names a theme UI string.
type LabelKey string

const (
	LabelOutline        LabelKey = "outlineLabel"
	LabelDocFooterPrev  LabelKey = "docFooterPrev"
	LabelDocFooterNext  LabelKey = "docFooterNext"
	LabelLastUpdated    LabelKey = "lastUpdatedText"
	LabelDarkModeSwitch LabelKey = "darkModeSwitchLabel"
	LabelLightModeTitle LabelKey = "lightModeSwitchTitle"
	LabelDarkModeTitle  LabelKey = "darkModeSwitchTitle"
	LabelSidebarMenu    LabelKey = "sidebarMenuLabel"
	LabelReturnToTop    LabelKey = "returnToTopLabel"
	LabelLanguageMenu   LabelKey = "langMenuLabel"
)

// LabelKeys lists every theme label in export order.
var LabelKeys = []LabelKey{
	LabelOutline,
	LabelDocFooterPrev,
	LabelDocFooterNext,
	LabelLastUpdated,
	LabelDarkModeSwitch,
	LabelLightModeTitle,
	LabelDarkModeTitle,
	LabelSidebarMenu,
	LabelReturnToTop,
	LabelLanguageMenu,
}

// ThemeLabels holds the theme's UI strings for the site language.
type ThemeLabels = Bundle[LabelKey]

// NewThemeLabels requires a value for every LabelKey.
func NewThemeLabels(values map[LabelKey]string) (ThemeLabels, error) {
	return NewBundle(LabelKeys, values)
}

// SearchKey names a search UI string. Dots separate nesting levels in the
// generator document.
type SearchKey string

const (
	SearchButtonText      SearchKey = "button.buttonText"
	SearchButtonAriaLabel SearchKey = "button.buttonAriaLabel"
	SearchDisplayDetails  SearchKey = "modal.displayDetails"
	SearchResetTitle      SearchKey = "modal.resetButtonTitle"
	SearchBackTitle       SearchKey = "modal.backButtonTitle"
	SearchNoResults       SearchKey = "modal.noResultsText"
	SearchFooterSelect    SearchKey = "modal.footer.selectText"
	SearchFooterNavigate  SearchKey = "modal.footer.navigateText"
	SearchFooterClose     SearchKey = "modal.footer.closeText"
)

// SearchKeys lists every search UI string in export order.
var SearchKeys = []SearchKey{
	SearchButtonText,
	SearchButtonAriaLabel,
	SearchDisplayDetails,
	SearchResetTitle,
	SearchBackTitle,
	SearchNoResults,
	SearchFooterSelect,
	SearchFooterNavigate,
	SearchFooterClose,
}
