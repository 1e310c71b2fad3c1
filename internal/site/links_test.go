package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyLink(t *testing.T) {
	tests := []struct {
		link string
		want LinkKind
	}{
		{"/", LinkInternal},
		{"/guide/getting-started", LinkInternal},
		{"/guide/intro#install", LinkInternal},
		{"https://github.com/example/widget", LinkExternal},
		{"HTTP://example.com", LinkExternal},
		{"mailto:team@example.com", LinkExternal},
		{"", LinkInvalid},
		{"guide/intro", LinkInvalid},
		{"//cdn.example.com/x.js", LinkInvalid},
		{"/guide/with space", LinkInvalid},
		{"https://", LinkInvalid},
		{"ftp://example.com/file", LinkInvalid},
		{"javascript:alert(1)", LinkInvalid},
		{"mailto:", LinkInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.link, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyLink(tt.link))
		})
	}
}

func TestRoutePath(t *testing.T) {
	assert.Equal(t, "/guide/intro", RoutePath("/guide/intro#install"))
	assert.Equal(t, "/search", RoutePath("/search?q=x"))
	assert.Equal(t, "/guide/", RoutePath("/guide/"))
}

func TestLinkKindString(t *testing.T) {
	assert.Equal(t, "internal", LinkInternal.String())
	assert.Equal(t, "external", LinkExternal.String())
	assert.Equal(t, "invalid", LinkInvalid.String())
}
