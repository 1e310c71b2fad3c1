package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
)

func TestInitThenLoad(t *testing.T) {
	fsys := afero.NewMemMapFs()

	require.NoError(t, Init(fsys, DefaultPath, false))

	cfg, err := Load(fsys, DefaultPath)
	require.NoError(t, err)

	builtin, err := Builtin()
	require.NoError(t, err)
	assert.Equal(t, builtin, cfg)
}

func TestInitRefusesOverwrite(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "site.yaml", []byte("keep me"), 0o644))

	err := Init(fsys, "site.yaml", false)
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryFileSystem))

	data, err := afero.ReadFile(fsys, "site.yaml")
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(data))

	require.NoError(t, Init(fsys, "site.yaml", true))
	_, err = Load(fsys, "site.yaml")
	require.NoError(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "nope.yaml")
	require.Error(t, err)

	classified, ok := ferrors.AsClassified(err)
	require.True(t, ok)
	assert.Equal(t, ferrors.CategoryFileSystem, classified.Category())
	path, _ := classified.Context().GetString(ferrors.ContextPath)
	assert.Equal(t, "nope.yaml", path)
}

func TestLoadInvalidConfiguration(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "docnav.yaml", []byte("title: \"\"\nlang: en\nthemeConfig: {}\n"), 0o644))

	_, err := Load(fsys, "docnav.yaml")
	require.Error(t, err)

	classified, ok := ferrors.AsClassified(err)
	require.True(t, ok)
	assert.Equal(t, ferrors.CategoryValidation, classified.Category())
	assert.Equal(t, "title", classified.Field())
	path, _ := classified.Context().GetString(ferrors.ContextPath)
	assert.Equal(t, "docnav.yaml", path)
}

func TestLoadMalformedYAML(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "docnav.yaml", []byte("title: [\n"), 0o644))

	_, err := Load(fsys, "docnav.yaml")
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
}
