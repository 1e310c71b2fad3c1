package normalization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type color string

const (
	red  color = "red"
	blue color = "blue"
)

func newColors() *Normalizer[color] {
	return NewNormalizer("color", map[string]color{"red": red, "Blue": blue}, red)
}

func TestNormalize(t *testing.T) {
	n := newColors()

	assert.Equal(t, blue, n.Normalize("  BLUE "))
	assert.Equal(t, red, n.Normalize("green"), "unknown values fall back to the default")
	assert.True(t, n.Valid("Red"))
	assert.False(t, n.Valid("green"))
}

func TestParse(t *testing.T) {
	n := newColors()

	got, err := n.Parse("blue")
	require.NoError(t, err)
	assert.Equal(t, blue, got)

	_, err = n.Parse("green")
	require.Error(t, err)
	assert.Equal(t, `invalid color "green", valid options: blue|red`, err.Error())
}

func TestValidKeysIsACopy(t *testing.T) {
	n := newColors()
	keys := n.ValidKeys()
	keys[0] = "mutated"
	assert.Equal(t, []string{"blue", "red"}, n.ValidKeys())
}
