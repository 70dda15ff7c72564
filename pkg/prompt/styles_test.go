package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogLoads(t *testing.T) {
	names := StyleNames()
	assert.Len(t, names, 18)
	assert.Contains(t, names, "realistic")
	assert.Contains(t, names, "anime")
	assert.Contains(t, names, "vaporwave")

	for _, name := range names {
		s := styles[name]
		assert.NotEmpty(t, s.Label, "%s: label", name)
		assert.NotEmpty(t, s.Description, "%s: description", name)
		assert.NotEmpty(t, s.VideoDirective, "%s: video directive", name)
		assert.NotEmpty(t, s.ImageDirective, "%s: image directive", name)
	}
}

func TestGetStyleFallsBackToDefault(t *testing.T) {
	fallback := GetStyle("no-such-style")
	assert.Equal(t, GetStyle(DefaultStyle), fallback)
}

func TestHasStyle(t *testing.T) {
	assert.True(t, HasStyle("anime"))
	assert.False(t, HasStyle("claymation-noir"))
}

func TestStyleNamesSorted(t *testing.T) {
	names := StyleNames()
	require.NotEmpty(t, names)
	assert.IsIncreasing(t, names)
}

func TestListStylesMentionsEveryName(t *testing.T) {
	out := ListStyles()
	for _, name := range StyleNames() {
		assert.Contains(t, out, name)
	}
}
