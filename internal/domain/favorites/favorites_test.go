package favorites

import (
	"testing"

	"artisan-storefront/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleTwiceRestoresSet(t *testing.T) {
	c := catalog.MustSeed()
	var s Set

	assert.True(t, s.Toggle(5, c.Artwork))
	require.Len(t, s.Items(), 1)
	assert.Equal(t, "Still Serenity", s.Items()[0].Title)

	assert.False(t, s.Toggle(5, c.Artwork))
	assert.Empty(t, s.Items())
}

func TestToggleUnknownIsSilentNoop(t *testing.T) {
	c := catalog.MustSeed()
	var s Set
	s.Toggle(1, c.Artwork)

	assert.False(t, s.Toggle(404, c.Artwork))
	assert.Equal(t, 1, s.Len())
}

func TestNoDuplicateIDs(t *testing.T) {
	c := catalog.MustSeed()
	var s Set
	for _, id := range []int64{1, 2, 1, 3, 1, 2} {
		s.Toggle(id, c.Artwork)
	}

	seen := map[int64]bool{}
	for _, a := range s.Items() {
		assert.False(t, seen[a.ID], "duplicate id %d", a.ID)
		seen[a.ID] = true
	}
	assert.True(t, s.Contains(1))
	assert.True(t, s.Contains(3))
	assert.False(t, s.Contains(2))
}
