package vendors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind(t *testing.T) {
	all := Find(Filter{})
	assert.Equal(t, len(All()), len(all))

	venues := Find(Filter{Category: CategoryVenue})
	require.NotEmpty(t, venues)
	for _, v := range venues {
		assert.Equal(t, CategoryVenue, v.Category)
	}

	jaipur := Find(Filter{City: "jaipur"})
	require.NotEmpty(t, jaipur)
	for _, v := range jaipur {
		assert.Equal(t, "Jaipur", v.City)
	}

	luxuryVenues := Find(Filter{Category: CategoryVenue, PriceBand: "Luxury"})
	require.NotEmpty(t, luxuryVenues)
	for _, v := range luxuryVenues {
		assert.Equal(t, "Luxury", v.PriceBand)
		assert.Equal(t, CategoryVenue, v.Category)
	}

	assert.Empty(t, Find(Filter{City: "Atlantis"}))
}

func TestByID(t *testing.T) {
	vendor, ok := ByID("ven-001")
	require.True(t, ok)
	assert.Equal(t, "The Grand Maratha Ballroom", vendor.Name)

	_, ok = ByID("nope")
	assert.False(t, ok)
}

func TestNamesFor(t *testing.T) {
	names := NamesFor(CategoryDecor, 3)
	require.Len(t, names, 3)

	// Catalog order, stable across calls.
	assert.Equal(t, names, NamesFor(CategoryDecor, 3))

	assert.Empty(t, NamesFor("florist", 3))
}
