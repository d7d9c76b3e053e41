package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func locatedProfile(id int64, lat, lon float64) *Profile {
	return &Profile{ID: id, Latitude: floatPtr(lat), Longitude: floatPtr(lon)}
}

func TestWithinRadiusRejectsNonPositiveRadius(t *testing.T) {
	for _, radius := range []float64{0, -1, -0.001} {
		_, err := WithinRadius(nil, 0, 0, radius)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}
}

func TestWithinRadiusFiltersByDistance(t *testing.T) {
	candidates := []*Profile{
		locatedProfile(1, 0, 0.01),  // ~1.1 km
		locatedProfile(2, 0, 0.1),   // ~11.1 km
		locatedProfile(3, 0.5, 0.5), // ~78.6 km
	}

	near, err := WithinRadius(candidates, 0, 0, 5)
	require.NoError(t, err)
	require.Len(t, near, 1)
	assert.Equal(t, int64(1), near[0].ID)

	wider, err := WithinRadius(candidates, 0, 0, 15)
	require.NoError(t, err)
	require.Len(t, wider, 2)
	assert.Equal(t, int64(1), wider[0].ID)
	assert.Equal(t, int64(2), wider[1].ID)
}

func TestWithinRadiusSkipsProfilesWithoutLocation(t *testing.T) {
	candidates := []*Profile{
		{ID: 1},                            // no location at all
		{ID: 2, Latitude: floatPtr(0)},     // half a location
		locatedProfile(3, 0, 0),            // at the reference point
	}

	near, err := WithinRadius(candidates, 0, 0, 100)
	require.NoError(t, err)
	require.Len(t, near, 1)
	assert.Equal(t, int64(3), near[0].ID)
}

func TestWithinRadiusPreservesInputOrder(t *testing.T) {
	candidates := []*Profile{
		locatedProfile(7, 0, 0.02),
		locatedProfile(3, 0, 0.01),
		locatedProfile(9, 0, 0.03),
	}

	near, err := WithinRadius(candidates, 0, 0, 10)
	require.NoError(t, err)
	require.Len(t, near, 3)
	assert.Equal(t, []int64{7, 3, 9}, []int64{near[0].ID, near[1].ID, near[2].ID})
}
