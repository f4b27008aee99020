package geo

import (
	"strings"
	"testing"

	"github.com/paulmach/orb/maptile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpatialToken(t *testing.T) {
	token := SpatialToken(48.1486, 17.1077)

	require.Len(t, token, int(TokenZoom))
	assert.Empty(t, strings.Trim(token, "0123"))

	// Tokens are stable for the same coordinate.
	assert.Equal(t, token, SpatialToken(48.1486, 17.1077))
}

func TestSpatialToken_Invalid(t *testing.T) {
	assert.Empty(t, SpatialToken(120, 17))
	assert.Empty(t, SpatialToken(48, 200))
}

func TestQuadkey(t *testing.T) {
	// Worked example from the Bing Maps tile system documentation.
	assert.Equal(t, "213", quadkeyOf(3, 5, 3))
	assert.Equal(t, "0", quadkeyOf(0, 0, 1))
	assert.Equal(t, "3", quadkeyOf(1, 1, 1))
}

func TestProximityPrefixes(t *testing.T) {
	prefixes := ProximityPrefixes(48.1486, 17.1077, DefaultProximityZoom)
	require.Len(t, prefixes, 9)

	token := SpatialToken(48.1486, 17.1077)
	assert.True(t, strings.HasPrefix(token, prefixes[0]))

	seen := make(map[string]struct{}, len(prefixes))
	for _, prefix := range prefixes {
		assert.Len(t, prefix, int(DefaultProximityZoom))
		seen[prefix] = struct{}{}
	}
	assert.Len(t, seen, 9)
}

func TestProximityPrefixes_DefaultsZoom(t *testing.T) {
	prefixes := ProximityPrefixes(48.1486, 17.1077, 0)
	require.NotEmpty(t, prefixes)

	assert.Len(t, prefixes[0], int(DefaultProximityZoom))
}

func TestProximityPrefixes_Invalid(t *testing.T) {
	assert.Nil(t, ProximityPrefixes(95, 17.1077, DefaultProximityZoom))
}

func TestDistanceMeters(t *testing.T) {
	// Bratislava to Vienna.
	distance := DistanceMeters(48.1486, 17.1077, 48.2082, 16.3738)

	assert.InDelta(t, 55_000, distance, 2_000)
	assert.Zero(t, DistanceMeters(48.1486, 17.1077, 48.1486, 17.1077))
}

func quadkeyOf(x, y uint32, zoom maptile.Zoom) string {
	return quadkey(maptile.Tile{X: x, Y: y, Z: zoom})
}

func TestTokenRange(t *testing.T) {
	token := SpatialToken(48.1486, 17.1077)
	start, end := TokenRange(token[:13])

	assert.GreaterOrEqual(t, token, start)
	assert.Less(t, token, end)

	other := SpatialToken(-33.8688, 151.2093)
	assert.False(t, other >= start && other < end)
}
