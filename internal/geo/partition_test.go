package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriver_BucketRadius(t *testing.T) {
	deriver := NewDeriver(PartitionConfig{})

	tests := []struct {
		name   string
		radius float64
		want   int
	}{
		{name: "below one step", radius: 400, want: 1000},
		{name: "rounds down", radius: 1499, want: 1000},
		{name: "rounds half up", radius: 1500, want: 2000},
		{name: "exact step", radius: 5000, want: 5000},
		{name: "rounds up", radius: 4600, want: 5000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, deriver.BucketRadius(tt.radius))
		})
	}
}

func TestDeriver_CellDegrees(t *testing.T) {
	deriver := NewDeriver(PartitionConfig{})

	assert.InDelta(t, 0.01, deriver.CellDegrees(1000), 1e-9)
	assert.InDelta(t, 0.05, deriver.CellDegrees(5000), 1e-9)
	assert.InDelta(t, 0.18, deriver.CellDegrees(20000), 1e-9)
}

func TestDeriver_Key_Stability(t *testing.T) {
	deriver := NewDeriver(PartitionConfig{})

	// Bratislava old town, both points inside the same 0.05° cell.
	first, err := deriver.Key(48.1486, 17.1077, 4600)
	require.NoError(t, err)
	second, err := deriver.Key(48.1012, 17.1401, 5400)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "p500:962:342:5000", first)

	// Same center, different bucket.
	wider, err := deriver.Key(48.1486, 17.1077, 20000)
	require.NoError(t, err)
	assert.NotEqual(t, first, wider)

	// Neighboring cell.
	north, err := deriver.Key(48.1612, 17.1077, 5000)
	require.NoError(t, err)
	assert.NotEqual(t, first, north)
}

func TestDeriver_Key_Invalid(t *testing.T) {
	deriver := NewDeriver(PartitionConfig{})

	tests := []struct {
		name     string
		lat, lng float64
		radius   float64
	}{
		{name: "latitude out of range", lat: 91, lng: 0, radius: 1000},
		{name: "longitude out of range", lat: 0, lng: -181, radius: 1000},
		{name: "nan latitude", lat: math.NaN(), lng: 0, radius: 1000},
		{name: "zero radius", lat: 48, lng: 17, radius: 0},
		{name: "negative radius", lat: 48, lng: 17, radius: -5},
		{name: "infinite radius", lat: 48, lng: 17, radius: math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := deriver.Key(tt.lat, tt.lng, tt.radius)
			assert.ErrorIs(t, err, ErrInvalidCoordinate)
		})
	}
}

func TestDeriver_NeighborKeys(t *testing.T) {
	deriver := NewDeriver(PartitionConfig{})

	keys, err := deriver.NeighborKeys(48.1486, 17.1077, 5000)
	require.NoError(t, err)
	require.Len(t, keys, 9)

	center, err := deriver.Key(48.1486, 17.1077, 5000)
	require.NoError(t, err)
	assert.Equal(t, center, keys[0])

	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		seen[key] = struct{}{}
	}
	assert.Len(t, seen, 9)
	assert.Contains(t, keys, "p500:963:343:5000")
	assert.Contains(t, keys, "p500:961:341:5000")
}

func TestDeriver_NeighborKeys_Pole(t *testing.T) {
	deriver := NewDeriver(PartitionConfig{})

	keys, err := deriver.NeighborKeys(89.99, 10, 5000)
	require.NoError(t, err)

	assert.Len(t, keys, 6)
}

func TestDeriver_CustomConfig(t *testing.T) {
	deriver := NewDeriver(PartitionConfig{MinCellDegrees: 0.1, RadiusBucketMeters: 500})

	assert.Equal(t, 500, deriver.BucketRadius(100))
	assert.InDelta(t, 0.1, deriver.CellDegrees(500), 1e-9)
}
