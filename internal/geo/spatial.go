package geo

import (
	"strings"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/maptile"
)

const (
	// TokenZoom is the precision of stored spatial tokens (~600 m tiles at the equator).
	TokenZoom = maptile.Zoom(16)

	// DefaultProximityZoom is the prefix length used for proximity lookups (~5 km tiles).
	DefaultProximityZoom = maptile.Zoom(13)
)

// Point converts a lat/lng pair to an orb point (lng, lat order).
func Point(lat, lng float64) orb.Point {
	return orb.Point{lng, lat}
}

// DistanceMeters returns the great-circle distance between two coordinates.
func DistanceMeters(lat1, lng1, lat2, lng2 float64) float64 {
	return orbgeo.Distance(Point(lat1, lng1), Point(lat2, lng2))
}

// SpatialToken returns the fixed-precision quadkey of the tile containing the
// coordinate. A token's prefixes are the quadkeys of its parent tiles, so a
// prefix range scan finds everything inside a coarser tile.
func SpatialToken(lat, lng float64) string {
	if !ValidCoordinate(lat, lng) {
		return ""
	}

	return quadkey(maptile.At(Point(lat, lng), TokenZoom))
}

// ProximityPrefixes returns the token prefixes of the 3x3 tile neighborhood
// around the coordinate at the given zoom, center first.
func ProximityPrefixes(lat, lng float64, zoom maptile.Zoom) []string {
	if !ValidCoordinate(lat, lng) {
		return nil
	}
	if zoom == 0 || zoom > TokenZoom {
		zoom = DefaultProximityZoom
	}

	center := maptile.At(Point(lat, lng), zoom)
	limit := int64(1) << uint(zoom)

	prefixes := make([]string, 0, 9)
	prefixes = append(prefixes, quadkey(center))

	for dy := int64(-1); dy <= 1; dy++ {
		for dx := int64(-1); dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}

			y := int64(center.Y) + dy
			if y < 0 || y >= limit {
				continue
			}
			x := (int64(center.X) + dx + limit) % limit

			prefixes = append(prefixes, quadkey(maptile.Tile{X: uint32(x), Y: uint32(y), Z: zoom}))
		}
	}

	return prefixes
}

// quadkey renders a tile as a base-4 string, one digit per zoom level.
func quadkey(tile maptile.Tile) string {
	var builder strings.Builder
	builder.Grow(int(tile.Z))

	for level := int(tile.Z); level > 0; level-- {
		digit := byte('0')
		mask := uint32(1) << uint(level-1)
		if tile.X&mask != 0 {
			digit++
		}
		if tile.Y&mask != 0 {
			digit += 2
		}
		builder.WriteByte(digit)
	}

	return builder.String()
}

// TokenRange returns the half-open range [start, end) of tokens that begin
// with prefix. Token digits are 0-3, so "4" sorts after every extension.
func TokenRange(prefix string) (start, end string) {
	return prefix, prefix + "4"
}
