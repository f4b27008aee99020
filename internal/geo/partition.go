// Package geo derives the spatial keys used by the place cache: partition keys
// for raw search results and quadkey tokens for proximity lookups.
package geo

import (
	"math"
	"strconv"
	"strings"

	"tablescout/internal/errors"
)

const (
	// MetersPerDegree is the length of one degree of latitude (earth circumference / 360).
	MetersPerDegree = 111_320.0

	defaultMinCellDegrees     = 0.01
	defaultCellScale          = 100.0
	defaultRadiusBucketMeters = 1000
)

// ErrInvalidCoordinate is returned for NaN, infinite or out-of-range input.
var ErrInvalidCoordinate = errors.New("invalid coordinate or radius")

// PartitionConfig tunes the grid used for partition keys.
type PartitionConfig struct {
	// MinCellDegrees is the smallest cell edge, used for short-radius searches.
	MinCellDegrees float64
	// CellScale is the rounding resolution of the cell edge (100 = 0.01° steps).
	CellScale float64
	// RadiusBucketMeters is the step radii are rounded to.
	RadiusBucketMeters int
}

// Cell identifies one grid cell for one radius bucket.
type Cell struct {
	LatIndex     int
	LngIndex     int
	CellDegrees  float64
	BucketMeters int
}

// Deriver maps (lat, lng, radius) to stable partition keys.
type Deriver struct {
	minCell float64
	scale   float64
	step    int
}

// NewDeriver creates a Deriver, filling zero values with defaults.
func NewDeriver(cfg PartitionConfig) *Deriver {
	deriver := &Deriver{
		minCell: cfg.MinCellDegrees,
		scale:   cfg.CellScale,
		step:    cfg.RadiusBucketMeters,
	}
	if deriver.minCell <= 0 {
		deriver.minCell = defaultMinCellDegrees
	}
	if deriver.scale <= 0 {
		deriver.scale = defaultCellScale
	}
	if deriver.step <= 0 {
		deriver.step = defaultRadiusBucketMeters
	}

	return deriver
}

// BucketRadius rounds a radius to the nearest bucket step, never below one step.
func (d *Deriver) BucketRadius(radiusMeters float64) int {
	step := float64(d.step)
	bucket := int(math.Round(radiusMeters/step)) * d.step

	return max(bucket, d.step)
}

// CellDegrees returns the cell edge for a bucketed radius. Wider searches get
// coarser cells.
func (d *Deriver) CellDegrees(bucketMeters int) float64 {
	edge := math.Ceil(float64(bucketMeters)/MetersPerDegree*d.scale) / d.scale

	return math.Max(d.minCell, edge)
}

// Cell returns the grid cell containing the point for the given radius.
func (d *Deriver) Cell(lat, lng, radiusMeters float64) (Cell, error) {
	if !ValidCoordinate(lat, lng) || math.IsNaN(radiusMeters) || math.IsInf(radiusMeters, 0) || radiusMeters <= 0 {
		return Cell{}, ErrInvalidCoordinate
	}

	bucket := d.BucketRadius(radiusMeters)
	edge := d.CellDegrees(bucket)

	return Cell{
		LatIndex:     int(math.Floor(lat / edge)),
		LngIndex:     int(math.Floor(lng / edge)),
		CellDegrees:  edge,
		BucketMeters: bucket,
	}, nil
}

// Key returns the partition key for a query. Queries whose centers share a
// cell and whose radii share a bucket get identical keys.
func (d *Deriver) Key(lat, lng, radiusMeters float64) (string, error) {
	cell, err := d.Cell(lat, lng, radiusMeters)
	if err != nil {
		return "", err
	}

	return cell.Key(), nil
}

// NeighborKeys returns the keys of the 3x3 neighborhood around the query
// point, center first. Longitude wraps at the antimeridian; rows beyond the
// poles are dropped.
func (d *Deriver) NeighborKeys(lat, lng, radiusMeters float64) ([]string, error) {
	center, err := d.Cell(lat, lng, radiusMeters)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, 9)
	keys = append(keys, center.Key())

	for dLat := -1; dLat <= 1; dLat++ {
		for dLng := -1; dLng <= 1; dLng++ {
			if dLat == 0 && dLng == 0 {
				continue
			}

			neighbor, ok := center.offset(dLat, dLng)
			if !ok {
				continue
			}
			keys = append(keys, neighbor.Key())
		}
	}

	return keys, nil
}

// Key encodes the cell as "p{edge in 1e-4 degrees}:{lat index}:{lng index}:{bucket}".
func (c Cell) Key() string {
	var builder strings.Builder
	builder.Grow(32)
	builder.WriteByte('p')
	builder.WriteString(strconv.Itoa(int(math.Round(c.CellDegrees * 10_000))))
	builder.WriteByte(':')
	builder.WriteString(strconv.Itoa(c.LatIndex))
	builder.WriteByte(':')
	builder.WriteString(strconv.Itoa(c.LngIndex))
	builder.WriteByte(':')
	builder.WriteString(strconv.Itoa(c.BucketMeters))

	return builder.String()
}

func (c Cell) offset(dLat, dLng int) (Cell, bool) {
	lat := c.LatIndex + dLat
	if float64(lat)*c.CellDegrees >= 90 || float64(lat+1)*c.CellDegrees <= -90 {
		return Cell{}, false
	}

	lng := c.LngIndex + dLng
	minLng := int(math.Floor(-180 / c.CellDegrees))
	maxLng := int(math.Floor(180/c.CellDegrees)) - 1
	switch {
	case lng > maxLng:
		lng = minLng + (lng - maxLng - 1)
	case lng < minLng:
		lng = maxLng - (minLng - lng - 1)
	}

	return Cell{LatIndex: lat, LngIndex: lng, CellDegrees: c.CellDegrees, BucketMeters: c.BucketMeters}, true
}

// ValidCoordinate checks if a coordinate is within valid geographic bounds
func ValidCoordinate(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}

	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
