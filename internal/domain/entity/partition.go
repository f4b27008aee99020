package entity

import (
	"strings"

	"tablescout/internal/geo"
)

// SearchParams are the parameters a partition was fetched with.
type SearchParams struct {
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	RadiusMeters float64 `json:"radius_meters"`
	BucketMeters int     `json:"bucket_meters"`
	Category     string  `json:"category,omitempty"`
}

// Partition is a cached nearby-search result: the ordered member IDs of one
// upstream search.
type Partition struct {
	Key       string       `json:"key"`
	MemberIDs []string     `json:"member_ids"`
	Freshness Freshness    `json:"freshness"`
	Params    SearchParams `json:"params"`
}

// SameQueryClass reports whether q asks for the same bucket and category.
func (p *Partition) SameQueryClass(q SearchParams) bool {
	return p.Params.BucketMeters == q.BucketMeters && strings.EqualFold(p.Params.Category, q.Category)
}

// Covers reports whether the partition's search circle fully contains the
// query circle for the same query class.
func (p *Partition) Covers(q SearchParams) bool {
	if !p.SameQueryClass(q) {
		return false
	}

	distance := geo.DistanceMeters(p.Params.Lat, p.Params.Lng, q.Lat, q.Lng)

	return distance+q.RadiusMeters <= p.Params.RadiusMeters
}
