package entity

import (
	"slices"

	"tablescout/internal/geo"
)

// MergeUpstream combines a freshly fetched upstream record with the stored
// one. The claim overlay is always taken from existing, the enrichment level
// never decreases, and the spatial token is recomputed from the coordinates.
// When a light payload lands on a rich record, the rich details and their
// freshness window are kept and only the summary is refreshed.
func MergeUpstream(existing, incoming *Place) *Place {
	if incoming == nil {
		return existing.Clone()
	}

	merged := incoming.Clone()
	merged.SpatialToken = geo.SpatialToken(merged.Summary.Location.Lat, merged.Summary.Location.Lng)

	if existing == nil {
		return merged
	}

	merged.Claim = existing.Claim.Clone()

	if merged.Summary.OpeningHours.IsEmpty() && !existing.Summary.OpeningHours.IsEmpty() {
		merged.Summary.OpeningHours = existing.Summary.OpeningHours.clone()
	}
	if len(merged.Summary.Photos) == 0 {
		merged.Summary.Photos = slices.Clone(existing.Summary.Photos)
	}

	if existing.EnrichmentLevel.Rank() > incoming.EnrichmentLevel.Rank() {
		merged.EnrichmentLevel = existing.EnrichmentLevel
		merged.Details = existing.Clone().Details
		merged.Freshness = existing.Freshness
	}

	return merged
}
