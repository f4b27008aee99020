package service

import (
	"context"

	"tablescout/internal/domain/entity"
)

// SearchRequest describes one upstream nearby search.
type SearchRequest struct {
	Lat          float64
	Lng          float64
	RadiusMeters float64
	Category     string // Upstream place type, empty for any restaurant
	MaxResults   int
}

// Field masks for GetDetails.
var (
	SummaryFields = []string{"id", "displayName", "formattedAddress", "location", "types", "rating", "userRatingCount", "priceLevel", "regularOpeningHours", "photos"}
	RichFields    = append(append([]string{}, SummaryFields...), "reviews", "editorialSummary", "websiteUri", "nationalPhoneNumber")
)

// PlaceProvider defines the interface for the upstream places API.
// Implementations report failures as domainerrors.ErrUpstreamUnavailable,
// ErrUpstreamTimeout or ErrPlaceNotFound.
type PlaceProvider interface {
	// SearchNearby returns light place records around a point, nearest first.
	SearchNearby(ctx context.Context, req *SearchRequest) ([]*entity.Place, error)

	// GetDetails fetches one place restricted to the given field mask.
	GetDetails(ctx context.Context, id string, fields []string) (*entity.Place, error)
}
