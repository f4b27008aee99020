// Package usecase defines the application operations and their inputs and outputs.
package usecase

import (
	"context"

	"tablescout/internal/domain/entity"
)

// ResultSource tells where search results came from.
type ResultSource string

const (
	SourcePartition ResultSource = "partition" // the query's own partition
	SourceNeighbor  ResultSource = "neighbor"  // a covering neighbor partition
	SourceUpstream  ResultSource = "upstream"  // a fresh upstream search
)

// SearchInput is a nearby search request.
type SearchInput struct {
	Lat          float64 `json:"lat" query:"lat" validate:"gte=-90,lte=90"`
	Lng          float64 `json:"lng" query:"lng" validate:"gte=-180,lte=180"`
	RadiusMeters float64 `json:"radius" query:"radius" validate:"gt=0,lte=50000"`
	Category     string  `json:"category" query:"category" validate:"omitempty,max=64"`
}

// SearchResult is the answer to a nearby search. Places keep partition order.
type SearchResult struct {
	PartitionKey string          `json:"partition_key"`
	Places       []*entity.Place `json:"places"`
	Source       ResultSource    `json:"source"`
	CacheHit     bool            `json:"cache_hit"`
}

// SearchUsecase defines the place search use cases
type SearchUsecase interface {
	// SearchNearby answers a nearby search from cached partitions when possible,
	// otherwise from the upstream provider.
	SearchNearby(ctx context.Context, input *SearchInput) (*SearchResult, error)

	// QueryByProximity returns up to maxResults cached places around a point,
	// nearest first, without calling upstream.
	QueryByProximity(ctx context.Context, lat, lng float64, maxResults int) ([]*entity.Place, error)
}
