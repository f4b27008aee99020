// Package model holds the document shapes shared by the store backends.
package model

import (
	"time"

	"tablescout/internal/domain/entity"
)

// PlaceDocument is the stored shape of a place in the 'places' collection.
// SpatialToken is a top-level field so prefix range queries can use it.
type PlaceDocument struct {
	ID              string         `json:"id"              firestore:"id"`
	Summary         entity.Summary `json:"summary"         firestore:"summary"`
	Details         entity.Details `json:"details"         firestore:"details"`
	EnrichmentLevel string         `json:"enrichmentLevel" firestore:"enrichmentLevel"`
	FetchedAt       time.Time      `json:"fetchedAt"       firestore:"fetchedAt"`
	ExpiresAt       time.Time      `json:"expiresAt"       firestore:"expiresAt"`
	SpatialToken    string         `json:"spatialToken"    firestore:"spatialToken"`
	Claim           *entity.Claim  `json:"claim,omitempty" firestore:"claim"`
	UpdatedAt       time.Time      `json:"updatedAt"       firestore:"updatedAt"`
}

// ToPlaceDomain converts a stored document to the domain entity.
func ToPlaceDomain(data *PlaceDocument) *entity.Place {
	if data == nil {
		return nil
	}

	return &entity.Place{
		ID:              data.ID,
		Summary:         data.Summary,
		Details:         data.Details,
		EnrichmentLevel: entity.EnrichmentLevel(data.EnrichmentLevel),
		Freshness: entity.Freshness{
			FetchedAt: data.FetchedAt,
			ExpiresAt: data.ExpiresAt,
		},
		SpatialToken: data.SpatialToken,
		Claim:        data.Claim,
	}
}

// FromPlaceDomain converts a domain place to its stored document.
func FromPlaceDomain(data *entity.Place, updatedAt time.Time) *PlaceDocument {
	if data == nil {
		return nil
	}

	return &PlaceDocument{
		ID:              data.ID,
		Summary:         data.Summary,
		Details:         data.Details,
		EnrichmentLevel: string(data.EnrichmentLevel),
		FetchedAt:       data.Freshness.FetchedAt,
		ExpiresAt:       data.Freshness.ExpiresAt,
		SpatialToken:    data.SpatialToken,
		Claim:           data.Claim,
		UpdatedAt:       updatedAt,
	}
}
