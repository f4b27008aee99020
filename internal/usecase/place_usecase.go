package usecase

import (
	"context"

	"tablescout/internal/domain/entity"
)

// EnrichmentUsecase defines the tiered enrichment use cases
type EnrichmentUsecase interface {
	// Enrich returns rich records for ids in input order. Identities that
	// could not be fetched and have no cached record are dropped; when a fetch
	// fails but a stale record exists, the stale record is returned.
	Enrich(ctx context.Context, ids []string) ([]*entity.Place, error)

	// GetOrFetchEntity returns the fresh cached record, fetching it upstream
	// when missing or stale.
	GetOrFetchEntity(ctx context.Context, id string) (*entity.Place, error)
}

// ClaimInput is an operator's overlay submission.
type ClaimInput struct {
	Name         string               `json:"name" validate:"omitempty,max=200"`
	Address      string               `json:"address" validate:"omitempty,max=300"`
	AverageCheck *float64             `json:"average_check" validate:"omitempty,gte=0"`
	CuisineTags  []string             `json:"cuisine_tags" validate:"omitempty,max=20,dive,max=40"`
	OpeningHours *entity.OpeningHours `json:"opening_hours"`
	MenuItems    []entity.MenuItem    `json:"menu_items" validate:"omitempty,dive"`
	Tables       *entity.TableConfig  `json:"tables"`
	CustomPhotos []entity.Photo       `json:"custom_photos" validate:"omitempty,max=50"`
}

// ClaimUsecase defines the claimed-place overlay use cases
type ClaimUsecase interface {
	// ResolveClaimed returns the client view of a place with the operator
	// overlay applied.
	ResolveClaimed(ctx context.Context, id string) (*entity.ResolvedView, error)

	// UpdateClaim stores an operator's overlay for a place. A nil input
	// withdraws the claim.
	UpdateClaim(ctx context.Context, id, operatorID string, input *ClaimInput) (*entity.ResolvedView, error)
}
