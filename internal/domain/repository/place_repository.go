// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"tablescout/internal/domain/entity"
)

// PlaceRepository defines the interface for cached place records.
type PlaceRepository interface {
	// FindPlace retrieves one place. It returns domainerrors.ErrPlaceNotFound
	// when no record exists.
	FindPlace(ctx context.Context, id string) (*entity.Place, error)

	// FindPlaces retrieves many places in a single round-trip. Missing IDs are
	// absent from the result.
	FindPlaces(ctx context.Context, ids []string) (map[string]*entity.Place, error)

	// SavePlace merges an upstream record into the stored one inside a
	// transaction and returns the merged record. The stored claim overlay is
	// never modified.
	SavePlace(ctx context.Context, place *entity.Place) (*entity.Place, error)

	// SaveClaim replaces the claim overlay of a place on behalf of operatorID,
	// leaving upstream fields untouched. A nil claim removes the overlay. It
	// returns domainerrors.ErrPlaceNotFound when the place is not cached and
	// domainerrors.ErrClaimConflict when another operator holds the claim.
	SaveClaim(ctx context.Context, id, operatorID string, claim *entity.Claim) error

	// FindPlacesByTokenPrefix returns up to limit places whose spatial token
	// starts with prefix.
	FindPlacesByTokenPrefix(ctx context.Context, prefix string, limit int) ([]*entity.Place, error)
}
