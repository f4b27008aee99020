package firestore

import (
	"context"
	"time"

	"tablescout/internal/domain/entity"
	domainerrors "tablescout/internal/domain/errors"
	"tablescout/internal/domain/repository"
	"tablescout/internal/geo"
	"tablescout/internal/infra/persistence/model"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// placeRepository implements the repository.PlaceRepository interface.
type placeRepository struct {
	client     *fs.Client
	collection string
}

// NewPlaceRepository is the constructor for placeRepository.
func NewPlaceRepository(client *fs.Client, collections Collections) repository.PlaceRepository {
	return &placeRepository{client: client, collection: collections.Places}
}

func (repo *placeRepository) places() *fs.CollectionRef {
	return repo.client.Collection(repo.collection)
}

// FindPlace retrieves one place.
func (repo *placeRepository) FindPlace(ctx context.Context, id string) (*entity.Place, error) {
	snap, err := repo.places().Doc(id).Get(ctx)
	if isNotFound(err) {
		return nil, domainerrors.ErrPlaceNotFound
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to get place")
	}

	var doc model.PlaceDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "decode place %s", id)
	}

	return model.ToPlaceDomain(&doc), nil
}

// FindPlaces retrieves many places with a single GetAll round-trip.
func (repo *placeRepository) FindPlaces(ctx context.Context, ids []string) (map[string]*entity.Place, error) {
	docRefs := refs(repo.places(), ids)
	places := make(map[string]*entity.Place, len(docRefs))
	if len(docRefs) == 0 {
		return places, nil
	}

	snaps, err := repo.client.GetAll(ctx, docRefs)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to get places")
	}

	for _, snap := range snaps {
		if !snap.Exists() {
			continue
		}

		var doc model.PlaceDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrapf(err, "decode place %s", snap.Ref.ID)
		}
		places[snap.Ref.ID] = model.ToPlaceDomain(&doc)
	}

	return places, nil
}

// SavePlace merges the incoming record into the stored one inside a transaction.
func (repo *placeRepository) SavePlace(ctx context.Context, place *entity.Place) (*entity.Place, error) {
	ref := repo.places().Doc(place.ID)

	var merged *entity.Place
	err := repo.client.RunTransaction(ctx, func(ctx context.Context, tx *fs.Transaction) error {
		var existing *entity.Place

		snap, err := tx.Get(ref)
		switch {
		case isNotFound(err):
		case err != nil:
			return errors.WithStack(err)
		default:
			var doc model.PlaceDocument
			if err := snap.DataTo(&doc); err != nil {
				return errors.Wrapf(err, "decode place %s", place.ID)
			}
			existing = model.ToPlaceDomain(&doc)
		}

		merged = entity.MergeUpstream(existing, place)

		return errors.WithStack(tx.Set(ref, model.FromPlaceDomain(merged, time.Now().UTC())))
	})
	if err != nil {
		return nil, domainerrors.ErrTransactionFailed.WithCause(err)
	}

	return merged, nil
}

// SaveClaim replaces the claim overlay of a cached place. The ownership check
// runs inside the transaction so concurrent claims cannot both win.
func (repo *placeRepository) SaveClaim(ctx context.Context, id, operatorID string, claim *entity.Claim) error {
	ref := repo.places().Doc(id)

	err := repo.client.RunTransaction(ctx, func(ctx context.Context, tx *fs.Transaction) error {
		snap, err := tx.Get(ref)
		if isNotFound(err) {
			return domainerrors.ErrPlaceNotFound
		}
		if err != nil {
			return errors.WithStack(err)
		}

		var doc model.PlaceDocument
		if err := snap.DataTo(&doc); err != nil {
			return errors.Wrapf(err, "decode place %s", id)
		}
		if doc.Claim != nil && doc.Claim.ClaimedBy != operatorID {
			return domainerrors.ErrClaimConflict
		}
		doc.Claim = claim
		doc.UpdatedAt = time.Now().UTC()

		return errors.WithStack(tx.Set(ref, &doc))
	})
	if errors.Is(err, domainerrors.ErrPlaceNotFound) {
		return domainerrors.ErrPlaceNotFound
	}
	if errors.Is(err, domainerrors.ErrClaimConflict) {
		return domainerrors.ErrClaimConflict
	}
	if err != nil {
		return domainerrors.ErrTransactionFailed.WithCause(err)
	}

	return nil
}

// FindPlacesByTokenPrefix runs a range query over the spatialToken field.
func (repo *placeRepository) FindPlacesByTokenPrefix(ctx context.Context, prefix string, limit int) ([]*entity.Place, error) {
	start, end := geo.TokenRange(prefix)

	snaps, err := repo.places().
		Where("spatialToken", ">=", start).
		Where("spatialToken", "<", end).
		OrderBy("spatialToken", fs.Asc).
		Limit(limit).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to query places by token")
	}

	places := make([]*entity.Place, 0, len(snaps))
	for _, snap := range snaps {
		var doc model.PlaceDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrapf(err, "decode place %s", snap.Ref.ID)
		}
		places = append(places, model.ToPlaceDomain(&doc))
	}

	return places, nil
}
