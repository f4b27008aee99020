package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"tablescout/internal/domain/constants"
	"tablescout/internal/domain/entity"
	domainerrors "tablescout/internal/domain/errors"
	"tablescout/internal/domain/repository"
	"tablescout/internal/geo"
	"tablescout/internal/infra/persistence/model"

	"github.com/pkg/errors"
)

// placeRepository implements the repository.PlaceRepository interface.
type placeRepository struct {
	db *sql.DB
}

// NewPlaceRepository is the constructor for placeRepository.
func NewPlaceRepository(db *sql.DB) repository.PlaceRepository {
	return &placeRepository{db: db}
}

// FindPlace retrieves one place.
func (repo *placeRepository) FindPlace(ctx context.Context, id string) (*entity.Place, error) {
	var doc model.PlaceDocument

	found, err := getDocument(ctx, repo.db, constants.CollectionPlaces, id, &doc)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domainerrors.ErrPlaceNotFound
	}

	return model.ToPlaceDomain(&doc), nil
}

// FindPlaces retrieves many places with a single query.
func (repo *placeRepository) FindPlaces(ctx context.Context, ids []string) (map[string]*entity.Place, error) {
	bodies, err := getDocuments(ctx, repo.db, constants.CollectionPlaces, ids)
	if err != nil {
		return nil, err
	}

	places := make(map[string]*entity.Place, len(bodies))
	for id, body := range bodies {
		var doc model.PlaceDocument
		if err := json.Unmarshal(body, &doc); err != nil {
			return nil, errors.Wrapf(err, "decode place %s", id)
		}
		places[id] = model.ToPlaceDomain(&doc)
	}

	return places, nil
}

// SavePlace merges the incoming record into the stored one inside a transaction.
func (repo *placeRepository) SavePlace(ctx context.Context, place *entity.Place) (*entity.Place, error) {
	var merged *entity.Place

	err := inTx(ctx, repo.db, func(tx *sql.Tx) error {
		var existing *entity.Place

		var doc model.PlaceDocument
		found, err := getDocument(ctx, tx, constants.CollectionPlaces, place.ID, &doc)
		if err != nil {
			return err
		}
		if found {
			existing = model.ToPlaceDomain(&doc)
		}

		merged = entity.MergeUpstream(existing, place)
		now := time.Now().UTC()

		return putDocument(ctx, tx, constants.CollectionPlaces, merged.ID, merged.SpatialToken,
			model.FromPlaceDomain(merged, now), now)
	})
	if err != nil {
		return nil, err
	}

	return merged, nil
}

// SaveClaim replaces the claim overlay of a cached place. The ownership check
// and the write share one transaction.
func (repo *placeRepository) SaveClaim(ctx context.Context, id, operatorID string, claim *entity.Claim) error {
	return inTx(ctx, repo.db, func(tx *sql.Tx) error {
		var doc model.PlaceDocument
		found, err := getDocument(ctx, tx, constants.CollectionPlaces, id, &doc)
		if err != nil {
			return err
		}
		if !found {
			return domainerrors.ErrPlaceNotFound
		}
		if doc.Claim != nil && doc.Claim.ClaimedBy != operatorID {
			return domainerrors.ErrClaimConflict
		}

		now := time.Now().UTC()
		doc.Claim = claim
		doc.UpdatedAt = now

		return putDocument(ctx, tx, constants.CollectionPlaces, id, doc.SpatialToken, &doc, now)
	})
}

// FindPlacesByTokenPrefix returns places whose spatial token starts with prefix.
func (repo *placeRepository) FindPlacesByTokenPrefix(ctx context.Context, prefix string, limit int) ([]*entity.Place, error) {
	start, end := geo.TokenRange(prefix)

	rows, err := repo.db.QueryContext(ctx, `
		SELECT body FROM documents
		WHERE collection = ? AND spatial_token >= ? AND spatial_token < ?
		ORDER BY spatial_token
		LIMIT ?
	`, constants.CollectionPlaces, start, end, limit)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to query places by token")
	}
	defer rows.Close()

	var places []*entity.Place
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, errors.WithStack(err)
		}

		var doc model.PlaceDocument
		if err := json.Unmarshal([]byte(body), &doc); err != nil {
			return nil, errors.Wrap(err, "decode place")
		}
		places = append(places, model.ToPlaceDomain(&doc))
	}

	return places, errors.WithStack(rows.Err())
}
