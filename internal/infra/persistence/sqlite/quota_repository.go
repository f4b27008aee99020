package sqlite

import (
	"context"
	"database/sql"

	"tablescout/internal/domain/constants"
	"tablescout/internal/domain/entity"
	"tablescout/internal/domain/repository"
	"tablescout/internal/infra/persistence/model"
)

// quotaRepository implements the repository.QuotaRepository interface.
type quotaRepository struct {
	q querier
}

// NewQuotaRepository is the constructor for quotaRepository. Reads through it
// are not transactional; mutations go through TransactionManager.
func NewQuotaRepository(db *sql.DB) repository.QuotaRepository {
	return newQuotaRepository(db)
}

func newQuotaRepository(q querier) *quotaRepository {
	return &quotaRepository{q: q}
}

// FindQuota retrieves the quota of a user.
func (repo *quotaRepository) FindQuota(ctx context.Context, userID string) (*entity.Quota, error) {
	var doc model.QuotaDocument

	found, err := getDocument(ctx, repo.q, constants.CollectionQuotas, userID, &doc)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, repository.ErrQuotaNotFound
	}

	return model.ToQuotaDomain(&doc), nil
}

// SaveQuota stores the quota of a user.
func (repo *quotaRepository) SaveQuota(ctx context.Context, quota *entity.Quota) error {
	return putDocument(ctx, repo.q, constants.CollectionQuotas, quota.UserID, "",
		model.FromQuotaDomain(quota), quota.UpdatedAt)
}
