package firestore

import (
	"context"

	"tablescout/internal/domain/entity"
	domainerrors "tablescout/internal/domain/errors"
	"tablescout/internal/domain/repository"
	"tablescout/internal/infra/persistence/model"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// quotaRepository implements the repository.QuotaRepository interface.
// With a non-nil tx, reads and writes join that transaction.
type quotaRepository struct {
	client     *fs.Client
	collection string
	tx         *fs.Transaction
}

// NewQuotaRepository is the constructor for quotaRepository.
func NewQuotaRepository(client *fs.Client, collections Collections) repository.QuotaRepository {
	return &quotaRepository{client: client, collection: collections.Quotas}
}

func (repo *quotaRepository) ref(userID string) *fs.DocumentRef {
	return repo.client.Collection(repo.collection).Doc(userID)
}

// FindQuota retrieves the quota of a user.
func (repo *quotaRepository) FindQuota(ctx context.Context, userID string) (*entity.Quota, error) {
	var (
		snap *fs.DocumentSnapshot
		err  error
	)
	if repo.tx != nil {
		snap, err = repo.tx.Get(repo.ref(userID))
	} else {
		snap, err = repo.ref(userID).Get(ctx)
	}
	if isNotFound(err) {
		return nil, repository.ErrQuotaNotFound
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to get quota")
	}

	var doc model.QuotaDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "decode quota %s", userID)
	}

	return model.ToQuotaDomain(&doc), nil
}

// SaveQuota stores the quota of a user.
func (repo *quotaRepository) SaveQuota(ctx context.Context, quota *entity.Quota) error {
	doc := model.FromQuotaDomain(quota)

	var err error
	if repo.tx != nil {
		err = repo.tx.Set(repo.ref(quota.UserID), doc)
	} else {
		_, err = repo.ref(quota.UserID).Set(ctx, doc)
	}
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save quota")
	}

	return nil
}
