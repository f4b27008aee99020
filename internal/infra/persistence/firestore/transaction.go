package firestore

import (
	"context"

	"tablescout/internal/domain/repository"

	fs "cloud.google.com/go/firestore"
)

// txManager implements the domain's TransactionManager interface with
// Firestore transactions. Firestore retries fn on contention.
type txManager struct {
	client      *fs.Client
	collections Collections
}

// txRepositoryFactory creates repositories bound to one *fs.Transaction.
type txRepositoryFactory struct {
	client      *fs.Client
	collections Collections
	tx          *fs.Transaction
}

// NewQuotaRepository creates a new quota repository instance bound to the transaction.
func (f *txRepositoryFactory) NewQuotaRepository() repository.QuotaRepository {
	return &quotaRepository{client: f.client, collection: f.collections.Quotas, tx: f.tx}
}

// NewTransactionManager is the constructor for txManager.
func NewTransactionManager(client *fs.Client, collections Collections) repository.TransactionManager {
	return &txManager{client: client, collections: collections}
}

// Execute runs fn within a Firestore transaction.
func (tm *txManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return tm.client.RunTransaction(ctx, func(ctx context.Context, tx *fs.Transaction) error {
		return fn(&txRepositoryFactory{client: tm.client, collections: tm.collections, tx: tx})
	})
}
