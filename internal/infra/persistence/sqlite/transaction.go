package sqlite

import (
	"context"
	"database/sql"

	"tablescout/internal/domain/repository"
)

// txManager implements the domain's TransactionManager interface.
type txManager struct {
	db *sql.DB
}

// txRepositoryFactory creates repositories bound to one *sql.Tx.
type txRepositoryFactory struct {
	tx *sql.Tx
}

// NewQuotaRepository creates a new quota repository instance bound to the transaction.
func (f *txRepositoryFactory) NewQuotaRepository() repository.QuotaRepository {
	return newQuotaRepository(f.tx)
}

// NewTransactionManager is the constructor for txManager.
func NewTransactionManager(db *sql.DB) repository.TransactionManager {
	return &txManager{db: db}
}

// Execute runs fn within a single transaction. The single-connection pool
// serializes concurrent callers.
func (tm *txManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return inTx(ctx, tm.db, func(tx *sql.Tx) error {
		return fn(&txRepositoryFactory{tx: tx})
	})
}
