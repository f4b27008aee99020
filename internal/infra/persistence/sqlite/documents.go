package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	domainerrors "tablescout/internal/domain/errors"

	"github.com/pkg/errors"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// getDocument decodes one document into dst. It reports false when the
// document does not exist.
func getDocument(ctx context.Context, q querier, collection, id string, dst any) (bool, error) {
	var body string

	err := q.QueryRowContext(ctx,
		`SELECT body FROM documents WHERE collection = ? AND id = ?`,
		collection, id,
	).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to read "+collection+" document")
	}

	if err := json.Unmarshal([]byte(body), dst); err != nil {
		return false, errors.Wrapf(err, "decode %s document %s", collection, id)
	}

	return true, nil
}

// getDocuments returns the raw bodies of the requested documents in one query.
func getDocuments(ctx context.Context, q querier, collection string, ids []string) (map[string][]byte, error) {
	bodies := make(map[string][]byte, len(ids))
	if len(ids) == 0 {
		return bodies, nil
	}

	args := make([]any, 0, len(ids)+1)
	args = append(args, collection)
	for _, id := range ids {
		args = append(args, id)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	rows, err := q.QueryContext(ctx,
		`SELECT id, body FROM documents WHERE collection = ? AND id IN (`+placeholders+`)`,
		args...,
	)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to read "+collection+" documents")
	}
	defer rows.Close()

	for rows.Next() {
		var id, body string
		if err := rows.Scan(&id, &body); err != nil {
			return nil, errors.WithStack(err)
		}
		bodies[id] = []byte(body)
	}

	return bodies, errors.WithStack(rows.Err())
}

// putDocument upserts one document.
func putDocument(ctx context.Context, q querier, collection, id, spatialToken string, doc any, now time.Time) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrapf(err, "encode %s document %s", collection, id)
	}

	_, err = q.ExecContext(ctx, `
		INSERT INTO documents (collection, id, spatial_token, body, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(collection, id) DO UPDATE SET
			spatial_token = excluded.spatial_token,
			body = excluded.body,
			updated_at = excluded.updated_at
	`, collection, id, spatialToken, string(body), now)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to write "+collection+" document")
	}

	return nil
}

// inTx runs fn in a transaction on db.
func inTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return domainerrors.ErrTransactionFailed.WithCause(err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		return domainerrors.ErrTransactionFailed.WithCause(err)
	}

	return nil
}
