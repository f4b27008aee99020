// Package sqlite implements the document store on a single SQLite file. It
// backs local development and the integration tests.
package sqlite

import (
	"context"
	"database/sql"
	"log/slog"

	"tablescout/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	collection    TEXT NOT NULL,
	id            TEXT NOT NULL,
	spatial_token TEXT NOT NULL DEFAULT '',
	body          TEXT NOT NULL,
	updated_at    DATETIME NOT NULL,
	PRIMARY KEY (collection, id)
);

CREATE INDEX IF NOT EXISTS idx_documents_token ON documents(collection, spatial_token);
`

// Open opens the database at path and creates the schema. The pool is
// limited to one connection, so transactions are serialized and an
// in-memory database is shared by every caller.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()

		return nil, errors.Wrap(err, "ping database")
	}

	if path != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()

			return nil, errors.Wrap(err, "enable WAL mode")
		}
	}

	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		db.Close()

		return nil, errors.Wrap(err, "set busy timeout")
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()

		return nil, errors.Wrap(err, "create tables")
	}

	return db, nil
}

// DBParams holds dependencies for the SQLite database, injected by Fx
type DBParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewDB opens the configured database and closes it on shutdown.
func NewDB(params DBParams) (*sql.DB, error) {
	path := params.Config.Store.SQLite.Path

	db, err := Open(path)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("SQLite store opened", slog.String("path", path))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing SQLite store")

			return errors.WithStack(db.Close())
		},
	})

	return db, nil
}
