package repository

import (
	"database/sql"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "modernc.org/sqlite"

	"github.com/reefwatch/icp-tracker/gen/ent"
)

// InMemoryDSN is the DSN for a throwaway shared-cache SQLite database, used
// by the batch CLI and tests that do not want a real Postgres.
const InMemoryDSN = "file:icptracker?mode=memory&cache=shared&_pragma=foreign_keys(1)"

// OpenSQLite opens a SQLite-backed Ent client. The cgo-free driver keeps the
// batch CLI a single static binary.
func OpenSQLite(dsn string, logger *slog.Logger) (*ent.Client, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		logger.Error("failed to open sqlite database", "dsn", dsn, "error", err)
		return nil, err
	}
	// shared-cache in-memory databases vanish when the last conn closes
	db.SetMaxIdleConns(1)

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	logger.Info("opened sqlite database", "dsn", dsn)
	return client, nil
}
