// Package postgres persists bucket snapshots in a PostgreSQL table,
// mirroring the sqlite backend's one-row-per-bucket layout.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver

	"cardtrove/pkg/domain"
)

// Compile-time contract assertion.
var _ domain.Snapshotter = (*Store)(nil)

const (
	defaultDriver = "pgx"
	defaultDSN    = "postgres://localhost/cardtrove?sslmode=disable"
)

var (
	openMu  sync.Mutex
	sqlOpen = sql.Open
)

// OverrideSQLOpen swaps the sqlOpen function for tests and returns a
// restore function.
func OverrideSQLOpen(fn func(driverName, dataSourceName string) (*sql.DB, error)) func() {
	openMu.Lock()
	defer openMu.Unlock()
	prev := sqlOpen
	sqlOpen = fn
	return func() {
		openMu.Lock()
		defer openMu.Unlock()
		sqlOpen = prev
	}
}

// Store upserts the full snapshot payload for a bucket on every save.
type Store struct {
	db *sql.DB
}

// NewStore opens a Postgres-backed snapshot store using the provided DSN
// (falling back to defaultDSN) and ensures the state table exists.
func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		dsn = defaultDSN
	}
	db, err := sqlOpen(defaultDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload BYTEA NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create state table: %w", err)
	}
	return &Store{db: db}, nil
}

// Driver returns the storage driver identifier.
func (s *Store) Driver() domain.StorageDriver { return domain.StoragePostgres }

// Load returns the snapshot payload for bucket.
func (s *Store) Load(ctx context.Context, bucket string) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM state WHERE bucket = $1`, bucket).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", bucket, domain.ErrSnapshotNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", bucket, err)
	}
	return payload, nil
}

// Save upserts the snapshot payload for bucket.
func (s *Store) Save(ctx context.Context, bucket string, payload []byte) error {
	if _, err := s.db.ExecContext(ctx, `INSERT INTO state (bucket, payload) VALUES ($1, $2)
		ON CONFLICT (bucket) DO UPDATE SET payload = excluded.payload`, bucket, payload); err != nil {
		return fmt.Errorf("upsert %s: %w", bucket, err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }
