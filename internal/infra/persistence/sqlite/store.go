// Package sqlite persists bucket snapshots in a single embedded sqlite
// table, one row per bucket.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"cardtrove/pkg/domain"
)

// Compile-time contract assertion.
var _ domain.Snapshotter = (*Store)(nil)

// Store upserts the full snapshot payload for a bucket on every save.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (creating if needed) the sqlite file at path and ensures
// the state table exists. An empty path defaults to ./cardtrove.db.
func NewStore(path string) (*Store, error) {
	if path == "" {
		path = "cardtrove.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create state table: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Driver returns the storage driver identifier.
func (s *Store) Driver() domain.StorageDriver { return domain.StorageSQLite }

// Load returns the snapshot payload for bucket.
func (s *Store) Load(ctx context.Context, bucket string) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM state WHERE bucket = ?`, bucket).Scan(&payload)
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
	if _, err := s.db.ExecContext(ctx, `INSERT INTO state (bucket, payload) VALUES (?, ?)
		ON CONFLICT(bucket) DO UPDATE SET payload = excluded.payload`, bucket, payload); err != nil {
		return fmt.Errorf("upsert %s: %w", bucket, err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }
