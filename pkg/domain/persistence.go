package domain

import (
	"context"
	"errors"
)

// StorageDriver identifies a concrete snapshot storage implementation.
type StorageDriver string

const (
	// StorageFile keeps one JSON file per bucket in a local data directory.
	StorageFile StorageDriver = "file"
	// StorageMemory keeps snapshots in process memory (tests / ephemeral).
	StorageMemory StorageDriver = "memory"
	// StorageSQLite keeps snapshots in an embedded sqlite file.
	StorageSQLite StorageDriver = "sqlite"
	// StoragePostgres keeps snapshots in a PostgreSQL table.
	StoragePostgres StorageDriver = "postgres"
)

// ErrSnapshotNotFound reports that a bucket has no persisted snapshot yet.
// Stores treat it as an empty collection rather than a failure.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// Snapshotter is the minimal durable-backend abstraction used by entity
// stores. A snapshot is the full JSON-encoded collection of one bucket;
// every Save overwrites the previous content in full.
type Snapshotter interface {
	Load(ctx context.Context, bucket string) ([]byte, error)
	Save(ctx context.Context, bucket string, payload []byte) error
	Driver() StorageDriver
}
