package core

import (
	"context"
	"fmt"
	"os"

	"cardtrove/internal/infra/persistence/file"
	"cardtrove/internal/infra/persistence/memory"
	"cardtrove/internal/infra/persistence/postgres"
	"cardtrove/internal/infra/persistence/sqlite"
	"cardtrove/pkg/domain"
)

// OpenSnapshotter selects a snapshot backend using environment variables.
// Defaults to the per-bucket JSON file layout when unset.
//
//	CARDTROVE_STORAGE_DRIVER: file|memory|sqlite|postgres (default file)
//	CARDTROVE_DATA_DIR: directory for driver=file (default ./data)
//	CARDTROVE_SQLITE_PATH: path to sqlite file (default ./cardtrove.db)
//	CARDTROVE_POSTGRES_DSN: postgres DSN when driver=postgres
func OpenSnapshotter(ctx context.Context) (domain.Snapshotter, error) {
	driver := os.Getenv("CARDTROVE_STORAGE_DRIVER")
	if driver == "" {
		driver = string(domain.StorageFile)
	}
	switch domain.StorageDriver(driver) {
	case domain.StorageFile:
		return file.NewStore(os.Getenv("CARDTROVE_DATA_DIR"))
	case domain.StorageMemory:
		return memory.NewStore(), nil
	case domain.StorageSQLite:
		return sqlite.NewStore(os.Getenv("CARDTROVE_SQLITE_PATH"))
	case domain.StoragePostgres:
		return postgres.NewStore(ctx, os.Getenv("CARDTROVE_POSTGRES_DSN"))
	default:
		return nil, fmt.Errorf("unknown storage driver %s", driver)
	}
}
