// Package blob is the attachment storage facade. It re-exports the core
// abstractions and is the only package allowed to construct the
// infra-backed implementations.
package blob

import (
	"context"
	"fmt"
	"os"

	"cardtrove/internal/blob/core"
	fsstore "cardtrove/internal/infra/blob/fs"
	memorystore "cardtrove/internal/infra/blob/memory"
	s3store "cardtrove/internal/infra/blob/s3"
)

type (
	// Driver identifies a blob backend driver.
	Driver = core.Driver
	// PutOptions configures a blob write.
	PutOptions = core.PutOptions
	// SignedURLOptions configures URL pre-signing.
	SignedURLOptions = core.SignedURLOptions
	// Info describes stored blob metadata.
	Info = core.Info
	// Store is the interface for blob storage backends.
	Store = core.Store
)

const (
	// DriverFilesystem is the local filesystem driver.
	DriverFilesystem = core.DriverFilesystem
	// DriverS3 is the S3-compatible driver.
	DriverS3 = core.DriverS3
	// DriverMemory is the in-memory test driver.
	DriverMemory = core.DriverMemory
)

// ErrUnsupported indicates an operation isn't supported by a driver.
var ErrUnsupported = core.ErrUnsupported

// NewFilesystem returns a filesystem attachment store rooted at path.
func NewFilesystem(root string) (Store, error) { return fsstore.New(root) }

// NewMemory returns an in-memory attachment store suitable for tests.
func NewMemory() Store { return memorystore.New() }

// NewS3Mock returns an S3 store backed by a fake transport, for tests.
func NewS3Mock() Store { return s3store.NewMockForTests() }

// Open selects an attachment store implementation using environment
// variables.
//
//	CARDTROVE_BLOB_DRIVER: fs|s3|memory (default fs)
//	CARDTROVE_BLOB_FS_ROOT: directory root when driver=fs (default ./attachments)
//	(S3 specific variables documented in the s3 package)
func Open(ctx context.Context) (Store, error) {
	driver := os.Getenv("CARDTROVE_BLOB_DRIVER")
	if driver == "" {
		driver = string(DriverFilesystem)
	}
	switch Driver(driver) {
	case DriverFilesystem:
		return NewFilesystem(os.Getenv("CARDTROVE_BLOB_FS_ROOT"))
	case DriverS3:
		return s3store.OpenFromEnv(ctx)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown blob driver %s", driver)
	}
}
