package blob

import (
	"context"
	"testing"
)

func TestOpenDefaultsToFilesystem(t *testing.T) {
	t.Setenv("CARDTROVE_BLOB_DRIVER", "")
	t.Setenv("CARDTROVE_BLOB_FS_ROOT", t.TempDir())

	store, err := Open(context.Background())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if got := store.Driver(); got != DriverFilesystem {
		t.Fatalf("driver = %s, want fs", got)
	}
}

func TestOpenMemoryDriver(t *testing.T) {
	t.Setenv("CARDTROVE_BLOB_DRIVER", "memory")
	store, err := Open(context.Background())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if got := store.Driver(); got != DriverMemory {
		t.Fatalf("driver = %s, want memory", got)
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	t.Setenv("CARDTROVE_BLOB_DRIVER", "tape")
	if _, err := Open(context.Background()); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestOpenS3RequiresBucket(t *testing.T) {
	t.Setenv("CARDTROVE_BLOB_DRIVER", "s3")
	t.Setenv("CARDTROVE_BLOB_S3_BUCKET", "")
	if _, err := Open(context.Background()); err == nil {
		t.Fatal("expected error without bucket configuration")
	}
}
