package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"cardtrove/pkg/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestLoadMissingBucket(t *testing.T) {
	store := openTestStore(t)
	_, err := store.Load(context.Background(), "materialStock")
	if !errors.Is(err, domain.ErrSnapshotNotFound) {
		t.Fatalf("expected ErrSnapshotNotFound, got %v", err)
	}
}

func TestUpsertRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, "orderEntries", []byte(`[{"id":"a"}]`)); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := store.Save(ctx, "orderEntries", []byte(`[{"id":"a"},{"id":"b"}]`)); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := store.Load(ctx, "orderEntries")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != `[{"id":"a"},{"id":"b"}]` {
		t.Fatalf("round trip = %q", got)
	}
}

func TestBucketsAreIndependent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, "clientProfiles", []byte(`["clients"]`)); err != nil {
		t.Fatalf("save clients: %v", err)
	}
	if err := store.Save(ctx, "designRequests", []byte(`["designs"]`)); err != nil {
		t.Fatalf("save designs: %v", err)
	}
	got, err := store.Load(ctx, "clientProfiles")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != `["clients"]` {
		t.Fatalf("bucket cross-talk: %q", got)
	}
}

func TestReopenKeepsState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	ctx := context.Background()

	first, err := NewStore(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := first.Save(ctx, "materialStock", []byte(`[1,2]`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	second, err := NewStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer second.Close()
	got, err := second.Load(ctx, "materialStock")
	if err != nil {
		t.Fatalf("load after reopen: %v", err)
	}
	if string(got) != `[1,2]` {
		t.Fatalf("state lost across reopen: %q", got)
	}
}
