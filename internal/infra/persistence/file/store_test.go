package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"cardtrove/pkg/domain"
)

func TestLoadMissingBucket(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	_, err = store.Load(context.Background(), "clientProfiles")
	if !errors.Is(err, domain.ErrSnapshotNotFound) {
		t.Fatalf("expected ErrSnapshotNotFound, got %v", err)
	}
}

func TestSaveThenLoad(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()
	payload := []byte(`[{"id":"a"}]`)
	if err := store.Save(ctx, "orderEntries", payload); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load(ctx, "orderEntries")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != string(payload) {
		t.Fatalf("round trip = %q, want %q", got, payload)
	}
	if _, err := os.Stat(filepath.Join(dir, "orderEntries.json")); err != nil {
		t.Fatalf("expected one json file per bucket: %v", err)
	}
}

func TestSaveOverwritesWholeSnapshot(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()
	if err := store.Save(ctx, "materialStock", []byte(`[{"id":"a"},{"id":"b"}]`)); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := store.Save(ctx, "materialStock", []byte(`[]`)); err != nil {
		t.Fatalf("second save: %v", err)
	}
	got, err := store.Load(ctx, "materialStock")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != "[]" {
		t.Fatalf("snapshot not fully replaced: %q", got)
	}
}

func TestRejectsPathTraversalBuckets(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()
	for _, bucket := range []string{"", "  ", "../escape", `a\b`, "a/b"} {
		if err := store.Save(ctx, bucket, []byte("x")); err == nil {
			t.Fatalf("bucket %q accepted", bucket)
		}
		if _, err := store.Load(ctx, bucket); err == nil {
			t.Fatalf("bucket %q accepted on load", bucket)
		}
	}
}
