// Package file implements the canonical snapshot backend: one JSON file
// per bucket inside a private data directory, rewritten in full on every
// save.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cardtrove/pkg/domain"
)

// Compile-time contract assertion.
var _ domain.Snapshotter = (*Store)(nil)

// Store maps each bucket to <root>/<bucket>.json. Writes go through a
// temp file and rename so a failed save never truncates the previous
// snapshot.
type Store struct {
	root string
}

// NewStore returns a file snapshot store rooted at dir, creating it if
// needed. An empty dir defaults to ./data.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		dir = "./data"
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{root: dir}, nil
}

// Driver returns the storage driver identifier.
func (s *Store) Driver() domain.StorageDriver { return domain.StorageFile }

func (s *Store) pathFor(bucket string) (string, error) {
	if strings.TrimSpace(bucket) == "" {
		return "", fmt.Errorf("empty bucket")
	}
	if strings.ContainsAny(bucket, `/\`) || strings.Contains(bucket, "..") {
		return "", fmt.Errorf("invalid bucket %q", bucket)
	}
	return filepath.Join(s.root, bucket+".json"), nil
}

// Load returns the raw snapshot for bucket, or ErrSnapshotNotFound when no
// file exists yet.
func (s *Store) Load(_ context.Context, bucket string) ([]byte, error) {
	p, err := s.pathFor(bucket)
	if err != nil {
		return nil, err
	}
	payload, err := os.ReadFile(p)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: %w", bucket, domain.ErrSnapshotNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", bucket, err)
	}
	return payload, nil
}

// Save overwrites the bucket's snapshot atomically.
func (s *Store) Save(_ context.Context, bucket string, payload []byte) error {
	p, err := s.pathFor(bucket)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.root, ".tmp-"+bucket+"-*")
	if err != nil {
		return fmt.Errorf("stage %s: %w", bucket, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("stage %s: %w", bucket, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("stage %s: %w", bucket, err)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		return fmt.Errorf("replace %s: %w", bucket, err)
	}
	return nil
}
