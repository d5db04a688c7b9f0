// Package memory provides an in-memory snapshot backend used for tests
// and ephemeral environments.
package memory

import (
	"context"
	"fmt"
	"sync"

	"cardtrove/pkg/domain"
)

// Compile-time contract assertion.
var _ domain.Snapshotter = (*Store)(nil)

// Store keeps bucket snapshots in process memory.
type Store struct {
	mu      sync.RWMutex
	buckets map[string][]byte
}

// NewStore returns an empty in-memory snapshot store.
func NewStore() *Store {
	return &Store{buckets: make(map[string][]byte)}
}

// Driver returns the storage driver identifier.
func (s *Store) Driver() domain.StorageDriver { return domain.StorageMemory }

// Load returns a copy of the bucket's snapshot.
func (s *Store) Load(_ context.Context, bucket string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	payload, ok := s.buckets[bucket]
	if !ok {
		return nil, fmt.Errorf("%s: %w", bucket, domain.ErrSnapshotNotFound)
	}
	out := make([]byte, len(payload))
	copy(out, payload)
	return out, nil
}

// Save replaces the bucket's snapshot.
func (s *Store) Save(_ context.Context, bucket string, payload []byte) error {
	cp := make([]byte, len(payload))
	copy(cp, payload)
	s.mu.Lock()
	s.buckets[bucket] = cp
	s.mu.Unlock()
	return nil
}
