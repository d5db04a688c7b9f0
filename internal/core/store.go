// Package core implements the shared persistent-collection pattern behind
// every cardtrove entity kind: an ordered in-memory collection, mutated
// through add/update/delete, re-serialized in full to a snapshot bucket on
// every committed change, and reseeded with sample records when empty.
package core

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"sync"

	"cardtrove/internal/metrics"
	"cardtrove/pkg/domain"
)

// Config carries the collaborators shared by every store instance.
type Config struct {
	Snapshots domain.Snapshotter
	// Logger receives human-readable load/save failure notes. Defaults to
	// a stderr logger when nil.
	Logger  *log.Logger
	Metrics *metrics.Metrics
}

// Store owns the authoritative in-memory collection for one entity kind.
// Insertion order is preserved; updates replace in place; every committed
// mutation rewrites the whole snapshot bucket. Persistence failures are
// logged and counted but never surfaced to callers, so in-memory and
// on-disk state may diverge until the next successful save.
type Store[T domain.Record] struct {
	entity domain.EntityType

	mu        sync.RWMutex
	records   []T
	snap      domain.Snapshotter
	logger    *log.Logger
	metrics   *metrics.Metrics
	observers []func(domain.Change)
}

// OpenStore hydrates a store from its snapshot bucket. A missing, unreadable,
// or undecodable snapshot resets the collection to empty; an empty collection
// is then populated from seed (when non-nil) and the seed persisted.
func OpenStore[T domain.Record](ctx context.Context, entity domain.EntityType, seed func() []T, cfg Config) *Store[T] {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	s := &Store[T]{
		entity:  entity,
		snap:    cfg.Snapshots,
		logger:  logger,
		metrics: cfg.Metrics,
	}
	s.load(ctx)
	if len(s.records) == 0 && seed != nil {
		s.records = seed()
		s.persist(ctx)
	}
	return s
}

// Entity returns the entity kind this store owns.
func (s *Store[T]) Entity() domain.EntityType { return s.entity }

// Subscribe registers an observer invoked synchronously after every
// committed mutation. Observers must not mutate the store re-entrantly.
func (s *Store[T]) Subscribe(fn func(domain.Change)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// List returns a copy of the current collection in insertion order.
func (s *Store[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.records))
	copy(out, s.records)
	return out
}

// Len reports the current collection size.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Get returns the record with the given identity.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.records {
		if rec.RecordID() == id {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// Add appends the record to the end of the collection and rewrites the
// snapshot. Identity uniqueness is the caller's concern.
func (s *Store[T]) Add(ctx context.Context, rec T) {
	s.mu.Lock()
	s.records = append(s.records, rec)
	s.persist(ctx)
	s.mu.Unlock()
	s.commit(domain.Change{Entity: s.entity, Action: domain.ActionCreate, ID: rec.RecordID()})
}

// Update replaces the record with matching identity at its current
// position. An unknown identity is a silent no-op: nothing is rewritten
// and no observer fires.
func (s *Store[T]) Update(ctx context.Context, rec T) {
	s.mu.Lock()
	idx := -1
	for i, existing := range s.records {
		if existing.RecordID() == rec.RecordID() {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.records[idx] = rec
	s.persist(ctx)
	s.mu.Unlock()
	s.commit(domain.Change{Entity: s.entity, Action: domain.ActionUpdate, ID: rec.RecordID()})
}

// Delete removes the records with the given identities, ignoring unknown
// ones. It returns the number of records removed; zero removals leave the
// snapshot untouched.
func (s *Store[T]) Delete(ctx context.Context, ids ...string) int {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	s.mu.Lock()
	kept := s.records[:0]
	var removed []string
	for _, rec := range s.records {
		if _, ok := drop[rec.RecordID()]; ok {
			removed = append(removed, rec.RecordID())
			continue
		}
		kept = append(kept, rec)
	}
	if len(removed) == 0 {
		s.mu.Unlock()
		return 0
	}
	s.records = kept
	s.persist(ctx)
	s.mu.Unlock()
	for _, id := range removed {
		s.commit(domain.Change{Entity: s.entity, Action: domain.ActionDelete, ID: id})
	}
	return len(removed)
}

// DeleteAt removes the records at the given positions (the swipe-to-delete
// index-set form). Out-of-range offsets are ignored.
func (s *Store[T]) DeleteAt(ctx context.Context, offsets ...int) int {
	s.mu.Lock()
	drop := make(map[int]struct{}, len(offsets))
	for _, off := range offsets {
		if off >= 0 && off < len(s.records) {
			drop[off] = struct{}{}
		}
	}
	if len(drop) == 0 {
		s.mu.Unlock()
		return 0
	}
	kept := make([]T, 0, len(s.records)-len(drop))
	var removed []string
	for i, rec := range s.records {
		if _, ok := drop[i]; ok {
			removed = append(removed, rec.RecordID())
			continue
		}
		kept = append(kept, rec)
	}
	s.records = kept
	s.persist(ctx)
	s.mu.Unlock()
	for _, id := range removed {
		s.commit(domain.Change{Entity: s.entity, Action: domain.ActionDelete, ID: id})
	}
	return len(removed)
}

// load hydrates the collection, failing soft to empty on any error.
func (s *Store[T]) load(ctx context.Context) {
	payload, err := s.snap.Load(ctx, string(s.entity))
	if err != nil {
		if !errors.Is(err, domain.ErrSnapshotNotFound) {
			s.logger.Printf("failed to load %s: %v", s.entity, err)
			s.metrics.LoadFailed(s.entity)
		}
		s.records = nil
		return
	}
	var decoded []T
	if err := json.Unmarshal(payload, &decoded); err != nil {
		s.logger.Printf("failed to load %s: %v", s.entity, err)
		s.metrics.LoadFailed(s.entity)
		s.records = nil
		return
	}
	s.records = decoded
}

// persist rewrites the full collection snapshot. Failures are swallowed:
// logged, counted, and invisible to the mutating caller.
func (s *Store[T]) persist(ctx context.Context) {
	payload, err := json.Marshal(s.records)
	if err == nil {
		err = s.snap.Save(ctx, string(s.entity), payload)
	}
	if err != nil {
		s.logger.Printf("failed to save %s: %v", s.entity, err)
		s.metrics.SaveFailed(s.entity)
	}
}

func (s *Store[T]) commit(change domain.Change) {
	s.metrics.MutationCommitted(change.Entity, change.Action)
	s.mu.RLock()
	observers := make([]func(domain.Change), len(s.observers))
	copy(observers, s.observers)
	s.mu.RUnlock()
	for _, fn := range observers {
		fn(change)
	}
}
