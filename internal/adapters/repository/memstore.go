package repository

import (
	"context"
	"sync"

	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/internal/domain/model"
	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/pkg/metrics"
)

// MemStore is the RWMutex-guarded in-memory Store. Writers serialize against
// each other and against in-flight readers; readers run concurrently and only
// hold the lock long enough to snapshot the dataset pointer, since datasets
// are immutable after the swap.
type MemStore struct {
	mu        sync.RWMutex
	raw       model.RawDataset
	processed model.Dataset
	loaded    bool
	ready     bool
}

// NewMemStore creates an empty store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// SetRaw replaces the raw dataset. Any previously processed dataset becomes
// stale and is dropped: queries require a fresh preprocessing pass.
func (s *MemStore) SetRaw(_ context.Context, ds model.RawDataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raw = ds
	s.loaded = true
	s.processed = model.Dataset{}
	s.ready = false
	metrics.UpdateDatasetRows(len(ds.Rows))
	return nil
}

// Raw returns the current raw dataset.
func (s *MemStore) Raw(_ context.Context) (model.RawDataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return model.RawDataset{}, ErrNotLoaded
	}
	return s.raw, nil
}

// SetProcessed replaces the processed dataset.
func (s *MemStore) SetProcessed(_ context.Context, ds model.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.processed = ds
	s.ready = true
	metrics.UpdateDatasetRows(ds.Len())
	return nil
}

// Processed returns the current processed dataset.
func (s *MemStore) Processed(_ context.Context) (model.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return model.Dataset{}, ErrNotLoaded
	}
	if !s.ready {
		return model.Dataset{}, ErrNotProcessed
	}
	return s.processed, nil
}

// IsLoaded reports whether any dataset has been loaded.
func (s *MemStore) IsLoaded(_ context.Context) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// IsProcessed reports whether a processed dataset is available.
func (s *MemStore) IsProcessed(_ context.Context) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}
