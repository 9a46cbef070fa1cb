// Package repository holds the process-wide dataset state. One logical
// dataset is shared by every operation; the store is the single guarded
// handle through which it is replaced and read.
package repository

import (
	"context"

	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/internal/domain/model"
)

// Store provides exclusive-write / shared-read access to the current dataset.
// Set operations replace state atomically; a reader never observes a dataset
// mid-swap. Returned datasets are immutable views and must not be mutated.
type Store interface {
	// SetRaw replaces the raw dataset and invalidates any processed one.
	SetRaw(ctx context.Context, ds model.RawDataset) error

	// Raw returns the current raw dataset.
	// Returns ErrNotLoaded when nothing has been loaded.
	Raw(ctx context.Context) (model.RawDataset, error)

	// SetProcessed replaces the processed dataset.
	SetProcessed(ctx context.Context, ds model.Dataset) error

	// Processed returns the current processed dataset. Returns ErrNotLoaded
	// when nothing has been loaded, ErrNotProcessed when only raw data is
	// present.
	Processed(ctx context.Context) (model.Dataset, error)

	// IsLoaded is the non-failing loaded check.
	IsLoaded(ctx context.Context) bool

	// IsProcessed is the non-failing processed check.
	IsProcessed(ctx context.Context) bool
}
