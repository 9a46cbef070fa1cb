// Package service provides the core business service that implements the
// dependencies required by the HTTP API: loading, preprocessing, and the
// three insight queries over the shared dataset store.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/internal/adapters/csvfile"
	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/internal/adapters/repository"
	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/internal/domain/clean"
	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/internal/domain/insight"
	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/pkg/logger"
	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/pkg/metrics"
)

// Service implements the API dependencies for the retail insights system.
type Service struct {
	// writeMu serializes the mutating operations (load, preprocess) against
	// each other. Readers stay lock-free beyond the store's own RWMutex
	// because datasets are immutable once swapped in.
	writeMu sync.Mutex

	store   repository.Store
	loader  *csvfile.Loader
	cleaner *clean.Cleaner
	engine  *insight.Engine

	// Configuration collected before Start.
	delimiter              rune
	cleanWorkers           int
	dateFormats            []string
	statusMapping          map[string]string
	excludeStatuses        []string
	revenueExcludeStatuses []string
	maxTopN                int

	started bool
	mu      sync.Mutex

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDelimiter sets the field delimiter for loaded files.
func WithDelimiter(c rune) Option {
	return func(s *Service) {
		if c != 0 {
			s.delimiter = c
		}
	}
}

// WithCleanWorkers sets the number of concurrent row-cleaning workers.
func WithCleanWorkers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.cleanWorkers = n
		}
	}
}

// WithDateFormats sets the accepted order_date layouts.
func WithDateFormats(formats []string) Option {
	return func(s *Service) {
		if len(formats) > 0 {
			s.dateFormats = formats
		}
	}
}

// WithStatusMapping sets the status canonicalization map.
func WithStatusMapping(mapping map[string]string) Option {
	return func(s *Service) {
		s.statusMapping = mapping
	}
}

// WithExcludeStatuses sets statuses removed during preprocessing.
func WithExcludeStatuses(statuses []string) Option {
	return func(s *Service) {
		s.excludeStatuses = statuses
	}
}

// WithRevenueExcludeStatuses sets statuses excluded from revenue sums.
func WithRevenueExcludeStatuses(statuses []string) Option {
	return func(s *Service) {
		s.revenueExcludeStatuses = statuses
	}
}

// WithMaxTopN caps top-N queries.
func WithMaxTopN(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxTopN = n
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		delimiter: ',',
		maxTopN:   insight.MaxTopN,
		logger:    nil, // resolved at Start
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.store = repository.NewMemStore()
	s.loader = csvfile.New(csvfile.WithComma(s.delimiter))

	cleanOpts := []clean.Option{}
	if s.cleanWorkers > 0 {
		cleanOpts = append(cleanOpts, clean.WithWorkers(s.cleanWorkers))
	}
	if len(s.dateFormats) > 0 {
		cleanOpts = append(cleanOpts, clean.WithDateFormats(s.dateFormats))
	}
	if s.statusMapping != nil {
		cleanOpts = append(cleanOpts, clean.WithStatusMapping(s.statusMapping))
	}
	if s.excludeStatuses != nil {
		cleanOpts = append(cleanOpts, clean.WithExcludeStatuses(s.excludeStatuses))
	}
	s.cleaner = clean.New(cleanOpts...)

	engineOpts := []insight.Option{insight.WithMaxTopN(s.maxTopN)}
	if s.revenueExcludeStatuses != nil {
		engineOpts = append(engineOpts, insight.WithRevenueExcludeStatuses(s.revenueExcludeStatuses))
	}
	s.engine = insight.New(engineOpts...)

	s.started = true
	s.logger.Info(ctx, "retail insights service started",
		logger.Int("cleanWorkers", s.cleanWorkers),
		logger.Int("maxTopN", s.maxTopN),
	)
	return nil
}

// Stop shuts the service down. The dataset lives only in memory, so there is
// nothing to flush; the method exists for lifecycle symmetry.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "retail insights service stopped")
}

// LoadData reads the file at path into the store, replacing any previous
// dataset. On failure the store keeps its previous contents.
func (s *Service) LoadData(ctx context.Context, path string) (int, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	raw, err := s.loader.Load(ctx, path)
	if err != nil {
		metrics.RecordDatasetLoadError()
		s.logger.Warn(ctx, "dataset load failed", logger.String("path", path), logger.Error(err))
		return 0, err
	}
	if err := s.store.SetRaw(ctx, raw); err != nil {
		metrics.RecordDatasetLoadError()
		return 0, fmt.Errorf("store raw dataset: %w", err)
	}

	metrics.RecordDatasetLoad()
	s.logger.Info(ctx, "dataset loaded",
		logger.String("path", path),
		logger.Int("rows", len(raw.Rows)),
	)
	return len(raw.Rows), nil
}

// ProcessData runs the preprocessing pass over the loaded raw dataset and
// swaps the cleaned result into the store. Re-running it re-cleans from the
// raw dataset, so repeated calls yield identical results.
func (s *Service) ProcessData(ctx context.Context) (clean.Summary, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	raw, err := s.store.Raw(ctx)
	if err != nil {
		metrics.RecordPreprocessError()
		return clean.Summary{}, err
	}

	ds, sum, err := s.cleaner.Clean(ctx, raw)
	if err != nil {
		metrics.RecordPreprocessError()
		return clean.Summary{}, err
	}
	if err := s.store.SetProcessed(ctx, ds); err != nil {
		metrics.RecordPreprocessError()
		return clean.Summary{}, fmt.Errorf("store processed dataset: %w", err)
	}

	metrics.RecordPreprocess()
	s.logger.Info(ctx, "dataset preprocessed",
		logger.Int("retained", sum.Retained),
		logger.Int("dropped", sum.Dropped),
		logger.Int("duplicates", sum.Duplicates),
	)
	return sum, nil
}

// DailyRevenue returns revenue grouped by day under the given filters.
func (s *Service) DailyRevenue(ctx context.Context, f insight.DailyRevenueFilters) ([]insight.DailyRevenueRow, error) {
	const op = "daily_revenue"
	ds, err := s.store.Processed(ctx)
	if err != nil {
		metrics.RecordQueryError(op)
		return nil, err
	}
	return query(ctx, op, func() ([]insight.DailyRevenueRow, error) {
		return s.engine.DailyRevenue(ctx, ds, f)
	})
}

// TopSKUs returns the highest-revenue SKUs for a month.
func (s *Service) TopSKUs(ctx context.Context, month string, topN int) ([]insight.TopSKURow, error) {
	const op = "top_skus"
	ds, err := s.store.Processed(ctx)
	if err != nil {
		metrics.RecordQueryError(op)
		return nil, err
	}
	return query(ctx, op, func() ([]insight.TopSKURow, error) {
		return s.engine.TopSKUs(ctx, ds, month, topN)
	})
}

// ASPOrderCount returns average selling price and order counts grouped by
// the requested dimension.
func (s *Service) ASPOrderCount(ctx context.Context, filterBy string) ([]insight.ASPRow, error) {
	const op = "asp_order_count"
	ds, err := s.store.Processed(ctx)
	if err != nil {
		metrics.RecordQueryError(op)
		return nil, err
	}
	return query(ctx, op, func() ([]insight.ASPRow, error) {
		return s.engine.ASPOrderCount(ctx, ds, filterBy)
	})
}

// query wraps an engine call with per-operation metrics.
func query[T any](ctx context.Context, op string, fn func() ([]T, error)) ([]T, error) {
	start := time.Now()
	rows, err := fn()
	metrics.RecordQueryLatency(op, float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.RecordQueryError(op)
		return nil, err
	}
	metrics.RecordQuery(op)
	return rows, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.Lock()
	started := s.started
	s.mu.Unlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":   started,
		"loaded":    false,
		"processed": false,
	}
	if s.store == nil {
		return stats
	}

	stats["loaded"] = s.store.IsLoaded(ctx)
	stats["processed"] = s.store.IsProcessed(ctx)
	if ds, err := s.store.Processed(ctx); err == nil {
		stats["rows"] = ds.Len()
	}
	return stats
}
