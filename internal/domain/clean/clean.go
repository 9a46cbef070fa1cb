// Package clean implements the preprocessing pass that turns a raw loaded
// table into a typed, normalized dataset safe for aggregation. The
// drop-unparsable-row policy lives here and nowhere else.
package clean

import (
	"context"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/internal/domain/dedupe"
	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/internal/domain/model"
	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/internal/domain/money"
	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/pkg/metrics"
)

// Default date layouts accepted for order_date. The original exports used
// mm-dd-yy; ISO layouts are accepted alongside it.
var defaultDateFormats = []string{
	"2006-01-02",
	"01-02-06",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
}

// Summary reports what the cleaning pass did. Useful for observability; not
// required for correctness.
type Summary struct {
	Retained   int `json:"rows_retained"`
	Dropped    int `json:"rows_dropped"`
	Duplicates int `json:"duplicates"`
}

// Cleaner normalizes raw datasets.
type Cleaner struct {
	dateFormats     []string
	statusMapping   map[string]string
	excludeStatuses map[string]struct{}
	workers         int
}

// Option applies a configuration option to the Cleaner.
type Option func(*Cleaner)

// WithDateFormats sets the accepted order_date layouts.
func WithDateFormats(formats []string) Option {
	return func(c *Cleaner) {
		if len(formats) > 0 {
			c.dateFormats = formats
		}
	}
}

// WithStatusMapping sets the status canonicalization map, e.g.
// "shipped - delivered to buyer" -> "delivered".
func WithStatusMapping(mapping map[string]string) Option {
	return func(c *Cleaner) {
		m := make(map[string]string, len(mapping))
		for k, v := range mapping {
			m[model.Normalize(k)] = model.Normalize(v)
		}
		c.statusMapping = m
	}
}

// WithExcludeStatuses sets the statuses whose rows are removed entirely
// (after mapping), e.g. cancelled orders.
func WithExcludeStatuses(statuses []string) Option {
	return func(c *Cleaner) {
		m := make(map[string]struct{}, len(statuses))
		for _, s := range statuses {
			m[model.Normalize(s)] = struct{}{}
		}
		c.excludeStatuses = m
	}
}

// WithWorkers sets the number of concurrent cleaning workers.
func WithWorkers(n int) Option {
	return func(c *Cleaner) {
		if n > 0 {
			c.workers = n
		}
	}
}

// New constructs a Cleaner with defaults applied.
func New(opts ...Option) *Cleaner {
	c := &Cleaner{
		dateFormats:     defaultDateFormats,
		statusMapping:   map[string]string{},
		excludeStatuses: map[string]struct{}{"cancelled": {}},
		workers:         runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// rowOutcome is the per-row result of a cleaning worker.
type rowOutcome struct {
	tx        model.Transaction
	keep      bool
	duplicate bool
}

// Clean runs the full preprocessing pipeline over raw and returns the typed
// dataset plus a summary. Row order is preserved. Cleaning the output of a
// previous run retains every row unchanged: every step is a no-op on already
// normalized data.
func (c *Cleaner) Clean(ctx context.Context, raw model.RawDataset) (model.Dataset, Summary, error) {
	n := len(raw.Rows)
	outcomes := make([]rowOutcome, n)
	deduper := dedupe.NewInMemoryDeduper()

	workers := c.workers
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				if ctx.Err() != nil {
					return
				}
				if deduper.SeenAndRecord(ctx, dedupe.Fingerprint(raw.Rows[i])) {
					outcomes[i] = rowOutcome{duplicate: true}
					continue
				}
				tx, ok := c.cleanRow(raw.Rows[i])
				outcomes[i] = rowOutcome{tx: tx, keep: ok}
			}
		}(lo, hi)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return model.Dataset{}, Summary{}, err
	}

	var sum Summary
	txs := make([]model.Transaction, 0, n)
	for _, out := range outcomes {
		switch {
		case out.duplicate:
			sum.Duplicates++
		case out.keep:
			txs = append(txs, out.tx)
		default:
			sum.Dropped++
		}
	}
	sum.Retained = len(txs)

	metrics.UpdateRowsRetained(sum.Retained)
	metrics.UpdateRowsDropped(sum.Dropped + sum.Duplicates)

	return model.Dataset{Transactions: txs}, sum, nil
}

// cleanRow applies the transformation contracts to a single row. The second
// return value is false when the row must be dropped.
func (c *Cleaner) cleanRow(row model.Row) (model.Transaction, bool) {
	var tx model.Transaction

	// Required columns must hold non-empty values.
	for _, col := range model.RequiredColumns {
		if model.Normalize(row[col]) == "" {
			return tx, false
		}
	}

	date, ok := c.parseDate(row[model.ColOrderDate])
	if !ok {
		return tx, false
	}

	revenue, err := money.Parse(row[model.ColRevenue])
	if err != nil || revenue.IsNegative() {
		return tx, false
	}

	status := model.Normalize(row[model.ColStatus])
	if mapped, ok := c.statusMapping[status]; ok {
		status = mapped
	}
	if _, excluded := c.excludeStatuses[status]; excluded {
		return tx, false
	}

	tx = model.Transaction{
		OrderID:    model.Normalize(row[model.ColOrderID]),
		Date:       date,
		Month:      date.Month(),
		Status:     status,
		SKU:        model.Normalize(row[model.ColSKU]),
		Category:   model.Normalize(row[model.ColCategory]),
		Quantity:   parseQuantity(row[model.ColQuantity]),
		Revenue:    revenue,
		ShipCity:   model.Normalize(row[model.ColShipCity]),
		ShipState:  model.Normalize(row[model.ColShipState]),
		ShipPostal: model.Normalize(row[model.ColShipPostal]),
		B2B:        parseBool(row[model.ColB2B]),
	}
	return tx, true
}

func (c *Cleaner) parseDate(v string) (time.Time, bool) {
	v = strings.TrimSpace(v)
	for _, layout := range c.dateFormats {
		if parsed, err := time.Parse(layout, v); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// parseQuantity coerces a count cell to int. Quantity is not a critical
// field; blank or unparseable cells default to a single unit.
func parseQuantity(v string) int {
	v = model.Normalize(v)
	if v == "" {
		return 1
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 1
	}
	return n
}

func parseBool(v string) bool {
	b, err := strconv.ParseBool(model.Normalize(v))
	if err != nil {
		return false
	}
	return b
}
