// Package insight implements the three read-only aggregation queries over a
// processed dataset: daily revenue, top SKUs per month, and average selling
// price with order counts. Queries never mutate the dataset they receive.
package insight

import (
	"fmt"
	"strconv"

	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/internal/domain/model"
)

// Default top-N bounds.
const (
	DefaultTopN = 10
	MinTopN     = 1
	MaxTopN     = 100
)

// Engine evaluates insight queries. It is stateless; the dataset is passed
// per call as a read-only view.
type Engine struct {
	maxTopN                int
	revenueExcludeStatuses map[string]struct{}
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithMaxTopN overrides the upper bound for top-N queries.
func WithMaxTopN(n int) Option {
	return func(e *Engine) {
		if n >= MinTopN {
			e.maxTopN = n
		}
	}
}

// WithRevenueExcludeStatuses sets the order statuses excluded from revenue
// aggregation (returned orders by default).
func WithRevenueExcludeStatuses(statuses []string) Option {
	return func(e *Engine) {
		m := make(map[string]struct{}, len(statuses))
		for _, s := range statuses {
			m[model.Normalize(s)] = struct{}{}
		}
		e.revenueExcludeStatuses = m
	}
}

// New constructs an Engine with defaults applied.
func New(opts ...Option) *Engine {
	e := &Engine{
		maxTopN:                MaxTopN,
		revenueExcludeStatuses: map[string]struct{}{"returned": {}},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// countsRevenue reports whether a transaction participates in revenue sums.
func (e *Engine) countsRevenue(tx model.Transaction) bool {
	_, excluded := e.revenueExcludeStatuses[tx.Status]
	return !excluded
}

// distinctValues collects the observed normalized values of one categorical
// column. Filter validation runs against this set: a value the dataset has
// never seen is rejected rather than silently matching nothing.
func distinctValues(ds model.Dataset, get func(model.Transaction) string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tx := range ds.Transactions {
		if v := get(tx); v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}

// validateFilter normalizes value and checks it against the column's observed
// domain. An empty value passes through unchanged (no filter applied).
func validateFilter(ds model.Dataset, column string, value string, get func(model.Transaction) string) (string, error) {
	if value == "" {
		return "", nil
	}
	v := model.Normalize(value)
	if v == "" {
		return "", fmt.Errorf("%w: empty %s", ErrInvalidFilter, column)
	}
	if _, ok := distinctValues(ds, get)[v]; !ok {
		return "", fmt.Errorf("%w: unknown %s %q", ErrInvalidFilter, column, value)
	}
	return v, nil
}

// orderKey identifies the order a transaction belongs to for distinct-order
// counting. Files without an order_id column fall back to per-row counting.
func orderKey(tx model.Transaction, idx int) string {
	if tx.OrderID != "" {
		return tx.OrderID
	}
	return "row#" + strconv.Itoa(idx)
}
