package insight

import (
	"context"
	"fmt"
	"sort"

	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/internal/domain/model"
	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/internal/domain/money"
)

// Recognized filter_by dimensions.
const (
	FilterBySKU      = "sku"
	FilterByCategory = "category"
)

// ASPRow is one group's average selling price and distinct order count.
// Exactly one of SKU/Category is set when a dimension was requested; both are
// empty for the implicit whole-dataset group.
type ASPRow struct {
	SKU        string
	Category   string
	ASP        money.Decimal
	OrderCount int
}

// ASPOrderCount aggregates average selling price (total revenue over distinct
// order count) and order counts. With an empty filterBy the whole dataset is
// one implicit group; "sku" and "category" group by that dimension, excluding
// rows whose grouping value is empty so a missing key never pollutes a group.
// Grouped results come back ordered by key ascending.
func (e *Engine) ASPOrderCount(ctx context.Context, ds model.Dataset, filterBy string) ([]ASPRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	filterBy = model.Normalize(filterBy)
	var key func(model.Transaction) string
	switch filterBy {
	case "":
		key = nil
	case FilterBySKU:
		key = func(tx model.Transaction) string { return tx.SKU }
	case FilterByCategory:
		key = func(tx model.Transaction) string { return tx.Category }
	default:
		return nil, fmt.Errorf("%w: filter_by must be %q or %q", ErrInvalidFilter, FilterBySKU, FilterByCategory)
	}

	type agg struct {
		revenue money.Decimal
		orders  map[string]struct{}
	}
	groups := make(map[string]*agg)
	for i, tx := range ds.Transactions {
		if !e.countsRevenue(tx) {
			continue
		}
		k := ""
		if key != nil {
			k = key(tx)
			if k == "" {
				continue
			}
		}
		g, ok := groups[k]
		if !ok {
			g = &agg{orders: make(map[string]struct{})}
			groups[k] = g
		}
		g.revenue = g.revenue.Add(tx.Revenue)
		g.orders[orderKey(tx, i)] = struct{}{}
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([]ASPRow, 0, len(keys))
	for _, k := range keys {
		g := groups[k]
		row := ASPRow{
			ASP:        g.revenue.DivInt(int64(len(g.orders))),
			OrderCount: len(g.orders),
		}
		switch filterBy {
		case FilterBySKU:
			row.SKU = k
		case FilterByCategory:
			row.Category = k
		}
		rows = append(rows, row)
	}
	return rows, nil
}
