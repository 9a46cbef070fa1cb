package insight

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/internal/domain/model"
	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/internal/domain/money"
)

// TopSKURow is one SKU's monthly aggregate.
type TopSKURow struct {
	SKU        string
	Revenue    money.Decimal
	OrderCount int
	Month      time.Month
}

// TopSKUs returns at most topN SKUs for the given month (any year), ordered
// by summed revenue descending. Ties break on order count descending, then
// SKU ascending, so results are deterministic. The month is required and may
// be a number, a full English name, or a 3-letter abbreviation.
func (e *Engine) TopSKUs(ctx context.Context, ds model.Dataset, month string, topN int) ([]TopSKURow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if model.Normalize(month) == "" {
		return nil, fmt.Errorf("%w: month", ErrMissingParameter)
	}
	m, ok := model.ParseMonth(month)
	if !ok {
		return nil, fmt.Errorf("%w: unknown month %q", ErrInvalidFilter, month)
	}
	if topN < MinTopN || topN > e.maxTopN {
		return nil, fmt.Errorf("%w: top_n %d not in [%d,%d]", ErrOutOfRange, topN, MinTopN, e.maxTopN)
	}

	type agg struct {
		revenue money.Decimal
		orders  map[string]struct{}
	}
	groups := make(map[string]*agg)
	for i, tx := range ds.Transactions {
		if tx.Month != m || tx.SKU == "" || !e.countsRevenue(tx) {
			continue
		}
		g, ok := groups[tx.SKU]
		if !ok {
			g = &agg{orders: make(map[string]struct{})}
			groups[tx.SKU] = g
		}
		g.revenue = g.revenue.Add(tx.Revenue)
		g.orders[orderKey(tx, i)] = struct{}{}
	}

	rows := make([]TopSKURow, 0, len(groups))
	for sku, g := range groups {
		rows = append(rows, TopSKURow{
			SKU:        sku,
			Revenue:    g.revenue,
			OrderCount: len(g.orders),
			Month:      m,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if c := rows[i].Revenue.Cmp(rows[j].Revenue); c != 0 {
			return c > 0
		}
		if rows[i].OrderCount != rows[j].OrderCount {
			return rows[i].OrderCount > rows[j].OrderCount
		}
		return rows[i].SKU < rows[j].SKU
	})

	if len(rows) > topN {
		rows = rows[:topN]
	}
	return rows, nil
}
