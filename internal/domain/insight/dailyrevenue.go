package insight

import (
	"context"
	"sort"
	"time"

	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/internal/domain/model"
	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/internal/domain/money"
)

// DailyRevenueFilters are the optional equality filters for the daily revenue
// query. Empty fields apply no filter; non-empty fields combine as a
// conjunction.
type DailyRevenueFilters struct {
	ShipState string
	Category  string
	SKU       string
}

// DailyRevenueRow is one date group. Filter columns echo the applied filter
// value and stay empty otherwise.
type DailyRevenueRow struct {
	Date      time.Time
	Revenue   money.Decimal
	ShipState string
	Category  string
	SKU       string
}

// DailyRevenue groups revenue by calendar date after applying the supplied
// filters. Filter values are validated against the dataset's observed values;
// an unknown value is an ErrInvalidFilter, while a known combination that
// matches no rows yields an empty result. Rows come back ordered by date
// ascending.
func (e *Engine) DailyRevenue(ctx context.Context, ds model.Dataset, f DailyRevenueFilters) ([]DailyRevenueRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	state, err := validateFilter(ds, "ship_state", f.ShipState, func(tx model.Transaction) string { return tx.ShipState })
	if err != nil {
		return nil, err
	}
	category, err := validateFilter(ds, "category", f.Category, func(tx model.Transaction) string { return tx.Category })
	if err != nil {
		return nil, err
	}
	sku, err := validateFilter(ds, "sku", f.SKU, func(tx model.Transaction) string { return tx.SKU })
	if err != nil {
		return nil, err
	}

	totals := make(map[time.Time]money.Decimal)
	for _, tx := range ds.Transactions {
		if !e.countsRevenue(tx) {
			continue
		}
		if state != "" && tx.ShipState != state {
			continue
		}
		if category != "" && tx.Category != category {
			continue
		}
		if sku != "" && tx.SKU != sku {
			continue
		}
		day := time.Date(tx.Date.Year(), tx.Date.Month(), tx.Date.Day(), 0, 0, 0, 0, time.UTC)
		totals[day] = totals[day].Add(tx.Revenue)
	}

	days := make([]time.Time, 0, len(totals))
	for day := range totals {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	rows := make([]DailyRevenueRow, 0, len(days))
	for _, day := range days {
		rows = append(rows, DailyRevenueRow{
			Date:      day,
			Revenue:   totals[day],
			ShipState: state,
			Category:  category,
			SKU:       sku,
		})
	}
	return rows, nil
}
