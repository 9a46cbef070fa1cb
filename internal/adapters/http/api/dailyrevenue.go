package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/internal/domain/insight"
)

// DailyRevenueDependencies is what the daily revenue handler needs.
type DailyRevenueDependencies interface {
	DailyRevenue(ctx context.Context, f insight.DailyRevenueFilters) ([]insight.DailyRevenueRow, error)
}

// DailyRevenueHandler serves revenue grouped by calendar date.
type DailyRevenueHandler struct {
	deps DailyRevenueDependencies
}

// NewDailyRevenueHandler creates a daily revenue handler.
func NewDailyRevenueHandler(deps DailyRevenueDependencies) *DailyRevenueHandler {
	return &DailyRevenueHandler{deps: deps}
}

type dailyRevenueRow struct {
	Date      string `json:"date"`
	Revenue   string `json:"revenue_per_day"`
	ShipState string `json:"ship_state,omitempty"`
	Category  string `json:"category,omitempty"`
	SKU       string `json:"sku,omitempty"`
}

// HandleDailyRevenue handles GET /insights/daily-revenue.
// Optional query parameters: ship_state, category, sku.
func (h *DailyRevenueHandler) HandleDailyRevenue(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeDomainError(w, fmt.Errorf("%w: method %s not allowed", ErrBadRequest, r.Method))
		return
	}

	q := r.URL.Query()
	filters := insight.DailyRevenueFilters{
		ShipState: q.Get("ship_state"),
		Category:  q.Get("category"),
		SKU:       q.Get("sku"),
	}

	rows, err := h.deps.DailyRevenue(r.Context(), filters)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	out := make([]dailyRevenueRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, dailyRevenueRow{
			Date:      row.Date.Format("2006-01-02"),
			Revenue:   row.Revenue.String(),
			ShipState: row.ShipState,
			Category:  row.Category,
			SKU:       row.SKU,
		})
	}
	writeJSON(w, http.StatusOK, out)
}
