package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/internal/domain/insight"
)

// TopSKUsDependencies is what the top SKUs handler needs.
type TopSKUsDependencies interface {
	TopSKUs(ctx context.Context, month string, topN int) ([]insight.TopSKURow, error)
}

// TopSKUsHandler serves the highest-revenue SKUs for a month.
type TopSKUsHandler struct {
	deps        TopSKUsDependencies
	defaultTopN int
}

// NewTopSKUsHandler creates a top SKUs handler. defaultTopN substitutes for
// an absent top_n query parameter.
func NewTopSKUsHandler(deps TopSKUsDependencies, defaultTopN int) *TopSKUsHandler {
	if defaultTopN < insight.MinTopN {
		defaultTopN = insight.DefaultTopN
	}
	return &TopSKUsHandler{deps: deps, defaultTopN: defaultTopN}
}

type topSKURow struct {
	SKU        string `json:"sku"`
	Revenue    string `json:"revenue_per_month"`
	OrderCount int    `json:"order_count"`
	Month      string `json:"month"`
}

// HandleTopSKUs handles GET /insights/top-skus.
// Query parameters: month (required), top_n (optional).
func (h *TopSKUsHandler) HandleTopSKUs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeDomainError(w, fmt.Errorf("%w: method %s not allowed", ErrBadRequest, r.Method))
		return
	}

	q := r.URL.Query()
	month := q.Get("month")

	topN := h.defaultTopN
	if raw := q.Get("top_n"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeDomainError(w, fmt.Errorf("%w: top_n %q is not an integer", insight.ErrOutOfRange, raw))
			return
		}
		topN = n
	}

	rows, err := h.deps.TopSKUs(r.Context(), month, topN)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	out := make([]topSKURow, 0, len(rows))
	for _, row := range rows {
		out = append(out, topSKURow{
			SKU:        row.SKU,
			Revenue:    row.Revenue.String(),
			OrderCount: row.OrderCount,
			Month:      row.Month.String(),
		})
	}
	writeJSON(w, http.StatusOK, out)
}
