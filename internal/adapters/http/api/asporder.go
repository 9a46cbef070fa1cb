package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/internal/domain/insight"
)

// ASPOrderCountDependencies is what the ASP handler needs.
type ASPOrderCountDependencies interface {
	ASPOrderCount(ctx context.Context, filterBy string) ([]insight.ASPRow, error)
}

// ASPOrderCountHandler serves average selling price and distinct order
// counts, optionally grouped by sku or category.
type ASPOrderCountHandler struct {
	deps ASPOrderCountDependencies
}

// NewASPOrderCountHandler creates an ASP handler.
func NewASPOrderCountHandler(deps ASPOrderCountDependencies) *ASPOrderCountHandler {
	return &ASPOrderCountHandler{deps: deps}
}

type aspRow struct {
	SKU        string `json:"sku,omitempty"`
	Category   string `json:"category,omitempty"`
	ASP        string `json:"average_selling_price"`
	OrderCount int    `json:"order_count"`
}

// HandleASPOrderCount handles GET /insights/asp-order-count.
// Query parameter filter_by may be empty, "sku", or "category".
func (h *ASPOrderCountHandler) HandleASPOrderCount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeDomainError(w, fmt.Errorf("%w: method %s not allowed", ErrBadRequest, r.Method))
		return
	}

	rows, err := h.deps.ASPOrderCount(r.Context(), r.URL.Query().Get("filter_by"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	out := make([]aspRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, aspRow{
			SKU:        row.SKU,
			Category:   row.Category,
			ASP:        row.ASP.String(),
			OrderCount: row.OrderCount,
		})
	}
	writeJSON(w, http.StatusOK, out)
}
