// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/internal/domain/clean"
	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/internal/domain/insight"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// LoadData reads a delimited file into the dataset store.
	LoadData(ctx context.Context, path string) (int, error)

	// ProcessData runs the preprocessing pass over the loaded dataset.
	ProcessData(ctx context.Context) (clean.Summary, error)

	// Read operations expose the insight queries.
	DailyRevenue(ctx context.Context, f insight.DailyRevenueFilters) ([]insight.DailyRevenueRow, error)
	TopSKUs(ctx context.Context, month string, topN int) ([]insight.TopSKURow, error)
	ASPOrderCount(ctx context.Context, filterBy string) ([]insight.ASPRow, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler       *HealthHandler
	statsHandler        *StatsHandler
	loadHandler         *LoadHandler
	processHandler      *ProcessHandler
	dailyRevenueHandler *DailyRevenueHandler
	topSKUsHandler      *TopSKUsHandler
	aspHandler          *ASPOrderCountHandler
}

// NewServer creates a new API server with all handlers. defaultTopN is the
// top_n substituted when /insights/top-skus omits the parameter.
func NewServer(deps Dependencies, statsProvider StatsProvider, defaultTopN int) *Server {
	return &Server{
		healthHandler:       NewHealthHandler(),
		statsHandler:        NewStatsHandler(statsProvider),
		loadHandler:         NewLoadHandler(deps),
		processHandler:      NewProcessHandler(deps),
		dailyRevenueHandler: NewDailyRevenueHandler(deps),
		topSKUsHandler:      NewTopSKUsHandler(deps, defaultTopN),
		aspHandler:          NewASPOrderCountHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/load-data", MetricsMiddleware(s.loadHandler.HandleLoadData, "load_data"))
	mux.HandleFunc("/process-data", MetricsMiddleware(s.processHandler.HandleProcessData, "process_data"))
	mux.HandleFunc("/insights/daily-revenue", MetricsMiddleware(s.dailyRevenueHandler.HandleDailyRevenue, "daily_revenue"))
	mux.HandleFunc("/insights/top-skus", MetricsMiddleware(s.topSKUsHandler.HandleTopSKUs, "top_skus"))
	mux.HandleFunc("/insights/asp-order-count", MetricsMiddleware(s.aspHandler.HandleASPOrderCount, "asp_order_count"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
