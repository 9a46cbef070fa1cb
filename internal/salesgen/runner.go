package salesgen

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/pkg/logger"
)

// Run executes the complete generate-load-query cycle against a running
// service.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{StartTime: time.Now()}

	logger.Get().Info(ctx, "starting sales generator run",
		logger.String("baseURL", config.BaseURL),
		logger.Int("rows", config.NumRows),
		logger.Int("topN", config.TopN),
		logger.String("month", config.Month),
		logger.String("output", config.OutputFile),
	)

	if err := checkServiceHealth(ctx, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	rows := generateRows(ctx, config, stats)
	if err := writeCSV(ctx, config.OutputFile, rows); err != nil {
		return fmt.Errorf("sales file generation failed: %w", err)
	}

	if err := loadAndProcess(ctx, config, stats); err != nil {
		return err
	}
	if err := runQueries(ctx, config, stats); err != nil {
		return err
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	reportStats(ctx, stats)
	return nil
}

func loadAndProcess(ctx context.Context, config *Config, stats *Stats) error {
	abs, err := filepath.Abs(config.OutputFile)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	var loaded loadResponse
	if err := postJSON(ctx, config, "/load-data", map[string]string{"path": abs}, &loaded); err != nil {
		return fmt.Errorf("load failed: %w", err)
	}
	stats.RowsLoaded = loaded.Rows

	var processed processResponse
	if err := postJSON(ctx, config, "/process-data", nil, &processed); err != nil {
		return fmt.Errorf("preprocess failed: %w", err)
	}
	stats.RowsRetained = processed.Retained
	stats.RowsDropped = processed.Dropped
	stats.Duplicates = processed.Duplicates

	if stats.RowsRetained+stats.RowsDropped+stats.Duplicates != stats.RowsLoaded {
		return fmt.Errorf("preprocess accounting mismatch: %d+%d+%d != %d",
			stats.RowsRetained, stats.RowsDropped, stats.Duplicates, stats.RowsLoaded)
	}
	return nil
}

func runQueries(ctx context.Context, config *Config, stats *Stats) error {
	var daily []dailyRevenueRow
	if err := getJSON(ctx, config, "/insights/daily-revenue", nil, &daily); err != nil {
		return fmt.Errorf("daily revenue query failed: %w", err)
	}
	stats.DailyRows = len(daily)

	params := url.Values{}
	params.Set("month", config.Month)
	params.Set("top_n", strconv.Itoa(config.TopN))
	var top []topSKURow
	if err := getJSON(ctx, config, "/insights/top-skus", params, &top); err != nil {
		return fmt.Errorf("top skus query failed: %w", err)
	}
	stats.TopSKURows = len(top)
	if len(top) > config.TopN {
		return fmt.Errorf("top skus returned %d rows, want at most %d", len(top), config.TopN)
	}

	params = url.Values{}
	params.Set("filter_by", "category")
	var asp []aspRow
	if err := getJSON(ctx, config, "/insights/asp-order-count", params, &asp); err != nil {
		return fmt.Errorf("asp query failed: %w", err)
	}
	stats.ASPRows = len(asp)
	return nil
}

func reportStats(ctx context.Context, stats *Stats) {
	logger.Get().Info(ctx, "sales generator run complete",
		logger.Int("rowsGenerated", stats.RowsGenerated),
		logger.Int("rowsLoaded", stats.RowsLoaded),
		logger.Int("rowsRetained", stats.RowsRetained),
		logger.Int("rowsDropped", stats.RowsDropped),
		logger.Int("duplicates", stats.Duplicates),
		logger.Int("dailyRows", stats.DailyRows),
		logger.Int("topSKURows", stats.TopSKURows),
		logger.Int("aspRows", stats.ASPRows),
		logger.String("duration", stats.Duration.String()),
	)
}
