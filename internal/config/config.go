// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) to build a Config with defaults.
// - Load layers defaults, an optional YAML file, and environment variables.
// - External errors are wrapped via this package's sentinel kinds.
package config

import "runtime"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8000".
	Addr string `koanf:"addr"`

	// DefaultTopN is the top_n used when the query omits it.
	DefaultTopN int `koanf:"default_top_n"`

	// MaxTopN caps top_n on /insights/top-skus.
	MaxTopN int `koanf:"max_top_n"`

	// CleanWorkers sets the number of concurrent row-cleaning workers.
	CleanWorkers int `koanf:"clean_workers"`

	// DateFormats lists the accepted order_date layouts, most common first.
	DateFormats []string `koanf:"date_formats"`

	// StatusMapping canonicalizes raw order statuses, e.g.
	// "shipped - delivered to buyer" -> "delivered".
	StatusMapping map[string]string `koanf:"status_mapping"`

	// ExcludeStatuses lists statuses removed entirely during preprocessing.
	ExcludeStatuses []string `koanf:"exclude_statuses"`

	// RevenueExcludeStatuses lists statuses kept in the dataset but excluded
	// from revenue aggregation.
	RevenueExcludeStatuses []string `koanf:"revenue_exclude_statuses"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:     "info",
		Addr:         ":8000",
		DefaultTopN:  10,
		MaxTopN:      100,
		CleanWorkers: runtime.NumCPU(),
		DateFormats: []string{
			"2006-01-02",
			"01-02-06",
			"2006-01-02 15:04:05",
			"2006-01-02T15:04:05Z07:00",
		},
		StatusMapping: map[string]string{
			"shipped - delivered to buyer": "delivered",
			"shipped - returned to seller": "returned",
		},
		ExcludeStatuses:        []string{"cancelled"},
		RevenueExcludeStatuses: []string{"returned"},
	}
}
