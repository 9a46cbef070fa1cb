// Package salesgen generates synthetic sales files and exercises a running
// retail insights service end to end: load, preprocess, then the three
// insight queries.
package salesgen

import "time"

// Config holds configuration for the sales generator run.
type Config struct {
	BaseURL    string        // Base URL of the service
	NumRows    int           // Number of sales rows to generate
	TopN       int           // top_n used for the top-skus query
	Month      string        // Month used for the top-skus query
	Timeout    time.Duration // HTTP request timeout
	OutputFile string        // Destination CSV file
	LogFile    string        // Log file for run output
	Verbose    bool          // Enable verbose logging
}

// SaleRow is one generated line of the sales file.
type SaleRow struct {
	OrderID   string
	OrderDate string
	Status    string
	SKU       string
	Category  string
	Qty       int
	Revenue   string
	ShipCity  string
	ShipState string
	B2B       bool
}

// Stats holds run statistics.
type Stats struct {
	RowsGenerated int
	RowsLoaded    int
	RowsRetained  int
	RowsDropped   int
	Duplicates    int
	DailyRows     int
	TopSKURows    int
	ASPRows       int
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
}

// Response shapes mirrored from the service API.

type loadResponse struct {
	Message string `json:"message"`
	Rows    int    `json:"rows"`
}

type processResponse struct {
	Message    string `json:"message"`
	Retained   int    `json:"rows_retained"`
	Dropped    int    `json:"rows_dropped"`
	Duplicates int    `json:"duplicates"`
}

type dailyRevenueRow struct {
	Date    string `json:"date"`
	Revenue string `json:"revenue_per_day"`
}

type topSKURow struct {
	SKU        string `json:"sku"`
	Revenue    string `json:"revenue_per_month"`
	OrderCount int    `json:"order_count"`
}

type aspRow struct {
	SKU        string `json:"sku"`
	Category   string `json:"category"`
	ASP        string `json:"average_selling_price"`
	OrderCount int    `json:"order_count"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
