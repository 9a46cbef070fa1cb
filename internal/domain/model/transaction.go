// Package model contains domain models passed between layers.
package model

import (
	"strings"
	"time"

	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/internal/domain/money"
)

// Column names after header standardization (trimmed, lower-cased, spaces and
// dashes folded to underscores).
const (
	ColOrderID    = "order_id"
	ColOrderDate  = "order_date"
	ColStatus     = "status"
	ColSKU        = "sku"
	ColCategory   = "category"
	ColQuantity   = "qty"
	ColRevenue    = "revenue"
	ColShipCity   = "ship_city"
	ColShipState  = "ship_state"
	ColShipPostal = "ship_postal_code"
	ColB2B        = "b2b"
)

// RequiredColumns must be present in every loaded file.
var RequiredColumns = []string{ColOrderDate, ColSKU, ColCategory, ColShipState, ColRevenue}

// Row is one unparsed line of a loaded file, keyed by standardized column name.
type Row map[string]string

// RawDataset is the as-loaded table: standardized header plus string rows.
// It carries no type guarantees; the cleaning pass produces a Dataset.
type RawDataset struct {
	Columns []string
	Rows    []Row
}

// Transaction is one fully typed, normalized retail transaction.
type Transaction struct {
	OrderID    string
	Date       time.Time
	Month      time.Month
	Status     string
	SKU        string
	Category   string
	Quantity   int
	Revenue    money.Decimal
	ShipCity   string
	ShipState  string
	ShipPostal string
	B2B        bool
}

// Dataset is the processed, immutable collection of transactions. It must not
// be mutated after the store swap; queries receive it as a read-only view.
type Dataset struct {
	Transactions []Transaction
}

// Len returns the number of retained transactions.
func (d Dataset) Len() int {
	return len(d.Transactions)
}

// StandardizeColumn normalizes a header cell the same way the cleaner
// normalizes categorical values: trim, lower-case, and fold spaces/dashes to
// underscores. "Order Date" and "order-date" both map to "order_date".
func StandardizeColumn(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "-", "_")
	return name
}

// Normalize is the canonical form used for all filter matching: trimmed and
// lower-cased.
func Normalize(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

// ParseMonth resolves a user-supplied month as a number (1-12), a full English
// month name, or a 3-letter abbreviation, case-insensitively. The boolean is
// false when the value does not resolve to a calendar month.
func ParseMonth(v string) (time.Month, bool) {
	v = Normalize(v)
	if v == "" {
		return 0, false
	}
	if t, err := time.Parse("1", v); err == nil {
		return t.Month(), true
	}
	if t, err := time.Parse("January", v); err == nil {
		return t.Month(), true
	}
	if t, err := time.Parse("Jan", v); err == nil {
		return t.Month(), true
	}
	return 0, false
}
