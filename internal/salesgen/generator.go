package salesgen

import (
	"context"
	"crypto/rand"
	"encoding/csv"
	"fmt"
	"math/big"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/pkg/logger"
)

// Pools the generator draws from. Values mirror what real marketplace
// exports contain so the preprocessing path sees realistic variety.
var (
	skuPool      = []string{"JNE3797-KR-L", "JNE3405-KR-S", "SET389-KR-NP-M", "J0230-SKD-M", "SET200-KR-XL"}
	categoryPool = []string{"kurta", "set", "top", "western dress", "saree"}
	statePool    = []string{"Maharashtra", "Karnataka", "Tamil Nadu", "Delhi", "West Bengal"}
	cityPool     = []string{"Mumbai", "Bengaluru", "Chennai", "New Delhi", "Kolkata"}
	statusPool   = []string{"Shipped", "Shipped", "Shipped", "Shipped - Delivered to Buyer", "Cancelled", "Shipped - Returned to Seller"}
)

const (
	revenueMinCents   = 19900
	revenueRangeCents = 180000
	daySpread         = 28
	duplicateEvery    = 40
)

func randomInt(max int64) int64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(max))
	return n.Int64()
}

func pick(pool []string) string {
	return pool[randomInt(int64(len(pool)))]
}

// generateRows produces NumRows synthetic sales rows. Roughly one row in
// duplicateEvery is an exact copy of its predecessor so the dedupe path is
// exercised on every run.
func generateRows(ctx context.Context, config *Config, stats *Stats) []SaleRow {
	logger.Get().Info(ctx, "generating sales rows", logger.Int("numRows", config.NumRows))

	base := time.Date(2022, 4, 1, 0, 0, 0, 0, time.UTC)
	rows := make([]SaleRow, 0, config.NumRows)
	for i := 0; i < config.NumRows; i++ {
		if len(rows) > 0 && randomInt(duplicateEvery) == 0 {
			rows = append(rows, rows[len(rows)-1])
			continue
		}
		idx := randomInt(int64(len(skuPool)))
		cents := revenueMinCents + randomInt(revenueRangeCents)
		rows = append(rows, SaleRow{
			OrderID:   uuid.New().String(),
			OrderDate: base.AddDate(0, 0, int(randomInt(daySpread))).Format("2006-01-02"),
			Status:    pick(statusPool),
			SKU:       skuPool[idx],
			Category:  categoryPool[idx],
			Qty:       1 + int(randomInt(3)),
			Revenue:   fmt.Sprintf("%d.%02d", cents/100, cents%100),
			ShipCity:  pick(cityPool),
			ShipState: pick(statePool),
			B2B:       randomInt(10) == 0,
		})
	}
	stats.RowsGenerated = len(rows)
	return rows
}

// writeCSV writes rows to path in the column layout the loader expects.
func writeCSV(ctx context.Context, path string, rows []SaleRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"Order ID", "Order Date", "Status", "SKU", "Category", "Qty", "Revenue", "Ship City", "Ship State", "B2B"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.OrderID, r.OrderDate, r.Status, r.SKU, r.Category,
			strconv.Itoa(r.Qty), r.Revenue, r.ShipCity, r.ShipState,
			strconv.FormatBool(r.B2B),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	logger.Get().Info(ctx, "sales file written",
		logger.String("path", path),
		logger.Int("rows", len(rows)),
	)
	return nil
}
