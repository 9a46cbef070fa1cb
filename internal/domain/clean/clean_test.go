package clean_test

import (
	"context"
	"testing"
	"time"

	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/internal/domain/clean"
	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func row(date, sku, category, state, revenue string) model.Row {
	return model.Row{
		model.ColOrderDate: date,
		model.ColSKU:       sku,
		model.ColCategory:  category,
		model.ColShipState: state,
		model.ColRevenue:   revenue,
	}
}

func rawOf(rows ...model.Row) model.RawDataset {
	return model.RawDataset{Columns: model.RequiredColumns, Rows: rows}
}

func TestClean(t *testing.T) {
	Convey("Given a cleaner with defaults", t, func() {
		c := clean.New()
		ctx := context.Background()

		Convey("When cleaning well-formed rows", func() {
			ds, sum, err := c.Clean(ctx, rawOf(
				row("2024-01-01", " SKU-1 ", "Kurta", "MAHARASHTRA", "100"),
				row("2024-01-02", "sku-2", "kurta", "karnataka", "50.50"),
			))
			So(err, ShouldBeNil)
			So(sum.Retained, ShouldEqual, 2)
			So(sum.Dropped, ShouldEqual, 0)

			Convey("Then categorical columns are normalized", func() {
				So(ds.Transactions[0].SKU, ShouldEqual, "sku-1")
				So(ds.Transactions[0].Category, ShouldEqual, "kurta")
				So(ds.Transactions[0].ShipState, ShouldEqual, "maharashtra")
			})

			Convey("Then dates and months are typed", func() {
				So(ds.Transactions[0].Date.Format("2006-01-02"), ShouldEqual, "2024-01-01")
				So(ds.Transactions[0].Month, ShouldEqual, time.January)
			})

			Convey("Then row order is preserved", func() {
				So(ds.Transactions[0].SKU, ShouldEqual, "sku-1")
				So(ds.Transactions[1].SKU, ShouldEqual, "sku-2")
			})
		})

		Convey("When rows have unparseable dates", func() {
			_, sum, err := c.Clean(ctx, rawOf(
				row("not-a-date", "sku-1", "kurta", "goa", "10"),
				row("2024-02-01", "sku-2", "kurta", "goa", "10"),
			))
			So(err, ShouldBeNil)
			So(sum.Retained, ShouldEqual, 1)
			So(sum.Dropped, ShouldEqual, 1)
		})

		Convey("When revenue is negative or non-numeric", func() {
			_, sum, err := c.Clean(ctx, rawOf(
				row("2024-02-01", "sku-1", "kurta", "goa", "-5"),
				row("2024-02-01", "sku-2", "kurta", "goa", "abc"),
				row("2024-02-01", "sku-3", "kurta", "goa", "0"),
			))
			So(err, ShouldBeNil)
			So(sum.Retained, ShouldEqual, 1)
			So(sum.Dropped, ShouldEqual, 2)
		})

		Convey("When a required column is empty", func() {
			_, sum, err := c.Clean(ctx, rawOf(
				row("2024-02-01", "sku-1", "", "goa", "10"),
				row("2024-02-01", "sku-2", "kurta", "   ", "10"),
			))
			So(err, ShouldBeNil)
			So(sum.Retained, ShouldEqual, 0)
			So(sum.Dropped, ShouldEqual, 2)
		})

		Convey("When exact duplicate rows appear", func() {
			dup := row("2024-02-01", "sku-1", "kurta", "goa", "10")
			_, sum, err := c.Clean(ctx, rawOf(dup, dup, dup))
			So(err, ShouldBeNil)
			So(sum.Retained, ShouldEqual, 1)
			So(sum.Duplicates, ShouldEqual, 2)
		})

		Convey("When quantity is blank or malformed", func() {
			r := row("2024-02-01", "sku-1", "kurta", "goa", "10")
			r[model.ColQuantity] = "oops"
			ds, _, err := c.Clean(ctx, rawOf(r))
			So(err, ShouldBeNil)
			So(ds.Transactions[0].Quantity, ShouldEqual, 1)
		})

		Convey("When run twice over already-normalized data", func() {
			raw := rawOf(
				row("2024-01-01", "sku-1", "kurta", "goa", "100"),
				row("2024-01-02", "sku-2", "top", "goa", "50.50"),
			)
			first, sum1, err := c.Clean(ctx, raw)
			So(err, ShouldBeNil)

			rows := make([]model.Row, 0, first.Len())
			for _, tx := range first.Transactions {
				r := row(tx.Date.Format("2006-01-02"), tx.SKU, tx.Category, tx.ShipState, tx.Revenue.String())
				rows = append(rows, r)
			}
			second, sum2, err := c.Clean(ctx, model.RawDataset{Columns: raw.Columns, Rows: rows})
			So(err, ShouldBeNil)

			Convey("Then retained counts and values are identical", func() {
				So(sum2.Retained, ShouldEqual, sum1.Retained)
				So(second.Len(), ShouldEqual, first.Len())
				for i := range second.Transactions {
					So(second.Transactions[i].SKU, ShouldEqual, first.Transactions[i].SKU)
					So(second.Transactions[i].Revenue.Cmp(first.Transactions[i].Revenue), ShouldEqual, 0)
				}
			})
		})
	})

	Convey("Given a cleaner with a status mapping and exclusions", t, func() {
		c := clean.New(
			clean.WithStatusMapping(map[string]string{"shipped - delivered to buyer": "delivered"}),
			clean.WithExcludeStatuses([]string{"cancelled"}),
			clean.WithWorkers(2),
		)
		ctx := context.Background()

		delivered := row("2024-03-01", "sku-1", "kurta", "goa", "10")
		delivered[model.ColStatus] = "Shipped - Delivered to Buyer"
		cancelled := row("2024-03-01", "sku-2", "kurta", "goa", "10")
		cancelled[model.ColStatus] = "Cancelled"

		ds, sum, err := c.Clean(ctx, rawOf(delivered, cancelled))
		So(err, ShouldBeNil)

		Convey("Then statuses are canonicalized and excluded rows dropped", func() {
			So(sum.Retained, ShouldEqual, 1)
			So(sum.Dropped, ShouldEqual, 1)
			So(ds.Transactions[0].Status, ShouldEqual, "delivered")
		})
	})
}
