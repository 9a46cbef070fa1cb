package service_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	service "github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/internal/app"
	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/internal/adapters/csvfile"
	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/internal/adapters/repository"
	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/internal/domain/insight"
	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

const salesCSV = `Order ID,Order Date,Status,SKU,Category,Qty,Revenue,Ship-State
ord-1,2022-04-29,Shipped,sku-a,kurta,1,100,Maharashtra
ord-2,2022-04-29,Shipped,sku-b,top,1,50,Karnataka
ord-3,2022-04-30,Shipped,sku-a,kurta,1,30,Maharashtra
ord-4,2022-04-30,Cancelled,sku-c,top,1,999,Karnataka
ord-3,2022-04-30,Shipped,sku-a,kurta,1,30,Maharashtra
`

func writeSales(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sales.csv")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func startService(t *testing.T) *service.Service {
	t.Helper()
	svc := service.New()
	if err := svc.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(svc.Stop)
	return svc
}

func TestServiceLifecycle(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := startService(t)
		ctx := context.Background()

		Convey("When querying before any load", func() {
			_, err := svc.DailyRevenue(ctx, insight.DailyRevenueFilters{})
			So(err, ShouldWrap, repository.ErrNotLoaded)
		})

		Convey("When processing before any load", func() {
			_, err := svc.ProcessData(ctx)
			So(err, ShouldWrap, repository.ErrNotLoaded)
		})

		Convey("When loading a missing file", func() {
			_, err := svc.LoadData(ctx, filepath.Join(t.TempDir(), "nope.csv"))
			So(err, ShouldWrap, csvfile.ErrFileNotFound)
		})

		Convey("When loading a valid file", func() {
			rows, err := svc.LoadData(ctx, writeSales(t, salesCSV))
			So(err, ShouldBeNil)
			So(rows, ShouldEqual, 5)

			Convey("Then querying before preprocessing fails", func() {
				_, err := svc.DailyRevenue(ctx, insight.DailyRevenueFilters{})
				So(err, ShouldWrap, repository.ErrNotProcessed)
			})

			Convey("And preprocessing drops cancelled and duplicate rows", func() {
				sum, err := svc.ProcessData(ctx)
				So(err, ShouldBeNil)
				So(sum.Retained, ShouldEqual, 3)
				So(sum.Dropped, ShouldEqual, 1)
				So(sum.Duplicates, ShouldEqual, 1)
			})
		})
	})
}

func TestServiceQueries(t *testing.T) {
	Convey("Given a loaded and preprocessed dataset", t, func() {
		svc := startService(t)
		ctx := context.Background()

		_, err := svc.LoadData(ctx, writeSales(t, salesCSV))
		So(err, ShouldBeNil)
		_, err = svc.ProcessData(ctx)
		So(err, ShouldBeNil)

		Convey("When asking for daily revenue", func() {
			rows, err := svc.DailyRevenue(ctx, insight.DailyRevenueFilters{})
			So(err, ShouldBeNil)
			So(rows, ShouldHaveLength, 2)
			So(rows[0].Date.Format("2006-01-02"), ShouldEqual, "2022-04-29")
			So(rows[0].Revenue.String(), ShouldEqual, "150")
			So(rows[1].Revenue.String(), ShouldEqual, "30")
		})

		Convey("When filtering daily revenue by ship state", func() {
			rows, err := svc.DailyRevenue(ctx, insight.DailyRevenueFilters{ShipState: "maharashtra"})
			So(err, ShouldBeNil)
			So(rows, ShouldHaveLength, 2)
			So(rows[0].Revenue.String(), ShouldEqual, "100")
			So(rows[0].ShipState, ShouldEqual, "maharashtra")
		})

		Convey("When filtering by an unknown state", func() {
			_, err := svc.DailyRevenue(ctx, insight.DailyRevenueFilters{ShipState: "atlantis"})
			So(err, ShouldWrap, insight.ErrInvalidFilter)
		})

		Convey("When asking for top SKUs in april", func() {
			rows, err := svc.TopSKUs(ctx, "april", 10)
			So(err, ShouldBeNil)
			So(rows, ShouldHaveLength, 2)
			So(rows[0].SKU, ShouldEqual, "sku-a")
			So(rows[0].Revenue.String(), ShouldEqual, "130")
			So(rows[0].OrderCount, ShouldEqual, 2)
			So(rows[1].SKU, ShouldEqual, "sku-b")
		})

		Convey("When asking for top SKUs with a bad month", func() {
			_, err := svc.TopSKUs(ctx, "smarch", 10)
			So(err, ShouldWrap, insight.ErrInvalidFilter)
		})

		Convey("When asking for overall ASP", func() {
			rows, err := svc.ASPOrderCount(ctx, "")
			So(err, ShouldBeNil)
			So(rows, ShouldHaveLength, 1)
			So(rows[0].OrderCount, ShouldEqual, 3)
			So(rows[0].ASP.String(), ShouldEqual, "60")
		})

		Convey("When asking for ASP grouped by category", func() {
			rows, err := svc.ASPOrderCount(ctx, "category")
			So(err, ShouldBeNil)
			So(rows, ShouldHaveLength, 2)
			So(rows[0].Category, ShouldEqual, "kurta")
			So(rows[0].ASP.String(), ShouldEqual, "65")
			So(rows[1].Category, ShouldEqual, "top")
		})

		Convey("When reloading, the processed dataset is invalidated", func() {
			_, err := svc.LoadData(ctx, writeSales(t, salesCSV))
			So(err, ShouldBeNil)
			_, err = svc.DailyRevenue(ctx, insight.DailyRevenueFilters{})
			So(err, ShouldWrap, repository.ErrNotProcessed)
		})

		Convey("And stats reflect the state", func() {
			stats := svc.GetStats()
			So(stats["started"], ShouldBeTrue)
			So(stats["loaded"], ShouldBeTrue)
			So(stats["processed"], ShouldBeTrue)
			So(stats["rows"], ShouldEqual, 3)
		})
	})
}
