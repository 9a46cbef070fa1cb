package repository_test

import (
	"context"
	"sync"
	"testing"

	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/internal/adapters/repository"
	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMemStore(t *testing.T) {
	ctx := context.Background()

	Convey("Given an empty store", t, func() {
		s := repository.NewMemStore()

		Convey("Then reads report not loaded", func() {
			_, err := s.Raw(ctx)
			So(err, ShouldEqual, repository.ErrNotLoaded)

			_, err = s.Processed(ctx)
			So(err, ShouldEqual, repository.ErrNotLoaded)

			So(s.IsLoaded(ctx), ShouldBeFalse)
			So(s.IsProcessed(ctx), ShouldBeFalse)
		})

		Convey("When a raw dataset is set", func() {
			raw := model.RawDataset{Columns: model.RequiredColumns, Rows: []model.Row{{model.ColSKU: "sku-1"}}}
			So(s.SetRaw(ctx, raw), ShouldBeNil)

			Convey("Then raw reads succeed but processed reads do not", func() {
				got, err := s.Raw(ctx)
				So(err, ShouldBeNil)
				So(len(got.Rows), ShouldEqual, 1)

				_, err = s.Processed(ctx)
				So(err, ShouldEqual, repository.ErrNotProcessed)
				So(s.IsLoaded(ctx), ShouldBeTrue)
				So(s.IsProcessed(ctx), ShouldBeFalse)
			})

			Convey("And a processed dataset is set", func() {
				So(s.SetProcessed(ctx, model.Dataset{Transactions: []model.Transaction{{SKU: "sku-1"}}}), ShouldBeNil)

				Convey("Then processed reads succeed", func() {
					ds, err := s.Processed(ctx)
					So(err, ShouldBeNil)
					So(ds.Len(), ShouldEqual, 1)
					So(s.IsProcessed(ctx), ShouldBeTrue)
				})

				Convey("And reloading raw data invalidates it", func() {
					So(s.SetRaw(ctx, raw), ShouldBeNil)
					_, err := s.Processed(ctx)
					So(err, ShouldEqual, repository.ErrNotProcessed)
				})
			})
		})
	})

	Convey("Given concurrent readers and writers", t, func() {
		s := repository.NewMemStore()
		raw := model.RawDataset{Rows: []model.Row{{model.ColSKU: "sku-1"}}}
		ds := model.Dataset{Transactions: []model.Transaction{{SKU: "sku-1"}}}

		var wg sync.WaitGroup
		var mu sync.Mutex
		sizes := make([]int, 0, 8)
		for i := 0; i < 8; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				_ = s.SetRaw(ctx, raw)
				_ = s.SetProcessed(ctx, ds)
			}()
			go func() {
				defer wg.Done()
				if got, err := s.Processed(ctx); err == nil {
					mu.Lock()
					sizes = append(sizes, got.Len())
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		Convey("Then a reader sees either nothing or a complete dataset", func() {
			for _, n := range sizes {
				So(n, ShouldEqual, 1)
			}
		})
	})
}
