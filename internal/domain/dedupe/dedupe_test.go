package dedupe_test

import (
	"context"
	"testing"

	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/internal/domain/dedupe"
	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSeenAndRecord(t *testing.T) {
	Convey("Given a fresh deduper", t, func() {
		d := dedupe.NewInMemoryDeduper()
		ctx := context.Background()

		Convey("When recording a new key", func() {
			So(d.SeenAndRecord(ctx, "a"), ShouldBeFalse)

			Convey("Then the same key is reported as seen", func() {
				So(d.SeenAndRecord(ctx, "a"), ShouldBeTrue)
				So(d.Size(), ShouldEqual, 1)
			})
		})

		Convey("When recording distinct keys", func() {
			So(d.SeenAndRecord(ctx, "a"), ShouldBeFalse)
			So(d.SeenAndRecord(ctx, "b"), ShouldBeFalse)
			So(d.Size(), ShouldEqual, 2)
		})
	})
}

func TestFingerprint(t *testing.T) {
	Convey("Given raw rows", t, func() {
		a := model.Row{"sku": "sku-1", "revenue": "10.00", "category": "kurta"}
		b := model.Row{"category": "kurta", "revenue": "10.00", "sku": "sku-1"}
		c := model.Row{"sku": "sku-1", "revenue": "10.01", "category": "kurta"}

		Convey("Then identical cells hash identically regardless of map order", func() {
			So(dedupe.Fingerprint(a), ShouldEqual, dedupe.Fingerprint(b))
		})

		Convey("Then a single differing cell changes the fingerprint", func() {
			So(dedupe.Fingerprint(a), ShouldNotEqual, dedupe.Fingerprint(c))
		})
	})
}
