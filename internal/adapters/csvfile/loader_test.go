package csvfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/internal/adapters/csvfile"
	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	loader := csvfile.New()

	Convey("Given a well-formed sales file", t, func() {
		path := writeFile(t, "sales.csv",
			"Order ID,Order Date,SKU,Category,Ship-State,Revenue\n"+
				"o1,2024-01-01,SKU-1,Kurta,Goa,100\n"+
				"o2,2024-01-02,SKU-2,Top,Delhi,50.50\n")

		Convey("When loading it", func() {
			raw, err := loader.Load(ctx, path)
			So(err, ShouldBeNil)

			Convey("Then headers are standardized", func() {
				So(raw.Columns, ShouldResemble, []string{
					"order_id", "order_date", "sku", "category", "ship_state", "revenue",
				})
			})

			Convey("Then rows keep their raw cell values", func() {
				So(len(raw.Rows), ShouldEqual, 2)
				So(raw.Rows[0][model.ColSKU], ShouldEqual, "SKU-1")
				So(raw.Rows[1][model.ColRevenue], ShouldEqual, "50.50")
			})
		})
	})

	Convey("Given a missing path", t, func() {
		_, err := loader.Load(ctx, filepath.Join(t.TempDir(), "nope.csv"))
		So(err, ShouldWrap, csvfile.ErrFileNotFound)
	})

	Convey("Given a directory path", t, func() {
		_, err := loader.Load(ctx, t.TempDir())
		So(err, ShouldWrap, csvfile.ErrFileNotFound)
	})

	Convey("Given an empty file", t, func() {
		path := writeFile(t, "empty.csv", "")
		_, err := loader.Load(ctx, path)
		So(err, ShouldWrap, csvfile.ErrMalformedInput)
	})

	Convey("Given a header-only file", t, func() {
		path := writeFile(t, "header.csv", "order_date,sku,category,ship_state,revenue\n")
		_, err := loader.Load(ctx, path)
		So(err, ShouldWrap, csvfile.ErrMalformedInput)
	})

	Convey("Given ragged rows", t, func() {
		path := writeFile(t, "ragged.csv",
			"order_date,sku,category,ship_state,revenue\n"+
				"2024-01-01,sku-1,kurta,goa\n")
		_, err := loader.Load(ctx, path)
		So(err, ShouldWrap, csvfile.ErrMalformedInput)
	})

	Convey("Given a file missing a required column", t, func() {
		path := writeFile(t, "noschema.csv",
			"order_date,sku,category,revenue\n"+
				"2024-01-01,sku-1,kurta,100\n")
		_, err := loader.Load(ctx, path)
		So(err, ShouldWrap, csvfile.ErrSchema)
	})

	Convey("Given a tab-delimited file and a matching loader", t, func() {
		tabLoader := csvfile.New(csvfile.WithComma('\t'))
		path := writeFile(t, "sales.tsv",
			"order_date\tsku\tcategory\tship_state\trevenue\n"+
				"2024-01-01\tsku-1\tkurta\tgoa\t100\n")
		raw, err := tabLoader.Load(ctx, path)
		So(err, ShouldBeNil)
		So(len(raw.Rows), ShouldEqual, 1)
	})
}
