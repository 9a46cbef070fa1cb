package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("RIE_CONFIG", "")

	Convey("Given no file or env overrides", t, func() {
		cfg, err := config.Load(context.Background())
		So(err, ShouldBeNil)

		Convey("Then defaults apply", func() {
			So(cfg.Addr, ShouldEqual, ":8000")
			So(cfg.DefaultTopN, ShouldEqual, 10)
			So(cfg.MaxTopN, ShouldEqual, 100)
			So(cfg.ExcludeStatuses, ShouldResemble, []string{"cancelled"})
			So(cfg.StatusMapping, ShouldContainKey, "shipped - delivered to buyer")
		})
	})
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("RIE_CONFIG", "")
	t.Setenv("RIE_ADDR", ":9000")
	t.Setenv("RIE_LOG_LEVEL", "debug")

	Convey("Given env overrides", t, func() {
		cfg, err := config.Load(context.Background())
		So(err, ShouldBeNil)
		So(cfg.Addr, ShouldEqual, ":9000")
		So(cfg.LogLevel, ShouldEqual, "debug")
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rie.yaml")
	if err := os.WriteFile(path, []byte("addr: \":7070\"\nmax_top_n: 50\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("RIE_CONFIG", path)

	Convey("Given a YAML config file", t, func() {
		cfg, err := config.Load(context.Background())
		So(err, ShouldBeNil)
		So(cfg.Addr, ShouldEqual, ":7070")
		So(cfg.MaxTopN, ShouldEqual, 50)
	})
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("RIE_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))

	Convey("Given a missing config file", t, func() {
		_, err := config.Load(context.Background())
		So(err, ShouldWrap, config.ErrLoadConfig)
	})
}

func TestLoadInvalidTopN(t *testing.T) {
	t.Setenv("RIE_CONFIG", "")
	t.Setenv("RIE_DEFAULT_TOP_N", "0")

	Convey("Given default_top_n below the allowed range", t, func() {
		_, err := config.Load(context.Background())
		So(err, ShouldWrap, config.ErrInvalidConfig)
	})
}
