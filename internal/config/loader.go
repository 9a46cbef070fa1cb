package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if RIE_CONFIG is set
//  3. env (prefix RIE_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("RIE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: RIE_ADDR, RIE_MAX_TOP_N, ...
	// Keys map to the flat koanf tags on the struct; underscores preserved.
	envProvider := env.Provider("RIE_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "rie_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if cfg.Addr == "" {
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if cfg.DefaultTopN < 1 || cfg.DefaultTopN > cfg.MaxTopN {
		return nil, fmt.Errorf("%w: default_top_n must be in [1,max_top_n]", ErrInvalidConfig)
	}
	if cfg.MaxTopN < 1 {
		return nil, fmt.Errorf("%w: max_top_n must be positive", ErrInvalidConfig)
	}
	return &cfg, nil
}
