// Package config loads runtime configuration from defaults, an optional
// YAML file and explicit environment overrides, in that order.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/domainlens/domainlens/internal/score"
)

// Config is the full runtime configuration.
type Config struct {
	Server struct {
		// ListenAddr is the HTTP listen address, e.g. ":9090".
		ListenAddr string `yaml:"listen_addr"`

		// RatePerSecond caps accepted requests per second; 0 disables the
		// limiter.
		RatePerSecond float64 `yaml:"rate_per_second"`

		// RateBurst is the limiter's burst allowance.
		RateBurst int `yaml:"rate_burst"`
	} `yaml:"server"`

	Rank struct {
		// Backend selects the dataset form: "shards" (default) or "sqlite".
		Backend string `yaml:"backend"`

		// ShardDir is the directory of per-prefix shard files.
		ShardDir string `yaml:"shard_dir"`

		// SQLitePath is the dataset database path when Backend is "sqlite".
		SQLitePath string `yaml:"sqlite_path"`

		// CacheTTL bounds how long resolved ranks are cached; 0 disables
		// caching.
		CacheTTL time.Duration `yaml:"cache_ttl"`
	} `yaml:"rank"`

	Score score.Weights `yaml:"score_weights"`
}

// Default returns a Config populated with sensible defaults.
func Default() Config {
	var c Config
	c.Server.ListenAddr = ":9090"
	c.Server.RatePerSecond = 50
	c.Server.RateBurst = 100
	c.Rank.Backend = "shards"
	c.Rank.ShardDir = "./data/rank/shards"
	c.Rank.CacheTTL = time.Hour
	c.Score = score.DefaultWeights()
	return c
}

// Load reads the YAML file at path (if non-empty) over the defaults, then
// applies environment overrides.
func Load(path string) (Config, error) {
	c := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return c, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return c, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	// Env overrides (simple, explicit)
	if v := os.Getenv("DOMAINLENS_LISTEN_ADDR"); v != "" {
		c.Server.ListenAddr = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.ListenAddr = ":" + v
	}
	if v := os.Getenv("DOMAINLENS_RANK_BACKEND"); v != "" {
		c.Rank.Backend = v
	}
	if v := os.Getenv("DOMAINLENS_SHARD_DIR"); v != "" {
		c.Rank.ShardDir = v
	}
	if v := os.Getenv("DOMAINLENS_SQLITE_PATH"); v != "" {
		c.Rank.SQLitePath = v
	}
	if v := os.Getenv("DOMAINLENS_RATE_PER_SECOND"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Server.RatePerSecond = f
		}
	}
	return c, nil
}
