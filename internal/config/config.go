// Package config loads griddle configuration from a TOML file with
// environment-variable overrides. Precedence is defaults, then file, then
// environment. Degenerate geometry is normalized rather than rejected;
// signal sources that cannot work (bad kind, bad URL) are rejected.
package config

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/griddlekit/griddle/pkg/cache"
	"github.com/griddlekit/griddle/pkg/catalog"
	"github.com/griddlekit/griddle/pkg/engine"
	apperrors "github.com/griddlekit/griddle/pkg/errors"
	"github.com/griddlekit/griddle/pkg/grid"
)

// Defaults for layout geometry and signal handling.
const (
	DefaultCellWidth  = 100.0
	DefaultCellHeight = 60.0
	DefaultListenAddr = ":8421"
)

// Config is the root griddle configuration.
type Config struct {
	// Columns is the grid width. Values below 1 normalize to the
	// standard 12-column grid.
	Columns int `toml:"columns" env:"GRIDDLE_COLUMNS"`

	// CellWidth and CellHeight map pointer coordinates to grid cells.
	CellWidth  float64 `toml:"cell_width" env:"GRIDDLE_CELL_WIDTH"`
	CellHeight float64 `toml:"cell_height" env:"GRIDDLE_CELL_HEIGHT"`

	// Listen is the HTTP API address for the serve command.
	Listen string `toml:"listen" env:"GRIDDLE_LISTEN"`

	Cache   CacheConfig  `toml:"cache" envPrefix:"GRIDDLE_CACHE_"`
	Signals SignalConfig `toml:"signals" envPrefix:"GRIDDLE_SIGNALS_"`

	// Tiers overrides the size ladder per card kind.
	Tiers map[string][]catalog.Tier `toml:"tiers"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	// Backend is one of "file", "redis", or "none".
	Backend string `toml:"backend" env:"BACKEND"`

	// Dir is the file backend's directory. Empty means the user cache dir.
	Dir string `toml:"dir" env:"DIR"`

	RedisAddr     string `toml:"redis_addr" env:"REDIS_ADDR"`
	RedisPassword string `toml:"redis_password" env:"REDIS_PASSWORD"`
	RedisDB       int    `toml:"redis_db" env:"REDIS_DB"`
}

// SignalConfig tunes signal fetching.
type SignalConfig struct {
	// TTL is the cache lifetime for resolved signals.
	TTL time.Duration `toml:"ttl" env:"TTL"`

	// MinInterval rate-limits live fetches per source.
	MinInterval time.Duration `toml:"min_interval" env:"MIN_INTERVAL"`

	// BreakerThreshold and BreakerCooldown configure the per-source
	// circuit breaker. A zero threshold disables it.
	BreakerThreshold int           `toml:"breaker_threshold" env:"BREAKER_THRESHOLD"`
	BreakerCooldown  time.Duration `toml:"breaker_cooldown" env:"BREAKER_COOLDOWN"`

	// Sources lists signal endpoints in card-catalog order.
	Sources []SourceConfig `toml:"source"`
}

// SourceConfig points one card kind at its signal endpoint.
type SourceConfig struct {
	Kind string `toml:"kind"`
	URL  string `toml:"url"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Columns:    grid.DefaultColumns,
		CellWidth:  DefaultCellWidth,
		CellHeight: DefaultCellHeight,
		Listen:     DefaultListenAddr,
		Cache:      CacheConfig{Backend: "file"},
		Signals: SignalConfig{
			TTL:             cache.TTLSignal,
			BreakerCooldown: time.Minute,
		},
	}
}

// Load builds the effective configuration: defaults, overlaid with the
// TOML file at path (skipped when path is empty or missing), overlaid
// with GRIDDLE_* environment variables, then normalized.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// Missing file is fine, run on defaults.
		case err != nil:
			return Config{}, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "read config %s", path)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return Config{}, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "parse config %s", path)
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "parse environment")
	}

	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// validate rejects signal sources that cannot work: kinds that would
// make unsafe cache keys and URLs the HTTP source cannot fetch.
func (c Config) validate() error {
	for _, src := range c.Signals.Sources {
		if err := apperrors.ValidateKind(src.Kind); err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "signal source %q", src.Kind)
		}
		if err := apperrors.ValidateURL(src.URL); err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "signal source %q", src.Kind)
		}
	}
	return nil
}

// normalize clamps degenerate values to usable defaults.
func (c *Config) normalize() {
	if c.Columns < 1 {
		c.Columns = grid.DefaultColumns
	}
	if c.CellWidth <= 0 {
		c.CellWidth = DefaultCellWidth
	}
	if c.CellHeight <= 0 {
		c.CellHeight = DefaultCellHeight
	}
	if c.Listen == "" {
		c.Listen = DefaultListenAddr
	}
	if c.Signals.TTL <= 0 {
		c.Signals.TTL = cache.TTLSignal
	}
	if c.Signals.BreakerThreshold > 0 && c.Signals.BreakerCooldown <= 0 {
		c.Signals.BreakerCooldown = time.Minute
	}
}

// Metrics returns the pointer-to-cell mapping for the configured geometry.
func (c Config) Metrics() engine.Metrics {
	return engine.Metrics{ColWidth: c.CellWidth, RowHeight: c.CellHeight}
}

// Classifier builds a size classifier with the configured tier overrides.
func (c Config) Classifier() *catalog.Classifier {
	cl := catalog.NewClassifier()
	for kind, tiers := range c.Tiers {
		cl.SetTiers(kind, tiers)
	}
	return cl
}

// OpenCache constructs the configured cache backend. An unknown backend
// name is an error rather than a silent fallback.
func (c CacheConfig) OpenCache(ctx context.Context) (cache.Cache, error) {
	switch c.Backend {
	case "none":
		return cache.NewNullCache(), nil
	case "redis":
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     c.RedisAddr,
			Password: c.RedisPassword,
			DB:       c.RedisDB,
		})
	case "file", "":
		return cache.NewFileCache(c.Dir)
	default:
		return nil, apperrors.New(apperrors.ErrCodeUnsupported, "unknown cache backend %q", c.Backend)
	}
}
