package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	apperrors "github.com/griddlekit/griddle/pkg/errors"
	"github.com/griddlekit/griddle/pkg/grid"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "griddle.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Columns != grid.DefaultColumns {
		t.Errorf("Columns = %d, want %d", cfg.Columns, grid.DefaultColumns)
	}
	if cfg.Cache.Backend != "file" {
		t.Errorf("Cache.Backend = %q, want %q", cfg.Cache.Backend, "file")
	}
	if cfg.Listen != DefaultListenAddr {
		t.Errorf("Listen = %q, want %q", cfg.Listen, DefaultListenAddr)
	}
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	if cfg.Columns != want.Columns || cfg.Listen != want.Listen || cfg.Cache.Backend != want.Cache.Backend {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Columns != grid.DefaultColumns {
		t.Errorf("Columns = %d, want %d", cfg.Columns, grid.DefaultColumns)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
columns = 24
cell_width = 80.0
listen = ":9000"

[cache]
backend = "none"

[[signals.source]]
kind = "repos"
url = "http://signals.local/repos"

[[signals.source]]
kind = "team"
url = "http://signals.local/team"

[tiers]
repos = [{min_count = 0, size = {width = 3, height = 1}}, {min_count = 5, size = {width = 6, height = 2}}]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Columns != 24 {
		t.Errorf("Columns = %d, want 24", cfg.Columns)
	}
	if cfg.CellWidth != 80 {
		t.Errorf("CellWidth = %v, want 80", cfg.CellWidth)
	}
	if cfg.CellHeight != DefaultCellHeight {
		t.Errorf("CellHeight = %v, want default %v", cfg.CellHeight, DefaultCellHeight)
	}
	if cfg.Cache.Backend != "none" {
		t.Errorf("Cache.Backend = %q, want %q", cfg.Cache.Backend, "none")
	}
	if len(cfg.Signals.Sources) != 2 || cfg.Signals.Sources[0].Kind != "repos" || cfg.Signals.Sources[1].Kind != "team" {
		t.Errorf("Sources = %+v, want repos then team", cfg.Signals.Sources)
	}

	cl := cfg.Classifier()
	if got := cl.SizeFor("repos", 5); got != (grid.Size{Width: 6, Height: 2}) {
		t.Errorf("SizeFor(repos, 5) = %+v, want 6x2", got)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "columns = 24\n")
	t.Setenv("GRIDDLE_COLUMNS", "6")
	t.Setenv("GRIDDLE_CACHE_BACKEND", "none")
	t.Setenv("GRIDDLE_SIGNALS_TTL", "10m")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Columns != 6 {
		t.Errorf("Columns = %d, want env override 6", cfg.Columns)
	}
	if cfg.Cache.Backend != "none" {
		t.Errorf("Cache.Backend = %q, want %q", cfg.Cache.Backend, "none")
	}
	if cfg.Signals.TTL != 10*time.Minute {
		t.Errorf("Signals.TTL = %v, want 10m", cfg.Signals.TTL)
	}
}

func TestLoadNormalizesDegenerateValues(t *testing.T) {
	path := writeConfig(t, "columns = -3\ncell_width = 0.0\nlisten = \"\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Columns != grid.DefaultColumns {
		t.Errorf("Columns = %d, want normalized %d", cfg.Columns, grid.DefaultColumns)
	}
	if cfg.CellWidth != DefaultCellWidth {
		t.Errorf("CellWidth = %v, want normalized %v", cfg.CellWidth, DefaultCellWidth)
	}
	if cfg.Listen != DefaultListenAddr {
		t.Errorf("Listen = %q, want normalized %q", cfg.Listen, DefaultListenAddr)
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := writeConfig(t, "columns = = 12\n")
	if _, err := Load(path); err == nil {
		t.Error("Load() on malformed TOML succeeded, want error")
	}
}

func TestMetrics(t *testing.T) {
	cfg := Default()
	cfg.CellWidth = 80
	cfg.CellHeight = 40

	m := cfg.Metrics()
	if m.ColWidth != 80 || m.RowHeight != 40 {
		t.Errorf("Metrics() = %+v, want 80x40", m)
	}
}

func TestOpenCacheBackends(t *testing.T) {
	ctx := context.Background()

	c, err := CacheConfig{Backend: "none"}.OpenCache(ctx)
	if err != nil {
		t.Fatalf("OpenCache(none): %v", err)
	}
	if c == nil {
		t.Fatal("OpenCache(none) returned nil cache")
	}

	c, err = CacheConfig{Backend: "file", Dir: t.TempDir()}.OpenCache(ctx)
	if err != nil {
		t.Fatalf("OpenCache(file): %v", err)
	}
	if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Errorf("file cache Set: %v", err)
	}

	_, err = CacheConfig{Backend: "memcached"}.OpenCache(ctx)
	if !apperrors.Is(err, apperrors.ErrCodeUnsupported) {
		t.Errorf("OpenCache(memcached) error = %v, want code %v", err, apperrors.ErrCodeUnsupported)
	}
}

func TestLoadRejectsInvalidSource(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{
			name: "bad url scheme",
			toml: "[[signals.source]]\nkind = \"repos\"\nurl = \"file:///etc/passwd\"\n",
		},
		{
			name: "uppercase kind",
			toml: "[[signals.source]]\nkind = \"Repos\"\nurl = \"https://example.com/repos\"\n",
		},
		{
			name: "empty kind",
			toml: "[[signals.source]]\nkind = \"\"\nurl = \"https://example.com/repos\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.toml))
			if !apperrors.Is(err, apperrors.ErrCodeInvalidConfig) {
				t.Errorf("Load error = %v, want code %v", err, apperrors.ErrCodeInvalidConfig)
			}
		})
	}
}
