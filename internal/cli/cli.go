// Package cli implements the griddle command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/griddlekit/griddle/internal/config"
	"github.com/griddlekit/griddle/pkg/buildinfo"
	"github.com/griddlekit/griddle/pkg/cache"
	"github.com/griddlekit/griddle/pkg/catalog"
	"github.com/griddlekit/griddle/pkg/engine"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "griddle"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// ConfigPath is bound to the persistent --config flag.
	ConfigPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Griddle lays out dashboard cards on an adaptive grid",
		Long:         `Griddle is a grid layout engine for dashboard cards: it places cards driven by live data signals, compacts them upward, and supports interactive drag rearrangement.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.ConfigPath, "config", "", "config file (TOML)")

	// Register all subcommands
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Shared Construction
// =============================================================================

// loadConfig resolves the effective configuration for a command run.
func (c *CLI) loadConfig() (config.Config, error) {
	return config.Load(c.ConfigPath)
}

// newDashboard builds the engine stack for a configuration.
func newDashboard(cfg config.Config, kinds []string, logger *log.Logger) (*engine.Dashboard, *engine.Store) {
	store := engine.NewStore(cfg.Columns)
	eng := engine.New(store, cfg.Metrics(), logger)
	dash := engine.NewDashboard(eng, catalog.New(kinds...), cfg.Classifier())
	return dash, store
}

// newCache opens the configured cache backend, honoring --no-cache.
func newCache(cmd *cobra.Command, cfg config.Config, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	c, err := cfg.Cache.OpenCache(cmd.Context())
	if err != nil {
		// A broken backend degrades to no caching rather than failing the run.
		loggerFromContext(cmd.Context()).Warn("cache disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	return c, nil
}
