package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/griddlekit/griddle/internal/config"
	"github.com/griddlekit/griddle/pkg/cache"
	"github.com/griddlekit/griddle/pkg/engine"
	"github.com/griddlekit/griddle/pkg/signal"
)

// demoSources back the demo grid with fixed signals. The counts exercise
// all three size tiers.
var demoSources = []signal.Source{
	signal.Static("repos", 12),
	signal.Static("team", 3),
	signal.Static("billing", 1),
	signal.Static("alerts", 60),
}

// demoCommand creates the demo command for the interactive grid.
func (c *CLI) demoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the interactive grid demo in the terminal",
		Long: `Run the interactive grid demo in the terminal.

The demo seeds the grid from fixed signal sources and renders it as a
cell raster. Arrow keys move a synthesized pointer, space picks up and
drops the card under it, escape cancels an active drag.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDemo(cmd)
		},
	}
}

// demoDashboard seeds a dashboard through the fetcher pipeline, the same
// path live sources take, just without a backend or cache.
func demoDashboard(ctx context.Context, cfg config.Config, logger *log.Logger) (*engine.Dashboard, *engine.Store) {
	fetcher := signal.NewFetcher(demoSources, cache.NewNullCache(), logger)
	dash, store := newDashboard(cfg, fetcher.Kinds(), logger)
	dash.Apply(fetcher.Refresh(ctx))
	return dash, store
}

// runDemo seeds a dashboard from the demo sources and runs the TUI.
func (c *CLI) runDemo(cmd *cobra.Command) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	dash, store := demoDashboard(cmd.Context(), cfg, c.Logger)

	model := NewGridModel(store, dash.Engine(), cfg.Metrics())
	if _, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run(); err != nil {
		return fmt.Errorf("run demo: %w", err)
	}
	return nil
}
