package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/griddlekit/griddle/internal/config"
	"github.com/griddlekit/griddle/pkg/cache"
	"github.com/griddlekit/griddle/pkg/catalog"
	apperrors "github.com/griddlekit/griddle/pkg/errors"
	"github.com/griddlekit/griddle/pkg/grid"
	"github.com/griddlekit/griddle/pkg/signal"
)

// layoutCommand creates the layout command for computing card layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		fetch   bool
		columns int
	)

	cmd := &cobra.Command{
		Use:   "layout [signals.json]",
		Short: "Compute a card layout from a data-signal snapshot",
		Long: `Compute a card layout from a data-signal snapshot.

The layout command takes a signals.json file (an array of {kind, present,
count} objects) and computes the cold-start grid layout: cards are placed
in catalog order, sized by their signal magnitude, and compacted upward.
The output is a layout.json file that a dashboard front end can consume.

With --fetch the snapshot is pulled live from the signal sources in the
config file instead of being read from disk.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) > 0 {
				input = args[0]
			}
			return c.runLayout(cmd, input, output, noCache, fetch, columns)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&fetch, "fetch", false, "fetch signals from configured sources instead of a file")
	cmd.Flags().IntVar(&columns, "columns", 0, "grid column count (default: from config)")

	return cmd
}

// runLayout resolves signals, computes the layout, and writes output.
func (c *CLI) runLayout(cmd *cobra.Command, input, output string, noCache, fetch bool, columns int) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if columns > 0 {
		cfg.Columns = columns
	}

	var signals []catalog.Signal
	switch {
	case fetch:
		signals, err = c.fetchSignals(cmd, cfg, noCache)
	case input != "":
		signals, err = readSignalsFile(input)
	default:
		return fmt.Errorf("need a signals file argument or --fetch")
	}
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	dash, store := newDashboard(cfg, signalKinds(cfg, signals), c.Logger)
	dash.Apply(signals)
	layout := store.Layout()
	prog.done(fmt.Sprintf("Resolved %d signals", len(signals)))

	outputPath := output
	if outputPath == "" {
		if input == "" {
			outputPath = "griddle.layout.json"
		} else {
			outputPath = strings.TrimSuffix(input, filepath.Ext(input)) + ".layout.json"
		}
	}

	if err := grid.WriteLayoutFile(layout, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(layout.Cards), layout.Rows(), false)
	printNewline()
	printNextStep("Serve", "griddle serve")

	return nil
}

// fetchSignals pulls a live snapshot from the configured sources.
func (c *CLI) fetchSignals(cmd *cobra.Command, cfg config.Config, noCache bool) ([]catalog.Signal, error) {
	if len(cfg.Signals.Sources) == 0 {
		return nil, fmt.Errorf("--fetch needs signal sources in the config file")
	}

	store, err := newCache(cmd, cfg, noCache)
	if err != nil {
		return nil, err
	}
	defer func() { _ = store.Close() }()

	fetcher := newFetcher(cfg, store, c.Logger)

	spinner := newSpinnerWithContext(cmd.Context(), fmt.Sprintf("Fetching %d signal sources...", len(cfg.Signals.Sources)))
	spinner.Start()
	signals := fetcher.Refresh(cmd.Context())
	if spinner.Cancelled() {
		spinner.StopWithError("Fetch cancelled")
		return nil, context.Canceled
	}
	spinner.StopWithSuccess(fmt.Sprintf("Fetched %d signals", len(signals)))

	return signals, nil
}

// newFetcher builds a signal fetcher from the configured sources.
func newFetcher(cfg config.Config, store cache.Cache, logger *charmlog.Logger) *signal.Fetcher {
	sources := make([]signal.Source, len(cfg.Signals.Sources))
	for i, sc := range cfg.Signals.Sources {
		sources[i] = signal.NewHTTPSource(sc.Kind, sc.URL)
	}

	opts := []signal.Option{signal.WithTTL(cfg.Signals.TTL)}
	if cfg.Signals.MinInterval > 0 {
		opts = append(opts, signal.WithLimit(cfg.Signals.MinInterval))
	}
	if cfg.Signals.BreakerThreshold > 0 {
		opts = append(opts, signal.WithBreaker(cfg.Signals.BreakerThreshold, cfg.Signals.BreakerCooldown))
	}
	return signal.NewFetcher(sources, store, logger, opts...)
}

// readSignalsFile loads a JSON array of signals from disk.
func readSignalsFile(path string) ([]catalog.Signal, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "signals file %s does not exist", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read signals %s: %w", path, err)
	}
	var signals []catalog.Signal
	if err := json.Unmarshal(data, &signals); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidSignal, err, "parse signals %s", path)
	}
	return signals, nil
}

// signalKinds derives the card-catalog order for a run: configured source
// order when present, otherwise the order kinds appear in the snapshot.
func signalKinds(cfg config.Config, signals []catalog.Signal) []string {
	if len(cfg.Signals.Sources) > 0 {
		kinds := make([]string, len(cfg.Signals.Sources))
		for i, sc := range cfg.Signals.Sources {
			kinds[i] = sc.Kind
		}
		return kinds
	}
	kinds := make([]string, 0, len(signals))
	for _, sig := range signals {
		kinds = append(kinds, sig.Kind)
	}
	return kinds
}
