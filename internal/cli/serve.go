package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/griddlekit/griddle/internal/api"
	"github.com/griddlekit/griddle/pkg/signal"
)

// shutdownTimeout bounds graceful drain of in-flight requests.
const shutdownTimeout = 5 * time.Second

// serveCommand creates the serve command for running the layout API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		listen   string
		noCache  bool
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout engine over HTTP",
		Long: `Serve the layout engine over HTTP.

The server exposes the current layout, per-card positions, signal ingestion,
and the drag lifecycle under /api. When signal sources are configured, they
are polled on an interval and the layout reacts to visibility changes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, listen, noCache, interval)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "listen address (default: from config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().DurationVar(&interval, "refresh", 30*time.Second, "signal refresh interval (0 disables polling)")

	return cmd
}

// runServe builds the engine stack and runs the HTTP server until the
// context is cancelled.
func (c *CLI) runServe(cmd *cobra.Command, listen string, noCache bool, interval time.Duration) error {
	ctx := withLogger(cmd.Context(), c.Logger)

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if listen == "" {
		listen = cfg.Listen
	}

	store, err := newCache(cmd, cfg, noCache)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	var fetcher *signal.Fetcher
	if len(cfg.Signals.Sources) > 0 {
		fetcher = newFetcher(cfg, store, c.Logger)
	}

	dash, layoutStore := newDashboard(cfg, signalKinds(cfg, nil), c.Logger)
	eng := dash.Engine()

	server := api.New(layoutStore, eng, dash, fetcher, c.Logger)
	server.Refresh(ctx)
	if fetcher != nil && interval > 0 {
		go server.RefreshLoop(ctx, interval)
	}

	httpServer := &http.Server{
		Addr:        listen,
		Handler:     server.Router(),
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("serving layout API", "addr", listen)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve %s: %w", listen, err)
	}
}
