// Package pkg provides the core libraries for the griddle layout engine.
//
// # Overview
//
// Griddle computes adaptive dashboard layouts on a fixed-column grid. Cards
// grow and shrink with the data behind them, vanished cards are removed, and
// everything left is compacted upward so the dashboard never shows holes.
// The pkg directory is organized by concern:
//
//  1. [grid] - Grid geometry, collision detection, and layout algorithms
//  2. [engine] - Drag sessions, the layout store, and catalog synchronization
//  3. [catalog] - The card catalog, signals, and size classification
//  4. [signal] - Signal sources with caching, rate limiting, and breakers
//  5. [cache] - Cache backends (file, Redis, null)
//  6. [observability] - Hooks for layout anomalies (caps, fallbacks)
//
// # Architecture
//
// The typical data flow through griddle:
//
//	Signal sources (HTTP, files, static)
//	         ↓
//	    [signal] package (fetch, cache, degrade)
//	         ↓
//	    [catalog] package (visibility + size tiers)
//	         ↓
//	    [engine] package (sync, drag, atomic swap)
//	         ↓
//	    [grid] package (find-slot, push-down, compact)
//	         ↓
//	    Layout snapshot (JSON, HTTP API, TUI)
//
// # Quick Start
//
// Build a layout from a set of signals:
//
//	import (
//	    "github.com/griddlekit/griddle/pkg/catalog"
//	    "github.com/griddlekit/griddle/pkg/engine"
//	)
//
//	store := engine.NewStore(12)
//	eng := engine.New(store, engine.Metrics{ColWidth: 100, RowHeight: 60}, nil)
//	dash := engine.NewDashboard(eng, catalog.New("repos", "team"), catalog.NewClassifier())
//
//	dash.Apply([]catalog.Signal{
//	    {Kind: "repos", Present: true, Count: 12},
//	    {Kind: "team", Present: true, Count: 3},
//	})
//	layout := store.Layout()
//
// Layouts are deterministic: the same catalog order and signals always
// produce the same card positions.
//
// # Main Packages
//
// [grid] - The pure layout algorithms. Open-interval collision detection,
// row-major first-fit placement, push-down displacement for drag targets,
// and upward compaction. No goroutines, no I/O.
//
// [engine] - Stateful coordination on top of [grid]. The [engine.Store]
// publishes immutable layout snapshots with an atomic swap, the drag state
// machine previews and commits pointer-driven moves, and [engine.Dashboard]
// relayouts only when the visible card set actually changes.
//
// [catalog] - Which cards exist, in what order, and how big each should be
// for a given count. Size tiers are monotonic: more data never yields a
// smaller card.
//
// [signal] - Pulls card data from configured sources. Results are cached,
// failures degrade to absent rather than erroring, and per-source rate
// limiters and circuit breakers fall back to the last known value.
//
// [cache] - Content-addressed caching with file, Redis, and null backends.
// Used by [signal] to avoid refetching and by the CLI for offline runs.
//
// [observability] - Hook points for conditions the engine tolerates but an
// operator may care about: scan caps, compaction caps, fallback placements.
//
// [errors] - Structured error codes and input validation shared by the CLI
// and HTTP API.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/grid/...       # Specific package
//
// [grid]: https://pkg.go.dev/github.com/griddlekit/griddle/pkg/grid
// [engine]: https://pkg.go.dev/github.com/griddlekit/griddle/pkg/engine
// [catalog]: https://pkg.go.dev/github.com/griddlekit/griddle/pkg/catalog
// [signal]: https://pkg.go.dev/github.com/griddlekit/griddle/pkg/signal
// [cache]: https://pkg.go.dev/github.com/griddlekit/griddle/pkg/cache
// [observability]: https://pkg.go.dev/github.com/griddlekit/griddle/pkg/observability
// [errors]: https://pkg.go.dev/github.com/griddlekit/griddle/pkg/errors
// [engine.Store]: https://pkg.go.dev/github.com/griddlekit/griddle/pkg/engine#Store
// [engine.Dashboard]: https://pkg.go.dev/github.com/griddlekit/griddle/pkg/engine#Dashboard
package pkg
