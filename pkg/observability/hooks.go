// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register
// hooks at startup to receive events about layout computation, drag
// gestures, and cache operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the layout core dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, plain logs)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    observability.SetDragHooks(&myDragHooks{})
//	    // ... run application
//	}
//
// The most important event is OnPassCapHit: the gravity and overlap
// resolution loops carry iteration caps that must never be reached for
// supported input sizes, and a cap hit means a layout was published
// best-effort instead of fully converged.
package observability

import (
	"context"
	"sync"
)

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events from the layout algorithms.
type LayoutHooks interface {
	// OnPlace records a cold-start placement of a card set.
	OnPlace(columns, cardCount int)

	// OnCompact records a gravity compaction run and how many passes it took.
	OnCompact(cardCount, passes int)

	// OnPassCapHit records that a fixed-point loop hit its pass cap and
	// returned a best-effort layout. stage is "compact" or "resolve".
	OnPassCapHit(stage string, passes int)
}

// =============================================================================
// Drag Hooks
// =============================================================================

// DragHooks receives events from the drag engine state machine.
type DragHooks interface {
	// OnDragStart records the start of a drag gesture.
	OnDragStart(cardID string)

	// OnDrop records a completed drop and the resulting target cell.
	OnDrop(cardID string, row, col int)

	// OnCancel records a cancelled drag gesture.
	OnCancel(cardID string)

	// OnProtocolViolation records a gesture that broke the drag protocol,
	// such as starting a second drag while one is active.
	OnProtocolViolation(reason string)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnPlace(int, int)         {}
func (NoopLayoutHooks) OnCompact(int, int)       {}
func (NoopLayoutHooks) OnPassCapHit(string, int) {}

// NoopDragHooks is a no-op implementation of DragHooks.
type NoopDragHooks struct{}

func (NoopDragHooks) OnDragStart(string)         {}
func (NoopDragHooks) OnDrop(string, int, int)    {}
func (NoopDragHooks) OnCancel(string)            {}
func (NoopDragHooks) OnProtocolViolation(string) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	layoutHooks LayoutHooks = NoopLayoutHooks{}
	dragHooks   DragHooks   = NoopDragHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	hooksMu     sync.RWMutex
)

// SetLayoutHooks registers custom layout hooks.
// This should be called once at application startup before any layout operations.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// SetDragHooks registers custom drag hooks.
// This should be called once at application startup before any drag gestures.
func SetDragHooks(h DragHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		dragHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Drag returns the registered drag hooks.
func Drag() DragHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return dragHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	layoutHooks = NoopLayoutHooks{}
	dragHooks = NoopDragHooks{}
	cacheHooks = NoopCacheHooks{}
}
