// Package cache provides the caching layer for Griddle's data-signal
// fetches and computed layouts.
//
// The Cache interface abstracts the backend; three implementations are
// provided:
//   - FileCache: file-based storage for CLI usage (~/.cache/griddle/)
//   - RedisCache: shared storage for the serve command
//   - NullCache: caching disabled, every Get is a miss
//
// Keys are built by a Keyer so that every consumer derives them the same
// way, and ScopedKeyer adds a prefix for namespace isolation. Cache reads
// and writes emit events through pkg/observability.
package cache

import (
	"context"
	"strings"
	"time"
)

// TTLs for the cached value classes. Signals refresh often; layouts are
// cheap to recompute and cached only to make repeated CLI runs instant.
const (
	TTLSignal = 5 * time.Minute
	TTLLayout = 24 * time.Hour
)

// Cache is the interface for cache backends.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was found; an expired or missing key is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL stores without expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// SignalKeyOpts are the inputs that make two signal fetches distinct.
type SignalKeyOpts struct {
	Source string // source identifier (URL, file path, ...)
}

// LayoutKeyOpts are the layout parameters included in layout cache keys.
type LayoutKeyOpts struct {
	Columns int
}

// Keyer generates cache keys for the value classes Griddle stores.
type Keyer interface {
	// SignalKey generates a key for a card kind's cached data signal.
	SignalKey(kind string, opts SignalKeyOpts) string

	// LayoutKey generates a key for a computed layout, keyed by the
	// hash of the visible card set it was computed from.
	LayoutKey(cardSetHash string, opts LayoutKeyOpts) string
}

// DefaultKeyer is the standard key scheme: a class prefix plus a SHA-256
// hash of the inputs.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// SignalKey generates a key for a cached data signal.
func (k *DefaultKeyer) SignalKey(kind string, opts SignalKeyOpts) string {
	return hashKey("signal", kind, opts)
}

// LayoutKey generates a key for a cached layout.
func (k *DefaultKeyer) LayoutKey(cardSetHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", cardSetHash, opts)
}

// keyType extracts the class prefix from a key for observability events.
func keyType(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return "unknown"
}
