package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation. The
// serve command uses this to keep dashboards with different catalogs from
// sharing signal entries in one Redis instance.
//
// Example usage:
//
//	// Dashboard-specific keys
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "dash:prod:")
//
//	// Global keys
//	keyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// SignalKey generates a prefixed key for a cached data signal.
func (k *ScopedKeyer) SignalKey(kind string, opts SignalKeyOpts) string {
	return k.prefix + k.inner.SignalKey(kind, opts)
}

// LayoutKey generates a prefixed key for a cached layout.
func (k *ScopedKeyer) LayoutKey(cardSetHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(cardSetHash, opts)
}
