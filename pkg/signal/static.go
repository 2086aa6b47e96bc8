package signal

import (
	"context"

	"github.com/griddlekit/griddle/pkg/catalog"
)

// StaticSource always returns a fixed signal. Used by the demo command
// and anywhere a backend is not available.
type StaticSource struct {
	Signal catalog.Signal
}

// Static creates a source that reports a present signal with the given count.
func Static(kind string, count int) StaticSource {
	return StaticSource{Signal: catalog.Signal{Kind: kind, Present: true, Count: count}}
}

// Kind returns the card kind this source reports on.
func (s StaticSource) Kind() string { return s.Signal.Kind }

// Fetch returns the fixed signal.
func (s StaticSource) Fetch(context.Context) (catalog.Signal, error) {
	return s.Signal, nil
}
