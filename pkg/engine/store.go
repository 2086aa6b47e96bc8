// Package engine hosts the interactive side of Griddle: the layout store
// that owns the single mutable layout reference, and the drag state
// machine that turns pointer event sequences into layout mutations.
//
// The layout algorithms in pkg/grid are pure; this package is the only
// place state changes. A full operation (cold-start placement, or
// cascade + resolve + compact after a drop) is computed on working copies
// and published with one atomic swap, so consumers never observe an
// intermediate arrangement.
package engine

import (
	"sync"

	"github.com/griddlekit/griddle/pkg/grid"
)

// Position is the placement of a card as exposed to a rendering layer,
// suitable for grid-column/row spans.
type Position struct {
	Row    int `json:"row"`
	Col    int `json:"col"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Store holds the current layout and is its sole source of truth. Reads
// return value snapshots; Swap publishes a complete replacement. The
// zero value is not usable, construct with NewStore.
type Store struct {
	mu     sync.RWMutex
	layout grid.Layout
}

// NewStore creates a store holding an empty layout with the given column
// count.
func NewStore(columns int) *Store {
	return &Store{layout: grid.NewLayout(columns)}
}

// Layout returns a snapshot of the current layout.
func (s *Store) Layout() grid.Layout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.layout.Copy()
}

// Columns returns the grid's column count.
func (s *Store) Columns() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.layout.Columns
}

// Position returns the placement of a card and whether it exists.
func (s *Store) Position(id string) (Position, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.layout.Get(id)
	if !ok {
		return Position{}, false
	}
	return Position{Row: c.Row, Col: c.Col, Width: c.Width, Height: c.Height}, true
}

// Swap atomically replaces the stored layout. Callers pass fully resolved
// layouts only; Swap performs no repair of its own.
func (s *Store) Swap(l grid.Layout) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.layout = l
}
