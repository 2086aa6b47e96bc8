package engine

import (
	"sync"

	"github.com/griddlekit/griddle/pkg/catalog"
	"github.com/griddlekit/griddle/pkg/grid"
)

// Dashboard reacts to signal updates by recomputing which cards are
// visible and relaying them out. A relayout only happens when the
// visible set or its order actually changed; unrelated signal refreshes
// leave the layout untouched so unrelated re-renders never thrash it.
type Dashboard struct {
	engine     *Engine
	catalog    *catalog.Catalog
	classifier *catalog.Classifier

	mu      sync.Mutex
	visible []string
	applied bool
}

// NewDashboard wires an engine to a card catalog and size classifier.
func NewDashboard(e *Engine, cat *catalog.Catalog, cls *catalog.Classifier) *Dashboard {
	return &Dashboard{engine: e, catalog: cat, classifier: cls}
}

// Engine returns the drag engine behind this dashboard.
func (d *Dashboard) Engine() *Engine {
	return d.engine
}

// Apply ingests a signal snapshot. It reports whether the visible card
// set changed and a relayout ran. The first call always lays out, even
// when nothing is visible.
func (d *Dashboard) Apply(signals []catalog.Signal) bool {
	counts := make(map[string]int, len(signals))
	for _, sig := range signals {
		counts[sig.Kind] = sig.Count
	}
	visible := d.catalog.Visible(signals)

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.applied && !catalog.Changed(d.visible, visible) {
		return false
	}
	d.visible = visible
	d.applied = true

	d.engine.Sync(visible, func(id string) grid.Size {
		return d.classifier.SizeFor(id, counts[id])
	})
	return true
}

// Visible returns the card ids from the last applied snapshot, in
// catalog order.
func (d *Dashboard) Visible() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, len(d.visible))
	copy(out, d.visible)
	return out
}
