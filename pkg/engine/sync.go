package engine

import (
	"github.com/griddlekit/griddle/pkg/grid"
	"github.com/griddlekit/griddle/pkg/observability"
)

// Sync reconciles the store against the visible card-id set reported by
// the catalog. Cards whose ids disappeared are removed, new ids are
// placed at their first free slot in the order given, and one compaction
// run closes any gaps. Existing cards keep their positions. The result is
// published with a single swap.
//
// Callers diff the id set first (see catalog.Changed) so unrelated
// refreshes do not trigger a relayout.
func (e *Engine) Sync(ids []string, sizeOf func(id string) grid.Size) {
	l := e.store.Layout()

	keep := make(map[string]bool, len(ids))
	for _, id := range ids {
		keep[id] = true
	}
	for _, c := range l.Cards {
		if !keep[c.ID] {
			l = l.Remove(c.ID)
		}
	}

	placed := 0
	for _, id := range ids {
		if _, ok := l.Get(id); ok {
			continue
		}
		l = grid.Place(l, id, sizeOf(id))
		placed++
	}

	l = grid.Compact(l)
	e.store.Swap(l)

	if placed > 0 {
		observability.Layout().OnPlace(l.Columns, len(l.Cards))
	}
	e.logger.Debug("synced cards", "visible", len(ids), "placed", placed)
}
