package grid

// MaxScanRows bounds the row-major slot search. With at most a couple of
// dozen cards on a 12-column grid the first free slot is always found well
// inside this bound; it exists so the scan provably terminates.
const MaxScanRows = 100

// FindSlot scans the grid row-major from row 0 for the first rectangle of
// the given size that collides with nothing in the layout. Oversized
// requests are clamped to the column count first.
//
// If no free slot exists within MaxScanRows the search falls back to the
// origin (0, 0) rather than failing; a subsequent ResolveOverlaps pass
// separates whatever that lands on.
func FindSlot(l Layout, s Size) (row, col int) {
	if s.Width < 1 {
		s.Width = 1
	}
	if s.Height < 1 {
		s.Height = 1
	}
	if s.Width > l.Columns {
		s.Width = l.Columns
	}

	probe := Card{Width: s.Width, Height: s.Height}
	for r := 0; r < MaxScanRows; r++ {
		for c := 0; c+s.Width <= l.Columns; c++ {
			probe.Row, probe.Col = r, c
			if !l.collides(probe) {
				return r, c
			}
		}
	}
	return 0, 0
}

// Place inserts a new card of the given size at the first free slot and
// returns the updated layout. The card is placed as-is, without gravity;
// callers compose Place with Compact (see PlaceAll).
func Place(l Layout, id string, s Size) Layout {
	row, col := FindSlot(l, s)
	return l.Insert(Card{ID: id, Row: row, Col: col, Width: s.Width, Height: s.Height})
}

// PlaceAll builds a cold-start layout: cards are placed in the order given
// by ids, each at its first free slot, then the result is compacted once.
// For a fixed id order and size function the result is deterministic.
func PlaceAll(columns int, ids []string, sizeOf func(id string) Size) Layout {
	l := NewLayout(columns)
	for _, id := range ids {
		l = Place(l, id, sizeOf(id))
	}
	return Compact(l)
}
