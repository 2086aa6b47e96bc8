package grid

import "github.com/griddlekit/griddle/pkg/observability"

// MaxPasses caps the fixed-point iterations in Compact and ResolveOverlaps.
// Both loops converge in a handful of passes for supported input sizes
// (around twenty cards on twelve columns); the cap is a termination safety
// net, and hitting it is reported through observability.Layout.
const MaxPasses = 50

// Compact applies gravity: every card moves up one row at a time while the
// move is collision-free, in canonical (row, col, id) order, with full
// passes repeated until one produces no change. The result is independent
// of insertion order and idempotent; compacting twice equals compacting
// once.
func Compact(l Layout) Layout {
	out := l.Copy()
	for pass := 0; pass < MaxPasses; pass++ {
		moved := false
		for _, c := range out.sorted() {
			current, _ := out.Get(c.ID)
			for current.Row > 0 {
				up := current
				up.Row--
				if out.collides(up) {
					break
				}
				current = up
				moved = true
			}
			out.set(current)
		}
		if !moved {
			observability.Layout().OnCompact(len(out.Cards), pass+1)
			return out
		}
	}
	observability.Layout().OnPassCapHit("compact", MaxPasses)
	return out
}

// ResolveOverlaps separates every overlapping pair by pushing the card
// later in canonical order down to the earlier card's bottom edge, and
// repeats until a pass yields zero moves. It is the global safety net run
// after the directed push-down cascade; for layouts the cascade fully
// covered it is a no-op.
func ResolveOverlaps(l Layout) Layout {
	out := l.Copy()
	for pass := 0; pass < MaxPasses; pass++ {
		moved := false
		cards := out.sorted()
		for i := range cards {
			first, _ := out.Get(cards[i].ID)
			for j := i + 1; j < len(cards); j++ {
				second, _ := out.Get(cards[j].ID)
				if first.ID == second.ID || !Overlaps(first, second) {
					continue
				}
				second.Row = first.Bottom()
				out.set(second)
				moved = true
			}
		}
		if !moved {
			return out
		}
	}
	observability.Layout().OnPassCapHit("resolve", MaxPasses)
	return out
}
