package grid

// PushDown runs the push-down cascade for a card about to land on the
// layout. Every card overlapping the landing rectangle that has not been
// displaced yet this cascade moves down by the landing card's height, then
// is re-checked from its new lower boundary, since pushing one card can
// create new overlaps further down.
//
// The landing card itself must not be part of the layout; callers remove
// it from a working copy first and insert it after the cascade. Each card
// is displaced at most once and every displacement strictly increases its
// row on an unbounded-downward grid, so the cascade resolves within one
// recursive step per card.
func PushDown(l Layout, landing Card) Layout {
	out := l.Copy()
	displaced := make(map[string]bool, len(out.Cards))

	var push func(rect Card)
	push = func(rect Card) {
		for _, c := range out.sorted() {
			if c.ID == landing.ID || displaced[c.ID] {
				continue
			}
			if !Overlaps(rect, c) {
				continue
			}
			displaced[c.ID] = true
			c.Row += landing.Height
			out.set(c)
			push(c)
		}
	}
	push(landing)
	return out
}
