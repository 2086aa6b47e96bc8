package grid

import (
	"fmt"
	"testing"
)

func TestPushDownDisplacesOverlappedCard(t *testing.T) {
	l := NewLayout(12)
	l = l.Insert(Card{ID: "b", Row: 0, Col: 6, Width: 6, Height: 1})

	landing := Card{ID: "a", Row: 0, Col: 3, Width: 6, Height: 2}
	got := PushDown(l, landing)

	b, _ := got.Get("b")
	if b.Row != 2 {
		t.Errorf("b at row %d after cascade, want 2 (pushed by a's height)", b.Row)
	}
	if b.Col != 6 {
		t.Errorf("b moved horizontally to col %d; cascade only pushes down", b.Col)
	}
}

func TestPushDownChainsThroughStack(t *testing.T) {
	// b sits under the landing zone and c sits under b: pushing b down
	// creates a new overlap with c, which must also move.
	l := NewLayout(12)
	l = l.Insert(Card{ID: "b", Row: 0, Col: 0, Width: 6, Height: 1})
	l = l.Insert(Card{ID: "c", Row: 1, Col: 0, Width: 6, Height: 1})

	landing := Card{ID: "a", Row: 0, Col: 0, Width: 6, Height: 1}
	got := PushDown(l, landing)
	got = got.Insert(landing)

	if err := ResolveOverlaps(got).Validate(); err != nil {
		t.Fatalf("layout invalid after cascade: %v", err)
	}
	b, _ := got.Get("b")
	c, _ := got.Get("c")
	if b.Row != 1 {
		t.Errorf("b at row %d, want 1", b.Row)
	}
	if c.Row != 2 {
		t.Errorf("c at row %d, want 2", c.Row)
	}
}

func TestPushDownDisplacesEachCardAtMostOnce(t *testing.T) {
	// Termination bound: for N cards the cascade resolves within N
	// displacements. A tall stack under the landing zone exercises the
	// worst case.
	const n = 15
	l := NewLayout(12)
	for i := 0; i < n; i++ {
		l = l.Insert(Card{ID: fmt.Sprintf("card-%02d", i), Row: i, Col: 0, Width: 6, Height: 1})
	}

	landing := Card{ID: "dropped", Row: 0, Col: 0, Width: 6, Height: 2}
	got := PushDown(l, landing)

	moves := 0
	for _, c := range got.Cards {
		before, _ := l.Get(c.ID)
		if c.Row != before.Row {
			moves++
			if c.Row != before.Row+landing.Height {
				t.Errorf("card %q moved from row %d to %d, want exactly one push of %d",
					c.ID, before.Row, c.Row, landing.Height)
			}
		}
	}
	if moves > n {
		t.Errorf("%d displacements for %d cards, want at most %d", moves, n, n)
	}
}

func TestPushDownIgnoresNonOverlapping(t *testing.T) {
	l := NewLayout(12)
	l = l.Insert(Card{ID: "left", Row: 0, Col: 0, Width: 3, Height: 2})
	l = l.Insert(Card{ID: "right", Row: 0, Col: 9, Width: 3, Height: 2})

	landing := Card{ID: "mid", Row: 0, Col: 4, Width: 4, Height: 2}
	got := PushDown(l, landing)

	left, _ := got.Get("left")
	right, _ := got.Get("right")
	if left.Row != 0 || right.Row != 0 {
		t.Errorf("untouched cards moved: left row %d, right row %d", left.Row, right.Row)
	}
}
