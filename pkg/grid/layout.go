package grid

import (
	"fmt"
	"sort"
)

// DefaultColumns is the column count of the reference dashboard design.
const DefaultColumns = 12

// Layout is an arrangement of cards on a fixed-column grid. It is a value
// type: all operations return a new Layout and leave the receiver intact,
// so a host can hold one mutable reference and swap it atomically.
//
// Cards are unique by ID and stored in placement order. Algorithms that
// need a scan order sort a private copy by the canonical (row, col, id)
// tie-break instead of relying on slice order.
type Layout struct {
	Columns int    `json:"columns"`
	Cards   []Card `json:"cards"`
}

// NewLayout creates an empty layout with the given column count.
// A non-positive count falls back to DefaultColumns.
func NewLayout(columns int) Layout {
	if columns < 1 {
		columns = DefaultColumns
	}
	return Layout{Columns: columns}
}

// Get returns the card with the given ID and whether it exists.
func (l Layout) Get(id string) (Card, bool) {
	for _, c := range l.Cards {
		if c.ID == id {
			return c, true
		}
	}
	return Card{}, false
}

// Insert returns a layout with the card added, clamped to the grid bounds.
// If a card with the same ID already exists it is replaced in place,
// preserving placement order.
func (l Layout) Insert(c Card) Layout {
	c = c.Clamp(l.Columns)
	out := l.Copy()
	for i := range out.Cards {
		if out.Cards[i].ID == c.ID {
			out.Cards[i] = c
			return out
		}
	}
	out.Cards = append(out.Cards, c)
	return out
}

// Remove returns a layout without the card with the given ID. Removing an
// unknown ID returns the layout unchanged.
func (l Layout) Remove(id string) Layout {
	out := Layout{Columns: l.Columns, Cards: make([]Card, 0, len(l.Cards))}
	for _, c := range l.Cards {
		if c.ID != id {
			out.Cards = append(out.Cards, c)
		}
	}
	return out
}

// Rows returns the number of occupied rows: one past the lowest cell in use.
func (l Layout) Rows() int {
	max := 0
	for _, c := range l.Cards {
		if b := c.Bottom(); b > max {
			max = b
		}
	}
	return max
}

// Validate checks the two layout invariants: every card inside the grid
// bounds and no two distinct cards overlapping. It reports the first
// violation found and is primarily a test and debugging aid; the layout
// algorithms maintain the invariants by construction.
func (l Layout) Validate() error {
	seen := make(map[string]bool, len(l.Cards))
	for _, c := range l.Cards {
		if c.ID == "" {
			return fmt.Errorf("card with empty id")
		}
		if seen[c.ID] {
			return fmt.Errorf("duplicate card id %q", c.ID)
		}
		seen[c.ID] = true
		if c.Width < 1 || c.Height < 1 {
			return fmt.Errorf("card %q has degenerate size %dx%d", c.ID, c.Width, c.Height)
		}
		if c.Row < 0 || c.Col < 0 || c.Col+c.Width > l.Columns {
			return fmt.Errorf("card %q out of bounds at (%d,%d) width %d", c.ID, c.Row, c.Col, c.Width)
		}
	}
	for i := range l.Cards {
		for j := i + 1; j < len(l.Cards); j++ {
			if Overlaps(l.Cards[i], l.Cards[j]) {
				return fmt.Errorf("cards %q and %q overlap", l.Cards[i].ID, l.Cards[j].ID)
			}
		}
	}
	return nil
}

// collides reports whether the card overlaps any other card in the layout,
// excluding the card's own ID.
func (l Layout) collides(c Card) bool {
	for _, other := range l.Cards {
		if other.ID == c.ID {
			continue
		}
		if Overlaps(c, other) {
			return true
		}
	}
	return false
}

// Copy returns a deep copy of the layout whose card slice shares no
// backing storage with the receiver.
func (l Layout) Copy() Layout {
	out := Layout{Columns: l.Columns}
	out.Cards = append([]Card(nil), l.Cards...)
	return out
}

// sorted returns the cards in canonical (row, col, id) order.
func (l Layout) sorted() []Card {
	cards := append([]Card(nil), l.Cards...)
	sort.Slice(cards, func(i, j int) bool { return less(cards[i], cards[j]) })
	return cards
}

// set replaces the card with the same ID, keeping placement order.
func (l *Layout) set(c Card) {
	for i := range l.Cards {
		if l.Cards[i].ID == c.ID {
			l.Cards[i] = c
			return
		}
	}
}
