package grid

// Card is a rectangular widget placed on the grid. Positions and sizes are
// in whole grid units: Row/Col name the top-left cell, Width/Height the
// span. A placed card satisfies Row >= 0, Col >= 0 and Col+Width <= the
// layout's column count.
type Card struct {
	ID     string `json:"id"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Size is a discrete (width, height) tier in grid units.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Bottom returns the exclusive lower row boundary of the card.
func (c Card) Bottom() int { return c.Row + c.Height }

// Right returns the exclusive right column boundary of the card.
func (c Card) Right() int { return c.Col + c.Width }

// Clamp normalizes the card so it fits a grid with the given column count.
// Degenerate sizes are raised to one cell, widths wider than the grid are
// cut to the column count, and the position is pulled inside the bounds.
// Clamping never rejects a card; an interactive layout must always have
// somewhere to put it.
func (c Card) Clamp(columns int) Card {
	if columns < 1 {
		columns = 1
	}
	if c.Width < 1 {
		c.Width = 1
	}
	if c.Height < 1 {
		c.Height = 1
	}
	if c.Width > columns {
		c.Width = columns
	}
	if c.Row < 0 {
		c.Row = 0
	}
	if c.Col < 0 {
		c.Col = 0
	}
	if c.Col+c.Width > columns {
		c.Col = columns - c.Width
	}
	return c
}

// Overlaps reports whether two cards occupy at least one common cell,
// using open-interval tests on both axes. Cards that merely touch edges do
// not overlap. Callers must exclude self-comparison by ID; the predicate
// itself does not look at identity.
func Overlaps(a, b Card) bool {
	return a.Col < b.Col+b.Width &&
		a.Col+a.Width > b.Col &&
		a.Row < b.Row+b.Height &&
		a.Row+a.Height > b.Row
}

// less orders cards by the canonical (row, col, id) tie-break. Every
// algorithm in this package that needs a scan order uses this ordering so
// results never depend on insertion order.
func less(a, b Card) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	if a.Col != b.Col {
		return a.Col < b.Col
	}
	return a.ID < b.ID
}
