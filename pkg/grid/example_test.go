package grid_test

import (
	"fmt"

	"github.com/griddlekit/griddle/pkg/grid"
)

func ExamplePlaceAll() {
	// Cold-start placement: cards are placed in catalog order, each at
	// the first free slot scanning row-major, then compacted.
	sizes := map[string]grid.Size{
		"repos":   {Width: 6, Height: 2},
		"team":    {Width: 6, Height: 1},
		"billing": {Width: 6, Height: 1},
	}

	l := grid.PlaceAll(12, []string{"repos", "team", "billing"}, func(id string) grid.Size {
		return sizes[id]
	})

	for _, c := range l.Cards {
		fmt.Printf("%s: row %d, col %d (%dx%d)\n", c.ID, c.Row, c.Col, c.Width, c.Height)
	}
	// Output:
	// repos: row 0, col 0 (6x2)
	// team: row 0, col 6 (6x1)
	// billing: row 1, col 6 (6x1)
}

func ExampleCompact() {
	// A card floating below empty rows migrates up until it rests on
	// another card or the top of the grid.
	l := grid.NewLayout(12)
	l = l.Insert(grid.Card{ID: "header", Row: 0, Col: 0, Width: 12, Height: 1})
	l = l.Insert(grid.Card{ID: "floating", Row: 6, Col: 0, Width: 6, Height: 2})

	l = grid.Compact(l)

	c, _ := l.Get("floating")
	fmt.Printf("floating: row %d\n", c.Row)
	// Output:
	// floating: row 1
}
