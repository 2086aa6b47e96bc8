package grid

import "testing"

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Card
		want bool
	}{
		{
			name: "identical rectangles",
			a:    Card{ID: "a", Row: 0, Col: 0, Width: 2, Height: 2},
			b:    Card{ID: "b", Row: 0, Col: 0, Width: 2, Height: 2},
			want: true,
		},
		{
			name: "partial horizontal overlap",
			a:    Card{ID: "a", Row: 0, Col: 0, Width: 4, Height: 1},
			b:    Card{ID: "b", Row: 0, Col: 3, Width: 4, Height: 1},
			want: true,
		},
		{
			name: "partial vertical overlap",
			a:    Card{ID: "a", Row: 0, Col: 0, Width: 1, Height: 4},
			b:    Card{ID: "b", Row: 3, Col: 0, Width: 1, Height: 4},
			want: true,
		},
		{
			name: "touching right edges do not overlap",
			a:    Card{ID: "a", Row: 0, Col: 0, Width: 6, Height: 2},
			b:    Card{ID: "b", Row: 0, Col: 6, Width: 6, Height: 1},
			want: false,
		},
		{
			name: "touching bottom edges do not overlap",
			a:    Card{ID: "a", Row: 0, Col: 0, Width: 2, Height: 3},
			b:    Card{ID: "b", Row: 3, Col: 0, Width: 2, Height: 3},
			want: false,
		},
		{
			name: "diagonal corners do not overlap",
			a:    Card{ID: "a", Row: 0, Col: 0, Width: 2, Height: 2},
			b:    Card{ID: "b", Row: 2, Col: 2, Width: 2, Height: 2},
			want: false,
		},
		{
			name: "containment",
			a:    Card{ID: "a", Row: 0, Col: 0, Width: 6, Height: 6},
			b:    Card{ID: "b", Row: 2, Col: 2, Width: 1, Height: 1},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Errorf("Overlaps(%+v, %+v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// The predicate is symmetric.
			if got := Overlaps(tt.b, tt.a); got != tt.want {
				t.Errorf("Overlaps(%+v, %+v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestCardClamp(t *testing.T) {
	tests := []struct {
		name    string
		card    Card
		columns int
		want    Card
	}{
		{
			name:    "already in bounds",
			card:    Card{ID: "a", Row: 1, Col: 2, Width: 3, Height: 2},
			columns: 12,
			want:    Card{ID: "a", Row: 1, Col: 2, Width: 3, Height: 2},
		},
		{
			name:    "negative position pulled to origin",
			card:    Card{ID: "a", Row: -2, Col: -1, Width: 3, Height: 2},
			columns: 12,
			want:    Card{ID: "a", Row: 0, Col: 0, Width: 3, Height: 2},
		},
		{
			name:    "hanging off the right edge",
			card:    Card{ID: "a", Row: 0, Col: 10, Width: 4, Height: 1},
			columns: 12,
			want:    Card{ID: "a", Row: 0, Col: 8, Width: 4, Height: 1},
		},
		{
			name:    "wider than the grid",
			card:    Card{ID: "a", Row: 0, Col: 3, Width: 20, Height: 1},
			columns: 12,
			want:    Card{ID: "a", Row: 0, Col: 0, Width: 12, Height: 1},
		},
		{
			name:    "degenerate size raised to one cell",
			card:    Card{ID: "a", Row: 0, Col: 0, Width: 0, Height: -1},
			columns: 12,
			want:    Card{ID: "a", Row: 0, Col: 0, Width: 1, Height: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.card.Clamp(tt.columns); got != tt.want {
				t.Errorf("Clamp(%d) = %+v, want %+v", tt.columns, got, tt.want)
			}
		})
	}
}

func TestCardEdges(t *testing.T) {
	c := Card{ID: "a", Row: 2, Col: 3, Width: 4, Height: 5}
	if got := c.Bottom(); got != 7 {
		t.Errorf("Bottom() = %d, want 7", got)
	}
	if got := c.Right(); got != 7 {
		t.Errorf("Right() = %d, want 7", got)
	}
}
