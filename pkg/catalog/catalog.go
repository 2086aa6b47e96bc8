// Package catalog derives the visible card set of a dashboard from
// upstream data-presence signals and assigns each card its size tier.
//
// The catalog holds a fixed, ordered list of card kinds. On every signal
// refresh it recomputes which kinds are visible; the resulting id slice
// preserves catalog order, which is what makes cold-start placement
// deterministic. Changed is the stability guard: a refresh that produces
// the same ids in the same order must not trigger a relayout.
package catalog

// Signal is the latest resolved value of one card kind's data source.
// The engine treats the backing data as opaque; only presence and a
// volume magnitude matter, and only at card creation time.
type Signal struct {
	Kind    string `json:"kind"`
	Present bool   `json:"present"`
	Count   int    `json:"count"`
}

// Catalog is a fixed, ordered list of card kinds a dashboard can show.
type Catalog struct {
	kinds []string
}

// New creates a catalog with the given kinds in display priority order.
// Duplicate kinds are dropped, keeping the first occurrence.
func New(kinds ...string) *Catalog {
	seen := make(map[string]bool, len(kinds))
	out := make([]string, 0, len(kinds))
	for _, k := range kinds {
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return &Catalog{kinds: out}
}

// Kinds returns the catalog's kind list in order.
func (c *Catalog) Kinds() []string {
	return append([]string(nil), c.kinds...)
}

// Visible returns the card ids whose signals report data present, in
// catalog order. A kind with no signal at all is treated as absent. A
// present signal with a zero count still yields a card; emptiness is a
// size concern, not a visibility one.
func (c *Catalog) Visible(signals []Signal) []string {
	byKind := make(map[string]Signal, len(signals))
	for _, s := range signals {
		byKind[s.Kind] = s
	}

	out := make([]string, 0, len(c.kinds))
	for _, k := range c.kinds {
		if s, ok := byKind[k]; ok && s.Present {
			out = append(out, k)
		}
	}
	return out
}

// Changed reports whether two visible-id computations differ, comparing
// both membership and order. Callers skip the relayout pass when it
// returns false, so unrelated refreshes cannot thrash the layout.
func Changed(prev, next []string) bool {
	if len(prev) != len(next) {
		return true
	}
	for i := range prev {
		if prev[i] != next[i] {
			return true
		}
	}
	return false
}
