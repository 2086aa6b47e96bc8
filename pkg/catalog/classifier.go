package catalog

import (
	"sort"

	"github.com/griddlekit/griddle/pkg/grid"
)

// Tier is one discrete size bucket: the smallest magnitude at which it
// applies and the card size it yields.
type Tier struct {
	MinCount int       `json:"min_count" toml:"min_count"`
	Size     grid.Size `json:"size" toml:"size"`
}

// DefaultTiers is the tier table applied to kinds without an explicit
// one: a compact card for sparse data, a half-row card for a typical
// volume, and a tall half-row card for large volumes.
var DefaultTiers = []Tier{
	{MinCount: 0, Size: grid.Size{Width: 4, Height: 1}},
	{MinCount: 10, Size: grid.Size{Width: 6, Height: 2}},
	{MinCount: 50, Size: grid.Size{Width: 6, Height: 3}},
}

// Classifier maps a card kind plus a data-volume magnitude to a size
// tier. It is pure: classification happens once, at card creation, and
// cards never auto-resize afterwards.
type Classifier struct {
	tiers map[string][]Tier
}

// NewClassifier creates a classifier with DefaultTiers for every kind.
func NewClassifier() *Classifier {
	return &Classifier{tiers: make(map[string][]Tier)}
}

// SetTiers installs a tier table for one kind. Tiers are sorted by
// MinCount; an empty table removes the override. Tables whose sizes are
// not monotonic in magnitude are rejected by normalizing: each tier's
// size is raised to at least the previous tier's size.
func (cl *Classifier) SetTiers(kind string, tiers []Tier) {
	if len(tiers) == 0 {
		delete(cl.tiers, kind)
		return
	}
	sorted := append([]Tier(nil), tiers...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].MinCount < sorted[j].MinCount })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Size.Width < sorted[i-1].Size.Width {
			sorted[i].Size.Width = sorted[i-1].Size.Width
		}
		if sorted[i].Size.Height < sorted[i-1].Size.Height {
			sorted[i].Size.Height = sorted[i-1].Size.Height
		}
	}
	cl.tiers[kind] = sorted
}

// SizeFor returns the size tier for a kind at the given magnitude: the
// highest tier whose MinCount the magnitude reaches. Negative magnitudes
// classify like zero; kinds without a tier table use DefaultTiers.
func (cl *Classifier) SizeFor(kind string, magnitude int) grid.Size {
	if magnitude < 0 {
		magnitude = 0
	}
	tiers := cl.tiers[kind]
	if len(tiers) == 0 {
		tiers = DefaultTiers
	}

	size := tiers[0].Size
	for _, t := range tiers {
		if magnitude >= t.MinCount {
			size = t.Size
		}
	}
	return size
}
