package placement

import (
	"errors"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/chronogrid/grid"
)

var (
	// ErrPlacementExhausted indicates no legal cell was found within the attempt budget.
	ErrPlacementExhausted = errors.New("placement: attempts exhausted")
	// ErrNoEntrance indicates a gate target has no neighbour that can hold an entrance.
	ErrNoEntrance = errors.New("placement: no usable entrance around target")
)

// Constraints is the exclusion set plus an optional distance requirement.
// Copies made by Near share the claimed set with the original.
type Constraints struct {
	claimed     mapset.Set[grid.Position]
	anchor      grid.Position
	hasAnchor   bool
	minDistance int
}

// NewConstraints returns constraints with the given positions already claimed.
func NewConstraints(claimed ...grid.Position) *Constraints {
	c := &Constraints{claimed: mapset.New[grid.Position]()}
	c.Claim(claimed...)
	return c
}

// Claim adds positions to the exclusion set.
func (c *Constraints) Claim(ps ...grid.Position) {
	for _, p := range ps {
		c.claimed.Put(p)
	}
}

// Claimed reports whether p is excluded.
func (c *Constraints) Claimed(p grid.Position) bool {
	return c.claimed.Has(p)
}

// Len returns the number of claimed positions.
func (c *Constraints) Len() int {
	return c.claimed.Size()
}

// Near returns a copy that additionally requires Manhattan distance ≥ minDistance
// from anchor. Claims made through the copy are visible in c.
func (c *Constraints) Near(anchor grid.Position, minDistance int) *Constraints {
	return &Constraints{
		claimed:     c.claimed,
		anchor:      anchor,
		hasAnchor:   true,
		minDistance: minDistance,
	}
}

// Allows reports whether p passes the exclusion and distance rules.
func (c *Constraints) Allows(p grid.Position) bool {
	if c.claimed.Has(p) {
		return false
	}
	return !c.hasAnchor || p.Manhattan(c.anchor) >= c.minDistance
}
