package placement

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/katalvlaran/chronogrid/grid"
)

// DefaultMaxAttempts bounds random draws per placement.
const DefaultMaxAttempts = 100

// obstacleStartGap keeps fallback obstacles off the cells next to the start.
const obstacleStartGap = 2

// Option customizes a Placer.
type Option func(*Placer)

// WithMaxAttempts overrides the per-placement attempt budget.
// Panics if n <= 0.
func WithMaxAttempts(n int) Option {
	if n <= 0 {
		panic("placement: WithMaxAttempts(n<=0)")
	}
	return func(p *Placer) {
		p.maxAttempts = n
	}
}

// Placer draws legal cells from a seeded random stream.
// It is not safe for concurrent use.
type Placer struct {
	rng         *rand.Rand
	maxAttempts int
}

// NewPlacer returns a Placer drawing from rng. Panics on a nil rng.
func NewPlacer(rng *rand.Rand, opts ...Option) *Placer {
	if rng == nil {
		panic("placement: NewPlacer(nil)")
	}
	p := &Placer{rng: rng, maxAttempts: DefaultMaxAttempts}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Place returns a random position that is Empty in every grid in grids and
// allowed by c. All grids must share the dimensions of grids[0].
//
// On exhaustion it returns the origin and ErrPlacementExhausted; callers may
// use the origin as a degenerate best-effort cell.
func (pl *Placer) Place(c *Constraints, grids ...*grid.Grid) (grid.Position, error) {
	if len(grids) == 0 {
		return grid.Position{}, fmt.Errorf("%w: no grid supplied", ErrPlacementExhausted)
	}
	w, h := grids[0].Width, grids[0].Height
	for i := 0; i < pl.maxAttempts; i++ {
		p := grid.Pos(pl.rng.Intn(w), pl.rng.Intn(h))
		if !c.Allows(p) || !emptyInAll(p, grids) {
			continue
		}
		return p, nil
	}
	return grid.Position{}, fmt.Errorf("%w: %d draws on %dx%d", ErrPlacementExhausted, pl.maxAttempts, w, h)
}

// Gate leaves exactly one controlled approach to target in g.
//
// Behavior:
//  1. Enumerate in-bounds orthogonal neighbours of target.
//  2. Entrance candidates exclude start and cells holding objective or
//     mechanism tiles.
//  3. Pick one candidate at random and stamp it with entrance.
//  4. Every other neighbour, except start and objective/mechanism tiles,
//     becomes Wall.
//
// Returns the entrance position, or ErrNoEntrance when no candidate exists
// (g is left unchanged in that case).
func (pl *Placer) Gate(g *grid.Grid, target, start grid.Position, entrance grid.Tile) (grid.Position, error) {
	neighbors := g.Neighbors(target)
	candidates := make([]grid.Position, 0, len(neighbors))
	for _, n := range neighbors {
		if n == start || g.At(n).Mechanism() {
			continue
		}
		candidates = append(candidates, n)
	}
	if len(candidates) == 0 {
		return grid.Position{}, fmt.Errorf("%w: %v", ErrNoEntrance, target)
	}
	door := candidates[pl.rng.Intn(len(candidates))]
	for _, n := range candidates {
		if n != door {
			g.Set(n, grid.Wall)
		}
	}
	g.Set(door, entrance)
	return door, nil
}

// Obstacles places up to n obstacles that sit on cells Empty in both past and
// future and allowed by c. Each preferred group is shuffled and consumed in
// order; remaining obstacles go to random cells at least two steps from start.
// Chosen cells are claimed in c. If fewer than n could be placed the partial
// list is returned with ErrPlacementExhausted.
func (pl *Placer) Obstacles(past, future *grid.Grid, c *Constraints, start grid.Position, n int, preferred ...[]grid.Position) ([]grid.Position, error) {
	out := make([]grid.Position, 0, n)
	take := func(p grid.Position) {
		out = append(out, p)
		c.Claim(p)
	}

	both := []*grid.Grid{past, future}
	for _, group := range preferred {
		cands := slices.Clone(group)
		pl.rng.Shuffle(len(cands), func(i, j int) { cands[i], cands[j] = cands[j], cands[i] })
		for _, p := range cands {
			if len(out) == n {
				return out, nil
			}
			if p != start && c.Allows(p) && emptyInAll(p, both) {
				take(p)
			}
		}
	}

	away := c.Near(start, obstacleStartGap)
	for len(out) < n {
		p, err := pl.Place(away, past, future)
		if err != nil {
			return out, err
		}
		take(p)
	}
	return out, nil
}

func emptyInAll(p grid.Position, grids []*grid.Grid) bool {
	for _, g := range grids {
		if g.At(p) != grid.Empty {
			return false
		}
	}
	return true
}
