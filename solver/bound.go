package solver

import (
	"math"

	"github.com/katalvlaran/chronogrid/grid"
)

// unreachable marks a (cell, layer) node with no route to the goal.
const unreachable = math.MaxInt32

// Past layers are lever × key stage; future layers are "holds key".
const (
	keyStages    = 3 // none, holding, deposited
	pastLayers   = 2 * keyStages
	futureLayers = 2
)

// bound is a lower bound on the moves left from any state, built from static
// distance tables over the terrain. Obstacles are ignored and gates the
// agent cannot open itself are treated as open, so every table underestimates.
//
// Each table is a shortest-path distance over (cell, layer) nodes where a
// layer tracks the flags the agent changes by entering tiles. Real moves are
// edges of those graphs, so the bound drops by at most one per move and a
// search pruned by it still dequeues states in breadth-first order.
type bound struct {
	width, area int
	// pastAny: past agent to the goal in any key stage.
	pastAny []int32
	// pastDeposit: past agent to the goal after depositing the key.
	pastDeposit []int32
	// future: future agent to the goal.
	future []int32
	// doorless: goal reachable in the future grid without crossing a Door.
	doorless []int32
}

func newBound(p *Puzzle) *bound {
	m := p.Mechanisms
	atGoal := func(q grid.Position, _ int) bool { return q == p.Goal }

	pastEnter := func(t grid.Tile, layer int) uint8 {
		lever, stage := layer/keyStages, layer%keyStages
		switch t {
		case grid.Wall:
			return 0
		case grid.LeverGate:
			if m.Levers && lever == 0 {
				return 0
			}
		case grid.Key:
			if m.Keys && stage == 0 {
				stage = 1
			}
		case grid.Chest:
			if m.Keys && stage == 1 {
				stage = 2
			}
		case grid.Lever:
			if m.Levers {
				lever = 1
			}
		}
		return 1 << (lever*keyStages + stage)
	}
	futureEnter := func(t grid.Tile, layer int) uint8 {
		switch t {
		case grid.Wall:
			return 0
		case grid.Door:
			if m.Keys && layer == 0 {
				return 0
			}
		case grid.Chest:
			// Retrieval also needs the deposit, which this table cannot see.
			if m.Keys && layer == 0 {
				return 1<<0 | 1<<1
			}
		}
		return 1 << layer
	}
	noDoor := func(t grid.Tile, _ int) uint8 {
		if t == grid.Wall || (m.Keys && t == grid.Door) {
			return 0
		}
		return 1
	}

	deposited := func(q grid.Position, layer int) bool { return q == p.Goal && layer%keyStages == 2 }

	return &bound{
		width:       p.Past.Width,
		area:        p.Past.Width * p.Past.Height,
		pastAny:     distances(p.Past, pastLayers, pastEnter, atGoal),
		pastDeposit: distances(p.Past, pastLayers, pastEnter, deposited),
		future:      distances(p.Future, futureLayers, futureEnter, atGoal),
		doorless:    distances(p.Future, 1, noDoor, atGoal),
	}
}

// estimate returns the bound for s, or unreachable when no solution can
// follow from s.
func (b *bound) estimate(s State) int {
	pastTable := b.pastAny
	if s.Flags&FutureHoldsKey == 0 && b.at(b.doorless, s.Future, 0) == unreachable {
		// The future agent must cross a Door, so the past agent must deposit first.
		pastTable = b.pastDeposit
	}

	stage := 0
	switch {
	case s.Flags.Has(KeyDeposited):
		stage = 2
	case s.Flags.Has(HoldsKey):
		stage = 1
	}
	lever := 0
	if s.Flags.Has(LeverEngaged) {
		lever = 1
	}
	held := 0
	if s.Flags.Has(FutureHoldsKey) {
		held = 1
	}

	return max(b.at(pastTable, s.Past, lever*keyStages+stage), b.at(b.future, s.Future, held))
}

func (b *bound) at(table []int32, q grid.Position, layer int) int {
	layers := len(table) / b.area
	return int(table[(q.Y*b.width+q.X)*layers+layer])
}

// distances runs a reverse breadth-first search from every target node.
// enter(t, layer) is the bitmask of layers an agent in layer ends up in after
// entering a cell holding t; zero means the cell cannot be entered.
// The result is indexed (y*width+x)*layers + layer.
func distances(g *grid.Grid, layers int, enter func(t grid.Tile, layer int) uint8, target func(q grid.Position, layer int) bool) []int32 {
	dist := make([]int32, g.Width*g.Height*layers)
	for i := range dist {
		dist[i] = unreachable
	}
	node := func(q grid.Position, layer int) int { return (q.Y*g.Width+q.X)*layers + layer }

	var queue []int
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			q := grid.Pos(x, y)
			for l := 0; l < layers; l++ {
				if target(q, l) {
					dist[node(q, l)] = 0
					queue = append(queue, node(q, l))
				}
			}
		}
	}

	for qi := 0; qi < len(queue); qi++ {
		n := queue[qi]
		cellIdx, to := n/layers, n%layers
		q := grid.Pos(cellIdx%g.Width, cellIdx/g.Width)
		t := g.At(q)
		for _, from := range g.Neighbors(q) {
			for l := 0; l < layers; l++ {
				m := node(from, l)
				if dist[m] != unreachable || enter(t, l)&(1<<to) == 0 {
					continue
				}
				dist[m] = dist[n] + 1
				queue = append(queue, m)
			}
		}
	}
	return dist
}
