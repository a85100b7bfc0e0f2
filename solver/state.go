package solver

import (
	"slices"

	"github.com/katalvlaran/chronogrid/grid"
)

// MaxObstacles bounds the obstacle list so StateKey stays a fixed-size,
// comparable value.
const MaxObstacles = 6

// Flags is the shared inventory and mechanism bitset.
type Flags uint8

const (
	// HoldsKey: the past agent carries the key.
	HoldsKey Flags = 1 << iota
	// KeyDeposited: the past agent has placed the key in the chest.
	KeyDeposited
	// FutureHoldsKey: the future agent has retrieved the key from the chest.
	FutureHoldsKey
	// LeverEngaged: the lever has been pulled; lever gates are open in both timelines.
	LeverEngaged
)

// Has reports whether every bit of x is set.
func (f Flags) Has(x Flags) bool { return f&x == x }

// State is one joint configuration of both timelines.
// Obstacles is kept sorted by Position.Compare and must not be mutated in
// place; transitions copy it before changing it.
type State struct {
	Past, Future grid.Position
	Flags        Flags
	Obstacles    []grid.Position
}

// StateKey is the comparable visited-set key of a State.
// Two states with the same positions, flags and obstacle set produce the same
// key regardless of obstacle order. Coordinates are packed into 16 bits each.
type StateKey struct {
	Past, Future cell
	Flags        Flags
	N            uint8
	Obstacles    [MaxObstacles]cell
}

// cell is a Position packed for StateKey.
type cell struct{ x, y uint16 }

func pack(p grid.Position) cell { return cell{x: uint16(p.X), y: uint16(p.Y)} }

func (c cell) compare(d cell) int {
	switch {
	case c.x != d.x:
		return int(c.x) - int(d.x)
	case c.y != d.y:
		return int(c.y) - int(d.y)
	}
	return 0
}

// Key canonicalizes s. Obstacles beyond MaxObstacles are ignored; Validate
// rejects such puzzles before a search starts.
func (s State) Key() StateKey {
	k := StateKey{Past: pack(s.Past), Future: pack(s.Future), Flags: s.Flags}
	n := min(len(s.Obstacles), MaxObstacles)
	for i, o := range s.Obstacles[:n] {
		k.Obstacles[i] = pack(o)
	}
	k.N = uint8(n)
	slices.SortFunc(k.Obstacles[:n], cell.compare)
	return k
}

// Canonical returns a copy of s with a freshly sorted obstacle slice.
func (s State) Canonical() State {
	c := s
	c.Obstacles = slices.Clone(s.Obstacles)
	slices.SortFunc(c.Obstacles, grid.Position.Compare)
	return c
}

// ObstacleAt returns the index of the obstacle at p, or -1.
func (s State) ObstacleAt(p grid.Position) int {
	return slices.Index(s.Obstacles, p)
}

// Solved reports whether both agents stand on goal.
func (s State) Solved(goal grid.Position) bool {
	return s.Past == goal && s.Future == goal
}

// InitialState places both agents on the start with no flags set. The
// obstacle list is dropped unless the Obstacles mechanism is enabled.
func (p *Puzzle) InitialState() State {
	s := State{Past: p.Start, Future: p.Start}
	if p.Mechanisms.Obstacles {
		s.Obstacles = p.Obstacles
	}
	return s.Canonical()
}
