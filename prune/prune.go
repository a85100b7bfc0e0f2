package prune

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/chronogrid/grid"
	"github.com/katalvlaran/chronogrid/solver"
)

// ErrUnsolvedPath is returned when the supplied path does not solve the puzzle.
var ErrUnsolvedPath = errors.New("prune: path does not reach the goal")

// Result holds the pruned grids.
type Result struct {
	Past, Future *grid.Grid
	// Removed counts Empty cells turned into Wall across both timelines.
	Removed int
}

// Prune returns copies of p's grids with every Empty cell unused by path
// turned into Wall.
func Prune(p *solver.Puzzle, path []grid.Direction) (*Result, error) {
	trace, err := solver.Replay(p, path)
	if err != nil {
		return nil, fmt.Errorf("prune: %w", err)
	}
	if !trace.Solved {
		return nil, fmt.Errorf("%w: final state past %v future %v", ErrUnsolvedPath,
			trace.Final().Past, trace.Final().Future)
	}

	pastSeen := mapset.New[grid.Position]()
	futureSeen := mapset.New[grid.Position]()
	for _, s := range trace.States {
		pastSeen.Put(s.Past)
		futureSeen.Put(s.Future)
		for _, o := range s.Obstacles {
			pastSeen.Put(o)
			futureSeen.Put(o)
		}
	}

	res := &Result{Past: p.Past.Clone(), Future: p.Future.Clone()}
	res.Removed += wallUnvisited(res.Past, pastSeen)
	res.Removed += wallUnvisited(res.Future, futureSeen)
	return res, nil
}

// wallUnvisited converts Empty cells outside seen into Wall and returns how
// many it changed.
func wallUnvisited(g *grid.Grid, seen mapset.Set[grid.Position]) int {
	n := 0
	for _, p := range g.Find(grid.Empty) {
		if !seen.Has(p) {
			g.Set(p, grid.Wall)
			n++
		}
	}
	return n
}
