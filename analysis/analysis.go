package analysis

import (
	"fmt"

	"github.com/katalvlaran/chronogrid/grid"
)

// Bottlenecks returns every Empty cell whose vertical neighbours are both Wall
// while both horizontal neighbours are Empty, or the transpose. Out-of-bounds
// neighbours count as Wall. Results are in row-major order.
func Bottlenecks(g *grid.Grid) []grid.Position {
	var out []grid.Position
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := grid.Pos(x, y)
			if g.At(p) != grid.Empty {
				continue
			}
			up, down := g.At(p.Step(grid.Up)), g.At(p.Step(grid.Down))
			left, right := g.At(p.Step(grid.Left)), g.At(p.Step(grid.Right))

			vertical := up == grid.Wall && down == grid.Wall && left == grid.Empty && right == grid.Empty
			horizontal := left == grid.Wall && right == grid.Wall && up == grid.Empty && down == grid.Empty
			if vertical || horizontal {
				out = append(out, p)
			}
		}
	}
	return out
}

// CriticalTiles returns the cells on a shortest start→goal path (ignoring
// mechanisms and the second timeline) whose walling-off disconnects start
// from goal. Start, goal and any cell for which skip returns true are never
// reported. A nil skip skips nothing.
//
// Returns grid.ErrNoPath when start and goal are already disconnected.
func CriticalTiles(g *grid.Grid, start, goal grid.Position, skip func(grid.Position) bool) ([]grid.Position, error) {
	path, err := grid.ShortestPath(g, start, goal, grid.NotWall)
	if err != nil {
		return nil, fmt.Errorf("analysis: %w", err)
	}

	scratch := g.Clone()
	var out []grid.Position
	for _, p := range path {
		if p == start || p == goal || (skip != nil && skip(p)) {
			continue
		}
		orig := scratch.At(p)
		scratch.Set(p, grid.Wall)
		if !grid.Connected(scratch, start, goal, grid.NotWall) {
			out = append(out, p)
		}
		scratch.Set(p, orig)
	}
	return out, nil
}
