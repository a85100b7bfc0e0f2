package generator

import (
	"github.com/katalvlaran/chronogrid/grid"
)

// insetMinSide is the smallest side for which the fallback room keeps a one-cell border.
const insetMinSide = 5

// fallbackRoom returns an open room that is solvable by construction.
//
// Start and goal sit on opposite corners, inset by one cell when both sides
// are at least insetMinSide. The path is rights then downs, which is
// Manhattan-minimal. With obstacles enabled one obstacle sits right of the
// start and the path becomes right, downs, rights: the first move pushes it
// one cell along the start row, out of the way.
func fallbackRoom(req request, opts Options) *LevelData {
	w, h := req.Width, req.Height
	i := 0
	if w >= insetMinSide && h >= insetMinSide {
		i = 1
	}
	start, goal := grid.Pos(i, i), grid.Pos(w-1-i, h-1-i)

	past, _ := grid.New(w, h)
	past.Set(start, grid.StartMarker)
	past.Set(goal, grid.Goal)

	dx, dy := goal.X-start.X, goal.Y-start.Y
	path := make([]grid.Direction, 0, dx+dy)
	var obstacles []grid.Position
	pushes := 0
	if opts.EnableObstacles {
		obstacles = []grid.Position{start.Step(grid.Right)}
		pushes = 1
		path = append(path, grid.Right)
		path = appendRun(path, grid.Down, dy)
		path = appendRun(path, grid.Right, dx-1)
	} else {
		path = appendRun(path, grid.Right, dx)
		path = appendRun(path, grid.Down, dy)
	}

	return &LevelData{
		Width:        w,
		Height:       h,
		Past:         past,
		Future:       past.Clone(),
		Start:        start,
		Goal:         goal,
		Obstacles:    obstacles,
		MinMoves:     len(path),
		SolutionPath: path,
		BoxesPushed:  pushes,
		Mechanisms:   opts.Mechanisms(),
		Fallback:     true,
	}
}

func appendRun(path []grid.Direction, d grid.Direction, n int) []grid.Direction {
	for ; n > 0; n-- {
		path = append(path, d)
	}
	return path
}
