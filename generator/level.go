package generator

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/katalvlaran/chronogrid/grid"
	"github.com/katalvlaran/chronogrid/solver"
)

// LevelData is one finished level. The caller owns it; the generator keeps
// no reference. Past and Future hold terrain and mechanism tiles only;
// obstacles live in Obstacles (see RenderGrids).
type LevelData struct {
	ID           uuid.UUID         `json:"id"`
	Seed         int64             `json:"seed"`
	Width        int               `json:"width"`
	Height       int               `json:"height"`
	Past         *grid.Grid        `json:"past"`
	Future       *grid.Grid        `json:"future"`
	Start        grid.Position     `json:"start"`
	Goal         grid.Position     `json:"goal"`
	Obstacles    []grid.Position   `json:"obstacles"`
	MinMoves     int               `json:"min_moves"`
	SolutionPath []grid.Direction  `json:"solution_path"`
	BoxesPushed  int               `json:"boxes_pushed"`
	Mechanisms   solver.Mechanisms `json:"mechanisms"`
	// Attempts is the number of layouts tried, including the accepted one.
	Attempts int `json:"attempts"`
	// Fallback marks the guaranteed-solvable empty room.
	Fallback bool `json:"fallback"`
}

// Hint formats the solution for display, e.g. "RIGHT x3, DOWN".
func (l *LevelData) Hint() string {
	return solver.FormatPathWith(l.SolutionPath, func(d grid.Direction) string {
		return strings.ToUpper(d.String())
	})
}

// Puzzle rebuilds the solver view of the level. Grids are shared, the
// obstacle list is copied.
func (l *LevelData) Puzzle() *solver.Puzzle {
	return &solver.Puzzle{
		Past:       l.Past,
		Future:     l.Future,
		Start:      l.Start,
		Goal:       l.Goal,
		Obstacles:  slices.Clone(l.Obstacles),
		Mechanisms: l.Mechanisms,
	}
}

// RenderGrids returns copies of both grids with the Obstacle code stamped on
// every initial obstacle cell, for renderers that expect one tile array.
func (l *LevelData) RenderGrids() (past, future *grid.Grid) {
	past, future = l.Past.Clone(), l.Future.Clone()
	for _, o := range l.Obstacles {
		past.Set(o, grid.Obstacle)
		future.Set(o, grid.Obstacle)
	}
	return past, future
}

// Verify replays SolutionPath and checks that it ends with both agents on the
// goal after exactly MinMoves moves.
func (l *LevelData) Verify() error {
	if len(l.SolutionPath) != l.MinMoves {
		return fmt.Errorf("%w: path has %d moves, min_moves %d", ErrLevelMismatch, len(l.SolutionPath), l.MinMoves)
	}
	trace, err := solver.Replay(l.Puzzle(), l.SolutionPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLevelMismatch, err)
	}
	if !trace.Solved {
		final := trace.Final()
		return fmt.Errorf("%w: agents end at %v and %v, goal %v", ErrLevelMismatch, final.Past, final.Future, l.Goal)
	}
	if trace.Pushes != l.BoxesPushed {
		return fmt.Errorf("%w: %d pushes, boxes_pushed %d", ErrLevelMismatch, trace.Pushes, l.BoxesPushed)
	}
	return nil
}
