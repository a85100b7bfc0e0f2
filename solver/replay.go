package solver

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/chronogrid/grid"
)

// Trace records a deterministic re-simulation of a move list.
type Trace struct {
	// States holds the initial state followed by the state after every move.
	States []State
	// Pushes counts obstacle pushes.
	Pushes int
	// Solved is true when the final state has both agents on the goal.
	Solved bool
}

// Final returns the last recorded state.
func (t *Trace) Final() State {
	return t.States[len(t.States)-1]
}

// Replay applies path to p's initial state under the same rules as Solve.
func Replay(p *Puzzle, path []grid.Direction) (*Trace, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	s := p.InitialState()
	tr := &Trace{States: make([]State, 0, len(path)+1)}
	tr.States = append(tr.States, s)
	for _, d := range path {
		step := p.Step(s, d)
		if step.Pushed {
			tr.Pushes++
		}
		s = step.Next
		tr.States = append(tr.States, s)
	}
	tr.Solved = s.Solved(p.Goal)
	return tr, nil
}

// FormatPath compresses runs of equal moves for hint display,
// e.g. "right x3, down, left x2". An empty path formats as "".
func FormatPath(path []grid.Direction) string {
	return FormatPathWith(path, grid.Direction.String)
}

// FormatPathWith is FormatPath with a caller-chosen label per direction.
func FormatPathWith(path []grid.Direction, label func(grid.Direction) string) string {
	if len(path) == 0 {
		return ""
	}
	parts := make([]string, 0, len(path))
	run := 1
	for i := 1; i <= len(path); i++ {
		if i < len(path) && path[i] == path[i-1] {
			run++
			continue
		}
		if run > 1 {
			parts = append(parts, fmt.Sprintf("%s x%d", label(path[i-1]), run))
		} else {
			parts = append(parts, label(path[i-1]))
		}
		run = 1
	}
	return strings.Join(parts, ", ")
}
