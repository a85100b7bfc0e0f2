package solver_test

import (
	"fmt"

	"github.com/katalvlaran/chronogrid/grid"
	"github.com/katalvlaran/chronogrid/solver"
)

// ExampleSolve_corridor solves a one-row level where both timelines match.
func ExampleSolve_corridor() {
	g := grid.MustFromRows([][]int{{2, 0, 0, 4}})
	p := &solver.Puzzle{Past: g, Future: g.Clone(), Start: grid.Pos(0, 0), Goal: grid.Pos(3, 0)}

	sol, err := solver.Solve(p)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sol.Steps, solver.FormatPath(sol.Path))
	// Output:
	// 3 right x3
}

// ExampleSolve_lever shows the past agent opening a gate that only exists in
// the future timeline.
func ExampleSolve_lever() {
	past := grid.MustFromRows([][]int{
		{2, 0, 0, 4},
		{8, 0, 1, 1},
	})
	future := grid.MustFromRows([][]int{
		{2, 0, 9, 4},
		{0, 0, 1, 1},
	})
	p := &solver.Puzzle{
		Past: past, Future: future,
		Start: grid.Pos(0, 0), Goal: grid.Pos(3, 0),
		Mechanisms: solver.Mechanisms{Levers: true},
	}

	sol, err := solver.Solve(p)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("steps:", sol.Steps)
	fmt.Println("first move:", sol.Path[0])
	// Output:
	// steps: 5
	// first move: down
}
