package solver

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chronogrid/grid"
	"github.com/katalvlaran/chronogrid/terrain"
)

// randomPuzzle scatters every mechanism over synthesized terrain.
func randomPuzzle(t *testing.T, rng *rand.Rand, size int) *Puzzle {
	t.Helper()
	past, future, err := terrain.Synthesize(rng, size, size, 4, 0, terrain.DefaultDensity())
	require.NoError(t, err)
	at := func() grid.Position { return grid.Pos(rng.Intn(size), rng.Intn(size)) }

	past.Set(at(), grid.Key)
	chest := at()
	past.Set(chest, grid.Chest)
	future.Set(chest, grid.Chest)
	past.Set(at(), grid.Lever)
	past.Set(at(), grid.LeverGate)
	future.Set(at(), grid.LeverGate)

	start, goal := at(), at()
	future.Set(goal.Step(grid.Left), grid.Door)
	for _, g := range []*grid.Grid{past, future} {
		g.Set(start, grid.StartMarker)
		g.Set(goal, grid.Goal)
	}
	p := &Puzzle{Past: past, Future: future, Start: start, Goal: goal, Mechanisms: AllMechanisms()}
	if o := at(); o != start {
		p.Obstacles = []grid.Position{o}
	}
	return p
}

// TestBound_ConsistentAndAdmissible checks that the estimate drops by at most
// one per move and never exceeds the true remaining distance.
func TestBound_ConsistentAndAdmissible(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	solved := 0
	for i := 0; i < 40; i++ {
		p := randomPuzzle(t, rng, 6)
		b := newBound(p)

		var seen []State
		sol, err := Solve(p, WithMaxStates(20_000), WithOnVisit(func(s State, _ int) {
			if len(seen) < 3_000 {
				seen = append(seen, s)
			}
		}))
		for _, s := range seen {
			e := b.estimate(s)
			require.NotEqual(t, unreachable, e, "dequeued states are live")
			for _, d := range grid.Directions {
				if n := b.estimate(p.Step(s, d).Next); n != unreachable {
					assert.LessOrEqual(t, e, n+1, "puzzle %d state %+v move %v", i, s, d)
				}
			}
		}

		switch {
		case err == nil:
			solved++
			trace, rerr := Replay(p, sol.Path)
			require.NoError(t, rerr)
			for k, s := range trace.States {
				assert.LessOrEqual(t, b.estimate(s), sol.Steps-k, "puzzle %d step %d", i, k)
			}
		case errors.Is(err, ErrNoSolution), errors.Is(err, ErrBudgetExhausted):
		default:
			require.NoError(t, err)
		}
	}
	assert.Positive(t, solved)
}

// TestBound_DoorForcesDeposit prices the key tour into the past estimate
// while the future agent is walled off from the goal by a Door.
func TestBound_DoorForcesDeposit(t *testing.T) {
	past := grid.MustFromRows([][]int{
		{0, 5, 0, 0, 0},
		{2, 0, 0, 0, 4},
		{0, 0, 7, 0, 0},
	})
	future := grid.MustFromRows([][]int{
		{0, 0, 0, 0, 1},
		{2, 0, 0, 6, 4},
		{0, 0, 7, 0, 1},
	})
	p := &Puzzle{
		Past: past, Future: future,
		Start: grid.Pos(0, 1), Goal: grid.Pos(4, 1),
		Mechanisms: Mechanisms{Keys: true},
	}
	b := newBound(p)
	root := p.InitialState()

	// start → key (2) → chest (3) → goal (3)
	assert.Equal(t, 8, b.estimate(root))

	// After the deposit the future agent still needs chest (3) → goal (3).
	deposited := root
	deposited.Flags = KeyDeposited
	deposited.Past = grid.Pos(2, 2)
	assert.Equal(t, 6, b.estimate(deposited))

	p.Mechanisms.Keys = false
	assert.Equal(t, 4, newBound(p).estimate(root))
}
