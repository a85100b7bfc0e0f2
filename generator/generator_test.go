package generator_test

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chronogrid/generator"
	"github.com/katalvlaran/chronogrid/grid"
	"github.com/katalvlaran/chronogrid/solver"
)

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testConfig keeps attempts and search budgets small enough for unit tests.
func testConfig() generator.Config {
	cfg := generator.DefaultConfig()
	cfg.MaxAttempts = 40
	cfg.MaxStates = 10_000
	cfg.FirstRelaxAfter = 10
	cfg.SecondRelaxAfter = 20
	return cfg
}

func newGenerator(t testing.TB, seed int64, opts ...generator.Option) *generator.Generator {
	t.Helper()
	base := []generator.Option{generator.WithSeed(seed), generator.WithConfig(testConfig()), generator.WithLogger(quiet())}
	g, err := generator.New(append(base, opts...)...)
	require.NoError(t, err)
	return g
}

var mechanismSets = []generator.Options{
	{},
	{EnableKeys: true},
	{EnableLevers: true},
	{EnableObstacles: true},
	{EnableKeys: true, EnableLevers: true},
	{EnableKeys: true, EnableLevers: true, EnableObstacles: true},
}

// TestGenerate_Properties checks the level contract across sizes, difficulties
// and mechanism sets.
func TestGenerate_Properties(t *testing.T) {
	sizes := [][2]int{{3, 3}, {5, 4}, {8, 6}}
	for _, opts := range mechanismSets {
		for _, size := range sizes {
			for _, difficulty := range []int{0, 5, 10} {
				name := fmt.Sprintf("%+v/%dx%d/d%d", opts, size[0], size[1], difficulty)
				t.Run(name, func(t *testing.T) {
					g := newGenerator(t, int64(size[0]*100+difficulty))
					level, err := g.Generate(size[0], size[1], difficulty, opts)
					require.NoError(t, err)
					checkLevel(t, level, size[0], size[1], opts)
				})
			}
		}
	}
}

func checkLevel(t *testing.T, level *generator.LevelData, w, h int, opts generator.Options) {
	t.Helper()
	assert.Equal(t, w, level.Width)
	assert.Equal(t, h, level.Height)
	assert.Equal(t, w, level.Past.Width)
	assert.Equal(t, h, level.Future.Height)
	assert.Equal(t, len(level.SolutionPath), level.MinMoves)
	assert.Positive(t, level.MinMoves)
	assert.Equal(t, opts.Mechanisms(), level.Mechanisms)

	trace, err := solver.Replay(level.Puzzle(), level.SolutionPath)
	require.NoError(t, err)
	assert.True(t, trace.Solved, "replay ends on the goal")
	assert.Equal(t, level.BoxesPushed, trace.Pushes)
	if opts.EnableObstacles {
		assert.GreaterOrEqual(t, trace.Pushes, 1, "obstacles must be pushed")
	}
	require.NoError(t, level.Verify())

	again, err := solver.Solve(level.Puzzle(), solver.WithMaxStates(generator.DefaultMaxStates))
	require.NoError(t, err, "returned level must re-solve")
	assert.LessOrEqual(t, again.Steps, level.MinMoves)

	for _, g := range []*grid.Grid{level.Past, level.Future} {
		assert.Zero(t, g.Count(grid.Obstacle), "obstacles are not encoded in terrain")
		if !opts.EnableKeys {
			assert.Zero(t, g.Count(grid.Key)+g.Count(grid.Door)+g.Count(grid.Chest))
		}
		if !opts.EnableLevers {
			assert.Zero(t, g.Count(grid.Lever)+g.Count(grid.LeverGate))
		}
	}
	assert.LessOrEqual(t, len(level.Obstacles), solver.MaxObstacles)
}

// TestGenerate_RoomSizes runs the stock configuration at the room sizes the
// game offers, with every mechanism on.
func TestGenerate_RoomSizes(t *testing.T) {
	if testing.Short() {
		t.Skip("full-size generation")
	}
	opts := generator.Options{EnableKeys: true, EnableLevers: true, EnableObstacles: true}
	for _, size := range []int{10, 15, 20} {
		t.Run(fmt.Sprintf("%dx%d", size, size), func(t *testing.T) {
			g, err := generator.New(generator.WithSeed(int64(size)), generator.WithLogger(quiet()))
			require.NoError(t, err)

			fallbacks := 0
			for i := 0; i < 3; i++ {
				began := time.Now()
				level, err := g.Generate(size, size, 3, opts)
				require.NoError(t, err)
				assert.Less(t, time.Since(began), 30*time.Second, "level %d", i)
				if level.Fallback {
					fallbacks++
					continue
				}
				checkLevel(t, level, size, size, opts)
			}
			assert.LessOrEqual(t, fallbacks, 1, "most levels must come from real layouts")
		})
	}
}

func TestGenerate_InvalidRequest(t *testing.T) {
	g := newGenerator(t, 1)
	cases := []struct{ w, h, d int }{
		{2, 5, 0}, {5, 2, 0}, {65, 5, 0}, {5, 65, 0}, {5, 5, -1}, {5, 5, 11},
	}
	for _, c := range cases {
		_, err := g.Generate(c.w, c.h, c.d, generator.Options{})
		assert.ErrorIs(t, err, generator.ErrInvalidRequest, "%dx%d d%d", c.w, c.h, c.d)
	}
}

func TestGenerateSeeded_Reproducible(t *testing.T) {
	opts := generator.Options{EnableKeys: true, EnableObstacles: true}
	a, err := newGenerator(t, 7).Generate(8, 8, 4, opts)
	require.NoError(t, err)

	b, err := newGenerator(t, 99).GenerateSeeded(a.Seed, 8, 8, 4, opts)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.Past.Rows(), b.Past.Rows())
	assert.Equal(t, a.Future.Rows(), b.Future.Rows())
	assert.Equal(t, a.Obstacles, b.Obstacles)
	assert.Equal(t, a.SolutionPath, b.SolutionPath)
	assert.Equal(t, a.Attempts, b.Attempts)
}

// TestGenerate_Fallback forces every attempt to fail with solid terrain.
func TestGenerate_Fallback(t *testing.T) {
	cfg := testConfig()
	cfg.MaxAttempts = 3
	cfg.Density.Base = 1
	cfg.Density.Floor = 1

	tests := []struct {
		name        string
		w, h        int
		opts        generator.Options
		start, goal grid.Position
		hint        string
	}{
		{"small", 3, 3, generator.Options{}, grid.Pos(0, 0), grid.Pos(2, 2), "RIGHT x2, DOWN x2"},
		{"inset", 6, 5, generator.Options{}, grid.Pos(1, 1), grid.Pos(4, 3), "RIGHT x3, DOWN x2"},
		{"obstacle", 6, 5, generator.Options{EnableObstacles: true}, grid.Pos(1, 1), grid.Pos(4, 3), "RIGHT, DOWN x2, RIGHT x2"},
		{"obstacle small", 3, 4, generator.Options{EnableObstacles: true}, grid.Pos(0, 0), grid.Pos(2, 3), "RIGHT, DOWN x3, RIGHT"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newGenerator(t, 3, generator.WithConfig(cfg))
			level, err := g.Generate(tc.w, tc.h, 5, tc.opts)
			require.NoError(t, err)

			assert.True(t, level.Fallback)
			assert.Equal(t, 3, level.Attempts)
			assert.Equal(t, tc.start, level.Start)
			assert.Equal(t, tc.goal, level.Goal)
			assert.Equal(t, tc.start.Manhattan(tc.goal), level.MinMoves)
			assert.Equal(t, tc.hint, level.Hint())
			assert.Equal(t, grid.StartMarker, level.Past.At(tc.start))
			assert.Equal(t, grid.Goal, level.Future.At(tc.goal))
			checkLevel(t, level, tc.w, tc.h, tc.opts)
		})
	}
}

func TestNew_Options(t *testing.T) {
	bad := generator.DefaultConfig()
	bad.MaxAttempts = 0
	_, err := generator.New(generator.WithConfig(bad))
	assert.ErrorIs(t, err, generator.ErrInvalidConfig)

	assert.Panics(t, func() { generator.WithRand(nil) })
	assert.Panics(t, func() { generator.WithLogger(nil) })

	g, err := generator.New(generator.WithLogger(quiet()))
	require.NoError(t, err)
	assert.Equal(t, generator.DefaultConfig(), g.Config())
}

func TestLevelData_Hint(t *testing.T) {
	l := &generator.LevelData{SolutionPath: []grid.Direction{grid.Right, grid.Right, grid.Right, grid.Down}}
	assert.Equal(t, "RIGHT x3, DOWN", l.Hint())
	assert.Equal(t, "", (&generator.LevelData{}).Hint())
}

func TestLevelData_RenderGrids(t *testing.T) {
	g := grid.MustFromRows([][]int{{2, 0, 0, 4}})
	l := &generator.LevelData{Past: g, Future: g.Clone(), Obstacles: []grid.Position{{X: 1, Y: 0}}}

	past, future := l.RenderGrids()
	assert.Equal(t, grid.Obstacle, past.At(grid.Pos(1, 0)))
	assert.Equal(t, grid.Obstacle, future.At(grid.Pos(1, 0)))
	assert.Equal(t, grid.Empty, l.Past.At(grid.Pos(1, 0)), "terrain stays obstacle-free")
}

func TestLevelData_VerifyAndJSON(t *testing.T) {
	level, err := newGenerator(t, 11).Generate(6, 6, 3, generator.Options{EnableKeys: true, EnableObstacles: true})
	require.NoError(t, err)

	raw, err := json.Marshal(level)
	require.NoError(t, err)
	var decoded generator.LevelData
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, level.ID, decoded.ID)
	assert.Equal(t, level.Past.Rows(), decoded.Past.Rows())
	assert.Equal(t, level.SolutionPath, decoded.SolutionPath)
	require.NoError(t, decoded.Verify())

	decoded.MinMoves++
	assert.ErrorIs(t, decoded.Verify(), generator.ErrLevelMismatch)

	decoded.MinMoves--
	decoded.SolutionPath = append([]grid.Direction(nil), decoded.SolutionPath[:len(decoded.SolutionPath)-1]...)
	decoded.MinMoves--
	assert.ErrorIs(t, decoded.Verify(), generator.ErrLevelMismatch)
}

func TestDeriveSeed(t *testing.T) {
	a := generator.DeriveSeed(42, 0)
	assert.Equal(t, a, generator.DeriveSeed(42, 0))
	assert.NotEqual(t, a, generator.DeriveSeed(42, 1))
	assert.NotEqual(t, a, generator.DeriveSeed(43, 0))
}
