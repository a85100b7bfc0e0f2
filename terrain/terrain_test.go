package terrain_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chronogrid/grid"
	"github.com/katalvlaran/chronogrid/terrain"
)

func TestWallChance_Floor(t *testing.T) {
	d := terrain.DefaultDensity()
	assert.InDelta(t, 0.10, d.WallChance(0, 0), 1e-9)
	assert.InDelta(t, 0.40, d.WallChance(10, 0), 1e-9)
	assert.InDelta(t, 0.05, d.WallChance(0, -0.5), 1e-9, "clamped to floor")
	assert.InDelta(t, 0.10, d.GrowthChance(5), 1e-9)
}

func TestSynthesize_Errors(t *testing.T) {
	_, _, err := terrain.Synthesize(nil, 3, 3, 1, 0, terrain.DefaultDensity())
	assert.ErrorIs(t, err, terrain.ErrNeedRandSource)
	_, _, err = terrain.Synthesize(rand.New(rand.NewSource(1)), 0, 3, 1, 0, terrain.DefaultDensity())
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}

// TestSynthesize_Deterministic checks that equal seeds produce equal grids.
func TestSynthesize_Deterministic(t *testing.T) {
	d := terrain.DefaultDensity()
	p1, f1, err := terrain.Synthesize(rand.New(rand.NewSource(42)), 12, 9, 5, 0, d)
	require.NoError(t, err)
	p2, f2, err := terrain.Synthesize(rand.New(rand.NewSource(42)), 12, 9, 5, 0, d)
	require.NoError(t, err)
	assert.Equal(t, p1.Rows(), p2.Rows())
	assert.Equal(t, f1.Rows(), f2.Rows())
	assert.Equal(t, 12, p1.Width)
	assert.Equal(t, 9, f1.Height)
}

// TestSynthesize_TerrainOnly ensures only Empty and Wall appear.
func TestSynthesize_TerrainOnly(t *testing.T) {
	past, future, err := terrain.Synthesize(rand.New(rand.NewSource(7)), 20, 20, 10, 0, terrain.DefaultDensity())
	require.NoError(t, err)
	for _, g := range []*grid.Grid{past, future} {
		assert.Equal(t, 400, g.Count(grid.Empty)+g.Count(grid.Wall))
	}
	assert.Positive(t, past.Count(grid.Wall))
}

// TestSynthesize_FullDecay removes every wall in the future when Decay is 1 and growth 0.
func TestSynthesize_FullDecay(t *testing.T) {
	d := terrain.Density{Base: 0.5, Floor: 0.05, Decay: 1}
	past, future, err := terrain.Synthesize(rand.New(rand.NewSource(3)), 10, 10, 4, 0, d)
	require.NoError(t, err)
	assert.Positive(t, past.Count(grid.Wall))
	assert.Zero(t, future.Count(grid.Wall))
}

// TestSynthesize_NoDecayFullGrowth walls every future cell when nothing decays and growth is certain.
func TestSynthesize_NoDecayFullGrowth(t *testing.T) {
	d := terrain.Density{Base: 0.3, Floor: 0.05, Decay: 0, GrowthSlope: 1}
	_, future, err := terrain.Synthesize(rand.New(rand.NewSource(3)), 6, 6, 1, 0, d)
	require.NoError(t, err)
	assert.Equal(t, 36, future.Count(grid.Wall))
}
