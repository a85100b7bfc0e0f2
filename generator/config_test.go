package generator_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chronogrid/generator"
	"github.com/katalvlaran/chronogrid/terrain"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := generator.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 200, cfg.MaxAttempts)
	assert.Equal(t, 750, cfg.StatesPerCell)
	assert.Equal(t, 300_000, cfg.MaxStates)
	assert.True(t, cfg.Prune)
	assert.Equal(t, terrain.DefaultDensity(), cfg.Density)
}

func TestLoadConfig_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chronogrid.yaml")
	body := `
max_attempts: 25
prune: false
obstacles:
  max: 5
density:
  base: 0.2
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := generator.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.MaxAttempts)
	assert.False(t, cfg.Prune)
	assert.Equal(t, 5, cfg.Obstacles.Max)
	assert.Equal(t, 1, cfg.Obstacles.Min, "unset nested keys keep defaults")
	assert.InDelta(t, 0.2, cfg.Density.Base, 1e-9)
	assert.InDelta(t, 0.30, cfg.Density.Decay, 1e-9)
	assert.Equal(t, generator.DefaultPlacementAttempts, cfg.PlacementAttempts)
}

func TestDecodeConfig_Errors(t *testing.T) {
	cases := map[string]string{
		"zero attempts":   "max_attempts: 0",
		"unknown key":     "max_atempts: 10",
		"relax order":     "first_relax_after: 50\nsecond_relax_after: 10",
		"density range":   "density:\n  decay: 1.5",
		"obstacle cap":    "obstacles:\n  max: 7",
		"obstacle min":    "obstacles:\n  min: 4\n  max: 2",
		"malformed yaml":  "max_attempts: [",
		"negative states": "max_states: -1",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := generator.DecodeConfig(strings.NewReader(body))
			assert.ErrorIs(t, err, generator.ErrInvalidConfig)
		})
	}

	cfg, err := generator.DecodeConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, generator.DefaultConfig(), cfg)

	_, err = generator.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestObstacleBudget_Count(t *testing.T) {
	b := generator.ObstacleBudget{Min: 1, Max: 3, PerDifficulty: 0.2}
	assert.Equal(t, 1, b.Count(0))
	assert.Equal(t, 1, b.Count(4))
	assert.Equal(t, 2, b.Count(5))
	assert.Equal(t, 3, b.Count(10))

	b.PerDifficulty = 1
	assert.Equal(t, 3, b.Count(10), "capped at Max")
}
