package terrain

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/chronogrid/grid"
)

// ErrNeedRandSource is returned when Synthesize is called without an RNG.
var ErrNeedRandSource = errors.New("terrain: rng is required")

// Density tunes wall sampling. All values are probabilities or per-difficulty slopes.
type Density struct {
	// Base is the wall probability at difficulty 0.
	Base float64 `yaml:"base" json:"base" validate:"gte=0,lte=1"`
	// Slope is added per difficulty level.
	Slope float64 `yaml:"slope" json:"slope" validate:"gte=0,lte=1"`
	// Floor is the lowest wall probability the relaxation schedule may reach.
	Floor float64 `yaml:"floor" json:"floor" validate:"gte=0,lte=1"`
	// Decay is the chance a past wall is gone in the future.
	Decay float64 `yaml:"decay" json:"decay" validate:"gte=0,lte=1"`
	// GrowthSlope times difficulty is the chance an open past cell is walled in the future.
	GrowthSlope float64 `yaml:"growth_slope" json:"growth_slope" validate:"gte=0,lte=1"`
}

// DefaultDensity returns the stock tuning: 10% walls plus 3% per difficulty
// level, never below 5%; 30% of walls decay; 2% per level of open cells collapse.
func DefaultDensity() Density {
	return Density{
		Base:        0.10,
		Slope:       0.03,
		Floor:       0.05,
		Decay:       0.30,
		GrowthSlope: 0.02,
	}
}

// WallChance returns the clamped past-grid wall probability.
func (d Density) WallChance(difficulty int, adjustment float64) float64 {
	p := d.Base + float64(difficulty)*d.Slope + adjustment
	if p < d.Floor {
		p = d.Floor
	}
	return p
}

// GrowthChance returns the probability an open past cell is a wall in the future.
func (d Density) GrowthChance(difficulty int) float64 {
	return float64(difficulty) * d.GrowthSlope
}

// Synthesize produces fresh past and future terrain grids.
// Returns grid.ErrEmptyGrid for non-positive sizes and ErrNeedRandSource for a nil rng.
func Synthesize(rng *rand.Rand, width, height, difficulty int, adjustment float64, d Density) (past, future *grid.Grid, err error) {
	if rng == nil {
		return nil, nil, ErrNeedRandSource
	}
	if past, err = grid.New(width, height); err != nil {
		return nil, nil, fmt.Errorf("terrain: past: %w", err)
	}
	future, _ = grid.New(width, height)

	wall := d.WallChance(difficulty, adjustment)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if rng.Float64() < wall {
				past.Set(grid.Pos(x, y), grid.Wall)
			}
		}
	}

	growth := d.GrowthChance(difficulty)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := grid.Pos(x, y)
			t := past.At(p)
			switch {
			case t == grid.Wall && rng.Float64() < d.Decay:
				t = grid.Empty
			case t == grid.Empty && rng.Float64() < growth:
				t = grid.Wall
			}
			future.Set(p, t)
		}
	}
	return past, future, nil
}
