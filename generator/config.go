package generator

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/chronogrid/terrain"
)

// Request bounds.
const (
	MinSide       = 3
	MaxSide       = 64
	MaxDifficulty = 10
)

// Stock tuning.
const (
	DefaultMaxAttempts       = 200
	DefaultPlacementAttempts = 100
	DefaultStatesPerCell     = 750
	DefaultMaxStates         = 300_000
	DefaultFirstRelaxAfter   = 60
	DefaultSecondRelaxAfter  = 120
	DefaultRelaxStep         = 0.05
	DefaultGoalDistanceRatio = 0.25
	DefaultMechanismSpacing  = 2
)

var validate = validator.New()

// ObstacleBudget sets how many obstacles a level asks for:
// min(Max, Min + floor(PerDifficulty*difficulty)).
type ObstacleBudget struct {
	Min           int     `yaml:"min" json:"min" validate:"gte=1,ltefield=Max"`
	Max           int     `yaml:"max" json:"max" validate:"gte=1,lte=6"`
	PerDifficulty float64 `yaml:"per_difficulty" json:"per_difficulty" validate:"gte=0"`
}

// Count returns the obstacle count for a difficulty.
func (b ObstacleBudget) Count(difficulty int) int {
	n := b.Min + int(b.PerDifficulty*float64(difficulty))
	if n > b.Max {
		n = b.Max
	}
	return n
}

// Config is the generator tuning. Zero values are not meaningful; start from
// DefaultConfig and override.
type Config struct {
	// MaxAttempts bounds layouts tried before the fallback room.
	MaxAttempts int `yaml:"max_attempts" json:"max_attempts" validate:"gte=1"`
	// PlacementAttempts bounds random draws per placed object.
	PlacementAttempts int `yaml:"placement_attempts" json:"placement_attempts" validate:"gte=1"`
	// StatesPerCell times width×height is the solver budget per attempt.
	StatesPerCell int `yaml:"states_per_cell" json:"states_per_cell" validate:"gte=1"`
	// MaxStates caps that budget for large rooms.
	MaxStates int `yaml:"max_states" json:"max_states" validate:"gte=1"`
	// FirstRelaxAfter and SecondRelaxAfter are failure counts that lower density.
	FirstRelaxAfter  int     `yaml:"first_relax_after" json:"first_relax_after" validate:"gte=0"`
	SecondRelaxAfter int     `yaml:"second_relax_after" json:"second_relax_after" validate:"gtefield=FirstRelaxAfter"`
	RelaxStep        float64 `yaml:"relax_step" json:"relax_step" validate:"gte=0,lte=1"`
	// GoalDistanceRatio times (width+height) is the minimum start-goal distance.
	GoalDistanceRatio float64 `yaml:"goal_distance_ratio" json:"goal_distance_ratio" validate:"gte=0,lte=1"`
	// MechanismSpacing is the minimum distance of chest and lever from the key.
	MechanismSpacing int `yaml:"mechanism_spacing" json:"mechanism_spacing" validate:"gte=0"`
	// Prune walls off terrain the accepted solution never touches.
	Prune     bool            `yaml:"prune" json:"prune"`
	Obstacles ObstacleBudget  `yaml:"obstacles" json:"obstacles"`
	Density   terrain.Density `yaml:"density" json:"density"`
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:       DefaultMaxAttempts,
		PlacementAttempts: DefaultPlacementAttempts,
		StatesPerCell:     DefaultStatesPerCell,
		MaxStates:         DefaultMaxStates,
		FirstRelaxAfter:   DefaultFirstRelaxAfter,
		SecondRelaxAfter:  DefaultSecondRelaxAfter,
		RelaxStep:         DefaultRelaxStep,
		GoalDistanceRatio: DefaultGoalDistanceRatio,
		MechanismSpacing:  DefaultMechanismSpacing,
		Prune:             true,
		Obstacles:         ObstacleBudget{Min: 1, Max: 3, PerDifficulty: 0.2},
		Density:           terrain.DefaultDensity(),
	}
}

// Validate checks every field against its documented range.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// stateBudget returns the solver budget for one attempt at the given size.
func (c Config) stateBudget(width, height int) int {
	return min(c.StatesPerCell*width*height, c.MaxStates)
}

// relaxation returns the density adjustment after failures failed attempts.
func (c Config) relaxation(failures int) float64 {
	switch {
	case failures >= c.SecondRelaxAfter:
		return -2 * c.RelaxStep
	case failures >= c.FirstRelaxAfter:
		return -c.RelaxStep
	}
	return 0
}

// LoadConfig reads a YAML file over DefaultConfig; keys absent from the file
// keep their defaults. The merged result is validated.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// DecodeConfig is LoadConfig for an already-open stream. Unknown keys are rejected.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// request is the validated shape of one Generate call.
type request struct {
	Width      int `validate:"gte=3,lte=64"`
	Height     int `validate:"gte=3,lte=64"`
	Difficulty int `validate:"gte=0,lte=10"`
}

func (r request) validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %dx%d difficulty %d: %v", ErrInvalidRequest, r.Width, r.Height, r.Difficulty, err)
	}
	return nil
}
