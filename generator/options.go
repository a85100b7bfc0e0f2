package generator

import (
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/chronogrid/solver"
)

// Options toggles the mechanisms of one level. A disabled mechanism skips its
// placement, its gating and its solver rules, so its tiles never appear.
type Options struct {
	EnableKeys      bool `json:"enable_keys" yaml:"enable_keys"`
	EnableLevers    bool `json:"enable_levers" yaml:"enable_levers"`
	EnableObstacles bool `json:"enable_obstacles" yaml:"enable_obstacles"`
}

// Mechanisms converts the toggles into solver rules.
func (o Options) Mechanisms() solver.Mechanisms {
	return solver.Mechanisms{Keys: o.EnableKeys, Levers: o.EnableLevers, Obstacles: o.EnableObstacles}
}

// Option customizes a Generator before its first level.
type Option func(*Generator)

// WithSeed seeds the level-seed stream. Use it in tests to lock outcomes.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = levelRNG(seed)
	}
}

// WithRand supplies the level-seed stream directly. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(g *Generator) {
		g.rng = r
	}
}

// WithConfig replaces DefaultConfig. New validates it.
func WithConfig(cfg Config) Option {
	return func(g *Generator) {
		g.cfg = cfg
	}
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("generator: WithLogger(nil)")
	}
	return func(g *Generator) {
		g.log = l
	}
}

// WithMetrics records attempt and level outcomes into m. A nil m disables metrics.
func WithMetrics(m *Metrics) Option {
	return func(g *Generator) {
		g.metrics = m
	}
}
