package generator

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Generator produces solvable levels. Construct with New.
// It is not safe for concurrent use.
type Generator struct {
	cfg     Config
	rng     *rand.Rand
	log     *slog.Logger
	metrics *Metrics
}

// New returns a Generator with DefaultConfig, a clock-seeded RNG and
// slog.Default, as modified by opts. Returns ErrInvalidConfig when the
// resulting Config fails validation.
func New(opts ...Option) (*Generator, error) {
	g := &Generator{cfg: DefaultConfig(), log: slog.Default()}
	for _, opt := range opts {
		opt(g)
	}
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}
	if g.rng == nil {
		g.rng = clockRNG()
	}
	g.log = g.log.With("component", "generator")
	return g, nil
}

// Config returns the active configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// Generate returns a level of the given size and difficulty with the
// mechanisms enabled in opts. The only error is ErrInvalidRequest; when no
// attempt is accepted the fallback room is returned.
//
// Time: up to Config.MaxAttempts layouts, each bounded by
// min(Config.StatesPerCell×width×height, Config.MaxStates) solver states.
func (g *Generator) Generate(width, height, difficulty int, opts Options) (*LevelData, error) {
	return g.GenerateSeeded(g.rng.Int63(), width, height, difficulty, opts)
}

// GenerateSeeded is Generate with an explicit level seed, as recorded in
// LevelData.Seed. It does not advance the generator's own RNG.
func (g *Generator) GenerateSeeded(seed int64, width, height, difficulty int, opts Options) (*LevelData, error) {
	req := request{Width: width, Height: height, Difficulty: difficulty}
	if err := req.validate(); err != nil {
		return nil, err
	}
	began := time.Now()
	log := g.log.With("seed", seed, "width", width, "height", height, "difficulty", difficulty)
	rng := levelRNG(seed)

	for n := 1; n <= g.cfg.MaxAttempts; n++ {
		adj := g.cfg.relaxation(n - 1)
		level, outcome, err := g.attempt(rng, req, opts, adj, log)
		g.metrics.attempt(outcome)
		if outcome != OutcomeAccepted {
			log.Debug("attempt rejected", "attempt", n, "outcome", outcome, "adjustment", adj, "err", err)
			continue
		}
		level.ID = uuid.New()
		level.Seed = seed
		level.Attempts = n
		g.metrics.level(ResultGenerated, began)
		log.Info("level generated",
			"attempts", n, "min_moves", level.MinMoves, "pushes", level.BoxesPushed)
		return level, nil
	}

	level := fallbackRoom(req, opts)
	level.ID = uuid.New()
	level.Seed = seed
	level.Attempts = g.cfg.MaxAttempts
	g.metrics.level(ResultFallback, began)
	log.Warn("attempts exhausted, returning fallback room", "attempts", g.cfg.MaxAttempts)
	return level, nil
}
