package generator

import (
	"errors"
	"log/slog"
	"math/rand"
	"slices"

	"github.com/katalvlaran/chronogrid/analysis"
	"github.com/katalvlaran/chronogrid/grid"
	"github.com/katalvlaran/chronogrid/placement"
	"github.com/katalvlaran/chronogrid/prune"
	"github.com/katalvlaran/chronogrid/solver"
	"github.com/katalvlaran/chronogrid/terrain"
)

// errTrivial marks a solvable layout that does not exercise its mechanisms.
var errTrivial = errors.New("generator: trivial solution")

// attempt builds one layout from scratch and classifies it. On acceptance it
// returns a LevelData without ID, Seed or Attempts.
func (g *Generator) attempt(rng *rand.Rand, req request, opts Options, adj float64, log *slog.Logger) (*LevelData, string, error) {
	p, err := g.layout(rng, req, opts, adj, log)
	if err != nil {
		return nil, OutcomeInvalid, err
	}

	budget := g.cfg.stateBudget(req.Width, req.Height)
	sol, err := solver.Solve(p, solver.WithMaxStates(budget))
	switch {
	case errors.Is(err, solver.ErrBudgetExhausted):
		g.metrics.explored(budget)
		return nil, OutcomeBudgetExhausted, err
	case errors.Is(err, solver.ErrNoSolution):
		return nil, OutcomeUnsolvable, err
	case err != nil:
		return nil, OutcomeInvalid, err
	}
	g.metrics.explored(sol.Explored)
	if !acceptable(sol, opts, sol.Steps) {
		return nil, OutcomeTrivial, errTrivial
	}

	if g.cfg.Prune {
		p, sol = g.pruned(p, sol, opts, budget, log)
	}

	return &LevelData{
		Width:        req.Width,
		Height:       req.Height,
		Past:         p.Past,
		Future:       p.Future,
		Start:        p.Start,
		Goal:         p.Goal,
		Obstacles:    p.Obstacles,
		MinMoves:     sol.Steps,
		SolutionPath: sol.Path,
		BoxesPushed:  sol.BoxesPushed,
		Mechanisms:   p.Mechanisms,
	}, OutcomeAccepted, nil
}

// acceptable applies the acceptance policy: at least one move, at most limit
// moves, and at least one push when obstacles are enabled.
func acceptable(sol *solver.Solution, opts Options, limit int) bool {
	if sol.Steps == 0 || sol.Steps > limit {
		return false
	}
	return !opts.EnableObstacles || sol.BoxesPushed > 0
}

// pruned swaps p's grids for pruned copies. The original path is still valid
// on them, so the pruned grids are always kept; a re-solve replaces the
// solution only when it is still acceptable and no longer.
func (g *Generator) pruned(p *solver.Puzzle, sol *solver.Solution, opts Options, budget int, log *slog.Logger) (*solver.Puzzle, *solver.Solution) {
	res, err := prune.Prune(p, sol.Path)
	if err != nil {
		log.Debug("prune skipped", "err", err)
		return p, sol
	}
	q := *p
	q.Past, q.Future = res.Past, res.Future

	again, err := solver.Solve(&q, solver.WithMaxStates(budget))
	if err != nil || !acceptable(again, opts, sol.Steps) {
		log.Debug("keeping original solution on pruned grids", "removed", res.Removed, "err", err)
		return &q, sol
	}
	return &q, again
}

// layout synthesizes terrain and places every object for one attempt.
// Placement exhaustion is logged and the degenerate origin is used; the
// solver rejects whatever that breaks.
func (g *Generator) layout(rng *rand.Rand, req request, opts Options, adj float64, log *slog.Logger) (*solver.Puzzle, error) {
	past, future, err := terrain.Synthesize(rng, req.Width, req.Height, req.Difficulty, adj, g.cfg.Density)
	if err != nil {
		return nil, err
	}
	b := &builder{
		past:   past,
		future: future,
		placer: placement.NewPlacer(rng, placement.WithMaxAttempts(g.cfg.PlacementAttempts)),
		claims: placement.NewConstraints(),
		log:    log,
	}

	start := b.place("start", b.claims, past)
	future.Set(start, grid.Empty)
	b.stamp(start, grid.StartMarker, past, future)

	minGoal := int(g.cfg.GoalDistanceRatio * float64(req.Width+req.Height))
	goal := b.place("goal", b.claims.Near(start, minGoal), past)
	future.Set(goal, grid.Empty)
	b.stamp(goal, grid.Goal, past, future)

	switch {
	case opts.EnableKeys:
		b.gate(future, goal, start, grid.Door)
	case opts.EnableLevers:
		b.gate(future, goal, start, grid.LeverGate)
	}

	var key grid.Position
	spaced := b.claims
	if opts.EnableKeys {
		key = b.place("key", b.claims, past)
		b.stamp(key, grid.Key, past)
		spaced = b.claims.Near(key, g.cfg.MechanismSpacing)
		chest := b.place("chest", spaced, past, future)
		b.stamp(chest, grid.Chest, past, future)
	}
	if opts.EnableLevers {
		lever := b.place("lever", spaced, past)
		b.stamp(lever, grid.Lever, past)
	}
	if opts.EnableKeys && opts.EnableLevers {
		b.gate(past, key, start, grid.LeverGate)
	}

	var obstacles []grid.Position
	if opts.EnableObstacles {
		obstacles = b.obstacles(start, goal, g.cfg.Obstacles.Count(req.Difficulty))
	}

	return &solver.Puzzle{
		Past:       past,
		Future:     future,
		Start:      start,
		Goal:       goal,
		Obstacles:  obstacles,
		Mechanisms: opts.Mechanisms(),
	}, nil
}

// builder carries the per-attempt placement state.
type builder struct {
	past, future *grid.Grid
	placer       *placement.Placer
	claims       *placement.Constraints
	log          *slog.Logger
}

func (b *builder) place(what string, c *placement.Constraints, grids ...*grid.Grid) grid.Position {
	p, err := b.placer.Place(c, grids...)
	if err != nil {
		b.log.Warn("placement exhausted, using origin", "object", what, "err", err)
	}
	return p
}

// stamp writes t at p in every grid and claims p.
func (b *builder) stamp(p grid.Position, t grid.Tile, grids ...*grid.Grid) {
	for _, g := range grids {
		g.Set(p, t)
	}
	b.claims.Claim(p)
}

// gate leaves one entrance to target in g and claims all of target's neighbours.
func (b *builder) gate(g *grid.Grid, target, start grid.Position, entrance grid.Tile) {
	if _, err := b.placer.Gate(g, target, start, entrance); err != nil {
		b.log.Debug("gate skipped", "target", target, "entrance", entrance, "err", err)
	}
	b.claims.Claim(g.Neighbors(target)...)
}

// obstacles prefers critical tiles of either timeline, then bottlenecks.
func (b *builder) obstacles(start, goal grid.Position, n int) []grid.Position {
	mechanism := func(p grid.Position) bool {
		return b.past.At(p).Mechanism() || b.future.At(p).Mechanism()
	}
	var critical, pinch []grid.Position
	for _, g := range []*grid.Grid{b.past, b.future} {
		if tiles, err := analysis.CriticalTiles(g, start, goal, mechanism); err == nil {
			critical = append(critical, tiles...)
		}
		pinch = append(pinch, analysis.Bottlenecks(g)...)
	}
	slices.SortFunc(critical, grid.Position.Compare)
	critical = slices.Compact(critical)

	out, err := b.placer.Obstacles(b.past, b.future, b.claims, start, n, critical, pinch)
	if err != nil {
		b.log.Warn("obstacle placement short", "want", n, "got", len(out), "err", err)
	}
	return out
}
