package solver

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/chronogrid/grid"
)

// Sentinel errors.
var (
	// ErrNilPuzzle is returned if a nil puzzle pointer is passed.
	ErrNilPuzzle = errors.New("solver: puzzle is nil")
	// ErrInvalidPuzzle is returned when grids or positions are inconsistent.
	ErrInvalidPuzzle = errors.New("solver: invalid puzzle")
	// ErrTooManyObstacles is returned when the obstacle list exceeds MaxObstacles.
	ErrTooManyObstacles = errors.New("solver: too many obstacles")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")
	// ErrNoSolution is returned when no reachable state has both agents on the goal.
	ErrNoSolution = errors.New("solver: no solution")
	// ErrBudgetExhausted is returned when the visited-state cap is exceeded.
	ErrBudgetExhausted = errors.New("solver: search budget exhausted")
)

// DefaultMaxStates caps the states a single search may visit.
const DefaultMaxStates = 150_000

// maxSide is the largest grid side a StateKey can encode.
const maxSide = 1 << 16

// Mechanisms toggles the rule families a puzzle uses. Tiles of a disabled
// mechanism behave as plain floor; with Obstacles off the obstacle list is
// ignored.
type Mechanisms struct {
	Keys      bool `json:"keys" yaml:"keys"`
	Levers    bool `json:"levers" yaml:"levers"`
	Obstacles bool `json:"obstacles" yaml:"obstacles"`
}

// AllMechanisms enables keys, levers and obstacles.
func AllMechanisms() Mechanisms {
	return Mechanisms{Keys: true, Levers: true, Obstacles: true}
}

// Puzzle is the static description of a level: terrain-only grids for both
// timelines, the shared start and goal, and the initial obstacle positions.
// Obstacles are never encoded in the grids.
type Puzzle struct {
	Past, Future *grid.Grid
	Start, Goal  grid.Position
	Obstacles    []grid.Position
	Mechanisms   Mechanisms
}

// Validate checks dimensions, bounds and the obstacle list.
func (p *Puzzle) Validate() error {
	if p == nil {
		return ErrNilPuzzle
	}
	if p.Past == nil || p.Future == nil {
		return fmt.Errorf("%w: missing grid", ErrInvalidPuzzle)
	}
	if p.Past.Width != p.Future.Width || p.Past.Height != p.Future.Height {
		return fmt.Errorf("%w: past %dx%d, future %dx%d", ErrInvalidPuzzle,
			p.Past.Width, p.Past.Height, p.Future.Width, p.Future.Height)
	}
	if p.Past.Width > maxSide || p.Past.Height > maxSide {
		return fmt.Errorf("%w: %dx%d exceeds %d per side", ErrInvalidPuzzle, p.Past.Width, p.Past.Height, maxSide)
	}
	if !p.Past.InBounds(p.Start) || !p.Past.InBounds(p.Goal) {
		return fmt.Errorf("%w: start %v or goal %v out of bounds", ErrInvalidPuzzle, p.Start, p.Goal)
	}
	if len(p.Obstacles) > MaxObstacles {
		return fmt.Errorf("%w: %d > %d", ErrTooManyObstacles, len(p.Obstacles), MaxObstacles)
	}
	for i, o := range p.Obstacles {
		if !p.Past.InBounds(o) || o == p.Start {
			return fmt.Errorf("%w: obstacle %v", ErrInvalidPuzzle, o)
		}
		for _, q := range p.Obstacles[:i] {
			if q == o {
				return fmt.Errorf("%w: duplicate obstacle %v", ErrInvalidPuzzle, o)
			}
		}
	}
	return nil
}

// Solution is the outcome of a successful search.
type Solution struct {
	// Steps is the number of moves; always len(Path).
	Steps int
	// Path is the move sequence from the initial state to the goal.
	Path []grid.Direction
	// BoxesPushed counts obstacle pushes along Path.
	BoxesPushed int
	// Explored is the number of states visited, summed over search passes.
	Explored int
}

// Option configures Solve via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks for a search.
type Options struct {
	// MaxStates caps the states visited over all passes.
	MaxStates int
	// OnVisit is called for every dequeued state with its depth. Depth never
	// decreases within a pass; each new pass starts again from the root.
	OnVisit func(s State, depth int)

	err error
}

// DefaultOptions returns DefaultMaxStates and a no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		MaxStates: DefaultMaxStates,
		OnVisit:   func(State, int) {},
	}
}

// WithMaxStates sets the visited-state budget. n must be positive.
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxStates must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}

// WithOnVisit registers a callback run on every dequeued state.
func WithOnVisit(fn func(s State, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
