package solver

import (
	"fmt"

	"github.com/katalvlaran/chronogrid/grid"
)

// node is one discovered state with its parent link.
type node struct {
	state  State
	parent int // -1 for root
	dir    grid.Direction
	depth  int
	pushes int
}

// walker encapsulates mutable search state. nodes doubles as the FIFO queue:
// everything at or after head is still frontier.
type walker struct {
	puzzle *Puzzle
	opts   Options
	bound  *bound
	// limit caps depth+estimate for the current pass; next is the smallest
	// value that exceeded it.
	limit, next int
	explored    int
	nodes       []node
	visited     map[StateKey]struct{}
}

// Solve runs breadth-first search on p from its initial state.
//
// States from which the goal is statically unreachable are discarded, and
// each pass skips states whose depth plus lower bound exceeds a limit. The
// limit starts at the initial state's bound and is raised to the smallest
// value a pass cut off. A pass that reaches the goal returns the same path an
// unbounded search would.
//
// Returns ErrNilPuzzle, ErrInvalidPuzzle or ErrTooManyObstacles for bad
// input, ErrOptionViolation for bad options, ErrBudgetExhausted when more
// than MaxStates states are visited over all passes, or ErrNoSolution when
// the goal is unreachable.
func Solve(p *Puzzle, opts ...Option) (*Solution, error) {
	if p == nil {
		return nil, ErrNilPuzzle
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	w := &walker{
		puzzle:  p,
		opts:    o,
		bound:   newBound(p),
		nodes:   make([]node, 0, 1024),
		visited: make(map[StateKey]struct{}, 1024),
	}
	root := p.InitialState()
	w.limit = w.bound.estimate(root)
	if w.limit == unreachable {
		return nil, fmt.Errorf("%w: goal unreachable from the start", ErrNoSolution)
	}

	for {
		sol, err := w.pass(root)
		if sol != nil || err != nil {
			return sol, err
		}
		if w.next == unreachable {
			return nil, fmt.Errorf("%w: %d states explored", ErrNoSolution, w.explored)
		}
		w.limit = w.next
	}
}

// pass runs one bounded sweep from root. It returns a nil Solution and nil
// error when the frontier empties.
func (w *walker) pass(root State) (*Solution, error) {
	if w.explored >= w.opts.MaxStates {
		return nil, fmt.Errorf("%w: more than %d states", ErrBudgetExhausted, w.opts.MaxStates)
	}
	clear(w.visited)
	w.nodes = w.nodes[:0]
	w.next = unreachable

	w.visited[root.Key()] = struct{}{}
	w.explored++
	w.nodes = append(w.nodes, node{state: root, parent: -1})
	return w.loop()
}

// loop expands nodes in FIFO order until the goal test passes, the frontier
// empties, or the budget is exceeded.
func (w *walker) loop() (*Solution, error) {
	goal := w.puzzle.Goal
	for head := 0; head < len(w.nodes); head++ {
		cur := w.nodes[head]
		w.opts.OnVisit(cur.state, cur.depth)
		if cur.state.Solved(goal) {
			return w.solution(head), nil
		}
		if err := w.expand(head, cur); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

// expand enqueues every unseen successor of cur that fits the pass limit.
func (w *walker) expand(head int, cur node) error {
	depth := cur.depth + 1
	for _, d := range grid.Directions {
		tr := w.puzzle.Step(cur.state, d)
		if !tr.Changed {
			continue
		}
		est := w.bound.estimate(tr.Next)
		if est == unreachable {
			continue
		}
		if f := depth + est; f > w.limit {
			w.next = min(w.next, f)
			continue
		}
		key := tr.Next.Key()
		if _, seen := w.visited[key]; seen {
			continue
		}
		if w.explored >= w.opts.MaxStates {
			return fmt.Errorf("%w: more than %d states", ErrBudgetExhausted, w.opts.MaxStates)
		}
		w.visited[key] = struct{}{}
		w.explored++
		pushes := cur.pushes
		if tr.Pushed {
			pushes++
		}
		w.nodes = append(w.nodes, node{
			state:  tr.Next,
			parent: head,
			dir:    d,
			depth:  depth,
			pushes: pushes,
		})
	}
	return nil
}

// solution rebuilds the move list ending at node i.
func (w *walker) solution(i int) *Solution {
	end := w.nodes[i]
	path := make([]grid.Direction, end.depth)
	for at := i; w.nodes[at].parent >= 0; at = w.nodes[at].parent {
		path[w.nodes[at].depth-1] = w.nodes[at].dir
	}
	return &Solution{
		Steps:       end.depth,
		Path:        path,
		BoxesPushed: end.pushes,
		Explored:    w.explored,
	}
}
