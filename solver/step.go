package solver

import (
	"slices"

	"github.com/katalvlaran/chronogrid/grid"
)

// Transition is the result of applying one move to a State.
type Transition struct {
	Next State
	// Pushed is true when the past agent moved an obstacle.
	Pushed bool
	// Changed is false when neither agent, flag nor obstacle changed.
	Changed bool
}

// Step applies move d to s under the puzzle rules. s is not modified.
func (p *Puzzle) Step(s State, d grid.Direction) Transition {
	next := s
	pushed := false

	// Past half-step.
	target := s.Past.Step(d)
	if p.pastCanEnter(target, next.Flags) {
		moved := true
		if idx := next.ObstacleAt(target); idx >= 0 {
			dest := target.Step(d)
			if p.pushable(dest, next.Obstacles, s.Future) {
				obs := slices.Clone(next.Obstacles)
				obs[idx] = dest
				slices.SortFunc(obs, grid.Position.Compare)
				next.Obstacles = obs
				pushed = true
			} else {
				moved = false
			}
		}
		if moved {
			next.Past = target
			next.Flags = p.interactPast(p.Past.At(target), next.Flags)
		}
	}

	// Future half-step, after the past agent's effects.
	target = s.Future.Step(d)
	if p.futureCanEnter(target, next) {
		next.Future = target
		if p.Mechanisms.Keys && p.Future.At(target) == grid.Chest &&
			next.Flags.Has(KeyDeposited) && !next.Flags.Has(FutureHoldsKey) {
			next.Flags |= FutureHoldsKey
		}
	}

	changed := pushed || next.Past != s.Past || next.Future != s.Future || next.Flags != s.Flags
	return Transition{Next: next, Pushed: pushed, Changed: changed}
}

func (p *Puzzle) pastCanEnter(q grid.Position, f Flags) bool {
	if !p.Past.InBounds(q) {
		return false
	}
	switch p.Past.At(q) {
	case grid.Wall:
		return false
	case grid.LeverGate:
		return !p.Mechanisms.Levers || f.Has(LeverEngaged)
	}
	return true
}

func (p *Puzzle) futureCanEnter(q grid.Position, s State) bool {
	if !p.Future.InBounds(q) || s.ObstacleAt(q) >= 0 {
		return false
	}
	switch p.Future.At(q) {
	case grid.Wall:
		return false
	case grid.Door:
		return !p.Mechanisms.Keys || s.Flags.Has(FutureHoldsKey)
	case grid.LeverGate:
		return !p.Mechanisms.Levers || s.Flags.Has(LeverEngaged)
	}
	return true
}

// pushable reports whether an obstacle may be pushed onto dest: open floor in
// both timelines, no other obstacle, and not the future agent's cell.
func (p *Puzzle) pushable(dest grid.Position, obstacles []grid.Position, future grid.Position) bool {
	if !p.Past.InBounds(dest) || dest == future {
		return false
	}
	if !p.Past.At(dest).Floor() || !p.Future.At(dest).Floor() {
		return false
	}
	return !slices.Contains(obstacles, dest)
}

func (p *Puzzle) interactPast(t grid.Tile, f Flags) Flags {
	switch t {
	case grid.Key:
		if p.Mechanisms.Keys && !f.Has(HoldsKey) && !f.Has(KeyDeposited) {
			f |= HoldsKey
		}
	case grid.Chest:
		if p.Mechanisms.Keys && f.Has(HoldsKey) {
			f = f&^HoldsKey | KeyDeposited
		}
	case grid.Lever:
		if p.Mechanisms.Levers {
			f |= LeverEngaged
		}
	}
	return f
}
