// Package solver decides whether a dual-timeline level is solvable and, if
// so, returns a shortest move sequence.
//
// What
//
//   - Two agents, one per timeline, receive the same move each step.
//   - The joint State holds both positions, the shared Flags
//     (HoldsKey, KeyDeposited, FutureHoldsKey, LeverEngaged) and the sorted
//     list of live obstacle positions.
//   - Solve runs breadth-first search over joint states; the first state with
//     both agents on the goal yields a minimum-length Solution.
//   - The search is pruned by a lower bound on the moves left, read from
//     per-timeline distance tables (see Pruning).
//   - Replay re-simulates any move list under the same rules.
//
// Transition rules (Puzzle.Step)
//
//	Past agent: blocked by bounds and Wall; blocked by LeverGate until the
//	lever is engaged; entering an obstacle pushes it one cell further when
//	the destination is open floor in both grids, free of obstacles and not
//	occupied by the future agent (the paradox rule). A blocked push blocks
//	the move. After moving: pick up Key, deposit into Chest, engage Lever.
//
//	Future agent: blocked by bounds and Wall; blocked by Door until it holds
//	the retrieved key; blocked by LeverGate until the lever is engaged; always
//	blocked by obstacles (it cannot push). Entering a Chest after the past
//	deposit retrieves the key.
//
//	The future half-step sees the flags and obstacle positions produced by
//	the past half-step of the same move. The lever is one-way.
//
// Determinism
//
//	Moves are expanded in Up, Down, Left, Right order and obstacle lists are
//	kept sorted, so the same puzzle always yields the same path.
//
// Pruning
//
//	Before searching, reverse breadth-first searches over each grid give the
//	fewest moves each agent needs to reach the goal, tracked per layer of the
//	flags that agent changes itself (lever and key stage for the past agent,
//	the retrieved key for the future agent). Obstacles are ignored, so the
//	tables never overestimate. When the future agent cannot reach the goal
//	without a Door, the past agent's distance is taken through a deposit.
//
//	A state whose bound is infinite can never be solved and is dropped. The
//	search then runs in passes: each pass skips states whose depth plus bound
//	exceeds a limit, raised after each failed pass to the smallest value it
//	cut off. The bound falls by at most one per move, so every pass keeps
//	breadth-first order and the returned path matches an unbounded search.
//
// Budget
//
//	States visited over all passes are capped (WithMaxStates). Exceeding the
//	cap returns ErrBudgetExhausted rather than hanging on pathological layouts.
//
// Complexity
//
//   - Time:   O(S) Step calls × 4, S = visited states (≤ MaxStates), plus
//     O(W·H) per distance table.
//   - Memory: O(S) for one pass's visited set and parent links.
//
// Errors
//
//   - ErrNilPuzzle          if the puzzle pointer is nil.
//   - ErrInvalidPuzzle      if grids or positions are inconsistent.
//   - ErrTooManyObstacles   if more than MaxObstacles obstacles are given.
//   - ErrOptionViolation    if an Option is invalid.
//   - ErrNoSolution         if the reachable state space has no goal state.
//   - ErrBudgetExhausted    if the visited-state cap was exceeded.
package solver
