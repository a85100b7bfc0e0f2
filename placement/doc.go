// Package placement chooses cells for the start, goal, mechanisms and
// obstacles of a level, and builds structural gates around objectives.
//
// What:
//
//   - Constraints accumulates claimed positions and an optional anchor with a
//     minimum Manhattan distance.
//   - Placer.Place draws random cells that are Empty in every supplied grid and
//     satisfy the constraints, within a bounded number of attempts.
//   - Placer.Gate surrounds a target with walls, leaving exactly one entrance
//     stamped with a Door or LeverGate.
//   - Placer.Obstacles seeds pushable obstacles, preferring supplied cells
//     (critical tiles, bottlenecks) before falling back to random cells away
//     from the start.
//
// Exhaustion:
//
//	When no legal cell is found within MaxAttempts, Place returns the origin
//	together with ErrPlacementExhausted. The level is still assembled; if the
//	degenerate cell makes it unsolvable the solver rejects it and the
//	generator retries.
//
// Determinism: all randomness flows through the *rand.Rand given to NewPlacer.
package placement
