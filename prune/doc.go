// Package prune walls off terrain that an accepted solution never touches.
//
// What:
//
//   - Prune replays a solution path, collects per timeline every cell the
//     agent stood on plus every cell an obstacle ever occupied, and returns
//     fresh grids in which every other Empty cell is Wall.
//
// Why:
//
//   - Generated terrain is noisy. Removing dead floor focuses the level on the
//     route that was proven solvable, and it never lengthens that route:
//     every cell the replay depends on is kept, so the same moves still work.
//
// Guarantees:
//
//   - Input grids are never modified.
//   - Start, goal, key, chest, lever, door and lever-gate tiles are preserved.
//   - Walls stay walls; only Empty cells change.
//
// Errors:
//
//   - solver.ErrNilPuzzle / solver.ErrInvalidPuzzle from replay validation.
//   - ErrUnsolvedPath if the path does not end with both agents on the goal.
//
// Complexity: O(L·K + W·H) for a path of L moves and K obstacles.
package prune
