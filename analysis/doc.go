// Package analysis finds cells worth blocking with obstacles.
//
// Two independent heuristics are provided:
//
//   - Bottlenecks: one-tile-wide corridor cells, detected purely from local
//     geometry (walls on one axis, open floor on the other).
//   - CriticalTiles: cells on a single-timeline shortest path whose removal
//     disconnects start from goal.
//
// Neither heuristic decides solvability. They only bias where obstacles are
// placed so that the solver is more likely to require a push.
//
// Complexity (N = W×H):
//
//   - Bottlenecks:   O(N).
//   - CriticalTiles: O(L·N) where L is the shortest-path length.
package analysis
