// Package grid models the tile grids that make up one timeline of a
// dual-timeline puzzle level.
//
// What:
//
//   - Tile enumerates the integer tile codes 0-9 shared with renderers.
//   - Position is an (x, y) cell coordinate ordered by x, then y.
//   - Direction is one of the four orthogonal moves (up, down, left, right).
//   - Grid is a rectangular, row-major tile array with bounds-checked access.
//   - ShortestPath and Connected run single-timeline BFS over a Grid.
//
// Why:
//
//   - Terrain synthesis, placement, analysis, solving and pruning all speak the
//     same vocabulary; keeping it in a leaf package avoids import cycles.
//
// Tile contract:
//
//	0 Empty  1 Wall  2 StartMarker  3 Obstacle  4 Goal
//	5 Key    6 Door  7 Chest        8 Lever     9 LeverGate
//
//	Unknown codes decode as Empty (see TileFromCode) so older consumers keep
//	working when new tiles are introduced.
//
// Complexity:
//
//   - At/Set/InBounds: O(1).
//   - Clone, Rows, Find, Count: O(W×H).
//   - ShortestPath, Connected: O(W×H) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid: requested or decoded grid has no rows or no columns.
//   - ErrNonRectangular: decoded rows have differing lengths.
//   - ErrOutOfBounds: a position lies outside the grid.
//   - ErrNoPath: no passable route exists between two positions.
//   - ErrUnknownDirection: a direction name could not be parsed.
package grid
