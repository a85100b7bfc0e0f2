// Package terrain synthesizes the wall layout of both timelines before any
// objects are placed.
//
// The past grid is sampled cell by cell: a cell becomes Wall with probability
//
//	max(Base + difficulty·Slope + adjustment, Floor)
//
// The future grid is derived from the past one. A past Wall decays to Empty
// with probability Decay; a past Empty cell collapses into Wall with
// probability difficulty·GrowthSlope. The asymmetry between the two grids is
// what makes each timeline reach places the other cannot.
//
// No connectivity is guaranteed here; the solver accepts or rejects the
// finished layout.
//
// Determinism: the same *rand.Rand state yields the same pair of grids.
//
// Complexity: O(W×H) time and memory.
package terrain
