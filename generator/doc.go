// Package generator produces dual-timeline puzzle levels that are proven
// solvable before they are returned.
//
// What:
//
//   - Generator.Generate runs a bounded retry loop. Each attempt synthesizes
//     fresh terrain, places start, goal, mechanisms and obstacles, and asks the
//     solver for a shortest solution.
//   - Accepted layouts are pruned down to the footprint of their solution and
//     re-solved; the result is returned as LevelData.
//   - When every attempt fails, a fallback room that is solvable by
//     construction is returned instead. Generate never fails for valid input.
//
// Acceptance:
//
//   - The solver must find a path within its visited-state budget:
//     Config.StatesPerCell per grid cell, capped at Config.MaxStates.
//   - With obstacles enabled, the path must push at least one obstacle.
//   - A zero-move level (start and goal collapsed) is rejected as trivial.
//
// Relaxation:
//
//   - Terrain density is lowered by Config.RelaxStep after
//     Config.FirstRelaxAfter failed attempts, and by twice that after
//     Config.SecondRelaxAfter, never below Density.Floor.
//
// Determinism:
//
//   - Each level draws one seed from the generator's RNG and runs every
//     attempt from an RNG built on that seed. GenerateSeeded with
//     LevelData.Seed and the same Config reproduces the layout.
//
// Options:
//
//   - WithSeed / WithRand    choose the level-seed stream.
//   - WithConfig             replaces DefaultConfig (validated in New).
//   - WithLogger             structured logging via log/slog.
//   - WithMetrics            Prometheus counters and histograms.
//
// Errors:
//
//   - ErrInvalidRequest for width/height outside 3..64 or difficulty outside 0..10.
//   - ErrInvalidConfig from New or LoadConfig.
//
// Concurrency:
//
//   - A Generator owns a *rand.Rand and is not safe for concurrent use.
//     Create one generator per goroutine, seeded with DeriveSeed.
package generator
