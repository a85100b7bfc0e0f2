// Package chronogrid generates dual-timeline grid puzzles and proves each one
// solvable before handing it out.
//
// A level is two grids of identical size, "past" and "future". One move
// drives both agents in the same direction. The past agent picks up keys,
// pulls levers and pushes obstacles; the future agent inherits the results.
// A level is solved when both agents stand on the goal at the same time.
//
// Packages, leaf first:
//
//	grid/        tile codes 0-9, positions, directions, Grid, single-timeline BFS
//	terrain/     random wall layout for the past, decay/growth for the future
//	placement/   exclusion-aware random placement, structural gating, obstacles
//	analysis/    bottleneck and critical-tile heuristics for obstacle placement
//	solver/      joint-state BFS, transition rules, replay, hint formatting
//	prune/       walls off terrain the accepted solution never touches
//	generator/   retry/relax loop, acceptance policy, fallback room, LevelData
//	cmd/chronogen  CLI: generate, batch, verify
//
// Quick example:
//
//	g, _ := generator.New(generator.WithSeed(7))
//	level, _ := g.Generate(12, 10, 4, generator.Options{EnableKeys: true, EnableObstacles: true})
//	fmt.Println(level.MinMoves, level.Hint())
//
//	go install github.com/katalvlaran/chronogrid/cmd/chronogen@latest
package chronogrid
