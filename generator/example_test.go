package generator_test

import (
	"fmt"

	"github.com/katalvlaran/chronogrid/generator"
)

// ExampleGenerator_Generate builds a keyed level and checks its stored solution.
func ExampleGenerator_Generate() {
	g, err := generator.New(generator.WithSeed(7))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	level, err := g.Generate(10, 8, 3, generator.Options{EnableKeys: true})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(level.Verify() == nil, level.MinMoves == len(level.SolutionPath))
	// Output:
	// true true
}

// ExampleGenerator_GenerateSeeded rebuilds a level from its recorded seed.
func ExampleGenerator_GenerateSeeded() {
	opts := generator.Options{EnableLevers: true}
	first, _ := generator.New(generator.WithSeed(1))
	a, _ := first.Generate(8, 8, 2, opts)

	second, _ := generator.New()
	b, _ := second.GenerateSeeded(a.Seed, 8, 8, 2, opts)

	fmt.Println(a.Hint() == b.Hint())
	// Output:
	// true
}
