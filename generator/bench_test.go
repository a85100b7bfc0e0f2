package generator_test

import (
	"testing"

	"github.com/katalvlaran/chronogrid/generator"
)

// BenchmarkGenerate_Keys measures a keyed 12×10 level at mid difficulty.
func BenchmarkGenerate_Keys(b *testing.B) {
	g := newGenerator(b, 1)
	opts := generator.Options{EnableKeys: true}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Generate(12, 10, 5, opts)
	}
}

// BenchmarkGenerate_AllMechanisms includes obstacles, which dominate solver cost.
func BenchmarkGenerate_AllMechanisms(b *testing.B) {
	g := newGenerator(b, 1)
	opts := generator.Options{EnableKeys: true, EnableLevers: true, EnableObstacles: true}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Generate(10, 10, 5, opts)
	}
}
