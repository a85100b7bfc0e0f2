package generator

import (
	"math/rand"
	"time"
)

// zeroSeedStand is used in place of level seed 0.
const zeroSeedStand int64 = 1

// levelRNG returns the stream that drives every attempt of one level, and the
// generator's own stream of level seeds under WithSeed.
func levelRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = zeroSeedStand
	}
	return rand.New(rand.NewSource(seed))
}

// clockRNG seeds the level-seed stream of a generator built without WithSeed.
func clockRNG() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// weyl is the SplitMix64 increment.
const weyl = 0x9e3779b97f4a7c15

// DeriveSeed returns the generator seed for batch worker number worker when a
// batch starts from base. Worker i of chronogen batch is built with
// WithSeed(DeriveSeed(base, i)), so one --seed and --workers pair regenerates
// every file, while neighbouring workers and neighbouring bases still get
// unrelated level-seed streams.
func DeriveSeed(base int64, worker uint64) int64 {
	z := uint64(base) + (worker+1)*weyl
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return int64(z ^ (z >> 31))
}
