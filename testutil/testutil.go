package testutil

import (
	"math/rand"
	"sync"

	"github.com/nearspace/covertree"
	"github.com/nearspace/covertree/color"
)

// RNG encapsulates a seeded random number generator. It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Color returns a uniformly random color.
func (r *RNG) Color() color.Color {
	r.mu.Lock()
	defer r.mu.Unlock()
	return color.FromHexCode(uint32(r.rand.Intn(1 << 24)))
}

// Colors returns n uniformly random colors.
func (r *RNG) Colors(n int) []color.Color {
	colors := make([]color.Color, n)
	for i := range colors {
		colors[i] = r.Color()
	}
	return colors
}

// Floats returns n pseudo-random numbers in [0, scale).
func (r *RNG) Floats(n int, scale float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = r.rand.Float64() * scale
	}
	return xs
}

// BruteNearest is the reference linear scan for cross-checking tree query
// results: it returns the point of ps nearest to query, keeping the first
// of equidistant points. ps must be non-empty.
func BruteNearest[T any](ps []T, query T, distFn covertree.DistanceFunc[T]) T {
	best := ps[0]
	bestDist := distFn(best, query)
	for _, p := range ps[1:] {
		if d := distFn(p, query); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

// AbsDistance is the one-dimensional Euclidean metric, handy for scenarios
// with hand-computable distances.
func AbsDistance(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
