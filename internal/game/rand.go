package game

import "math/rand/v2"

// Rand is the draw source for all games. Production uses the system source;
// tests queue fixed draws.
type Rand interface {
	// IntN returns a uniform int in [0, n).
	IntN(n int) int
	// Float64 returns a uniform float64 in [0, 1).
	Float64() float64
}

type systemRand struct{}

func (systemRand) IntN(n int) int   { return rand.IntN(n) }
func (systemRand) Float64() float64 { return rand.Float64() }

// SystemRand returns a Rand backed by the runtime's seeded generator.
func SystemRand() Rand {
	return systemRand{}
}
