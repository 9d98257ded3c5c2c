package domain

import "math/rand/v2"

// A Rand supplies uniform random integers for the shipping fee and
// the order number suffix. Injected so tests can pin outcomes.
type Rand interface {
	IntN(n int) int
}

type systemRand struct{}

func (systemRand) IntN(n int) int {
	return rand.IntN(n)
}

func SystemRand() Rand {
	return systemRand{}
}
