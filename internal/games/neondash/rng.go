package neondash

import (
	"math/rand"
	"time"
)

// Rand is the source of uniform draws in [0,1) used by the spawn policy and
// the particle effects. *rand.Rand satisfies it; tests supply fixed sequences.
type Rand interface {
	Float64() float64
}

// NewRand returns a seeded source. A zero seed uses the current time.
func NewRand(seed int64) Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
