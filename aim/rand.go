package aim

import "math/rand/v2"

// RandSource yields uniformly distributed values in [0,1).
type RandSource interface {
	Float64() float64
}

// NewRand returns an unseeded source. Placement is cosmetic, so runs are not
// reproducible; tests inject their own source.
func NewRand() RandSource {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
