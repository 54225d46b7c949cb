package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Int64 returns a non-negative pseudo-random seed value.
func (r *RNG) Int64() int64 { return r.r.Int64() }

// FillBytes fills buf with uniformly random byte values.
func FillBytes(r *rand.Rand, buf []byte) {
	for i := range buf {
		buf[i] = uint8(r.UintN(256))
	}
}

// Randomize fills the grid with random cells, keeping padding bits zero.
func (g *BitGrid) Randomize(r *rand.Rand) {
	FillBytes(r, g.data)
	g.clearPadding()
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
