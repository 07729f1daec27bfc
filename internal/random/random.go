package random

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// Source is the subset of *rand.Rand the simulation draws from.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// Seeded returns a deterministic PCG generator for the given seed.
func Seeded(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional for deterministic simulation behavior.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// Roll reports whether a percent chance in [0,100] came up.
func Roll(src Source, percent int) bool {
	switch {
	case percent <= 0:
		return false
	case percent >= 100:
		return true
	}
	return src.IntN(100) < percent
}

// Pick returns a uniformly chosen index in [0,n), or -1 when n is not positive.
func Pick(src Source, n int) int {
	if n <= 0 {
		return -1
	}
	return src.IntN(n)
}

// Sequence replays fixed draws in order and wraps around when exhausted.
// An empty sequence always yields zero. Ints are reduced modulo n.
type Sequence struct {
	Ints   []int
	Floats []float64

	nextInt   int
	nextFloat int
}

func (s *Sequence) IntN(n int) int {
	if len(s.Ints) == 0 || n <= 0 {
		return 0
	}
	v := s.Ints[s.nextInt%len(s.Ints)]
	s.nextInt++
	if v < 0 {
		v = -v
	}
	return v % n
}

func (s *Sequence) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[s.nextFloat%len(s.Floats)]
	s.nextFloat++
	return v
}
