// Package entropy provides the random sources used by palette generation.
//
// Every function that samples takes a Source explicitly. Production code
// wires a seeded or crypto-seeded generator; tests wire a Sequence so the
// sampled values are known in advance. Sources are not safe for concurrent
// use: give each goroutine its own.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"math"
	mathrand "math/rand/v2"
)

// Source yields uniformly distributed values in [0, 1).
type Source interface {
	Float64() float64
}

// NewSeeded returns a deterministic ChaCha8-backed source.
func NewSeeded(seed uint64) Source {
	var seedArray [32]byte
	binary.LittleEndian.PutUint64(seedArray[:8], seed)
	return mathrand.New(mathrand.NewChaCha8(seedArray))
}

// NewRandom returns a source seeded from crypto/rand.
func NewRandom() Source {
	return NewSeeded(RandomSeed())
}

// RandomSeed returns a non-deterministic seed.
func RandomSeed() uint64 {
	var randomBytes [8]byte
	if _, err := rand.Read(randomBytes[:]); err != nil {
		// #nosec G404 -- fallback only when the OS entropy pool is unavailable
		return mathrand.Uint64()
	}
	return binary.LittleEndian.Uint64(randomBytes[:])
}

// Sequence replays a fixed list of values, cycling when exhausted.
// Values outside [0, 1) are clamped into range. An empty Sequence yields 0.5.
type Sequence struct {
	values []float64
	next   int
}

// NewSequence returns a Sequence over values.
func NewSequence(values ...float64) *Sequence {
	clamped := make([]float64, len(values))
	for i, v := range values {
		clamped[i] = clampUnit(v)
	}
	return &Sequence{values: clamped}
}

// Float64 implements Source.
func (s *Sequence) Float64() float64 {
	if len(s.values) == 0 {
		return 0.5
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// Drawn returns how many values have been consumed.
func (s *Sequence) Drawn() int {
	return s.next
}

// Range returns a value uniformly drawn from [lo, hi).
func Range(src Source, lo, hi float64) float64 {
	return lo + sample(src)*(hi-lo)
}

// Intn returns a value uniformly drawn from [0, n). n <= 0 yields 0.
func Intn(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(sample(src) * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Chance reports true with probability p.
func Chance(src Source, p float64) bool {
	return sample(src) < p
}

// Pick returns a uniformly chosen element of items. It panics on an empty slice.
func Pick[T any](src Source, items []T) T {
	return items[Intn(src, len(items))]
}

func sample(src Source) float64 {
	if src == nil {
		src = NewRandom()
	}
	return clampUnit(src.Float64())
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v >= 1 {
		return math.Nextafter(1, 0)
	}
	return v
}
