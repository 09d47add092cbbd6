package dataset

import (
	"encoding/binary"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Source is the random number stream of one generation run.
// It carries two independent sub-streams derived from the same seed:
//   - continuous: normal/uniform/integer draws (PCG)
//   - discrete:   choice draws such as the international coin flip (ChaCha8)
//
// A Source is not safe for concurrent use.
type Source struct {
	// continuous feeds distuv directly; contRand wraps it for integer draws.
	continuous rand.Source
	contRand   *rand.Rand

	discrete *rand.Rand
}

// NewSource seeds both sub-streams from seed.
func NewSource(seed uint64) *Source {
	cont := rand.NewPCG(seed, seed)

	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	return &Source{
		continuous: cont,
		contRand:   rand.New(cont),
		discrete:   rand.New(rand.NewChaCha8(key)),
	}
}

// Normal draws from N(mu, sigma).
func (s *Source) Normal(mu, sigma float64) float64 {
	return distuv.Normal{Mu: mu, Sigma: sigma, Src: s.continuous}.Rand()
}

// Uniform draws from [lo, hi).
func (s *Source) Uniform(lo, hi float64) float64 {
	return distuv.Uniform{Min: lo, Max: hi, Src: s.continuous}.Rand()
}

// IntRange draws an integer from [lo, hi).
func (s *Source) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.contRand.IntN(hi-lo)
}

// CoinFlip is a fair boolean draw from the discrete stream.
func (s *Source) CoinFlip() bool {
	return Choice(s, []bool{true, false})
}

// Choice picks one element of items uniformly using the discrete stream.
// items must not be empty.
func Choice[T any](s *Source, items []T) T {
	return items[s.discrete.IntN(len(items))]
}
