package lottery

import (
	cryptoRand "crypto/rand"
	"math/big"
	"math/rand/v2"
)

// RandomSource abstract

type RandomSource interface {
	IntN(n int) int // [0, n)
}

// crypto random : default generation method, stateless so safe to share
type cryptoRNG struct{}

func (cryptoRNG) IntN(n int) int {
	if n <= 1 {
		return 0
	}
	v, err := cryptoRand.Int(cryptoRand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// back to math/rand/v2
		return rand.IntN(n)
	}
	return int(v.Int64())
}

func DefaultRNG() RandomSource { return cryptoRNG{} }

// Replicable RNG (tests, coverage runs). Not safe for concurrent use.
type seededRNG struct{ r *rand.Rand }

func NewSeededRNG(seed uint64) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededRNG) IntN(n int) int {
	if n <= 1 {
		return 0
	}
	return s.r.IntN(n)
}

// shuffle permutes xs in place (Fisher-Yates).
func shuffle(rng RandomSource, xs []int) {
	for i := len(xs) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		xs[i], xs[j] = xs[j], xs[i]
	}
}

// seq returns 1..n
func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}
