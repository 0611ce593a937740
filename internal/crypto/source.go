package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mrand "math/rand/v2"
	"sync"
)

// Source yields random indices in [0, n). Implementations must be safe for
// concurrent use.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

// NewSource returns the default non-seeded source backed by math/rand/v2.
func NewSource() Source {
	return globalSource{}
}

func (globalSource) IntN(n int) int {
	return mrand.IntN(n)
}

// SeededSource is a reproducible PCG source. Two sources built from the same
// seed return the same sequence.
type SeededSource struct {
	mu  sync.Mutex
	rng *mrand.Rand
}

// NewSeededSource creates a SeededSource from seed.
func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{rng: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *SeededSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// CryptoSource draws indices from crypto/rand.
type CryptoSource struct{}

// IntN picks a uniform index using crypto/rand. It panics if the system
// random reader fails, which crypto/rand documents as unrecoverable.
func (CryptoSource) IntN(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Sprintf("crypto/rand: %v", err))
	}
	return int(v.Int64())
}
