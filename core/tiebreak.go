package core

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// RandSource provides random selection among tied optimal allocations.
// This interface enables dependency injection for deterministic testing.
type RandSource interface {
	// Intn returns a random integer in [0, n). Panics if n <= 0.
	Intn(n int) int
}

// cryptoRandSource wraps crypto/rand for production use
type cryptoRandSource struct{}

// Intn returns a cryptographically secure random integer in [0, n).
// Panics if n <= 0 (programmer error).
func (cryptoRandSource) Intn(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("cryptoRandSource.Intn: n must be positive, got %d", n))
	}
	// rand.Int does not error when using rand.Reader
	// https://pkg.go.dev/crypto/rand#Int
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(nBig.Int64())
}

// CryptoRand is a cryptographically secure random source for callers who
// want uniform tie-breaking without seeding their own generator.
var CryptoRand RandSource = cryptoRandSource{}

// resolveTie selects one allocation among n equally optimal ones. A nil
// source means deterministic selection of the first-discovered optimum; a
// non-nil source chooses uniformly. The resolver only picks among
// allocations already known to be optimal, so it can never affect welfare.
func resolveTie(n int, randSource RandSource) int {
	if randSource == nil || n <= 1 {
		return 0
	}
	return randSource.Intn(n)
}
