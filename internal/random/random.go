// Package random provides uniform index draws for picking the computer's move.
//
// The default source reads crypto/rand so the move cannot be predicted from
// earlier rounds. A seeded source exists for reproducible tests.
package random

import (
	crand "crypto/rand"
	"errors"
	"io"
	"math/big"
	"math/rand"
	"sync"

	apperrors "github.com/louisbranch/fairrps/internal/platform/errors"
)

// ErrInvalidBound indicates a draw was requested from an empty range.
var ErrInvalidBound = errors.New("bound must be positive")

// IndexSource draws an index uniformly from [0, n).
type IndexSource interface {
	Intn(n int) (int, error)
}

// Crypto draws indices from a cryptographic byte stream.
type Crypto struct {
	// Reader supplies random bytes. Defaults to crypto/rand.
	Reader io.Reader
}

// Intn returns a uniform index in [0, n).
func (c Crypto) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidBound
	}
	reader := c.Reader
	if reader == nil {
		reader = crand.Reader
	}
	v, err := crand.Int(reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, apperrors.Wrap(apperrors.CodeEntropyUnavailable, "draw move index: read random bytes", err)
	}
	return int(v.Int64()), nil
}

// Seeded draws indices from a deterministic generator.
type Seeded struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeeded returns a Seeded source. Equal seeds yield equal draw sequences.
func NewSeeded(seed int64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns the next index in [0, n).
func (s *Seeded) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidBound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n), nil
}
