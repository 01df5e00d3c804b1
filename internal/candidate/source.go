package candidate

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// ErrInvalidWidth is returned when a draw is requested with a non-positive
// byte width.
var ErrInvalidWidth = errors.New("byte width must be positive")

// Source produces one random non-negative integer of a fixed byte width
// per call. Implementations must be safe for concurrent use by multiple
// goroutines without external locking.
type Source interface {
	// Draw returns a fresh random integer whose magnitude is set from
	// exactly byteWidth random bytes. The result is in [0, 2^(8*byteWidth)).
	Draw(byteWidth int) (*big.Int, error)
}

// CryptoSource implements Source using the operating system's CSPRNG
// via crypto/rand. It holds no state of its own; every draw reads fresh
// entropy from the shared system source.
type CryptoSource struct {
	// reader is the entropy source, crypto/rand.Reader in production.
	// Overridable for tests that exercise the failure path.
	reader io.Reader
}

// NewCryptoSource creates a candidate source backed by crypto/rand.
func NewCryptoSource() *CryptoSource {
	return &CryptoSource{reader: rand.Reader}
}

// Draw fills byteWidth bytes from the secure source and interprets them as
// a single unsigned magnitude. The top bit is not forced to 1, so the value
// may occupy fewer than 8*byteWidth bits.
//
// A short or failed read from the entropy source is returned as an error;
// there is no retry.
func (s *CryptoSource) Draw(byteWidth int) (*big.Int, error) {
	if byteWidth <= 0 {
		return nil, ErrInvalidWidth
	}

	buf := make([]byte, byteWidth)
	if _, err := io.ReadFull(s.reader, buf); err != nil {
		return nil, fmt.Errorf("read entropy: %w", err)
	}

	return new(big.Int).SetBytes(buf), nil
}
