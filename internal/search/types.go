package search

import (
	"errors"
	"math/big"
)

// MinByteWidth is the narrowest candidate the engine will search for:
// 4 bytes, i.e. 32 bits.
const MinByteWidth = 4

// ErrByteWidthTooSmall is returned when a target requests candidates
// narrower than MinByteWidth bytes.
var ErrByteWidthTooSmall = errors.New("byte width must be at least 4 (32 bits)")

// ErrTargetCountTooSmall is returned when a target requests fewer than one
// prime.
var ErrTargetCountTooSmall = errors.New("target count must be at least 1")

// Target describes one search: how many bytes wide each candidate is and
// how many probable primes to report. Immutable once constructed.
type Target struct {
	ByteWidth   int // candidate width in bytes
	TargetCount int // number of primes to find
}

// Validate checks the target against the engine's contract.
func (t Target) Validate() error {
	if t.ByteWidth < MinByteWidth {
		return ErrByteWidthTooSmall
	}
	if t.TargetCount < 1 {
		return ErrTargetCountTooSmall
	}
	return nil
}

// Discovery records the acceptance of one probable prime. The ordinal is
// assigned under the coordinator's lock, so across a run ordinals form a
// strict total order 1..targetCount with no gaps or duplicates.
type Discovery struct {
	Ordinal int      // position in acceptance order, starting at 1
	Value   *big.Int // the probable prime
}
