package primality

import (
	"math/big"
	mathrand "math/rand"
	"time"
)

// WitnessSource yields random witness bases for Miller-Rabin rounds.
// Sources are used by a single test call at a time and need not be safe
// for concurrent use.
type WitnessSource interface {
	// Witness returns a base in [2, value-2) for the given value, chosen
	// by rejection sampling. For values too small to admit any base in
	// that window (value <= 4) it returns 2 so the general loop can still
	// run.
	Witness(value *big.Int) *big.Int
}

// mathRandSource draws witness bases from a non-secure math/rand generator.
// Witness selection only needs adequate distribution, not unpredictability.
type mathRandSource struct {
	rng *mathrand.Rand
}

// NewMathWitnessSource returns a witness source backed by a freshly seeded
// math/rand generator. Each oracle test call constructs its own source, so
// the generator is never shared across goroutines.
func NewMathWitnessSource() WitnessSource {
	return &mathRandSource{
		rng: mathrand.New(mathrand.NewSource(time.Now().UnixNano())),
	}
}

// Witness rejection-samples a base from a byte buffer as wide as value's
// magnitude, redrawing until the base lands in [2, value-2).
func (s *mathRandSource) Witness(value *big.Int) *big.Int {
	upper := new(big.Int).Sub(value, two)
	if upper.Cmp(two) <= 0 {
		// The window [2, value-2) is empty; no valid base exists.
		return new(big.Int).Set(two)
	}

	buf := make([]byte, len(value.Bytes()))
	for {
		s.rng.Read(buf)
		a := new(big.Int).SetBytes(buf)
		if a.Cmp(two) >= 0 && a.Cmp(upper) < 0 {
			return a
		}
	}
}
