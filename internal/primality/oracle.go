package primality

import "math/big"

// DefaultWitnessRounds is the number of Miller-Rabin rounds used when the
// caller asks for zero or fewer, giving a false-positive probability of at
// most 4^-10.
const DefaultWitnessRounds = 10

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Oracle decides, probabilistically, whether integers are prime. The zero
// cost of construction makes it cheap to share; the oracle itself holds no
// mutable state, so one instance may serve any number of goroutines.
type Oracle struct {
	// newWitnessSource builds the per-call witness generator. Replaceable
	// in tests for deterministic witness sequences.
	newWitnessSource func() WitnessSource
}

// NewOracle creates an oracle whose witnesses come from a freshly seeded
// math/rand generator per test call.
func NewOracle() *Oracle {
	return &Oracle{newWitnessSource: NewMathWitnessSource}
}

// IsProbablePrime runs witnessRounds rounds of Miller-Rabin against value.
// It returns false for any value <= 1 and never signals an error. A
// witnessRounds of zero or less is reset to DefaultWitnessRounds.
//
// The routine has no special casing for small or even inputs; every value
// goes through the general loop. See the package documentation for the
// resulting behavior on 2.
func (o *Oracle) IsProbablePrime(value *big.Int, witnessRounds int) bool {
	if value == nil || value.Cmp(one) <= 0 {
		return false
	}
	if witnessRounds <= 0 {
		witnessRounds = DefaultWitnessRounds
	}

	witnesses := o.newWitnessSource()

	// Decompose value-1 = d * 2^s with d odd.
	valueMinus1 := new(big.Int).Sub(value, one)
	d := new(big.Int).Set(valueMinus1)
	s := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s++
	}

	x := new(big.Int)
	for round := 0; round < witnessRounds; round++ {
		a := witnesses.Witness(value)

		x.Exp(a, d, value)
		if x.Cmp(one) == 0 || x.Cmp(valueMinus1) == 0 {
			continue
		}

		passed := false
		for r := 0; r < s-1; r++ {
			x.Mul(x, x)
			x.Mod(x, value)
			if x.Cmp(one) == 0 {
				// A nontrivial square root of 1 exists; composite.
				return false
			}
			if x.Cmp(valueMinus1) == 0 {
				passed = true
				break
			}
		}
		if !passed {
			return false
		}
	}

	return true
}
