// Package primality implements probabilistic primality testing via the
// Miller-Rabin algorithm over math/big integers.
//
// # Overview
//
// The oracle answers "is this integer prime?" with a configurable number of
// witness rounds. Each round picks a random base and attempts to prove the
// value composite; a value that survives every round is reported as a
// probable prime, with false-positive probability at most 4^-rounds under
// standard assumptions.
//
// # Algorithm
//
// For an input n > 1 the test decomposes n-1 = d * 2^s with d odd, then for
// each round:
//
//	a   <- random base in [2, n-2)
//	x   <- a^d mod n
//	if x == 1 or x == n-1, the round passes
//	otherwise square x up to s-1 times; reaching n-1 passes the round,
//	reaching 1 (or exhausting the squarings) proves n composite
//
// There is deliberately no fast path for small primes or even inputs: the
// general loop runs for every value. A consequence, pinned by the tests, is
// that 2 itself is reported composite (its squaring loop runs zero times).
// Inputs <= 1 return false immediately.
//
// # Witness randomness
//
// Witness bases only need adequate distribution, not cryptographic strength,
// so they come from math/rand rather than crypto/rand. A fresh generator is
// seeded for every test call and picks bases by rejection sampling from a
// byte buffer as wide as the tested value. The generator sits behind the
// WitnessSource interface so a faster or deterministic source can be
// substituted; this is a known performance hotspot, not a correctness one.
package primality
