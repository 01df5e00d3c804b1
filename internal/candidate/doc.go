// Package candidate provides random candidate generation for the prime
// search, producing arbitrary-precision integers of a fixed byte width from
// a cryptographically secure entropy source.
//
// # Overview
//
// A candidate is a non-negative big.Int whose magnitude is set from exactly
// N secure random bytes. No bit pattern is forced: the top bit of the top
// byte is left as drawn, so a candidate's numeric magnitude ranges over
// [0, 2^(8N)), not tightly over the top half of that interval. Callers that
// need an exact bit length must enforce it themselves; the search engine
// deliberately does not (see the package documentation for search).
//
// # Concurrency
//
// CryptoSource is stateless and safe for use by any number of goroutines
// without external locking; crypto/rand.Reader provides its own safety
// guarantees. A single shared source serves the whole worker pool.
//
// # Example
//
//	src := candidate.NewCryptoSource()
//	n, err := src.Draw(128) // a random integer of up to 1024 bits
//	if err != nil {
//		log.Fatalf("entropy source: %v", err)
//	}
package candidate
