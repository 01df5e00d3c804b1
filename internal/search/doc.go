// Package search implements the concurrent probable-prime search engine:
// a pool of symmetric workers racing to find primes, and the coordinator
// that decides when enough have been found.
//
// # Overview
//
// The search is a race. Primes of cryptographic size are sparse, so the
// cost of finding one is dominated by how many random candidates must be
// tested before a hit. Independent workers amortize that cost: each runs a
// tight draw-test-report loop against a shared candidate source and
// primality oracle, and the first workers to find primes win the ordinals.
//
// # Architecture
//
//	┌─────────────────────────────────────────┐
//	│                Engine                    │
//	│  spawns N workers, joins on completion   │
//	└───────┬──────────┬──────────┬───────────┘
//	        │          │          │
//	        ▼          ▼          ▼
//	   ┌────────┐ ┌────────┐ ┌────────┐
//	   │ worker │ │ worker │ │ worker │   draw → test → report
//	   └───┬────┘ └───┬────┘ └───┬────┘
//	       │          │          │
//	       └──────────┼──────────┘
//	                  ▼
//	        ┌──────────────────┐
//	        │   Coordinator    │  mutex-guarded count/done,
//	        │  (one mutex)     │  ordinal assignment, output
//	        └──────────────────┘
//
// # Coordination protocol
//
// All mutable search state lives in the Coordinator behind a single mutex:
// the number of primes found, the done flag, and the discovery log. A worker
// that finds a probable prime calls ReportIfPrime; under the lock the
// coordinator either accepts it (assigning the next ordinal and emitting it)
// or drops it silently because the target was already reached. Ordinals are
// therefore a strict, gap-free total order 1..targetCount even though which
// worker wins each one is a race.
//
// # Termination
//
// Cancellation is cooperative. Workers poll the done flag between
// candidates; a worker mid-test finishes that candidate before noticing the
// flag, so wasted work after the target is reached is bounded by one
// candidate per worker. Engine.Run returns only after every worker has
// observed the flag and exited.
//
// There are no timeouts: a search runs until the requested count is found,
// however long that takes, unless its context is cancelled.
package search
