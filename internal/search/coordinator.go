package search

import (
	"fmt"
	"io"
	"math/big"
	"sync"

	"golang.org/x/exp/slices"
)

// Coordinator tracks how many primes have been found versus requested and
// signals the worker pool when the search is over. All mutable state sits
// behind one mutex; ReportIfPrime and the read accessors are safe to call
// from any number of goroutines.
type Coordinator struct {
	targetCount int
	out         io.Writer

	mu          sync.Mutex
	found       int
	done        bool
	discoveries []Discovery
}

// NewCoordinator creates a coordinator that accepts targetCount primes and
// writes each discovery to out as it is accepted.
func NewCoordinator(targetCount int, out io.Writer) *Coordinator {
	return &Coordinator{
		targetCount: targetCount,
		out:         out,
	}
}

// ReportIfPrime offers a probable prime to the coordinator. Under a single
// critical section it either accepts the value, assigning it the next
// ordinal and emitting it, or drops it because the target was already
// reached. A report arriving after done is a no-op, which is exactly what
// happens when a worker finishes the candidate it had in hand as the search
// ended.
//
// The first accepted discovery prints as "1: <value>"; every later one is
// preceded by a blank line.
func (c *Coordinator) ReportIfPrime(value *big.Int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.done {
		return
	}

	c.found++
	if c.found > 1 {
		fmt.Fprintln(c.out)
	}
	fmt.Fprintf(c.out, "%d: %s\n", c.found, value.String())

	c.discoveries = append(c.discoveries, Discovery{
		Ordinal: c.found,
		Value:   new(big.Int).Set(value),
	})

	if c.found >= c.targetCount {
		c.done = true
	}
}

// Done reports whether the target has been reached. Workers poll this
// between candidates to decide whether to keep searching.
func (c *Coordinator) Done() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.done
}

// Found returns the number of primes accepted so far. Never exceeds the
// target count.
func (c *Coordinator) Found() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.found
}

// Discoveries returns a copy of the accepted discoveries in ordinal order.
func (c *Coordinator) Discoveries() []Discovery {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Discovery(nil), c.discoveries...)
}

// Discovery returns the discovery holding the given ordinal, if one has
// been accepted.
func (c *Coordinator) Discovery(ordinal int) (Discovery, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := slices.IndexFunc(c.discoveries, func(d Discovery) bool { return d.Ordinal == ordinal })
	if idx < 0 {
		return Discovery{}, false
	}
	return c.discoveries[idx], true
}
