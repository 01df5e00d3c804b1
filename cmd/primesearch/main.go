// Package main implements the primesearch CLI, which searches for large
// probable primes of a caller-specified bit length using a pool of
// concurrent workers.
//
// The binary is a thin shell around the core packages:
//   - internal/candidate draws secure random candidates
//   - internal/primality tests them with Miller-Rabin
//   - internal/search races workers and reports discoveries
//
// Invocation:
//
//	primesearch <bits> [count]
//
//	bits   bit length of the primes to search for; must be a multiple
//	       of 8 and at least 32
//	count  number of primes to find (default 1)
//
// Any argument error prints a usage message and exits without starting the
// search. On success the program prints the bit length, each prime as it is
// found, and the elapsed wall-clock time.
//
// Tuning (environment):
//   - PRIMESEARCH_WORKERS: worker pool size (default: one per logical CPU)
//   - PRIMESEARCH_WITNESS_ROUNDS: Miller-Rabin rounds per test (default: 10)
//
// Example:
//
//	$ primesearch 256 2
//	BitLength: 256 bits
//	1: 9453...761
//
//	2: 1128...407
//	Time to Generate: 112.4ms
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/dreamware/primesearch/internal/candidate"
	"github.com/dreamware/primesearch/internal/primality"
	"github.com/dreamware/primesearch/internal/search"
)

// logFatal is a variable to allow mocking log.Fatalf in tests.
var logFatal = log.Fatalf

// usageMessage is printed verbatim on any invalid invocation. All argument
// errors collapse into this one message; the sub-cause is not surfaced.
const usageMessage = `Usage: primesearch <bits> [count]

  bits   bit length of the primes to search for; must be a multiple
         of 8 and at least 32
  count  number of primes to find (default 1)
`

// config holds one fully parsed invocation.
type config struct {
	bits    int // requested bit length; bits/8 is the candidate byte width
	count   int // number of primes to find
	workers int // pool size override; 0 means engine default
	rounds  int // witness rounds override; 0 means engine default
}

var errUsage = errors.New("invalid invocation")

func main() {
	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Print(usageMessage)
		return
	}

	cfg.workers = intFromEnv("PRIMESEARCH_WORKERS")
	cfg.rounds = intFromEnv("PRIMESEARCH_WITNESS_ROUNDS")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		logFatal("search: %v", err)
	}
}

// parseArgs validates the positional arguments. Every violation of the
// contract maps to the same errUsage; callers print the usage message and
// stop without invoking the core.
func parseArgs(args []string) (config, error) {
	if len(args) < 1 || len(args) > 2 {
		return config{}, errUsage
	}

	bits, err := strconv.Atoi(args[0])
	if err != nil || bits%8 != 0 || bits < 32 {
		return config{}, errUsage
	}

	count := 1
	if len(args) == 2 {
		count, err = strconv.Atoi(args[1])
		if err != nil || count < 1 {
			return config{}, errUsage
		}
	}

	return config{bits: bits, count: count}, nil
}

// run executes one search and writes all output to out. It blocks until
// the requested count is found, the context is cancelled, or the candidate
// source fails.
func run(ctx context.Context, cfg config, out io.Writer) error {
	fmt.Fprintf(out, "BitLength: %d bits\n", cfg.bits)
	start := time.Now()

	coord := search.NewCoordinator(cfg.count, out)
	engine := search.NewEngine(candidate.NewCryptoSource(), primality.NewOracle())
	if cfg.workers > 0 {
		engine.Workers = cfg.workers
	}
	if cfg.rounds > 0 {
		engine.WitnessRounds = cfg.rounds
	}

	target := search.Target{ByteWidth: cfg.bits / 8, TargetCount: cfg.count}
	if err := engine.Run(ctx, target, coord); err != nil {
		return err
	}

	fmt.Fprintf(out, "Time to Generate: %s\n", time.Since(start))
	return nil
}

// intFromEnv reads a positive integer tuning knob from the environment.
// Unset, malformed, or non-positive values yield 0, meaning "use the
// engine default" — tuning knobs never fail an invocation.
func intFromEnv(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0
	}
	return n
}
