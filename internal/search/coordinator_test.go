// Package search provides the concurrent prime search engine.
// This file contains tests for the result coordinator's state machine.
package search

import (
	"bytes"
	"fmt"
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewCoordinator verifies a fresh coordinator starts with no progress.
func TestNewCoordinator(t *testing.T) {
	var buf bytes.Buffer
	coord := NewCoordinator(3, &buf)

	assert.NotNil(t, coord)
	assert.False(t, coord.Done())
	assert.Equal(t, 0, coord.Found())
	assert.Empty(t, coord.Discoveries())
	assert.Empty(t, buf.String())
}

// TestReportIfPrimeOrdinalsAndOutput verifies ordinal assignment and the
// exact output framing: the first discovery has no leading separator, every
// later one is preceded by a blank line.
func TestReportIfPrimeOrdinalsAndOutput(t *testing.T) {
	var buf bytes.Buffer
	coord := NewCoordinator(3, &buf)

	coord.ReportIfPrime(big.NewInt(7))
	assert.Equal(t, "1: 7\n", buf.String())
	assert.False(t, coord.Done())

	coord.ReportIfPrime(big.NewInt(11))
	assert.Equal(t, "1: 7\n\n2: 11\n", buf.String())

	coord.ReportIfPrime(big.NewInt(13))
	assert.Equal(t, "1: 7\n\n2: 11\n\n3: 13\n", buf.String())
	assert.True(t, coord.Done())
	assert.Equal(t, 3, coord.Found())

	discoveries := coord.Discoveries()
	require.Len(t, discoveries, 3)
	for i, d := range discoveries {
		assert.Equal(t, i+1, d.Ordinal)
	}
	assert.Equal(t, int64(7), discoveries[0].Value.Int64())
	assert.Equal(t, int64(13), discoveries[2].Value.Int64())
}

// TestReportIfPrimeAfterDone verifies that a late report is a complete
// no-op: no count change, no output, no discovery.
func TestReportIfPrimeAfterDone(t *testing.T) {
	var buf bytes.Buffer
	coord := NewCoordinator(1, &buf)

	coord.ReportIfPrime(big.NewInt(101))
	require.True(t, coord.Done())
	before := buf.String()

	// A worker that was mid-test when the target was reached reports late
	coord.ReportIfPrime(big.NewInt(103))

	assert.Equal(t, 1, coord.Found())
	assert.True(t, coord.Done())
	assert.Equal(t, before, buf.String())
	assert.Len(t, coord.Discoveries(), 1)
}

// TestReportIfPrimeConcurrentBoundary hammers the coordinator from many
// goroutines at the completion boundary and verifies the found count never
// exceeds the target and ordinals stay gap-free.
func TestReportIfPrimeConcurrentBoundary(t *testing.T) {
	const target = 5
	const reporters = 50

	var buf bytes.Buffer
	coord := NewCoordinator(target, &buf)

	var wg sync.WaitGroup
	wg.Add(reporters)
	for i := 0; i < reporters; i++ {
		go func(n int) {
			defer wg.Done()
			// Every reporter races to land one of the five slots
			coord.ReportIfPrime(big.NewInt(int64(1000 + n)))
		}(i)
	}
	wg.Wait()

	assert.True(t, coord.Done())
	assert.Equal(t, target, coord.Found())

	discoveries := coord.Discoveries()
	require.Len(t, discoveries, target)
	for i, d := range discoveries {
		assert.Equal(t, i+1, d.Ordinal, "ordinals must be gap-free")
	}
}

// TestCoordinatorDiscoveryLookup verifies lookup by ordinal.
func TestCoordinatorDiscoveryLookup(t *testing.T) {
	var buf bytes.Buffer
	coord := NewCoordinator(2, &buf)

	coord.ReportIfPrime(big.NewInt(17))
	coord.ReportIfPrime(big.NewInt(19))

	d, ok := coord.Discovery(2)
	require.True(t, ok)
	assert.Equal(t, int64(19), d.Value.Int64())

	_, ok = coord.Discovery(3)
	assert.False(t, ok)

	_, ok = coord.Discovery(0)
	assert.False(t, ok)
}

// TestCoordinatorValueCopied verifies the coordinator stores its own copy
// of a reported value, immune to later mutation by the reporting worker.
func TestCoordinatorValueCopied(t *testing.T) {
	var buf bytes.Buffer
	coord := NewCoordinator(1, &buf)

	v := big.NewInt(29)
	coord.ReportIfPrime(v)
	v.SetInt64(99) // worker reuses its local

	d, ok := coord.Discovery(1)
	require.True(t, ok)
	assert.Equal(t, int64(29), d.Value.Int64())
}

// TestTargetValidate covers the core's target contract.
func TestTargetValidate(t *testing.T) {
	tests := []struct {
		name    string
		target  Target
		wantErr error
	}{
		{"valid minimal", Target{ByteWidth: 4, TargetCount: 1}, nil},
		{"valid wide", Target{ByteWidth: 256, TargetCount: 10}, nil},
		{"width too small", Target{ByteWidth: 3, TargetCount: 1}, ErrByteWidthTooSmall},
		{"zero width", Target{ByteWidth: 0, TargetCount: 1}, ErrByteWidthTooSmall},
		{"zero count", Target{ByteWidth: 4, TargetCount: 0}, ErrTargetCountTooSmall},
		{"negative count", Target{ByteWidth: 4, TargetCount: -2}, ErrTargetCountTooSmall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.target.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

// TestCoordinatorLargeValues verifies decimal rendering of values far past
// int64 range.
func TestCoordinatorLargeValues(t *testing.T) {
	var buf bytes.Buffer
	coord := NewCoordinator(1, &buf)

	v, ok := new(big.Int).SetString("170141183460469231731687303715884105727", 10) // 2^127 - 1
	require.True(t, ok)

	coord.ReportIfPrime(v)
	assert.Equal(t, fmt.Sprintf("1: %s\n", v.String()), buf.String())
}
