// Package contract defines the shape of reusable behavioural test suites.
package contract

import (
	"testing"

	"go.llib.dev/testcase"
)

// Make creates a fresh instance of the subject under contract.
// It is called once per test case, so every case observes an untouched cursor.
type Make[Subject any] = func(tb testing.TB) Subject

// Contract is a behavioural specification that any implementation of a role interface must satisfy.
//
// For sequences this means the expectations a consumer silently relies on,
// such as exhaustion being sticky or a peek not advancing the cursor,
// are written down once and run against every implementation.
type Contract interface {
	testcase.Suite
	// Test runs the contract against the implementation.
	Test(*testing.T)
	// Benchmark measures the aspects of the contract a consumer cares about.
	Benchmark(*testing.B)
}
