// Package errs defines the three error kinds of §7: InvalidInput,
// Inconsistent, and SolverFailure. All three are fatal to the current
// round; callers branch on kind with errors.Is against the sentinels
// below.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks malformed or out-of-range input: an empty
	// interval list, mismatched X/R sizes, an out-of-range location id,
	// or malformed file content at the I/O boundary.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInconsistent marks a derivation failure: Horndini reached an
	// empty-premise ⊥ constraint, or Sorcar-minimal exhausted its
	// cardinality bound without finding a model.
	ErrInconsistent = errors.New("inconsistent")

	// ErrSolverFailure marks a failure of the external SAT engine used
	// by Sorcar-minimal: it returned unknown, or the call itself failed.
	ErrSolverFailure = errors.New("solver failure")
)

// InvalidInputf wraps ErrInvalidInput with a formatted message.
func InvalidInputf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidInput)...)
}

// Inconsistentf wraps ErrInconsistent with a formatted message.
func Inconsistentf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrInconsistent)...)
}

// SolverFailuref wraps ErrSolverFailure with a formatted message.
func SolverFailuref(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrSolverFailure)...)
}
