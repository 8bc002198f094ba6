// SPDX-License-Identifier: MIT

package rootfinder

import "errors"

// Sentinel errors returned by the root finder.
var (
	// ErrInvalidInterval indicates a seed interval whose left bound exceeds its right bound.
	ErrInvalidInterval = errors.New("rootfinder: invalid interval")

	// ErrDegenerateInput indicates the zero polynomial, whose roots are all of ℝ.
	ErrDegenerateInput = errors.New("rootfinder: zero polynomial")

	// ErrUnknownStrategy indicates a Strategy value outside the enumeration.
	ErrUnknownStrategy = errors.New("rootfinder: unknown strategy")

	// ErrBudgetExceeded indicates that Next processed its step budget without
	// producing a root. The finder state is intact; call Next again to resume.
	ErrBudgetExceeded = errors.New("rootfinder: step budget exceeded")

	// ErrNotConverged indicates a numerical approximation that failed to converge.
	// It is handled internally by falling back to bisection.
	ErrNotConverged = errors.New("rootfinder: approximation did not converge")
)

// Done is returned by Next when every root has been returned.
// It is a plain signal, like io.EOF, and is never wrapped.
var Done = errors.New("rootfinder: no more roots")
