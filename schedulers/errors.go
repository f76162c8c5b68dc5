// SPDX-License-Identifier: MIT
// Package: cfgsched/schedulers
//
// errors.go - sentinel errors for curve generators.
//
// Error policy:
//   - Generators validate inputs first and return wrapped sentinels.
//   - Option constructors (WithX) panic on meaningless values instead;
//     that is programmer error, not user input.

package schedulers

import (
	"errors"
	"fmt"
)

// ErrBadSteps indicates a step count below 1.
var ErrBadSteps = errors.New("schedulers: steps must be >= 1")

// ErrBadParam indicates a shape parameter that is NaN/Inf or outside the
// domain the generator can evaluate (e.g. a non-positive deviation).
var ErrBadParam = errors.New("schedulers: invalid shape parameter")

// schedErrorf prefixes err with the generator name.
func schedErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
