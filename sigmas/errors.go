// SPDX-License-Identifier: MIT
// Package: cfgsched/sigmas
//
// errors.go - sentinel errors for sequence transforms.

package sigmas

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySequence is returned by transforms that need at least one value
	// (e.g. ScaleToRange has no min/max to map from).
	ErrEmptySequence = errors.New("sigmas: empty sequence")

	// ErrBadBase indicates an exponent or logarithm base that is not a
	// positive finite number (or equals 1 for logarithms).
	ErrBadBase = errors.New("sigmas: invalid base")

	// ErrNaNInf signals a NaN or ±Inf parameter or element.
	ErrNaNInf = errors.New("sigmas: NaN or Inf encountered")

	// ErrUnknownName is returned for an unrecognised predefined base name.
	ErrUnknownName = errors.New("sigmas: unknown predefined name")
)

// sigmasErrorf wraps err with the given operation tag.
func sigmasErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
