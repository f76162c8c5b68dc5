// SPDX-License-Identifier: MIT
// Package: cfgsched/tensor
//
// errors.go - sentinel errors for the tensor package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Kernels wrap sentinels with their operation name ("Add: ...: %w").
//   - No kernel panics on user-triggered conditions.

package tensor

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape is empty or has a
	// non-positive dimension, or when data length disagrees with the shape.
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrNilTensor indicates a nil *Tensor receiver or argument.
	ErrNilTensor = errors.New("tensor: nil tensor")

	// ErrDimensionMismatch indicates operands with different shapes.
	ErrDimensionMismatch = errors.New("tensor: dimension mismatch")

	// ErrOutOfRange indicates a multi-index outside the tensor bounds.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrNaNInf signals a NaN or ±Inf where finite values are required.
	ErrNaNInf = errors.New("tensor: NaN or Inf encountered")
)

// tensorErrorf wraps err with the given operation tag.
func tensorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
