// SPDX-License-Identifier: MIT
// Package: cfgsched/tensor
//
// validators.go - canonical guards shared by every kernel.
//
// Each validator returns a plain sentinel wrapped with its own tag so call
// sites can add their operation name on top and still match with errors.Is.

package tensor

import (
	"fmt"
	"math"
)

// validatorErrorf tags a sentinel violation with the validator name.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil returns ErrNilTensor if t is nil.
func ValidateNotNil(t *Tensor) error {
	if t == nil {
		return validatorErrorf("ValidateNotNil", ErrNilTensor)
	}

	return nil
}

// ValidateSameShape returns ErrDimensionMismatch unless a and b have identical
// dimensions. Assumes both are non-nil.
func ValidateSameShape(a, b *Tensor) error {
	if len(a.shape) != len(b.shape) {
		return validatorErrorf("ValidateSameShape: rank", ErrDimensionMismatch)
	}
	for k := range a.shape {
		if a.shape[k] != b.shape[k] {
			return validatorErrorf(fmt.Sprintf("ValidateSameShape: dim %d", k), ErrDimensionMismatch)
		}
	}

	return nil
}

// ValidateBinary is the composite NotNil(a) → NotNil(b) → SameShape guard.
func ValidateBinary(a, b *Tensor) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinary", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinary", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinary", err)
	}

	return nil
}

// ValidateFinite returns ErrNaNInf if any element is NaN or ±Inf.
func ValidateFinite(t *Tensor) error {
	if err := ValidateNotNil(t); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}
	for _, v := range t.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf("ValidateFinite", ErrNaNInf)
		}
	}

	return nil
}
