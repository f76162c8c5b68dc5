// SPDX-License-Identifier: MIT
// Package: cfgsched/sigmas
//
// sequence.go - the Sequence type and its read-only helpers.

package sigmas

import "math"

// Sequence is an ordered list of noise levels, one per sampling step.
type Sequence []float64

// FromFloat32 widens a host float32 tensor into a Sequence.
func FromFloat32(vals []float32) Sequence {
	out := make(Sequence, len(vals))
	for i, v := range vals {
		out[i] = float64(v)
	}

	return out
}

// Float32 narrows the sequence to the host's float32 element type.
func (s Sequence) Float32() []float32 {
	out := make([]float32, len(s))
	for i, v := range s {
		out[i] = float32(v)
	}

	return out
}

// Len returns the number of steps.
func (s Sequence) Len() int { return len(s) }

// Clone returns an independent copy (nil stays nil).
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	copy(out, s)

	return out
}

// Bounds returns the smallest and largest values. ok is false for an empty
// sequence, in which case both bounds are 0.
// Complexity: O(n).
func (s Sequence) Bounds() (lo, hi float64, ok bool) {
	if len(s) == 0 {
		return 0, 0, false
	}
	lo, hi = s[0], s[0]
	for _, v := range s[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return lo, hi, true
}

// Min returns the smallest value, or 0 for an empty sequence.
func (s Sequence) Min() float64 {
	lo, _, _ := s.Bounds()

	return lo
}

// Max returns the largest value, or 0 for an empty sequence.
func (s Sequence) Max() float64 {
	_, hi, _ := s.Bounds()

	return hi
}

// IsNonIncreasing reports whether s[i] >= s[i+1] for every i.
func (s Sequence) IsNonIncreasing() bool {
	for i := 1; i < len(s); i++ {
		if s[i] > s[i-1] {
			return false
		}
	}

	return true
}

// Validate returns ErrNaNInf if any element is NaN or ±Inf.
func (s Sequence) Validate() error {
	for _, v := range s {
		if !isFinite(v) {
			return sigmasErrorf("Validate", ErrNaNInf)
		}
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// mapValues applies fn to every element into a new Sequence.
func mapValues(s Sequence, fn func(float64) float64) Sequence {
	out := make(Sequence, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}

	return out
}
