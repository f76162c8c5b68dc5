// SPDX-License-Identifier: MIT
// Package: cfgsched/sigmas
//
// transforms.go - range and order transforms: ScaleToRange, Invert, Offset,
// Concat, SplitByValue.
//
// Contract:
//   - Pure: inputs are read-only, results are freshly allocated.
//   - O(n) time and memory for every transform.

package sigmas

import "math"

// ScaleToRange affinely maps the sequence so its current minimum lands on
// newMin and its current maximum on newMax:
//
//	out[i] = (s[i] − min) · (newMax − newMin)/(max − min) + newMin
//
// newMin > newMax is allowed and flips the orientation.
// When every element is equal (max == min) there is no spread to rescale and
// every output element is newMin.
//
// Errors: ErrEmptySequence for empty input, ErrNaNInf for non-finite bounds.
func ScaleToRange(s Sequence, newMin, newMax float64) (Sequence, error) {
	if !isFinite(newMin) || !isFinite(newMax) {
		return nil, sigmasErrorf("ScaleToRange", ErrNaNInf)
	}
	lo, hi, ok := s.Bounds()
	if !ok {
		return nil, sigmasErrorf("ScaleToRange", ErrEmptySequence)
	}
	if !isFinite(lo) || !isFinite(hi) {
		return nil, sigmasErrorf("ScaleToRange", ErrNaNInf)
	}

	spread := hi - lo
	if spread == 0 {
		return mapValues(s, func(float64) float64 { return newMin }), nil
	}
	coef := (newMax - newMin) / spread

	return mapValues(s, func(v float64) float64 { return (v-lo)*coef + newMin }), nil
}

// Invert mirrors every value inside the sequence's own range:
// out[i] = max + min − s[i]. A descending schedule becomes ascending over the
// same interval. An empty input yields an empty output.
func Invert(s Sequence) Sequence {
	lo, hi, _ := s.Bounds()

	return mapValues(s, func(v float64) float64 { return hi + lo - v })
}

// Offset adds delta to every value. Results below zero are clamped to 0 since
// a noise level cannot be negative.
func Offset(s Sequence, delta float64) Sequence {
	return mapValues(s, func(v float64) float64 { return math.Max(0, v+delta) })
}

// Concat returns a followed by b; len(out) == len(a)+len(b).
func Concat(a, b Sequence) Sequence {
	out := make(Sequence, 0, len(a)+len(b))
	out = append(out, a...)

	return append(out, b...)
}

// SplitByValue partitions s at the first index whose value exceeds threshold:
// before holds s[:i] and rest holds s[i:]. When no element exceeds the
// threshold, before is the whole sequence and rest is empty.
// len(before)+len(rest) == len(s); both parts are copies.
func SplitByValue(s Sequence, threshold float64) (before, rest Sequence) {
	cut := len(s)
	for i, v := range s {
		if v > threshold {
			cut = i
			break
		}
	}
	before = append(Sequence{}, s[:cut]...)
	rest = append(Sequence{}, s[cut:]...)

	return before, rest
}
