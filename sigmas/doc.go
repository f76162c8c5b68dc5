// Package sigmas defines the SigmaSequence type and the pure transforms the
// sigma utility nodes expose: range scaling, inversion, offsetting,
// concatenation, splitting by value, exponentiation and logarithms.
//
// What is a sigma sequence?
//
//	An ordered list of noise levels, one per sampling step, conventionally
//	non-increasing from the largest sigma toward ~0. Consumers assume that
//	order; this package never enforces it (IsNonIncreasing reports it).
//
// Contract:
//   - Every transform returns a NEW Sequence; inputs are never modified.
//   - Length is preserved, except Concat (len(a)+len(b)) and SplitByValue
//     (two parts whose lengths sum to the input length).
//   - Numeric edge cases are resolved locally with documented fallbacks
//     (equal-valued ScaleToRange, logarithm of zero) instead of producing NaN.
//
// Usage:
//
//	seq := sigmas.Sequence{14.6, 7.2, 3.1, 0.9, 0}
//	unit, _ := sigmas.ScaleToRange(seq, 0, 1)   // 1 … 0
//	rising := sigmas.Invert(unit)               // 0 … 1
//	below, rest := sigmas.SplitByValue(rising, 0.5)
package sigmas
