// SPDX-License-Identifier: MIT
// Package: cfgsched/sigmas
//
// power.go - exponent and logarithm transforms.
//
// Predefined bases are addressed by name so node adapters can expose them as
// a fixed choice list: exponents {"e","2","10"}, logarithms {"ln","log2","log10"}.

package sigmas

import (
	"fmt"
	"math"
)

// LogFloor is the smallest value a logarithm is taken of. Schedules
// conventionally end at 0, whose logarithm is −Inf; values at or below zero
// are floored here instead.
const LogFloor = 1e-10

// Predefined exponent base names.
const (
	BaseE  = "e"
	Base2  = "2"
	Base10 = "10"
)

// Predefined logarithm names.
const (
	LogNatural = "ln"
	Log2       = "log2"
	Log10      = "log10"
)

var exponentBases = map[string]float64{
	BaseE:  math.E,
	Base2:  2,
	Base10: 10,
}

var logarithmBases = map[string]float64{
	LogNatural: math.E,
	Log2:       2,
	Log10:      10,
}

// ExponentNames lists the predefined exponent bases in display order.
func ExponentNames() []string { return []string{BaseE, Base2, Base10} }

// LogarithmNames lists the predefined logarithms in display order.
func LogarithmNames() []string { return []string{LogNatural, Log2, Log10} }

// checkFinite returns ErrNaNInf when any result element overflowed.
func checkFinite(tag string, s Sequence) (Sequence, error) {
	for i, v := range s {
		if !isFinite(v) {
			return nil, sigmasErrorf(fmt.Sprintf("%s[%d]", tag, i), ErrNaNInf)
		}
	}

	return s, nil
}

// ToPower raises every value to p: out[i] = s[i]^p.
// Errors: ErrNaNInf when p is not finite or a result is not finite
// (e.g. 0 raised to a negative power).
func ToPower(s Sequence, p float64) (Sequence, error) {
	if !isFinite(p) {
		return nil, sigmasErrorf("ToPower", ErrNaNInf)
	}

	return checkFinite("ToPower", mapValues(s, func(v float64) float64 { return math.Pow(v, p) }))
}

// CustomExponent returns out[i] = base^s[i] for a positive finite base.
func CustomExponent(s Sequence, base float64) (Sequence, error) {
	if !isFinite(base) || base <= 0 {
		return nil, sigmasErrorf("CustomExponent", ErrBadBase)
	}

	return checkFinite("CustomExponent", mapValues(s, func(v float64) float64 { return math.Pow(base, v) }))
}

// PredefinedExponent is CustomExponent with a named base ("e", "2", "10").
func PredefinedExponent(s Sequence, name string) (Sequence, error) {
	base, ok := exponentBases[name]
	if !ok {
		return nil, sigmasErrorf("PredefinedExponent("+name+")", ErrUnknownName)
	}

	return CustomExponent(s, base)
}

// CustomBaseLogarithm returns out[i] = log_base(max(s[i], LogFloor)).
// Errors: ErrBadBase unless base is positive, finite and not 1.
func CustomBaseLogarithm(s Sequence, base float64) (Sequence, error) {
	if !isFinite(base) || base <= 0 || base == 1 {
		return nil, sigmasErrorf("CustomBaseLogarithm", ErrBadBase)
	}
	lnBase := math.Log(base)

	return mapValues(s, func(v float64) float64 {
		return math.Log(math.Max(v, LogFloor)) / lnBase
	}), nil
}

// PredefinedLogarithm is CustomBaseLogarithm with a named base
// ("ln", "log2", "log10").
func PredefinedLogarithm(s Sequence, name string) (Sequence, error) {
	base, ok := logarithmBases[name]
	if !ok {
		return nil, sigmasErrorf("PredefinedLogarithm("+name+")", ErrUnknownName)
	}

	return CustomBaseLogarithm(s, base)
}
