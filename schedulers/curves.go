// SPDX-License-Identifier: MIT
// Package: cfgsched/schedulers
//
// curves.go - analytic curve family: cosine, gaussian, log-normal, k/x and
// arctan.
//
// Contract:
//   - Each generator evaluates its formula at t = i/(steps−1) (or at the raw
//     index for k/x), then min-max normalizes the result into the configured
//     range through sigmas.ScaleToRange. A single-step curve has no spread
//     and collapses to the range minimum.
//   - O(steps) time and memory; no panics; no global state.

package schedulers

import (
	"math"

	"github.com/katalvlaran/cfgsched/sigmas"
)

const (
	methodCosine    = "Cosine"
	methodGaussian  = "Gaussian"
	methodLogNormal = "LogNormal"
	methodXInverse  = "XInverse"
	methodArctan    = "Arctan"
)

// sqrt2Pi is √(2π), the log-normal density normalizer.
var sqrt2Pi = math.Sqrt(2 * math.Pi)

// build fills a steps-long sequence with fn(i) and applies the range policy.
func build(method string, steps int, fn func(i int) float64, opts []CurveOption) (sigmas.Sequence, error) {
	if steps < 1 {
		return nil, schedErrorf(method, ErrBadSteps)
	}
	cfg := newCurveConfig(opts...)

	raw := make(sigmas.Sequence, steps)
	for i := range raw {
		raw[i] = fn(i)
	}
	if !cfg.normalize {
		return raw, nil
	}

	out, err := sigmas.ScaleToRange(raw, cfg.lo, cfg.hi)
	if err != nil {
		return nil, schedErrorf(method, err)
	}

	return out, nil
}

// Cosine returns a half-cosine fall (1 + cos(πt))/2: 1 at the first step,
// 0 at the last, flat at both ends.
func Cosine(steps int, opts ...CurveOption) (sigmas.Sequence, error) {
	return build(methodCosine, steps, func(i int) float64 {
		return (1 + math.Cos(math.Pi*position(i, steps))) / 2
	}, opts)
}

// Gaussian returns exp(−(t − mean)²/(2·std²)), a bell centred at the
// fractional position mean. std must be positive.
func Gaussian(steps int, mean, std float64, opts ...CurveOption) (sigmas.Sequence, error) {
	if !finite(mean) || !positive(std) {
		return nil, schedErrorf(methodGaussian, ErrBadParam)
	}
	twoVar := 2 * std * std

	return build(methodGaussian, steps, func(i int) float64 {
		d := position(i, steps) - mean

		return math.Exp(-d * d / twoVar)
	}, opts)
}

// LogNormal returns the log-normal density with parameters (mu, sigma)
// evaluated at t = (i+1)/steps ∈ (0, 1], giving a skewed peak early in the
// run. sigma must be positive.
func LogNormal(steps int, mu, sigma float64, opts ...CurveOption) (sigmas.Sequence, error) {
	if !finite(mu) || !positive(sigma) {
		return nil, schedErrorf(methodLogNormal, ErrBadParam)
	}
	twoVar := 2 * sigma * sigma

	return build(methodLogNormal, steps, func(i int) float64 {
		t := float64(i+1) / float64(steps)
		d := math.Log(t) - mu

		return math.Exp(-d*d/twoVar) / (t * sigma * sqrt2Pi)
	}, opts)
}

// XInverse returns k/(i + k): 1 at the first step with a hyperbolic tail
// whose steepness falls as k grows. k must be positive.
func XInverse(steps int, k float64, opts ...CurveOption) (sigmas.Sequence, error) {
	if !positive(k) {
		return nil, schedErrorf(methodXInverse, ErrBadParam)
	}

	return build(methodXInverse, steps, func(i int) float64 {
		return k / (float64(i) + k)
	}, opts)
}

// Arctan returns 1/2 − atan(steepness·(t − midpoint))/π, a smooth step down
// centred at the fractional position midpoint. steepness must be positive.
func Arctan(steps int, steepness, midpoint float64, opts ...CurveOption) (sigmas.Sequence, error) {
	if !positive(steepness) || !finite(midpoint) {
		return nil, schedErrorf(methodArctan, ErrBadParam)
	}

	return build(methodArctan, steps, func(i int) float64 {
		return 0.5 - math.Atan(steepness*(position(i, steps)-midpoint))/math.Pi
	}, opts)
}
