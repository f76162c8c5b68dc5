// SPDX-License-Identifier: MIT
// Package: cfgsched/schedulers
//
// options.go - functional options for the analytic curve family.
//
// Contract:
//   - Option constructors validate and PANIC on meaningless inputs
//     (programmer error); generators themselves never panic.
//   - Options resolve into an immutable curveConfig; later options win.

package schedulers

// Deterministic defaults.
const (
	defaultRangeLo = 0.0 // curve minimum after normalization
	defaultRangeHi = 1.0 // curve maximum after normalization
)

// curveConfig holds the resolved knobs shared by every analytic curve.
type curveConfig struct {
	lo, hi    float64 // output range
	normalize bool    // min-max normalize into [lo, hi]
}

// CurveOption customizes an analytic curve generator.
type CurveOption func(*curveConfig)

// newCurveConfig applies opts over the defaults in order.
func newCurveConfig(opts ...CurveOption) curveConfig {
	cfg := curveConfig{lo: defaultRangeLo, hi: defaultRangeHi, normalize: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRange maps the normalized curve into [lo, hi] instead of [0, 1].
// Panics if either bound is NaN/Inf or lo > hi.
func WithRange(lo, hi float64) CurveOption {
	if !finite(lo) || !finite(hi) || lo > hi {
		panic("schedulers: WithRange requires finite lo <= hi")
	}

	return func(c *curveConfig) {
		c.lo, c.hi = lo, hi
	}
}

// WithRaw disables min-max normalization; the generator's analytic values
// are returned untouched and any WithRange is ignored.
func WithRaw() CurveOption {
	return func(c *curveConfig) {
		c.normalize = false
	}
}

// position returns t = i/(steps−1), or 0 for a single-step curve.
func position(i, steps int) float64 {
	if steps < 2 {
		return 0
	}

	return float64(i) / float64(steps-1)
}

// positive reports whether v is a finite, strictly positive number.
func positive(v float64) bool {
	return finite(v) && v > 0
}
