// SPDX-License-Identifier: MIT
// Package: cfgsched/schedulers
//
// peak.go - parametric single-peak curve.
//
// Model (per flank, w = warmup or decay):
//   - period  = π·min(w, 1)
//   - hold    = round(len·(max(|w|,1) − 1))     steps pinned at 0 at the far end
//   - delta   = period/(len − hold), or 1/(len − hold) for a linear flank
//   - divider = 1 − cos(period), offset = −cos(period)/divider
//   - concave: cos(x)/divider + offset
//   - convex:  1 − (cos(x)/divider + offset)
//   - linear:  1 − x
//
// The window (len − hold) is clamped to at least 1 so a peak at the sequence
// boundary, or a hold swallowing the whole flank, never divides by zero.
// Rounding is half-to-even.

package schedulers

import (
	"math"

	"github.com/katalvlaran/cfgsched/sigmas"
)

const methodParametricPeak = "ParametricPeak"

// PeakParams bundles the inputs of ParametricPeak.
type PeakParams struct {
	Steps  int     // total number of values, >= 1
	Peak   float64 // peak position as a fraction of Steps, in [0,1]
	Warmup float64 // rising flank shape; sign selects concave/convex/linear
	Decay  float64 // falling flank shape; sign selects concave/convex/linear
}

// Validate checks the structural preconditions: Steps >= 1, Peak in [0,1]
// and finite shape parameters. Tighter UI ranges are enforced by the node
// schema, not here.
func (p PeakParams) Validate() error {
	if p.Steps < 1 {
		return schedErrorf(methodParametricPeak, ErrBadSteps)
	}
	if math.IsNaN(p.Peak) || p.Peak < 0 || p.Peak > 1 {
		return schedErrorf(methodParametricPeak, ErrBadParam)
	}
	if !finite(p.Warmup) || !finite(p.Decay) {
		return schedErrorf(methodParametricPeak, ErrBadParam)
	}

	return nil
}

// PeakStep returns round(Steps·Peak), the index of the curve maximum.
func (p PeakParams) PeakStep() int {
	return int(math.RoundToEven(float64(p.Steps) * p.Peak))
}

// flank holds the precomputed coefficients for one side of the peak.
type flank struct {
	kind    ShapeKind
	hold    int     // steps held at zero at the outer end
	delta   float64 // x increment per step
	divider float64 // 1 − cos(period); unused when linear
	offset  float64 // −cos(period)/divider; 0 when linear
}

// newFlank derives the flank coefficients for a flank of length n.
func newFlank(shape float64, n int) flank {
	f := flank{
		kind: ShapeOf(shape),
		hold: int(math.RoundToEven(float64(n) * (math.Max(math.Abs(shape), 1) - 1))),
	}
	window := n - f.hold
	if window < 1 {
		window = 1
	}
	if f.kind == Linear {
		f.delta = 1 / float64(window)

		return f
	}
	period := math.Pi * math.Min(shape, 1)
	f.delta = period / float64(window)
	low := math.Cos(period)
	f.divider = 1 - low
	f.offset = -low / f.divider

	return f
}

// eased is the normalized cosine term shared by both curved shapes.
func (f flank) eased(x float64) float64 {
	return math.Cos(x)/f.divider + f.offset
}

// ParametricPeak returns a Steps-long curve that rises from 0 to 1 at
// PeakStep() and falls back toward 0.
//
// Rising flank (step < peak): values before the hold are 0; concave measures
// x backward from the peak, convex measures x forward from the end of the
// hold, linear is 1 − (peak − step)·delta.
// Falling flank (step ≥ peak): concave measures x forward from the peak,
// convex measures x backward from Steps, linear is 1 − (step − peak)·delta;
// steps at or after Steps − hold are 0.
// The falling flank is never evaluated at step == Steps, so without a hold
// the value at index Steps−1 is one delta above 0, not 0.
//
// Errors: ErrBadSteps, ErrBadParam (see PeakParams.Validate).
// Complexity: O(Steps) time and memory.
func ParametricPeak(steps int, peak, warmup, decay float64) (sigmas.Sequence, error) {
	return PeakParams{Steps: steps, Peak: peak, Warmup: warmup, Decay: decay}.Generate()
}

// Generate evaluates the curve described by p.
func (p PeakParams) Generate() (sigmas.Sequence, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	peakStep := p.PeakStep()
	decaySteps := p.Steps - peakStep
	rise := newFlank(p.Warmup, peakStep)
	fall := newFlank(p.Decay, decaySteps)
	releaseStep := peakStep + decaySteps - fall.hold

	out := make(sigmas.Sequence, p.Steps)
	for step := 0; step < p.Steps; step++ {
		if step < peakStep {
			out[step] = rise.riseAt(step, peakStep)
		} else if step < releaseStep {
			out[step] = fall.fallAt(step, peakStep, p.Steps)
		}
	}

	return out, nil
}

// riseAt evaluates the rising flank at step (< peakStep).
func (f flank) riseAt(step, peakStep int) float64 {
	if step < f.hold {
		return 0
	}
	switch f.kind {
	case Convex:
		return 1 - f.eased(float64(step-f.hold)*f.delta)
	case Concave:
		return f.eased(float64(peakStep-step) * f.delta)
	default:
		return 1 - float64(peakStep-step)*f.delta
	}
}

// fallAt evaluates the falling flank at step (>= peakStep, before release).
func (f flank) fallAt(step, peakStep, steps int) float64 {
	switch f.kind {
	case Concave:
		return f.eased(float64(step-peakStep) * f.delta)
	case Convex:
		return 1 - f.eased(float64(steps-step)*f.delta)
	default:
		return 1 - float64(step-peakStep)*f.delta
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
