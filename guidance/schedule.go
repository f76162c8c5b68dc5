// SPDX-License-Identifier: MIT
// Package: cfgsched/guidance
//
// schedule.go - sigma schedule lookup and percent/scale mapping.
//
// Contract:
//   - Index(σ) selects the smallest trigger >= σ (the later position on
//     ties) and returns 0 when σ exceeds every trigger. On a non-increasing
//     schedule this is the last i, scanning from the start, with seq[i] >= σ.
//   - Percent(σ) ∈ [0, 1]; a degenerate schedule (empty, or max == min)
//     yields 1 so the scale collapses to cfg_max.
//   - Schedule is an immutable value; NewSchedule copies its input.

package guidance

import (
	"math"

	"github.com/katalvlaran/cfgsched/sigmas"
)

// Schedule maps a sampler's current sigma onto a guidance position.
type Schedule struct {
	seq    sigmas.Sequence
	lo, hi float64
}

// NewSchedule snapshots seq. The sequence is expected non-increasing, as
// sampler schedules are, but any order is accepted.
func NewSchedule(seq sigmas.Sequence) Schedule {
	s := Schedule{seq: seq.Clone()}
	if lo, hi, ok := seq.Bounds(); ok {
		s.lo, s.hi = lo, hi
	}

	return s
}

// Len reports the number of trigger sigmas.
func (s Schedule) Len() int { return len(s.seq) }

// Sigmas returns a copy of the trigger sigmas.
func (s Schedule) Sigmas() sigmas.Sequence { return s.seq.Clone() }

// Bounds returns the (min, max) of the trigger sigmas; zeros when empty.
func (s Schedule) Bounds() (lo, hi float64) { return s.lo, s.hi }

// Degenerate reports whether the schedule cannot produce a range, i.e. it is
// empty or all triggers share one value.
func (s Schedule) Degenerate() bool {
	return len(s.seq) == 0 || !(s.hi > s.lo)
}

// Index returns the position of the trigger sigma governing sigma.
func (s Schedule) Index(sigma float64) int {
	idx, found := 0, false
	for i, trigger := range s.seq {
		if trigger >= sigma && (!found || trigger <= s.seq[idx]) {
			idx, found = i, true
		}
	}

	return idx
}

// Percent returns the normalized position of sigma's trigger in [0, 1].
func (s Schedule) Percent(sigma float64) float64 {
	if s.Degenerate() {
		return 1
	}
	trigger := s.seq[s.Index(sigma)]
	p := (trigger - s.lo) / (s.hi - s.lo)

	return math.Min(1, math.Max(0, p))
}

// Scale interpolates the guidance scale for sigma:
// cfgMin + (cfgMax − cfgMin)·Percent(sigma).
func (s Schedule) Scale(sigma, cfgMin, cfgMax float64) float64 {
	return cfgMin + (cfgMax-cfgMin)*s.Percent(sigma)
}

// Step is one row of a schedule table.
type Step struct {
	Index   int
	Sigma   float64
	Percent float64
	CFG     float64
}

// Table evaluates Scale at every trigger sigma.
func (s Schedule) Table(cfgMin, cfgMax float64) []Step {
	out := make([]Step, len(s.seq))
	for i, v := range s.seq {
		p := s.Percent(v)
		out[i] = Step{Index: i, Sigma: v, Percent: p, CFG: cfgMin + (cfgMax-cfgMin)*p}
	}

	return out
}
