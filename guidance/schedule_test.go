// SPDX-License-Identifier: MIT

package guidance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/cfgsched/guidance"
	"github.com/katalvlaran/cfgsched/sigmas"
)

func TestSchedule_Index(t *testing.T) {
	t.Parallel()

	s := guidance.NewSchedule(sigmas.Sequence{14.6, 7.2, 3.1, 3.1, 0.9, 0})
	tests := []struct {
		name  string
		sigma float64
		want  int
	}{
		{"above every trigger", 20, 0},
		{"exact first", 14.6, 0},
		{"between first and second", 10, 0},
		{"exact second", 7.2, 1},
		{"tie resolves to later", 3.1, 3},
		{"between", 2, 3},
		{"exact zero", 0, 5},
		{"below every trigger", -1, 5},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, s.Index(tc.sigma))
		})
	}
}

func TestSchedule_IndexMatchesForwardScan(t *testing.T) {
	t.Parallel()

	// On a non-increasing schedule the selected trigger is the last one,
	// scanning from the start, that is still >= sigma.
	seq := sigmas.Sequence{9, 8, 6, 6, 3, 1, 0.5, 0}
	s := guidance.NewSchedule(seq)
	for _, v := range []float64{10, 9, 8.5, 7, 6, 5, 1, 0.7, 0.2, 0, -3} {
		want := 0
		for i, trigger := range seq {
			if trigger >= v {
				want = i
			} else {
				break
			}
		}
		assert.Equal(t, want, s.Index(v), "sigma=%v", v)
	}
}

func TestSchedule_ScaleScenario(t *testing.T) {
	t.Parallel()

	for _, seq := range []sigmas.Sequence{{1, 5, 10}, {10, 5, 1}} {
		s := guidance.NewSchedule(seq)
		assert.Equal(t, 1.0, s.Percent(10), "seq=%v", seq)
		assert.Equal(t, 12.0, s.Scale(10, 1, 12), "seq=%v", seq)
		assert.Equal(t, 0.0, s.Percent(1), "seq=%v", seq)
		assert.Equal(t, 1.0, s.Scale(1, 1, 12), "seq=%v", seq)
		assert.InDelta(t, 4.0/9.0, s.Percent(5), 1e-15)
	}
}

func TestSchedule_PercentClampedAndMonotone(t *testing.T) {
	t.Parallel()

	s := guidance.NewSchedule(sigmas.Sequence{14.6, 9, 4.2, 1.3, 0.03})
	prev := -1.0
	for sigma := 0.0; sigma <= 20; sigma += 0.25 {
		p := s.Percent(sigma)
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
		// Larger sigma never selects a smaller trigger until it exceeds
		// all of them and wraps to index 0 (the maximum).
		assert.GreaterOrEqual(t, p, prev, "sigma=%v", sigma)
		prev = p

		cfg := s.Scale(sigma, 2, 9)
		assert.GreaterOrEqual(t, cfg, 2.0)
		assert.LessOrEqual(t, cfg, 9.0)
	}
}

func TestSchedule_Degenerate(t *testing.T) {
	t.Parallel()

	for _, seq := range []sigmas.Sequence{nil, {}, {3}, {2, 2, 2}} {
		s := guidance.NewSchedule(seq)
		assert.True(t, s.Degenerate(), "seq=%v", seq)
		for _, sigma := range []float64{-1, 0, 2, 100} {
			assert.Equal(t, 1.0, s.Percent(sigma))
			assert.Equal(t, 7.5, s.Scale(sigma, 1, 7.5))
		}
	}
	assert.False(t, guidance.NewSchedule(sigmas.Sequence{2, 1}).Degenerate())
}

func TestSchedule_SnapshotsInput(t *testing.T) {
	t.Parallel()

	seq := sigmas.Sequence{4, 2, 0}
	s := guidance.NewSchedule(seq)
	seq[0] = 100
	lo, hi := s.Bounds()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 4.0, hi)
	assert.Equal(t, sigmas.Sequence{4, 2, 0}, s.Sigmas())
}

func TestSchedule_Table(t *testing.T) {
	t.Parallel()

	table := guidance.NewSchedule(sigmas.Sequence{8, 4, 0}).Table(1, 5)
	assert.Equal(t, []guidance.Step{
		{Index: 0, Sigma: 8, Percent: 1, CFG: 5},
		{Index: 1, Sigma: 4, Percent: 0.5, CFG: 3},
		{Index: 2, Sigma: 0, Percent: 0, CFG: 1},
	}, table)
}
