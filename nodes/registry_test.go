// SPDX-License-Identifier: MIT

package nodes_test

import (
	"bytes"
	"io"
	"log"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cfgsched/guidance"
	"github.com/katalvlaran/cfgsched/nodes"
	"github.com/katalvlaran/cfgsched/schedulers"
	"github.com/katalvlaran/cfgsched/sigmas"
	"github.com/katalvlaran/cfgsched/tensor"
)

var approx = cmpopts.EquateApprox(1e-12, 1e-12)

func TestDefault_RegistersEveryNode(t *testing.T) {
	t.Parallel()

	want := []string{
		"Parametric Peak #1", "CosineScheduler", "GaussianScheduler",
		"LogNormal Scheduler", "k/x scheduler", "ArctanScheduler",
		"ScaleToRange", "InvertSigmas", "ConcatSigmas", "OffsetSigmas",
		"SplitSigmasByValue", "SigmasToPower", "PredefinedExponent",
		"CustomExponent", "PredefinedLogarithm", "CustomBaseLogarithm",
		"SheduledCFGGuider", "PerpNegSheduledCFGGuider",
	}
	assert.Equal(t, want, nodes.Default().Names())

	for _, s := range nodes.Default().Specs() {
		assert.NotEmpty(t, s.Category, s.Name)
		assert.NotEmpty(t, s.Returns, s.Name)
		assert.True(t, s.IsCurve() != s.IsGuider(), "%s must be exactly one of curve or guider", s.Name)
		// Every default must satisfy its own schema.
		_, err := s.Validate(nil)
		assert.NoError(t, err, s.Name)
	}
}

func TestLookup_Normalized(t *testing.T) {
	t.Parallel()

	r := nodes.Default()
	for _, name := range []string{
		"k/x scheduler",
		"K/X Scheduler",
		"  k/x scheduler ",
		"ｋ／ｘ ｓｃｈｅｄｕｌｅｒ", // full-width forms fold under NFKC
	} {
		s, err := r.Lookup(name)
		require.NoError(t, err, "%q", name)
		assert.Equal(t, nodes.NodeXInverse, s.Name)
	}

	_, err := r.Lookup("x/k scheduler")
	assert.ErrorIs(t, err, nodes.ErrUnknownNode)
}

func TestNewRegistry_Duplicate(t *testing.T) {
	t.Parallel()

	_, err := nodes.NewRegistry(nodes.Spec{Name: "Foo"}, nodes.Spec{Name: "ＦＯＯ"})
	assert.ErrorIs(t, err, nodes.ErrDuplicateNode)
}

func TestRunCurve_ParametricPeak(t *testing.T) {
	t.Parallel()

	got, err := nodes.Default().RunCurve(nodes.NodeParametricPeak,
		nodes.Values{"steps": 10, "peak": 0.5, "warmup": 0, "decay": 0}, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)

	want, err := schedulers.ParametricPeak(10, 0.5, 0, 0)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got[0], approx); diff != "" {
		t.Errorf("RunCurve mismatch (-want +got):\n%s", diff)
	}
}

func TestRunCurve_AnalyticRange(t *testing.T) {
	t.Parallel()

	got, err := nodes.Default().RunCurve(nodes.NodeCosine,
		nodes.Values{"steps": 5, "sigma_min": 2, "sigma_max": 6}, nil)
	require.NoError(t, err)
	lo, hi, ok := got[0].Bounds()
	require.True(t, ok)
	assert.InDelta(t, 2, lo, 1e-12)
	assert.InDelta(t, 6, hi, 1e-12)

	_, err = nodes.Default().RunCurve(nodes.NodeCosine,
		nodes.Values{"sigma_min": 3, "sigma_max": 1}, nil)
	assert.ErrorIs(t, err, nodes.ErrInvalidParams)
}

func TestRunCurve_Transforms(t *testing.T) {
	t.Parallel()

	r := nodes.Default()
	seq := sigmas.Sequence{8, 4, 2, 0}
	tests := []struct {
		node   string
		values nodes.Values
		inputs map[string]sigmas.Sequence
		want   []sigmas.Sequence
	}{
		{nodes.NodeScaleToRange, nodes.Values{"sigma_min": 0, "sigma_max": 1},
			map[string]sigmas.Sequence{"sigmas": seq}, []sigmas.Sequence{{1, 0.5, 0.25, 0}}},
		{nodes.NodeInvert, nil,
			map[string]sigmas.Sequence{"sigmas": seq}, []sigmas.Sequence{{0, 4, 6, 8}}},
		{nodes.NodeConcat, nil,
			map[string]sigmas.Sequence{"sigmas_1": {3, 2}, "sigmas_2": {1}}, []sigmas.Sequence{{3, 2, 1}}},
		{nodes.NodeOffset, nodes.Values{"offset": -3},
			map[string]sigmas.Sequence{"sigmas": seq}, []sigmas.Sequence{{5, 1, 0, 0}}},
		{nodes.NodeSplitByValue, nodes.Values{"value": 3},
			map[string]sigmas.Sequence{"sigmas": {1, 2, 5, 1}}, []sigmas.Sequence{{1, 2}, {5, 1}}},
		{nodes.NodeToPower, nodes.Values{"power": 2},
			map[string]sigmas.Sequence{"sigmas": {3, 2}}, []sigmas.Sequence{{9, 4}}},
		{nodes.NodePredefinedExponent, nodes.Values{"base": "2"},
			map[string]sigmas.Sequence{"sigmas": {3, 0}}, []sigmas.Sequence{{8, 1}}},
		{nodes.NodeCustomExponent, nodes.Values{"base": 10},
			map[string]sigmas.Sequence{"sigmas": {2, 0}}, []sigmas.Sequence{{100, 1}}},
		{nodes.NodePredefinedLog, nodes.Values{"base": "log2"},
			map[string]sigmas.Sequence{"sigmas": {8, 1}}, []sigmas.Sequence{{3, 0}}},
		{nodes.NodeCustomBaseLog, nil,
			map[string]sigmas.Sequence{"sigmas": {100, 1}}, []sigmas.Sequence{{2, 0}}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.node, func(t *testing.T) {
			t.Parallel()
			got, err := r.RunCurve(tc.node, tc.values, tc.inputs)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got, approx); diff != "" {
				t.Errorf("%s mismatch (-want +got):\n%s", tc.node, diff)
			}
		})
	}
	assert.Equal(t, sigmas.Sequence{8, 4, 2, 0}, seq, "inputs must not be mutated")
}

func TestRunCurve_Errors(t *testing.T) {
	t.Parallel()

	r := nodes.Default()
	_, err := r.RunCurve("nope", nil, nil)
	assert.ErrorIs(t, err, nodes.ErrUnknownNode)

	_, err = r.RunCurve(nodes.NodeScheduledCFG, nil, nil)
	assert.ErrorIs(t, err, nodes.ErrNotRunnable)

	_, err = r.RunCurve(nodes.NodeConcat, nil, map[string]sigmas.Sequence{"sigmas_1": {1}})
	assert.ErrorIs(t, err, nodes.ErrMissingInput)

	_, err = r.RunCurve(nodes.NodeScaleToRange, nil, map[string]sigmas.Sequence{"sigmas": {}})
	assert.ErrorIs(t, err, sigmas.ErrEmptySequence)
}

// linearModel predicts a constant per conditioning name.
type linearModel map[string]float64

func (m linearModel) PredictNoise(x *tensor.Tensor, _ float64, c *guidance.Conditioning, _ float64, _ *guidance.ModelOptions) (*tensor.Tensor, error) {
	return tensor.Full(m[c.Name], x.Shape()...)
}

func (linearModel) ModelObject(string) (any, error) { return nil, nil }

func (linearModel) LoadDevice() error { return nil }

func TestBuildGuider(t *testing.T) {
	t.Parallel()

	r := nodes.Default()
	quiet := guidance.WithLogger(log.New(io.Discard, "", 0))
	seq := sigmas.Sequence{10, 5, 1}

	g, err := r.BuildGuider(nodes.NodeScheduledCFG, linearModel{}, nil, seq, quiet)
	require.NoError(t, err)
	assert.Equal(t, 12.0, g.ScaleAt(10))
	assert.Equal(t, 1.0, g.ScaleAt(1))
	assert.Equal(t, 0.0, g.NegScale())

	g, err = r.BuildGuider(nodes.NodePerpNegScheduled, linearModel{},
		nodes.Values{"cfg_max": 8, "neg_scale": 0.5, "use_negative_as_unconditional": false}, seq, quiet)
	require.NoError(t, err)
	assert.Equal(t, 8.0, g.ScaleAt(10))
	assert.Equal(t, 0.5, g.NegScale())
	assert.False(t, g.UseNegative())

	_, err = r.BuildGuider(nodes.NodeScheduledCFG, linearModel{}, nodes.Values{"cfg_max": -1}, seq, quiet)
	assert.ErrorIs(t, err, nodes.ErrInvalidParams)

	_, err = r.BuildGuider(nodes.NodeScheduledCFG, nil, nil, seq, quiet)
	assert.ErrorIs(t, err, guidance.ErrNilModel)

	_, err = r.BuildGuider(nodes.NodeCosine, linearModel{}, nil, seq, quiet)
	assert.ErrorIs(t, err, nodes.ErrNotRunnable)
}

func TestBuildGuider_LogsDegenerateSchedule(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	g, err := nodes.Default().BuildGuider(nodes.NodeScheduledCFG, linearModel{}, nil, nil,
		guidance.WithLogger(log.New(&buf, "", 0)), guidance.WithRunID("node-test"))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "[GUIDER node-test]")
	assert.Equal(t, 12.0, g.ScaleAt(0.3))
}
