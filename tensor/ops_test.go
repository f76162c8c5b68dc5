// SPDX-License-Identifier: MIT

package tensor_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cfgsched/tensor"
)

func mathInf() float64 { return math.Inf(1) }

// mustVec builds a 1-D tensor or aborts the test.
func mustVec(t *testing.T, vals ...float64) *tensor.Tensor {
	t.Helper()
	x, err := tensor.FromSlice(vals)
	require.NoError(t, err)

	return x
}

func TestElementwise(t *testing.T) {
	t.Parallel()

	a := mustVec(t, 1, 2, 3)
	b := mustVec(t, 4, 6, 8)

	tests := []struct {
		name string
		fn   func() (*tensor.Tensor, error)
		want []float64
	}{
		{"Add", func() (*tensor.Tensor, error) { return tensor.Add(a, b) }, []float64{5, 8, 11}},
		{"Sub", func() (*tensor.Tensor, error) { return tensor.Sub(b, a) }, []float64{3, 4, 5}},
		{"Scale", func() (*tensor.Tensor, error) { return tensor.Scale(a, -2) }, []float64{-2, -4, -6}},
		{"AddScaled", func() (*tensor.Tensor, error) { return tensor.AddScaled(a, 0.5, b) }, []float64{3, 5, 7}},
		{"Lerp", func() (*tensor.Tensor, error) { return tensor.Lerp(a, b, 2) }, []float64{7, 10, 13}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.fn()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Data())
		})
	}

	// Operands are untouched.
	assert.Equal(t, []float64{1, 2, 3}, a.Data())
	assert.Equal(t, []float64{4, 6, 8}, b.Data())
}

func TestLerp_Endpoints(t *testing.T) {
	t.Parallel()

	uncond := mustVec(t, 0.1, -0.3, 2)
	cond := mustVec(t, 1.5, 0.2, -1)

	got0, err := tensor.Lerp(uncond, cond, 0)
	require.NoError(t, err)
	assert.Equal(t, uncond.Data(), got0.Data(), "scale 0 yields the first operand")

	got1, err := tensor.Lerp(uncond, cond, 1)
	require.NoError(t, err)
	assert.True(t, tensor.AllClose(cond, got1, 1e-15), "scale 1 yields the second operand")
}

func TestReductions(t *testing.T) {
	t.Parallel()

	a := mustVec(t, 3, 4)
	b := mustVec(t, 1, -1)

	d, err := tensor.Dot(a, b)
	require.NoError(t, err)
	assert.Equal(t, -1.0, d)

	sq, err := tensor.SquaredNorm(a)
	require.NoError(t, err)
	assert.Equal(t, 25.0, sq)

	n, err := tensor.Norm(a)
	require.NoError(t, err)
	assert.Equal(t, 5.0, n)
}

func TestOps_Errors(t *testing.T) {
	t.Parallel()

	a := mustVec(t, 1, 2)
	b := mustVec(t, 1, 2, 3)

	_, err := tensor.Add(a, b)
	assert.ErrorIs(t, err, tensor.ErrDimensionMismatch)
	_, err = tensor.Sub(nil, a)
	assert.ErrorIs(t, err, tensor.ErrNilTensor)
	_, err = tensor.Dot(a, b)
	assert.ErrorIs(t, err, tensor.ErrDimensionMismatch)
	_, err = tensor.Scale(nil, 1)
	assert.ErrorIs(t, err, tensor.ErrNilTensor)
	_, err = tensor.Norm(nil)
	assert.ErrorIs(t, err, tensor.ErrNilTensor)

	m, err := tensor.FromSlice([]float64{1, 2}, 1, 2)
	require.NoError(t, err)
	_, err = tensor.Lerp(a, m, 1)
	assert.ErrorIs(t, err, tensor.ErrDimensionMismatch, "equal length but different rank")
}
