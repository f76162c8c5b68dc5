// SPDX-License-Identifier: MIT

package guidance_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cfgsched/guidance"
	"github.com/katalvlaran/cfgsched/tensor"
)

var errFake = errors.New("fake model failure")

// call records one inner PredictNoise invocation.
type call struct {
	Cond      string
	CondScale float64
	Sigma     float64
}

// fakeModel answers each conditioning (by Name) with a fixed prediction.
type fakeModel struct {
	mu      sync.Mutex
	preds   map[string]*tensor.Tensor
	failOn  string
	calls   []call
	loads   int
	objects map[string]any
}

func newFakeModel(preds map[string]*tensor.Tensor) *fakeModel {
	return &fakeModel{preds: preds, objects: map[string]any{"model_sampling": "eps"}}
}

func (m *fakeModel) PredictNoise(x *tensor.Tensor, sigma float64, cond *guidance.Conditioning, condScale float64, _ *guidance.ModelOptions) (*tensor.Tensor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call{Cond: cond.Name, CondScale: condScale, Sigma: sigma})
	if cond.Name == m.failOn {
		return nil, errFake
	}
	p, ok := m.preds[cond.Name]
	if !ok {
		return nil, fmt.Errorf("no prediction for %q", cond.Name)
	}

	return p.Clone(), nil
}

func (m *fakeModel) ModelObject(key string) (any, error) {
	v, ok := m.objects[key]
	if !ok {
		return nil, fmt.Errorf("no object %q", key)
	}

	return v, nil
}

func (m *fakeModel) LoadDevice() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loads++

	return nil
}

func (m *fakeModel) callNames() []string {
	names := make([]string, len(m.calls))
	for i, c := range m.calls {
		names[i] = c.Cond
	}

	return names
}

func vec(t *testing.T, vals ...float64) *tensor.Tensor {
	t.Helper()
	v, err := tensor.FromSlice(vals)
	require.NoError(t, err)

	return v
}

func conds() guidance.Inputs {
	return guidance.Inputs{
		Cond:   &guidance.Conditioning{Name: "cond"},
		Uncond: &guidance.Conditioning{Name: "uncond"},
	}
}

func withNegative(in guidance.Inputs) guidance.Inputs {
	in.Negative = &guidance.Conditioning{Name: "negative"}

	return in
}
