// SPDX-License-Identifier: MIT
// Package: cfgsched/guidance
//
// cfg_guider.go - CFGGuider: plain classifier-free guidance at the scale the
// host passes in.

package guidance

import "github.com/katalvlaran/cfgsched/tensor"

// CFGGuider applies uncond + s·(cond − uncond) with s = Inputs.CondScale.
// Inputs.Negative is ignored.
type CFGGuider struct {
	inner Model
}

var _ Predictor = (*CFGGuider)(nil)

// NewCFGGuider wraps model.
func NewCFGGuider(model Model) (*CFGGuider, error) {
	if model == nil {
		return nil, guidanceErrorf("NewCFGGuider", ErrNilModel)
	}

	return &CFGGuider{inner: model}, nil
}

// ModelObject forwards to the inner model.
func (g *CFGGuider) ModelObject(key string) (any, error) { return g.inner.ModelObject(key) }

// LoadDevice forwards to the inner model.
func (g *CFGGuider) LoadDevice() error { return g.inner.LoadDevice() }

// PredictNoise produces the guided noise estimate for x at sigma.
func (g *CFGGuider) PredictNoise(x *tensor.Tensor, sigma float64, in Inputs, opts *ModelOptions) (*tensor.Tensor, error) {
	if err := in.validate(); err != nil {
		return nil, guidanceErrorf("CFGGuider.PredictNoise", err)
	}

	uncondPred, err := g.inner.PredictNoise(x, sigma, in.Uncond, 1, opts)
	if err != nil {
		return nil, guidanceErrorf("CFGGuider.PredictNoise: uncond", err)
	}
	condPred, err := g.inner.PredictNoise(x, sigma, in.Cond, 1, opts)
	if err != nil {
		return nil, guidanceErrorf("CFGGuider.PredictNoise: cond", err)
	}
	result, err := tensor.Lerp(uncondPred, condPred, in.CondScale)
	if err != nil {
		return nil, guidanceErrorf("CFGGuider.PredictNoise", err)
	}

	out, err := runHooks(result, PostCFGArgs{
		Cond:           in.Cond,
		Uncond:         in.Uncond,
		Model:          g.inner,
		UncondDenoised: uncondPred,
		CondDenoised:   condPred,
		Sigma:          sigma,
		Options:        opts,
		Input:          x,
	}, opts.hooks())
	if err != nil {
		return nil, guidanceErrorf("CFGGuider.PredictNoise", err)
	}

	return out, nil
}
