// SPDX-License-Identifier: MIT
// Package: cfgsched/guidance
//
// model.go - the consumed Model interface and the produced Predictor
// capability.

package guidance

import "github.com/katalvlaran/cfgsched/tensor"

// Conditioning is one prompt's conditioning as the host encoded it. Guiders
// treat it as opaque and hand it to the inner model unchanged; a nil
// *Conditioning means "not supplied".
type Conditioning struct {
	Name      string         // optional label, used only in diagnostics
	Embedding *tensor.Tensor // encoded prompt
	Extras    map[string]any // host-specific extras (pooled output, masks, ...)
}

// ModelOptions is the per-call options bundle the host threads through a
// sampling step.
type ModelOptions struct {
	// PostCFGHooks run after guidance combination, in order; each receives
	// the running result and returns its replacement.
	PostCFGHooks []PostCFGHook

	// Extra carries host options guiders pass through without reading.
	Extra map[string]any
}

// hooks returns the registered hooks, tolerating a nil bundle.
func (o *ModelOptions) hooks() []PostCFGHook {
	if o == nil {
		return nil
	}

	return o.PostCFGHooks
}

// Model is the wrapped diffusion model. Implementations are supplied by the
// host.
type Model interface {
	// PredictNoise returns the model's noise estimate for x at sigma under one
	// conditioning. Guiders always pass condScale = 1.
	PredictNoise(x *tensor.Tensor, sigma float64, cond *Conditioning, condScale float64, opts *ModelOptions) (*tensor.Tensor, error)

	// ModelObject returns a named sub-object of the model (e.g. "model_sampling").
	ModelObject(key string) (any, error)

	// LoadDevice moves the model onto its compute device.
	LoadDevice() error
}

// Inputs are the conditionings of one guided prediction.
type Inputs struct {
	Cond     *Conditioning // positive prompt, required
	Uncond   *Conditioning // unconditional / empty prompt, required
	Negative *Conditioning // optional negative prompt

	// CondScale is the host's guidance scale. CFGGuider uses it;
	// ScheduledGuidance ignores it in favour of its schedule.
	CondScale float64
}

// validate checks the required conditionings.
func (in Inputs) validate() error {
	if in.Cond == nil || in.Uncond == nil {
		return ErrNilConditioning
	}

	return nil
}

// Predictor is what a sampling host drives each step. Both CFGGuider and
// ScheduledGuidance implement it; hosts should depend on this interface,
// never on a concrete guider.
type Predictor interface {
	PredictNoise(x *tensor.Tensor, sigma float64, in Inputs, opts *ModelOptions) (*tensor.Tensor, error)
	ModelObject(key string) (any, error)
	LoadDevice() error
}
