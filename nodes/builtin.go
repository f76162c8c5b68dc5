// SPDX-License-Identifier: MIT
// Package: cfgsched/nodes
//
// builtin.go - the built-in node table: CFG curve schedulers, sigma
// transforms and the two scheduled CFG guiders.

package nodes

import (
	"github.com/katalvlaran/cfgsched/guidance"
	"github.com/katalvlaran/cfgsched/schedulers"
	"github.com/katalvlaran/cfgsched/sigmas"
)

// Categories shown by the host.
const (
	CategorySchedulers = "sampling/custom_sampling/CFG-schedulers"
	CategorySigmas     = "sampling/custom_sampling/sigmas"
	CategoryGuiders    = "sampling/custom_sampling/guiders"
)

// Node names. Spellings are part of saved workflows and must not change.
const (
	NodeParametricPeak     = "Parametric Peak #1"
	NodeCosine             = "CosineScheduler"
	NodeGaussian           = "GaussianScheduler"
	NodeLogNormal          = "LogNormal Scheduler"
	NodeXInverse           = "k/x scheduler"
	NodeArctan             = "ArctanScheduler"
	NodeScaleToRange       = "ScaleToRange"
	NodeInvert             = "InvertSigmas"
	NodeConcat             = "ConcatSigmas"
	NodeOffset             = "OffsetSigmas"
	NodeSplitByValue       = "SplitSigmasByValue"
	NodeToPower            = "SigmasToPower"
	NodePredefinedExponent = "PredefinedExponent"
	NodeCustomExponent     = "CustomExponent"
	NodePredefinedLog      = "PredefinedLogarithm"
	NodeCustomBaseLog      = "CustomBaseLogarithm"
	NodeScheduledCFG       = "SheduledCFGGuider"
	NodePerpNegScheduled   = "PerpNegSheduledCFGGuider"
)

// Shared parameter descriptors.
var (
	paramSigmas = Param{Name: "sigmas", Kind: KindSigmas}
	paramModel  = Param{Name: "model", Kind: KindModel}
	paramSteps  = Param{
		Name: "steps", Kind: KindInt, Default: 200, Min: ptr(1), Max: ptr(10000),
		Description: "The total number of sampling steps.",
	}
	paramRangeMin = Param{
		Name: "sigma_min", Kind: KindFloat, Default: 0.0, Min: ptr(-5000), Max: ptr(5000), Step: 0.1,
		Description: "Value of the curve's lowest point.",
	}
	paramRangeMax = Param{
		Name: "sigma_max", Kind: KindFloat, Default: 1.0, Min: ptr(-5000), Max: ptr(5000), Step: 0.1,
		Description: "Value of the curve's highest point.",
	}
	paramCFGMax = Param{Name: "cfg_max", Kind: KindFloat, Default: 12.0, Min: ptr(0), Max: ptr(100), Step: 0.1}
	paramCFGMin = Param{Name: "cfg_min", Kind: KindFloat, Default: 1.0, Min: ptr(0), Max: ptr(100), Step: 0.1}
)

// shapeParam describes a warmup/decay shape knob.
func shapeParam(name, side string) Param {
	return Param{
		Name: name, Kind: KindFloat, Default: 1.0, Min: ptr(-0.99), Max: ptr(1.95), Step: 0.01,
		Description: "Controls the shape of the curve " + side + " the peak. " +
			"Positive values create a concave shape, negative values a convex shape, and 0 a linear ramp.",
	}
}

// single wraps one sequence result.
func single(s sigmas.Sequence, err error) ([]sigmas.Sequence, error) {
	if err != nil {
		return nil, err
	}

	return []sigmas.Sequence{s}, nil
}

// rangeOption maps the sigma_min/sigma_max widgets onto a curve range.
// A reversed range is reported rather than left to WithRange's panic.
func rangeOption(v Values) (schedulers.CurveOption, error) {
	lo, hi := v.Float(paramRangeMin.Name), v.Float(paramRangeMax.Name)
	if lo > hi {
		return nil, ErrInvalidParams
	}

	return schedulers.WithRange(lo, hi), nil
}

// analytic adapts a curve generator taking a range option.
func analytic(gen func(v Values, opt schedulers.CurveOption) (sigmas.Sequence, error)) curveFunc {
	return func(v Values, _ map[string]sigmas.Sequence) ([]sigmas.Sequence, error) {
		opt, err := rangeOption(v)
		if err != nil {
			return nil, err
		}

		return single(gen(v, opt))
	}
}

// builtinSpecs returns a fresh copy of the built-in node table.
func builtinSpecs() []Spec {
	return []Spec{
		{
			Name:        NodeParametricPeak,
			Category:    CategorySchedulers,
			Description: "Single-peak guidance curve in [0, 1] with shaped warmup and decay.",
			Inputs: []Param{
				paramSteps,
				{
					Name: "peak", Kind: KindFloat, Default: 0.25, Min: ptr(0.11), Max: ptr(0.91), Step: 0.01,
					Description: "The position of the peak relative to total steps.",
				},
				shapeParam("warmup", "before"),
				shapeParam("decay", "after"),
			},
			Returns: []Kind{KindSigmas},
			curve: func(v Values, _ map[string]sigmas.Sequence) ([]sigmas.Sequence, error) {
				return single(schedulers.ParametricPeak(v.Int("steps"), v.Float("peak"), v.Float("warmup"), v.Float("decay")))
			},
		},
		{
			Name:        NodeCosine,
			Category:    CategorySchedulers,
			Description: "Half-cosine fall from sigma_max to sigma_min.",
			Inputs:      []Param{paramSteps, paramRangeMin, paramRangeMax},
			Returns:     []Kind{KindSigmas},
			curve: analytic(func(v Values, opt schedulers.CurveOption) (sigmas.Sequence, error) {
				return schedulers.Cosine(v.Int("steps"), opt)
			}),
		},
		{
			Name:        NodeGaussian,
			Category:    CategorySchedulers,
			Description: "Gaussian bell centred at a fractional position.",
			Inputs: []Param{
				paramSteps,
				{Name: "mean", Kind: KindFloat, Default: 0.5, Min: ptr(0), Max: ptr(1), Step: 0.01},
				{Name: "std", Kind: KindFloat, Default: 0.2, Min: ptr(0.01), Max: ptr(2), Step: 0.01},
				paramRangeMin, paramRangeMax,
			},
			Returns: []Kind{KindSigmas},
			curve: analytic(func(v Values, opt schedulers.CurveOption) (sigmas.Sequence, error) {
				return schedulers.Gaussian(v.Int("steps"), v.Float("mean"), v.Float("std"), opt)
			}),
		},
		{
			Name:        NodeLogNormal,
			Category:    CategorySchedulers,
			Description: "Log-normal density, an early skewed peak.",
			Inputs: []Param{
				paramSteps,
				{Name: "mu", Kind: KindFloat, Default: -1.0, Min: ptr(-10), Max: ptr(10), Step: 0.01},
				{Name: "sigma", Kind: KindFloat, Default: 0.5, Min: ptr(0.01), Max: ptr(10), Step: 0.01},
				paramRangeMin, paramRangeMax,
			},
			Returns: []Kind{KindSigmas},
			curve: analytic(func(v Values, opt schedulers.CurveOption) (sigmas.Sequence, error) {
				return schedulers.LogNormal(v.Int("steps"), v.Float("mu"), v.Float("sigma"), opt)
			}),
		},
		{
			Name:        NodeXInverse,
			Category:    CategorySchedulers,
			Description: "Hyperbolic k/(i + k) fall.",
			Inputs: []Param{
				paramSteps,
				{Name: "k", Kind: KindFloat, Default: 1.0, Min: ptr(0.01), Max: ptr(1000), Step: 0.01},
				paramRangeMin, paramRangeMax,
			},
			Returns: []Kind{KindSigmas},
			curve: analytic(func(v Values, opt schedulers.CurveOption) (sigmas.Sequence, error) {
				return schedulers.XInverse(v.Int("steps"), v.Float("k"), opt)
			}),
		},
		{
			Name:        NodeArctan,
			Category:    CategorySchedulers,
			Description: "Smooth arctangent step down centred at midpoint.",
			Inputs: []Param{
				paramSteps,
				{Name: "steepness", Kind: KindFloat, Default: 10.0, Min: ptr(0.01), Max: ptr(100), Step: 0.01},
				{Name: "midpoint", Kind: KindFloat, Default: 0.5, Min: ptr(0), Max: ptr(1), Step: 0.01},
				paramRangeMin, paramRangeMax,
			},
			Returns: []Kind{KindSigmas},
			curve: analytic(func(v Values, opt schedulers.CurveOption) (sigmas.Sequence, error) {
				return schedulers.Arctan(v.Int("steps"), v.Float("steepness"), v.Float("midpoint"), opt)
			}),
		},
		{
			Name:     NodeScaleToRange,
			Category: CategorySigmas,
			Inputs: []Param{
				paramSigmas,
				{Name: "sigma_min", Kind: KindFloat, Default: 0.0, Min: ptr(-5000), Max: ptr(5000), Step: 0.1},
				{Name: "sigma_max", Kind: KindFloat, Default: 8.0, Min: ptr(-5000), Max: ptr(5000), Step: 0.1},
			},
			Returns: []Kind{KindSigmas},
			curve: func(v Values, in map[string]sigmas.Sequence) ([]sigmas.Sequence, error) {
				return single(sigmas.ScaleToRange(in["sigmas"], v.Float("sigma_min"), v.Float("sigma_max")))
			},
		},
		{
			Name:     NodeInvert,
			Category: CategorySigmas,
			Inputs:   []Param{paramSigmas},
			Returns:  []Kind{KindSigmas},
			curve: func(_ Values, in map[string]sigmas.Sequence) ([]sigmas.Sequence, error) {
				return single(sigmas.Invert(in["sigmas"]), nil)
			},
		},
		{
			Name:     NodeConcat,
			Category: CategorySigmas,
			Inputs: []Param{
				{Name: "sigmas_1", Kind: KindSigmas},
				{Name: "sigmas_2", Kind: KindSigmas},
			},
			Returns: []Kind{KindSigmas},
			curve: func(_ Values, in map[string]sigmas.Sequence) ([]sigmas.Sequence, error) {
				return single(sigmas.Concat(in["sigmas_1"], in["sigmas_2"]), nil)
			},
		},
		{
			Name:     NodeOffset,
			Category: CategorySigmas,
			Inputs: []Param{
				paramSigmas,
				{Name: "offset", Kind: KindFloat, Default: 0.0, Min: ptr(-1000), Max: ptr(1000), Step: 0.01},
			},
			Returns: []Kind{KindSigmas},
			curve: func(v Values, in map[string]sigmas.Sequence) ([]sigmas.Sequence, error) {
				return single(sigmas.Offset(in["sigmas"], v.Float("offset")), nil)
			},
		},
		{
			Name:     NodeSplitByValue,
			Category: CategorySigmas,
			Inputs: []Param{
				paramSigmas,
				{Name: "value", Kind: KindFloat, Default: 1.0, Min: ptr(-5000), Max: ptr(5000), Step: 0.01},
			},
			Returns: []Kind{KindSigmas, KindSigmas},
			curve: func(v Values, in map[string]sigmas.Sequence) ([]sigmas.Sequence, error) {
				before, rest := sigmas.SplitByValue(in["sigmas"], v.Float("value"))

				return []sigmas.Sequence{before, rest}, nil
			},
		},
		{
			Name:     NodeToPower,
			Category: CategorySigmas,
			Inputs: []Param{
				paramSigmas,
				{Name: "power", Kind: KindFloat, Default: 2.0, Min: ptr(-100), Max: ptr(100), Step: 0.01},
			},
			Returns: []Kind{KindSigmas},
			curve: func(v Values, in map[string]sigmas.Sequence) ([]sigmas.Sequence, error) {
				return single(sigmas.ToPower(in["sigmas"], v.Float("power")))
			},
		},
		{
			Name:     NodePredefinedExponent,
			Category: CategorySigmas,
			Inputs: []Param{
				paramSigmas,
				{Name: "base", Kind: KindChoice, Default: sigmas.BaseE, Options: sigmas.ExponentNames()},
			},
			Returns: []Kind{KindSigmas},
			curve: func(v Values, in map[string]sigmas.Sequence) ([]sigmas.Sequence, error) {
				return single(sigmas.PredefinedExponent(in["sigmas"], v.Choice("base")))
			},
		},
		{
			Name:     NodeCustomExponent,
			Category: CategorySigmas,
			Inputs: []Param{
				paramSigmas,
				{Name: "base", Kind: KindFloat, Default: 2.0, Min: ptr(0.001), Max: ptr(1000), Step: 0.01},
			},
			Returns: []Kind{KindSigmas},
			curve: func(v Values, in map[string]sigmas.Sequence) ([]sigmas.Sequence, error) {
				return single(sigmas.CustomExponent(in["sigmas"], v.Float("base")))
			},
		},
		{
			Name:     NodePredefinedLog,
			Category: CategorySigmas,
			Inputs: []Param{
				paramSigmas,
				{Name: "base", Kind: KindChoice, Default: sigmas.LogNatural, Options: sigmas.LogarithmNames()},
			},
			Returns: []Kind{KindSigmas},
			curve: func(v Values, in map[string]sigmas.Sequence) ([]sigmas.Sequence, error) {
				return single(sigmas.PredefinedLogarithm(in["sigmas"], v.Choice("base")))
			},
		},
		{
			Name:     NodeCustomBaseLog,
			Category: CategorySigmas,
			Inputs: []Param{
				paramSigmas,
				{Name: "base", Kind: KindFloat, Default: 10.0, Min: ptr(0.001), Max: ptr(1000), Step: 0.01},
			},
			Returns: []Kind{KindSigmas},
			curve: func(v Values, in map[string]sigmas.Sequence) ([]sigmas.Sequence, error) {
				return single(sigmas.CustomBaseLogarithm(in["sigmas"], v.Float("base")))
			},
		},
		{
			Name:        NodeScheduledCFG,
			Category:    CategoryGuiders,
			Description: "CFG whose scale follows a sigma schedule between cfg_min and cfg_max.",
			Inputs: []Param{
				paramModel,
				{Name: "positive", Kind: KindConditioning},
				{Name: "unconditional", Kind: KindConditioning},
				paramCFGMax, paramCFGMin,
				paramSigmas,
			},
			Returns: []Kind{KindModel},
			guider: func(m guidance.Model, v Values, seq sigmas.Sequence, opts ...guidance.Option) (*guidance.ScheduledGuidance, error) {
				return guidance.New(m, v.Float("cfg_max"), v.Float("cfg_min"), seq, opts...)
			},
		},
		{
			Name:        NodePerpNegScheduled,
			Category:    CategoryGuiders,
			Description: "Scheduled CFG with perpendicular-negative guidance.",
			Inputs: []Param{
				paramModel,
				{Name: "positive", Kind: KindConditioning},
				{Name: "negative", Kind: KindConditioning},
				{Name: "unconditional", Kind: KindConditioning},
				paramCFGMax, paramCFGMin,
				{Name: "neg_scale", Kind: KindFloat, Default: 1.0, Min: ptr(0), Max: ptr(100), Step: 0.01},
				paramSigmas,
				{Name: "use_negative_as_unconditional", Kind: KindBoolean, Default: true},
			},
			Returns: []Kind{KindModel},
			guider: func(m guidance.Model, v Values, seq sigmas.Sequence, opts ...guidance.Option) (*guidance.ScheduledGuidance, error) {
				opts = append([]guidance.Option{
					guidance.WithNegScale(v.Float("neg_scale")),
					guidance.WithNegativeAsUnconditional(v.Bool("use_negative_as_unconditional")),
				}, opts...)

				return guidance.New(m, v.Float("cfg_max"), v.Float("cfg_min"), seq, opts...)
			},
		},
	}
}
