// SPDX-License-Identifier: MIT
// Package: cfgsched/guidance
//
// scheduled.go - ScheduledGuidance: sigma-scheduled CFG with optional
// perpendicular-negative guidance.
//
// Per step:
//   - cfg = Schedule.Scale(σ, cfgMin, cfgMax)
//   - inner predictions at cond scale 1: uncond, cond, and negative only
//     when a negative is supplied and neg_scale > 0
//   - perp-neg branch: PerpNegFunc(x, cond, neg, uncond, neg_scale, cfg)
//   - standard branch: uncond + cfg·(cond − uncond)
//   - post-CFG hooks folded over the result
//
// Complexity: O(len(sigmas)) lookup + O(n) tensor work per step, where n is
// the element count of a prediction.

package guidance

import (
	"math"

	"github.com/katalvlaran/cfgsched/sigmas"
	"github.com/katalvlaran/cfgsched/tensor"
)

// ScheduledGuidance wraps a Model and varies the guidance scale along a
// sigma schedule.
type ScheduledGuidance struct {
	inner    Model
	cfgMax   float64
	cfgMin   float64
	schedule Schedule
	cfg      guidanceConfig
}

var _ Predictor = (*ScheduledGuidance)(nil)

// New builds a ScheduledGuidance over model. seq is the trigger schedule;
// an empty or constant seq is accepted and pins the scale at cfgMax, which
// is logged once here.
func New(model Model, cfgMax, cfgMin float64, seq sigmas.Sequence, opts ...Option) (*ScheduledGuidance, error) {
	if model == nil {
		return nil, guidanceErrorf("New", ErrNilModel)
	}
	for _, v := range [...]float64{cfgMax, cfgMin} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, guidanceErrorf("New", ErrBadScale)
		}
	}
	if err := seq.Validate(); err != nil {
		return nil, guidanceErrorf("New", err)
	}

	g := &ScheduledGuidance{
		inner:    model,
		cfgMax:   cfgMax,
		cfgMin:   cfgMin,
		schedule: NewSchedule(seq),
		cfg:      newGuidanceConfig(opts...),
	}
	switch {
	case g.schedule.Len() == 0:
		g.logf("warning: sigmas not provided or empty, guidance fixed at cfg_max=%g", cfgMax)
	case g.schedule.Degenerate():
		g.logf("warning: sigma_max == sigma_min (%g), guidance fixed at cfg_max=%g", g.schedule.hi, cfgMax)
	}

	return g, nil
}

// logf writes a tagged diagnostic.
func (g *ScheduledGuidance) logf(format string, args ...any) {
	g.cfg.logger.Printf("[GUIDER %s] "+format, append([]any{g.cfg.runID}, args...)...)
}

// RunID returns the identifier tagged onto this guider's diagnostics.
func (g *ScheduledGuidance) RunID() string { return g.cfg.runID }

// Schedule returns the guider's trigger schedule.
func (g *ScheduledGuidance) Schedule() Schedule { return g.schedule }

// NegScale returns the perp-neg strength; 0 means disabled.
func (g *ScheduledGuidance) NegScale() float64 { return g.cfg.negScale }

// ScaleAt returns the guidance scale the guider would use at sigma.
func (g *ScheduledGuidance) ScaleAt(sigma float64) float64 {
	return g.schedule.Scale(sigma, g.cfgMin, g.cfgMax)
}

// ScheduleTable returns the scale at every trigger sigma.
func (g *ScheduledGuidance) ScheduleTable() []Step {
	return g.schedule.Table(g.cfgMin, g.cfgMax)
}

// SetUseNegative toggles whether hooks see the negative prompt as the
// unconditional one on perp-neg steps. Not safe for concurrent use with
// PredictNoise.
func (g *ScheduledGuidance) SetUseNegative(on bool) {
	g.cfg.negativeAsUncond = on
}

// UseNegative reports the current negative-as-unconditional setting.
func (g *ScheduledGuidance) UseNegative() bool { return g.cfg.negativeAsUncond }

// ModelObject forwards to the inner model.
func (g *ScheduledGuidance) ModelObject(key string) (any, error) {
	return g.inner.ModelObject(key)
}

// LoadDevice forwards to the inner model.
func (g *ScheduledGuidance) LoadDevice() error {
	return g.inner.LoadDevice()
}

// PredictNoise produces the guided noise estimate for x at sigma.
// in.CondScale is ignored; the schedule decides the scale.
func (g *ScheduledGuidance) PredictNoise(x *tensor.Tensor, sigma float64, in Inputs, opts *ModelOptions) (*tensor.Tensor, error) {
	if err := in.validate(); err != nil {
		return nil, guidanceErrorf("PredictNoise", err)
	}
	scale := g.ScaleAt(sigma)

	uncondPred, err := g.inner.PredictNoise(x, sigma, in.Uncond, 1, opts)
	if err != nil {
		return nil, guidanceErrorf("PredictNoise: uncond", err)
	}
	condPred, err := g.inner.PredictNoise(x, sigma, in.Cond, 1, opts)
	if err != nil {
		return nil, guidanceErrorf("PredictNoise: cond", err)
	}

	args := PostCFGArgs{
		Cond:           in.Cond,
		Uncond:         in.Uncond,
		Model:          g.inner,
		UncondDenoised: uncondPred,
		CondDenoised:   condPred,
		Sigma:          sigma,
		Options:        opts,
		Input:          x,
	}

	var result *tensor.Tensor
	switch {
	case in.Negative != nil && g.cfg.negScale > 0:
		negPred, err := g.inner.PredictNoise(x, sigma, in.Negative, 1, opts)
		if err != nil {
			return nil, guidanceErrorf("PredictNoise: negative", err)
		}
		if result, err = g.cfg.perpNeg(x, condPred, negPred, uncondPred, g.cfg.negScale, scale); err != nil {
			return nil, guidanceErrorf("PredictNoise", err)
		}
		if g.cfg.negativeAsUncond {
			args.Uncond, args.UncondDenoised = in.Negative, negPred
			args.EmptyCond, args.EmptyCondDenoised = in.Uncond, uncondPred
		}
	default:
		if result, err = tensor.Lerp(uncondPred, condPred, scale); err != nil {
			return nil, guidanceErrorf("PredictNoise", err)
		}
	}

	out, err := runHooks(result, args, opts.hooks())
	if err != nil {
		return nil, guidanceErrorf("PredictNoise", err)
	}

	return out, nil
}
