// SPDX-License-Identifier: MIT
// Package: cfgsched/guidance
//
// perpneg.go - perpendicular-negative guidance combination.
//
// With pos = cond − uncond and neg = negative − uncond, PerpNeg removes from
// neg its projection onto pos and steers away from what remains:
//
//	perp   = neg − (⟨neg, pos⟩ / ‖pos‖²)·pos
//	result = uncond + cfg·(pos − negScale·perp)
//
// When ‖pos‖ = 0 there is no direction to project onto and perp = neg.

package guidance

import "github.com/katalvlaran/cfgsched/tensor"

// PerpNegFunc combines the three predictions of a perp-neg step. x is the
// step input, passed for implementations that need it.
type PerpNegFunc func(x, condPred, negPred, uncondPred *tensor.Tensor, negScale, cfgScale float64) (*tensor.Tensor, error)

// PerpNeg is the default PerpNegFunc.
func PerpNeg(_ *tensor.Tensor, condPred, negPred, uncondPred *tensor.Tensor, negScale, cfgScale float64) (*tensor.Tensor, error) {
	pos, err := tensor.Sub(condPred, uncondPred)
	if err != nil {
		return nil, guidanceErrorf("PerpNeg", err)
	}
	neg, err := tensor.Sub(negPred, uncondPred)
	if err != nil {
		return nil, guidanceErrorf("PerpNeg", err)
	}

	sq, err := tensor.SquaredNorm(pos)
	if err != nil {
		return nil, guidanceErrorf("PerpNeg", err)
	}
	perp := neg
	if sq > 0 {
		dot, err := tensor.Dot(neg, pos)
		if err != nil {
			return nil, guidanceErrorf("PerpNeg", err)
		}
		if perp, err = tensor.AddScaled(neg, -dot/sq, pos); err != nil {
			return nil, guidanceErrorf("PerpNeg", err)
		}
	}

	guided, err := tensor.AddScaled(pos, -negScale, perp)
	if err != nil {
		return nil, guidanceErrorf("PerpNeg", err)
	}
	out, err := tensor.AddScaled(uncondPred, cfgScale, guided)
	if err != nil {
		return nil, guidanceErrorf("PerpNeg", err)
	}

	return out, nil
}
