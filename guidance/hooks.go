// SPDX-License-Identifier: MIT
// Package: cfgsched/guidance
//
// hooks.go - post-combination hook protocol.

package guidance

import (
	"fmt"

	"github.com/katalvlaran/cfgsched/tensor"
)

// PostCFGArgs is the record every post-CFG hook receives.
type PostCFGArgs struct {
	Denoised *tensor.Tensor // running combined result
	Cond     *Conditioning
	Uncond   *Conditioning // the negative prompt when it stands in for uncond
	Model    Model         // the wrapped inner model

	UncondDenoised *tensor.Tensor // prediction for Uncond above
	CondDenoised   *tensor.Tensor

	Sigma   float64
	Options *ModelOptions
	Input   *tensor.Tensor // the x the step was called with

	// EmptyCond and EmptyCondDenoised carry the true unconditional input and
	// prediction when the negative prompt replaced it in Uncond; nil otherwise.
	EmptyCond         *Conditioning
	EmptyCondDenoised *tensor.Tensor
}

// PostCFGHook post-processes a guided prediction.
type PostCFGHook interface {
	PostCFG(args PostCFGArgs) (*tensor.Tensor, error)
}

// PostCFGHookFunc adapts a plain function to PostCFGHook.
type PostCFGHookFunc func(args PostCFGArgs) (*tensor.Tensor, error)

// PostCFG implements PostCFGHook.
func (f PostCFGHookFunc) PostCFG(args PostCFGArgs) (*tensor.Tensor, error) {
	return f(args)
}

// runHooks folds hooks over result: each hook sees the previous hook's
// output in Denoised and the rest of base unchanged.
func runHooks(result *tensor.Tensor, base PostCFGArgs, hooks []PostCFGHook) (*tensor.Tensor, error) {
	for i, h := range hooks {
		args := base
		args.Denoised = result

		out, err := h.PostCFG(args)
		if err != nil {
			return nil, fmt.Errorf("hook %d: %w: %w", i, ErrHookFailed, err)
		}
		if out == nil {
			return nil, fmt.Errorf("hook %d returned nil: %w", i, ErrHookFailed)
		}
		result = out
	}

	return result, nil
}
