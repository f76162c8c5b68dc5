// SPDX-License-Identifier: MIT
// Package: cfgsched/guidance
//
// errors.go - sentinel errors for guiders.
//
// Error policy:
//   - Construction-time misconfiguration surfaces as an error from New*.
//   - Degenerate schedules are NOT errors: they fall back to cfg_max and log.
//   - Inner-model and hook failures are wrapped with the step context and
//     returned unchanged in kind (errors.Is still matches the cause).

package guidance

import (
	"errors"
	"fmt"
)

var (
	// ErrNilModel indicates a guider was constructed without an inner model.
	ErrNilModel = errors.New("guidance: nil model")

	// ErrBadScale indicates a NaN or ±Inf guidance scale.
	ErrBadScale = errors.New("guidance: invalid guidance scale")

	// ErrNilConditioning indicates a missing cond or uncond conditioning.
	ErrNilConditioning = errors.New("guidance: nil conditioning")

	// ErrHookFailed wraps a post-CFG hook that errored or returned nil.
	ErrHookFailed = errors.New("guidance: post-cfg hook failed")
)

// guidanceErrorf prefixes err with the operation name.
func guidanceErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
