// SPDX-License-Identifier: MIT
// Package: cfgsched/guidance
//
// options.go - functional options for ScheduledGuidance.
//
// Contract:
//   - Option constructors PANIC on meaningless inputs (programmer error);
//     New returns errors for bad runtime arguments.
//   - Defaults: neg_scale 0 (perp-neg off), negative-as-unconditional on,
//     PerpNeg combiner, log.Default() logger, random run ID.

package guidance

import (
	"log"
	"math"

	"github.com/google/uuid"
)

// guidanceConfig holds the resolved options of a ScheduledGuidance.
type guidanceConfig struct {
	negScale         float64
	negativeAsUncond bool
	perpNeg          PerpNegFunc
	logger           *log.Logger
	runID            string
}

// Option customizes a ScheduledGuidance.
type Option func(*guidanceConfig)

// newGuidanceConfig applies opts over the defaults in order.
func newGuidanceConfig(opts ...Option) guidanceConfig {
	cfg := guidanceConfig{
		negativeAsUncond: true,
		perpNeg:          PerpNeg,
		logger:           log.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.runID == "" {
		cfg.runID = uuid.NewString()
	}

	return cfg
}

// WithNegScale enables perpendicular-negative guidance when scale > 0.
// Panics on NaN/Inf or a negative scale.
func WithNegScale(scale float64) Option {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale < 0 {
		panic("guidance: WithNegScale requires a finite scale >= 0")
	}

	return func(c *guidanceConfig) {
		c.negScale = scale
	}
}

// WithNegativeAsUnconditional controls whether hooks see the negative
// prompt in place of the unconditional one on perp-neg steps.
func WithNegativeAsUnconditional(on bool) Option {
	return func(c *guidanceConfig) {
		c.negativeAsUncond = on
	}
}

// WithPerpNeg replaces the perp-neg combiner. Panics on nil.
func WithPerpNeg(fn PerpNegFunc) Option {
	if fn == nil {
		panic("guidance: WithPerpNeg(nil)")
	}

	return func(c *guidanceConfig) {
		c.perpNeg = fn
	}
}

// WithLogger routes diagnostics to l. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("guidance: WithLogger(nil)")
	}

	return func(c *guidanceConfig) {
		c.logger = l
	}
}

// WithRunID sets the identifier tagged onto diagnostics. Panics on "".
func WithRunID(id string) Option {
	if id == "" {
		panic("guidance: WithRunID requires a non-empty id")
	}

	return func(c *guidanceConfig) {
		c.runID = id
	}
}
