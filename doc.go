// Package cfgsched is a toolkit for scheduling classifier-free guidance in
// diffusion sampling: shaped guidance curves, sigma-sequence transforms and
// guiders whose scale follows the sampler's noise level.
//
// 🚀 What is cfgsched?
//
//	A small, synchronous library a sampling host wires into its node graph:
//		• Curves: parametric single peak, cosine, gaussian, log-normal, k/x, arctan
//		• Sigma transforms: scale to range, invert, offset, concat, split, power, log
//		• Guiders: fixed-scale CFG and sigma-scheduled CFG with perp-neg
//		• Node surface: typed parameter specs, OpenAPI schemas, YAML presets
//
// ✨ Why scheduled guidance?
//
//   - High guidance early fixes composition, low guidance late keeps detail
//   - One curve, reused: the same sigmas drive the sampler and the scale
//   - Degenerate inputs degrade to plain CFG at cfg_max, with a log line
//   - Extensible: post-CFG hooks run in order on every guided step
//
// Packages:
//
//	tensor/     - dense float64 predictions and the CFG linear-combination kernels
//	sigmas/     - Sequence type and the pure sigma transforms
//	schedulers/ - ParametricPeak and the analytic curve family
//	guidance/   - Model/Predictor interfaces, Schedule, ScheduledGuidance, CFGGuider
//	nodes/      - node registry, schemas, validation, YAML catalog and presets
//	cmd/sigmacurve - evaluate a node from the command line
//
// Quick sketch of a scheduled scale (cfg_max=12, cfg_min=1):
//
//	σ: 14.6 ──── 7.3 ──── 0
//	cfg: 12 ──── 6.5 ──── 1
//
//	go get github.com/katalvlaran/cfgsched
package cfgsched
