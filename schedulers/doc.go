// Package schedulers generates the shaped curves that drive scheduled
// guidance: a parametric single-peak curve and a family of classic
// analytic shapes (cosine, gaussian, log-normal, k/x, arctan).
//
// 🚀 What is a guidance curve?
//
//	A sigma-like sequence with one value per sampling step. Feeding it to
//	guidance.ScheduledGuidance turns each value into a position between
//	cfg_min and cfg_max, so the curve's shape becomes the guidance profile
//	over the run.
//
// ✨ Generators:
//   - ParametricPeak(steps, peak, warmup, decay)   - rises 0→1 and falls back
//     to 0; warmup/decay signs pick concave, convex or linear flanks.
//   - Cosine / Gaussian / LogNormal / XInverse / Arctan - analytic curves,
//     min-max normalized into [0,1] (or WithRange(lo, hi)).
//
// ⚙️ Determinism:
//
//	All generators are pure functions of their arguments: no RNG, no global
//	state. Equal inputs give bit-identical sequences.
//
// Complexity: O(steps) time and memory for every generator.
package schedulers
