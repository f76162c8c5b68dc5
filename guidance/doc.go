// Package guidance implements classifier-free guidance (CFG) guiders that
// wrap a diffusion model and combine its conditional, unconditional and
// negative noise predictions into a single estimate per sampling step.
//
// 🚀 Two guiders, one capability
//
//	Both guiders satisfy Predictor, the only thing a sampling host needs:
//	  • CFGGuider          - fixed scale taken from the call (plain CFG).
//	  • ScheduledGuidance  - scale interpolated between cfg_min and cfg_max
//	                         along a sigma schedule, with optional
//	                         perpendicular-negative guidance.
//
// ✨ Scheduled guidance in one step
//
//  1. Locate the schedule position: the last trigger sigma (scanning from the
//     start) that is still >= the current sigma; index 0 if none.
//  2. percent = clamp((trigger − min)/(max − min), 0, 1); 1 for a degenerate
//     schedule (empty, or min == max).
//  3. cfg = cfg_min + (cfg_max − cfg_min)·percent.
//  4. Ask the inner model for uncond, cond (and negative when neg_scale > 0),
//     always with cond scale 1.
//  5. Combine: uncond + cfg·(cond − uncond), or PerpNeg when a negative
//     conditioning is present and neg_scale > 0.
//  6. Fold ModelOptions.PostCFGHooks over the result in registration order.
//
// ⚙️ Concurrency
//
//	Calls are synchronous and the guiders hold no per-call state; a
//	ScheduledGuidance is immutable after New except for SetUseNegative.
//	Build one guider per sampling run. Hooks must not re-enter the guider
//	that invoked them.
package guidance
