// Package tensor stores noise predictions as dense, row-major float64 arrays
// and provides the handful of linear-combination kernels guidance needs.
//
// What & Why:
//
//	A diffusion model returns its noise estimate as an N-dimensional array
//	(batch × channels × height × width). Guidance never looks inside that
//	array: it only adds, subtracts and scales whole predictions, and the
//	perpendicular-negative path additionally needs one inner product and one
//	squared norm. Tensor keeps exactly that surface, with strict shape checks
//	and fresh allocations so operands are never mutated.
//
// Key features:
//   - Add / Sub / Scale / AddScaled / Lerp  - element-wise, O(n).
//   - Dot / SquaredNorm / Norm               - whole-tensor reductions, O(n).
//   - ValidateNotNil / ValidateSameShape     - sentinel-returning validators.
//
// Usage:
//
//	cond, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, 2, 2)
//	uncond, _ := tensor.FromSlice([]float64{0, 0, 1, 1}, 2, 2)
//	guided, err := tensor.Lerp(uncond, cond, 7.5) // uncond + 7.5·(cond − uncond)
//
// Complexity:
//
//	Every kernel is a single pass over the flat buffer: O(n) time, O(n) memory
//	for the result.
package tensor
