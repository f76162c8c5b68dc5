// SPDX-License-Identifier: MIT
// Package: cfgsched/tensor
//
// ops.go - element-wise kernels and whole-tensor reductions.
//
// Contract:
//   - Every kernel validates its operands first (nil → shape) and returns
//     wrapped sentinels; operands are never mutated.
//   - Results are freshly allocated tensors with the operands' shape.
//   - Fixed loop order over the flat buffer keeps results bit-for-bit
//     deterministic across runs.

package tensor

import "math"

// Operation names used for error wrapping.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opScale       = "Scale"
	opAddScaled   = "AddScaled"
	opLerp        = "Lerp"
	opDot         = "Dot"
	opSquaredNorm = "SquaredNorm"
)

// zipWith allocates out and fills out[i] = fn(a[i], b[i]).
func zipWith(tag string, a, b *Tensor, fn func(x, y float64) float64) (*Tensor, error) {
	if err := ValidateBinary(a, b); err != nil {
		return nil, tensorErrorf(tag, err)
	}
	out := &Tensor{shape: append([]int(nil), a.shape...), data: make([]float64, len(a.data))}
	for i := range a.data {
		out.data[i] = fn(a.data[i], b.data[i])
	}

	return out, nil
}

// Add returns a + b.
// Complexity: O(n) time and memory.
func Add(a, b *Tensor) (*Tensor, error) {
	return zipWith(opAdd, a, b, func(x, y float64) float64 { return x + y })
}

// Sub returns a − b.
// Complexity: O(n) time and memory.
func Sub(a, b *Tensor) (*Tensor, error) {
	return zipWith(opSub, a, b, func(x, y float64) float64 { return x - y })
}

// AddScaled returns a + s·b.
// Complexity: O(n) time and memory.
func AddScaled(a *Tensor, s float64, b *Tensor) (*Tensor, error) {
	return zipWith(opAddScaled, a, b, func(x, y float64) float64 { return x + s*y })
}

// Lerp returns a + s·(b − a). With a = unconditional and b = conditional
// prediction this is the classifier-free guidance combination: s = 0 yields
// a, s = 1 yields b.
// Complexity: O(n) time and memory.
func Lerp(a, b *Tensor, s float64) (*Tensor, error) {
	return zipWith(opLerp, a, b, func(x, y float64) float64 { return x + s*(y-x) })
}

// Scale returns s·t.
// Complexity: O(n) time and memory.
func Scale(t *Tensor, s float64) (*Tensor, error) {
	if err := ValidateNotNil(t); err != nil {
		return nil, tensorErrorf(opScale, err)
	}
	out := &Tensor{shape: append([]int(nil), t.shape...), data: make([]float64, len(t.data))}
	for i, v := range t.data {
		out.data[i] = s * v
	}

	return out, nil
}

// Dot returns Σ a[i]·b[i] over all elements (the flattened inner product).
// Complexity: O(n) time, O(1) memory.
func Dot(a, b *Tensor) (float64, error) {
	if err := ValidateBinary(a, b); err != nil {
		return 0, tensorErrorf(opDot, err)
	}
	sum := 0.0
	for i := range a.data {
		sum += a.data[i] * b.data[i]
	}

	return sum, nil
}

// SquaredNorm returns Σ t[i]², the squared Frobenius norm.
// Complexity: O(n) time, O(1) memory.
func SquaredNorm(t *Tensor) (float64, error) {
	if err := ValidateNotNil(t); err != nil {
		return 0, tensorErrorf(opSquaredNorm, err)
	}
	sum := 0.0
	for _, v := range t.data {
		sum += v * v
	}

	return sum, nil
}

// Norm returns the Frobenius norm √(Σ t[i]²).
func Norm(t *Tensor) (float64, error) {
	sq, err := SquaredNorm(t)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(sq), nil
}
