// SPDX-License-Identifier: MIT
// Package: cfgsched/tensor
//
// tensor.go - the Tensor type: shape + flat row-major storage.

package tensor

import (
	"fmt"
	"math"
	"strings"
)

// Tensor is a dense N-dimensional array of float64 values.
// shape holds the dimensions; data holds prod(shape) elements in row-major order.
type Tensor struct {
	shape []int     // dimensions, each > 0
	data  []float64 // flat backing storage, len == prod(shape)
}

// volume returns prod(shape) or ErrBadShape when the shape is empty or has a
// non-positive dimension.
func volume(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, ErrBadShape
	}
	n := 1
	for _, d := range shape {
		if d <= 0 {
			return 0, ErrBadShape
		}
		n *= d
	}

	return n, nil
}

// New creates a zero-filled tensor with the given shape.
// Complexity: O(prod(shape)) time and memory.
func New(shape ...int) (*Tensor, error) {
	n, err := volume(shape)
	if err != nil {
		return nil, tensorErrorf("New", err)
	}

	return &Tensor{shape: append([]int(nil), shape...), data: make([]float64, n)}, nil
}

// FromSlice copies data into a new tensor. With no shape the result is 1-D
// of length len(data).
func FromSlice(data []float64, shape ...int) (*Tensor, error) {
	if len(shape) == 0 {
		shape = []int{len(data)}
	}
	n, err := volume(shape)
	if err != nil {
		return nil, tensorErrorf("FromSlice", err)
	}
	if n != len(data) {
		return nil, tensorErrorf("FromSlice", ErrBadShape)
	}

	buf := make([]float64, n)
	copy(buf, data)

	return &Tensor{shape: append([]int(nil), shape...), data: buf}, nil
}

// Full creates a tensor of the given shape with every element set to v.
func Full(v float64, shape ...int) (*Tensor, error) {
	t, err := New(shape...)
	if err != nil {
		return nil, tensorErrorf("Full", err)
	}
	for i := range t.data {
		t.data[i] = v
	}

	return t, nil
}

// Shape returns a copy of the tensor dimensions.
func (t *Tensor) Shape() []int {
	return append([]int(nil), t.shape...)
}

// Len returns the total number of elements.
func (t *Tensor) Len() int {
	return len(t.data)
}

// Data returns a copy of the flat row-major storage.
func (t *Tensor) Data() []float64 {
	out := make([]float64, len(t.data))
	copy(out, t.data)

	return out
}

// offset converts a multi-index into a flat offset.
func (t *Tensor) offset(idx []int) (int, error) {
	if len(idx) != len(t.shape) {
		return 0, ErrOutOfRange
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= t.shape[k] {
			return 0, ErrOutOfRange
		}
		off = off*t.shape[k] + i
	}

	return off, nil
}

// At returns the element at the multi-index idx.
func (t *Tensor) At(idx ...int) (float64, error) {
	off, err := t.offset(idx)
	if err != nil {
		return 0, tensorErrorf(fmt.Sprintf("At%v", idx), err)
	}

	return t.data[off], nil
}

// Set assigns v at the multi-index idx.
func (t *Tensor) Set(v float64, idx ...int) error {
	off, err := t.offset(idx)
	if err != nil {
		return tensorErrorf(fmt.Sprintf("Set%v", idx), err)
	}
	t.data[off] = v

	return nil
}

// Clone returns a deep copy.
func (t *Tensor) Clone() *Tensor {
	buf := make([]float64, len(t.data))
	copy(buf, t.data)

	return &Tensor{shape: append([]int(nil), t.shape...), data: buf}
}

// AllClose reports whether a and b share a shape and every pair of elements
// differs by at most tol. NaN never compares close.
func AllClose(a, b *Tensor, tol float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	if ValidateSameShape(a, b) != nil {
		return false
	}
	for i := range a.data {
		if !(math.Abs(a.data[i]-b.data[i]) <= tol) {
			return false
		}
	}

	return true
}

// String renders the shape and the flat values, e.g. "[2 2](1, 2, 3, 4)".
func (t *Tensor) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%v(", t.shape)
	for i, v := range t.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", v)
	}
	sb.WriteString(")")

	return sb.String()
}
