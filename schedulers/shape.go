// SPDX-License-Identifier: MIT
// Package: cfgsched/schedulers
//
// shape.go - flank shape classification for the parametric peak.

package schedulers

// ShapeKind classifies a peak flank by the sign of its shape parameter.
// It is derived once per flank; generators dispatch on it instead of
// re-inspecting the raw sign.
type ShapeKind int

const (
	// Linear flank: shape parameter == 0.
	Linear ShapeKind = iota
	// Concave flank: shape parameter > 0 (cosine eased toward the peak).
	Concave
	// Convex flank: shape parameter < 0 (cosine eased away from the peak).
	Convex
)

// ShapeOf maps a warmup/decay parameter to its flank kind.
func ShapeOf(v float64) ShapeKind {
	switch {
	case v > 0:
		return Concave
	case v < 0:
		return Convex
	default:
		return Linear
	}
}

// String implements fmt.Stringer.
func (k ShapeKind) String() string {
	switch k {
	case Concave:
		return "concave"
	case Convex:
		return "convex"
	default:
		return "linear"
	}
}
