// SPDX-License-Identifier: MIT
// Package: cfgsched/nodes
//
// param.go - parameter kinds, descriptors and resolved values.

package nodes

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind is the socket or widget type of a parameter, named as the host
// names them.
type Kind string

// Parameter kinds.
const (
	KindInt          Kind = "INT"
	KindFloat        Kind = "FLOAT"
	KindBoolean      Kind = "BOOLEAN"
	KindChoice       Kind = "CHOICE"
	KindSigmas       Kind = "SIGMAS"
	KindModel        Kind = "MODEL"
	KindConditioning Kind = "CONDITIONING"
)

// Scalar reports whether values of this kind are widget values (validated
// by the schema) rather than connections.
func (k Kind) Scalar() bool {
	switch k {
	case KindInt, KindFloat, KindBoolean, KindChoice:
		return true
	default:
		return false
	}
}

// Param describes one node input.
type Param struct {
	Name        string   `yaml:"name"`
	Kind        Kind     `yaml:"kind"`
	Default     any      `yaml:"default,omitempty"`
	Min         *float64 `yaml:"min,omitempty"`
	Max         *float64 `yaml:"max,omitempty"`
	Step        float64  `yaml:"step,omitempty"`
	Options     []string `yaml:"options,omitempty"`
	Description string   `yaml:"description,omitempty"`
}

// Parse converts a textual widget value (CLI flag, prompt answer) into the
// parameter's value type. Range checks are left to Spec.Validate.
func (p Param) Parse(raw string) (any, error) {
	raw = strings.TrimSpace(raw)
	switch p.Kind {
	case KindInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %q is not an integer", p.Name, ErrInvalidParams, raw)
		}

		return float64(n), nil
	case KindFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%s: %w: %q is not a finite number", p.Name, ErrInvalidParams, raw)
		}

		return f, nil
	case KindBoolean:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %q is not a boolean", p.Name, ErrInvalidParams, raw)
		}

		return b, nil
	case KindChoice:
		return raw, nil
	default:
		return nil, fmt.Errorf("%s: %w: %s is a connection, not a value", p.Name, ErrInvalidParams, p.Kind)
	}
}

// Values are a node's scalar parameter values keyed by parameter name.
// After Spec.Validate every number is a float64.
type Values map[string]any

// Float returns the named number, or 0 when absent.
func (v Values) Float(name string) float64 {
	switch n := v[name].(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

// Int returns the named number rounded to the nearest integer.
func (v Values) Int(name string) int {
	return int(math.Round(v.Float(name)))
}

// Bool returns the named boolean, or false when absent.
func (v Values) Bool(name string) bool {
	b, _ := v[name].(bool)

	return b
}

// Choice returns the named choice, or "" when absent.
func (v Values) Choice(name string) string {
	s, _ := v[name].(string)

	return s
}

// normalizeNumber widens the integer types YAML and Go callers produce to
// float64, the number type JSON-schema validation expects.
func normalizeNumber(v any) any {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case int32:
		return float64(n)
	case uint:
		return float64(n)
	case uint64:
		return float64(n)
	case float32:
		return float64(n)
	default:
		return v
	}
}

func ptr(v float64) *float64 { return &v }
