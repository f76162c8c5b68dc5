// SPDX-License-Identifier: MIT
// Package: cfgsched/nodes
//
// spec.go - node descriptors, their OpenAPI schema and boundary validation.
//
// Contract:
//   - Only scalar parameters (INT, FLOAT, BOOLEAN, CHOICE) enter the schema;
//     connections (SIGMAS, MODEL, CONDITIONING) are checked by the runner.
//   - Validate never mutates its argument; it returns a resolved copy with
//     defaults filled in and numbers widened to float64.
//   - Unknown parameter names are rejected.

package nodes

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/katalvlaran/cfgsched/guidance"
	"github.com/katalvlaran/cfgsched/sigmas"
)

// curveFunc executes a SIGMAS-producing node.
type curveFunc func(v Values, in map[string]sigmas.Sequence) ([]sigmas.Sequence, error)

// guiderFunc executes a guider node.
type guiderFunc func(model guidance.Model, v Values, seq sigmas.Sequence, opts ...guidance.Option) (*guidance.ScheduledGuidance, error)

// Spec describes one node.
type Spec struct {
	Name        string  `yaml:"name"`
	Category    string  `yaml:"category"`
	Description string  `yaml:"description,omitempty"`
	Inputs      []Param `yaml:"inputs"`
	Returns     []Kind  `yaml:"returns"`

	curve  curveFunc
	guider guiderFunc
}

// Param returns the input named name.
func (s Spec) Param(name string) (Param, bool) {
	for _, p := range s.Inputs {
		if p.Name == name {
			return p, true
		}
	}

	return Param{}, false
}

// Connections returns the names of the inputs of kind k, in order.
func (s Spec) Connections(k Kind) []string {
	var out []string
	for _, p := range s.Inputs {
		if p.Kind == k {
			out = append(out, p.Name)
		}
	}

	return out
}

// IsCurve reports whether the node produces sigma sequences.
func (s Spec) IsCurve() bool { return s.curve != nil }

// IsGuider reports whether the node produces a guider.
func (s Spec) IsGuider() bool { return s.guider != nil }

// paramSchema builds the schema of a single scalar parameter.
func paramSchema(p Param) *openapi3.Schema {
	var sc *openapi3.Schema
	switch p.Kind {
	case KindInt:
		sc = openapi3.NewIntegerSchema()
	case KindFloat:
		sc = openapi3.NewFloat64Schema()
	case KindBoolean:
		sc = openapi3.NewBoolSchema()
	default:
		sc = openapi3.NewStringSchema()
		enum := make([]any, len(p.Options))
		for i, o := range p.Options {
			enum[i] = o
		}
		sc = sc.WithEnum(enum...)
	}
	if p.Min != nil {
		sc = sc.WithMin(*p.Min)
	}
	if p.Max != nil {
		sc = sc.WithMax(*p.Max)
	}
	if p.Default != nil {
		sc = sc.WithDefault(normalizeNumber(p.Default))
	}
	sc.Description = p.Description

	return sc
}

// Schema returns an OpenAPI 3 object schema of the node's scalar
// parameters. Every scalar parameter is required; Validate fills defaults
// before checking.
func (s Spec) Schema() *openapi3.Schema {
	obj := openapi3.NewObjectSchema().WithoutAdditionalProperties()
	obj.Title = s.Name
	obj.Description = s.Description

	var required []string
	for _, p := range s.Inputs {
		if !p.Kind.Scalar() {
			continue
		}
		obj = obj.WithProperty(p.Name, paramSchema(p))
		required = append(required, p.Name)
	}

	return obj.WithRequired(required)
}

// Validate resolves values against the node: defaults are applied for
// absent parameters, then the result is validated with the node schema.
func (s Spec) Validate(values Values) (Values, error) {
	out := make(Values, len(s.Inputs))
	for k, v := range values {
		out[k] = normalizeNumber(v)
	}
	for _, p := range s.Inputs {
		if !p.Kind.Scalar() || p.Default == nil {
			continue
		}
		if _, ok := out[p.Name]; !ok {
			out[p.Name] = normalizeNumber(p.Default)
		}
	}

	if err := s.Schema().VisitJSON(map[string]any(out), openapi3.MultiErrors()); err != nil {
		return nil, nodesErrorf(s.Name, fmt.Errorf("%w: %w", ErrInvalidParams, err))
	}

	return out, nil
}

// ValidateParam checks a single value against its parameter schema.
func (s Spec) ValidateParam(name string, v any) error {
	p, ok := s.Param(name)
	if !ok || !p.Kind.Scalar() {
		return nodesErrorf(s.Name, fmt.Errorf("%w: no scalar parameter %q", ErrInvalidParams, name))
	}
	if err := paramSchema(p).VisitJSON(normalizeNumber(v)); err != nil {
		return nodesErrorf(s.Name, fmt.Errorf("%w: %s: %w", ErrInvalidParams, name, err))
	}

	return nil
}
