// SPDX-License-Identifier: MIT
// Package: cfgsched/nodes
//
// registry.go - node lookup and execution.
//
// Contract:
//   - Names are keyed by NFKC-normalized, trimmed, case-folded form; two
//     specs colliding under that key are rejected.
//   - Registry is read-only after construction and safe for concurrent use.

package nodes

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/katalvlaran/cfgsched/guidance"
	"github.com/katalvlaran/cfgsched/sigmas"
)

// Registry is an ordered, name-indexed set of node specs.
type Registry struct {
	specs []Spec
	index map[string]int
}

// normalizeName folds a node name into its lookup key.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFKC.String(name)))
}

// NewRegistry indexes specs in the given order.
func NewRegistry(specs ...Spec) (*Registry, error) {
	r := &Registry{
		specs: make([]Spec, 0, len(specs)),
		index: make(map[string]int, len(specs)),
	}
	for _, s := range specs {
		key := normalizeName(s.Name)
		if _, dup := r.index[key]; dup {
			return nil, nodesErrorf("NewRegistry", fmt.Errorf("%w: %q", ErrDuplicateNode, s.Name))
		}
		r.index[key] = len(r.specs)
		r.specs = append(r.specs, s)
	}

	return r, nil
}

// Default returns a registry of every built-in node.
func Default() *Registry {
	r, err := NewRegistry(builtinSpecs()...)
	if err != nil {
		panic(err) // built-in table is static
	}

	return r
}

// Lookup resolves name to its spec.
func (r *Registry) Lookup(name string) (Spec, error) {
	i, ok := r.index[normalizeName(name)]
	if !ok {
		return Spec{}, nodesErrorf("Lookup", fmt.Errorf("%w: %q", ErrUnknownNode, name))
	}

	return r.specs[i], nil
}

// Names returns the registered node names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.specs))
	for i, s := range r.specs {
		out[i] = s.Name
	}

	return out
}

// Specs returns a copy of the registered specs in registration order.
func (r *Registry) Specs() []Spec {
	return append([]Spec(nil), r.specs...)
}

// RunCurve executes a SIGMAS-producing node. values are validated (and
// defaulted) against the node schema; every SIGMAS input must be present in
// inputs, keyed by input name.
func (r *Registry) RunCurve(name string, values Values, inputs map[string]sigmas.Sequence) ([]sigmas.Sequence, error) {
	spec, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	if !spec.IsCurve() {
		return nil, nodesErrorf(spec.Name, ErrNotRunnable)
	}
	resolved, err := spec.Validate(values)
	if err != nil {
		return nil, err
	}
	for _, in := range spec.Connections(KindSigmas) {
		if _, ok := inputs[in]; !ok {
			return nil, nodesErrorf(spec.Name, fmt.Errorf("%w: %s", ErrMissingInput, in))
		}
	}

	out, err := spec.curve(resolved, inputs)
	if err != nil {
		return nil, nodesErrorf(spec.Name, err)
	}

	return out, nil
}

// BuildGuider executes a guider node over model and the trigger schedule
// seq. Extra opts (logger, run ID) are applied after the node's own.
func (r *Registry) BuildGuider(name string, model guidance.Model, values Values, seq sigmas.Sequence, opts ...guidance.Option) (*guidance.ScheduledGuidance, error) {
	spec, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	if !spec.IsGuider() {
		return nil, nodesErrorf(spec.Name, ErrNotRunnable)
	}
	resolved, err := spec.Validate(values)
	if err != nil {
		return nil, err
	}

	g, err := spec.guider(model, resolved, seq, opts...)
	if err != nil {
		return nil, nodesErrorf(spec.Name, err)
	}

	return g, nil
}
