// SPDX-License-Identifier: MIT
// Package: cfgsched/nodes
//
// catalog.go - YAML catalog export and preset import.

package nodes

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cfgsched/sigmas"
)

// catalog is the YAML document MarshalCatalogYAML writes.
type catalog struct {
	Nodes []Spec `yaml:"nodes"`
}

// MarshalCatalogYAML renders every spec of r as YAML.
func MarshalCatalogYAML(r *Registry) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(catalog{Nodes: r.Specs()}); err != nil {
		return nil, nodesErrorf("MarshalCatalogYAML", err)
	}
	if err := enc.Close(); err != nil {
		return nil, nodesErrorf("MarshalCatalogYAML", err)
	}

	return buf.Bytes(), nil
}

// Preset selects a node and fixes its parameter values and SIGMAS inputs.
//
//	node: Parametric Peak #1
//	values:
//	  steps: 30
//	  peak: 0.4
//	inputs:
//	  sigmas: [14.6, 7.3, 0]
type Preset struct {
	Node   string                     `yaml:"node"`
	Values Values                     `yaml:"values,omitempty"`
	Inputs map[string]sigmas.Sequence `yaml:"inputs,omitempty"`
}

// UnmarshalPreset decodes a preset document; unknown top-level keys are
// rejected.
func UnmarshalPreset(data []byte) (Preset, error) {
	var p Preset
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return Preset{}, nodesErrorf("UnmarshalPreset", fmt.Errorf("%w: %w", ErrInvalidPreset, err))
	}
	if p.Node == "" {
		return Preset{}, nodesErrorf("UnmarshalPreset", fmt.Errorf("%w: node is required", ErrInvalidPreset))
	}

	return p, nil
}

// Run executes the preset's curve node against r.
func (p Preset) Run(r *Registry) ([]sigmas.Sequence, error) {
	return r.RunCurve(p.Node, p.Values, p.Inputs)
}
