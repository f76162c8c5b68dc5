// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/cfgsched/nodes"
	"github.com/katalvlaran/cfgsched/sigmas"
)

var errUsage = errors.New("usage")

// Output formats.
const (
	formatText   = "text"
	formatYAML   = "yaml"
	formatSchema = "schema"
)

// multiFlag collects a repeatable key=value flag.
type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, " ") }

func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)

	return nil
}

// options are the parsed command-line flags.
type options struct {
	node        string
	config      string
	sets        multiFlag
	inputs      multiFlag
	interactive bool
	format      string
	cfgMin      float64
	cfgMax      float64
	list        bool

	cfgTable bool // -cfg-min or -cfg-max given
}

func (o *options) register(fs *flag.FlagSet) {
	fs.StringVar(&o.node, "node", "", "node to evaluate (overrides the preset's node)")
	fs.StringVar(&o.config, "config", "", "YAML preset file")
	fs.Var(&o.sets, "set", "parameter override key=value (repeatable)")
	fs.Var(&o.inputs, "input", "SIGMAS input name=v1,v2,... (repeatable)")
	fs.BoolVar(&o.interactive, "interactive", false, "prompt for every scalar parameter not given by -set")
	fs.StringVar(&o.format, "format", formatText, "output format: text, yaml or schema")
	fs.Float64Var(&o.cfgMin, "cfg-min", 1, "guidance scale at the schedule's lowest sigma")
	fs.Float64Var(&o.cfgMax, "cfg-max", 12, "guidance scale at the schedule's highest sigma")
	fs.BoolVar(&o.list, "list", false, "print the node catalog as YAML and exit")
}

// markSet records which optional behaviours were requested explicitly.
func (o *options) markSet(fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "cfg-min" || f.Name == "cfg-max" {
			o.cfgTable = true
		}
	})
}

// splitPair splits "key=value".
func splitPair(raw string) (key, value string, err error) {
	key, value, ok := strings.Cut(raw, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", "", fmt.Errorf("%w: expected key=value, got %q", errUsage, raw)
	}

	return key, value, nil
}

// applySets parses -set overrides with the target parameter's kind.
func applySets(spec nodes.Spec, values nodes.Values, sets []string) (nodes.Values, error) {
	out := make(nodes.Values, len(values)+len(sets))
	for k, v := range values {
		out[k] = v
	}
	for _, raw := range sets {
		key, value, err := splitPair(raw)
		if err != nil {
			return nil, err
		}
		p, ok := spec.Param(key)
		if !ok || !p.Kind.Scalar() {
			return nil, fmt.Errorf("%w: %s has no parameter %q", errUsage, spec.Name, key)
		}
		v, err := p.Parse(value)
		if err != nil {
			return nil, err
		}
		out[key] = v
	}

	return out, nil
}

// parseSequence parses "v1,v2,...".
func parseSequence(raw string) (sigmas.Sequence, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return sigmas.Sequence{}, nil
	}
	parts := strings.Split(raw, ",")
	seq := make(sigmas.Sequence, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad sigma %q", errUsage, p)
		}
		seq[i] = v
	}

	return seq, seq.Validate()
}

// applyInputs parses -input overrides.
func applyInputs(inputs map[string]sigmas.Sequence, raws []string) (map[string]sigmas.Sequence, error) {
	out := make(map[string]sigmas.Sequence, len(inputs)+len(raws))
	for k, v := range inputs {
		out[k] = v
	}
	for _, raw := range raws {
		key, value, err := splitPair(raw)
		if err != nil {
			return nil, err
		}
		seq, err := parseSequence(value)
		if err != nil {
			return nil, err
		}
		out[key] = seq
	}

	return out, nil
}

// loadPreset resolves the preset from -config and the flag overrides.
func loadPreset(o options, readFile func(string) ([]byte, error)) (nodes.Preset, error) {
	var p nodes.Preset
	if o.config != "" {
		data, err := readFile(o.config)
		if err != nil {
			return nodes.Preset{}, err
		}
		if p, err = nodes.UnmarshalPreset(data); err != nil {
			return nodes.Preset{}, err
		}
	}
	if o.node != "" {
		p.Node = o.node
	}
	if p.Node == "" {
		return nodes.Preset{}, fmt.Errorf("%w: -node or -config is required", errUsage)
	}

	return p, nil
}
