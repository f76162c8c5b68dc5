// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cfgsched/guidance"
	"github.com/katalvlaran/cfgsched/nodes"
	"github.com/katalvlaran/cfgsched/sigmas"
)

// prompter asks for one scalar parameter value.
type prompter interface {
	Ask(spec nodes.Spec, p nodes.Param, current any) (any, error)
}

// guidanceRow is one line of the guidance-scale table.
type guidanceRow struct {
	Index   int     `yaml:"index"`
	Sigma   float64 `yaml:"sigma"`
	Percent float64 `yaml:"percent"`
	CFG     float64 `yaml:"cfg"`
}

// output is one returned sequence.
type output struct {
	Sigmas   sigmas.Sequence `yaml:"sigmas"`
	Guidance []guidanceRow   `yaml:"guidance,omitempty"`
}

// report is everything one invocation prints.
type report struct {
	Node    string       `yaml:"node"`
	Values  nodes.Values `yaml:"values,omitempty"`
	Outputs []output     `yaml:"outputs"`
}

func run(o options, readFile func(string) ([]byte, error), p prompter, w io.Writer) error {
	r := nodes.Default()
	if o.list {
		out, err := nodes.MarshalCatalogYAML(r)
		if err != nil {
			return err
		}
		_, err = w.Write(out)

		return err
	}
	switch o.format {
	case formatText, formatYAML, formatSchema:
	default:
		return fmt.Errorf("%w: unknown format %q", errUsage, o.format)
	}

	preset, err := loadPreset(o, readFile)
	if err != nil {
		return err
	}
	spec, err := r.Lookup(preset.Node)
	if err != nil {
		return err
	}
	if o.format == formatSchema {
		return writeSchema(w, spec)
	}

	values, err := applySets(spec, preset.Values, o.sets)
	if err != nil {
		return err
	}
	if p != nil {
		if values, err = promptMissing(spec, values, o.sets, p); err != nil {
			return err
		}
	}
	inputs, err := applyInputs(preset.Inputs, o.inputs)
	if err != nil {
		return err
	}
	resolved, err := spec.Validate(values)
	if err != nil {
		return err
	}
	seqs, err := r.RunCurve(spec.Name, resolved, inputs)
	if err != nil {
		return err
	}

	rep := report{Node: spec.Name, Values: resolved}
	for _, seq := range seqs {
		out := output{Sigmas: seq}
		if o.cfgTable {
			out.Guidance = guidanceTable(seq, o.cfgMin, o.cfgMax)
		}
		rep.Outputs = append(rep.Outputs, out)
	}

	if o.format == formatYAML {
		return writeYAML(w, rep)
	}

	return writeText(w, rep)
}

// promptMissing asks for every scalar parameter not fixed by -set.
func promptMissing(spec nodes.Spec, values nodes.Values, sets []string, p prompter) (nodes.Values, error) {
	fixed := make(map[string]bool, len(sets))
	for _, raw := range sets {
		if key, _, err := splitPair(raw); err == nil {
			fixed[key] = true
		}
	}
	for _, param := range spec.Inputs {
		if !param.Kind.Scalar() || fixed[param.Name] {
			continue
		}
		current, ok := values[param.Name]
		if !ok {
			current = param.Default
		}
		v, err := p.Ask(spec, param, current)
		if err != nil {
			return nil, err
		}
		values[param.Name] = v
	}

	return values, nil
}

// guidanceTable evaluates the scheduled guidance scale at every sigma.
func guidanceTable(seq sigmas.Sequence, cfgMin, cfgMax float64) []guidanceRow {
	steps := guidance.NewSchedule(seq).Table(cfgMin, cfgMax)
	rows := make([]guidanceRow, len(steps))
	for i, s := range steps {
		rows[i] = guidanceRow{Index: s.Index, Sigma: s.Sigma, Percent: s.Percent, CFG: s.CFG}
	}

	return rows
}

func writeSchema(w io.Writer, spec nodes.Spec) error {
	out, err := json.MarshalIndent(spec.Schema(), "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", out)

	return err
}

func writeYAML(w io.Writer, rep report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return err
	}

	return enc.Close()
}

func writeText(w io.Writer, rep report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "# %s\n", rep.Node)
	for n, out := range rep.Outputs {
		if len(rep.Outputs) > 1 {
			fmt.Fprintf(tw, "# output %d\n", n+1)
		}
		if out.Guidance == nil {
			fmt.Fprintln(tw, "step\tvalue")
			for i, v := range out.Sigmas {
				fmt.Fprintf(tw, "%d\t%.6f\n", i, v)
			}
			continue
		}
		fmt.Fprintln(tw, "step\tsigma\tpercent\tcfg")
		for _, g := range out.Guidance {
			fmt.Fprintf(tw, "%d\t%.6f\t%.4f\t%.4f\n", g.Index, g.Sigma, g.Percent, g.CFG)
		}
	}

	return tw.Flush()
}
