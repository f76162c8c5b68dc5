// SPDX-License-Identifier: MIT

package nodes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cfgsched/nodes"
	"github.com/katalvlaran/cfgsched/sigmas"
)

func TestMarshalCatalogYAML(t *testing.T) {
	t.Parallel()

	out, err := nodes.MarshalCatalogYAML(nodes.Default())
	require.NoError(t, err)

	var doc struct {
		Nodes []struct {
			Name     string `yaml:"name"`
			Category string `yaml:"category"`
			Inputs   []struct {
				Name    string   `yaml:"name"`
				Kind    string   `yaml:"kind"`
				Default any      `yaml:"default"`
				Min     *float64 `yaml:"min"`
				Options []string `yaml:"options"`
			} `yaml:"inputs"`
			Returns []string `yaml:"returns"`
		} `yaml:"nodes"`
	}
	require.NoError(t, yaml.Unmarshal(out, &doc))
	require.Len(t, doc.Nodes, len(nodes.Default().Names()))

	peak := doc.Nodes[0]
	assert.Equal(t, nodes.NodeParametricPeak, peak.Name)
	assert.Equal(t, nodes.CategorySchedulers, peak.Category)
	assert.Equal(t, []string{"SIGMAS"}, peak.Returns)
	require.Len(t, peak.Inputs, 4)
	assert.Equal(t, "steps", peak.Inputs[0].Name)
	assert.Equal(t, "INT", peak.Inputs[0].Kind)
	assert.Equal(t, 200, peak.Inputs[0].Default)
	require.NotNil(t, peak.Inputs[1].Min)
	assert.Equal(t, 0.11, *peak.Inputs[1].Min)

	assert.Contains(t, string(out), "name: k/x scheduler")
}

func TestUnmarshalPreset(t *testing.T) {
	t.Parallel()

	p, err := nodes.UnmarshalPreset([]byte(`
node: ScaleToRange
values:
  sigma_min: 1
  sigma_max: 3
inputs:
  sigmas: [10, 5, 0]
`))
	require.NoError(t, err)
	assert.Equal(t, "ScaleToRange", p.Node)
	assert.Equal(t, sigmas.Sequence{10, 5, 0}, p.Inputs["sigmas"])

	out, err := p.Run(nodes.Default())
	require.NoError(t, err)
	assert.Equal(t, []sigmas.Sequence{{3, 2, 1}}, out)
}

func TestUnmarshalPreset_Invalid(t *testing.T) {
	t.Parallel()

	for name, doc := range map[string]string{
		"empty":         "",
		"missing node":  "values: {steps: 3}\n",
		"unknown field": "node: CosineScheduler\nsteps: 3\n",
		"bad inputs":    "node: InvertSigmas\ninputs:\n  sigmas: high\n",
	} {
		_, err := nodes.UnmarshalPreset([]byte(doc))
		assert.ErrorIs(t, err, nodes.ErrInvalidPreset, name)
	}
}
