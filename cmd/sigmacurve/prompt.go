// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/katalvlaran/cfgsched/nodes"
)

var errInterrupted = errors.New("interrupted")

// surveyPrompter asks on the terminal.
type surveyPrompter struct{}

func (surveyPrompter) Ask(spec nodes.Spec, p nodes.Param, current any) (any, error) {
	message := fmt.Sprintf("%s (%s)", p.Name, p.Kind)
	switch p.Kind {
	case nodes.KindBoolean:
		def, _ := current.(bool)
		var out bool
		err := survey.AskOne(&survey.Confirm{Message: message, Default: def, Help: p.Description}, &out)

		return out, translateSurveyErr(err)
	case nodes.KindChoice:
		def, _ := current.(string)
		var out string
		prompt := &survey.Select{Message: message, Options: p.Options, Help: p.Description}
		if def != "" {
			prompt.Default = def
		}
		err := survey.AskOne(prompt, &out)

		return out, translateSurveyErr(err)
	default:
		var raw string
		prompt := &survey.Input{Message: message, Default: formatValue(current), Help: describe(p)}
		if err := survey.AskOne(prompt, &raw, survey.WithValidator(paramValidator(spec, p))); err != nil {
			return nil, translateSurveyErr(err)
		}

		return p.Parse(raw)
	}
}

// paramValidator checks an answer against the parameter's schema.
func paramValidator(spec nodes.Spec, p nodes.Param) survey.Validator {
	return func(ans any) error {
		raw, _ := ans.(string)
		v, err := p.Parse(raw)
		if err != nil {
			return err
		}

		return spec.ValidateParam(p.Name, v)
	}
}

// describe renders the help line of a numeric parameter.
func describe(p nodes.Param) string {
	help := p.Description
	if p.Min != nil && p.Max != nil {
		if help != "" {
			help += " "
		}
		help += fmt.Sprintf("Range [%s, %s].", formatValue(*p.Min), formatValue(*p.Max))
	}

	return help
}

func formatValue(v any) string {
	switch n := v.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(n, 'g', -1, 64)
	case int:
		return strconv.Itoa(n)
	default:
		return fmt.Sprint(n)
	}
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return errInterrupted
	}

	return err
}
