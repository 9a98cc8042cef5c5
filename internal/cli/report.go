// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pitheorem/buckingham"
)

// solved is one successfully computed problem.
type solved struct {
	source string
	title  string
	result *buckingham.Result
}

// report is the machine-readable form of a solved problem.
type report struct {
	Source       string           `json:"source" yaml:"source"`
	Title        string           `json:"title,omitempty" yaml:"title,omitempty"`
	Rank         int              `json:"rank" yaml:"rank"`
	IntegerBasis bool             `json:"integer_basis" yaml:"integer_basis"`
	Variables    []reportVariable `json:"variables" yaml:"variables"`
	Terms        []reportTerm     `json:"terms" yaml:"terms"`
}

type reportVariable struct {
	Name       string `json:"name" yaml:"name"`
	Dimensions string `json:"dimensions" yaml:"dimensions"`
}

// reportTerm lists exponents in variable order, as rational strings.
type reportTerm struct {
	Name       string   `json:"name" yaml:"name"`
	Expression string   `json:"expression" yaml:"expression"`
	Exponents  []string `json:"exponents" yaml:"exponents,flow"`
}

func newReport(s *solved) report {
	r := report{
		Source:       s.source,
		Title:        s.title,
		Rank:         s.result.Rank,
		IntegerBasis: s.result.IntegerBasis,
		Variables:    make([]reportVariable, 0, s.result.Variables.Len()),
		Terms:        make([]reportTerm, 0, len(s.result.Terms)),
	}
	names := s.result.Variables.Names()
	for _, v := range s.result.Variables.Variables() {
		r.Variables = append(r.Variables, reportVariable{Name: v.Name(), Dimensions: v.Dims().String()})
	}
	for i, t := range s.result.Terms {
		vec := t.Vector(names)
		exps := make([]string, len(vec))
		for j, x := range vec {
			exps[j] = x.RatString()
		}
		r.Terms = append(r.Terms, reportTerm{
			Name:       fmt.Sprintf("Pi_%d", i+1),
			Expression: t.String(),
			Exponents:  exps,
		})
	}

	return r
}

// writeResults prints every solved problem in the configured output format.
func writeResults(w io.Writer, output string, results []*solved) error {
	switch output {
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		for _, s := range results {
			if err := enc.Encode(newReport(s)); err != nil {
				return err
			}
		}

		return enc.Close()
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		for _, s := range results {
			if err := enc.Encode(newReport(s)); err != nil {
				return err
			}
		}

		return nil
	}

	f, err := buckingham.ParseFormat(output)
	if err != nil {
		return err
	}
	for i, s := range results {
		if i > 0 {
			if _, err = io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if s.title != "" {
			if _, err = fmt.Fprintln(w, s.title); err != nil {
				return err
			}
		}
		if err = buckingham.Render(w, s.result.Terms, f); err != nil {
			return err
		}
	}

	return nil
}
