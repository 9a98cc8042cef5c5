// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/pitheorem/dimension"
	"github.com/katalvlaran/pitheorem/problem"
)

// stdinName is the FILE argument that reads a document from standard input.
const stdinName = "-"

var errMixedInput = errors.New("use either FILE arguments or --var/--preset flags, not both")

// variableList accumulates --var and --preset occurrences in command-line
// order, which becomes the column order of the inline problem.
type variableList struct {
	raws []dimension.Raw
}

func (l *variableList) names() string {
	out := make([]string, len(l.raws))
	for i, r := range l.raws {
		out[i] = r.Name
	}

	return strings.Join(out, ",")
}

// varFlag implements pflag.Value for --var name=M,L,T.
type varFlag struct{ list *variableList }

var _ pflag.Value = varFlag{}

func (f varFlag) String() string {
	if f.list == nil {
		return ""
	}

	return f.list.names()
}

func (f varFlag) Set(s string) error {
	name, exps, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("%q: want name=M,L,T", s)
	}
	raw, err := dimension.ParseRaw(name, exps)
	if err != nil {
		return err
	}
	f.list.raws = append(f.list.raws, raw)

	return nil
}

func (varFlag) Type() string { return "name=M,L,T" }

// presetFlag implements pflag.Value for --preset key[=symbol].
type presetFlag struct{ list *variableList }

var _ pflag.Value = presetFlag{}

func (f presetFlag) String() string { return varFlag(f).String() }

func (f presetFlag) Set(s string) error {
	key, symbol, _ := strings.Cut(s, "=")
	p, err := dimension.LookupPreset(key)
	if err != nil {
		return err
	}
	f.list.raws = append(f.list.raws, p.Raw(symbol))

	return nil
}

func (presetFlag) Type() string { return "key[=symbol]" }

// addVariableFlags registers --var and --preset on fs, both feeding list.
func addVariableFlags(fs *pflag.FlagSet, list *variableList) {
	fs.Var(varFlag{list}, "var", "inline variable as name=M,L,T (repeatable; rationals like 1/2 allowed)")
	fs.Var(presetFlag{list}, "preset", "inline variable from the preset table as key[=symbol] (repeatable)")
}

// source is one problem to load: a file, standard input or inline flags.
type source struct {
	name string
	load func() (*problem.Problem, error)
}

// sources resolves FILE arguments and inline flags into problems. With
// neither, the problem is read from standard input.
func (a *app) sources(args []string, inline *variableList) ([]source, error) {
	if len(inline.raws) > 0 {
		if len(args) > 0 {
			return nil, errMixedInput
		}
		raws := inline.raws

		return []source{{
			name: "inline",
			load: func() (*problem.Problem, error) { return &problem.Problem{Variables: raws}, nil },
		}}, nil
	}
	if len(args) == 0 {
		args = []string{stdinName}
	}

	out := make([]source, 0, len(args))
	stdin := false
	for _, path := range args {
		if path == stdinName {
			if stdin {
				return nil, fmt.Errorf("standard input (%s) given more than once", stdinName)
			}
			stdin = true
			out = append(out, source{name: "<stdin>", load: func() (*problem.Problem, error) { return problem.Load(a.in) }})
			continue
		}
		out = append(out, source{name: path, load: func() (*problem.Problem, error) { return problem.LoadFile(path) }})
	}

	return out, nil
}
