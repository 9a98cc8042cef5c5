// SPDX-License-Identifier: MIT

package problem

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pitheorem/dimension"
)

// Document keys.
const (
	keyTitle     = "title"
	keyVariables = "variables"
)

// Problem is one dimensional-analysis problem as read from a document.
// Variables keep the document order; it becomes the column order.
type Problem struct {
	Title     string
	Variables []dimension.Raw
}

// Set validates the variables. Component counts other than three surface
// here as *dimension.MalformedVariableError.
func (p *Problem) Set() (dimension.Set, error) {
	return dimension.Validate(p.Variables)
}

// LoadFile reads and parses the document at path.
func LoadFile(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := Load(f)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.File = path
			return nil, pe
		}

		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// Load parses a single YAML problem document:
//
//	title: Reynolds number
//	variables:
//	  rho: [1, -3, 0]       # exponents of M, L, T
//	  v: velocity           # a preset key
//	  D: [0, "1", 0]
//	  nu: ["0", "2", "-1"]  # "1/2" and "0.5" are accepted too
//
// Behavior highlights:
//   - Mapping order is preserved through yaml.Node.
//   - An empty document is an empty problem.
//   - A stream holds exactly one problem; a second document is rejected
//     rather than silently ignored.
//   - Component counts are not checked; Problem.Set reports them. A null
//     value is a variable with no components.
//
// Errors:
//   - *ParseError for YAML syntax errors and unexpected node shapes.
//   - dimension.ErrUnknownPreset, dimension.ErrBadExponent, carried by a
//     *ParseError so that errors.Is matches both.
func Load(r io.Reader) (*Problem, error) {
	dec := yaml.NewDecoder(r)
	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &Problem{}, nil
		}

		return nil, syntaxError(err)
	}

	var extra yaml.Node
	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
	case err != nil:
		return nil, syntaxError(err)
	default:
		at := &extra
		if len(extra.Content) > 0 {
			at = extra.Content[0]
		}

		return nil, nodeError(at, "a file holds one problem; found a second document")
	}

	return decode(&doc)
}

// yamlLine extracts the position yaml.v3 embeds in its messages.
var yamlLine = regexp.MustCompile(`^yaml: line (\d+): (.*)$`)

func syntaxError(err error) *ParseError {
	if m := yamlLine.FindStringSubmatch(err.Error()); m != nil {
		line, _ := strconv.Atoi(m[1])
		return &ParseError{Line: line, Msg: m[2]}
	}

	return &ParseError{Msg: err.Error()}
}

func nodeError(n *yaml.Node, format string, args ...any) *ParseError {
	return &ParseError{Line: n.Line, Column: n.Column, Msg: fmt.Sprintf(format, args...)}
}

// resolve follows aliases to their anchors.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}

	return n
}

func decode(doc *yaml.Node) (*Problem, error) {
	root := resolve(doc)
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return &Problem{}, nil
		}
		root = resolve(root.Content[0])
	}
	if isNull(root) {
		return &Problem{}, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, nodeError(root, "document must be a mapping, got %s", kindName(root))
	}

	p := &Problem{}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], resolve(root.Content[i+1])
		switch key.Value {
		case keyTitle:
			if val.Kind != yaml.ScalarNode {
				return nil, nodeError(val, "%s must be a string", keyTitle)
			}
			p.Title = val.Value
		case keyVariables:
			vars, err := decodeVariables(val)
			if err != nil {
				return nil, err
			}
			p.Variables = vars
		default:
			return nil, nodeError(key, "unknown field %q", key.Value)
		}
	}

	return p, nil
}

func decodeVariables(n *yaml.Node) ([]dimension.Raw, error) {
	if isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, nodeError(n, "%s must be a mapping of name to dimensions, got %s", keyVariables, kindName(n))
	}

	out := make([]dimension.Raw, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], resolve(n.Content[i+1])
		if key.Kind != yaml.ScalarNode {
			return nil, nodeError(key, "variable name must be a scalar")
		}
		raw, err := decodeVariable(key.Value, val)
		if err != nil {
			return nil, err
		}
		out = append(out, raw)
	}

	return out, nil
}

// decodeVariable reads a sequence of exponents, or a scalar preset key.
func decodeVariable(name string, n *yaml.Node) (dimension.Raw, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		if isNull(n) {
			return dimension.Raw{Name: name}, nil
		}
		preset, err := dimension.LookupPreset(n.Value)
		if err != nil {
			return dimension.Raw{}, wrapNode(n, name, err)
		}

		return preset.Raw(name), nil
	case yaml.SequenceNode:
		raw := dimension.Raw{Name: name, Exponents: make([]*big.Rat, 0, len(n.Content))}
		for _, item := range n.Content {
			item = resolve(item)
			if item.Kind != yaml.ScalarNode {
				return dimension.Raw{}, nodeError(item, "variable %q: exponent must be a number", name)
			}
			r, err := dimension.ParseRat(item.Value)
			if err != nil {
				return dimension.Raw{}, wrapNode(item, name, err)
			}
			raw.Exponents = append(raw.Exponents, r)
		}

		return raw, nil
	default:
		return dimension.Raw{}, nodeError(n, "variable %q: want a list of exponents or a preset key, got %s", name, kindName(n))
	}
}

func wrapNode(n *yaml.Node, name string, err error) *ParseError {
	return &ParseError{Line: n.Line, Column: n.Column, Msg: fmt.Sprintf("variable %q: %v", name, err), Err: err}
}

func isNull(n *yaml.Node) bool {
	return n == nil || (n.Kind == yaml.ScalarNode && n.Tag == "!!null") || n.Kind == 0
}

func kindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "nothing"
	}
}
