// Package interchange loads grammar definition files into the core
// model. The on-disk form is TOML:
//
//	start = "Expr"
//	order = ["Expr", "Term"]
//
//	[vars]
//	Expr = ["Term plus Expr", "Term"]
//	Term = ["a"]
//
// Each [vars] key is a variable; every other token in a body is a
// terminal. Bodies are space-separated symbol names. order fixes the
// variable order the conversion runs over and defaults to the sorted
// variable names when omitted.
package interchange

import (
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/arr-ai/greibach/grammar"
)

// File is the raw decoded form of a grammar definition file.
type File struct {
	Start string              `toml:"start"`
	Order []string            `toml:"order"`
	Vars  map[string][]string `toml:"vars"`
}

// Grammar is a loaded grammar together with the variable order and
// start symbol the file declared.
type Grammar struct {
	Grammar *grammar.Grammar
	Order   []grammar.Symbol
	Start   grammar.Symbol
}

// Load reads and decodes the grammar definition at path.
func Load(path string) (*Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening grammar file %s", path)
	}
	defer f.Close()
	g, err := Decode(f)
	return g, errors.Wrapf(err, "loading grammar file %s", path)
}

// Decode decodes a grammar definition from r.
func Decode(r io.Reader) (*Grammar, error) {
	var file File
	if _, err := toml.NewDecoder(r).Decode(&file); err != nil {
		return nil, errors.Wrap(err, "decoding grammar definition")
	}
	return file.Build()
}

// Build turns the raw file into a Grammar, interning one symbol per
// variable so that bodies and heads compare equal structurally.
func (f *File) Build() (*Grammar, error) {
	if len(f.Vars) == 0 {
		return nil, errors.New("grammar definition has no [vars] table")
	}

	order := f.Order
	if len(order) == 0 {
		for name := range f.Vars {
			order = append(order, name)
		}
		sort.Strings(order)
	}
	if len(order) != len(f.Vars) {
		return nil, errors.Errorf("order lists %d variables, [vars] defines %d", len(order), len(f.Vars))
	}

	vars := make(map[string]grammar.Symbol, len(order))
	symbols := make([]grammar.Symbol, 0, len(order))
	for i, name := range order {
		if _, defined := f.Vars[name]; !defined {
			return nil, errors.Errorf("ordered variable %q is not defined in [vars]", name)
		}
		if _, dup := vars[name]; dup {
			return nil, errors.Errorf("order lists variable %q twice", name)
		}
		v := grammar.V(name, i)
		vars[name] = v
		symbols = append(symbols, v)
	}

	g := grammar.New()
	for _, head := range symbols {
		g.Declare(head)
		for _, alt := range f.Vars[head.Name] {
			body, err := parseBody(alt, vars)
			if err != nil {
				return nil, errors.Wrapf(err, "in production %s -> %s", head.Name, alt)
			}
			g.Insert(head, body)
		}
	}

	start := symbols[0]
	if f.Start != "" {
		v, ok := vars[f.Start]
		if !ok {
			return nil, errors.Errorf("start symbol %q is not a defined variable", f.Start)
		}
		start = v
	}

	return &Grammar{Grammar: g, Order: symbols, Start: start}, nil
}

func parseBody(alt string, vars map[string]grammar.Symbol) (grammar.Body, error) {
	tokens := strings.Fields(alt)
	if len(tokens) == 0 {
		return nil, errors.New("empty body")
	}
	body := make(grammar.Body, 0, len(tokens))
	for _, tok := range tokens {
		if v, ok := vars[tok]; ok {
			body = append(body, v)
		} else {
			body = append(body, grammar.T(tok))
		}
	}
	return body, nil
}
