package gnf

import (
	"fmt"

	"github.com/iancoleman/strcase"

	"github.com/arr-ai/greibach/grammar"
)

// nameGen hands out auxiliary variable names and order keys. One
// generator is created per Convert call, so name sequences restart at 1
// for every run and output stays reproducible.
type nameGen struct {
	seq       int
	nextOrder int
}

func newNameGen(variableCount int) *nameGen {
	// Auxiliary variables rank after every original variable.
	return &nameGen{nextOrder: variableCount}
}

// fresh mints an auxiliary variable for the given head, e.g. ZExpr_1
// for head "expr". The sequence number alone guarantees uniqueness
// among generated names; the collision check guards against the
// generated name shadowing a caller-supplied variable.
func (n *nameGen) fresh(g *grammar.Grammar, head grammar.Symbol) (grammar.Symbol, error) {
	return n.mint(g, "Z", head.Name)
}

// freshCarrier mints a variable standing in for a terminal in a body
// tail, e.g. XPlus_2 for terminal "plus".
func (n *nameGen) freshCarrier(g *grammar.Grammar, term grammar.Symbol) (grammar.Symbol, error) {
	return n.mint(g, "X", term.Name)
}

func (n *nameGen) mint(g *grammar.Grammar, prefix, base string) (grammar.Symbol, error) {
	n.seq++
	name := fmt.Sprintf("%s%s_%d", prefix, strcase.ToCamel(base), n.seq)
	if g.HasName(name) {
		return grammar.Symbol{}, NameCollisionError{Name: name}
	}
	v := grammar.V(name, n.nextOrder)
	n.nextOrder++
	return v, nil
}
