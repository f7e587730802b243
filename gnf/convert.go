// Package gnf converts context-free grammars to Greibach Normal Form,
// in which every production body is a single terminal followed by zero
// or more variables.
//
// The conversion runs over a caller-supplied total order of the
// grammar's variables: forward substitution to eliminate references to
// lower-ranked variables, left-recursion elimination via auxiliary
// variables, back substitution to pull terminals to the front of every
// body, and promotion of any terminal left in a body tail to a carrier
// variable. The input grammar must be epsilon-free.
package gnf

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/arr-ai/greibach/grammar"
)

// Convert transforms in to Greibach Normal Form. order must contain
// exactly the variable heads of in and fixes the total order the
// algorithm runs over. The input grammar is not mutated; the converted
// grammar is returned along with the auxiliary variables introduced by
// recursion elimination, in creation order.
//
// Conversion is deterministic: the same grammar and order always
// produce the same output, including auxiliary names.
func Convert(in *grammar.Grammar, order []grammar.Symbol) (*grammar.Grammar, []grammar.Symbol, error) {
	if err := checkInput(in, order); err != nil {
		return nil, nil, err
	}
	if len(order) == 0 {
		return in.Clone(), nil, nil
	}

	g := in.Clone()
	names := newNameGen(len(order))

	// Forward phase: by the time A_i substitutes its reference to A_j
	// (j < i), A_j is recursion-free and never leads with any A_k for
	// k <= j, so one substitution pass per (i, j) reaches the fixed
	// point. Eliminating A_i's recursion before moving on maintains
	// that invariant for the next i.
	logrus.Debug("gnf: forward substitution")
	var auxes []grammar.Symbol
	for i, ai := range order {
		for j := 0; j < i; j++ {
			substituteLeading(g, ai, order[j])
		}
		z, introduced, err := eliminateLeftRecursion(g, ai, names)
		if err != nil {
			return nil, nil, err
		}
		if introduced {
			auxes = append(auxes, z)
		}
	}

	logrus.Debug("gnf: back substitution")
	if err := checkAuxOrder(g, auxes); err != nil {
		return nil, nil, err
	}
	targets := make([]grammar.Symbol, 0, len(order)+len(auxes))
	for i := len(order) - 1; i >= 0; i-- {
		targets = append(targets, order[i])
	}
	targets = append(targets, auxes...)
	if err := backSubstitute(g, targets); err != nil {
		return nil, nil, err
	}

	logrus.Debug("gnf: tail terminal promotion")
	if err := promoteTailTerminals(g, names); err != nil {
		return nil, nil, err
	}

	if err := checkResult(g); err != nil {
		return nil, nil, err
	}
	return g, auxes, nil
}

// DeclarationOrder derives a variable order from the order heads were
// introduced into g. Any strict total order works; this is the obvious
// deterministic default.
func DeclarationOrder(g *grammar.Grammar) []grammar.Symbol {
	return g.Heads()
}

func checkInput(g *grammar.Grammar, order []grammar.Symbol) error {
	for _, head := range g.Heads() {
		for _, b := range g.Bodies(head) {
			if len(b) == 0 {
				return newMalformedError(head, b, "empty body (epsilon productions are not supported)")
			}
		}
	}

	seen := map[string]bool{}
	for _, v := range order {
		if !v.IsVariable() {
			return newMalformedError(v, nil, "order contains non-variable symbol "+v.Name)
		}
		if seen[v.Name] {
			return newMalformedError(v, nil, "order lists variable "+v.Name+" twice")
		}
		seen[v.Name] = true
		if !g.Has(v) {
			return newMalformedError(v, nil, "ordered variable "+v.Name+" is not a head of the grammar")
		}
	}
	if len(order) != g.Len() {
		return newMalformedError(grammar.Symbol{}, nil, "order does not cover every variable of the grammar")
	}
	return nil
}

// checkResult is the engine's self-test: every body must be one
// terminal followed by variables, and every referenced variable must
// have an entry.
func checkResult(g *grammar.Grammar) error {
	if err := grammar.ValidateGNF(g); err != nil {
		var formErr grammar.InvalidFormError
		if errors.As(err, &formErr) {
			return MalformedGrammarError{Head: formErr.Head, Body: formErr.Body, Reason: formErr.Reason}
		}
		return err
	}
	for _, head := range g.Heads() {
		for _, b := range g.Bodies(head) {
			for _, s := range b[1:] {
				if !g.Has(s) {
					return newMalformedError(head, b, "body references undefined variable "+s.Name)
				}
			}
		}
	}
	return nil
}
