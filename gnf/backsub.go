package gnf

import (
	"github.com/arr-ai/frozen"
	"github.com/sirupsen/logrus"

	"github.com/arr-ai/greibach/grammar"
)

// backSubstitute processes targets in the given order, rewriting each
// target until none of its bodies starts with a variable. Earlier
// targets end up all-terminal-leading, so substituting them into later
// targets strictly lowers the rank of the leading symbol and the loop
// terminates.
func backSubstitute(g *grammar.Grammar, targets []grammar.Symbol) error {
	for _, t := range targets {
		for {
			bodies := g.Bodies(t)
			out := make([]grammar.Body, 0, len(bodies))
			changed := false
			for _, b := range bodies {
				v, ok := leadingVariable(b)
				if !ok {
					out = append(out, b)
					continue
				}
				if !g.Has(v) {
					logrus.Warnf("dropping %s -> %s: leading variable %s is not defined", t, b, v)
					return newMalformedError(t, b, "body references undefined variable "+v.Name)
				}
				changed = true
				for _, alt := range g.Bodies(v) {
					out = append(out, grammar.Splice(alt, b[1:]))
				}
			}
			if !changed {
				break
			}
			g.ReplaceBodies(t, out)
		}
	}
	return nil
}

// checkAuxOrder verifies that the leading-symbol dependencies among
// auxiliary variables form no cycle, so that a single processing order
// over them exists. By construction a later auxiliary may lead with an
// earlier one but not the other way around; a cycle here means the
// invariant was broken upstream and back substitution would never
// terminate.
func checkAuxOrder(g *grammar.Grammar, auxes []grammar.Symbol) error {
	auxNames := frozen.NewSet[string]()
	for _, z := range auxes {
		auxNames = auxNames.With(z.Name)
	}

	deps := map[string][]string{}
	for _, z := range auxes {
		for _, b := range g.Bodies(z) {
			if v, ok := leadingVariable(b); ok && auxNames.Has(v.Name) {
				deps[z.Name] = append(deps[z.Name], v.Name)
			}
		}
	}

	done := frozen.NewSet[string]()
	for _, z := range auxes {
		if done.Has(z.Name) {
			continue
		}
		var err error
		done, err = walkAuxDeps(g, z.Name, deps, frozen.NewSet[string](), done)
		if err != nil {
			return err
		}
	}
	return nil
}

func walkAuxDeps(g *grammar.Grammar, name string, deps map[string][]string, path, done frozen.Set[string]) (frozen.Set[string], error) {
	if path.Has(name) {
		head, _ := g.Head(name)
		return done, newMalformedError(head, nil, "cycle among auxiliary variables at "+name)
	}
	path = path.With(name)
	for _, next := range deps[name] {
		if done.Has(next) {
			continue
		}
		var err error
		done, err = walkAuxDeps(g, next, deps, path, done)
		if err != nil {
			return done, err
		}
	}
	return done.With(name), nil
}
