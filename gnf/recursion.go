package gnf

import (
	"github.com/sirupsen/logrus"

	"github.com/arr-ai/greibach/grammar"
)

// eliminateLeftRecursion removes direct left recursion from head using
// the standard identity: with recursive bodies head·α and non-recursive
// bodies β,
//
//	head -> β | β Z
//	Z    -> α | α Z
//
// for a fresh auxiliary Z. Returns the auxiliary and true if one was
// introduced. A head whose every body is self-recursive generates no
// terminal string; that surfaces as UnreducibleVariableError rather
// than an empty production set.
func eliminateLeftRecursion(g *grammar.Grammar, head grammar.Symbol, names *nameGen) (grammar.Symbol, bool, error) {
	var recursive, nonRecursive []grammar.Body
	for _, b := range g.Bodies(head) {
		if len(b) > 0 && b[0] == head {
			alpha := b[1:]
			if len(alpha) == 0 {
				// head -> head derives nothing new; drop it.
				logrus.Warnf("dropping trivial self-cycle %s -> %s", head, b)
				continue
			}
			recursive = append(recursive, alpha)
		} else {
			nonRecursive = append(nonRecursive, b)
		}
	}

	if len(recursive) == 0 {
		if len(nonRecursive) != len(g.Bodies(head)) {
			// Only trivial self-cycles were removed.
			g.ReplaceBodies(head, nonRecursive)
		}
		return grammar.Symbol{}, false, nil
	}
	if len(nonRecursive) == 0 {
		return grammar.Symbol{}, false, UnreducibleVariableError{Head: head}
	}

	z, err := names.fresh(g, head)
	if err != nil {
		return grammar.Symbol{}, false, err
	}

	headBodies := make([]grammar.Body, 0, 2*len(nonRecursive))
	headBodies = append(headBodies, nonRecursive...)
	for _, beta := range nonRecursive {
		headBodies = append(headBodies, grammar.Splice(beta, grammar.Body{z}))
	}
	g.ReplaceBodies(head, headBodies)

	for _, alpha := range recursive {
		g.Insert(z, alpha)
	}
	for _, alpha := range recursive {
		g.Insert(z, grammar.Splice(alpha, grammar.Body{z}))
	}

	logrus.Debugf("eliminated left recursion on %s via %s", head, z)
	return z, true, nil
}
