package gnf

import (
	"github.com/arr-ai/greibach/grammar"
)

// substituteLeading rewrites every body of target that begins with src:
// the body is removed and, for each alternative β of src, β spliced
// onto the remainder is inserted in its place. Bodies not led by src
// are kept as they are.
//
// A single pass suffices as long as none of src's own bodies begins
// with src. The forward phase guarantees that by eliminating src's left
// recursion before src is ever used as a substitution source; callers
// must not pass target == src.
func substituteLeading(g *grammar.Grammar, target, src grammar.Symbol) int {
	bodies := g.Bodies(target)
	out := make([]grammar.Body, 0, len(bodies))
	substituted := 0
	for _, b := range bodies {
		if len(b) == 0 || b[0] != src {
			out = append(out, b)
			continue
		}
		substituted++
		for _, alt := range g.Bodies(src) {
			out = append(out, grammar.Splice(alt, b[1:]))
		}
	}
	if substituted > 0 {
		g.ReplaceBodies(target, out)
	}
	return substituted
}

// leadingVariable returns the first symbol of b if it is a variable.
func leadingVariable(b grammar.Body) (grammar.Symbol, bool) {
	if len(b) > 0 && b[0].IsVariable() {
		return b[0], true
	}
	return grammar.Symbol{}, false
}
