// Package derive enumerates the terminal strings a context-free
// grammar generates, by bounded brute-force leftmost derivation. It is
// the oracle used to check that a grammar transformation preserves the
// generated language, and backs the derive CLI command.
package derive

import (
	"sort"
	"strings"

	"github.com/arr-ai/frozen"

	"github.com/arr-ai/greibach/grammar"
	"github.com/arr-ai/greibach/gotree"
)

// Strings returns every terminal string derivable from start whose
// symbol count is at most max, sorted. The grammar must be epsilon-free
// so that a sentential form longer than max can never shrink back under
// the bound; such forms are pruned, which makes the search space
// finite. Forms already expanded are skipped, so unit cycles
// (A -> B, B -> A) do not loop.
func Strings(g *grammar.Grammar, start grammar.Symbol, max int) []string {
	seen := frozen.NewSet[string]()
	found := frozen.NewSet[string]()

	queue := []grammar.Body{{start}}
	for len(queue) > 0 {
		form := queue[0]
		queue = queue[1:]

		if len(form) > max {
			continue
		}
		key := formKey(form)
		if seen.Has(key) {
			continue
		}
		seen = seen.With(key)

		i := leftmostVariable(form)
		if i < 0 {
			found = found.With(render(form))
			continue
		}
		if !g.Has(form[i]) {
			// Dead branch: the variable has no productions to expand.
			continue
		}
		for _, alt := range g.Bodies(form[i]) {
			queue = append(queue, expand(form, i, alt))
		}
	}

	out := make([]string, 0, found.Count())
	out = append(out, found.Elements()...)
	sort.Strings(out)
	return out
}

// Tree builds the leftmost-expansion tree from start, cut off after
// depth expansions down any branch. Each node is a sentential form;
// its children are the forms produced by expanding the leftmost
// variable with each alternative.
func Tree(g *grammar.Grammar, start grammar.Symbol, depth int) gotree.Tree {
	root := gotree.New(start.Name)
	expandTree(g, root, grammar.Body{start}, depth)
	return root
}

func expandTree(g *grammar.Grammar, parent gotree.Tree, form grammar.Body, depth int) {
	if depth == 0 {
		return
	}
	i := leftmostVariable(form)
	if i < 0 || !g.Has(form[i]) {
		return
	}
	for _, alt := range g.Bodies(form[i]) {
		next := expand(form, i, alt)
		expandTree(g, parent.Add(next.String()), next, depth-1)
	}
}

func leftmostVariable(form grammar.Body) int {
	for i, s := range form {
		if s.IsVariable() {
			return i
		}
	}
	return -1
}

// expand replaces form[i] with alt.
func expand(form grammar.Body, i int, alt grammar.Body) grammar.Body {
	out := make(grammar.Body, 0, len(form)+len(alt)-1)
	out = append(out, form[:i]...)
	out = append(out, alt...)
	out = append(out, form[i+1:]...)
	return out
}

func formKey(form grammar.Body) string {
	var sb strings.Builder
	for i, s := range form {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if s.IsVariable() {
			sb.WriteByte('$')
		}
		sb.WriteString(s.Name)
	}
	return sb.String()
}

func render(form grammar.Body) string {
	names := make([]string, 0, len(form))
	for _, s := range form {
		names = append(names, s.Name)
	}
	return strings.Join(names, " ")
}
