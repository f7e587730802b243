package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arr-ai/greibach/grammar"
)

func TestStringsFiniteLanguage(t *testing.T) {
	a := grammar.V("A", 0)
	b := grammar.V("B", 1)
	g := grammar.New()
	g.Insert(a, grammar.Body{grammar.T("a"), b})
	g.Insert(a, grammar.Body{grammar.T("b")})
	g.Insert(b, grammar.Body{grammar.T("a")})

	assert.Equal(t, []string{"a a", "b"}, Strings(g, a, 6))
}

func TestStringsRespectsBound(t *testing.T) {
	// A -> a A | a generates a, a a, a a a, ...
	a := grammar.V("A", 0)
	g := grammar.New()
	g.Insert(a, grammar.Body{grammar.T("a"), a})
	g.Insert(a, grammar.Body{grammar.T("a")})

	assert.Equal(t, []string{"a", "a a", "a a a"}, Strings(g, a, 3))
	assert.Len(t, Strings(g, a, 6), 6)
}

func TestStringsTerminatesOnUnitCycle(t *testing.T) {
	a := grammar.V("A", 0)
	b := grammar.V("B", 1)
	g := grammar.New()
	g.Insert(a, grammar.Body{b})
	g.Insert(a, grammar.Body{grammar.T("a")})
	g.Insert(b, grammar.Body{a})
	g.Insert(b, grammar.Body{grammar.T("b")})

	assert.Equal(t, []string{"a", "b"}, Strings(g, a, 4))
}

func TestStringsDeadVariableYieldsNothing(t *testing.T) {
	a := grammar.V("A", 0)
	dead := grammar.V("Dead", 1)
	g := grammar.New()
	g.Insert(a, grammar.Body{grammar.T("a"), dead})
	g.Declare(dead)

	assert.Empty(t, Strings(g, a, 6))
}

func TestStringsMatchesAcrossEquivalentGrammars(t *testing.T) {
	// A -> A a | b and its Greibach form A -> b | b Z, Z -> a | a Z
	// generate the same strings.
	a := grammar.V("A", 0)
	left := grammar.New()
	left.Insert(a, grammar.Body{a, grammar.T("a")})
	left.Insert(a, grammar.Body{grammar.T("b")})

	z := grammar.V("Z", 1)
	right := grammar.New()
	right.Insert(a, grammar.Body{grammar.T("b")})
	right.Insert(a, grammar.Body{grammar.T("b"), z})
	right.Insert(z, grammar.Body{grammar.T("a")})
	right.Insert(z, grammar.Body{grammar.T("a"), z})

	want := Strings(left, a, 6)
	require.NotEmpty(t, want)
	assert.Equal(t, want, Strings(right, a, 6))
}

func TestTreeDepthLimit(t *testing.T) {
	a := grammar.V("A", 0)
	g := grammar.New()
	g.Insert(a, grammar.Body{grammar.T("a"), a})
	g.Insert(a, grammar.Body{grammar.T("b")})

	tree := Tree(g, a, 2)
	assert.Equal(t, "A", tree.Text())
	require.Len(t, tree.Items(), 2)
	assert.Equal(t, "a A", tree.Items()[0].Text())
	assert.Equal(t, "b", tree.Items()[1].Text())
	require.Len(t, tree.Items()[0].Items(), 2)
	assert.Equal(t, "a a A", tree.Items()[0].Items()[0].Text())
	assert.Empty(t, tree.Items()[0].Items()[0].Items())
	assert.Empty(t, tree.Items()[1].Items())
}
