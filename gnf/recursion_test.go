package gnf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arr-ai/greibach/grammar"
)

func TestEliminateLeftRecursionSplitsAlternatives(t *testing.T) {
	a := grammar.V("A", 0)
	g := grammar.New()
	g.Insert(a, grammar.Body{a, grammar.T("x")})
	g.Insert(a, grammar.Body{a, grammar.T("y")})
	g.Insert(a, grammar.Body{grammar.T("b")})
	g.Insert(a, grammar.Body{grammar.T("c"), a})

	z, introduced, err := eliminateLeftRecursion(g, a, newNameGen(1))
	require.NoError(t, err)
	require.True(t, introduced)
	assert.Equal(t, "ZA_1", z.Name)
	assert.Equal(t, 1, z.OrderKey)

	assert.Equal(t,
		"A -> b | c A | b ZA_1 | c A ZA_1\nZA_1 -> x | y | x ZA_1 | y ZA_1",
		g.String())
}

func TestEliminateLeftRecursionNoRecursionIsNoOp(t *testing.T) {
	a := grammar.V("A", 0)
	g := grammar.New()
	g.Insert(a, grammar.Body{grammar.T("b"), a})

	before := g.String()
	_, introduced, err := eliminateLeftRecursion(g, a, newNameGen(1))
	require.NoError(t, err)
	assert.False(t, introduced)
	assert.Equal(t, before, g.String())
}

func TestEliminateLeftRecursionDropsTrivialSelfCycle(t *testing.T) {
	a := grammar.V("A", 0)
	g := grammar.New()
	g.Insert(a, grammar.Body{a})
	g.Insert(a, grammar.Body{grammar.T("b")})

	_, introduced, err := eliminateLeftRecursion(g, a, newNameGen(1))
	require.NoError(t, err)
	assert.False(t, introduced)
	assert.Equal(t, "A -> b", g.String())
}

func TestEliminateLeftRecursionUnreducible(t *testing.T) {
	a := grammar.V("A", 0)
	g := grammar.New()
	g.Insert(a, grammar.Body{a, grammar.T("a")})

	_, _, err := eliminateLeftRecursion(g, a, newNameGen(1))
	var unreducible UnreducibleVariableError
	require.ErrorAs(t, err, &unreducible)
	assert.Equal(t, a, unreducible.Head)
}

func TestFreshNameDetectsCollision(t *testing.T) {
	a := grammar.V("A", 0)
	g := grammar.New()
	g.Insert(a, grammar.Body{grammar.T("a")})
	g.Declare(grammar.V("ZA_1", 1))

	names := newNameGen(2)
	_, err := names.fresh(g, a)
	var collision NameCollisionError
	require.ErrorAs(t, err, &collision)
	assert.Equal(t, "ZA_1", collision.Name)
}

func TestFreshNamesAreSequential(t *testing.T) {
	a := grammar.V("A", 0)
	b := grammar.V("B", 1)
	g := grammar.New()
	g.Declare(a)
	g.Declare(b)

	names := newNameGen(2)
	z1, err := names.fresh(g, a)
	require.NoError(t, err)
	z2, err := names.fresh(g, b)
	require.NoError(t, err)

	assert.Equal(t, "ZA_1", z1.Name)
	assert.Equal(t, 2, z1.OrderKey)
	assert.Equal(t, "ZB_2", z2.Name)
	assert.Equal(t, 3, z2.OrderKey)
}

func TestCheckAuxOrderAcceptsBackwardReferences(t *testing.T) {
	z1 := grammar.V("Z1", 1)
	z2 := grammar.V("Z2", 2)
	g := grammar.New()
	g.Insert(z1, grammar.Body{grammar.T("a")})
	g.Insert(z2, grammar.Body{z1, grammar.T("b")})

	assert.NoError(t, checkAuxOrder(g, []grammar.Symbol{z1, z2}))
}

func TestCheckAuxOrderRejectsCycle(t *testing.T) {
	z1 := grammar.V("Z1", 1)
	z2 := grammar.V("Z2", 2)
	g := grammar.New()
	g.Insert(z1, grammar.Body{z2, grammar.T("a")})
	g.Insert(z2, grammar.Body{z1, grammar.T("b")})

	err := checkAuxOrder(g, []grammar.Symbol{z1, z2})
	var malformed MalformedGrammarError
	require.ErrorAs(t, err, &malformed)
}
