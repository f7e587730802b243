package interchange

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arr-ai/greibach/grammar"
)

const exprSrc = `
start = "Expr"
order = ["Expr", "Term"]

[vars]
Expr = ["Term plus Expr", "Term"]
Term = ["a"]
`

func TestDecode(t *testing.T) {
	got, err := Decode(strings.NewReader(exprSrc))
	require.NoError(t, err)

	expr := grammar.V("Expr", 0)
	term := grammar.V("Term", 1)
	assert.Equal(t, []grammar.Symbol{expr, term}, got.Order)
	assert.Equal(t, expr, got.Start)
	assert.Equal(t, "Expr -> Term plus Expr | Term\nTerm -> a", got.Grammar.String())

	// "plus" is not a [vars] key, so it decodes as a terminal.
	bodies := got.Grammar.Bodies(expr)
	require.Len(t, bodies, 2)
	assert.Equal(t, grammar.T("plus"), bodies[0][1])
}

func TestDecodeDefaultsOrderAndStart(t *testing.T) {
	src := `
[vars]
B = ["b"]
A = ["a B"]
`
	got, err := Decode(strings.NewReader(src))
	require.NoError(t, err)

	// Without an explicit order, variables sort by name.
	require.Len(t, got.Order, 2)
	assert.Equal(t, "A", got.Order[0].Name)
	assert.Equal(t, 0, got.Order[0].OrderKey)
	assert.Equal(t, "B", got.Order[1].Name)
	assert.Equal(t, "A", got.Start.Name)
}

func TestDecodeErrors(t *testing.T) {
	cases := map[string]string{
		"no vars":         `start = "A"`,
		"unknown start":   "start = \"X\"\n[vars]\nA = [\"a\"]",
		"unknown ordered": "order = [\"A\", \"X\"]\n[vars]\nA = [\"a\"]\nB = [\"b\"]",
		"short order":     "order = [\"A\"]\n[vars]\nA = [\"a\"]\nB = [\"b\"]",
		"duplicate order": "order = [\"A\", \"A\"]\n[vars]\nA = [\"a\"]\nB = [\"b\"]",
		"empty body":      "[vars]\nA = [\"\"]",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(src))
			assert.Error(t, err)
		})
	}
}

func TestDecodeCollapsesDuplicateAlternatives(t *testing.T) {
	src := `
[vars]
A = ["a", "a"]
`
	got, err := Decode(strings.NewReader(src))
	require.NoError(t, err)
	a, _ := got.Grammar.Head("A")
	assert.Len(t, got.Grammar.Bodies(a), 1)
}
