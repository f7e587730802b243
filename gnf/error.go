package gnf

import (
	"fmt"

	"github.com/arr-ai/greibach/grammar"
)

// MalformedGrammarError reports an input grammar the conversion cannot
// work on: an empty production body, an order that does not cover the
// grammar's variables, a reference to a variable that was never
// defined, or a cycle among auxiliary variables.
type MalformedGrammarError struct {
	Head   grammar.Symbol
	Body   grammar.Body
	Reason string
}

func (e MalformedGrammarError) Error() string {
	switch {
	case e.Head.Name == "":
		return "malformed grammar: " + e.Reason
	case len(e.Body) == 0:
		return fmt.Sprintf("malformed grammar: %s: %s", e.Head, e.Reason)
	default:
		return fmt.Sprintf("malformed grammar: %s -> %s: %s", e.Head, e.Body, e.Reason)
	}
}

func newMalformedError(head grammar.Symbol, body grammar.Body, reason string) error {
	return MalformedGrammarError{Head: head, Body: body, Reason: reason}
}

// UnreducibleVariableError reports a variable whose production set
// became empty after left-recursion elimination: every alternative was
// self-recursive, so the variable derives no terminal string at all.
type UnreducibleVariableError struct {
	Head grammar.Symbol
}

func (e UnreducibleVariableError) Error() string {
	return fmt.Sprintf("variable %s has only self-recursive productions and generates no string", e.Head)
}

// NameCollisionError reports a freshly generated auxiliary variable
// name that collides with an existing head. The generator checks for
// this and fails fast rather than overwriting.
type NameCollisionError struct {
	Name string
}

func (e NameCollisionError) Error() string {
	return fmt.Sprintf("auxiliary variable name %q collides with an existing variable", e.Name)
}
