package grammar

import (
	"github.com/arr-ai/frozen"
)

type entry struct {
	head   Symbol
	bodies []Body
	keys   frozen.Set[string]
}

// Grammar maps each variable head to its set of alternative production
// bodies. Duplicate bodies collapse (set semantics), while enumeration
// stays in insertion order so that output is deterministic. Once a head
// is introduced it is never silently dropped: replacing its bodies with
// an empty set leaves an empty entry, not a missing one.
type Grammar struct {
	heads  []Symbol
	byName map[string]*entry
}

func New() *Grammar {
	return &Grammar{byName: map[string]*entry{}}
}

func (g *Grammar) entryFor(head Symbol) *entry {
	if e, has := g.byName[head.Name]; has {
		return e
	}
	e := &entry{head: head, keys: frozen.NewSet[string]()}
	g.byName[head.Name] = e
	g.heads = append(g.heads, head)
	return e
}

// Declare introduces head with no bodies. No-op if already present.
func (g *Grammar) Declare(head Symbol) {
	g.entryFor(head)
}

// Insert adds body to head's production set. Inserting a body that is
// already present is not an error; it simply collapses.
func (g *Grammar) Insert(head Symbol, body Body) {
	e := g.entryFor(head)
	k := body.key()
	if e.keys.Has(k) {
		return
	}
	e.keys = e.keys.With(k)
	e.bodies = append(e.bodies, body)
}

// ReplaceBodies atomically swaps the production set for head,
// deduplicating the new set in the order given.
func (g *Grammar) ReplaceBodies(head Symbol, bodies []Body) {
	e := g.entryFor(head)
	e.bodies = nil
	e.keys = frozen.NewSet[string]()
	for _, b := range bodies {
		k := b.key()
		if e.keys.Has(k) {
			continue
		}
		e.keys = e.keys.With(k)
		e.bodies = append(e.bodies, b)
	}
}

// Bodies returns head's alternatives in insertion order. The returned
// slice must not be mutated.
func (g *Grammar) Bodies(head Symbol) []Body {
	if e, has := g.byName[head.Name]; has {
		return e.bodies
	}
	return nil
}

// BodiesStartingWith returns the subset of head's bodies whose first
// symbol equals first.
func (g *Grammar) BodiesStartingWith(head, first Symbol) []Body {
	var out []Body
	for _, b := range g.Bodies(head) {
		if len(b) > 0 && b[0] == first {
			out = append(out, b)
		}
	}
	return out
}

// Has reports whether head has ever been introduced.
func (g *Grammar) Has(head Symbol) bool {
	_, has := g.byName[head.Name]
	return has
}

// HasName reports whether any head with the given name has been
// introduced.
func (g *Grammar) HasName(name string) bool {
	_, has := g.byName[name]
	return has
}

// Head resolves a variable name to the head symbol it was introduced
// with.
func (g *Grammar) Head(name string) (Symbol, bool) {
	if e, has := g.byName[name]; has {
		return e.head, true
	}
	return Symbol{}, false
}

// Heads returns every head in introduction order.
func (g *Grammar) Heads() []Symbol {
	out := make([]Symbol, len(g.heads))
	copy(out, g.heads)
	return out
}

// Len returns the number of heads.
func (g *Grammar) Len() int { return len(g.heads) }

// Clone returns an independent copy. Bodies themselves are shared; they
// are immutable by convention.
func (g *Grammar) Clone() *Grammar {
	clone := &Grammar{
		heads:  make([]Symbol, len(g.heads)),
		byName: make(map[string]*entry, len(g.byName)),
	}
	copy(clone.heads, g.heads)
	for name, e := range g.byName {
		bodies := make([]Body, len(e.bodies))
		copy(bodies, e.bodies)
		clone.byName[name] = &entry{head: e.head, bodies: bodies, keys: e.keys}
	}
	return clone
}
