package grammar

import "strings"

// Body is one production right-hand side: an ordered sequence of
// symbols. Bodies are treated as immutable once inserted into a
// Grammar; transformations build new bodies rather than editing in
// place.
type Body []Symbol

// Equal reports structural sequence equality.
func (b Body) Equal(c Body) bool {
	if len(b) != len(c) {
		return false
	}
	for i, s := range b {
		if s != c[i] {
			return false
		}
	}
	return true
}

func (b Body) String() string {
	names := make([]string, 0, len(b))
	for _, s := range b {
		names = append(names, s.Name)
	}
	return strings.Join(names, " ")
}

// key is the deduplication key used by the production store. The kind
// marker keeps a terminal "a" distinct from a variable named "a".
func (b Body) key() string {
	var sb strings.Builder
	for i, s := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if s.Kind == Variable {
			sb.WriteByte('$')
		}
		sb.WriteString(s.Name)
	}
	return sb.String()
}

// Splice returns alt followed by tail, as a fresh body. It implements
// the substitution step of replacing a leading variable by one of its
// alternatives.
func Splice(alt, tail Body) Body {
	out := make(Body, 0, len(alt)+len(tail))
	out = append(out, alt...)
	out = append(out, tail...)
	return out
}
