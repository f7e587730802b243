package grammar

import (
	"io"
	"strings"
)

// String renders the grammar one head per line as
//
//	head -> body1 | body2
//
// with symbols space-separated. Heads appear in introduction order and
// bodies in insertion order, so the rendering is stable for a given
// grammar and usable as a comparison artifact in tests.
func (g *Grammar) String() string {
	var sb strings.Builder
	g.render(&sb) //nolint:errcheck // strings.Builder never fails
	return sb.String()
}

// Render writes the same form as String to w.
func (g *Grammar) Render(w io.Writer) error {
	return g.render(w)
}

func (g *Grammar) render(w io.Writer) error {
	for i, head := range g.heads {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		line := head.Name + " ->"
		for j, b := range g.byName[head.Name].bodies {
			if j > 0 {
				line += " |"
			}
			line += " " + b.String()
		}
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}
