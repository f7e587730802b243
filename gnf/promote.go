package gnf

import (
	"github.com/sirupsen/logrus"

	"github.com/arr-ai/greibach/grammar"
)

// promoteTailTerminals replaces every terminal occurring after the
// first position of a body with a carrier variable producing exactly
// that terminal. Back substitution only pulls terminals to the front;
// this step is what makes the construction total over epsilon-free
// grammars whose bodies mix terminals into their tails. One carrier is
// minted per distinct terminal, on first encounter, so output stays
// deterministic.
func promoteTailTerminals(g *grammar.Grammar, names *nameGen) error {
	carriers := map[string]grammar.Symbol{}
	for _, head := range g.Heads() {
		bodies := g.Bodies(head)
		out := make([]grammar.Body, 0, len(bodies))
		changed := false
		for _, b := range bodies {
			body := b
			copied := false
			for i := 1; i < len(body); i++ {
				if !body[i].IsTerminal() {
					continue
				}
				carrier, has := carriers[body[i].Name]
				if !has {
					var err error
					carrier, err = names.freshCarrier(g, body[i])
					if err != nil {
						return err
					}
					carriers[body[i].Name] = carrier
					g.Insert(carrier, grammar.Body{body[i]})
					logrus.Debugf("promoted tail terminal %s to %s", body[i], carrier)
				}
				if !copied {
					body = append(grammar.Body{}, body...)
					copied = true
				}
				body[i] = carrier
				changed = true
			}
			out = append(out, body)
		}
		if changed {
			g.ReplaceBodies(head, out)
		}
	}
	return nil
}
