package grammar

// ValidateGNF checks the Greibach Normal Form shape: every body is one
// terminal followed by zero or more variables. Epsilon bodies are
// rejected. Returns an InvalidFormError naming the first offending
// production, or nil.
func ValidateGNF(g *Grammar) error {
	for _, head := range g.heads {
		for _, b := range g.byName[head.Name].bodies {
			if len(b) == 0 {
				return newFormError("GNF", head, b, "empty body")
			}
			if !b[0].IsTerminal() {
				return newFormError("GNF", head, b, "body must start with a terminal")
			}
			for _, s := range b[1:] {
				if !s.IsVariable() {
					return newFormError("GNF", head, b, "symbols after the first must be variables")
				}
			}
		}
	}
	return nil
}

// ValidateCNF checks the Chomsky Normal Form shape: every body is
// either a single terminal or exactly two variables.
func ValidateCNF(g *Grammar) error {
	for _, head := range g.heads {
		for _, b := range g.byName[head.Name].bodies {
			switch len(b) {
			case 1:
				if !b[0].IsTerminal() {
					return newFormError("CNF", head, b, "single-symbol body must be a terminal")
				}
			case 2:
				if !b[0].IsVariable() || !b[1].IsVariable() {
					return newFormError("CNF", head, b, "two-symbol body must be two variables")
				}
			default:
				return newFormError("CNF", head, b, "body must be one terminal or two variables")
			}
		}
	}
	return nil
}
