package grammar

// Kind distinguishes the two classes of grammar symbols.
type Kind int

const (
	Terminal Kind = iota
	Variable
)

func (k Kind) String() string {
	if k == Terminal {
		return "terminal"
	}
	return "variable"
}

// NoOrder is the order key carried by terminals, which take no part in
// the variable order.
const NoOrder = -1

// Symbol is an immutable grammar symbol. Variables carry an order key
// implementing the total order A_1 < A_2 < ... required by the
// conversion; two symbols are equal iff name, kind and order key all
// match, which plain struct comparison gives us.
type Symbol struct {
	Name     string
	Kind     Kind
	OrderKey int
}

// T returns a terminal symbol.
func T(name string) Symbol {
	return Symbol{Name: name, Kind: Terminal, OrderKey: NoOrder}
}

// V returns a variable symbol with the given position in the variable
// order.
func V(name string, order int) Symbol {
	return Symbol{Name: name, Kind: Variable, OrderKey: order}
}

func (s Symbol) IsVariable() bool { return s.Kind == Variable }
func (s Symbol) IsTerminal() bool { return s.Kind == Terminal }

// Less orders variables by order key. Terminals all share the NoOrder
// sentinel and are not meaningfully ordered.
func (s Symbol) Less(t Symbol) bool { return s.OrderKey < t.OrderKey }

func (s Symbol) String() string { return s.Name }
