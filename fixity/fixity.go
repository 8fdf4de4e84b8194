// Package fixity defines the shape categories an operator can take.
package fixity

// Associativity distinguishes how an infix operator chains with adjacent
// operators at the same precedence.
type Associativity int

const (
	Left Associativity = iota
	Right
	Non
)

func (a Associativity) String() string {
	switch a {
	case Left:
		return "left"
	case Right:
		return "right"
	case Non:
		return "non"
	default:
		return "unknown"
	}
}

// Kind is the shape tag of a Fixity, independent of associativity.
type Kind int

const (
	Closed Kind = iota
	Prefix
	Postfix
	Infix
)

func (k Kind) String() string {
	switch k {
	case Closed:
		return "closed"
	case Prefix:
		return "prefix"
	case Postfix:
		return "postfix"
	case Infix:
		return "infix"
	default:
		return "unknown"
	}
}

// Fixity tags an operator's outer-argument shape: Closed (no outer
// arguments), Prefix (one on the right), Postfix (one on the left), or
// Infix (one on each side, with an Associativity). Associativity is only
// meaningful when Kind is Infix.
type Fixity struct {
	Kind  Kind
	Assoc Associativity
}

// ClosedFixity, PrefixFixity and PostfixFixity are the non-infix fixities.
var (
	ClosedFixity  = Fixity{Kind: Closed}
	PrefixFixity  = Fixity{Kind: Prefix}
	PostfixFixity = Fixity{Kind: Postfix}
)

// InfixFixity builds an Infix fixity with the given associativity.
func InfixFixity(assoc Associativity) Fixity {
	return Fixity{Kind: Infix, Assoc: assoc}
}

// Equal reports whether two fixities denote the same shape (and, for Infix,
// the same associativity).
func (f Fixity) Equal(g Fixity) bool {
	if f.Kind != g.Kind {
		return false
	}
	if f.Kind == Infix {
		return f.Assoc == g.Assoc
	}
	return true
}

// OuterArity is the number of outer arguments this fixity contributes on top
// of an operator's inner holes: 0 for Closed, 1 for Prefix/Postfix, 2 for Infix.
func (f Fixity) OuterArity() int {
	switch f.Kind {
	case Closed:
		return 0
	case Prefix, Postfix:
		return 1
	case Infix:
		return 2
	default:
		return 0
	}
}

func (f Fixity) String() string {
	if f.Kind == Infix {
		return "infix(" + f.Assoc.String() + ")"
	}
	return f.Kind.String()
}
