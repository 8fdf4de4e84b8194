// Package operator defines mixfix operators: a fixity plus an ordered
// skeleton of fixed name parts, with argument holes implied between them.
package operator

import (
	"fmt"
	"strings"

	"github.com/mixfixlang/mixfix/fixity"
)

// NamePart is one token of an operator's fixed skeleton (e.g. "if", "then",
// "+", "⊢"). Tokens are produced by a tokenizer outside this module's scope;
// NamePart is a plain interned string, never mutated once parsed.
type NamePart = string

// Operator is an immutable value: a Fixity plus an ordered sequence of
// literal name parts, non-empty for Closed operators (see New). Between every two consecutive name parts
// there is exactly one inner argument hole; Closed operators additionally
// take no outer arguments, Prefix/Postfix take one, and Infix takes two —
// see Arity.
type Operator struct {
	Fixity    fixity.Fixity
	NameParts []NamePart
}

// New validates and constructs an Operator. Closed operators need at least
// one name part to match, or nothing would ever be consumed. Prefix,
// Postfix and Infix operators may have zero name parts: this is the
// juxtaposition case (e.g. plain function application "_ _"), where the
// operator contributes no literal tokens at all and its whole arity comes
// from the outer arguments the fixity strategy supplies.
func New(fx fixity.Fixity, nameParts []NamePart) (Operator, error) {
	if fx.Kind == fixity.Closed && len(nameParts) == 0 {
		return Operator{}, fmt.Errorf("operator: closed operator requires at least one name part")
	}
	op := Operator{Fixity: fx, NameParts: append([]NamePart(nil), nameParts...)}
	return op, nil
}

// MustNew is New, panicking on error. Intended for package-level operator
// tables built from literal patterns, not for parsing caller input.
func MustNew(fx fixity.Fixity, nameParts []NamePart) Operator {
	op, err := New(fx, nameParts)
	if err != nil {
		panic(err)
	}
	return op
}

// innerHoles is the number of argument holes between consecutive name parts.
// An operator with zero name parts (pure juxtaposition) has zero inner holes.
func (o Operator) innerHoles() int {
	if len(o.NameParts) == 0 {
		return 0
	}
	return len(o.NameParts) - 1
}

// Arity is the total number of Expr arguments this operator's application
// carries: the inner holes between name parts, plus one extra argument on
// each side the fixity opens (0 for Closed, 1 for Prefix/Postfix, 2 for Infix).
func (o Operator) Arity() int {
	return o.innerHoles() + o.Fixity.OuterArity()
}

// String renders the operator's skeleton with underscores standing in for
// argument holes, e.g. "_+_" or "if _ then _ else_". It is a debugging aid,
// not a concrete-syntax pretty-printer.
func (o Operator) String() string {
	var b strings.Builder
	if o.Fixity.Kind == fixity.Postfix || o.Fixity.Kind == fixity.Infix {
		b.WriteString("_")
	}
	for i, part := range o.NameParts {
		if i > 0 {
			b.WriteString(" _ ")
		}
		b.WriteString(part)
	}
	if o.Fixity.Kind == fixity.Prefix || o.Fixity.Kind == fixity.Infix {
		b.WriteString("_")
	}
	return b.String()
}
