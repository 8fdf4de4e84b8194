// Package expr defines the output AST node of a mixfix parse: an operator
// applied to its arguments.
package expr

import (
	"strings"

	"github.com/mixfixlang/mixfix/fixity"
	"github.com/mixfixlang/mixfix/operator"
)

// Expr is an operator applied to a vector of argument Exprs. Exprs are
// constructed bottom-up by the parser and are immutable once returned.
type Expr struct {
	Operator operator.Operator
	Args     []Expr
}

// New builds an Expr. It does not itself check well-formedness; callers
// that need the invariant checked should call WellFormed.
func New(op operator.Operator, args []Expr) Expr {
	return Expr{Operator: op, Args: args}
}

// WellFormed reports whether args.length == operator.Arity() at every node,
// recursively. Every Expr returned by parser.ParseExpr satisfies this.
func (e Expr) WellFormed() bool {
	if len(e.Args) != e.Operator.Arity() {
		return false
	}
	for _, a := range e.Args {
		if !a.WellFormed() {
			return false
		}
	}
	return true
}

// Leaves returns the left-to-right sequence of name-part tokens this Expr
// was built from, i.e. the operator's own name parts interleaved with each
// argument's leaves in argument order. This is the token-conservation
// witness from the spec: for a successful parse, Leaves(result) equals the
// original input tokens.
func (e Expr) Leaves() []operator.NamePart {
	var out []operator.NamePart
	e.appendLeaves(&out)
	return out
}

func (e Expr) appendLeaves(out *[]operator.NamePart) {
	holes := len(e.Operator.NameParts) - 1
	if holes < 0 {
		holes = 0
	}
	argIdx := 0
	kind := e.Operator.Fixity.Kind
	// Emit in source order: Infix/Postfix take a leading argument, then the
	// name parts with inner holes interleaved, then Prefix/Infix take a
	// trailing argument.
	leading := kind == fixity.Postfix || kind == fixity.Infix
	trailing := kind == fixity.Prefix || kind == fixity.Infix
	if leading {
		e.Args[argIdx].appendLeaves(out)
		argIdx++
	}
	for i, part := range e.Operator.NameParts {
		*out = append(*out, part)
		if i < holes {
			e.Args[argIdx].appendLeaves(out)
			argIdx++
		}
	}
	if trailing {
		e.Args[argIdx].appendLeaves(out)
		argIdx++
	}
}

// String renders a compact S-expression-style representation of the tree,
// useful for test failure messages and for debug.ToString; it is not a
// concrete-syntax pretty-printer.
func (e Expr) String() string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(e.Operator.String())
	for _, a := range e.Args {
		b.WriteString(" ")
		b.WriteString(a.String())
	}
	b.WriteString(")")
	return b.String()
}
