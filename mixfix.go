// Package mixfix provides a precedence-graph-driven mixfix expression
// parser: given a user-supplied graph of precedence levels, each carrying
// Closed, Prefix, Postfix or Infix operators, it parses a token sequence
// into an Expr tree, resolving local ambiguity by longest match.
//
// Example usage:
//
//	package main
//
//	import (
//		"fmt"
//		"github.com/mixfixlang/mixfix"
//		"github.com/mixfixlang/mixfix/fixity"
//		"github.com/mixfixlang/mixfix/operator"
//	)
//
//	func main() {
//		atom := operator.MustNew(fixity.ClosedFixity, []operator.NamePart{"a"})
//		plus := operator.MustNew(fixity.InfixFixity(fixity.Left), []operator.NamePart{"+"})
//		g := mixfix.NewLevels([][]operator.Operator{{plus}, {atom}})
//
//		e, err := mixfix.ParseExpr[int](g, []operator.NamePart{"a", "+", "a"})
//		if err != nil {
//			panic(err)
//		}
//		fmt.Println(e.String())
//	}
package mixfix

import (
	"github.com/mixfixlang/mixfix/expr"
	"github.com/mixfixlang/mixfix/fixity"
	"github.com/mixfixlang/mixfix/graph"
	"github.com/mixfixlang/mixfix/operator"
	"github.com/mixfixlang/mixfix/parser"
)

// Re-exported types, so a caller only needs to import this one package for
// the common case.
// PrecedenceGraph is not re-exported as a generic alias (generic type
// aliases need a newer Go than this module targets); callers needing the
// interface type itself import github.com/mixfixlang/mixfix/graph directly.
type (
	Expr          = expr.Expr
	Operator      = operator.Operator
	NamePart      = operator.NamePart
	Fixity        = fixity.Fixity
	Associativity = fixity.Associativity
	Levels        = graph.Levels
	DAG           = graph.DAG
)

// Re-exported constructors and values.
var (
	NewOperator   = operator.New
	MustOperator  = operator.MustNew
	InfixFixity   = fixity.InfixFixity
	NewLevels     = graph.NewLevels
	NewDAG        = graph.NewDAG
	ClosedFixity  = fixity.ClosedFixity
	PrefixFixity  = fixity.PrefixFixity
	PostfixFixity = fixity.PostfixFixity
)

const (
	Left  = fixity.Left
	Right = fixity.Right
	Non   = fixity.Non
)

// ParseExpr parses tokens against g, requiring the entire input to be
// consumed.
func ParseExpr[P comparable](g graph.PrecedenceGraph[P], tokens []NamePart) (Expr, error) {
	return parser.ParseExpr(g, tokens)
}

// Version identifies this module's release.
const Version = "0.1.0"
