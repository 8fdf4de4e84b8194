// Package graph provides the PrecedenceGraph capability the mixfix parser
// consumes: an abstract DAG of precedence nodes, each carrying the
// operators declared at that level.
package graph

import (
	"github.com/mixfixlang/mixfix/fixity"
	"github.com/mixfixlang/mixfix/operator"
)

// PrecedenceGraph is a DAG of precedence nodes. P is the caller's opaque,
// copyable precedence handle type — an int level index, a string label, a
// node id, whatever the caller's encoding needs. Edges p -> q mean "q is
// strictly tighter than p": arguments of operators at p must be parsed at q
// (or anything reachable from p), never at p itself.
//
// Implementations must keep the graph acyclic and must never include p in
// Succ(p); this package does not validate that (see spec.md §9).
type PrecedenceGraph[P comparable] interface {
	// Ops returns the operators declared at prec with the given fixity.
	Ops(prec P, fix fixity.Fixity) []operator.Operator
	// Succ returns every precedence handle strictly tighter than prec —
	// the transitively reachable set, not just direct children. Levels
	// returns only the next level instead, which parses fewer inputs even
	// on a total order; see Levels.
	Succ(prec P) []P
	// All returns every precedence node. Enumeration order is unspecified
	// but must be stable within one parse.
	All() []P
}
