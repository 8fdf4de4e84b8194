// Package parser implements the precedence-graph-driven mixfix parser: the
// recursive combinator cascade that, for each precedence level, tries four
// fixity strategies (closed, non-associative infix, a right-leaning
// prefix/infix-right chain, a left-leaning postfix/infix-left chain),
// recursing into strictly-higher precedences for subexpressions, with all
// local ambiguity resolved by longest-match over every alternative.
//
// This is the Go realization of Danielsson and Norell's mixfix algorithm,
// grounded on _examples/original_source/src/parser.rs (package chryslovelace/mixfix).
package parser

import (
	"github.com/mixfixlang/mixfix/combinator"
	"github.com/mixfixlang/mixfix/expr"
	"github.com/mixfixlang/mixfix/fixity"
	"github.com/mixfixlang/mixfix/graph"
	"github.com/mixfixlang/mixfix/operator"
)

// Error taxonomy and ordering, re-exported from the combinator kernel that
// defines them (Tok produces UnexpectedToken/UnexpectedEndOfInput, Opts
// produces EmptyOpts); UnparsedInput is added only by ParseExpr below.
type (
	UnexpectedToken      = combinator.UnexpectedToken
	UnexpectedEndOfInput = combinator.UnexpectedEndOfInput
	UnparsedInput        = combinator.UnparsedInput
	EmptyOpts            = combinator.EmptyOpts
)

// CompareErrors implements the total order from the spec:
// UnexpectedToken < UnexpectedEndOfInput < UnparsedInput < EmptyOpts, with
// lexicographic tie-breaking on the carried token/residual.
var CompareErrors = combinator.CompareErrors

// exprParser carries the caller's precedence graph through the cascade.
// Its methods build combinator.Parser values; none of them consume input
// themselves except through the closures they return.
type exprParser[P comparable] struct {
	g graph.PrecedenceGraph[P]
}

// ParseExpr parses tokens against graph, requiring the entire input to be
// consumed. On success it returns a well-formed Expr; on a non-empty
// residual it returns UnparsedInput; on failure anywhere in the cascade it
// returns the minimum error encountered under CompareErrors.
func ParseExpr[P comparable](g graph.PrecedenceGraph[P], tokens []operator.NamePart) (expr.Expr, error) {
	ep := exprParser[P]{g: g}
	rest, e, err := ep.expr()(tokens)
	if err != nil {
		return expr.Expr{}, err
	}
	if len(rest) != 0 {
		return expr.Expr{}, combinator.UnparsedInput{Residual: rest}
	}
	return e, nil
}

// expr parses a full expression: any precedence, in the graph's own
// enumeration order.
func (ep exprParser[P]) expr() combinator.Parser[expr.Expr] {
	return ep.precs(ep.g.All())
}

// precs tries every precedence in ps as an outermost level, keeping the
// longest match.
func (ep exprParser[P]) precs(ps []P) combinator.Parser[expr.Expr] {
	parsers := make([]combinator.Parser[expr.Expr], len(ps))
	for i, p := range ps {
		parsers[i] = ep.prec(p)
	}
	return combinator.Opts(parsers)
}

// prec tries the four fixity strategies at precedence p, keeping the
// longest match.
func (ep exprParser[P]) prec(p P) combinator.Parser[expr.Expr] {
	return combinator.Opts([]combinator.Parser[expr.Expr]{
		ep.closed(p),
		ep.nonAssoc(p),
		ep.preRight(p),
		ep.postLeft(p),
	})
}

// closed parses one Closed operator at p.
func (ep exprParser[P]) closed(p P) combinator.Parser[expr.Expr] {
	return ep.inner(p, fixity.ClosedFixity)
}

// nonAssoc parses Precs(succ(p)) · Inner(p, Infix Non) · Precs(succ(p)),
// prepending the left argument and appending the right argument to the
// inner operator's captured holes. Exactly one infix operator at this level
// may appear; there is no chaining.
func (ep exprParser[P]) nonAssoc(p P) combinator.Parser[expr.Expr] {
	return func(in combinator.Input) (combinator.Input, expr.Expr, error) {
		succ := ep.precs(ep.g.Succ(p))
		rest, left, err := succ(in)
		if err != nil {
			return in, expr.Expr{}, err
		}
		rest, inner, err := ep.inner(p, fixity.InfixFixity(fixity.Non))(rest)
		if err != nil {
			return in, expr.Expr{}, err
		}
		rest, right, err := succ(rest)
		if err != nil {
			return in, expr.Expr{}, err
		}
		args := make([]expr.Expr, 0, len(inner.Args)+2)
		args = append(args, left)
		args = append(args, inner.Args...)
		args = append(args, right)
		inner.Args = args
		return rest, inner, nil
	}
}

// preRight handles prefix operators and right-associative infix operators
// at p, which form a right-leaning chain: (prefix | tighter infix_right)+
// tighter. Each iteration is either a bare prefix (already missing only its
// trailing argument) or a tighter expression followed by an infix-right
// operator (the tighter expression becomes that operator's left argument,
// leaving it missing only its trailing argument). The chain folds
// right-associatively: the last iteration's missing argument becomes the
// just-parsed trailing `tighter`, and each preceding iteration's missing
// argument becomes the already-folded tail that follows it.
func (ep exprParser[P]) preRight(p P) combinator.Parser[expr.Expr] {
	return func(in combinator.Input) (combinator.Input, expr.Expr, error) {
		succ := ep.precs(ep.g.Succ(p))
		prefixP := ep.inner(p, fixity.PrefixFixity)
		pairP := combinator.Seq2(succ, ep.inner(p, fixity.InfixFixity(fixity.Right)))
		iterP := combinator.Opt(prefixP, pairP)

		rest, iters, err := combinator.Plus(iterP)(in)
		if err != nil {
			return in, expr.Expr{}, err
		}
		rest, last, err := succ(rest)
		if err != nil {
			return in, expr.Expr{}, err
		}

		items := make([]expr.Expr, len(iters))
		for i, it := range iters {
			if it.IsLeft {
				items[i] = it.Left
				continue
			}
			tighter, op := it.Right.A, it.Right.B
			op.Args = append([]expr.Expr{tighter}, op.Args...)
			items[i] = op
		}

		tail := last
		for i := len(items) - 1; i >= 0; i-- {
			item := items[i]
			item.Args = append(item.Args, tail)
			tail = item
		}
		return rest, tail, nil
	}
}

// postLeft is the mirror image of preRight: tighter (postfix | infix_left
// tighter)+. The leading `tighter` is the innermost left argument; the
// chain folds left-associatively, each iteration's accumulated expression
// becoming the next iteration's missing (leading) argument.
func (ep exprParser[P]) postLeft(p P) combinator.Parser[expr.Expr] {
	return func(in combinator.Input) (combinator.Input, expr.Expr, error) {
		succ := ep.precs(ep.g.Succ(p))
		rest, first, err := succ(in)
		if err != nil {
			return in, expr.Expr{}, err
		}

		postfixP := ep.inner(p, fixity.PostfixFixity)
		pairP := combinator.Seq2(ep.inner(p, fixity.InfixFixity(fixity.Left)), succ)
		iterP := combinator.Opt(postfixP, pairP)

		rest, iters, err := combinator.Plus(iterP)(rest)
		if err != nil {
			return in, expr.Expr{}, err
		}

		items := make([]expr.Expr, len(iters))
		for i, it := range iters {
			if it.IsLeft {
				items[i] = it.Left
				continue
			}
			op, tighter := it.Right.A, it.Right.B
			op.Args = append(op.Args, tighter)
			items[i] = op
		}

		head := first
		for _, item := range items {
			item.Args = append([]expr.Expr{head}, item.Args...)
			head = item
		}
		return rest, head, nil
	}
}

// inner tries every operator at p with the given fixity, longest match.
func (ep exprParser[P]) inner(p P, fix fixity.Fixity) combinator.Parser[expr.Expr] {
	ops := ep.g.Ops(p, fix)
	parsers := make([]combinator.Parser[expr.Expr], len(ops))
	for i, op := range ops {
		parsers[i] = ep.backbone(op)
	}
	return combinator.Opts(parsers)
}

// backbone matches a single operator's fixed name-part skeleton, recursing
// into a full Expr parse between each consecutive pair of name parts.
// Outer arguments (of Prefix/Infix/Postfix) are supplied by the strategy
// that called backbone, not by backbone itself.
//
// The recursive call to ep.expr() is deferred inside the returned closure:
// constructing the parser for backbone must not eagerly re-enter expr(),
// since expr() -> ... -> inner() -> backbone() is exactly the cycle this
// function sits on.
func (ep exprParser[P]) backbone(op operator.Operator) combinator.Parser[expr.Expr] {
	seps := make([]combinator.Parser[struct{}], len(op.NameParts))
	for i, part := range op.NameParts {
		seps[i] = combinator.Tok(part)
	}
	return func(in combinator.Input) (combinator.Input, expr.Expr, error) {
		rest, holes, err := combinator.Between(ep.expr(), seps)(in)
		if err != nil {
			return in, expr.Expr{}, err
		}
		return rest, expr.New(op, holes), nil
	}
}
