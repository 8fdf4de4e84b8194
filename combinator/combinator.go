// Package combinator provides a small parser-combinator toolkit over a
// token tail: match, sequence, ordered choice with longest-match, one-or-
// more, and between. It is the reusable kernel the mixfix cascade in
// package parser is built from; nothing here is mixfix-specific.
package combinator

import (
	"github.com/mixfixlang/mixfix/operator"
)

// Input is the token tail a Parser consumes from. Parsers never mutate it;
// they advance by slicing off a prefix.
type Input = []operator.NamePart

// Parser is a function from a token tail to either a shorter tail plus a
// value, or an error. Combinators compose Parser values by struct/closure
// nesting, not inheritance.
type Parser[O any] func(Input) (Input, O, error)

// Tok succeeds consuming exactly one token iff it equals s.
func Tok(s operator.NamePart) Parser[struct{}] {
	return func(in Input) (Input, struct{}, error) {
		if len(in) == 0 {
			return in, struct{}{}, UnexpectedEndOfInput{}
		}
		if in[0] != s {
			return in, struct{}{}, UnexpectedToken{Found: in[0]}
		}
		return in[1:], struct{}{}, nil
	}
}

// Seq2 runs a then b in order; a's error aborts before b runs.
func Seq2[A, B any](a Parser[A], b Parser[B]) Parser[struct {
	A A
	B B
}] {
	return func(in Input) (Input, struct {
		A A
		B B
	}, error) {
		var zero struct {
			A A
			B B
		}
		rest, av, err := a(in)
		if err != nil {
			return in, zero, err
		}
		rest, bv, err := b(rest)
		if err != nil {
			return in, zero, err
		}
		return rest, struct {
			A A
			B B
		}{av, bv}, nil
	}
}

// Seq3 runs a, b, then c in order; the first error aborts.
func Seq3[A, B, C any](a Parser[A], b Parser[B], c Parser[C]) Parser[struct {
	A A
	B B
	C C
}] {
	return func(in Input) (Input, struct {
		A A
		B B
		C C
	}, error) {
		var zero struct {
			A A
			B B
			C C
		}
		rest, av, err := a(in)
		if err != nil {
			return in, zero, err
		}
		rest, bv, err := b(rest)
		if err != nil {
			return in, zero, err
		}
		rest, cv, err := c(rest)
		if err != nil {
			return in, zero, err
		}
		return rest, struct {
			A A
			B B
			C C
		}{av, bv, cv}, nil
	}
}

// Either tags which side of an Opt succeeded.
type Either[A, B any] struct {
	IsLeft bool
	Left   A
	Right  B
}

// Opt tries both a and b against the same input. If exactly one succeeds,
// that result is returned; if both succeed, whichever leaves the shorter
// residual (consumed more tokens) wins, with a tie going to a; if both
// fail, the smaller error under CompareErrors is returned.
func Opt[A, B any](a Parser[A], b Parser[B]) Parser[Either[A, B]] {
	return func(in Input) (Input, Either[A, B], error) {
		restA, av, errA := a(in)
		restB, bv, errB := b(in)
		switch {
		case errA == nil && errB != nil:
			return restA, Either[A, B]{IsLeft: true, Left: av}, nil
		case errA != nil && errB == nil:
			return restB, Either[A, B]{IsLeft: false, Right: bv}, nil
		case errA == nil && errB == nil:
			if len(restA) <= len(restB) {
				return restA, Either[A, B]{IsLeft: true, Left: av}, nil
			}
			return restB, Either[A, B]{IsLeft: false, Right: bv}, nil
		default:
			var zero Either[A, B]
			return in, zero, MinError(errA, errB)
		}
	}
}

// SeqList runs a fixed list of parsers for the same output type in order,
// collecting their results. The first error aborts.
func SeqList[O any](ps []Parser[O]) Parser[[]O] {
	return func(in Input) (Input, []O, error) {
		out := make([]O, 0, len(ps))
		rest := in
		for _, p := range ps {
			next, v, err := p(rest)
			if err != nil {
				return in, nil, err
			}
			rest = next
			out = append(out, v)
		}
		return rest, out, nil
	}
}

// Opts tries every alternative against the same input and, among the ones
// that succeed, picks whichever leaves the shortest residual (longest
// match); ties favor the earlier alternative in the list. If none succeed,
// it returns the minimum error under CompareErrors; if the list is empty,
// it returns EmptyOpts.
func Opts[O any](ps []Parser[O]) Parser[O] {
	return func(in Input) (Input, O, error) {
		var zero O
		type ok struct {
			rest Input
			v    O
		}
		var oks []ok
		var errs []error
		for _, p := range ps {
			rest, v, err := p(in)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			oks = append(oks, ok{rest, v})
		}
		if len(oks) == 0 {
			if len(errs) == 0 {
				return in, zero, EmptyOpts{}
			}
			best := errs[0]
			for _, e := range errs[1:] {
				best = MinError(best, e)
			}
			return in, zero, best
		}
		best := oks[0]
		for _, o := range oks[1:] {
			if len(o.rest) < len(best.rest) {
				best = o
			}
		}
		return best.rest, best.v, nil
	}
}

// Plus runs p once, propagating its error, then greedily reruns it while it
// keeps succeeding on the advancing tail.
func Plus[O any](p Parser[O]) Parser[[]O] {
	return func(in Input) (Input, []O, error) {
		rest, v, err := p(in)
		if err != nil {
			return in, nil, err
		}
		out := []O{v}
		for {
			next, v, err := p(rest)
			if err != nil {
				break
			}
			rest = next
			out = append(out, v)
		}
		return rest, out, nil
	}
}

// Between matches s1 inner s2 inner ... sn given a non-empty list of
// separator parsers, returning the n-1 inner results. With an empty
// separator list it returns an empty result without consuming input.
func Between[I, S any](inner Parser[I], seps []Parser[S]) Parser[[]I] {
	return func(in Input) (Input, []I, error) {
		if len(seps) == 0 {
			return in, nil, nil
		}
		rest, _, err := seps[0](in)
		if err != nil {
			return in, nil, err
		}
		var out []I
		for _, sep := range seps[1:] {
			next, iv, err := inner(rest)
			if err != nil {
				return in, nil, err
			}
			next, _, err = sep(next)
			if err != nil {
				return in, nil, err
			}
			rest = next
			out = append(out, iv)
		}
		return rest, out, nil
	}
}
