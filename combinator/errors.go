package combinator

import (
	"fmt"
	"strings"

	"github.com/mixfixlang/mixfix/operator"
)

// UnexpectedToken is returned by Tok when it expected a specific literal
// but found a different one.
type UnexpectedToken struct {
	Found operator.NamePart
}

func (e UnexpectedToken) Error() string {
	return fmt.Sprintf("unexpected token %q", e.Found)
}

// UnexpectedEndOfInput is returned by Tok when it expected a literal but
// the token tail was empty.
type UnexpectedEndOfInput struct{}

func (e UnexpectedEndOfInput) Error() string { return "unexpected end of input" }

// UnparsedInput is returned by the top-level entry point when a parse
// succeeded but left a non-empty residual.
type UnparsedInput struct {
	Residual []operator.NamePart
}

func (e UnparsedInput) Error() string {
	return fmt.Sprintf("unparsed input: %s", strings.Join(e.Residual, " "))
}

// EmptyOpts is returned when Opts is invoked over an empty alternative
// list — structurally, this surfaces when a grammar level has no
// applicable operators for a given fixity.
type EmptyOpts struct{}

func (e EmptyOpts) Error() string { return "no alternatives to try" }

// errorRank orders the four error kinds: UnexpectedToken < UnexpectedEndOfInput
// < UnparsedInput < EmptyOpts — the most specific, earliest diagnostic sorts
// first.
func errorRank(err error) int {
	switch err.(type) {
	case UnexpectedToken:
		return 0
	case UnexpectedEndOfInput:
		return 1
	case UnparsedInput:
		return 2
	case EmptyOpts:
		return 3
	default:
		return 4
	}
}

// CompareErrors implements the total order from the spec: errors are
// ordered UnexpectedToken < UnexpectedEndOfInput < UnparsedInput <
// EmptyOpts; within UnexpectedToken and UnparsedInput, ties break
// lexicographically on the carried token / residual. It returns a negative
// number if a < b, zero if equal, and positive if a > b.
func CompareErrors(a, b error) int {
	ra, rb := errorRank(a), errorRank(b)
	if ra != rb {
		return ra - rb
	}
	switch av := a.(type) {
	case UnexpectedToken:
		bv := b.(UnexpectedToken)
		return strings.Compare(av.Found, bv.Found)
	case UnparsedInput:
		bv := b.(UnparsedInput)
		return strings.Compare(strings.Join(av.Residual, " "), strings.Join(bv.Residual, " "))
	default:
		return 0
	}
}

// MinError returns whichever of a, b sorts first under CompareErrors.
func MinError(a, b error) error {
	if CompareErrors(a, b) <= 0 {
		return a
	}
	return b
}
