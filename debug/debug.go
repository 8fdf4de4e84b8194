// Package debug provides development-time introspection of a parsed Expr
// tree: a compact string form and a detailed structural dump.
package debug

import (
	"github.com/davecgh/go-spew/spew"

	"github.com/mixfixlang/mixfix/expr"
)

var cfg = &spew.ConfigState{
	Indent:                  "   ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	ContinueOnMethod:        false,
}

// ToString converts an Expr to its compact S-expression representation.
func ToString(e expr.Expr) string {
	return e.String()
}

// Print outputs a detailed formatted representation of an Expr tree for
// debugging, recursing into every operator and argument.
func Print(e expr.Expr) {
	cfg.Dump(e)
}

// Dump returns the detailed formatted representation as a string instead of
// writing it to stdout.
func Dump(e expr.Expr) string {
	return cfg.Sdump(e)
}
