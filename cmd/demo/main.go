// Command demo is a small command-line driver for the mixfix parser: it
// builds a fixed example precedence graph (atoms, left-associative "+",
// an if/then/else prefix family, and a postfix type-judgment operator) and
// parses a whitespace-separated token string against it.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mixfixlang/mixfix/debug"
	"github.com/mixfixlang/mixfix/fixity"
	"github.com/mixfixlang/mixfix/graph"
	"github.com/mixfixlang/mixfix/operator"
	"github.com/mixfixlang/mixfix/parser"
)

var dumpFlag bool

func main() {
	root := &cobra.Command{
		Use:   "demo [tokens...]",
		Short: "Parse a whitespace-separated mixfix expression against a sample grammar",
		Long: `demo tokenizes its arguments on whitespace and parses them against a
small built-in precedence graph: atoms "a"/"b", a left-associative "+",
an "if _ then _ else _" / "if _ then _" prefix family, and a postfix
type judgment "_ ⊢ _ :".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args)
		},
	}
	root.Flags().BoolVar(&dumpFlag, "dump", false, "print the full structural dump instead of the compact form")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	var tokens []operator.NamePart
	for _, a := range args {
		tokens = append(tokens, strings.Fields(a)...)
	}

	g := exampleGraph()
	e, err := parser.ParseExpr[int](g, tokens)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	if dumpFlag {
		debug.Print(e)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), debug.ToString(e))
	return nil
}

// exampleGraph returns a small four-level precedence graph: an if/then/else
// prefix family and a postfix judgment looser than a left-associative "+",
// itself looser than the two atoms "a" and "b".
func exampleGraph() *graph.Levels {
	a := operator.MustNew(fixity.ClosedFixity, []operator.NamePart{"a"})
	b := operator.MustNew(fixity.ClosedFixity, []operator.NamePart{"b"})
	plus := operator.MustNew(fixity.InfixFixity(fixity.Left), []operator.NamePart{"+"})
	judge := operator.MustNew(fixity.PostfixFixity, []operator.NamePart{"⊢", ":"})
	ifThen := operator.MustNew(fixity.PrefixFixity, []operator.NamePart{"if", "then"})
	ifThenElse := operator.MustNew(fixity.PrefixFixity, []operator.NamePart{"if", "then", "else"})

	return graph.NewLevels([][]operator.Operator{
		{ifThen, ifThenElse},
		{judge},
		{plus},
		{a, b},
	})
}
