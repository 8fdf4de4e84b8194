package debug

import (
	"strings"
	"testing"

	"github.com/mixfixlang/mixfix/fixity"
	"github.com/mixfixlang/mixfix/operator"

	"github.com/mixfixlang/mixfix/expr"
)

func TestToString(t *testing.T) {
	atom := operator.MustNew(fixity.ClosedFixity, []operator.NamePart{"a"})
	plus := operator.MustNew(fixity.InfixFixity(fixity.Left), []operator.NamePart{"+"})
	sum := expr.New(plus, []expr.Expr{expr.New(atom, nil), expr.New(atom, nil)})

	if got, want := ToString(sum), "(_+_ (a) (a))"; got != want {
		t.Errorf("ToString() = %q, want %q", got, want)
	}
}

func TestDump(t *testing.T) {
	atom := operator.MustNew(fixity.ClosedFixity, []operator.NamePart{"a"})
	e := expr.New(atom, nil)

	out := Dump(e)
	if out == "" {
		t.Fatal("Dump() produced no output")
	}
	for _, want := range []string{"Operator", "NameParts", "a"} {
		if !strings.Contains(out, want) {
			t.Errorf("Dump() output missing %q:\n%s", want, out)
		}
	}
}
