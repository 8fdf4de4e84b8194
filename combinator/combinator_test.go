package combinator

import (
	"testing"
)

func TestTok(t *testing.T) {
	rest, _, err := Tok("x")(Input{"x", "y"})
	if err != nil {
		t.Fatalf("Tok(x) on [x y] error = %v", err)
	}
	if len(rest) != 1 || rest[0] != "y" {
		t.Fatalf("Tok(x) residual = %v, want [y]", rest)
	}

	_, _, err = Tok("x")(Input{"z"})
	if _, ok := err.(UnexpectedToken); !ok {
		t.Fatalf("Tok(x) on [z] error = %v, want UnexpectedToken", err)
	}

	_, _, err = Tok("x")(Input{})
	if _, ok := err.(UnexpectedEndOfInput); !ok {
		t.Fatalf("Tok(x) on [] error = %v, want UnexpectedEndOfInput", err)
	}
}

func TestOptLongestMatchWins(t *testing.T) {
	short := func(in Input) (Input, string, error) {
		return in[1:], "short", nil
	}
	long := func(in Input) (Input, string, error) {
		return in[2:], "long", nil
	}

	rest, v, err := Opt[string, string](short, long)(Input{"a", "b", "c"})
	if err != nil {
		t.Fatalf("Opt error = %v", err)
	}
	if v.Right != "long" || len(rest) != 1 {
		t.Fatalf("Opt result = %+v, rest = %v, want the longer match", v, rest)
	}
}

func TestOptTieBreaksLeft(t *testing.T) {
	left := func(in Input) (Input, string, error) { return in[1:], "left", nil }
	right := func(in Input) (Input, string, error) { return in[1:], "right", nil }

	_, v, err := Opt[string, string](left, right)(Input{"a", "b"})
	if err != nil {
		t.Fatalf("Opt error = %v", err)
	}
	if !v.IsLeft || v.Left != "left" {
		t.Fatalf("Opt tie result = %+v, want left branch", v)
	}
}

func TestOptBothFailReturnsMinError(t *testing.T) {
	_, _, err := Opt[struct{}, struct{}](Tok("x"), Tok("y"))(Input{"z"})
	if _, ok := err.(UnexpectedToken); !ok {
		t.Fatalf("Opt error = %v, want UnexpectedToken", err)
	}
}

func TestOptsEmptyList(t *testing.T) {
	_, _, err := Opts[struct{}](nil)(Input{"a"})
	if _, ok := err.(EmptyOpts); !ok {
		t.Fatalf("Opts(nil) error = %v, want EmptyOpts", err)
	}
}

func TestOptsPicksShortestResidual(t *testing.T) {
	one := func(in Input) (Input, int, error) { return in[1:], 1, nil }
	two := func(in Input) (Input, int, error) { return in[2:], 2, nil }
	three := func(in Input) (Input, int, error) { return in[3:], 3, nil }

	rest, v, err := Opts([]Parser[int]{one, two, three})(Input{"a", "b", "c", "d"})
	if err != nil {
		t.Fatalf("Opts error = %v", err)
	}
	if v != 3 || len(rest) != 1 {
		t.Fatalf("Opts result = %d, rest = %v, want longest match 3", v, rest)
	}
}

func TestOptsAllFailReturnsMinError(t *testing.T) {
	_, _, err := Opts([]Parser[struct{}]{Tok("a"), Tok("b")})(Input{})
	if _, ok := err.(UnexpectedEndOfInput); !ok {
		t.Fatalf("Opts error = %v, want UnexpectedEndOfInput", err)
	}
}

func TestPlus(t *testing.T) {
	rest, vs, err := Plus(Tok("x"))(Input{"x", "x", "x", "y"})
	if err != nil {
		t.Fatalf("Plus error = %v", err)
	}
	if len(vs) != 3 || len(rest) != 1 || rest[0] != "y" {
		t.Fatalf("Plus matched %d times, rest = %v", len(vs), rest)
	}
}

func TestPlusRequiresOne(t *testing.T) {
	_, _, err := Plus(Tok("x"))(Input{"y"})
	if _, ok := err.(UnexpectedToken); !ok {
		t.Fatalf("Plus error = %v, want UnexpectedToken", err)
	}
}

func TestBetweenEmptySeparators(t *testing.T) {
	rest, out, err := Between[struct{}, struct{}](Tok("x"), nil)(Input{"a", "b"})
	if err != nil {
		t.Fatalf("Between error = %v", err)
	}
	if out != nil {
		t.Fatalf("Between with no separators = %v, want nil", out)
	}
	if len(rest) != 2 {
		t.Fatalf("Between with no separators consumed input: %v", rest)
	}
}

func TestBetweenMatchesInterior(t *testing.T) {
	inner := Tok("x")
	seps := []Parser[struct{}]{Tok("("), Tok(","), Tok(")")}
	rest, out, err := Between(inner, seps)(Input{"(", "x", ",", "x", ")", "tail"})
	if err != nil {
		t.Fatalf("Between error = %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("Between interior count = %d, want 2", len(out))
	}
	if len(rest) != 1 || rest[0] != "tail" {
		t.Fatalf("Between residual = %v, want [tail]", rest)
	}
}

func TestCompareErrorsOrdering(t *testing.T) {
	tok := UnexpectedToken{Found: "x"}
	eof := UnexpectedEndOfInput{}
	unparsed := UnparsedInput{Residual: []string{"x"}}
	empty := EmptyOpts{}

	if CompareErrors(tok, eof) >= 0 {
		t.Fatal("UnexpectedToken should sort before UnexpectedEndOfInput")
	}
	if CompareErrors(eof, unparsed) >= 0 {
		t.Fatal("UnexpectedEndOfInput should sort before UnparsedInput")
	}
	if CompareErrors(unparsed, empty) >= 0 {
		t.Fatal("UnparsedInput should sort before EmptyOpts")
	}
	if CompareErrors(UnexpectedToken{Found: "a"}, UnexpectedToken{Found: "b"}) >= 0 {
		t.Fatal("UnexpectedToken ties should break lexicographically on the token")
	}
}
