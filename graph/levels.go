package graph

import (
	"github.com/mixfixlang/mixfix/fixity"
	"github.com/mixfixlang/mixfix/operator"
)

// Levels is a total-order precedence graph: a flat list of levels from
// loosest (index 0) to tightest (last index), each carrying the operators
// declared at that level. Succ(p) returns only the single next level.
//
// This shortcut is correct ONLY when the precedence order is a chain (every
// pair of levels is comparable) — per spec.md §9's Open Question, a level
// that has more than one immediate successor needs Levels' general cousin,
// DAG, instead.
//
// Even on a chain, an argument position at level i is parsed at level i+1
// alone: an expression of a level two or more steps tighter fills it only
// if level i+1's own strategies produce it. With levels {postfix "⊢ :"},
// {infix "+"}, {atom}, a bare atom is not accepted as the judgment's left
// argument, while a DAG over the same three nodes with an edge from the
// judgment level to the atom level accepts it.
type Levels struct {
	levels [][]operator.Operator
}

// NewLevels builds a Levels graph from loosest to tightest. The handle type
// is int: level i is looser than level i+1.
func NewLevels(levels [][]operator.Operator) *Levels {
	cp := make([][]operator.Operator, len(levels))
	for i, ops := range levels {
		cp[i] = append([]operator.Operator(nil), ops...)
	}
	return &Levels{levels: cp}
}

func (g *Levels) Ops(prec int, fix fixity.Fixity) []operator.Operator {
	var out []operator.Operator
	for _, op := range g.levels[prec] {
		if op.Fixity.Equal(fix) {
			out = append(out, op)
		}
	}
	return out
}

func (g *Levels) Succ(prec int) []int {
	if prec+1 < len(g.levels) {
		return []int{prec + 1}
	}
	return nil
}

func (g *Levels) All() []int {
	out := make([]int, len(g.levels))
	for i := range g.levels {
		out[i] = i
	}
	return out
}
