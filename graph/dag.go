package graph

import (
	"github.com/mixfixlang/mixfix/fixity"
	"github.com/mixfixlang/mixfix/operator"
)

// NodeID is the opaque handle type for a DAG node.
type NodeID int

// DAG is a general precedence graph: an adjacency-list DAG where an edge
// from -> to means "to is strictly tighter than from". Succ performs a
// breadth-first search and returns the full set of nodes reachable from a
// node, which is what spec.md §3/§9 mandate as the canonical succ policy
// (grounded on the BFS-based succ in
// _examples/original_source/src/graph.rs's DiGraph instance, there built on
// petgraph::visit::Bfs; reimplemented here over a plain adjacency list since
// no graph-traversal library appears anywhere in the retrieved pack).
//
// The caller is responsible for keeping the graph acyclic; AddEdge does not
// check for cycles (per spec.md §9, a cycle diverges the parser and is the
// caller's obligation to avoid).
type DAG struct {
	ops   map[NodeID][]operator.Operator
	edges map[NodeID][]NodeID
	order []NodeID
}

// NewDAG returns an empty DAG.
func NewDAG() *DAG {
	return &DAG{
		ops:   make(map[NodeID][]operator.Operator),
		edges: make(map[NodeID][]NodeID),
	}
}

// AddNode creates a new node carrying the given operators and returns its
// handle.
func (g *DAG) AddNode(ops []operator.Operator) NodeID {
	id := NodeID(len(g.order))
	g.order = append(g.order, id)
	g.ops[id] = append([]operator.Operator(nil), ops...)
	return id
}

// AddEdge records that `to` is strictly tighter than `from`.
func (g *DAG) AddEdge(from, to NodeID) {
	g.edges[from] = append(g.edges[from], to)
}

func (g *DAG) Ops(prec NodeID, fix fixity.Fixity) []operator.Operator {
	var out []operator.Operator
	for _, op := range g.ops[prec] {
		if op.Fixity.Equal(fix) {
			out = append(out, op)
		}
	}
	return out
}

// Succ returns every node transitively reachable from prec via a
// breadth-first traversal, excluding prec itself.
func (g *DAG) Succ(prec NodeID) []NodeID {
	seen := map[NodeID]bool{prec: true}
	queue := append([]NodeID(nil), g.edges[prec]...)
	var out []NodeID
	for i := 0; i < len(queue); i++ {
		n := queue[i]
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
		queue = append(queue, g.edges[n]...)
	}
	return out
}

func (g *DAG) All() []NodeID {
	return append([]NodeID(nil), g.order...)
}
