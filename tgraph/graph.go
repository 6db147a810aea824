// File: graph.go
// Role: Edge lifecycle (AddEdge/RemoveEdge/RemoveVertex), queries, Clone.
// Determinism:
//   - States() and Finals() return ascending state numbers.
//   - Adjacency slices preserve insertion order; queries return copies in
//     that order.
// Invariant (after every exported mutation):
//   - Every out-list edge has a structurally equal twin in the destination
//     in-list and sits in exactly one of accTrans/nonaccTrans.
//   - A state is in finals iff it has ≥1 accepting out-edge.

package tgraph

import (
	"sort"

	"github.com/pertcj/nba-expression-synthesis/omega"
)

// NumStates returns the number of states currently in the graph. It shrinks
// as state elimination removes vertices.
func (g *Graph) NumStates() int { return g.numStates }

// Initial returns the initial state number.
func (g *Graph) Initial() int { return g.initial }

// HasState reports whether state v is present.
func (g *Graph) HasState(v int) bool {
	_, ok := g.vertices[v]

	return ok
}

// States returns all state numbers in ascending order.
func (g *Graph) States() []int {
	out := make([]int, 0, len(g.vertices))
	for v := range g.vertices {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}

// Finals returns the final states in ascending order.
func (g *Graph) Finals() []int {
	out := make([]int, 0, len(g.finals))
	for v := range g.finals {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}

// IsFinal reports whether v is a final state.
func (g *Graph) IsFinal(v int) bool {
	_, ok := g.finals[v]

	return ok
}

// AddEdge inserts the edge src→dst with the given label and acceptance.
// The edge is appended to both adjacency lists and to the matching side
// index; an accepting edge makes src final.
func (g *Graph) AddEdge(src, dst int, label omega.Regex, accepting bool) error {
	if label == nil {
		return ErrNilLabel
	}
	vs, ok := g.vertices[src]
	if !ok {
		return ErrStateNotFound
	}
	vd, ok := g.vertices[dst]
	if !ok {
		return ErrStateNotFound
	}

	e := Edge{Src: src, Dst: dst, Label: label, Accepting: accepting}
	vs.out = append(vs.out, e)
	vd.in = append(vd.in, e)
	if accepting {
		g.accTrans = append(g.accTrans, e)
		g.finals[src] = struct{}{}
	} else {
		g.nonaccTrans = append(g.nonaccTrans, e)
	}

	return nil
}

// RemoveEdge deletes the edge structurally equal to (src, dst, label) from
// both adjacency lists and from the side index selected by accepting. If
// src thereby loses its last accepting out-edge, it leaves the finals set.
func (g *Graph) RemoveEdge(src, dst int, label omega.Regex, accepting bool) error {
	vs, ok := g.vertices[src]
	if !ok {
		return ErrStateNotFound
	}
	vd, ok := g.vertices[dst]
	if !ok {
		return ErrStateNotFound
	}

	probe := Edge{Src: src, Dst: dst, Label: label}
	out, removed := removeFirstSame(vs.out, probe)
	if !removed {
		return ErrEdgeNotFound
	}
	vs.out = out
	if vd.in, removed = removeFirstSame(vd.in, probe); !removed {
		return ErrEdgeNotFound
	}
	if accepting {
		g.accTrans, _ = removeFirstSame(g.accTrans, probe)
	} else {
		g.nonaccTrans, _ = removeFirstSame(g.nonaccTrans, probe)
	}

	// Finals follow accepting out-edges.
	if g.IsFinal(src) && len(g.AcceptingFrom(src)) == 0 {
		delete(g.finals, src)
	}

	return nil
}

// RemoveVertex removes v and every edge incident to it.
func (g *Graph) RemoveVertex(v int) error {
	vx, ok := g.vertices[v]
	if !ok {
		return ErrStateNotFound
	}

	// Snapshot incident edges first: removal mutates the live slices.
	incident := make([]Edge, 0, len(vx.out)+len(vx.in))
	incident = append(incident, vx.out...)
	var e Edge
	for _, e = range vx.in {
		if e.Src == v && e.Dst == v {
			continue // self-loop already captured from the out list
		}
		incident = append(incident, e)
	}
	for _, e = range incident {
		if err := g.RemoveEdge(e.Src, e.Dst, e.Label, e.Accepting); err != nil {
			return err
		}
	}

	delete(g.vertices, v)
	delete(g.finals, v)
	g.numStates--

	return nil
}

// OutEdges returns a copy of v's outgoing edges in insertion order.
func (g *Graph) OutEdges(v int) []Edge {
	vx, ok := g.vertices[v]
	if !ok {
		return nil
	}

	return append([]Edge(nil), vx.out...)
}

// InEdges returns a copy of v's incoming edges in insertion order.
func (g *Graph) InEdges(v int) []Edge {
	vx, ok := g.vertices[v]
	if !ok {
		return nil
	}

	return append([]Edge(nil), vx.in...)
}

// AcceptingFrom returns v's accepting out-edges.
func (g *Graph) AcceptingFrom(v int) []Edge { return g.filterOut(v, true) }

// NonAcceptingFrom returns v's non-accepting out-edges.
func (g *Graph) NonAcceptingFrom(v int) []Edge { return g.filterOut(v, false) }

// AcceptingTo returns v's accepting in-edges.
func (g *Graph) AcceptingTo(v int) []Edge { return g.filterIn(v, true) }

// NonAcceptingTo returns v's non-accepting in-edges.
func (g *Graph) NonAcceptingTo(v int) []Edge { return g.filterIn(v, false) }

// SelfLoops returns the edges v→v in insertion order.
func (g *Graph) SelfLoops(v int) []Edge {
	vx, ok := g.vertices[v]
	if !ok {
		return nil
	}
	var out []Edge
	for _, e := range vx.out {
		if e.Dst == v {
			out = append(out, e)
		}
	}

	return out
}

// PseudoAccepting reports whether v has both accepting and non-accepting
// out-edges. The ω-cycle of such a final state must be assembled as
// Star(non-accepting)·accepting.
func (g *Graph) PseudoAccepting(v int) bool {
	return len(g.AcceptingFrom(v)) > 0 && len(g.NonAcceptingFrom(v)) > 0
}

// AcceptingTransitions returns a copy of the accepting side index.
func (g *Graph) AcceptingTransitions() []Edge {
	return append([]Edge(nil), g.accTrans...)
}

// NonAcceptingTransitions returns a copy of the non-accepting side index.
func (g *Graph) NonAcceptingTransitions() []Edge {
	return append([]Edge(nil), g.nonaccTrans...)
}

// EdgeCount returns the total number of edges.
func (g *Graph) EdgeCount() int {
	return len(g.accTrans) + len(g.nonaccTrans)
}

// Clone returns a deep copy of the graph structure. Labels are immutable
// expression values and are shared between the copies.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		numStates:   g.numStates,
		initial:     g.initial,
		finals:      make(map[int]struct{}, len(g.finals)),
		vertices:    make(map[int]*vertex, len(g.vertices)),
		accTrans:    append([]Edge(nil), g.accTrans...),
		nonaccTrans: append([]Edge(nil), g.nonaccTrans...),
	}
	for v := range g.finals {
		c.finals[v] = struct{}{}
	}
	for n, vx := range g.vertices {
		c.vertices[n] = &vertex{
			number: n,
			out:    append([]Edge(nil), vx.out...),
			in:     append([]Edge(nil), vx.in...),
		}
	}

	return c
}

// filterOut collects v's out-edges with the given accepting flag.
func (g *Graph) filterOut(v int, accepting bool) []Edge {
	vx, ok := g.vertices[v]
	if !ok {
		return nil
	}
	var out []Edge
	for _, e := range vx.out {
		if e.Accepting == accepting {
			out = append(out, e)
		}
	}

	return out
}

// filterIn collects v's in-edges with the given accepting flag.
func (g *Graph) filterIn(v int, accepting bool) []Edge {
	vx, ok := g.vertices[v]
	if !ok {
		return nil
	}
	var out []Edge
	for _, e := range vx.in {
		if e.Accepting == accepting {
			out = append(out, e)
		}
	}

	return out
}

// removeFirstSame removes the first edge structurally equal to probe,
// preserving the order of the remainder.
func removeFirstSame(edges []Edge, probe Edge) ([]Edge, bool) {
	for i, e := range edges {
		if e.Same(probe) {
			return append(edges[:i:i], edges[i+1:]...), true
		}
	}

	return edges, false
}
