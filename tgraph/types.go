// File: types.go
// Role: Edge and vertex value types, sentinel errors, the Graph container
//       and its constructor.
// Identity:
//   - Edge.Same compares (Src, Dst, Label) only; the Accepting flag rides
//     along for side-index bookkeeping but never participates in identity.

package tgraph

import (
	"errors"

	"github.com/pertcj/nba-expression-synthesis/omega"
)

// Sentinel errors for transition-graph operations.
var (
	// ErrStateNotFound indicates an operation referenced a state that is
	// not (or no longer) present in the graph.
	ErrStateNotFound = errors.New("tgraph: state not found")

	// ErrEdgeNotFound indicates RemoveEdge found no structurally equal edge.
	ErrEdgeNotFound = errors.New("tgraph: edge not found")

	// ErrNilLabel indicates AddEdge was called with a nil label. Labels are
	// expression values; the "no path" nil sentinel never enters a graph.
	ErrNilLabel = errors.New("tgraph: nil edge label")
)

// Edge is one labeled transition of the graph.
type Edge struct {
	// Src and Dst are the endpoint state numbers.
	Src, Dst int

	// Label is the expression carried by this transition. Labels are
	// immutable values and may be structurally shared between graphs.
	Label omega.Regex

	// Accepting marks membership in the single Büchi acceptance set.
	Accepting bool
}

// Same reports structural edge identity: endpoints and label. The
// accepting flag is excluded on purpose — removal must be able to locate
// an edge by (src, dst, label) while using the flag only to pick the right
// side index.
func (e Edge) Same(o Edge) bool {
	return e.Src == o.Src && e.Dst == o.Dst && e.Label == o.Label
}

// vertex holds the two parallel adjacency views of one state.
type vertex struct {
	number int
	out    []Edge
	in     []Edge
}

// Graph is the transition graph. The zero value is not usable; construct
// with New.
type Graph struct {
	numStates int
	initial   int
	finals    map[int]struct{}
	vertices  map[int]*vertex

	// Side indices over all edges, partitioned by the accepting flag.
	accTrans    []Edge
	nonaccTrans []Edge
}

// New returns a graph with states 0..numStates-1, no edges, and the given
// initial state.
func New(numStates, initial int) *Graph {
	g := &Graph{
		numStates: numStates,
		initial:   initial,
		finals:    make(map[int]struct{}),
		vertices:  make(map[int]*vertex, numStates),
	}
	for i := 0; i < numStates; i++ {
		g.vertices[i] = &vertex{number: i}
	}

	return g
}
