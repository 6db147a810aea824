// Package tgraph implements the transition graph: a labeled directed
// multigraph over integer states with an accepting annotation on every
// edge. It is the working representation of a Büchi automaton during
// ω-regex synthesis.
//
// Model:
//   - States are small integers; the graph records the initial state and
//     the set of final states.
//   - Every edge carries an omega.Regex label and an accepting flag. Two
//     edges are the same edge when (src, dst, label) match — the accepting
//     flag is deliberately not part of edge identity.
//   - Each vertex keeps parallel out/in adjacency slices; the graph keeps
//     two side indices (accepting and non-accepting transitions). Every
//     exported mutation maintains: out and in lists mirror each other,
//     every edge sits in exactly one side index, and a state is final iff
//     it has at least one accepting out-edge.
//
// Lifecycle:
//   - A graph is built once by the automaton importer and then deep-copied
//     (Clone) before any destructive algorithm touches it. There is no
//     internal locking: a synthesis invocation owns its copy exclusively.
//
// Errors:
//
//	ErrStateNotFound - an operation referenced a state not in the graph.
//	ErrEdgeNotFound  - RemoveEdge did not find a structurally equal edge.
//	ErrNilLabel      - AddEdge was given a nil label.
package tgraph
