// File: combine.go
// Role: CombineDuplicateEdges - fixed-point coalescing of parallel edges.
// Determinism:
//   - Vertices are scanned in ascending order; duplicate groups are folded
//     in out-list order, so the combined Union is left-leaning over the
//     original insertion order.

package tgraph

import "github.com/pertcj/nba-expression-synthesis/omega"

// CombineDuplicateEdges merges every set of edges sharing
// (src, dst, accepting) into a single edge whose label is the Union of the
// group's labels, until no such set remains. Synthesis requires this fixed
// point before any path query: duplicate parallel edges would otherwise
// multiply through rip steps.
//
// The fixed point is unique up to associativity of the folded Union.
// Complexity: O(V + E) per pass; duplicates only exist within one
// (src, dst, accepting) bucket, so a single pass per vertex suffices.
func (g *Graph) CombineDuplicateEdges() {
	for _, v := range g.States() {
		g.combineAt(v)
	}
}

// dupKey buckets parallel edges. The accepting flag stays part of the key:
// an accepting and a non-accepting edge between the same states never
// merge.
type dupKey struct {
	dst       int
	accepting bool
}

// combineAt repeatedly folds one duplicate bucket of v until none is left.
func (g *Graph) combineAt(v int) {
	for {
		var (
			seen  = make(map[dupKey]int)
			out   = g.OutEdges(v)
			group []Edge
			key   dupKey
			found bool
		)
		// Find the first bucket with more than one edge, in list order.
		for _, e := range out {
			k := dupKey{dst: e.Dst, accepting: e.Accepting}
			seen[k]++
			if seen[k] == 2 && !found {
				key, found = k, true
			}
		}
		if !found {
			return
		}
		for _, e := range out {
			if e.Dst == key.dst && e.Accepting == key.accepting {
				group = append(group, e)
			}
		}

		// Fold labels left-to-right, drop the originals, add the merged edge.
		label := group[0].Label
		for _, e := range group[1:] {
			label = omega.Union{Left: label, Right: e.Label}
		}
		for _, e := range group {
			// Removal cannot fail: the edges were just read from the graph.
			_ = g.RemoveEdge(e.Src, e.Dst, e.Label, e.Accepting)
		}
		_ = g.AddEdge(v, key.dst, label, key.accepting)
	}
}
