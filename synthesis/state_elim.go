// File: state_elim.go
// Role: State elimination ("BMC"): FindPath and the rip primitive.
// Determinism:
//   - The rip candidate is always the smallest-numbered non-endpoint
//     state; duplicate edges are coalesced after every rip.
// Contract:
//   - FindPath never mutates its argument; all surgery happens on a
//     private Clone.
//   - A nil result with a nil error means "no path" (a value, not a
//     failure).

package synthesis

import (
	"context"

	"github.com/pertcj/nba-expression-synthesis/omega"
	"github.com/pertcj/nba-expression-synthesis/tgraph"
)

// FindPath computes a finite expression for the paths start→end in g,
// constrained by mode, via state elimination.
//
// Steps:
//  1. Clone g.
//  2. While a non-endpoint state remains, rip the smallest-numbered one
//     and coalesce duplicate edges.
//  3. Assemble r1*·r2 from the surviving self-loops on start (r1) and the
//     direct edges start→end (r2), filtered by mode. Edges leaving end
//     are deliberately ignored: the lasso driver only ever asks for
//     prefixes and cycles, where anything past end is already abstracted.
//
// The mode filters the final assembly only; the rip phase preserves
// acceptance by inheriting each new edge's flag from its in-edge.
//
// Complexity: O(V) rips, each O(in·out) label products plus coalescing.
func FindPath(ctx context.Context, g *tgraph.Graph, start, end int, mode Mode) (omega.Regex, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasState(start) || !g.HasState(end) {
		return nil, tgraph.ErrStateNotFound
	}

	w := g.Clone()
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, ok := ripCandidate(w, start, end)
		if !ok {
			break
		}
		if err := rip(w, v); err != nil {
			return nil, err
		}
		w.CombineDuplicateEdges()
	}

	return assemble(w, start, end, mode), nil
}

// ripCandidate returns the smallest-numbered state other than the two
// endpoints, or false when none remains.
func ripCandidate(g *tgraph.Graph, start, end int) (int, bool) {
	for _, v := range g.States() {
		if v != start && v != end {
			return v, true
		}
	}

	return 0, false
}

// rip removes v and replaces every in/out pair through it by one edge
// carrying lu·(r_rip)*·lw, where r_rip is the union of v's self-loop
// labels (the star factor is omitted when v has no self-loop). The new
// edge inherits the in-edge's accepting flag.
func rip(g *tgraph.Graph, v int) error {
	var rrip omega.Regex
	for _, loop := range g.SelfLoops(v) {
		rrip = unionInto(rrip, loop.Label)
	}

	var added []tgraph.Edge
	ins := g.InEdges(v)
	outs := g.OutEdges(v)
	for _, ein := range ins {
		if ein.Src == v {
			continue
		}
		for _, eout := range outs {
			if eout.Dst == v {
				continue
			}
			var label omega.Regex
			if rrip == nil {
				label = omega.Concat{Left: ein.Label, Right: eout.Label}
			} else {
				label = omega.Concat{
					Left:  ein.Label,
					Right: omega.Concat{Left: omega.Star{Inner: rrip}, Right: eout.Label},
				}
			}
			added = append(added, tgraph.Edge{Src: ein.Src, Dst: eout.Dst, Label: label, Accepting: ein.Accepting})
		}
	}

	if err := g.RemoveVertex(v); err != nil {
		return err
	}
	for _, e := range added {
		if err := g.AddEdge(e.Src, e.Dst, e.Label, e.Accepting); err != nil {
			return err
		}
	}

	return nil
}

// assemble builds the final expression from the ripped graph. r1 is the
// union of mode-admissible self-loops on start (skipped entirely when
// start == end); r2 is the union of mode-admissible direct edges
// start→end. Nil r2 means no path; start == end answers r2 alone.
func assemble(g *tgraph.Graph, start, end int, mode Mode) omega.Regex {
	var r1, r2 omega.Regex
	for _, e := range g.OutEdges(start) {
		if e.Dst == start && start != end && admissible(e, mode) {
			r1 = unionInto(r1, e.Label)
		}
		if e.Dst == end && admissible(e, mode) {
			r2 = unionInto(r2, e.Label)
		}
	}

	switch {
	case r2 == nil:
		return nil
	case start == end:
		return r2
	case r1 == nil:
		return r2
	default:
		return omega.Concat{Left: omega.Star{Inner: r1}, Right: r2}
	}
}

// admissible reports whether e passes the mode's first-edge filter.
func admissible(e tgraph.Edge, mode Mode) bool {
	switch mode {
	case ModeAccepting:
		return e.Accepting
	case ModeNonAccepting:
		return !e.Accepting
	default:
		return true
	}
}

// unionInto folds label into acc, treating a nil acc as the identity.
func unionInto(acc, label omega.Regex) omega.Regex {
	if acc == nil {
		return label
	}

	return omega.Union{Left: acc, Right: label}
}
