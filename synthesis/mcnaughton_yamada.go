// File: mcnaughton_yamada.go
// Role: The McNaughton–Yamada closed form r(i,j,k), memoized per call.
// Determinism:
//   - Direct-edge unions fold in adjacency insertion order; the k-closure
//     recursion shape is fixed, so repeated runs return identical trees.
// Contract:
//   - Read-only on g; g must still carry its full 0..NumStates()-1 state
//     range (MNY is never run on a ripped graph).
//   - The memo table lives and dies with one call. No process-wide cache:
//     the mode changes the base case, and concurrent invocations must not
//     share state.

package synthesis

import (
	"context"

	"github.com/pertcj/nba-expression-synthesis/omega"
	"github.com/pertcj/nba-expression-synthesis/tgraph"
)

// mnyKey indexes the per-call memo table.
type mnyKey struct {
	i, j, k int
}

// McNaughtonYamada computes an expression for the paths start→end in g
// using the r(i,j,k) recursion: paths from i to j whose intermediate
// states all lie in {0,…,k}. The mode filters only the k = -1 base case,
// and only for direct edges leaving the top-level start state — that is
// exactly the "first edge" constraint of the cycle queries.
//
// Dropped sub-terms follow the sentinel algebra: nil·x = nil,
// nil ∪ x = x, and a nil loop body contributes no Star factor.
//
// Complexity: O(n³) memo entries, O(1) work per entry.
func McNaughtonYamada(ctx context.Context, g *tgraph.Graph, start, end int, mode Mode) (omega.Regex, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasState(start) || !g.HasState(end) {
		return nil, tgraph.ErrStateNotFound
	}

	// Direct-transition table: trans[i][j] in adjacency order.
	trans := make(map[int]map[int][]tgraph.Edge, g.NumStates())
	for _, v := range g.States() {
		row := make(map[int][]tgraph.Edge)
		for _, e := range g.OutEdges(v) {
			row[e.Dst] = append(row[e.Dst], e)
		}
		trans[v] = row
	}

	memo := make(map[mnyKey]omega.Regex)

	var r func(i, j, k int) (omega.Regex, error)
	r = func(i, j, k int) (omega.Regex, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		key := mnyKey{i: i, j: j, k: k}
		if v, ok := memo[key]; ok {
			return v, nil
		}

		res, err := rStep(r, trans, start, mode, i, j, k)
		if err != nil {
			return nil, err
		}
		memo[key] = res

		return res, nil
	}

	return r(start, end, g.NumStates()-1)
}

// rStep evaluates one cell of the recursion.
func rStep(
	r func(i, j, k int) (omega.Regex, error),
	trans map[int]map[int][]tgraph.Edge,
	start int,
	mode Mode,
	i, j, k int,
) (omega.Regex, error) {
	// Base: direct edges i→j, mode-filtered when leaving the start state.
	if k == -1 {
		var acc omega.Regex
		for _, e := range trans[i][j] {
			if i == start && !admissible(e, mode) {
				continue
			}
			acc = unionInto(acc, e.Label)
		}

		return acc, nil
	}

	// k equal to an endpoint simplifies the step.
	if k == j {
		return r(i, j, k-1)
	}
	if k == i {
		rep, err := r(i, i, k-1)
		if err != nil {
			return nil, err
		}
		through, err := r(i, j, k-1)
		if err != nil {
			return nil, err
		}
		if rep == nil {
			return through, nil
		}
		if through == nil {
			return nil, nil
		}

		return omega.Concat{Left: omega.Star{Inner: rep}, Right: through}, nil
	}

	// General step: r(i,j,k-1) ∪ r(i,k,k-1)·r(k,k,k-1)*·r(k,j,k-1).
	enter, err := r(i, k, k-1)
	if err != nil {
		return nil, err
	}
	rep, err := r(k, k, k-1)
	if err != nil {
		return nil, err
	}
	leave, err := r(k, j, k-1)
	if err != nil {
		return nil, err
	}
	direct, err := r(i, j, k-1)
	if err != nil {
		return nil, err
	}

	if enter == nil || leave == nil {
		return direct, nil
	}
	var via omega.Regex
	if rep == nil {
		via = omega.Concat{Left: enter, Right: leave}
	} else {
		via = omega.Concat{Left: enter, Right: omega.Concat{Left: omega.Star{Inner: rep}, Right: leave}}
	}
	if direct == nil {
		return via, nil
	}

	return omega.Union{Left: direct, Right: via}, nil
}
