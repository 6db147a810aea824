// File: lasso.go
// Role: Lasso decomposition: assemble prefix·(nonacc*·acc)^ω per final
//       state and union the contributions.
// Determinism:
//   - Final states are visited in ascending order; contributions fold into
//     a right-leaning UnionOmega.
// Contract:
//   - The input graph is never mutated: Lasso works on a private combined
//     copy, and the BMC backend clones again per query.

package synthesis

import (
	"context"

	"github.com/pertcj/nba-expression-synthesis/omega"
	"github.com/pertcj/nba-expression-synthesis/tgraph"
)

// pathFunc is the backend contract shared by FindPath and
// McNaughtonYamada.
type pathFunc func(ctx context.Context, g *tgraph.Graph, start, end int, mode Mode) (omega.Regex, error)

// Lasso computes an ω-regex denoting the language of g.
//
// For every final state f in ascending order:
//   - P: prefix initial→f with no edge constraint (absent when the
//     initial state is f itself);
//   - A: cycle f→f whose first edge is accepting;
//   - N: cycle f→f whose first edge is non-accepting, queried only when f
//     is pseudo-accepting (it has both kinds of out-edges).
//
// A nil A drops f entirely. Otherwise the cycle is A, or N*·A when N
// exists, and f contributes Repeat(cycle), prefixed by P when P exists.
// No contribution at all yields OmegaEmpty.
func Lasso(ctx context.Context, g *tgraph.Graph, backend Backend) (omega.OmegaRegex, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	var path pathFunc
	switch backend {
	case BMC:
		path = FindPath
	case MNY:
		path = McNaughtonYamada
	default:
		return nil, ErrUnknownBackend
	}

	// Private working copy; duplicate edges must be coalesced before any
	// path query, and the caller's graph stays untouched.
	w := g.Clone()
	w.CombineDuplicateEdges()

	var (
		parts   []omega.OmegaRegex
		p, a, n omega.Regex
		err     error
	)
	for _, f := range w.Finals() {
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		p = nil
		if w.Initial() != f {
			if p, err = path(ctx, w, w.Initial(), f, ModeAny); err != nil {
				return nil, err
			}
		}
		if a, err = path(ctx, w, f, f, ModeAccepting); err != nil {
			return nil, err
		}
		n = nil
		if w.PseudoAccepting(f) {
			if n, err = path(ctx, w, f, f, ModeNonAccepting); err != nil {
				return nil, err
			}
		}

		if a == nil {
			continue
		}
		cycle := a
		if n != nil {
			cycle = omega.Concat{Left: omega.Star{Inner: n}, Right: a}
		}
		var contrib omega.OmegaRegex = omega.Repeat{Inner: cycle}
		if p != nil {
			contrib = omega.ConcatOmega{Left: p, Right: omega.Repeat{Inner: cycle}}
		}
		parts = append(parts, contrib)
	}

	if len(parts) == 0 {
		return omega.OmegaEmpty{}, nil
	}

	// Right-leaning union over ascending final states.
	out := parts[len(parts)-1]
	for i := len(parts) - 2; i >= 0; i-- {
		out = omega.UnionOmega{Left: parts[i], Right: out}
	}

	return out, nil
}
