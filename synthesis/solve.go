// File: solve.go
// Role: Unified pipeline entry point: automaton shape selection, lasso
//       synthesis, optional simplification - each stage under its own
//       deadline, elapsed times reported as a triple.
// Policy:
//   - A stage that misses its deadline records the full budget in the
//     triple; stages never entered record Unreached. The abandoned stage
//     goroutine owns nothing shared, so discarding its late result is
//     safe.

package synthesis

import (
	"context"
	"time"

	"github.com/pertcj/nba-expression-synthesis/automaton"
	"github.com/pertcj/nba-expression-synthesis/omega"
	"github.com/pertcj/nba-expression-synthesis/simplify"
	"github.com/pertcj/nba-expression-synthesis/tgraph"
)

// Solve runs the full pipeline on the automaton delivered by src:
//
//  1. aut stage - fetch the requested shape(s) and build the transition
//     graph;
//  2. regex stage - Lasso with the selected backend;
//  3. simplify stage - only when Options.Simplify is set.
//
// The result is the ω-regex (nil when a stage failed or timed out), the
// per-stage Timings triple, and the first error encountered. A deadline
// miss surfaces as context.DeadlineExceeded with the stage budget recorded
// in the triple.
func Solve(ctx context.Context, src automaton.Source, opts Options) (omega.OmegaRegex, Timings, error) {
	times := Timings{Aut: Unreached, Regex: Unreached, Simplify: Unreached}
	if src == nil {
		return nil, times, ErrSourceNil
	}
	if opts.Backend != BMC && opts.Backend != MNY {
		return nil, times, ErrUnknownBackend
	}

	// Stage 1: automaton shape → transition graph.
	g, elapsed, err := runGraphStage(ctx, opts.AutBudget, func(sctx context.Context) (*tgraph.Graph, error) {
		return buildGraph(sctx, src, opts.Shape)
	})
	times.Aut = elapsed
	if err != nil {
		return nil, times, err
	}

	// Stage 2: lasso synthesis.
	expr, elapsed, err := runExprStage(ctx, opts.RegexBudget, func(sctx context.Context) (omega.OmegaRegex, error) {
		return Lasso(sctx, g, opts.Backend)
	})
	times.Regex = elapsed
	if err != nil {
		return nil, times, err
	}

	// Stage 3: optional simplification.
	if opts.Simplify {
		simp := opts.Simplifier
		if simp == nil {
			simp = simplify.Omega
		}
		expr, elapsed, err = runExprStage(ctx, opts.SimplifyBudget, func(context.Context) (omega.OmegaRegex, error) {
			return simp(expr), nil
		})
		times.Simplify = elapsed
		if err != nil {
			return nil, times, err
		}
	}

	return expr, times, nil
}

// buildGraph fetches the automaton in the requested shape and converts it.
// ShapeAuto builds both candidates and selects: strictly more final
// states wins; on a tie fewer total states wins; on a second tie the
// state shape wins. If one candidate fails to build, the other is used.
func buildGraph(ctx context.Context, src automaton.Source, shape Shape) (*tgraph.Graph, error) {
	switch shape {
	case ShapeState:
		return fetchShape(ctx, src.StateBased)
	case ShapeTransition:
		return fetchShape(ctx, src.TransitionBased)
	case ShapeTransitionToState:
		return fetchShape(ctx, src.TransitionToState)
	case ShapeAuto:
		gs, errState := fetchShape(ctx, src.StateBased)
		gt, errTrans := fetchShape(ctx, src.TransitionBased)
		switch {
		case errState != nil && errTrans != nil:
			return nil, errState
		case errState != nil:
			return gt, nil
		case errTrans != nil:
			return gs, nil
		}
		fs, ft := len(gs.Finals()), len(gt.Finals())
		if ft > fs || (ft == fs && gt.NumStates() < gs.NumStates()) {
			return gt, nil
		}

		return gs, nil
	default:
		return nil, ErrUnknownShape
	}
}

// fetchShape pulls one shape from the translator and imports it, honoring
// cancellation between the two steps.
func fetchShape(ctx context.Context, fetch func() (*automaton.NBA, error)) (*tgraph.Graph, error) {
	a, err := fetch()
	if err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	return automaton.ToGraph(a)
}

// graphResult carries one aut-stage outcome across the goroutine border.
type graphResult struct {
	g   *tgraph.Graph
	err error
}

// runGraphStage executes fn under an optional deadline. On a miss it
// reports the full budget as the elapsed time and the context error; the
// late result is discarded.
func runGraphStage(
	ctx context.Context,
	budget time.Duration,
	fn func(context.Context) (*tgraph.Graph, error),
) (*tgraph.Graph, time.Duration, error) {
	sctx, cancel := stageContext(ctx, budget)
	defer cancel()

	start := time.Now()
	ch := make(chan graphResult, 1)
	go func() {
		g, err := fn(sctx)
		ch <- graphResult{g: g, err: err}
	}()

	select {
	case res := <-ch:
		return res.g, time.Since(start), res.err
	case <-sctx.Done():
		return nil, budget, sctx.Err()
	}
}

// exprResult carries one expression-stage outcome across the goroutine
// border.
type exprResult struct {
	x   omega.OmegaRegex
	err error
}

// runExprStage is runGraphStage for the regex and simplify stages.
func runExprStage(
	ctx context.Context,
	budget time.Duration,
	fn func(context.Context) (omega.OmegaRegex, error),
) (omega.OmegaRegex, time.Duration, error) {
	sctx, cancel := stageContext(ctx, budget)
	defer cancel()

	start := time.Now()
	ch := make(chan exprResult, 1)
	go func() {
		x, err := fn(sctx)
		ch <- exprResult{x: x, err: err}
	}()

	select {
	case res := <-ch:
		return res.x, time.Since(start), res.err
	case <-sctx.Done():
		return nil, budget, sctx.Err()
	}
}

// stageContext derives the per-stage context; a non-positive budget means
// no stage deadline beyond the caller's own.
func stageContext(ctx context.Context, budget time.Duration) (context.Context, context.CancelFunc) {
	if budget <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, budget)
}
