// Package synthesis converts transition graphs of Büchi automata into
// ω-regular expressions.
//
// Two path-expression backends are provided:
//
//   - FindPath — state elimination ("BMC"): rips every non-endpoint state
//     out of a private copy of the graph, folding path languages into edge
//     labels, then assembles r1*·r2 from the surviving self-loops and
//     direct edges.
//   - McNaughtonYamada — the closed-form r(i,j,k) recursion, memoized per
//     call.
//
// Both answer the same three queries per final state f: the prefix
// initial→f, the accepting cycle f→f (first edge accepting) and the
// non-accepting cycle f→f. Lasso assembles the queries into
// prefix·(nonacc*·acc)^ω per final state and unions the contributions.
// Solve wraps the whole pipeline — automaton shape selection, synthesis,
// optional simplification — with one timeout budget per stage and reports
// the elapsed-time triple.
//
// A nil omega.Regex return from a path query means "no such path"; it is a
// value, not an error, and propagates through lasso assembly. The empty
// ω-language is returned as omega.OmegaEmpty.
//
// Cancellation: FindPath checks its context between rips, Lasso between
// final states, McNaughtonYamada between recursion steps. A caller that
// abandons a stage past its deadline loses nothing: every invocation owns
// its graph copy and memo tables exclusively, so no shared state can be
// left inconsistent.
//
// Errors:
//
//	ErrGraphNil       - a nil graph was passed.
//	ErrUnknownBackend - Options.Backend outside the enum.
//	ErrUnknownShape   - Options.Shape outside the enum.
//	ErrSourceNil      - Solve was given a nil automaton source.
package synthesis
