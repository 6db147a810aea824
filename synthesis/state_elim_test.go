package synthesis_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pertcj/nba-expression-synthesis/omega"
	"github.com/pertcj/nba-expression-synthesis/synthesis"
	"github.com/pertcj/nba-expression-synthesis/tgraph"
)

func sym(s string) omega.Regex { return omega.Symbol{Name: s} }

// edge is a compact fixture row: src, dst, label, accepting.
type edge struct {
	src, dst  int
	label     string
	accepting bool
}

// buildGraph constructs a deterministic fixture graph.
func buildGraph(t *testing.T, states, initial int, edges []edge) *tgraph.Graph {
	t.Helper()
	g := tgraph.New(states, initial)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.src, e.dst, sym(e.label), e.accepting))
	}

	return g
}

// TestFindPath_DirectEdge: a single hop with no intermediate states.
func TestFindPath_DirectEdge(t *testing.T) {
	g := buildGraph(t, 2, 0, []edge{{0, 1, "a", false}, {1, 1, "b", true}})

	p, err := synthesis.FindPath(context.Background(), g, 0, 1, synthesis.ModeAny)
	require.NoError(t, err)
	assert.Equal(t, sym("a"), p)
}

// TestFindPath_NoPath returns the nil sentinel, not an error.
func TestFindPath_NoPath(t *testing.T) {
	g := buildGraph(t, 2, 0, []edge{{1, 1, "b", true}})

	p, err := synthesis.FindPath(context.Background(), g, 0, 1, synthesis.ModeAny)
	require.NoError(t, err)
	assert.Nil(t, p)
}

// TestFindPath_RipsIntermediate eliminates the middle state of a chain and
// concatenates the labels.
func TestFindPath_RipsIntermediate(t *testing.T) {
	g := buildGraph(t, 3, 0, []edge{{0, 1, "a", false}, {1, 2, "b", false}, {2, 0, "c", true}})

	p, err := synthesis.FindPath(context.Background(), g, 0, 2, synthesis.ModeAny)
	require.NoError(t, err)
	assert.Equal(t, omega.Concat{Left: sym("a"), Right: sym("b")}, p)
}

// TestFindPath_SelfLoopStar folds a self-loop on a ripped state into a
// star factor.
func TestFindPath_SelfLoopStar(t *testing.T) {
	g := buildGraph(t, 3, 0, []edge{
		{0, 1, "a", false}, {1, 1, "l", false}, {1, 2, "b", false},
	})

	p, err := synthesis.FindPath(context.Background(), g, 0, 2, synthesis.ModeAny)
	require.NoError(t, err)
	assert.Equal(t,
		omega.Concat{Left: sym("a"), Right: omega.Concat{Left: omega.Star{Inner: sym("l")}, Right: sym("b")}},
		p)
}

// TestFindPath_StartSelfLoopPrefix stars a surviving self-loop on the
// start state in front of the direct edge.
func TestFindPath_StartSelfLoopPrefix(t *testing.T) {
	g := buildGraph(t, 2, 0, []edge{{0, 0, "l", false}, {0, 1, "a", false}})

	p, err := synthesis.FindPath(context.Background(), g, 0, 1, synthesis.ModeAny)
	require.NoError(t, err)
	assert.Equal(t, omega.Concat{Left: omega.Star{Inner: sym("l")}, Right: sym("a")}, p)
}

// TestFindPath_CycleModes: the first-edge filter of the cycle queries on a
// pseudo-accepting state.
func TestFindPath_CycleModes(t *testing.T) {
	g := buildGraph(t, 2, 0, []edge{
		{0, 1, "a", false}, {1, 1, "b", true}, {1, 1, "c", false},
	})

	acc, err := synthesis.FindPath(context.Background(), g, 1, 1, synthesis.ModeAccepting)
	require.NoError(t, err)
	assert.Equal(t, sym("b"), acc, "accepting mode keeps only the accepting self-loop")

	nonacc, err := synthesis.FindPath(context.Background(), g, 1, 1, synthesis.ModeNonAccepting)
	require.NoError(t, err)
	assert.Equal(t, sym("c"), nonacc, "non-accepting mode keeps only the non-accepting self-loop")

	anyp, err := synthesis.FindPath(context.Background(), g, 1, 1, synthesis.ModeAny)
	require.NoError(t, err)
	assert.Equal(t, omega.Union{Left: sym("b"), Right: sym("c")}, anyp)
}

// TestFindPath_AcceptanceInheritedThroughRip: the accepting flag of a new
// ripped edge comes from the in-edge, so the accepting cycle through an
// eliminated initial state survives the accepting-only filter.
func TestFindPath_AcceptanceInheritedThroughRip(t *testing.T) {
	g := buildGraph(t, 3, 0, []edge{{0, 1, "a", false}, {1, 2, "b", false}, {2, 0, "c", true}})

	acc, err := synthesis.FindPath(context.Background(), g, 2, 2, synthesis.ModeAccepting)
	require.NoError(t, err)
	assert.Equal(t,
		omega.Concat{Left: omega.Concat{Left: sym("c"), Right: sym("a")}, Right: sym("b")},
		acc, "cycle c·a·b with accepting first edge")

	nonacc, err := synthesis.FindPath(context.Background(), g, 2, 2, synthesis.ModeNonAccepting)
	require.NoError(t, err)
	assert.Nil(t, nonacc, "no cycle starts with a non-accepting edge")
}

// TestFindPath_DoesNotMutateInput: the query works on a private copy.
func TestFindPath_DoesNotMutateInput(t *testing.T) {
	g := buildGraph(t, 3, 0, []edge{{0, 1, "a", false}, {1, 2, "b", false}, {2, 0, "c", true}})

	_, err := synthesis.FindPath(context.Background(), g, 0, 2, synthesis.ModeAny)
	require.NoError(t, err)

	assert.Equal(t, 3, g.NumStates())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, []int{2}, g.Finals())
}

// TestFindPath_Errors covers the sentinel paths.
func TestFindPath_Errors(t *testing.T) {
	_, err := synthesis.FindPath(context.Background(), nil, 0, 0, synthesis.ModeAny)
	assert.ErrorIs(t, err, synthesis.ErrGraphNil)

	g := buildGraph(t, 1, 0, nil)
	_, err = synthesis.FindPath(context.Background(), g, 0, 7, synthesis.ModeAny)
	assert.ErrorIs(t, err, tgraph.ErrStateNotFound)
}

// TestFindPath_Cancellation honors an already-cancelled context.
func TestFindPath_Cancellation(t *testing.T) {
	g := buildGraph(t, 3, 0, []edge{{0, 1, "a", false}, {1, 2, "b", false}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := synthesis.FindPath(ctx, g, 0, 2, synthesis.ModeAny)
	assert.ErrorIs(t, err, context.Canceled)
}
