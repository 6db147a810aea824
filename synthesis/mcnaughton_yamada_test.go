package synthesis_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pertcj/nba-expression-synthesis/omega"
	"github.com/pertcj/nba-expression-synthesis/synthesis"
)

// TestMcNY_DirectEdge: the k = -1 base case alone.
func TestMcNY_DirectEdge(t *testing.T) {
	g := buildGraph(t, 2, 0, []edge{{0, 1, "a", false}, {1, 1, "b", true}})

	p, err := synthesis.McNaughtonYamada(context.Background(), g, 0, 1, synthesis.ModeAny)
	require.NoError(t, err)
	assert.Equal(t, sym("a"), p)
}

// TestMcNY_NoPath returns the nil sentinel.
func TestMcNY_NoPath(t *testing.T) {
	g := buildGraph(t, 2, 0, []edge{{1, 0, "a", false}})

	p, err := synthesis.McNaughtonYamada(context.Background(), g, 0, 1, synthesis.ModeAny)
	require.NoError(t, err)
	assert.Nil(t, p)
}

// TestMcNY_CycleThroughIntermediates matches the state-elimination result
// on the three-state accepting cycle.
func TestMcNY_CycleThroughIntermediates(t *testing.T) {
	g := buildGraph(t, 3, 0, []edge{{0, 1, "a", false}, {1, 2, "b", false}, {2, 0, "c", true}})

	got, err := synthesis.McNaughtonYamada(context.Background(), g, 2, 2, synthesis.ModeAccepting)
	require.NoError(t, err)
	assert.Equal(t,
		omega.Concat{Left: omega.Concat{Left: sym("c"), Right: sym("a")}, Right: sym("b")},
		got)
}

// TestMcNY_ModeFiltersOnlyStartEdges: the acceptance filter applies to
// direct edges leaving the top-level source, not to edges deeper in the
// path.
func TestMcNY_ModeFiltersOnlyStartEdges(t *testing.T) {
	g := buildGraph(t, 2, 0, []edge{
		{0, 1, "a", false}, {1, 1, "b", true}, {1, 1, "c", false},
	})

	acc, err := synthesis.McNaughtonYamada(context.Background(), g, 1, 1, synthesis.ModeAccepting)
	require.NoError(t, err)
	assert.Equal(t, sym("b"), acc)

	nonacc, err := synthesis.McNaughtonYamada(context.Background(), g, 1, 1, synthesis.ModeNonAccepting)
	require.NoError(t, err)
	assert.Equal(t, sym("c"), nonacc)

	// Prefix query from 0: the non-accepting edge a passes ModeAny.
	p, err := synthesis.McNaughtonYamada(context.Background(), g, 0, 1, synthesis.ModeAny)
	require.NoError(t, err)
	assert.Equal(t, sym("a"), p)
}

// TestMcNY_SelfLoopFold: k == i forms Star(r(i,i,k-1))·r(i,j,k-1).
func TestMcNY_SelfLoopFold(t *testing.T) {
	g := buildGraph(t, 2, 0, []edge{{0, 0, "l", false}, {0, 1, "a", false}})

	p, err := synthesis.McNaughtonYamada(context.Background(), g, 0, 1, synthesis.ModeAny)
	require.NoError(t, err)
	assert.Equal(t, omega.Concat{Left: omega.Star{Inner: sym("l")}, Right: sym("a")}, p)
}

// TestMcNY_Deterministic: repeated runs return structurally identical
// trees (fresh memo tables, fixed recursion order).
func TestMcNY_Deterministic(t *testing.T) {
	g := buildGraph(t, 3, 0, []edge{
		{0, 1, "a", false}, {1, 2, "b", false}, {2, 0, "c", true}, {1, 1, "l", false},
	})

	first, err := synthesis.McNaughtonYamada(context.Background(), g, 0, 2, synthesis.ModeAny)
	require.NoError(t, err)
	second, err := synthesis.McNaughtonYamada(context.Background(), g, 0, 2, synthesis.ModeAny)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestMcNY_Cancellation honors an already-cancelled context.
func TestMcNY_Cancellation(t *testing.T) {
	g := buildGraph(t, 2, 0, []edge{{0, 1, "a", false}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := synthesis.McNaughtonYamada(ctx, g, 0, 1, synthesis.ModeAny)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestMcNY_NilGraph returns the sentinel.
func TestMcNY_NilGraph(t *testing.T) {
	_, err := synthesis.McNaughtonYamada(context.Background(), nil, 0, 0, synthesis.ModeAny)
	assert.ErrorIs(t, err, synthesis.ErrGraphNil)
}
