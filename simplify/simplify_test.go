package simplify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pertcj/nba-expression-synthesis/omega"
	"github.com/pertcj/nba-expression-synthesis/simplify"
)

func sym(s string) omega.Regex { return omega.Symbol{Name: s} }

// TestFinite_Identities checks the unit and annihilator laws.
func TestFinite_Identities(t *testing.T) {
	a := sym("a")

	assert.Equal(t, omega.Regex(omega.Empty{}),
		simplify.Finite(omega.Concat{Left: omega.Empty{}, Right: a}), "∅·a = ∅")
	assert.Equal(t, a,
		simplify.Finite(omega.Concat{Left: omega.Epsilon{}, Right: a}), "ε·a = a")
	assert.Equal(t, a,
		simplify.Finite(omega.Concat{Left: a, Right: omega.Epsilon{}}), "a·ε = a")
	assert.Equal(t, a,
		simplify.Finite(omega.Union{Left: omega.Empty{}, Right: a}), "∅|a = a")
	assert.Equal(t, a,
		simplify.Finite(omega.Union{Left: a, Right: a}), "a|a = a")
	assert.Equal(t, omega.Regex(omega.Epsilon{}),
		simplify.Finite(omega.Star{Inner: omega.Empty{}}), "∅* = ε")
	assert.Equal(t, omega.Regex(omega.Star{Inner: a}),
		simplify.Finite(omega.Star{Inner: omega.Star{Inner: a}}), "(a*)* = a*")
}

// TestFinite_NestedRewrites checks that rules compose bottom-up: inner
// rewrites expose outer redexes.
func TestFinite_NestedRewrites(t *testing.T) {
	a := sym("a")

	// (ε·a)|a → a|a → a
	e := omega.Union{Left: omega.Concat{Left: omega.Epsilon{}, Right: a}, Right: a}
	assert.Equal(t, a, simplify.Finite(e))

	// (∅·a)·b → ∅·b → ∅ inside a star → ε
	e2 := omega.Star{Inner: omega.Concat{Left: omega.Concat{Left: omega.Empty{}, Right: a}, Right: sym("b")}}
	assert.Equal(t, omega.Regex(omega.Epsilon{}), simplify.Finite(e2))
}

// TestFinite_Untouched leaves irreducible expressions alone.
func TestFinite_Untouched(t *testing.T) {
	e := omega.Concat{Left: sym("a"), Right: omega.Star{Inner: sym("b")}}
	assert.Equal(t, omega.Regex(e), simplify.Finite(e))
	assert.Nil(t, simplify.Finite(nil), "sentinel passes through")
}

// TestOmega_Identities checks the ω-level laws.
func TestOmega_Identities(t *testing.T) {
	a := sym("a")
	ra := omega.OmegaRegex(omega.Repeat{Inner: a})

	assert.Equal(t, omega.OmegaRegex(omega.OmegaEmpty{}),
		simplify.Omega(omega.Repeat{Inner: omega.Empty{}}), "∅^ω is empty")
	assert.Equal(t, omega.OmegaRegex(omega.OmegaEmpty{}),
		simplify.Omega(omega.Repeat{Inner: omega.Epsilon{}}), "ε^ω holds no infinite word")
	assert.Equal(t, ra,
		simplify.Omega(omega.Repeat{Inner: omega.Star{Inner: a}}), "(a*)^ω = a^ω")
	assert.Equal(t, ra,
		simplify.Omega(omega.ConcatOmega{Left: omega.Epsilon{}, Right: omega.Repeat{Inner: a}}), "ε·t = t")
	assert.Equal(t, omega.OmegaRegex(omega.OmegaEmpty{}),
		simplify.Omega(omega.ConcatOmega{Left: a, Right: omega.OmegaEmpty{}}), "a·0ω = 0ω")
	assert.Equal(t, ra,
		simplify.Omega(omega.UnionOmega{Left: omega.OmegaEmpty{}, Right: omega.Repeat{Inner: a}}), "0ω|t = t")
	assert.Equal(t, ra,
		simplify.Omega(omega.UnionOmega{Left: omega.Repeat{Inner: a}, Right: omega.Repeat{Inner: a}}), "t|t = t")
}

// TestOmega_CollapsesThroughLevels: a tail that rewrites to the empty
// ω-language absorbs its prefix, and the resulting branch drops from the
// union.
func TestOmega_CollapsesThroughLevels(t *testing.T) {
	dead := omega.ConcatOmega{Left: sym("a"), Right: omega.Repeat{Inner: omega.Empty{}}}
	live := omega.OmegaRegex(omega.ConcatOmega{Left: sym("b"), Right: omega.Repeat{Inner: sym("c")}})

	assert.Equal(t, live, simplify.Omega(omega.UnionOmega{Left: dead, Right: live}))
}

// TestIdempotence: simplify(simplify(x)) = simplify(x) on a shape mixing
// every rule.
func TestIdempotence(t *testing.T) {
	x := omega.UnionOmega{
		Left: omega.ConcatOmega{
			Left:  omega.Concat{Left: omega.Epsilon{}, Right: sym("a")},
			Right: omega.Repeat{Inner: omega.Star{Inner: omega.Star{Inner: sym("b")}}},
		},
		Right: omega.UnionOmega{
			Left:  omega.Repeat{Inner: omega.Union{Left: sym("c"), Right: sym("c")}},
			Right: omega.Repeat{Inner: omega.Epsilon{}},
		},
	}

	once := simplify.Omega(x)
	twice := simplify.Omega(once)
	assert.Equal(t, once, twice)
}

// TestOmega_DeepSpine simplifies an ω-expression with a spine far deeper
// than the call stack.
func TestOmega_DeepSpine(t *testing.T) {
	const depth = 100_000

	var x omega.OmegaRegex = omega.Repeat{Inner: sym("z")}
	for i := 0; i < depth; i++ {
		x = omega.ConcatOmega{Left: omega.Epsilon{}, Right: x}
	}

	assert.Equal(t, omega.OmegaRegex(omega.Repeat{Inner: sym("z")}), simplify.Omega(x),
		"the ε prefixes all collapse")
}

// TestFinite_DeepChain simplifies a deep finite chain iteratively.
func TestFinite_DeepChain(t *testing.T) {
	const depth = 100_000

	var e omega.Regex = sym("a")
	for i := 0; i < depth; i++ {
		e = omega.Concat{Left: omega.Epsilon{}, Right: e}
	}
	assert.Equal(t, omega.Regex(sym("a")), simplify.Finite(e))
}
