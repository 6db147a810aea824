// Package simplify rewrites ω-regular expressions with the Kleene-algebra
// identity rules. It realizes the post-processing contract of the
// synthesis pipeline: a pure function that preserves the denoted language
// and is idempotent.
//
// Rules applied (bottom-up, to a local fixed point at every node):
//
//	∅·x = x·∅ = ∅        ε·x = x·ε = x
//	∅|x = x|∅ = x        x|x = x
//	∅* = ε* = ε          (x*)* = x*
//	∅^ω = ε^ω = 0ω       (x*)^ω = x^ω
//	∅·t = 0ω             ε·t = t          (t an ω-tail)
//	0ω|t = t|0ω = t      t|t = t
//
// Rewriting runs on explicit stacks; expression depth is unbounded by the
// call stack. Simplification is the only place expressions are reshaped —
// the synthesis core never canonicalizes.
package simplify
