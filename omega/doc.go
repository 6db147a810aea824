// Package omega defines the ω-regular expression algebra: the finite Regex
// sum type (Empty, Epsilon, Symbol, Concat, Union, Star), its ω-extension
// OmegaRegex (OmegaEmpty, Repeat, ConcatOmega, UnionOmega), the structural
// measures (timeline length, size, star height), and the fully parenthesized
// printing surface.
//
// Key properties:
//   - Variants are immutable, comparable value types: Go == on two Regex
//     (or OmegaRegex) values is deep structural equality, and a nil
//     interface is the "no path" sentinel used by the synthesis packages.
//   - Every tree walk in this package (measures and printing) runs on an
//     explicit stack. Synthesized expressions routinely exceed depth 10⁴,
//     so call-stack recursion over an expression is incorrect here.
//   - Concat and Union are two-arity and never canonicalized; the simplify
//     package is the only place expressions are reshaped.
//
// Measures:
//
//   - Length — "timeline length": symbols count 1, Concat sums, Union takes
//     the max of its branches, Star and Repeat are transparent.
//   - Size — like Length, but each Star and Repeat occurrence adds 1.
//   - StarHeight — maximum Kleene-star nesting depth; Repeat does not count.
//
// Printing: every compound form is parenthesized, with no precedence
// shortcuts: (s), (ab), (a|b), (a)*, $(a) for a^ω, ε and 0 for the empty
// word and empty language.
package omega
