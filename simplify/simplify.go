// File: simplify.go
// Role: Bottom-up, explicit-stack rewriting of Regex and OmegaRegex.
// Contract:
//   - Language-preserving and idempotent: every emitted node is built by a
//     reducer that cannot itself fire again on its own output.

package simplify

import "github.com/pertcj/nba-expression-synthesis/omega"

// Finite returns the simplified form of e. A nil input stays nil (the
// "no path" sentinel passes through untouched).
func Finite(e omega.Regex) omega.Regex {
	if e == nil {
		return nil
	}

	type frame struct {
		node     omega.Regex
		expanded bool
	}
	var (
		work = []frame{{node: e}}
		out  []omega.Regex
		f    frame
		l, r omega.Regex
	)
	for len(work) > 0 {
		f = work[len(work)-1]
		work = work[:len(work)-1]

		switch v := f.node.(type) {
		case omega.Empty, omega.Epsilon, omega.Symbol:
			out = append(out, f.node)
		case omega.Concat:
			if !f.expanded {
				work = append(work, frame{node: f.node, expanded: true},
					frame{node: v.Right}, frame{node: v.Left})
				continue
			}
			r, l = out[len(out)-1], out[len(out)-2]
			out = out[:len(out)-1]
			out[len(out)-1] = reduceConcat(l, r)
		case omega.Union:
			if !f.expanded {
				work = append(work, frame{node: f.node, expanded: true},
					frame{node: v.Right}, frame{node: v.Left})
				continue
			}
			r, l = out[len(out)-1], out[len(out)-2]
			out = out[:len(out)-1]
			out[len(out)-1] = reduceUnion(l, r)
		case omega.Star:
			if !f.expanded {
				work = append(work, frame{node: f.node, expanded: true},
					frame{node: v.Inner})
				continue
			}
			out[len(out)-1] = reduceStar(out[len(out)-1])
		default:
			panic(omega.ErrUnknownExpr)
		}
	}

	return out[0]
}

// Omega returns the simplified form of x. Embedded finite subexpressions
// are simplified by Finite; the ω-spine itself is rewritten iteratively.
// A nil input stays nil.
func Omega(x omega.OmegaRegex) omega.OmegaRegex {
	if x == nil {
		return nil
	}

	type frame struct {
		node     omega.OmegaRegex
		expanded bool
	}
	var (
		work = []frame{{node: x}}
		out  []omega.OmegaRegex
		f    frame
		l, r omega.OmegaRegex
	)
	for len(work) > 0 {
		f = work[len(work)-1]
		work = work[:len(work)-1]

		switch v := f.node.(type) {
		case omega.OmegaEmpty:
			out = append(out, f.node)
		case omega.Repeat:
			out = append(out, reduceRepeat(Finite(v.Inner)))
		case omega.ConcatOmega:
			if !f.expanded {
				work = append(work, frame{node: f.node, expanded: true},
					frame{node: v.Right})
				continue
			}
			out[len(out)-1] = reduceConcatOmega(Finite(v.Left), out[len(out)-1])
		case omega.UnionOmega:
			if !f.expanded {
				work = append(work, frame{node: f.node, expanded: true},
					frame{node: v.Right}, frame{node: v.Left})
				continue
			}
			r, l = out[len(out)-1], out[len(out)-2]
			out = out[:len(out)-1]
			out[len(out)-1] = reduceUnionOmega(l, r)
		default:
			panic(omega.ErrUnknownExpr)
		}
	}

	return out[0]
}

// reduceConcat applies the unit and annihilator laws of concatenation.
func reduceConcat(l, r omega.Regex) omega.Regex {
	if l == omega.Regex(omega.Empty{}) || r == omega.Regex(omega.Empty{}) {
		return omega.Empty{}
	}
	if l == omega.Regex(omega.Epsilon{}) {
		return r
	}
	if r == omega.Regex(omega.Epsilon{}) {
		return l
	}

	return omega.Concat{Left: l, Right: r}
}

// reduceUnion applies the unit and idempotence laws of choice.
func reduceUnion(l, r omega.Regex) omega.Regex {
	if l == omega.Regex(omega.Empty{}) {
		return r
	}
	if r == omega.Regex(omega.Empty{}) {
		return l
	}
	if l == r {
		return l
	}

	return omega.Union{Left: l, Right: r}
}

// reduceStar collapses trivial and nested stars.
func reduceStar(inner omega.Regex) omega.Regex {
	switch inner.(type) {
	case omega.Empty, omega.Epsilon:
		return omega.Epsilon{}
	case omega.Star:
		return inner
	default:
		return omega.Star{Inner: inner}
	}
}

// reduceRepeat simplifies ω-iteration: a body without a nonempty word has
// no infinite iteration, and (x*)^ω denotes the same language as x^ω.
func reduceRepeat(inner omega.Regex) omega.OmegaRegex {
	switch v := inner.(type) {
	case omega.Empty, omega.Epsilon:
		return omega.OmegaEmpty{}
	case omega.Star:
		return omega.Repeat{Inner: v.Inner}
	default:
		return omega.Repeat{Inner: inner}
	}
}

// reduceConcatOmega applies the unit and annihilator laws of the
// prefix·tail form.
func reduceConcatOmega(l omega.Regex, r omega.OmegaRegex) omega.OmegaRegex {
	if r == omega.OmegaRegex(omega.OmegaEmpty{}) || l == omega.Regex(omega.Empty{}) {
		return omega.OmegaEmpty{}
	}
	if l == omega.Regex(omega.Epsilon{}) {
		return r
	}

	return omega.ConcatOmega{Left: l, Right: r}
}

// reduceUnionOmega applies the unit and idempotence laws of ω-choice.
func reduceUnionOmega(l, r omega.OmegaRegex) omega.OmegaRegex {
	if l == omega.OmegaRegex(omega.OmegaEmpty{}) {
		return r
	}
	if r == omega.OmegaRegex(omega.OmegaEmpty{}) {
		return l
	}
	if l == r {
		return l
	}

	return omega.UnionOmega{Left: l, Right: r}
}
