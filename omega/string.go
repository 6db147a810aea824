// File: string.go
// Role: Fully parenthesized rendering of Regex and OmegaRegex.
// Contract:
//   - Every compound form prints with explicit parentheses, no precedence
//     shortcuts: (s), (ab), (a|b), (a)*, $(a), ε, 0.
//   - Rendering runs on an explicit work stack; expression depth is
//     unbounded by the call stack.

package omega

import "strings"

// epsilonGlyph is the dedicated rendering of the empty word.
const epsilonGlyph = "ε"

// emptyGlyph renders both the empty finite language and the empty
// ω-language.
const emptyGlyph = "0"

// printFrame is one unit of rendering work: either a literal chunk or a
// node (finite or ω) still to be expanded. Exactly one field is set.
type printFrame struct {
	lit string
	re  Regex
	om  OmegaRegex
}

// String renders r with full parentheses. A nil Regex renders as the empty
// language.
func String(r Regex) string {
	if r == nil {
		return emptyGlyph
	}

	return render(printFrame{re: r})
}

// StringOmega renders x with full parentheses. A nil OmegaRegex renders as
// the empty ω-language.
func StringOmega(x OmegaRegex) string {
	if x == nil {
		return emptyGlyph
	}

	return render(printFrame{om: x})
}

func (e Empty) String() string   { return String(e) }
func (e Epsilon) String() string { return String(e) }
func (e Symbol) String() string  { return String(e) }
func (e Concat) String() string  { return String(e) }
func (e Union) String() string   { return String(e) }
func (e Star) String() string    { return String(e) }

func (x OmegaEmpty) String() string  { return StringOmega(x) }
func (x Repeat) String() string      { return StringOmega(x) }
func (x ConcatOmega) String() string { return StringOmega(x) }
func (x UnionOmega) String() string  { return StringOmega(x) }

// render drains the work stack into a strings.Builder. Children are pushed
// in reverse so they pop in reading order.
func render(root printFrame) string {
	var (
		sb    strings.Builder
		stack = []printFrame{root}
		f     printFrame
	)
	for len(stack) > 0 {
		f = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch {
		case f.re != nil:
			stack = expandRegex(stack, f.re)
		case f.om != nil:
			stack = expandOmega(stack, f.om)
		default:
			sb.WriteString(f.lit)
		}
	}

	return sb.String()
}

// expandRegex pushes the rendering of one finite node. Push order is the
// reverse of output order.
func expandRegex(stack []printFrame, r Regex) []printFrame {
	switch v := r.(type) {
	case Empty:
		stack = append(stack, printFrame{lit: emptyGlyph})
	case Epsilon:
		stack = append(stack, printFrame{lit: epsilonGlyph})
	case Symbol:
		stack = append(stack, printFrame{lit: "(" + v.Name + ")"})
	case Concat:
		stack = append(stack,
			printFrame{lit: ")"},
			printFrame{re: v.Right},
			printFrame{re: v.Left},
			printFrame{lit: "("})
	case Union:
		stack = append(stack,
			printFrame{lit: ")"},
			printFrame{re: v.Right},
			printFrame{lit: "|"},
			printFrame{re: v.Left},
			printFrame{lit: "("})
	case Star:
		stack = append(stack,
			printFrame{lit: ")*"},
			printFrame{re: v.Inner},
			printFrame{lit: "("})
	default:
		panic(ErrUnknownExpr)
	}

	return stack
}

// expandOmega pushes the rendering of one ω node.
func expandOmega(stack []printFrame, x OmegaRegex) []printFrame {
	switch v := x.(type) {
	case OmegaEmpty:
		stack = append(stack, printFrame{lit: emptyGlyph})
	case Repeat:
		stack = append(stack,
			printFrame{lit: ")"},
			printFrame{re: v.Inner},
			printFrame{lit: "$("})
	case ConcatOmega:
		stack = append(stack,
			printFrame{lit: ")"},
			printFrame{om: v.Right},
			printFrame{re: v.Left},
			printFrame{lit: "("})
	case UnionOmega:
		stack = append(stack,
			printFrame{lit: ")"},
			printFrame{om: v.Right},
			printFrame{lit: "|"},
			printFrame{om: v.Left},
			printFrame{lit: "("})
	default:
		panic(ErrUnknownExpr)
	}

	return stack
}
