// File: types.go
// Role: Enums (Mode, Backend, Shape), Options, Timings, sentinel errors.

package synthesis

import (
	"errors"
	"time"

	"github.com/pertcj/nba-expression-synthesis/omega"
)

// Sentinel errors for the synthesis pipeline.
var (
	// ErrGraphNil is returned when a nil *tgraph.Graph is passed to a path
	// query or to Lasso.
	ErrGraphNil = errors.New("synthesis: graph is nil")

	// ErrUnknownBackend indicates Options.Backend selects no known
	// path-expression algorithm.
	ErrUnknownBackend = errors.New("synthesis: unknown backend")

	// ErrUnknownShape indicates Options.Shape selects no known automaton
	// shape.
	ErrUnknownShape = errors.New("synthesis: unknown automaton shape")

	// ErrSourceNil is returned when Solve is given a nil automaton source.
	ErrSourceNil = errors.New("synthesis: automaton source is nil")
)

// Mode constrains the first edge of the paths a query describes.
type Mode uint8

const (
	// ModeAny places no acceptance constraint.
	ModeAny Mode = iota

	// ModeAccepting keeps only paths whose first edge is accepting.
	ModeAccepting

	// ModeNonAccepting keeps only paths whose first edge is non-accepting.
	ModeNonAccepting
)

// String returns the mode name for logs and test output.
func (m Mode) String() string {
	switch m {
	case ModeAny:
		return "any"
	case ModeAccepting:
		return "accepting"
	case ModeNonAccepting:
		return "non-accepting"
	default:
		return "unknown"
	}
}

// Backend selects the path-expression algorithm.
type Backend uint8

const (
	// BMC is state elimination (the project name is historical; it is
	// unrelated to bounded model checking).
	BMC Backend = iota

	// MNY is the McNaughton–Yamada closed form.
	MNY
)

// String returns the backend name used in method tables and CSV headers.
func (b Backend) String() string {
	switch b {
	case BMC:
		return "bmc"
	case MNY:
		return "mny"
	default:
		return "unknown"
	}
}

// Shape selects which automaton shape the translator is asked for.
type Shape uint8

const (
	// ShapeAuto builds both the state- and transition-based automata and
	// picks per the selection rule in Solve.
	ShapeAuto Shape = iota

	// ShapeState uses the state-based automaton.
	ShapeState

	// ShapeTransition uses the transition-based automaton.
	ShapeTransition

	// ShapeTransitionToState uses the degeneralized transition-to-state
	// automaton.
	ShapeTransitionToState
)

// String returns the shape name used in method tables and CSV headers.
func (s Shape) String() string {
	switch s {
	case ShapeAuto:
		return "auto"
	case ShapeState:
		return "state"
	case ShapeTransition:
		return "transition"
	case ShapeTransitionToState:
		return "transition_to_state"
	default:
		return "unknown"
	}
}

// Simplifier is the post-processing contract: a pure function that must
// preserve the language of its input and be idempotent. The pipeline
// treats it as a black box.
type Simplifier func(omega.OmegaRegex) omega.OmegaRegex

// Options configures one Solve invocation.
type Options struct {
	// Backend selects the path-expression algorithm. Default BMC.
	Backend Backend

	// Shape selects the automaton shape. Default ShapeAuto.
	Shape Shape

	// Simplify enables the post-processing stage.
	Simplify bool

	// Simplifier overrides the rewrite engine used when Simplify is set.
	// Nil means the module's own simplify.Omega.
	Simplifier Simplifier

	// AutBudget, RegexBudget and SimplifyBudget bound the three pipeline
	// stages independently. A non-positive budget disables the deadline
	// for that stage.
	AutBudget      time.Duration
	RegexBudget    time.Duration
	SimplifyBudget time.Duration
}

// DefaultOptions returns BMC over the automatically selected shape, no
// simplification, and a 30s budget per stage.
func DefaultOptions() Options {
	return Options{
		Backend:        BMC,
		Shape:          ShapeAuto,
		Simplify:       false,
		Simplifier:     nil,
		AutBudget:      30 * time.Second,
		RegexBudget:    30 * time.Second,
		SimplifyBudget: 30 * time.Second,
	}
}

// Unreached marks a stage that was never entered in a Timings triple.
const Unreached time.Duration = -1

// Timings is the per-stage elapsed-time triple reported by Solve. A stage
// that timed out records its full budget; a stage never entered records
// Unreached.
type Timings struct {
	Aut      time.Duration
	Regex    time.Duration
	Simplify time.Duration
}
