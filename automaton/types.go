// File: types.go
// Role: The NBA input value, the Source shape interface, sentinel errors,
//       and the NBA → tgraph conversion.

package automaton

import (
	"errors"

	"github.com/pertcj/nba-expression-synthesis/omega"
	"github.com/pertcj/nba-expression-synthesis/tgraph"
)

// Sentinel errors for automaton import.
var (
	// ErrUnsupportedAutomaton indicates the automaton does not carry
	// exactly one acceptance set. Generalized acceptance must be
	// degeneralized by the translator before import.
	ErrUnsupportedAutomaton = errors.New("automaton: exactly one acceptance set required")

	// ErrMalformedHOA indicates input outside the supported HOA v1 subset.
	ErrMalformedHOA = errors.New("automaton: malformed HOA input")
)

// Transition is one labeled transition of an imported NBA.
type Transition struct {
	// Src and Dst are state numbers in 0..States-1.
	Src, Dst int

	// Label is a printable Boolean formula over atomic propositions, kept
	// opaque by the synthesis core.
	Label string

	// Accepting marks membership in the automaton's single acceptance set.
	Accepting bool
}

// NBA is a nondeterministic Büchi automaton as delivered by the external
// translator.
type NBA struct {
	// States is the number of states; states are numbered 0..States-1.
	States int

	// Initial is the start state.
	Initial int

	// AcceptanceSets is the number of acceptance sets the automaton was
	// built with. ToGraph requires exactly 1.
	AcceptanceSets int

	// Transitions lists every edge. Order is preserved into the graph.
	Transitions []Transition
}

// Source produces the alternative shapes of one automaton. Every call may
// invoke the external translator, so results are not cached here.
type Source interface {
	// StateBased returns the automaton with acceptance pushed to states
	// (every out-edge of an accepting state is accepting).
	StateBased() (*NBA, error)

	// TransitionBased returns the automaton with acceptance on edges.
	TransitionBased() (*NBA, error)

	// TransitionToState returns the transition-based automaton
	// degeneralized to a state-based one, state-name provenance preserved
	// by the translator.
	TransitionToState() (*NBA, error)
}

// ToGraph builds the transition graph of a. Every transition becomes an
// edge labeled with its formula as a single Symbol; the accepting flag is
// carried over. Fails with ErrUnsupportedAutomaton unless the automaton
// has exactly one acceptance set.
func ToGraph(a *NBA) (*tgraph.Graph, error) {
	if a.AcceptanceSets != 1 {
		return nil, ErrUnsupportedAutomaton
	}

	g := tgraph.New(a.States, a.Initial)
	for _, t := range a.Transitions {
		if err := g.AddEdge(t.Src, t.Dst, omega.Symbol{Name: t.Label}, t.Accepting); err != nil {
			return nil, err
		}
	}

	return g, nil
}
