// Package automaton defines the input contract with the external LTL→NBA
// translator and converts its automata into transition graphs.
//
// The translator (spot's ltl2tgba in the reference toolchain) is not part
// of this module. What this package owns:
//
//   - NBA: the plain value an automaton arrives as — states 0..n-1, an
//     initial state, labeled transitions with a single-set Büchi
//     acceptance mark. Labels are opaque printable strings (Boolean
//     formulas over atomic propositions).
//   - ToGraph: NBA → tgraph.Graph, the entry point of the synthesis
//     pipeline. Automata with anything other than exactly one acceptance
//     set are rejected with ErrUnsupportedAutomaton.
//   - Source: the three shape knobs the translator exposes — state-based
//     acceptance, transition-based acceptance, and the degeneralized
//     transition-to-state form. Degeneralization itself happens in the
//     translator; a Source only hands over its output.
//   - ParseHOA / FileSource: a reader for the HOA v1 subset the translator
//     emits, so drivers can consume pre-translated automata from disk.
//
// Errors:
//
//	ErrUnsupportedAutomaton - the automaton does not use exactly one
//	                          acceptance set.
//	ErrMalformedHOA         - the HOA input violates the supported subset.
package automaton
