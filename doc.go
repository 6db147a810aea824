// Package nbasynth converts nondeterministic Büchi automata into
// equivalent ω-regular expressions.
//
// 🚀 What is nba-expression-synthesis?
//
//	A library (plus a small driver CLI) that takes the automaton of an LTL
//	specification and produces a finite algebraic expression of its
//	ω-language:
//
//	  • Lasso decomposition: every accepted word as prefix·(cycle)^ω
//	  • Two backends: state elimination (BMC) and McNaughton–Yamada (MNY)
//	  • Structural metrics: timeline length, size, star height
//	  • Optional rewrite-rule simplification of the result
//
// Under the hood, everything is organized under five subpackages:
//
//	omega/     — the Regex / OmegaRegex algebra, measures and printing
//	tgraph/    — the accepting-edge-annotated transition multigraph
//	automaton/ — the NBA input contract and the HOA reader
//	synthesis/ — state elimination, McNaughton–Yamada, lasso assembly,
//	             and the staged Solve pipeline
//	simplify/  — the language-preserving, idempotent rewrite rules
//
// Quick ASCII example:
//
//	    ┌─a──►(1)──b─┐        accepting self-loop b on state 1:
//	   (0)      ▲    │        L = a·b^ω, printed ((a)$((b)))
//	            └────┘
//
// The LTL→NBA translation itself is external; see the automaton package
// for the exact input contract.
//
//	go get github.com/pertcj/nba-expression-synthesis
package nbasynth
