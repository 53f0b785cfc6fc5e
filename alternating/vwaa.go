// Package alternating builds the very-weak alternating automaton (VWAA) for
// a normalized LTL formula: spec.md §4.2 (C4), grounded on
// original_source/alternating.c (`build_alternating`, `boolean`,
// `merge_trans`, `simplify_atrans`, `simplify_astates`).
//
// One VWAA state is allocated per temporal subformula (X, U, or V at the
// node's own root) and per literal reached through the boolean fan-out (the
// initial transitions and X's argument); the rest of the propositional
// structure (AND/OR, T, F, and literals inside an AND, U or V body) is
// folded directly into the guard of whichever transition needs it, never
// given a state of its own. State 0 is the sentinel initial disjunction and
// carries no formula label, matching spec.md §3.
package alternating

import (
	"github.com/esbmc/libltl2ba/bitset"
	"github.com/esbmc/libltl2ba/ltlsyntax"
)

// Trans is one alternating transition: while reading a letter satisfying
// every literal in Pos and none in Neg, the automaton splits into the
// conjunction of states named by To (spec.md §3's ATrans).
type Trans struct {
	Pos, Neg *bitset.Set
	To       *bitset.Set
}

// State is one VWAA state. State 0 is the unlabeled initial sentinel;
// states 1..N-1 are indexed by the temporal subformula that produced them.
type State struct {
	ID    int
	Label *ltlsyntax.Node // nil for the sentinel state 0
	Trans []Trans         // outgoing disjunction, insertion order preserved
}

// VWAA is the built (and, once Simplify runs, reduced) automaton.
type VWAA struct {
	Preds  *ltlsyntax.PredicateTable
	States []*State // States[0] is the sentinel
	Init   []Trans  // state 0's outgoing disjunction
	Final  *bitset.Set
}

// NumStates returns the number of non-sentinel states (the "node_size" of
// spec.md §9). State ids run 1..NumStates(), so a bitset over VWAA states
// needs len(States) = NumStates()+1 bits.
func (v *VWAA) NumStates() int {
	return len(v.States) - 1
}
