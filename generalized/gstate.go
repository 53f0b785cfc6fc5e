// Package generalized builds the transition-based generalized Büchi
// automaton (TGBA) from a VWAA: spec.md §4.3 (C5), grounded on
// original_source/generalized.c (`mk_generalized`, `make_gtrans`,
// `find_gstate`, `is_final`, `simplify_gtrans`, `simplify_gstates`).
package generalized

import "github.com/esbmc/libltl2ba/bitset"

// GTrans is one TGBA transition: guarded by Pos/Neg over the predicate
// universe, targeting To, and annotated with Final — the set of
// VWAA-U-subformula indices whose obligation is not pending after this
// step (spec.md §4.3's acceptance set).
type GTrans struct {
	Pos, Neg *bitset.Set
	To       *GState
	Final    *bitset.Set
}

// GState is one TGBA state: NodesSet is the subset of VWAA states this
// product state represents. ID 0 is reserved for the (unique) empty state.
// Incoming counts inbound transitions while the automaton is live, and
// doubles as an SCC tag once scc.Tag runs.
type GState struct {
	ID       int
	NodesSet *bitset.Set
	Incoming int
	Trans    []GTrans
}

// TGBA is the built (and, once Simplify runs, reduced) automaton.
type TGBA struct {
	States []*GState
	Init   []*GState
	// K is the number of acceptance components: the count of VWAA-U-state
	// indices that ever appear in a Final set, i.e. len(finalIndex).
	K int

	finalIndex []int // VWAA state ids used as acceptance components, in order
}

// AcceptanceIndex returns the position of VWAA state id q among the
// acceptance components, or -1 if q is not one.
func (g *TGBA) AcceptanceIndex(q int) int {
	for i, id := range g.finalIndex {
		if id == q {
			return i
		}
	}
	return -1
}
