// Package buchi degeneralizes a TGBA into a state-based-acceptance Büchi
// automaton (BA): spec.md §4.4 (C7), grounded on original_source/buchi.c
// (`mk_buchi`, `find_bstate`, `next_final`, `make_btrans`).
package buchi

import (
	"github.com/esbmc/libltl2ba/bitset"
	"github.com/esbmc/libltl2ba/generalized"
)

// BTrans is one BA transition: guarded like a TGBA transition, but carrying
// no acceptance marks — acceptance is state-based after degeneralization
// (spec.md §3's BTrans).
type BTrans struct {
	Pos, Neg *bitset.Set
	To       *BState
}

// BState is one BA state: the underlying TGBA state paired with an
// acceptance-counter layer in [0, K] (K = BA.Accept), where layer K is the
// unique accepting layer (spec.md §4.4's "(g, i)" pair). The synthetic
// initial state (ID == -1) has no underlying GState.
type BState struct {
	ID       int
	Final    int
	GState   *generalized.GState // nil for the synthetic initial state
	Trans    []BTrans
	Incoming int // SCC tag once Simplify's SCC pass runs; -1 marks a trivial (non-self-looping singleton) SCC
}

// IsAccepting reports whether s is on the designated accepting layer, or is
// the degenerate "every obligation already discharged" state (GState.ID==0,
// the empty-nodesSet state original_source/buchi.c always treats as
// accepting regardless of its Final layer).
func (s *BState) IsAccepting(accept int) bool {
	if s.Final == accept {
		return true
	}
	return s.GState != nil && s.GState.ID == 0
}

// BA is the built (and, once Simplify runs, reduced) Büchi automaton.
type BA struct {
	Init   *BState // the synthetic id=-1 state
	States []*BState
	Accept int // K: the designated accepting layer: spec.md's "accept = k" (§3/§4.4 data model)
}

// nextFinal implements spec.md §4.4's "next_final": the least j' >= j such
// that component j' is absent from F, capped at accept (original_source/
// buchi.c's recursive `next_final`, reproduced iteratively).
func nextFinal(f *bitset.Set, j, accept int) int {
	for j != accept && f.Has(j) {
		j++
	}
	return j
}

// Build runs the degeneralization of spec.md §4.4 over g, producing the
// (unsimplified) BA. Call Simplify afterward.
func Build(g *generalized.TGBA) *BA {
	accept := g.K
	ba := &BA{Accept: accept}
	ba.Init = &BState{ID: -1, Final: 0}

	type key struct {
		g *generalized.GState
		f int
	}
	byKey := make(map[key]*BState)
	byKey[key{nil, 0}] = ba.Init
	var pending []*BState
	intern := func(g *generalized.GState, f int) *BState {
		k := key{g, f}
		if s, ok := byKey[k]; ok {
			return s
		}
		s := &BState{ID: g.ID, Final: f, GState: g}
		byKey[k] = s
		pending = append(pending, s)
		return s
	}

	for _, g0 := range g.Init {
		for _, t := range g0.Trans {
			fin := nextFinal(t.Final, 0, accept)
			to := intern(t.To, fin)
			ba.Init.Trans = append(ba.Init.Trans, BTrans{Pos: t.Pos, Neg: t.Neg, To: to})
		}
	}

	ba.States = append(ba.States, ba.Init)
	for len(pending) > 0 {
		s := pending[0]
		pending = pending[1:]
		i0 := s.Final
		if s.Final == accept {
			i0 = 0
		}
		for _, t := range s.GState.Trans {
			fin := nextFinal(t.Final, i0, accept)
			to := intern(t.To, fin)
			s.Trans = append(s.Trans, BTrans{Pos: t.Pos, Neg: t.Neg, To: to})
		}
		ba.States = append(ba.States, s)
	}
	return ba
}
