package generalized

import (
	"fmt"
	"strings"

	"github.com/esbmc/libltl2ba/alternating"
	"github.com/esbmc/libltl2ba/bitset"
)

// combo is one candidate product transition while it is still being
// enumerated: the merged guard/target over the chosen VWAA states' own
// transitions. expand builds these iteratively, one column (VWAA state) at
// a time, extending every partial combo with each of that column's
// transitions, instead of original_source's explicit doubly-linked "AProd"
// column chain with incremental rollover — that structure exists in the C
// purely to avoid recomputing the whole merged prefix on every advance; the
// column-by-column product yields the same set of combined transitions
// without needing the bookkeeping.
type combo struct {
	pos, neg, to *bitset.Set
}

func (c combo) merge(t alternating.Trans) (combo, bool) {
	pos := c.pos.Union(t.Pos)
	neg := c.neg.Union(t.Neg)
	if pos.Intersects(neg) {
		return combo{}, false
	}
	return combo{pos: pos, neg: neg, to: c.to.Union(t.To)}, true
}

// Build runs the cross-product construction of spec.md §4.3 over v,
// producing the (unsimplified) TGBA. Call Simplify afterward. Equivalent to
// BuildWithOptions(v, false) — the fj-to-fj subsumed-discharge check (flag
// (c) of is_final, spec.md §4.3) runs by default.
func Build(v *alternating.VWAA) *TGBA {
	return BuildWithOptions(v, false)
}

// BuildWithOptions is Build with the fj-to-fj "second round" optimization
// (spec.md §4.3's flag (c), -a in spec.md §6) controllable: when
// disableFJToFJ is true, computeFinal never consults a U-state's own
// alternative transitions to mark an obligation discharged through a
// subsumed choice.
func BuildWithOptions(v *alternating.VWAA, disableFJToFJ bool) *TGBA {
	n := len(v.States) // VWAA state ids run 1..NumStates(), so bitsets over them need NumStates()+1 bits
	finalIdx := v.Final.List()

	g := &TGBA{finalIndex: finalIdx, K: len(finalIdx)}
	byKey := make(map[string]*GState)
	var pending []*GState

	internState := func(nodesSet *bitset.Set) *GState {
		key := setKey(nodesSet)
		if s, ok := byKey[key]; ok {
			return s
		}
		s := &GState{NodesSet: nodesSet.Clone()}
		if nodesSet.Empty() {
			s.ID = 0
		} else {
			s.ID = len(byKey) + 1
		}
		byKey[key] = s
		pending = append(pending, s)
		return s
	}

	var initTo []*bitset.Set
	for _, t := range v.Init {
		initTo = append(initTo, t.To)
	}
	for _, to := range initTo {
		s := internState(to)
		s.Incoming++
		g.Init = append(g.Init, s)
	}

	predUniverse := v.Preds.Count()

	for len(pending) > 0 {
		s := pending[0]
		pending = pending[1:]
		if s.Incoming == 0 {
			continue
		}
		expand(v, s, n, predUniverse, disableFJToFJ, internState)
	}

	for _, s := range byKey {
		g.States = append(g.States, s)
	}
	return g
}

// expand fills in s.Trans by cross-producting the outgoing transitions of
// every VWAA state named in s.NodesSet (make_gtrans in the C).
func expand(v *alternating.VWAA, s *GState, numStates, predUniverse int, disableFJToFJ bool, intern func(*bitset.Set) *GState) {
	ids := s.NodesSet.List()
	// A state with an empty nodesSet (the "all obligations discharged"
	// state, id 0) has no VWAA states to cross-product over: the product
	// of zero factors is the identity transition, a self-loop under the
	// universal guard — matching spec.md edge case "true" (one state,
	// self-loop under guard 1, accepting).
	combos := []combo{{pos: bitset.New(predUniverse), neg: bitset.New(predUniverse), to: bitset.New(numStates)}}
	for _, id := range ids {
		choices := v.States[id].Trans
		var next []combo
		for _, c := range combos {
			for _, t := range choices {
				if m, ok := c.merge(t); ok {
					next = append(next, m)
				}
			}
		}
		combos = next
		if len(combos) == 0 {
			return
		}
	}

	for _, c := range combos {
		final := computeFinal(v, s.NodesSet, c, disableFJToFJ)
		addTrans(s, c, final, intern)
	}
}

// computeFinal implements is_final (spec.md §4.3, original_source/
// generalized.c): index i (a VWAA-U-state id) is marked present in the
// acceptance set when the obligation is absent, already discharged, or
// (unless disableFJToFJ, -a in spec.md §6) discharge was possible via a
// subsumed choice of q_i's own transition (guard no stronger than c's,
// targets within c's minus q_i) — the "fj-to-fj" second-round
// optimization spec.md §4.3 names.
func computeFinal(v *alternating.VWAA, nodesSet *bitset.Set, c combo, disableFJToFJ bool) *bitset.Set {
	finalIDs := v.Final.List()
	fin := bitset.New(len(finalIDs))
	for idx, qi := range finalIDs {
		if !nodesSet.Has(qi) || !c.to.Has(qi) {
			fin.Add(idx)
			continue
		}
		if disableFJToFJ {
			continue
		}
		toMinusQi := c.to.Clone()
		toMinusQi.Remove(qi)
		for _, t := range v.States[qi].Trans {
			if t.To.Subset(toMinusQi) && t.Pos.Subset(c.pos) && t.Neg.Subset(c.neg) {
				fin.Add(idx)
				break
			}
		}
	}
	return fin
}

// addTrans appends the combined transition to s, first intern-ing its
// target state.
func addTrans(s *GState, c combo, final *bitset.Set, intern func(*bitset.Set) *GState) {
	to := intern(c.to)
	to.Incoming++
	s.Trans = append(s.Trans, GTrans{Pos: c.pos, Neg: c.neg, To: to, Final: final})
}

func setKey(s *bitset.Set) string {
	var b strings.Builder
	for _, n := range s.List() {
		fmt.Fprintf(&b, "%d,", n)
	}
	return b.String()
}
