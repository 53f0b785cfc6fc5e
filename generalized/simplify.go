package generalized

import "github.com/esbmc/libltl2ba/bitset"

// Simplify reduces g in place: unreachable-state pruning, transition
// subsumption, and state-equivalence merging, iterated to a fixed point.
// Grounded on original_source/generalized.c's `simplify_gtrans` /
// `simplify_gstates` driver loop in `mk_generalized`.
//
// badSCC optionally names SCC ids (as produced by the scc package) whose
// membership loosens transition subsumption by letting acceptance marks be
// ignored; pass nil to skip that relaxation (exact comparison only).
// State-equivalence merging does not use badSCC: it always compares
// acceptance marks exactly.
func Simplify(g *TGBA, badSCC func(id int) bool) {
	prune(g)
	for {
		changed := false
		for _, s := range g.States {
			before := len(s.Trans)
			s.Trans = subsumeTrans(s, badSCC)
			if len(s.Trans) != before {
				changed = true
			}
		}
		if mergeEquivalentStates(g, badSCC) {
			changed = true
		}
		prune(g)
		if !changed {
			break
		}
	}
}

// prune drops states unreachable from Init via BFS over Trans.
func prune(g *TGBA) {
	seen := make(map[*GState]bool)
	var queue []*GState
	for _, s := range g.Init {
		if !seen[s] {
			seen[s] = true
			queue = append(queue, s)
		}
	}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, t := range s.Trans {
			if !seen[t.To] {
				seen[t.To] = true
				queue = append(queue, t.To)
			}
		}
	}
	var kept []*GState
	for _, s := range g.States {
		if seen[s] {
			kept = append(kept, s)
		}
	}
	g.States = kept
}

// subsumeTrans removes any transition t from s's list for which another
// transition t1 to the same target exists with a weaker-or-equal guard and
// at least as many acceptance marks (same_gtrans/simplify_gtrans).
func subsumeTrans(s *GState, badSCC func(int) bool) []GTrans {
	keep := make([]bool, len(s.Trans))
	for i := range keep {
		keep[i] = true
	}
	ignoreAccept := func(a, b *GState) bool {
		if badSCC == nil {
			return false
		}
		return badSCC(a.Incoming) || badSCC(b.Incoming) || a.Incoming != b.Incoming
	}
	for i, t := range s.Trans {
		if !keep[i] {
			continue
		}
		for j, t1 := range s.Trans {
			if i == j || !keep[j] || t1.To != t.To {
				continue
			}
			if !t1.Pos.Subset(t.Pos) || !t1.Neg.Subset(t.Neg) {
				continue
			}
			if t.Final.Subset(t1.Final) || ignoreAccept(s, t.To) {
				keep[i] = false
				break
			}
		}
	}
	var out []GTrans
	for i, k := range keep {
		if k {
			out = append(out, s.Trans[i])
		}
	}
	return out
}

// mergeEquivalentStates folds states with identical transition sets
// (all_gtrans_match) into one survivor, retargeting every transition that
// pointed at the discarded state. Returns whether any merge happened.
func mergeEquivalentStates(g *TGBA, badSCC func(int) bool) bool {
	changed := false
	for i := 0; i < len(g.States); i++ {
		a := g.States[i]
		if a == nil {
			continue
		}
		for j := i + 1; j < len(g.States); j++ {
			b := g.States[j]
			if b == nil {
				continue
			}
			if !sameGState(a, b) {
				continue
			}
			retarget(g, b, a)
			g.States[j] = nil
			changed = true
		}
	}
	var kept []*GState
	for _, s := range g.States {
		if s != nil {
			kept = append(kept, s)
		}
	}
	g.States = kept
	return changed
}

func sameGState(a, b *GState) bool {
	if len(a.Trans) != len(b.Trans) {
		return false
	}
	matched := make([]bool, len(b.Trans))
	for _, ta := range a.Trans {
		found := false
		for j, tb := range b.Trans {
			if matched[j] {
				continue
			}
			if sameGTrans(ta, tb) {
				matched[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func sameGTrans(a, b GTrans) bool {
	if a.To != b.To {
		return false
	}
	if !samePredSet(a.Pos, b.Pos) || !samePredSet(a.Neg, b.Neg) {
		return false
	}
	return samePredSet(a.Final, b.Final)
}

func samePredSet(a, b *bitset.Set) bool {
	return a.Equal(b)
}

// retarget rewrites every transition pointing at stale to instead point at
// survivor, across every state in g (including stale's own state, so any
// self-loop collapses too).
func retarget(g *TGBA, stale, survivor *GState) {
	for i, s := range g.Init {
		if s == stale {
			g.Init[i] = survivor
		}
	}
	for _, s := range g.States {
		if s == nil {
			continue
		}
		for i := range s.Trans {
			if s.Trans[i].To == stale {
				s.Trans[i].To = survivor
			}
		}
	}
}
