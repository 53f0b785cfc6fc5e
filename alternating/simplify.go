package alternating

import "github.com/esbmc/libltl2ba/bitset"

// Simplify reduces v in place to the automaton original_source/alternating.c
// produces after `simplify_atrans`/`simplify_astates`: unreachable states
// are dropped, then each state's transition list is pruned of any
// transition subsumed by another in the same list (spec.md §4.2).
func Simplify(v *VWAA) {
	reachable := accessible(v)
	prune(v, reachable)
	for _, st := range v.States {
		if st == nil {
			continue
		}
		st.Trans = subsume(st.Trans)
	}
	v.Init = subsume(v.Init)
}

// accessible runs a BFS from the initial transitions' targets over the
// state graph, returning the set of state ids reachable from the start.
func accessible(v *VWAA) *bitset.Set {
	n := len(v.States)
	seen := bitset.New(n)
	var queue []int
	enqueue := func(id int) {
		if !seen.Has(id) {
			seen.Add(id)
			queue = append(queue, id)
		}
	}
	for _, t := range v.Init {
		for _, to := range t.To.List() {
			enqueue(to)
		}
	}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		st := v.States[id]
		if st == nil {
			continue
		}
		for _, t := range st.Trans {
			for _, to := range t.To.List() {
				enqueue(to)
			}
		}
	}
	return seen
}

// prune drops every state not in reachable, renumbering the survivors (plus
// the always-kept sentinel state 0) so state ids stay dense, and rewrites
// every To bitset to the new numbering.
func prune(v *VWAA, reachable *bitset.Set) {
	n := len(v.States)
	remap := make([]int, n)
	kept := []*State{v.States[0]} // sentinel always survives
	remap[0] = 0
	for id := 1; id < n; id++ {
		if reachable.Has(id) {
			remap[id] = len(kept)
			kept = append(kept, v.States[id])
		} else {
			remap[id] = -1
		}
	}
	newN := len(kept)
	rewriteTo := func(t Trans) Trans {
		to := bitset.New(newN)
		for _, old := range t.To.List() {
			if nw := remap[old]; nw >= 0 {
				to.Add(nw)
			}
		}
		return Trans{Pos: t.Pos, Neg: t.Neg, To: to}
	}
	for i := range v.Init {
		v.Init[i] = rewriteTo(v.Init[i])
	}
	for i, st := range kept {
		if st == nil {
			continue
		}
		st.ID = i
		for j := range st.Trans {
			st.Trans[j] = rewriteTo(st.Trans[j])
		}
	}
	v.States = kept

	final := bitset.New(newN)
	for _, old := range v.Final.List() {
		if nw := remap[old]; nw >= 0 {
			final.Add(nw)
		}
	}
	v.Final = final
}

// subsume removes every transition τ for which some distinct τ' in the same
// list dominates it: τ'.To ⊆ τ.To, τ'.Pos ⊆ τ.Pos, τ'.Neg ⊆ τ.Neg. A weaker
// guard with a smaller (or equal) target set always fires at least as often
// as τ does, so τ is redundant (spec.md §4.2, original_source/alternating.c
// `simplify_atrans`).
func subsume(list []Trans) []Trans {
	keep := make([]bool, len(list))
	for i := range keep {
		keep[i] = true
	}
	for i := 0; i < len(list); i++ {
		for j := i + 1; j < len(list); j++ {
			if !keep[i] || !keep[j] {
				continue
			}
			switch {
			case dominates(list[j], list[i]):
				// j is at least as general and at least as targeted: i is redundant.
				keep[i] = false
			case dominates(list[i], list[j]):
				keep[j] = false
			}
		}
	}
	var out []Trans
	for i, k := range keep {
		if k {
			out = append(out, list[i])
		}
	}
	return out
}

// dominates reports whether a is at least as general and at least as
// targeted as b: a fires whenever b would (a.Pos/a.Neg ⊆ b.Pos/b.Neg) and
// commits to no more than b does (a.To ⊆ b.To).
func dominates(a, b Trans) bool {
	return a.Pos.Subset(b.Pos) && a.Neg.Subset(b.Neg) && a.To.Subset(b.To)
}
