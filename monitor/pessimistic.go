package monitor

import "github.com/esbmc/libltl2ba/buchi"

// pessimisticAccept computes the states from which EVERY infinite word
// admits an accepting run: grounded on buchi.c's Slist-based
// pessimistic_transition / pess_reach. For each state and each symbol, the
// set of states the automaton is forced into is recorded; sets that are a
// superset of another recorded set for the same state carry no extra
// information and are dropped, leaving an inclusion-minimal list of
// "forced successor sets". pess_reach then asks, down to a bounded depth,
// which states are reachable no matter which of a state's forced sets
// materializes (pessimistic over the adversary's choice of symbol) while
// allowed to pick any element within it (optimistic over the automaton's
// own nondeterminism).
func pessimisticAccept(ba *buchi.BA, labels map[*buchi.BState]int, n, numPreds int, accepting []bool) []bool {
	forced := pessimisticTransitions(ba, labels, n, numPreds)

	full := make([]bool, n)
	for i := range full {
		full[i] = true
	}

	memo := make(map[[2]int][]bool)
	reachable := make([][]bool, n)
	for s := 0; s < n; s++ {
		reachable[s] = pessRecurse1(forced, forced[s], n, full, memo)
	}

	cycle := make([]bool, n)
	for s := 0; s < n; s++ {
		if accepting[s] && reachable[s][s] {
			cycle[s] = true
		}
	}
	out := make([]bool, n)
	for s := 0; s < n; s++ {
		for c := 0; c < n; c++ {
			if reachable[s][c] && cycle[c] {
				out[s] = true
				break
			}
		}
	}
	return out
}

// pessimisticTransitions builds, for each state, the inclusion-minimal list
// of "forced successor sets": one set per distinct symbol-induced successor
// set, with sets that are supersets of another entry in the same list
// discarded (same_set/included_set dedup loop in buchi.c).
func pessimisticTransitions(ba *buchi.BA, labels map[*buchi.BState]int, n, numPreds int) [][][]bool {
	total := 1 << uint(numPreds)

	lists := make([][][]bool, n)
	for s := 0; s < n; s++ {
		lists[s] = nil
	}

	for a := 0; a < total; a++ {
		m := transitionMatrix(ba, labels, n, a)
		for s := 0; s < n; s++ {
			working := m[s*n : s*n+n]
			lists[s] = mergeForcedSet(lists[s], working)
		}
	}
	for s := 0; s < n; s++ {
		if lists[s] == nil {
			full := make([]bool, n)
			for i := range full {
				full[i] = true
			}
			lists[s] = [][]bool{full}
		}
	}
	return lists
}

// mergeForcedSet folds working into list, keeping only inclusion-minimal
// sets (a set already in list that contains working is replaced by it; a
// set that working already contains is dropped instead of added).
func mergeForcedSet(list [][]bool, working []bool) [][]bool {
	add := true
	for i, s := range list {
		if includes(s, working) {
			list[i] = append([]bool(nil), working...)
			add = false
		} else if includes(working, s) {
			add = false
		}
	}
	if add {
		list = append(list, append([]bool(nil), working...))
	}
	return dedupSets(list)
}

func includes(a, b []bool) bool {
	for i, v := range b {
		if v && !a[i] {
			return false
		}
	}
	return true
}

func sameSet(a, b []bool) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func dedupSets(list [][]bool) [][]bool {
	var out [][]bool
	for _, s := range list {
		dup := false
		for _, o := range out {
			if sameSet(s, o) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, s)
		}
	}
	return out
}

// pessRecurse3 pessimistically picks a forced set for state i, then
// optimistically picks an element within the next set, one step of depth
// at a time, until depth is exhausted (pess_recurse3 in buchi.c).
func pessRecurse3(forced [][][]bool, i, depth int, full []bool, memo map[[2]int][]bool) []bool {
	depth--
	if depth == 0 {
		out := make([]bool, len(full))
		out[i] = true
		return out
	}
	key := [2]int{i, depth}
	if v, ok := memo[key]; ok {
		return v
	}
	v := pessRecurse1(forced, forced[i], depth, full, memo)
	memo[key] = v
	return v
}

// pessRecurse2 optimistically picks an element out of forced set s.
func pessRecurse2(forced [][][]bool, s []bool, depth int, full []bool, memo map[[2]int][]bool) []bool {
	reach := make([]bool, len(full))
	for i, in := range s {
		if !in {
			continue
		}
		t := pessRecurse3(forced, i, depth, full, memo)
		for j, v := range t {
			if v {
				reach[j] = true
			}
		}
	}
	return reach
}

// pessRecurse1 pessimistically picks a set out of sl (every forced set for
// the current state), intersecting the reachable sets obtained from each.
func pessRecurse1(forced [][][]bool, sl [][]bool, depth int, full []bool, memo map[[2]int][]bool) []bool {
	reach := append([]bool(nil), full...)
	for _, set := range sl {
		next := pessRecurse2(forced, set, depth, full, memo)
		for j := range reach {
			reach[j] = reach[j] && next[j]
		}
	}
	return reach
}
