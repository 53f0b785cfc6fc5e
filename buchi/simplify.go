package buchi

// Simplify reduces ba in place to a fixed point: unreachable-state
// pruning, transition subsumption, state equivalence merging, trivial-SCC
// tagging, and the id/final disambiguation pass. Grounded on
// original_source/buchi.c's `simplify_btrans`/`simplify_bstates`/
// `simplify_bscc` driver in `mk_buchi`.
func Simplify(ba *BA) {
	prune(ba)
	tagTrivialSCCs(ba)
	for {
		changed := false
		for _, s := range ba.States {
			before := len(s.Trans)
			s.Trans = subsumeTrans(s)
			if len(s.Trans) != before {
				changed = true
			}
		}
		if mergeEquivalentStates(ba) {
			changed = true
		}
		prune(ba)
		tagTrivialSCCs(ba)
		if !changed {
			break
		}
	}
	disambiguate(ba)
}

func prune(ba *BA) {
	seen := map[*BState]bool{ba.Init: true}
	queue := []*BState{ba.Init}
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
	var kept []*BState
	for _, s := range ba.States {
		if seen[s] {
			kept = append(kept, s)
		}
	}
	ba.States = kept
}

// subsumeTrans drops a transition t when another transition t1 in the same
// list targets the same state with a weaker-or-equal guard (same_btrans/
// simplify_btrans): t1's coverage already includes whatever t covers.
func subsumeTrans(s *BState) []BTrans {
	keep := make([]bool, len(s.Trans))
	for i := range keep {
		keep[i] = true
	}
	for i, t := range s.Trans {
		if !keep[i] {
			continue
		}
		for j, t1 := range s.Trans {
			if i == j || !keep[j] || t1.To != t.To {
				continue
			}
			if t1.Pos.Subset(t.Pos) && t1.Neg.Subset(t.Neg) {
				keep[i] = false
				break
			}
		}
	}
	var out []BTrans
	for i, k := range keep {
		if k {
			out = append(out, s.Trans[i])
		}
	}
	return out
}

// mergeEquivalentStates folds states with identical transition sets
// (all_btrans_match) into one survivor. A trivial (Incoming < 0) state may
// have its Final adjusted to the survivor's, matching the C's "if s1 is in
// a trivial scc, its final condition is not fixed" rule; otherwise both
// states must agree on whether they are on the accepting layer.
func mergeEquivalentStates(ba *BA) bool {
	changed := false
	for i := 0; i < len(ba.States); i++ {
		a := ba.States[i]
		if a == nil || a == ba.Init {
			continue
		}
		for j := i + 1; j < len(ba.States); j++ {
			b := ba.States[j]
			if b == nil || b == ba.Init {
				continue
			}
			if !allBTransMatch(ba, a, b) {
				continue
			}
			survivor, stale := a, b
			if survivor.Incoming < 0 && stale.Incoming >= 0 {
				survivor.Final = stale.Final
			}
			retarget(ba, stale, survivor)
			ba.States[j] = nil
			changed = true
		}
	}
	var kept []*BState
	for _, s := range ba.States {
		if s != nil {
			kept = append(kept, s)
		}
	}
	ba.States = kept
	return changed
}

func allBTransMatch(ba *BA, a, b *BState) bool {
	aAccept, bAccept := a.Final == ba.Accept, b.Final == ba.Accept
	if aAccept != bAccept && a.Incoming >= 0 && b.Incoming >= 0 {
		return false
	}
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
			if sameBTrans(ta, tb) {
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

func sameBTrans(a, b BTrans) bool {
	return a.To == b.To && a.Pos.Equal(b.Pos) && a.Neg.Equal(b.Neg)
}

func retarget(ba *BA, stale, survivor *BState) {
	for _, s := range ba.States {
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

// tagTrivialSCCs runs an iterative Tarjan pass and marks every state with
// Incoming = -1 when it is the sole member of its SCC and has no self-loop
// (bdfs/simplify_bscc): such a state can never be re-entered once left, so
// its Final value is free to be adjusted by a later equivalence merge.
// Every other state's Incoming becomes a positive SCC tag.
func tagTrivialSCCs(ba *BA) {
	if len(ba.States) == 0 {
		return
	}
	index := make(map[*BState]int)
	low := make(map[*BState]int)
	onStack := make(map[*BState]bool)
	var stack []*BState
	next := 1

	type frame struct {
		s   *BState
		pos int
	}
	var work []frame

	visit := func(root *BState) {
		if _, ok := index[root]; ok {
			return
		}
		index[root] = next
		low[root] = next
		next++
		stack = append(stack, root)
		onStack[root] = true
		work = append(work, frame{s: root})

		for len(work) > 0 {
			top := &work[len(work)-1]
			if top.pos < len(top.s.Trans) {
				to := top.s.Trans[top.pos].To
				top.pos++
				if _, seen := index[to]; !seen {
					index[to] = next
					low[to] = next
					next++
					stack = append(stack, to)
					onStack[to] = true
					work = append(work, frame{s: to})
				} else if onStack[to] && index[to] < low[top.s] {
					low[top.s] = index[to]
				}
				continue
			}
			work = work[:len(work)-1]
			if len(work) > 0 {
				parent := &work[len(work)-1]
				if low[top.s] < low[parent.s] {
					low[parent.s] = low[top.s]
				}
			}
			if low[top.s] == index[top.s] {
				members := []*BState{}
				for {
					w := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[w] = false
					members = append(members, w)
					if w == top.s {
						break
					}
				}
				if len(members) == 1 {
					s := members[0]
					selfLoop := false
					for _, t := range s.Trans {
						if t.To == s {
							selfLoop = true
							break
						}
					}
					if selfLoop {
						s.Incoming = next
					} else {
						s.Incoming = -1
					}
				} else {
					for _, s := range members {
						s.Incoming = next
					}
				}
			}
		}
	}

	visit(ba.Init)
	for _, s := range ba.States {
		visit(s)
	}
}

// disambiguate assigns fresh ids where two live states would otherwise
// share both (Id, Final): equivalence merging can retarget a trivial
// state's Final to match a survivor it happens to share an id with,
// spec.md §8's "no two live BA states share both id and final" invariant.
func disambiguate(ba *BA) {
	type key struct {
		id, final int
	}
	seen := make(map[key]bool)
	nextID := 0
	for _, s := range ba.States {
		if s.ID > nextID {
			nextID = s.ID
		}
	}
	nextID++
	for _, s := range ba.States {
		if s == ba.Init {
			continue
		}
		k := key{s.ID, s.Final}
		if seen[k] {
			s.ID = nextID
			nextID++
			continue
		}
		seen[k] = true
	}
}
