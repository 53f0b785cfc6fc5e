// Package scc computes strongly-connected components over a TGBA and
// classifies each as "bad" (some acceptance mark is never visited inside
// it): spec.md §4.3/§4.6 (C6), grounded on original_source/generalized.c's
// `dfs`/`simplify_gscc`, reimplemented with an explicit stack per spec.md
// §9's note that the recursive original overflows the call stack on deeply
// nested temporal formulas.
package scc

import (
	"github.com/esbmc/libltl2ba/bitset"
	"github.com/esbmc/libltl2ba/generalized"
)

// Tag assigns every reachable state an SCC id in g's own Incoming field
// (the reference translator reuses the same field for this purpose once
// construction is done, per original_source/generalized.c's `dfs`), and
// returns a predicate reporting whether a given SCC id is "bad": missing at
// least one of the TGBA's K acceptance marks on every transition strictly
// inside it, so no accepting run can stay there forever.
//
// Tag is a no-op (and the returned predicate always false) when g has no
// acceptance components, matching the reference's "scc simplification only
// matters when there is something to miss."
func Tag(g *generalized.TGBA) func(id int) bool {
	ids := tarjan(g)
	if g.K == 0 {
		return func(int) bool { return false }
	}

	sawAll := make(map[int]*bitsetInts)
	full := allBits(g.K)
	for _, s := range g.States {
		id := ids[s]
		s.Incoming = id
		acc, ok := sawAll[id]
		if !ok {
			acc = newBitsetInts(g.K)
			sawAll[id] = acc
		}
		for _, t := range s.Trans {
			if ids[t.To] == id { // only transitions that stay inside the SCC count
				acc.mergeFrom(t.Final)
			}
		}
	}

	bad := make(map[int]bool, len(sawAll))
	for id, acc := range sawAll {
		bad[id] = !acc.equals(full)
	}
	return func(id int) bool { return bad[id] }
}

// tarjan runs an iterative Tarjan SCC pass from every init state (and any
// other reachable state not yet visited), returning a per-state SCC id in
// discovery order (not renumbered to match the reference's exact ids —
// nothing downstream depends on the numeric value, only on which states
// share one).
func tarjan(g *generalized.TGBA) map[*generalized.GState]int {
	index := make(map[*generalized.GState]int)
	low := make(map[*generalized.GState]int)
	onStack := make(map[*generalized.GState]bool)
	sccOf := make(map[*generalized.GState]int)
	var stack []*generalized.GState
	next := 0
	nextSCC := 0

	type frame struct {
		s   *generalized.GState
		pos int
	}

	visit := func(root *generalized.GState) {
		if _, ok := index[root]; ok {
			return
		}
		var work []frame
		work = append(work, frame{s: root})
		index[root] = next
		low[root] = next
		next++
		stack = append(stack, root)
		onStack[root] = true

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
				} else if onStack[to] {
					if index[to] < low[top.s] {
						low[top.s] = index[to]
					}
				}
				continue
			}
			// Done with top.s: pop it, propagate low-link to the caller.
			work = work[:len(work)-1]
			if len(work) > 0 {
				parent := &work[len(work)-1]
				if low[top.s] < low[parent.s] {
					low[parent.s] = low[top.s]
				}
			}
			if low[top.s] == index[top.s] {
				for {
					w := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[w] = false
					sccOf[w] = nextSCC
					if w == top.s {
						break
					}
				}
				nextSCC++
			}
		}
	}

	for _, s := range g.Init {
		visit(s)
	}
	for _, s := range g.States {
		visit(s)
	}
	return sccOf
}

// bitsetInts is a tiny local bitset (over acceptance-component indices, not
// predicates) so scc doesn't need to import the bitset package's
// predicate/VWAA-state-shaped API for what is really just "a handful of
// ints up to K".
type bitsetInts struct {
	bits []bool
}

func newBitsetInts(n int) *bitsetInts { return &bitsetInts{bits: make([]bool, n)} }

func allBits(n int) *bitsetInts {
	b := newBitsetInts(n)
	for i := range b.bits {
		b.bits[i] = true
	}
	return b
}

func (b *bitsetInts) mergeFrom(indices *bitset.Set) {
	for _, i := range indices.List() {
		if i < len(b.bits) {
			b.bits[i] = true
		}
	}
}

func (b *bitsetInts) equals(o *bitsetInts) bool {
	for i, v := range b.bits {
		if v != o.bits[i] {
			return false
		}
	}
	return true
}
