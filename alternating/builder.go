package alternating

import "github.com/esbmc/libltl2ba/ltlsyntax"

// rawTrans mirrors Trans but carries its To set as a plain int list during
// construction: the number of VWAA states isn't known until construction
// finishes, so the To bitset can't be sized up front the way Pos/Neg can
// (the predicate universe P is already fixed once parsing is done).
type rawTrans struct {
	pos, neg []int
	to       []int
}

// Builder constructs a VWAA from a normalized formula tree, following the
// case table of spec.md §4.2.
type Builder struct {
	preds      *ltlsyntax.PredicateTable
	memo       map[*ltlsyntax.Node]int
	labels     []*ltlsyntax.Node // index 0 unused (sentinel)
	trans      [][]rawTrans      // trans[id] is state id's outgoing disjunction
	finalOrder []int             // discovery order of U-subformula state ids
}

// Build runs the VWAA construction for root and returns the finished
// (unsimplified) automaton. Call Simplify afterward to apply the
// accessibility and subsumption reductions of spec.md §4.2.
func Build(root *ltlsyntax.Node, preds *ltlsyntax.PredicateTable) *VWAA {
	b := &Builder{
		preds:  preds,
		memo:   make(map[*ltlsyntax.Node]int),
		labels: []*ltlsyntax.Node{nil},
		trans:  [][]rawTrans{nil},
	}
	initRaw := b.booleanFanout(root)
	return b.finish(initRaw)
}

// stateFor returns the (memoized) state id for a temporal subformula, or
// for a literal reached through booleanFanout, building it on first sight. The id is registered before the body is
// computed so that a node's own U/V self-reference ("to ∪ {state(φ)}")
// resolves to the right id without infinite recursion, matching
// already_done's role in original_source/alternating.c.
func (b *Builder) stateFor(n *ltlsyntax.Node) int {
	if id, ok := b.memo[n]; ok {
		return id
	}
	id := len(b.labels)
	b.labels = append(b.labels, n)
	b.memo[n] = id
	b.trans = append(b.trans, nil)

	var body []rawTrans
	switch n.Kind {
	case ltlsyntax.KindNext:
		body = b.booleanFanout(n.Left)
	case ltlsyntax.KindUntil:
		body = b.deltaUntil(n, id)
	case ltlsyntax.KindRelease:
		body = b.deltaRelease(n, id)
	case ltlsyntax.KindLiteral:
		body = b.delta(n)
	default:
		panic("alternating: stateFor called on non-temporal node")
	}
	b.trans[id] = body
	if n.Kind == ltlsyntax.KindUntil {
		b.finalOrder = append(b.finalOrder, id)
	}
	return id
}

// delta is the generic case-table function, used for AND/OR/U/V argument
// evaluation (spec.md §4.2's table).
func (b *Builder) delta(n *ltlsyntax.Node) []rawTrans {
	switch n.Kind {
	case ltlsyntax.KindTrue:
		return []rawTrans{{}}
	case ltlsyntax.KindFalse:
		return nil
	case ltlsyntax.KindLiteral:
		if n.Neg {
			return []rawTrans{{neg: []int{n.Pred}}}
		}
		return []rawTrans{{pos: []int{n.Pred}}}
	case ltlsyntax.KindNext:
		return b.booleanFanout(n.Left)
	case ltlsyntax.KindAnd:
		return pairwiseMerge(b.delta(n.Left), b.delta(n.Right))
	case ltlsyntax.KindOr:
		return append(append([]rawTrans{}, b.delta(n.Left)...), b.delta(n.Right)...)
	case ltlsyntax.KindUntil:
		id := b.stateFor(n)
		return b.trans[id]
	case ltlsyntax.KindRelease:
		id := b.stateFor(n)
		return b.trans[id]
	default:
		panic("alternating: delta: unexpected kind")
	}
}

// deltaUntil implements "ψ U χ | δ(χ) ∪ {(pos_ψ,neg_ψ,to_ψ∪{state(φ)}) :
// τ_ψ ∈ δ(ψ)}", marking state(φ) accepting (spec.md §4.2 table, U_OPER row).
func (b *Builder) deltaUntil(n *ltlsyntax.Node, selfID int) []rawTrans {
	out := append([]rawTrans{}, b.delta(n.Right)...)
	for _, tau := range b.delta(n.Left) {
		out = append(out, rawTrans{pos: tau.pos, neg: tau.neg, to: appendUnique(tau.to, selfID)})
	}
	return out
}

// deltaRelease implements "ψ V χ <-> (ψ ∧ χ) ∨ (χ ∧ X(ψ V χ))"
// (V_OPER row): χ must hold on every step; the obligation ends the moment ψ
// also holds, otherwise it continues. The continuation branch is built from
// χ's own transitions, not ψ's — original_source/alternating.c's V_OPER
// case loops over rgt (χ) and only references lft (ψ) inside the merge.
func (b *Builder) deltaRelease(n *ltlsyntax.Node, selfID int) []rawTrans {
	var out []rawTrans
	dPsi, dChi := b.delta(n.Left), b.delta(n.Right)
	for _, tc := range dChi {
		for _, tp := range dPsi {
			if m, ok := mergeRaw(tc, tp); ok {
				out = append(out, m)
			}
		}
	}
	for _, tc := range dChi {
		out = append(out, rawTrans{pos: tc.pos, neg: tc.neg, to: appendUnique(tc.to, selfID)})
	}
	return out
}

// booleanFanout computes the "initial fan-out" used both for X ψ's own
// transitions and for the VWAA's initial transitions (spec.md §4.2): it
// recurses structurally through AND/OR, and at any other leaf (a literal or
// a temporal subformula) stops and references that leaf's own state,
// keeping the fan-out finite even when the leaf's own unfolding is
// self-referential (p U q nested under X, for instance).
func (b *Builder) booleanFanout(n *ltlsyntax.Node) []rawTrans {
	switch n.Kind {
	case ltlsyntax.KindTrue:
		return []rawTrans{{}}
	case ltlsyntax.KindFalse:
		return nil
	case ltlsyntax.KindAnd:
		return pairwiseMerge(b.booleanFanout(n.Left), b.booleanFanout(n.Right))
	case ltlsyntax.KindOr:
		return append(append([]rawTrans{}, b.booleanFanout(n.Left)...), b.booleanFanout(n.Right)...)
	default: // KindLiteral, KindNext, KindUntil, KindRelease
		id := b.stateFor(n)
		return []rawTrans{{to: []int{id}}}
	}
}

func mergeRaw(a, b rawTrans) (rawTrans, bool) {
	pos := unionInts(a.pos, b.pos)
	neg := unionInts(a.neg, b.neg)
	if intersects(pos, neg) {
		return rawTrans{}, false
	}
	return rawTrans{pos: pos, neg: neg, to: unionInts(a.to, b.to)}, true
}

func pairwiseMerge(a, b []rawTrans) []rawTrans {
	var out []rawTrans
	for _, ta := range a {
		for _, tb := range b {
			if m, ok := mergeRaw(ta, tb); ok {
				out = append(out, m)
			}
		}
	}
	return out
}

func appendUnique(xs []int, v int) []int {
	for _, x := range xs {
		if x == v {
			return xs
		}
	}
	out := make([]int, len(xs), len(xs)+1)
	copy(out, xs)
	return append(out, v)
}

func unionInts(a, b []int) []int {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	seen := make(map[int]bool, len(a)+len(b))
	out := make([]int, 0, len(a)+len(b))
	for _, x := range a {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	for _, x := range b {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	return out
}

func intersects(a, b []int) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	set := make(map[int]bool, len(a))
	for _, x := range a {
		set[x] = true
	}
	for _, x := range b {
		if set[x] {
			return true
		}
	}
	return false
}
