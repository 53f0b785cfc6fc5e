package parser

import (
	"fmt"
	"sort"

	"github.com/esbmc/libltl2ba/ltlsyntax"
)

// Desugar eliminates the derived operators (spec.md §4: "No derived
// operators" invariant): F p ≡ true U p, G p ≡ false V p, p→q ≡ ¬p∨q,
// p↔q ≡ (p∧q)∨(¬p∧¬q). It runs once, bottom-up, before negation push-down.
func Desugar(n *ltlsyntax.Node) *ltlsyntax.Node {
	if n == nil {
		return n
	}
	switch n.Kind {
	case ltlsyntax.KindTrue, ltlsyntax.KindFalse, ltlsyntax.KindLiteral:
		return n
	case ltlsyntax.KindNot:
		return ltlsyntax.Un(ltlsyntax.KindNot, Desugar(n.Left))
	case ltlsyntax.KindNext:
		return ltlsyntax.Un(ltlsyntax.KindNext, Desugar(n.Left))
	case ltlsyntax.KindAlways:
		return ltlsyntax.Bin(ltlsyntax.KindRelease, ltlsyntax.False, Desugar(n.Left))
	case ltlsyntax.KindEventually:
		return ltlsyntax.Bin(ltlsyntax.KindUntil, ltlsyntax.True, Desugar(n.Left))
	case ltlsyntax.KindAnd, ltlsyntax.KindOr, ltlsyntax.KindUntil, ltlsyntax.KindRelease:
		return ltlsyntax.Bin(n.Kind, Desugar(n.Left), Desugar(n.Right))
	case ltlsyntax.KindImplies:
		a, b := Desugar(n.Left), Desugar(n.Right)
		return ltlsyntax.Bin(ltlsyntax.KindOr, ltlsyntax.Un(ltlsyntax.KindNot, a), b)
	case ltlsyntax.KindEquiv:
		a, b := Desugar(n.Left), Desugar(n.Right)
		both := ltlsyntax.Bin(ltlsyntax.KindAnd, a, b)
		neither := ltlsyntax.Bin(ltlsyntax.KindAnd,
			ltlsyntax.Un(ltlsyntax.KindNot, a), ltlsyntax.Un(ltlsyntax.KindNot, b))
		return ltlsyntax.Bin(ltlsyntax.KindOr, both, neither)
	default:
		panic(fmt.Sprintf("parser: Desugar: unhandled kind %v", n.Kind))
	}
}

// NNF pushes negation down to the predicates (spec.md §4.1
// push_negation, generalized to recurse through an arbitrary tree rather
// than assuming n itself is the NOT node, since this pipeline runs it over
// a whole desugared tree in one pass):
//
//	¬T↦F  ¬F↦T  ¬¬φ↦φ  ¬(φ∧ψ)↦¬φ∨¬ψ  ¬(φ∨ψ)↦¬φ∧¬ψ
//	¬Xφ↦X¬φ  ¬(φ U ψ)↦¬φ V ¬ψ  ¬(φ V ψ)↦¬φ U ¬ψ
//
// After NNF, NOT appears only as the Neg flag on a KindLiteral (design
// notes, spec.md §9): later stages never match on KindNot again.
func NNF(n *ltlsyntax.Node) *ltlsyntax.Node {
	switch n.Kind {
	case ltlsyntax.KindTrue, ltlsyntax.KindFalse, ltlsyntax.KindLiteral:
		return n
	case ltlsyntax.KindNext:
		return ltlsyntax.Un(ltlsyntax.KindNext, NNF(n.Left))
	case ltlsyntax.KindAnd:
		return ltlsyntax.Bin(ltlsyntax.KindAnd, NNF(n.Left), NNF(n.Right))
	case ltlsyntax.KindOr:
		return ltlsyntax.Bin(ltlsyntax.KindOr, NNF(n.Left), NNF(n.Right))
	case ltlsyntax.KindUntil:
		return ltlsyntax.Bin(ltlsyntax.KindUntil, NNF(n.Left), NNF(n.Right))
	case ltlsyntax.KindRelease:
		return ltlsyntax.Bin(ltlsyntax.KindRelease, NNF(n.Left), NNF(n.Right))
	case ltlsyntax.KindNot:
		return nnfNot(n.Left)
	default:
		panic(fmt.Sprintf("parser: NNF: unexpected kind %v (Desugar must run first)", n.Kind))
	}
}

func nnfNot(child *ltlsyntax.Node) *ltlsyntax.Node {
	switch child.Kind {
	case ltlsyntax.KindTrue:
		return ltlsyntax.False
	case ltlsyntax.KindFalse:
		return ltlsyntax.True
	case ltlsyntax.KindLiteral:
		return ltlsyntax.Lit(child.Pred, !child.Neg)
	case ltlsyntax.KindNot:
		return NNF(child.Left)
	case ltlsyntax.KindNext:
		return ltlsyntax.Un(ltlsyntax.KindNext, nnfNot(child.Left))
	case ltlsyntax.KindAnd:
		return ltlsyntax.Bin(ltlsyntax.KindOr, nnfNot(child.Left), nnfNot(child.Right))
	case ltlsyntax.KindOr:
		return ltlsyntax.Bin(ltlsyntax.KindAnd, nnfNot(child.Left), nnfNot(child.Right))
	case ltlsyntax.KindUntil:
		return ltlsyntax.Bin(ltlsyntax.KindRelease, nnfNot(child.Left), nnfNot(child.Right))
	case ltlsyntax.KindRelease:
		return ltlsyntax.Bin(ltlsyntax.KindUntil, nnfNot(child.Left), nnfNot(child.Right))
	default:
		panic(fmt.Sprintf("parser: NNF: unexpected kind %v under NOT (Desugar must run first)", child.Kind))
	}
}

// Canonical right-linearizes AND/OR spines, sorts leaves by a stable
// textual serialization, drops duplicates, and absorbs T under AND / F
// under OR (and vice versa), hash-consing the result through cache
// (spec.md §4.1; original_source/rewrt.c's Canonical/addcan/marknode).
// n must already be in NNF.
func Canonical(n *ltlsyntax.Node, cache *ltlsyntax.Cache, preds *ltlsyntax.PredicateTable) *ltlsyntax.Node {
	switch n.Kind {
	case ltlsyntax.KindTrue, ltlsyntax.KindFalse, ltlsyntax.KindLiteral:
		return cache.Intern(n)
	case ltlsyntax.KindNext:
		return cache.Intern(ltlsyntax.Un(ltlsyntax.KindNext, Canonical(n.Left, cache, preds)))
	case ltlsyntax.KindUntil, ltlsyntax.KindRelease:
		return cache.Intern(ltlsyntax.Bin(n.Kind, Canonical(n.Left, cache, preds), Canonical(n.Right, cache, preds)))
	case ltlsyntax.KindAnd, ltlsyntax.KindOr:
		return canonicalSpine(n, cache, preds)
	default:
		panic(fmt.Sprintf("parser: Canonical: unexpected kind %v (NNF must run first)", n.Kind))
	}
}

func canonicalSpine(n *ltlsyntax.Node, cache *ltlsyntax.Cache, preds *ltlsyntax.PredicateTable) *ltlsyntax.Node {
	kind := n.Kind
	absorbing, identity := ltlsyntax.False, ltlsyntax.True // for AND: F absorbs, T is identity
	if kind == ltlsyntax.KindOr {
		absorbing, identity = ltlsyntax.True, ltlsyntax.False
	}

	var leaves []*ltlsyntax.Node
	var flatten func(m *ltlsyntax.Node)
	flatten = func(m *ltlsyntax.Node) {
		if m.Kind == kind {
			flatten(m.Left)
			flatten(m.Right)
			return
		}
		leaves = append(leaves, Canonical(m, cache, preds))
	}
	flatten(n)

	kept := leaves[:0]
	for _, leaf := range leaves {
		if leaf == absorbing {
			return absorbing
		}
		if leaf == identity {
			continue
		}
		kept = append(kept, leaf)
	}
	leaves = kept

	if len(leaves) == 0 {
		return identity
	}

	keys := make([]string, len(leaves))
	for i, leaf := range leaves {
		keys[i] = ltlsyntax.Serialize(leaf, preds)
	}
	sort.Sort(bySerialization{leaves, keys})

	deduped := leaves[:1]
	for i := 1; i < len(leaves); i++ {
		if keys[i] == keys[i-1] {
			continue
		}
		deduped = append(deduped, leaves[i])
	}
	leaves = deduped

	if len(leaves) == 1 {
		return leaves[0]
	}
	result := leaves[len(leaves)-1]
	for i := len(leaves) - 2; i >= 0; i-- {
		result = cache.Intern(ltlsyntax.Bin(kind, leaves[i], result))
	}
	return result
}

type bySerialization struct {
	nodes []*ltlsyntax.Node
	keys  []string
}

func (b bySerialization) Len() int { return len(b.nodes) }
func (b bySerialization) Less(i, j int) bool {
	return b.keys[i] < b.keys[j]
}
func (b bySerialization) Swap(i, j int) {
	b.nodes[i], b.nodes[j] = b.nodes[j], b.nodes[i]
	b.keys[i], b.keys[j] = b.keys[j], b.keys[i]
}

// Simplify applies the algebraic rewrite laws of spec.md §4.1 bottom-up,
// re-canonicalizing (and so re-hash-consing) after every rewrite, and
// repeats whole passes until one changes nothing or maxPasses (8) passes
// have run, whichever comes first. Disabled by Options.DisableLogicalSimp (CLI flag -l, spec.md §6).
func Simplify(n *ltlsyntax.Node, cache *ltlsyntax.Cache, preds *ltlsyntax.PredicateTable) *ltlsyntax.Node {
	const maxPasses = 8
	cur := n
	for i := 0; i < maxPasses; i++ {
		next := simplifyPass(cur, cache, preds)
		if next == cur {
			return cur
		}
		cur = next
	}
	return cur
}

func simplifyPass(n *ltlsyntax.Node, cache *ltlsyntax.Cache, preds *ltlsyntax.PredicateTable) *ltlsyntax.Node {
	switch n.Kind {
	case ltlsyntax.KindTrue, ltlsyntax.KindFalse, ltlsyntax.KindLiteral:
		return n
	case ltlsyntax.KindNext:
		child := simplifyPass(n.Left, cache, preds)
		return rewriteTop(Canonical(ltlsyntax.Un(ltlsyntax.KindNext, child), cache, preds), cache, preds)
	case ltlsyntax.KindAnd, ltlsyntax.KindOr, ltlsyntax.KindUntil, ltlsyntax.KindRelease:
		left := simplifyPass(n.Left, cache, preds)
		right := simplifyPass(n.Right, cache, preds)
		rebuilt := Canonical(ltlsyntax.Bin(n.Kind, left, right), cache, preds)
		return rewriteTop(rebuilt, cache, preds)
	default:
		panic(fmt.Sprintf("parser: Simplify: unexpected kind %v", n.Kind))
	}
}

// rewriteTop applies the single-step laws named in spec.md §4.1 at the root
// of n, assuming n's children are already simplified and canonical.
func rewriteTop(n *ltlsyntax.Node, cache *ltlsyntax.Cache, preds *ltlsyntax.PredicateTable) *ltlsyntax.Node {
	switch n.Kind {
	case ltlsyntax.KindUntil:
		a, b := n.Left, n.Right
		// φ U T ↦ T
		if b == ltlsyntax.True {
			return ltlsyntax.True
		}
		// T U X p ↦ X (T U p)
		if a == ltlsyntax.True && b.Kind == ltlsyntax.KindNext {
			inner := Canonical(ltlsyntax.Bin(ltlsyntax.KindUntil, ltlsyntax.True, b.Left), cache, preds)
			return cache.Intern(ltlsyntax.Un(ltlsyntax.KindNext, inner))
		}
		// F G F p ↦ G F p: true U (false V (true U p)) ↦ false V (true U p)
		if a == ltlsyntax.True && b.Kind == ltlsyntax.KindRelease && b.Left == ltlsyntax.False &&
			b.Right.Kind == ltlsyntax.KindUntil && b.Right.Left == ltlsyntax.True {
			return b
		}
		return n
	case ltlsyntax.KindAnd:
		return rewriteAndUntil(n, cache, preds)
	case ltlsyntax.KindNext:
		return n
	default:
		return n
	}
}

// rewriteAndUntil implements (p U q) ∧ (r U q) ↦ (p ∧ r) U q and
// X p ∧ X q ↦ X(p ∧ q), walking the (already right-linearized, sorted)
// AND spine pairwise.
func rewriteAndUntil(n *ltlsyntax.Node, cache *ltlsyntax.Cache, preds *ltlsyntax.PredicateTable) *ltlsyntax.Node {
	var conjuncts []*ltlsyntax.Node
	var collect func(m *ltlsyntax.Node)
	collect = func(m *ltlsyntax.Node) {
		if m.Kind == ltlsyntax.KindAnd {
			collect(m.Left)
			collect(m.Right)
			return
		}
		conjuncts = append(conjuncts, m)
	}
	collect(n)

	changed := false
	for i := 0; i < len(conjuncts); i++ {
		for j := i + 1; j < len(conjuncts); j++ {
			ci, cj := conjuncts[i], conjuncts[j]
			if ci.Kind == ltlsyntax.KindUntil && cj.Kind == ltlsyntax.KindUntil && ci.Right == cj.Right {
				merged := Canonical(ltlsyntax.Bin(ltlsyntax.KindUntil,
					Canonical(ltlsyntax.Bin(ltlsyntax.KindAnd, ci.Left, cj.Left), cache, preds), ci.Right), cache, preds)
				conjuncts[i] = merged
				conjuncts = append(conjuncts[:j], conjuncts[j+1:]...)
				changed = true
				j--
				continue
			}
			if ci.Kind == ltlsyntax.KindNext && cj.Kind == ltlsyntax.KindNext {
				merged := cache.Intern(ltlsyntax.Un(ltlsyntax.KindNext,
					Canonical(ltlsyntax.Bin(ltlsyntax.KindAnd, ci.Left, cj.Left), cache, preds)))
				conjuncts[i] = merged
				conjuncts = append(conjuncts[:j], conjuncts[j+1:]...)
				changed = true
				j--
			}
		}
	}
	if !changed {
		return n
	}
	result := conjuncts[len(conjuncts)-1]
	for i := len(conjuncts) - 2; i >= 0; i-- {
		result = Canonical(ltlsyntax.Bin(ltlsyntax.KindAnd, conjuncts[i], result), cache, preds)
	}
	return result
}

// Normalize runs the full pipeline (Desugar → NNF → Canonical → Simplify)
// on a raw parse tree, returning the hash-consed, simplified formula that
// the VWAA builder consumes. simp controls whether the logical-simplifier
// pass runs (CLI flag -l disables it, spec.md §6).
func Normalize(raw *ltlsyntax.Node, cache *ltlsyntax.Cache, preds *ltlsyntax.PredicateTable, simp bool) *ltlsyntax.Node {
	n := NNF(Desugar(raw))
	n = Canonical(n, cache, preds)
	if simp {
		n = Simplify(n, cache, preds)
	}
	return n
}
