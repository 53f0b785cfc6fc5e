// Package output renders a finished Büchi automaton in the three syntaxes
// spec.md §6 names: a Spin never-claim, a dot graph, and a C monitor
// skeleton. Grounded on original_source/buchi.c's `print_spin_buchi`,
// `print_dot_buchi`, and `print_c_buchi` families.
package output

import (
	"strings"

	"github.com/esbmc/libltl2ba/buchi"
	"github.com/esbmc/libltl2ba/ltlsyntax"
)

// formatGuard renders (pos, neg) as a conjunction of predicate names and
// negated predicate names, joined by sep, or "1" when the guard is the
// universal (always-true) transition (spin_print_set/dot_print_set).
func formatGuard(pos, neg setLike, preds *ltlsyntax.PredicateTable, sep string) string {
	var parts []string
	for _, p := range pos.List() {
		parts = append(parts, preds.Name(p))
	}
	for _, p := range neg.List() {
		parts = append(parts, "!"+preds.Name(p))
	}
	if len(parts) == 0 {
		return "1"
	}
	return strings.Join(parts, sep)
}

// cPredName renders predicate id as a valid C boolean sub-expression: a
// `{...}` opaque predicate's surrounding braces (kept verbatim in Spin/dot
// output per D9) aren't legal C expression syntax, so the C adapter strips
// them here instead.
func cPredName(preds *ltlsyntax.PredicateTable, id int) string {
	name := preds.Name(id)
	if preds.IsExpr(id) {
		return strings.TrimSuffix(strings.TrimPrefix(name, "{"), "}")
	}
	return name
}

// formatGuardC is formatGuard specialized for C output (cPredName instead
// of the verbatim Name).
func formatGuardC(pos, neg setLike, preds *ltlsyntax.PredicateTable, sep string) string {
	var parts []string
	for _, p := range pos.List() {
		parts = append(parts, cPredName(preds, p))
	}
	for _, p := range neg.List() {
		parts = append(parts, "!"+cPredName(preds, p))
	}
	if len(parts) == 0 {
		return "1"
	}
	return strings.Join(parts, sep)
}

// setLike is the minimal bitset surface formatGuard needs; it lets this
// file avoid importing the concrete bitset package just for a type alias.
type setLike = interface{ List() []int }

// stateLabel renders a BState's Spin/C label stem ("accept", "T<final>",
// and so on), without the trailing "_init"/"_S<id>"/"_all" suffix.
func stateLabel(s *buchi.BState, accept int) string {
	if s.Final == accept {
		return "accept"
	}
	return "T" + itoa(s.Final)
}

// stateName renders the full label used for goto targets and case labels.
func stateName(s *buchi.BState, accept int) string {
	switch {
	case s.GState != nil && s.GState.ID == 0:
		return "accept_all"
	case s.ID == -1:
		return stateLabel(s, accept) + "_init"
	default:
		return stateLabel(s, accept) + "_S" + itoa(s.ID)
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// groupByTarget walks s's transitions in order and groups consecutive (and
// non-consecutive) entries bound for the same target, mirroring the
// reference's inline "t1->nxt" scan that ORs every transition sharing a
// destination into one guarded arm, preserving first-occurrence order.
func groupByTarget(trans []buchi.BTrans) []struct {
	To    *buchi.BState
	Trans []buchi.BTrans
} {
	var order []*buchi.BState
	byTarget := make(map[*buchi.BState][]buchi.BTrans)
	for _, t := range trans {
		if _, ok := byTarget[t.To]; !ok {
			order = append(order, t.To)
		}
		byTarget[t.To] = append(byTarget[t.To], t)
	}
	out := make([]struct {
		To    *buchi.BState
		Trans []buchi.BTrans
	}, 0, len(order))
	for _, to := range order {
		out = append(out, struct {
			To    *buchi.BState
			Trans []buchi.BTrans
		}{To: to, Trans: byTarget[to]})
	}
	return out
}
