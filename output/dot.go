package output

import (
	"strings"

	"github.com/esbmc/libltl2ba/buchi"
	"github.com/esbmc/libltl2ba/ltlsyntax"
)

// dotStateName renders a state's node name for dot output
// (print_dot_state_name): "init", "all", or "T<final>_<id>"/"<id>".
func dotStateName(s *buchi.BState, accept int) string {
	switch {
	case s.ID == -1:
		return "init"
	case s.GState != nil && s.GState.ID == 0:
		return "all"
	case s.Final != accept:
		return "T" + itoa(s.Final) + "_" + itoa(s.ID)
	default:
		return itoa(s.ID)
	}
}

// Dot renders ba as a dot digraph (print_dot_buchi): states as circles
// (double for accepting), edges labeled with their merged guard.
func Dot(ba *buchi.BA, preds *ltlsyntax.PredicateTable) string {
	var b strings.Builder
	b.WriteString("digraph G {\n")

	for _, s := range ba.States {
		if s.GState != nil && s.GState.ID == 0 {
			b.WriteString("all [shape=doublecircle]\n")
			b.WriteString("all -> all [label=\"true\", fontname=\"Courier\", fontcolor=blue]\n")
			continue
		}
		name := dotStateName(s, ba.Accept)
		b.WriteString(name)
		if s.IsAccepting(ba.Accept) {
			b.WriteString(" [shape=doublecircle]\n")
		} else {
			b.WriteString(" [shape=circle]\n")
		}
		for _, grp := range groupByTarget(s.Trans) {
			needParens := len(grp.Trans) > 1
			var arms []string
			for _, t := range grp.Trans {
				arms = append(arms, formatGuard(t.Pos, t.Neg, preds, "&&"))
			}
			label := strings.Join(arms, "||")
			if needParens && len(arms) > 1 {
				label = "(" + strings.Join(arms, ")||(") + ")"
			}
			b.WriteString(name)
			b.WriteString(" -> ")
			b.WriteString(dotStateName(grp.To, ba.Accept))
			b.WriteString(" [label=\"")
			b.WriteString(label)
			b.WriteString("\", fontname=\"Courier\", fontcolor=blue]\n")
		}
	}
	b.WriteString("}\n")
	return b.String()
}
