package output

import (
	"strings"

	"github.com/esbmc/libltl2ba/buchi"
	"github.com/esbmc/libltl2ba/ltlsyntax"
)

// Spin renders ba as a Spin never-claim (print_spin_buchi): one "if" block
// per state, arms grouped by destination and OR'd together, with the
// degenerate id==0 ("every obligation already discharged") state folded
// into a trailing accept_all: skip label.
func Spin(ba *buchi.BA, formula string, preds *ltlsyntax.PredicateTable) string {
	var b strings.Builder
	b.WriteString("never { /* ")
	b.WriteString(formula)
	b.WriteString(" */\n")

	sawAcceptAll := false
	for _, s := range ba.States {
		if s.GState != nil && s.GState.ID == 0 {
			sawAcceptAll = true
			continue
		}
		b.WriteString(stateName(s, ba.Accept))
		b.WriteString(":\n")
		if len(s.Trans) == 0 {
			b.WriteString("\tfalse;\n")
			continue
		}
		b.WriteString("\tif\n")
		for _, grp := range groupByTarget(s.Trans) {
			b.WriteString("\t:: (")
			var arms []string
			for _, t := range grp.Trans {
				arms = append(arms, formatGuard(t.Pos, t.Neg, preds, " && "))
			}
			b.WriteString(strings.Join(arms, ") || ("))
			b.WriteString(") -> goto ")
			b.WriteString(stateName(grp.To, ba.Accept))
			b.WriteString("\n")
		}
		b.WriteString("\tfi;\n")
	}
	if sawAcceptAll {
		b.WriteString("accept_all:\n\tskip\n")
	}
	b.WriteString("}\n")
	return b.String()
}
