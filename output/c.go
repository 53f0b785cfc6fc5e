package output

import (
	"fmt"
	"strings"

	"github.com/esbmc/libltl2ba/buchi"
	"github.com/esbmc/libltl2ba/ltlsyntax"
	"github.com/esbmc/libltl2ba/monitor"
)

// C renders ba as a free-standing C monitor skeleton (print_c_headers/
// print_enum_decl/print_c_buchi_body/print_c_accept_tables/print_c_epilog):
// a state enum, a global state variable, a nondeterministic step function,
// the three behaviour tables from the monitor package, and the LTL_BAD/
// LTL_FAILING/LTL_SUCCEEDING assertion primitives spec.md §6 names.
func C(ba *buchi.BA, tables *monitor.Tables, preds *ltlsyntax.PredicateTable, prefix, formula string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "#include <assert.h>\n#include <stdbool.h>\n#include <stdint.h>\n\n")
	fmt.Fprintf(&b, "unsigned int nondet_uint(void);\n\n")

	writeEnum(&b, ba, tables, prefix)
	fmt.Fprintf(&b, "%s_state %s_statevar = %s_state_0;\n\n", prefix, prefix, prefix)
	fmt.Fprintf(&b, "unsigned int %s_visited_states[%d];\n\n", prefix, tables.NumStates)

	writeFSM(&b, ba, tables, preds, prefix, formula)
	writeAccessTables(&b, tables, preds, prefix)

	fmt.Fprintf(&b, "#define LTL_BAD(cond) assert(!(cond))\n")
	fmt.Fprintf(&b, "#define LTL_FAILING(cond) assert(!(cond))\n")
	fmt.Fprintf(&b, "#define LTL_SUCCEEDING(cond) assert(!(cond))\n\n")

	fmt.Fprintf(&b, "void\n%s_check(void)\n{\n", prefix)
	fmt.Fprintf(&b, "\tLTL_BAD(%s_bad_prefix_states[%s_statevar]);\n", prefix, prefix)
	fmt.Fprintf(&b, "\tLTL_FAILING(%s_stutter_accept_table[%s_sym_to_idx()][%s_statevar]);\n", prefix, prefix, prefix)
	fmt.Fprintf(&b, "\tLTL_SUCCEEDING(%s_good_prefix_excluded_states[%s_statevar]);\n", prefix, prefix)
	fmt.Fprintf(&b, "}\n")

	return b.String()
}

func writeEnum(b *strings.Builder, ba *buchi.BA, tables *monitor.Tables, prefix string) {
	fmt.Fprintf(b, "typedef enum {\n")
	for _, s := range ba.States {
		fmt.Fprintf(b, "\t%s_state_%d,\n", prefix, tables.Labels[s])
	}
	fmt.Fprintf(b, "} %s_state;\n\n", prefix)
}

func writeFSM(b *strings.Builder, ba *buchi.BA, tables *monitor.Tables, preds *ltlsyntax.PredicateTable, prefix, formula string) {
	fmt.Fprintf(b, "void\n%s_fsm(bool state_stats, unsigned int num_iters)\n{\n", prefix)
	fmt.Fprintf(b, "\tunsigned int choice;\n\tunsigned int iters;\n\n")
	fmt.Fprintf(b, "\t/* Original formula:\n\t * %s\n\t */\n\n", formula)
	fmt.Fprintf(b, "\tfor (iters = 0; iters < num_iters; iters++) {\n")
	fmt.Fprintf(b, "\t\tchoice = nondet_uint();\n\n")
	fmt.Fprintf(b, "\t\tswitch (%s_statevar) {\n", prefix)

	for _, s := range ba.States {
		fmt.Fprintf(b, "\t\tcase %s_state_%d:\n", prefix, tables.Labels[s])
		if len(s.Trans) == 0 {
			fmt.Fprintf(b, "\t\t\tassert(0);\n\t\t\tbreak;\n")
			continue
		}
		choice := 0
		for _, grp := range groupByTarget(s.Trans) {
			var arms []string
			for _, t := range grp.Trans {
				arms = append(arms, formatGuardC(t.Pos, t.Neg, preds, " && "))
			}
			guard := strings.Join(arms, ") || (")
			fmt.Fprintf(b, "\t\t\tif (choice == %d) {\n", choice)
			fmt.Fprintf(b, "\t\t\t\tassert(((%s)));\n", guard)
			fmt.Fprintf(b, "\t\t\t\t%s_statevar = %s_state_%d;\n", prefix, prefix, tables.Labels[grp.To])
			fmt.Fprintf(b, "\t\t\t} else ")
			choice++
		}
		fmt.Fprintf(b, "{\n\t\t\t\tassert(0);\n\t\t\t}\n\t\t\tbreak;\n")
	}
	fmt.Fprintf(b, "\t\t}\n")
	fmt.Fprintf(b, "\t\tif (state_stats)\n\t\t\t%s_visited_states[%s_statevar]++;\n", prefix, prefix)
	fmt.Fprintf(b, "\t}\n}\n\n")
}

func writeAccessTables(b *strings.Builder, tables *monitor.Tables, preds *ltlsyntax.PredicateTable, prefix string) {
	total := len(tables.Stutter)
	fmt.Fprintf(b, "_Bool %s_stutter_accept_table[%d][%d] = {\n", prefix, total, tables.NumStates)
	for _, row := range tables.Stutter {
		fmt.Fprintf(b, "{ ")
		for _, v := range row {
			fmt.Fprintf(b, "%s, ", boolLit(v))
		}
		fmt.Fprintf(b, "},\n")
	}
	fmt.Fprintf(b, "};\n\n")

	fmt.Fprintf(b, "_Bool %s_good_prefix_excluded_states[%d] = { ", prefix, tables.NumStates)
	for _, v := range tables.Optimistic {
		fmt.Fprintf(b, "%s, ", boolLit(v))
	}
	fmt.Fprintf(b, "};\n\n")

	fmt.Fprintf(b, "_Bool %s_bad_prefix_states[%d] = { ", prefix, tables.NumStates)
	for _, v := range tables.Pessimistic {
		fmt.Fprintf(b, "%s, ", boolLit(v))
	}
	fmt.Fprintf(b, "};\n\n")

	fmt.Fprintf(b, "unsigned int\n%s_sym_to_idx(void)\n{\n\tunsigned int idx = 0;\n", prefix)
	for i := 0; i < tables.NumPreds; i++ {
		fmt.Fprintf(b, "\tidx |= (%s) ? %d : 0;\n", cPredName(preds, i), 1<<uint(i))
	}
	fmt.Fprintf(b, "\treturn idx;\n}\n\n")
}

func boolLit(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
