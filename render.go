package ltl2ba

import (
	"fmt"

	"github.com/esbmc/libltl2ba/monitor"
	"github.com/esbmc/libltl2ba/output"
)

// Render emits r in the syntax named by opts.Format (spec.md §6: spin, c,
// or dot), mirroring original_source/main.c's dispatch over the -O flag to
// print_spin_buchi/print_c_buchi/print_dot_buchi.
func (r *Result) Render(opts Options) (string, error) {
	switch opts.Format {
	case FormatSpin:
		return output.Spin(r.BA, r.Formula, r.Preds), nil
	case FormatDot:
		return output.Dot(r.BA, r.Preds), nil
	case FormatC:
		prefix := opts.Prefix
		if prefix == "" {
			prefix = "_ltl2ba"
		}
		tables := monitor.Compute(r.BA, r.Preds.Count())
		return output.C(r.BA, tables, r.Preds, prefix, r.Formula), nil
	default:
		return "", fmt.Errorf("ltl2ba: unknown output format %d", opts.Format)
	}
}
