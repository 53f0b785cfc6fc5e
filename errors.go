// Package ltl2ba orchestrates the full LTL-to-Büchi translation pipeline:
// parse → normalize → VWAA → TGBA → BA → output, wiring together the
// per-stage packages (parser, alternating, generalized, scc, buchi,
// monitor, output) behind the single entry point Translate. Grounded on
// original_source/main.c's `main`/`translate` driver, which calls the same
// stages in the same order behind a single CLI frontend.
package ltl2ba

import "errors"

// Sentinel errors. ErrEmptyFormula is the only one: it covers a caller
// passing no formula (the Go-API equivalent of giving neither -f nor -F).
// End of input where an operand is required is reported by the parser as a
// *parser.Error instead.
var (
	// ErrEmptyFormula is returned by Translate when called with an empty
	// formula string; spec.md §6 requires exactly one formula per run.
	ErrEmptyFormula = errors.New("ltl2ba: empty formula")
)
