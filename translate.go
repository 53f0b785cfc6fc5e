package ltl2ba

import (
	"github.com/esbmc/libltl2ba/alternating"
	"github.com/esbmc/libltl2ba/buchi"
	"github.com/esbmc/libltl2ba/generalized"
	"github.com/esbmc/libltl2ba/ltlsyntax"
	"github.com/esbmc/libltl2ba/parser"
	"github.com/esbmc/libltl2ba/scc"
)

// Result is the finished output of one Translate call: the degeneralized
// Büchi automaton plus everything an output adapter needs to render it
// (the predicate table) and everything a -d verbose dump wants to show
// (the intermediate VWAA/TGBA).
type Result struct {
	Formula string // the original, pre-normalization formula text

	Preds *ltlsyntax.PredicateTable
	VWAA  *alternating.VWAA
	TGBA  *generalized.TGBA
	BA    *buchi.BA
}

// Translate runs the full pipeline of spec.md §2 over formula: parse,
// normalize, build the VWAA (C4), cross-product it into a TGBA (C5), run
// the SCC analyzer (C6), degeneralize into a BA (C7), and return the
// result for an output adapter (C9) to render. Grounded on
// original_source/main.c's translate() driver, which calls the same four
// stages (parse/tl_parse, mk_alternating, mk_generalized, mk_buchi) in the
// same order behind one entry point.
func Translate(formula string, opts Options) (*Result, error) {
	if formula == "" {
		return nil, ErrEmptyFormula
	}
	logger := opts.Logger
	if logger == nil {
		logger = nopLogger{}
	}

	preds := ltlsyntax.NewPredicateTable()
	raw, err := parser.Parse(formula, preds)
	if err != nil {
		return nil, err
	}

	// D8: -i negates the formula immediately after parsing, before
	// normalization (original_source/main.c negates right after tl_parse).
	if opts.Negate {
		raw = ltlsyntax.Un(ltlsyntax.KindNot, raw)
	}

	cache := ltlsyntax.NewCache(preds)
	root := parser.Normalize(raw, cache, preds, !opts.DisableLogicalSimp)
	if opts.Stats {
		logger.Printf("normalized formula: %d hash-consed nodes, %d predicates", cache.Len(), preds.Count())
	}

	v := alternating.Build(root, preds)
	if !(opts.DisableFlySimp && opts.DisablePostSimp) {
		alternating.Simplify(v)
	}
	if opts.Verbose {
		logger.Printf("VWAA: %d states", v.NumStates())
	}
	if opts.Stats {
		logger.Printf("VWAA: %d states, %d acceptance obligations", v.NumStates(), v.Final.Len())
	}

	g := generalized.BuildWithOptions(v, opts.DisableFJToFJ)
	var badSCC func(int) bool
	if !opts.DisableSCCSimp {
		badSCC = scc.Tag(g)
	}
	if !(opts.DisableFlySimp && opts.DisablePostSimp) {
		generalized.Simplify(g, badSCC)
	}
	if opts.Verbose {
		logger.Printf("TGBA: %d states, %d acceptance components", len(g.States), g.K)
	}
	if opts.Stats {
		logger.Printf("TGBA: %d states, %d acceptance components", len(g.States), g.K)
	}

	ba := buchi.Build(g)
	if !(opts.DisableFlySimp && opts.DisablePostSimp) {
		buchi.Simplify(ba)
	}
	if opts.Verbose {
		logger.Printf("BA: %d states, accepting layer %d", len(ba.States), ba.Accept)
	}
	if opts.Stats {
		logger.Printf("BA: %d states", len(ba.States))
	}

	return &Result{
		Formula: formula,
		Preds:   preds,
		VWAA:    v,
		TGBA:    g,
		BA:      ba,
	}, nil
}
