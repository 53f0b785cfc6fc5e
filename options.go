package ltl2ba

// OutputFormat selects which of the three emitted syntaxes spec.md §6
// names Translate (by way of a cmd/ltl2ba-style caller) should produce.
type OutputFormat int

const (
	// FormatSpin emits a Spin never-claim (spec.md §6's default, -O spin).
	FormatSpin OutputFormat = iota
	// FormatC emits a free-standing C monitor skeleton (-O c).
	FormatC
	// FormatDot emits a dot digraph (-O dot).
	FormatDot
)

// Options controls one Translate run: every CLI flag from spec.md §6 has a
// field here, mirroring meta.Config's "one struct per run, no globals"
// shape (meta/config.go) rather than the reference translator's process-
// wide global flags (original_source/main.c's `generate_trans`, `cflag`,
// ...).
type Options struct {
	// Negate translates ¬φ instead of φ (-i, D8 in SPEC_FULL.md).
	Negate bool

	// DisableFJToFJ disables the "second round" acceptance-subsumption
	// optimization in is_final (-a, spec.md §4.3).
	DisableFJToFJ bool

	// DisableSCCSimp disables SCC-guided acceptance-loosening during TGBA
	// simplification (-c, spec.md §4.3). The BA simplifier's trivial-SCC
	// tagging runs regardless.
	DisableSCCSimp bool

	// DisableFlySimp and DisablePostSimp (-o, -p, spec.md §4.2-§4.4) gate
	// the VWAA/TGBA/BA simplifiers, which run fly-time and post-pass
	// reductions (transition subsumption, state equivalence merging) as one
	// combined pass per automaton after construction. That pass is skipped
	// only when both fields are set; either one alone changes nothing.
	DisableFlySimp bool

	// DisablePostSimp: see DisableFlySimp.
	DisablePostSimp bool

	// DisableLogicalSimp disables the algebraic rewrite-law simplifier
	// that runs during normalization (-l, spec.md §4.1, parser.Simplify).
	DisableLogicalSimp bool

	// Format selects the emitted syntax (-O spin|c|dot). Default FormatSpin.
	Format OutputFormat

	// Prefix is the symbol prefix used by the C output adapter (-P,
	// default "_ltl2ba").
	Prefix string

	// Verbose logs each intermediate automaton's size through Logger (-d,
	// spec.md §6/§7: flushed before any fatal diagnostic).
	Verbose bool

	// Stats reports size statistics for each intermediate automaton
	// through Logger (-s).
	Stats bool

	// Logger receives verbose/stats output. DefaultOptions sets this to a
	// no-op logger; callers wanting -d/-s behavior supply one (cmd/ltl2ba
	// wires a *log.Logger, following the teacher's plain stdlib logging
	// convention, noted in DESIGN.md since no third-party structured
	// logger appears anywhere in the retrieval pack's core libraries).
	Logger Logger
}

// DefaultOptions returns the defaults spec.md §6 documents: every
// simplifier enabled, no negation, Spin output, "_ltl2ba" prefix, quiet.
func DefaultOptions() Options {
	return Options{
		Format: FormatSpin,
		Prefix: "_ltl2ba",
		Logger: nopLogger{},
	}
}
