/*
Ltl2ba translates a linear temporal logic formula into a never-claim,
C monitor skeleton, or dot graph for the equivalent Büchi automaton.

Usage:

	ltl2ba [flags] (-f "formula" | -F path)

Exactly one of -f/-F must be given; there are no positional arguments.

The flags are:

	-f, --formula STRING
		The LTL formula to translate.

	-F, --file PATH
		Read the LTL formula from the named file instead of -f.

	-a, --no-fjtofj
		Disable the "fj-to-fj" acceptance subsumption trick.

	-c, --no-scc
		Disable SCC-guided acceptance simplification.

	-o, --no-fly-simp
		Disable fly-time (on-the-fly) simplification. Fly-time and
		post-pass simplification run as one pass, which is skipped only
		when -o and -p are both given.

	-p, --no-post-simp
		Disable post-pass automaton simplification (together with -o;
		see above).

	-l, --no-logic-simp
		Disable logical formula simplification.

	-i, --negate
		Negate the formula before translation.

	-d, --verbose
		Dump each intermediate automaton's size to standard error.

	-s, --stats
		Print statistics for each intermediate automaton.

	-O, --output spin|c|dot
		Output syntax. Default: spin.

	-P, --prefix STRING
		Symbol prefix used by the C output. Default: _ltl2ba.
*/
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/esbmc/libltl2ba"
	"github.com/spf13/pflag"
)

// Exit codes per spec.md §6: 0 success, 1 usage error or parse failure.
const (
	exitSuccess = 0
	exitUsage   = 1
)

var (
	flagFormula    = pflag.StringP("formula", "f", "", "LTL formula to translate")
	flagFile       = pflag.StringP("file", "F", "", "read the LTL formula from this file")
	flagNoFJToFJ   = pflag.BoolP("no-fjtofj", "a", false, "disable the fj-to-fj acceptance trick")
	flagNoSCC      = pflag.BoolP("no-scc", "c", false, "disable SCC-based simplification")
	flagNoFlySimp  = pflag.BoolP("no-fly-simp", "o", false, "disable fly-time simplification")
	flagNoPostSimp = pflag.BoolP("no-post-simp", "p", false, "disable post-pass automaton simplification")
	flagNoLogic    = pflag.BoolP("no-logic-simp", "l", false, "disable logical formula simplification")
	flagNegate     = pflag.BoolP("negate", "i", false, "negate the formula before translation")
	flagVerbose    = pflag.BoolP("verbose", "d", false, "dump each intermediate automaton's size to standard error")
	flagStats      = pflag.BoolP("stats", "s", false, "print statistics")
	flagOutput     = pflag.StringP("output", "O", "spin", "output syntax: spin, c, or dot")
	flagPrefix     = pflag.StringP("prefix", "P", "_ltl2ba", "symbol prefix for C output")
	flagHelp       = pflag.BoolP("help", "h", false, "show usage and exit")
)

func main() {
	os.Exit(run())
}

func run() int {
	pflag.Parse()

	if *flagHelp {
		pflag.Usage()
		return exitSuccess
	}

	formula, err := readFormula()
	if err != nil {
		fmt.Fprintln(os.Stderr, "ltl2ba:", err)
		return exitUsage
	}

	format, err := parseFormat(*flagOutput)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ltl2ba:", err)
		return exitUsage
	}

	opts := ltl2ba.DefaultOptions()
	opts.Negate = *flagNegate
	opts.DisableFJToFJ = *flagNoFJToFJ
	opts.DisableSCCSimp = *flagNoSCC
	opts.DisableFlySimp = *flagNoFlySimp
	opts.DisablePostSimp = *flagNoPostSimp
	opts.DisableLogicalSimp = *flagNoLogic
	opts.Verbose = *flagVerbose
	opts.Stats = *flagStats
	opts.Format = format
	opts.Prefix = *flagPrefix
	if opts.Verbose || opts.Stats {
		opts.Logger = log.New(os.Stderr, "", 0)
	}

	result, err := ltl2ba.Translate(formula, opts)
	if err != nil {
		// spec.md §7: the verbose trace (already flushed above via Logger)
		// precedes the fatal diagnostic; there is no partial-success mode.
		fmt.Fprintln(os.Stderr, "ltl2ba:", err)
		return exitUsage
	}

	out, err := result.Render(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ltl2ba:", err)
		return exitUsage
	}
	fmt.Print(out)
	return exitSuccess
}

func readFormula() (string, error) {
	haveF := *flagFormula != ""
	haveCapF := *flagFile != ""
	switch {
	case haveF && haveCapF:
		return "", fmt.Errorf("exactly one of -f/-F must be supplied, not both")
	case haveF:
		return *flagFormula, nil
	case haveCapF:
		data, err := os.ReadFile(*flagFile)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", *flagFile, err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("exactly one of -f/-F must be supplied")
	}
}

func parseFormat(s string) (ltl2ba.OutputFormat, error) {
	switch s {
	case "spin":
		return ltl2ba.FormatSpin, nil
	case "c":
		return ltl2ba.FormatC, nil
	case "dot":
		return ltl2ba.FormatDot, nil
	default:
		return 0, fmt.Errorf("unknown output syntax %q (want spin, c, or dot)", s)
	}
}
