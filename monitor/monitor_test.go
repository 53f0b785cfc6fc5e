package monitor_test

import (
	"testing"

	"github.com/esbmc/libltl2ba/alternating"
	"github.com/esbmc/libltl2ba/buchi"
	"github.com/esbmc/libltl2ba/generalized"
	"github.com/esbmc/libltl2ba/ltlsyntax"
	"github.com/esbmc/libltl2ba/monitor"
	"github.com/esbmc/libltl2ba/parser"
	"github.com/stretchr/testify/require"
)

func buildBA(t *testing.T, src string) (*buchi.BA, int) {
	t.Helper()
	preds := ltlsyntax.NewPredicateTable()
	cache := ltlsyntax.NewCache(preds)
	raw, err := parser.Parse(src, preds)
	require.NoError(t, err)
	root := parser.Normalize(raw, cache, preds, true)
	v := alternating.Build(root, preds)
	alternating.Simplify(v)
	g := generalized.Build(v)
	generalized.Simplify(g, nil)
	ba := buchi.Build(g)
	buchi.Simplify(ba)
	return ba, preds.Count()
}

func TestTrueIsAlwaysAcceptingUnderEverySymbol(t *testing.T) {
	ba, numPreds := buildBA(t, "true")
	tables := monitor.Compute(ba, numPreds)
	initLabel := tables.Labels[ba.Init]
	for _, accepting := range tables.Stutter {
		require.True(t, accepting[initLabel])
	}
	require.True(t, tables.Optimistic[initLabel])
	require.True(t, tables.Pessimistic[initLabel])
}

func TestGloballyPIsOptimisticButNotPessimisticAccepting(t *testing.T) {
	ba, numPreds := buildBA(t, "G p")
	tables := monitor.Compute(ba, numPreds)
	initLabel := tables.Labels[ba.Init]
	// "G p" has no Until obligations (Accept == 0), so every reachable state
	// sits on the lone accepting layer and the always-p word keeps it live;
	// the always-!p word kills every run, so not every word is accepted.
	require.True(t, tables.Optimistic[initLabel])
	require.False(t, tables.Pessimistic[initLabel])
}

func TestEventuallyPHasAStutterLetterThatNeverAccepts(t *testing.T) {
	ba, numPreds := buildBA(t, "F p")
	tables := monitor.Compute(ba, numPreds)
	initLabel := tables.Labels[ba.Init]
	// Always-!p can never discharge the "eventually" obligation.
	found := false
	for _, accepting := range tables.Stutter {
		if !accepting[initLabel] {
			found = true
		}
	}
	require.True(t, found, "F p must have at least one rejecting stutter letter")
}

func TestPessimisticNeverExceedsOptimistic(t *testing.T) {
	ba, numPreds := buildBA(t, "p U q")
	tables := monitor.Compute(ba, numPreds)
	for label := range ba.States {
		if tables.Pessimistic[label] {
			require.True(t, tables.Optimistic[label], "pessimistic acceptance must imply optimistic acceptance")
		}
	}
}
