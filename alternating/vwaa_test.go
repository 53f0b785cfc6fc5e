package alternating_test

import (
	"testing"

	"github.com/esbmc/libltl2ba/alternating"
	"github.com/esbmc/libltl2ba/ltlsyntax"
	"github.com/esbmc/libltl2ba/parser"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, src string) (*alternating.VWAA, *ltlsyntax.PredicateTable) {
	t.Helper()
	preds := ltlsyntax.NewPredicateTable()
	cache := ltlsyntax.NewCache(preds)
	raw, err := parser.Parse(src, preds)
	require.NoError(t, err)
	root := parser.Normalize(raw, cache, preds, true)
	v := alternating.Build(root, preds)
	alternating.Simplify(v)
	return v, preds
}

func TestBuildLiteralHasOneState(t *testing.T) {
	v, _ := build(t, "p")
	require.Len(t, v.Init, 1)
	require.True(t, v.Init[0].To.Has(1))
	require.Equal(t, 1, v.NumStates())
}

func TestBuildNextAllocatesOneState(t *testing.T) {
	v, _ := build(t, "X p")
	require.Equal(t, 2, v.NumStates())
	require.Equal(t, ltlsyntax.KindNext, v.States[1].Label.Kind)
	require.Len(t, v.Init, 1)
	require.True(t, v.Init[0].To.Has(1))
}

func TestBuildUntilMarksFinalState(t *testing.T) {
	v, _ := build(t, "p U q")
	require.Equal(t, 1, v.NumStates())
	require.True(t, v.Final.Has(1))
}

func TestBuildReleaseDoesNotMarkFinal(t *testing.T) {
	v, _ := build(t, "p V q")
	require.Equal(t, 1, v.NumStates())
	require.True(t, v.Final.Empty())
}

func TestBuildAndOfLiteralsStaysOneInitialTrans(t *testing.T) {
	v, _ := build(t, "p && q")
	require.Equal(t, 2, v.NumStates())
	require.Len(t, v.Init, 1)
	require.Equal(t, 2, v.Init[0].To.Len())
}

func TestBuildOrOfLiteralsTwoInitialTrans(t *testing.T) {
	v, _ := build(t, "p || q")
	require.Equal(t, 2, v.NumStates())
	require.Len(t, v.Init, 2)
}

func TestSimplifyKeepsBothNestedStatesReachable(t *testing.T) {
	v, _ := build(t, "X (p U q)")
	// X allocates one state, (p U q) allocates one more: both reachable.
	require.Equal(t, 2, v.NumStates())
}

func TestBuildSharesStateForRepeatedSubformula(t *testing.T) {
	v, _ := build(t, "X p && X p")
	require.Equal(t, 2, v.NumStates())
}
