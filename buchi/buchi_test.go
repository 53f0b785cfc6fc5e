package buchi_test

import (
	"testing"

	"github.com/esbmc/libltl2ba/alternating"
	"github.com/esbmc/libltl2ba/buchi"
	"github.com/esbmc/libltl2ba/generalized"
	"github.com/esbmc/libltl2ba/ltlsyntax"
	"github.com/esbmc/libltl2ba/parser"
	"github.com/stretchr/testify/require"
)

func buildBA(t *testing.T, src string) *buchi.BA {
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
	return ba
}

func TestTrueIsOneAcceptingSelfLoop(t *testing.T) {
	ba := buildBA(t, "true")
	require.Len(t, ba.Init.Trans, 1)
	to := ba.Init.Trans[0].To
	require.Equal(t, ba.Accept, to.Final, "the only reachable state must be on the accepting layer")
	require.Len(t, to.Trans, 1)
	require.Equal(t, to, to.Trans[0].To)
}

func TestEventuallyPHasAnAcceptingLayer(t *testing.T) {
	ba := buildBA(t, "F p")
	require.Equal(t, 1, ba.Accept)
	found := false
	for _, s := range ba.States {
		if s.Final == ba.Accept {
			found = true
		}
	}
	require.True(t, found, "F p must reach the accepting layer")
}

func TestNoDuplicateIDFinalPairs(t *testing.T) {
	ba := buildBA(t, "p U q")
	seen := map[[2]int]bool{}
	for _, s := range ba.States {
		if s == ba.Init {
			continue
		}
		key := [2]int{s.ID, s.Final}
		require.False(t, seen[key], "duplicate (id, final) pair after simplification")
		seen[key] = true
	}
}

func TestGloballyPHasOnlyTheAcceptingLayerWhenNoUntil(t *testing.T) {
	ba := buildBA(t, "G p")
	require.Equal(t, 0, ba.Accept)
	for _, s := range ba.States {
		require.Equal(t, 0, s.Final)
	}
}
