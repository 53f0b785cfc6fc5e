package scc_test

import (
	"testing"

	"github.com/esbmc/libltl2ba/alternating"
	"github.com/esbmc/libltl2ba/generalized"
	"github.com/esbmc/libltl2ba/ltlsyntax"
	"github.com/esbmc/libltl2ba/parser"
	"github.com/esbmc/libltl2ba/scc"
	"github.com/stretchr/testify/require"
)

func buildTGBA(t *testing.T, src string) *generalized.TGBA {
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
	return g
}

func TestTagAssignsEverySCCABooleanBadness(t *testing.T) {
	g := buildTGBA(t, "G F p")
	bad := scc.Tag(g)
	for _, s := range g.States {
		_ = bad(s.Incoming) // must not panic for any tagged id
	}
}

func TestTagWithNoAcceptanceComponentsIsNeverBad(t *testing.T) {
	g := buildTGBA(t, "p V q")
	require.Equal(t, 0, g.K)
	bad := scc.Tag(g)
	for _, s := range g.States {
		require.False(t, bad(s.Incoming))
	}
}
