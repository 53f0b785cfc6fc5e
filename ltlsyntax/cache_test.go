package ltlsyntax_test

import (
	"testing"

	"github.com/esbmc/libltl2ba/ltlsyntax"
	"github.com/stretchr/testify/require"
)

func TestCacheInternDeduplicates(t *testing.T) {
	preds := ltlsyntax.NewPredicateTable()
	p := preds.Intern("p", false)
	cache := ltlsyntax.NewCache(preds)

	a := cache.Intern(ltlsyntax.Lit(p, false))
	b := cache.Intern(ltlsyntax.Lit(p, false))

	require.Same(t, a, b)
	require.Equal(t, 1, cache.Len())
}

func TestCacheDistinguishesDistinctNodes(t *testing.T) {
	preds := ltlsyntax.NewPredicateTable()
	p := preds.Intern("p", false)
	cache := ltlsyntax.NewCache(preds)

	cache.Intern(ltlsyntax.Lit(p, false))
	cache.Intern(ltlsyntax.Lit(p, true))

	require.Equal(t, 2, cache.Len())
}
