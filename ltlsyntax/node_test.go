package ltlsyntax_test

import (
	"testing"

	"github.com/esbmc/libltl2ba/ltlsyntax"
	"github.com/stretchr/testify/require"
)

func TestIsEqualStructural(t *testing.T) {
	preds := ltlsyntax.NewPredicateTable()
	p := preds.Intern("p", false)
	q := preds.Intern("q", false)

	a := ltlsyntax.Bin(ltlsyntax.KindUntil, ltlsyntax.Lit(p, false), ltlsyntax.Lit(q, false))
	b := ltlsyntax.Bin(ltlsyntax.KindUntil, ltlsyntax.Lit(p, false), ltlsyntax.Lit(q, false))

	require.True(t, ltlsyntax.IsEqual(a, b))
	require.False(t, ltlsyntax.IsEqual(a, ltlsyntax.Lit(p, false)))
}

func TestImpliesReflexiveAndConst(t *testing.T) {
	preds := ltlsyntax.NewPredicateTable()
	p := preds.Intern("p", false)
	lp := ltlsyntax.Lit(p, false)

	require.True(t, ltlsyntax.Implies(lp, lp))
	require.True(t, ltlsyntax.Implies(lp, ltlsyntax.True))
	require.True(t, ltlsyntax.Implies(ltlsyntax.False, lp))
	require.False(t, ltlsyntax.Implies(ltlsyntax.True, lp))
}

func TestImpliesConjunctionDisjunction(t *testing.T) {
	preds := ltlsyntax.NewPredicateTable()
	p := preds.Intern("p", false)
	q := preds.Intern("q", false)
	lp, lq := ltlsyntax.Lit(p, false), ltlsyntax.Lit(q, false)

	and := ltlsyntax.Bin(ltlsyntax.KindAnd, lp, lq)
	or := ltlsyntax.Bin(ltlsyntax.KindOr, lp, lq)

	require.True(t, ltlsyntax.Implies(and, lp))
	require.True(t, ltlsyntax.Implies(lp, or))
	require.False(t, ltlsyntax.Implies(or, lp))
}

func TestPredicateTableInternStable(t *testing.T) {
	preds := ltlsyntax.NewPredicateTable()
	a := preds.Intern("alpha", false)
	b := preds.Intern("beta", false)
	a2 := preds.Intern("alpha", false)

	require.Equal(t, a, a2)
	require.NotEqual(t, a, b)
	require.Equal(t, 2, preds.Count())
	require.Equal(t, "alpha", preds.Name(a))
}

func TestPredicateTableExprFlag(t *testing.T) {
	preds := ltlsyntax.NewPredicateTable()
	id := preds.Intern("x == 1", true)
	require.True(t, preds.IsExpr(id))
}
