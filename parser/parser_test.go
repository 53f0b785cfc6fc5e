package parser_test

import (
	"testing"

	"github.com/esbmc/libltl2ba/ltlsyntax"
	"github.com/esbmc/libltl2ba/parser"
	"github.com/stretchr/testify/require"
)

func mustNormalize(t *testing.T, src string) (*ltlsyntax.Node, *ltlsyntax.PredicateTable) {
	t.Helper()
	preds := ltlsyntax.NewPredicateTable()
	cache := ltlsyntax.NewCache(preds)
	raw, err := parser.Parse(src, preds)
	require.NoError(t, err)
	return parser.Normalize(raw, cache, preds, true), preds
}

func TestParseLiteralAndConst(t *testing.T) {
	n, _ := mustNormalize(t, "true")
	require.Equal(t, ltlsyntax.KindTrue, n.Kind)

	n, _ = mustNormalize(t, "false")
	require.Equal(t, ltlsyntax.KindFalse, n.Kind)

	n, preds := mustNormalize(t, "p")
	require.Equal(t, ltlsyntax.KindLiteral, n.Kind)
	require.Equal(t, "p", preds.Name(n.Pred))
	require.False(t, n.Neg)
}

func TestNegationPushedToLiteral(t *testing.T) {
	n, _ := mustNormalize(t, "!p")
	require.Equal(t, ltlsyntax.KindLiteral, n.Kind)
	require.True(t, n.Neg)
}

func TestDoubleNegationCancels(t *testing.T) {
	n, _ := mustNormalize(t, "!!p")
	require.Equal(t, ltlsyntax.KindLiteral, n.Kind)
	require.False(t, n.Neg)
}

func TestDeMorganOverAnd(t *testing.T) {
	n, _ := mustNormalize(t, "!(p && q)")
	require.Equal(t, ltlsyntax.KindOr, n.Kind)
	require.Equal(t, ltlsyntax.KindLiteral, n.Left.Kind)
	require.True(t, n.Left.Neg)
}

func TestUntilReleaseDuality(t *testing.T) {
	n, _ := mustNormalize(t, "!(p U q)")
	require.Equal(t, ltlsyntax.KindRelease, n.Kind)
}

func TestEventuallyDesugarsToUntil(t *testing.T) {
	n, _ := mustNormalize(t, "F p")
	require.Equal(t, ltlsyntax.KindUntil, n.Kind)
	require.Equal(t, ltlsyntax.KindTrue, n.Left.Kind)
}

func TestAlwaysDesugarsToRelease(t *testing.T) {
	n, _ := mustNormalize(t, "G p")
	require.Equal(t, ltlsyntax.KindRelease, n.Kind)
	require.Equal(t, ltlsyntax.KindFalse, n.Left.Kind)
}

func TestEventuallySugarAliasAngleBracket(t *testing.T) {
	a, _ := mustNormalize(t, "<>p")
	b, _ := mustNormalize(t, "F p")
	require.True(t, ltlsyntax.IsEqual(a, b))
}

func TestAlwaysSugarAliasBrackets(t *testing.T) {
	a, _ := mustNormalize(t, "[]p")
	b, _ := mustNormalize(t, "G p")
	require.True(t, ltlsyntax.IsEqual(a, b))
}

func TestImpliesDesugars(t *testing.T) {
	n, _ := mustNormalize(t, "p -> q")
	require.Equal(t, ltlsyntax.KindOr, n.Kind)
}

func TestCanonicalDedupesAndSorts(t *testing.T) {
	// One shared predicate table, so p and q get the same ids in both parses.
	preds := ltlsyntax.NewPredicateTable()
	cache := ltlsyntax.NewCache(preds)
	rawA, err := parser.Parse("p && q", preds)
	require.NoError(t, err)
	rawB, err := parser.Parse("q && p", preds)
	require.NoError(t, err)
	a := parser.Normalize(rawA, cache, preds, true)
	b := parser.Normalize(rawB, cache, preds, true)
	require.True(t, ltlsyntax.IsEqual(a, b))
}

func TestCanonicalAbsorbsTrueUnderAnd(t *testing.T) {
	n, _ := mustNormalize(t, "p && true")
	require.Equal(t, ltlsyntax.KindLiteral, n.Kind)
}

func TestCanonicalAbsorbsFalseUnderOr(t *testing.T) {
	n, _ := mustNormalize(t, "p || false")
	require.Equal(t, ltlsyntax.KindLiteral, n.Kind)
}

func TestCanonicalShortCircuitsFalseUnderAnd(t *testing.T) {
	n, _ := mustNormalize(t, "p && false")
	require.Equal(t, ltlsyntax.KindFalse, n.Kind)
}

func TestCanonicalDropsDuplicates(t *testing.T) {
	n, _ := mustNormalize(t, "p || p || q")
	// right-linear: Or(p, q) once duplicate collapsed
	require.Equal(t, ltlsyntax.KindOr, n.Kind)
	require.Equal(t, ltlsyntax.KindLiteral, n.Right.Kind)
}

func TestSimplifyNextConjunction(t *testing.T) {
	n, _ := mustNormalize(t, "X p && X q")
	require.Equal(t, ltlsyntax.KindNext, n.Kind)
	require.Equal(t, ltlsyntax.KindAnd, n.Left.Kind)
}

func TestSimplifyUntilTrueIsTrue(t *testing.T) {
	n, _ := mustNormalize(t, "p U true")
	require.Equal(t, ltlsyntax.KindTrue, n.Kind)
}

func TestSimplifyTrueUntilNext(t *testing.T) {
	n, _ := mustNormalize(t, "F (X p)")
	require.Equal(t, ltlsyntax.KindNext, n.Kind)
}

func TestBraceExpressionPredicate(t *testing.T) {
	n, preds := mustNormalize(t, "{x > 1}")
	require.Equal(t, ltlsyntax.KindLiteral, n.Kind)
	require.True(t, preds.IsExpr(n.Pred))
	require.Equal(t, "{x > 1}", preds.Name(n.Pred))
}

func TestUntilLeftAssociative(t *testing.T) {
	preds := ltlsyntax.NewPredicateTable()
	raw, err := parser.Parse("p U q U r", preds)
	require.NoError(t, err)
	// left-assoc: (p U q) U r
	require.Equal(t, ltlsyntax.KindUntil, raw.Kind)
	require.Equal(t, ltlsyntax.KindUntil, raw.Left.Kind)
}

func TestSyntaxErrorReportsColumn(t *testing.T) {
	preds := ltlsyntax.NewPredicateTable()
	_, err := parser.Parse("p &&", preds)
	require.Error(t, err)
	var perr *parser.Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, 4, perr.Column)
}

func TestUnterminatedBraceExpr(t *testing.T) {
	preds := ltlsyntax.NewPredicateTable()
	_, err := parser.Parse("{x > 1", preds)
	require.Error(t, err)
}

func TestUnexpectedCharacter(t *testing.T) {
	preds := ltlsyntax.NewPredicateTable()
	_, err := parser.Parse("p @ q", preds)
	require.Error(t, err)
}
