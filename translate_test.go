package ltl2ba_test

import (
	"strings"
	"testing"

	"github.com/esbmc/libltl2ba"
	"github.com/stretchr/testify/require"
)

func TestTranslateRejectsEmptyFormula(t *testing.T) {
	_, err := ltl2ba.Translate("", ltl2ba.DefaultOptions())
	require.ErrorIs(t, err, ltl2ba.ErrEmptyFormula)
}

func TestTranslateRejectsSyntaxError(t *testing.T) {
	_, err := ltl2ba.Translate("p U", ltl2ba.DefaultOptions())
	require.Error(t, err)
}

// TestTrueIsOneAcceptingSelfLoop is boundary scenario 1 of spec.md §8: a BA
// with one state, a self-loop under the universal guard, accepting.
func TestTrueIsOneAcceptingSelfLoop(t *testing.T) {
	res, err := ltl2ba.Translate("true", ltl2ba.DefaultOptions())
	require.NoError(t, err)
	ba := res.BA
	require.Len(t, ba.Init.Trans, 1)
	to := ba.Init.Trans[0].To
	require.True(t, to.IsAccepting(ba.Accept))
	require.Len(t, to.Trans, 1)
	require.Equal(t, to, to.Trans[0].To)
}

// TestFalseIsEmpty is boundary scenario 2: an empty BA (no transitions out
// of the synthetic initial state).
func TestFalseIsEmpty(t *testing.T) {
	res, err := ltl2ba.Translate("false", ltl2ba.DefaultOptions())
	require.NoError(t, err)
	require.Empty(t, res.BA.Init.Trans)
}

// TestGloballyFinallyHasOneAcceptingLayer is boundary scenario 6: G F p has
// exactly two VWAA temporal states, one TGBA acceptance component, and a
// BA with one accepting layer.
func TestGloballyFinallyHasOneAcceptingLayer(t *testing.T) {
	res, err := ltl2ba.Translate("G F p", ltl2ba.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 2, res.VWAA.NumStates())
	require.Equal(t, 1, res.TGBA.K)
	require.Equal(t, 1, res.BA.Accept)
}

// TestNegateOptionFlipsTheFormula exercises D8: -i negates before
// normalization, so "G p" negated behaves like "F !p".
func TestNegateOptionFlipsTheFormula(t *testing.T) {
	opts := ltl2ba.DefaultOptions()
	opts.Negate = true
	negated, err := ltl2ba.Translate("G p", opts)
	require.NoError(t, err)

	plain, err := ltl2ba.Translate("F !p", ltl2ba.DefaultOptions())
	require.NoError(t, err)

	require.Equal(t, plain.BA.Accept, negated.BA.Accept)
	require.Equal(t, len(plain.BA.States), len(negated.BA.States))
}

// TestRoundTripDoubleNegationAgrees exercises spec.md §8's "translate(φ) and
// translate(¬¬φ) produce the same BA" law, up to state-count/layer shape.
func TestRoundTripDoubleNegationAgrees(t *testing.T) {
	a, err := ltl2ba.Translate("p U q", ltl2ba.DefaultOptions())
	require.NoError(t, err)
	b, err := ltl2ba.Translate("!(!(p U q))", ltl2ba.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, a.BA.Accept, b.BA.Accept)
	require.Equal(t, len(a.BA.States), len(b.BA.States))
}

func TestRenderSpinIncludesFormulaComment(t *testing.T) {
	res, err := ltl2ba.Translate("G p", ltl2ba.DefaultOptions())
	require.NoError(t, err)
	out, err := res.Render(ltl2ba.DefaultOptions())
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "never {"))
	require.Contains(t, out, "G p")
}

func TestRenderDot(t *testing.T) {
	res, err := ltl2ba.Translate("F p", ltl2ba.DefaultOptions())
	require.NoError(t, err)
	opts := ltl2ba.DefaultOptions()
	opts.Format = ltl2ba.FormatDot
	out, err := res.Render(opts)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "digraph G {"))
}

func TestRenderCMonitor(t *testing.T) {
	res, err := ltl2ba.Translate("G p", ltl2ba.DefaultOptions())
	require.NoError(t, err)
	opts := ltl2ba.DefaultOptions()
	opts.Format = ltl2ba.FormatC
	opts.Prefix = "mon"
	out, err := res.Render(opts)
	require.NoError(t, err)
	require.Contains(t, out, "mon_statevar")
	require.Contains(t, out, "LTL_BAD")
}

func TestDisablingEverySimplifierStillTranslates(t *testing.T) {
	opts := ltl2ba.Options{
		Format:          ltl2ba.FormatSpin,
		Prefix:          "_ltl2ba",
		Logger:          nil,
		DisableFJToFJ:   true,
		DisableSCCSimp:  true,
		DisableFlySimp:  true,
		DisablePostSimp: true,
		DisableLogicalSimp: true,
	}
	res, err := ltl2ba.Translate("(p U q) && X r", opts)
	require.NoError(t, err)
	require.NotNil(t, res.BA)
}
