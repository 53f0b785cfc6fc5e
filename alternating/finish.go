package alternating

import (
	"github.com/esbmc/libltl2ba/bitset"
)

// finish converts the builder's plain-int raw transitions into bitset-backed
// Trans values now that both the predicate universe (b.preds.Count()) and
// the VWAA state universe (len(b.labels)) are final, and assembles the
// VWAA's Final set from the discovery order of U-subformula states
// (original_source/alternating.c builds the final set in the same order it
// assigns node ids, so replaying finalOrder reproduces that numbering).
func (b *Builder) finish(initRaw []rawTrans) *VWAA {
	n := len(b.labels)
	v := &VWAA{
		Preds:  b.preds,
		States: make([]*State, n),
		Final:  bitset.New(n),
	}
	p := b.preds.Count()

	toBitset := func(raw rawTrans) Trans {
		return Trans{
			Pos: intsToBitset(raw.pos, p),
			Neg: intsToBitset(raw.neg, p),
			To:  intsToBitset(raw.to, n),
		}
	}

	v.States[0] = &State{ID: 0}
	for _, raw := range initRaw {
		v.Init = append(v.Init, toBitset(raw))
	}
	for id := 1; id < n; id++ {
		st := &State{ID: id, Label: b.labels[id]}
		for _, raw := range b.trans[id] {
			st.Trans = append(st.Trans, toBitset(raw))
		}
		v.States[id] = st
	}
	for _, id := range b.finalOrder {
		v.Final.Add(id)
	}
	return v
}

func intsToBitset(xs []int, universe int) *bitset.Set {
	s := bitset.New(universe)
	for _, x := range xs {
		s.Add(x)
	}
	return s
}
