package solve

import (
	"sat3gf2/matrix"
	"sat3gf2/poly"
)

// System bundles the three row matrices a merge accumulates into: H is the
// accumulated satisfaction polynomial per row, F and G its alpha_(r+1)=0
// and alpha_(r+1)=1 projections for row r.
type System struct {
	H, F, G *matrix.Row
}

// NewSystem returns an empty accumulator with no rows.
func NewSystem() *System {
	return &System{H: matrix.New(), F: matrix.New(), G: matrix.New()}
}

// Merge folds the single-row clause contribution (H2, F2, G2 at row id)
// into sys, mutating it in place, and reports whether the combined system
// remains satisfiable together with the recursion depth this merge reached.
//
// If row id is still free (rowConstraint[id] is false), the clause's row is
// installed directly (Case A). Otherwise the two constraints on row id must
// be reconciled (Case B): a new (F, G, H) triple is derived for the row via
// the resolvent formulas, and any residual constraint this reconciliation
// implies on a lower-indexed row is propagated there recursively.
func Merge(sys *System, H2, F2, G2 *matrix.Row, rowConstraint []bool, id, n, lev int) (bool, int) {
	if !rowConstraint[id] {
		sys.H.Set(id, H2.Get(id).Clone())
		sys.F.Set(id, F2.Get(id).Clone())
		sys.G.Set(id, G2.Get(id).Clone())
		rowConstraint[id] = true
		return true, lev
	}

	P1, P2 := sys.F.Get(id), F2.Get(id)
	Q1, Q2 := sys.G.Get(id), G2.Get(id)

	p1p2 := poly.Add(P1, P2)
	q1q2 := poly.Add(Q1, Q2)
	p1xp2 := poly.Mult(P1, P2, n)
	q1xq2 := poly.Mult(Q1, Q2, n)

	Fnew := poly.Add(poly.Mult(p1p2, q1xq2, n), p1xp2)
	Gnew := poly.Add(poly.Add(poly.Mult(q1q2, p1p2, n), poly.Mult(q1q2, p1xp2, n)), q1xq2)

	alpha := poly.Var(id+1, n)
	onePlusAlpha := poly.Add(poly.One(), alpha)
	Hnew := poly.Add(poly.Mult(onePlusAlpha, Fnew, n), poly.Mult(alpha, Gnew, n))

	// I is the resolvent's residual: nonzero means the merge at row id
	// imposes an additional constraint on some lower-indexed row.
	I := poly.Mult(p1p2, q1q2, n)

	sys.H.Set(id, Hnew)
	sys.F.Set(id, Fnew)
	sys.G.Set(id, Gnew)

	maxRowI := I.HighestVariable(n)
	J := SimplifyVector(sys.H, I, maxRowI, n)
	if J.IsEmpty() {
		return true, lev
	}

	kstar := J.HighestVariable(n)
	if kstar == 0 {
		// J reduces to the constant polynomial "1": an unconditional
		// contradiction, no row left to propagate it to.
		return false, lev
	}
	J = poly.Add(J, sys.H.Get(kstar-1))

	i0, i1 := poly.Split(J, kstar, n)
	H2p, F2p, G2p := matrix.New(), matrix.New(), matrix.New()
	H2p.Set(kstar-1, J)
	F2p.Set(kstar-1, i0)
	G2p.Set(kstar-1, i1)
	sys.H.Delete(kstar - 1)

	return Merge(sys, H2p, F2p, G2p, rowConstraint, kstar-1, n, lev+1)
}
