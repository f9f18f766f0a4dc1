// Package solve implements the simplifier, the clause merger and the
// driver loop that accumulate per-clause constraints into a single row
// matrix H.
package solve

import (
	"sat3gf2/matrix"
	"sat3gf2/poly"
)

// SimplifyVector eliminates references to alpha_1..alpha_curRow from v
// using the earlier rows of H: row j is H's stipulated value of
// alpha_(j+1) in terms of alpha_1..alpha_j, so this substitutes that
// stipulation into v, row by row, in increasing order of j.
func SimplifyVector(H *matrix.Row, v *poly.Poly, curRow, n int) *poly.Poly {
	out := v.Clone()
	for j := 0; j < curRow; j++ {
		hj := H.Get(j)
		i0, i1 := poly.Split(out, j+1, n)
		if hj.Len() > 0 {
			sum := poly.Add(i1, i0)
			out = poly.Add(poly.Mult(sum, hj, n), i0)
		} else {
			out = i0
		}
	}
	return out
}

// SimplifyMatrix re-expresses every row below upTo against the earlier
// rows of H, using H's own (pre-simplification) rows as the substitution
// source throughout — each row is simplified from H's original state, not
// from the partially-rewritten output. The first row that gets simplified
// is, at the end, re-copied from H unchanged: a quirk inherited from the
// original implementation (see DESIGN.md) that this port preserves.
func SimplifyMatrix(H *matrix.Row, n, upTo int) *matrix.Row {
	out := matrix.New()
	firstRow := -1
	for curRow := 0; curRow < n; curRow++ {
		if H.Get(curRow).Len() > 0 && curRow < upTo {
			out.Set(curRow, SimplifyVector(H, H.Get(curRow), curRow, n))
			if firstRow == -1 {
				firstRow = curRow
			}
		} else {
			out.Set(curRow, poly.New())
		}
	}
	if firstRow != -1 {
		out.Set(firstRow, H.Get(firstRow).Clone())
	}
	return out
}

// SplitRows rebuilds F and G for every row 0..n-1 of H by projecting each
// row's own polynomial at its own variable (row r against alpha_(r+1)).
func SplitRows(H *matrix.Row, n int) (F, G *matrix.Row) {
	F, G = matrix.New(), matrix.New()
	for r := 0; r < n; r++ {
		i0, i1 := poly.Split(H.Get(r), r+1, n)
		F.Set(r, i0)
		G.Set(r, i1)
	}
	return F, G
}
