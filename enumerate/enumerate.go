// Package enumerate walks the accumulated constraint matrix H as an
// implicit binary decision tree over alpha_1..alpha_n, producing every
// full assignment consistent with it.
package enumerate

import (
	"sat3gf2/matrix"
	"sat3gf2/poly"
)

// evalRow evaluates row H[row] (0-indexed, a function of alpha_1..alpha_(row+1))
// under assign, a 1-indexed boolean vector (assign[0] is unused).
func evalRow(H *matrix.Row, row, n int, assign []bool) int {
	p := H.Get(row)
	result := 0
	for _, mono := range p.Monomials() {
		vars := poly.Decode(mono, n)
		prod := 1
		for j := 1; j <= n; j++ {
			if vars[j] == 1 {
				if !assign[j] {
					prod = 0
					break
				}
			}
		}
		result = (result + prod) % 2
	}
	return result
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Solutions returns the full assignments of alpha_1..alpha_n reached by the
// decision-tree walk over H, in the order it visits them. A variable is
// branched both ways whenever its row evaluates differently at 0 and at 1;
// otherwise it is fixed to the row's common value.
func Solutions(H *matrix.Row, n int) [][]bool {
	var out [][]bool
	assign := make([]bool, n+1)

	var descend func(idx int)
	descend = func(idx int) {
		row := idx // H's row index for variable idx+1

		assign[idx+1] = false
		hLeft := evalRow(H, row, n, assign)
		assign[idx+1] = true
		hRight := evalRow(H, row, n, assign)

		record := func(val bool) {
			assign[idx+1] = val
			if idx+1 == n {
				sol := make([]bool, n)
				copy(sol, assign[1:n+1])
				out = append(out, sol)
				return
			}
			descend(idx + 1)
		}

		switch {
		case hLeft != hRight:
			record(false)
			record(true)
		case hLeft == boolInt(false):
			record(false)
		default:
			record(true)
		}
	}

	if n > 0 {
		descend(0)
	}
	return out
}
