package solve

import (
	"fmt"

	"sat3gf2/clause"
	"sat3gf2/matrix"
	"sat3gf2/poly"
	"sat3gf2/trace"
)

// Stats records how much recursive conflict-resolution work the merger
// performed while folding clauses into the constraint system, together with
// the shape of the resulting matrix.
type Stats struct {
	MaxRecDepth       int
	TotalRecDepth     int
	PerClauseRecDepth []int

	// RowOccupancy[k] is the number of monomials in row k of the final H,
	// i.e. how much of row k's constraint survived the folding process.
	RowOccupancy []int
}

// Result is the accumulated constraint system after all clauses have been
// folded in, together with whether it remains satisfiable.
type Result struct {
	Satisfiable bool
	N           int
	H           *System
	Stats       Stats
}

func rowOccupancy(H *matrix.Row, n int) []int {
	out := make([]int, n)
	for k := 0; k < n; k++ {
		out[k] = H.Get(k).Len()
	}
	return out
}

func maxLit(l1, l2, l3 int) int {
	m := 2
	for _, l := range []int{l1, l2, l3} {
		a := l
		if a < 0 {
			a = -a
		}
		if a > m {
			m = a
		}
	}
	return m
}

// Run folds every clause into a single accumulated row matrix, in order,
// short-circuiting as soon as a clause introduces an unsatisfiable
// constraint. clauses holds one [3]int literal triple per clause; n is the
// number of Boolean variables.
func Run(n int, clauses [][3]int, tr *trace.Tracer) (*Result, error) {
	rowConstraint := make([]bool, n)
	sys := NewSystem()
	stats := Stats{PerClauseRecDepth: make([]int, 0, len(clauses))}

	if len(clauses) == 0 {
		for k := 0; k < n; k++ {
			sys.H.Set(k, poly.Var(k+1, n))
		}
		stats.RowOccupancy = rowOccupancy(sys.H, n)
		return &Result{Satisfiable: true, N: n, H: sys, Stats: stats}, nil
	}

	l1, l2, l3 := clauses[0][0], clauses[0][1], clauses[0][2]
	row0, F0, G0, H0, err := clause.Encode(l1, l2, l3, n)
	if err != nil {
		return nil, fmt.Errorf("clause 0: %w", err)
	}
	sys.H, sys.F, sys.G = H0, F0, G0
	rowConstraint[row0] = true
	tr.Debugf("clause 0 installs row %d\n", row0)

	// Every row not touched by clause 0 defaults to the trivial
	// stipulation alpha_(k+1) = alpha_(k+1).
	for k := 0; k < n; k++ {
		if !sys.H.Has(k) {
			sys.H.Set(k, poly.Var(k+1, n))
		}
	}

	for c := 1; c < len(clauses); c++ {
		l1, l2, l3 := clauses[c][0], clauses[c][1], clauses[c][2]
		row, F2, G2, H2, err := clause.Encode(l1, l2, l3, n)
		if err != nil {
			return nil, fmt.Errorf("clause %d: %w", c, err)
		}

		curLitteral := maxLit(l1, l2, l3)

		// Re-express H1's own rows below curLitteral against themselves,
		// then rebuild F1 and G1 from the ORIGINAL (pre-simplification)
		// H1 — not from this simplified copy. See DESIGN.md.
		H3 := SimplifyMatrix(sys.H, n, curLitteral)
		sys.F, sys.G = SplitRows(sys.H, n)

		// The incoming clause's own new row is simplified against H1 and
		// installed into H3 at its row, overwriting whatever SimplifyMatrix
		// put there; H3 then entirely replaces the clause's own H2.
		v := SimplifyVector(sys.H, H2.Get(row), row, n)
		H3.Set(row, v)
		H2 = H3
		F2, G2 = SplitRows(H2, n)

		sat, lev := Merge(sys, H2, F2, G2, rowConstraint, row, n, 0)
		stats.PerClauseRecDepth = append(stats.PerClauseRecDepth, lev)
		stats.TotalRecDepth += lev
		if lev > stats.MaxRecDepth {
			stats.MaxRecDepth = lev
		}
		tr.Infof("clause %d merged at row %d, recursion depth %d, sat=%v\n", c, row, lev, sat)

		if !sat {
			stats.RowOccupancy = rowOccupancy(sys.H, n)
			return &Result{Satisfiable: false, N: n, H: sys, Stats: stats}, nil
		}
	}

	stats.RowOccupancy = rowOccupancy(sys.H, n)
	return &Result{Satisfiable: true, N: n, H: sys, Stats: stats}, nil
}
