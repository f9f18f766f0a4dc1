// Package clause turns a single 3-literal CNF clause into the (F, G, H)
// row-matrix triple the merger consumes: H is the clause's full
// satisfaction polynomial, F its alpha_x3=0 projection, G its alpha_x3=1
// projection, anchored at the variable of the clause's third literal.
package clause

import (
	"fmt"
	"math/big"

	"sat3gf2/matrix"
	"sat3gf2/poly"
)

func triple(i1, i2, i3, n int) *big.Int {
	return poly.EncodeLiteralTriple(i1, i2, i3, n)
}

func addElem(m *matrix.Row, r int, idx *big.Int) {
	p := poly.New()
	if m.Has(r) {
		p = m.Get(r)
	}
	p.XORInsert(idx)
	m.Set(r, p)
}

func absSign(lit int) (v int, s int) {
	if lit < 0 {
		return -lit, -1
	}
	return lit, 1
}

// Encode derives the clause satisfaction polynomial for the three-literal
// clause (l1, l2, l3) over n variables, returning the anchor row (|l3|-1,
// which is the clause's highest-indexed variable minus one only when l3
// carries that variable; the literals are not reordered) and the
// single-row F, G, H matrices. l1, l2, l3 must be non-zero and |l| <= n.
func Encode(l1, l2, l3, n int) (row int, F, G, H *matrix.Row, err error) {
	x1, s1 := absSign(l1)
	x2, s2 := absSign(l2)
	x3, s3 := absSign(l3)
	if x1 == 0 || x2 == 0 || x3 == 0 {
		return 0, nil, nil, nil, fmt.Errorf("clause literal is zero")
	}
	if x1 > n || x2 > n || x3 > n {
		return 0, nil, nil, nil, fmt.Errorf("clause literal exceeds n=%d: (%d,%d,%d)", n, l1, l2, l3)
	}

	F, G, H = matrix.New(), matrix.New(), matrix.New()

	// Anchor rows: H[x1-1] and H[x2-1] each get the monomial alpha_x1,
	// alpha_x2 respectively, making the triangular structure explicit.
	addElem(H, x1-1, triple(x1, 0, 0, n))
	addElem(H, x2-1, triple(0, x2, 0, n))

	row = x3 - 1

	// The eight explicit sign-pattern expansions of
	// (1 xor a')(1 xor b')(1 xor c'), a literal-by-literal transcription:
	// a term independent of x3 also goes to F[row]; G[row] receives the
	// alpha_x3=1 projection with its GF(2) cancellations already applied.
	switch {
	case s1 > 0 && s2 > 0 && s3 > 0:
		addElem(H, row, triple(x1, x2, x3, n))
		idx := triple(x1, x2, 0, n)
		addElem(H, row, idx)
		addElem(F, row, idx)
		addElem(H, row, triple(x1, 0, x3, n))
		addElem(H, row, triple(0, x2, x3, n))
		idx = triple(x1, 0, 0, n)
		addElem(H, row, idx)
		addElem(F, row, idx)
		idx = triple(0, x2, 0, n)
		addElem(H, row, idx)
		addElem(F, row, idx)
		idx = triple(0, 0, 0, n)
		addElem(H, row, idx)
		addElem(F, row, idx)
		addElem(G, row, idx)

	case s1 > 0 && s2 > 0 && s3 < 0:
		addElem(H, row, triple(x1, x2, x3, n))
		addElem(G, row, triple(x1, x2, 0, n))
		addElem(H, row, triple(x1, 0, x3, n))
		addElem(G, row, triple(x1, 0, 0, n))
		addElem(H, row, triple(0, x2, x3, n))
		addElem(G, row, triple(0, x2, 0, n))

	case s1 > 0 && s2 < 0 && s3 > 0:
		addElem(H, row, triple(x1, x2, x3, n))
		idx := triple(x1, x2, 0, n)
		addElem(H, row, idx)
		addElem(F, row, idx)
		addElem(H, row, triple(0, x2, x3, n))
		idx = triple(0, x2, 0, n)
		addElem(H, row, idx)
		addElem(F, row, idx)
		addElem(H, row, triple(0, 0, x3, n))
		addElem(G, row, triple(0, 0, 0, n))

	case s1 > 0 && s2 < 0 && s3 < 0:
		addElem(H, row, triple(x1, x2, x3, n))
		addElem(G, row, triple(x1, x2, 0, n))
		addElem(H, row, triple(0, x2, x3, n))
		addElem(G, row, triple(0, x2, 0, n))
		addElem(H, row, triple(0, 0, x3, n))
		addElem(G, row, triple(0, 0, 0, n))

	case s1 < 0 && s2 > 0 && s3 > 0:
		addElem(H, row, triple(x1, x2, x3, n))
		idx := triple(x1, x2, 0, n)
		addElem(H, row, idx)
		addElem(F, row, idx)
		addElem(H, row, triple(x1, 0, x3, n))
		idx = triple(x1, 0, 0, n)
		addElem(H, row, idx)
		addElem(F, row, idx)
		addElem(H, row, triple(0, 0, x3, n))
		addElem(G, row, triple(0, 0, 0, n))

	case s1 < 0 && s2 > 0 && s3 < 0:
		addElem(H, row, triple(x1, x2, x3, n))
		addElem(G, row, triple(x1, x2, 0, n))
		addElem(H, row, triple(x1, 0, x3, n))
		addElem(G, row, triple(x1, 0, 0, n))
		addElem(H, row, triple(0, 0, x3, n))
		addElem(G, row, triple(0, 0, 0, n))

	case s1 < 0 && s2 < 0 && s3 > 0:
		addElem(H, row, triple(x1, x2, x3, n))
		idx := triple(x1, x2, 0, n)
		addElem(H, row, idx)
		addElem(F, row, idx)
		addElem(H, row, triple(0, 0, x3, n))
		addElem(G, row, triple(0, 0, 0, n))

	default: // s1 < 0 && s2 < 0 && s3 < 0
		addElem(H, row, triple(x1, x2, x3, n))
		addElem(G, row, triple(x1, x2, 0, n))
		addElem(H, row, triple(0, 0, x3, n))
		addElem(G, row, triple(0, 0, 0, n))
	}

	return row, F, G, H, nil
}
