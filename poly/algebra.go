package poly

import "math/big"

// Mult multiplies two polynomials modulo alpha^2 = alpha. Each pair of
// monomials (x from p, y from q) contributes a single product monomial,
// xor-inserted into the result: the two "one of the factors is the
// constant 1" cases pass the other factor through unchanged, and
// otherwise the product is the bitwise OR of the two monomials (the union
// of the variables each one carries, which is exactly the alpha^2=alpha
// reduction).
func Mult(p, q *Poly, n int) *Poly {
	out := New()
	if p.IsEmpty() || q.IsEmpty() {
		return out
	}
	for _, x := range p.Monomials() {
		for _, y := range q.Monomials() {
			var prod *big.Int
			switch {
			case x.Sign() == 0 && y.Sign() == 0:
				prod = new(big.Int)
			case y.Sign() == 0:
				prod = new(big.Int).Set(x)
			case x.Sign() == 0:
				prod = new(big.Int).Set(y)
			default:
				prod = new(big.Int).Or(x, y)
			}
			out.XORInsert(prod)
		}
	}
	return out
}

// I0 substitutes alpha_k = 0: it keeps exactly the monomials of p that do
// not contain alpha_k, unchanged.
func I0(p *Poly, k, n int) *Poly {
	out := New()
	bitPos := n - k
	for _, x := range p.Monomials() {
		if x.Bit(bitPos) == 0 {
			out.XORInsert(new(big.Int).Set(x))
		}
	}
	return out
}

// I1 substitutes alpha_k = 1: a monomial containing alpha_k loses that
// factor (bit cleared, possibly colliding with and cancelling an existing
// term); a monomial not containing alpha_k is retained as-is.
func I1(p *Poly, k, n int) *Poly {
	out := New()
	bitPos := n - k
	for _, x := range p.Monomials() {
		if x.Bit(bitPos) == 1 {
			out.XORInsert(new(big.Int).SetBit(x, bitPos, 0))
		} else {
			out.XORInsert(new(big.Int).Set(x))
		}
	}
	return out
}

// Split is a convenience pairing I0 and I1, mirroring the original
// compute_I0_I1 routine that always produces both projections together.
func Split(p *Poly, k, n int) (i0, i1 *Poly) {
	return I0(p, k, n), I1(p, k, n)
}

// HighestVariable returns the highest-indexed variable appearing in any
// monomial of p, or 0 if p is empty or contains only the constant.
func (p *Poly) HighestVariable(n int) int {
	max := 0
	for _, x := range p.Monomials() {
		if v := HighestVariable(x, n); v > max {
			max = v
		}
	}
	return max
}
