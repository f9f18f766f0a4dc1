package poly

import (
	"math/big"
	"sort"
)

// Poly is a sparse GF(2) polynomial: a set of monomial indices, semantics
// sum(m_i) mod 2. Adding the same monomial twice cancels it.
type Poly struct {
	terms map[string]*big.Int
}

// New returns the empty polynomial, optionally xor-inserting the given
// monomials.
func New(monomials ...*big.Int) *Poly {
	p := &Poly{terms: make(map[string]*big.Int)}
	for _, m := range monomials {
		p.XORInsert(m)
	}
	return p
}

// One returns the constant polynomial "1" (the single monomial index 0).
func One() *Poly {
	return New(new(big.Int))
}

// Var returns the polynomial alpha_k over n variables.
func Var(k, n int) *Poly {
	return New(EncodeLiteralTriple(k, 0, 0, n))
}

func key(x *big.Int) string {
	return x.Text(16)
}

// XORInsert adds a single monomial: if absent it is added, if present it is
// removed (the GF(2) "mod 2" cancellation).
func (p *Poly) XORInsert(x *big.Int) {
	k := key(x)
	if _, ok := p.terms[k]; ok {
		delete(p.terms, k)
	} else {
		p.terms[k] = x
	}
}

// IsEmpty reports whether the polynomial is the additive identity.
func (p *Poly) IsEmpty() bool {
	return p == nil || len(p.terms) == 0
}

// Len returns the number of monomials in the polynomial.
func (p *Poly) Len() int {
	if p == nil {
		return 0
	}
	return len(p.terms)
}

// Monomials returns the polynomial's monomial indices in ascending
// numeric order. Traversal order is otherwise unspecified by the set
// semantics, but sorting here makes every consumer's iteration
// deterministic.
func (p *Poly) Monomials() []*big.Int {
	if p == nil {
		return nil
	}
	out := make([]*big.Int, 0, len(p.terms))
	for _, m := range p.terms {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Cmp(out[j]) < 0 })
	return out
}

// Clone returns a deep copy.
func (p *Poly) Clone() *Poly {
	out := New()
	if p == nil {
		return out
	}
	for k, m := range p.terms {
		out.terms[k] = new(big.Int).Set(m)
	}
	return out
}

// Equal reports whether two polynomials contain exactly the same
// monomials.
func (p *Poly) Equal(q *Poly) bool {
	if p.Len() != q.Len() {
		return false
	}
	for k := range p.terms {
		if _, ok := q.terms[k]; !ok {
			return false
		}
	}
	return true
}

// Add returns the symmetric difference p XOR q (GF(2) addition), without
// mutating either operand.
func Add(p, q *Poly) *Poly {
	out := p.Clone()
	for _, m := range q.Monomials() {
		out.XORInsert(new(big.Int).Set(m))
	}
	return out
}
