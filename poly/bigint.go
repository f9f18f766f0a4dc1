// Package poly implements the GF(2) polynomial algebra the solver is built
// on: monomials over alpha_1..alpha_n encoded as arbitrary-precision
// integers, sparse polynomials as sets of such indices, and the
// multiplication/projection operators used to reconcile clause constraints.
package poly

import "math/big"

// EncodeMonomial returns the index of the monomial Prod_{i in vars} alpha_i
// over n variables: sum_{i in vars} 2^(n-i). An empty vars yields the
// constant monomial "1", index 0.
func EncodeMonomial(vars []int, n int) *big.Int {
	idx := new(big.Int)
	for _, v := range vars {
		if v <= 0 || v > n {
			continue
		}
		idx.SetBit(idx, n-v, 1)
	}
	return idx
}

// EncodeLiteralTriple computes the index for a monomial built from up to
// three variable positions, where 0 means "absent" at that slot. It is 0
// iff all three are absent.
func EncodeLiteralTriple(i1, i2, i3, n int) *big.Int {
	idx := new(big.Int)
	for _, v := range [3]int{i1, i2, i3} {
		if v > 0 {
			idx.SetBit(idx, n-v, 1)
		}
	}
	return idx
}

// Decode expands a monomial index into a bit-vector of length n+1: position
// 0 is set iff x is the constant monomial (x == 0); position k in 1..n is
// set iff alpha_k divides the monomial.
func Decode(x *big.Int, n int) []int {
	out := make([]int, n+1)
	if x.Sign() == 0 {
		out[0] = 1
	}
	for k := 1; k <= n; k++ {
		out[k] = int(x.Bit(n - k))
	}
	return out
}

// EncodeBits is the inverse of Decode: given a length n+1 bit-vector, it
// returns the corresponding monomial index. bits[0] set always yields the
// constant monomial regardless of the remaining entries.
func EncodeBits(bits []int, n int) *big.Int {
	if len(bits) > 0 && bits[0] == 1 {
		return new(big.Int)
	}
	idx := new(big.Int)
	for k := 1; k <= n && k < len(bits); k++ {
		if bits[k] == 1 {
			idx.SetBit(idx, n-k, 1)
		}
	}
	return idx
}

// HighestVariable returns the largest k in 1..n such that alpha_k divides
// x, or 0 if x is the constant monomial.
func HighestVariable(x *big.Int, n int) int {
	for k := n; k >= 1; k-- {
		if x.Bit(n-k) == 1 {
			return k
		}
	}
	return 0
}
