package poly

import (
	"math/big"
	"testing"
)

func TestAddSelfCancels(t *testing.T) {
	p := New(big.NewInt(3), big.NewInt(5))
	sum := Add(p, p)
	if !sum.IsEmpty() {
		t.Fatalf("p xor p should be empty, got %v", sum.Monomials())
	}
}

func TestAddCommutesAndAssociates(t *testing.T) {
	p := New(big.NewInt(1), big.NewInt(2))
	q := New(big.NewInt(2), big.NewInt(4))
	r := New(big.NewInt(4), big.NewInt(8))

	if !Add(p, q).Equal(Add(q, p)) {
		t.Fatalf("addition is not commutative")
	}
	if !Add(Add(p, q), r).Equal(Add(p, Add(q, r))) {
		t.Fatalf("addition is not associative")
	}
}

func TestMultIdempotentOnSingleMonomial(t *testing.T) {
	m := big.NewInt(6)
	p := New(m)
	got := Mult(p, p, 4)
	if !got.Equal(New(m)) {
		t.Fatalf("mult_poly({m},{m}) = {m} failed, got %v", got.Monomials())
	}
}

func TestMultByEmptyIsEmpty(t *testing.T) {
	p := New(big.NewInt(1))
	empty := New()
	if !Mult(p, empty, 4).IsEmpty() {
		t.Fatalf("multiplying by empty should be empty")
	}
}

func TestSplitRoundTrip(t *testing.T) {
	const n = 3
	a1 := EncodeLiteralTriple(1, 0, 0, n)
	a2 := EncodeLiteralTriple(0, 2, 0, n)
	a1a2 := EncodeLiteralTriple(1, 2, 0, n)
	p := New(a1, a2, a1a2, new(big.Int))

	for k := 1; k <= n; k++ {
		i0, i1 := Split(p, k, n)
		alphaK := Var(k, n)
		rebuilt := Add(Mult(Add(One(), alphaK), i0, n), Mult(alphaK, i1, n))
		if !rebuilt.Equal(p) {
			t.Fatalf("round-trip failed for k=%d: got %v want %v", k, rebuilt.Monomials(), p.Monomials())
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	const n = 5
	for _, vars := range [][]int{{}, {1}, {2, 4}, {1, 2, 3, 4, 5}} {
		x := EncodeMonomial(vars, n)
		bits := Decode(x, n)
		back := EncodeBits(bits, n)
		if back.Cmp(x) != 0 {
			t.Fatalf("decode/encode round trip failed for %v: got %v want %v", vars, back, x)
		}
	}
}

func TestDecodeBitZeroFlagsConstant(t *testing.T) {
	bits := Decode(big.NewInt(0), 3)
	if bits[0] != 1 {
		t.Fatalf("D(0,n) should set bit 0, got %v", bits)
	}

	bits = Decode(big.NewInt(5), 3)
	if bits[0] != 0 {
		t.Fatalf("D(5,3) should clear bit 0, got %v", bits)
	}
	if want := []int{0, 1, 0, 1}; !equalInts(bits, want) {
		t.Fatalf("D(5,3) = %v, want %v", bits, want)
	}
}

func TestComputeIndex3SeedCase(t *testing.T) {
	idx := EncodeLiteralTriple(1, 2, 3, 3)
	if idx.Cmp(big.NewInt(7)) != 0 {
		t.Fatalf("compute_index3(1,2,3,3) = %v, want 7", idx)
	}
	idx = EncodeLiteralTriple(0, 0, 0, 3)
	if idx.Sign() != 0 {
		t.Fatalf("compute_index3(0,0,0,3) = %v, want 0", idx)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
