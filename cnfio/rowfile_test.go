package cnfio

import (
	"bytes"
	"math/big"
	"testing"

	"sat3gf2/matrix"
	"sat3gf2/poly"
)

func TestMatrixRoundTrip(t *testing.T) {
	m := matrix.New()
	m.Set(0, poly.New(big.NewInt(5), big.NewInt(2)))
	m.Set(2, poly.New(big.NewInt(0)))

	var buf bytes.Buffer
	if err := WriteMatrix(&buf, m); err != nil {
		t.Fatalf("WriteMatrix returned error: %v", err)
	}
	got, err := ReadMatrix(&buf)
	if err != nil {
		t.Fatalf("ReadMatrix returned error: %v", err)
	}
	if !got.Get(0).Equal(m.Get(0)) || !got.Get(2).Equal(m.Get(2)) {
		t.Fatalf("round trip mismatch")
	}
}

func TestVectorRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if _, err := buf.WriteString("3 5 2\n"); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}
	row, p, err := ReadVector(&buf)
	if err != nil {
		t.Fatalf("ReadVector returned error: %v", err)
	}
	if row != 2 {
		t.Fatalf("row = %d, want 2", row)
	}
	want := poly.New(big.NewInt(5), big.NewInt(2))
	if !p.Equal(want) {
		t.Fatalf("vector mismatch")
	}
}
