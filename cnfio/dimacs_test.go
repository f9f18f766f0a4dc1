package cnfio

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseDIMACSValid(t *testing.T) {
	src := "c a comment line\np cnf 3 2\n1 2 3 0\n-1 2 3 0\n"
	cnf, err := ParseDIMACS(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseDIMACS returned error: %v", err)
	}
	if cnf.N != 3 || len(cnf.Clauses) != 2 {
		t.Fatalf("got N=%d, %d clauses", cnf.N, len(cnf.Clauses))
	}
	if cnf.Clauses[1] != [3]int{-1, 2, 3} {
		t.Fatalf("clause 1 = %v, want [-1 2 3]", cnf.Clauses[1])
	}
}

func TestParseDIMACSRejectsMissingHeader(t *testing.T) {
	if _, err := ParseDIMACS(strings.NewReader("1 2 3 0\n")); err == nil {
		t.Fatalf("expected error for missing header")
	}
}

func TestParseDIMACSRejectsLiteralOutOfRange(t *testing.T) {
	src := "p cnf 2 1\n1 2 3 0\n"
	if _, err := ParseDIMACS(strings.NewReader(src)); err == nil {
		t.Fatalf("expected error for literal exceeding n")
	}
}

func TestParseDIMACSRejectsClauseCountMismatch(t *testing.T) {
	src := "p cnf 3 2\n1 2 3 0\n"
	if _, err := ParseDIMACS(strings.NewReader(src)); err == nil {
		t.Fatalf("expected error for clause count mismatch")
	}
}

func TestWriteDIMACSRoundTrip(t *testing.T) {
	cnf := &CNF{N: 3, Clauses: [][3]int{{1, 2, 3}, {-1, -2, -3}}}
	var buf bytes.Buffer
	if err := WriteDIMACS(&buf, cnf); err != nil {
		t.Fatalf("WriteDIMACS returned error: %v", err)
	}
	got, err := ParseDIMACS(&buf)
	if err != nil {
		t.Fatalf("re-parsing wrote output failed: %v", err)
	}
	if got.N != cnf.N || len(got.Clauses) != len(cnf.Clauses) {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}
