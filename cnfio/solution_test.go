package cnfio

import (
	"bytes"
	"testing"
)

func TestWriteSolutionsFormat(t *testing.T) {
	sols := [][]bool{{true, false, true}, {false, false, false}}
	var buf bytes.Buffer
	if err := WriteSolutions(&buf, sols); err != nil {
		t.Fatalf("WriteSolutions returned error: %v", err)
	}
	want := "1 0 1\n0 0 0\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestSolutionDigestDeterministic(t *testing.T) {
	sols := [][]bool{{true, false}, {false, true}}
	d1 := SolutionDigest(sols)
	d2 := SolutionDigest(sols)
	if d1 != d2 {
		t.Fatalf("digest is not deterministic")
	}
	other := SolutionDigest([][]bool{{false, true}, {true, false}})
	if d1 == other {
		t.Fatalf("digest should depend on solution order")
	}
}
