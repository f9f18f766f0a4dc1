package solve

import (
	"io"
	"testing"

	"sat3gf2/enumerate"
	"sat3gf2/trace"
)

func nilTracer() *trace.Tracer {
	return trace.New(io.Discard, trace.Silent)
}

func TestSingleClauseHasSevenSolutions(t *testing.T) {
	res, err := Run(3, [][3]int{{1, 2, 3}}, nilTracer())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !res.Satisfiable {
		t.Fatalf("expected satisfiable")
	}
	sols := enumerate.Solutions(res.H.H, res.N)
	if len(sols) != 7 {
		t.Fatalf("got %d solutions, want 7", len(sols))
	}
	for _, s := range sols {
		if !s[0] && !s[1] && !s[2] {
			t.Fatalf("all-false assignment should not satisfy (x1 or x2 or x3)")
		}
	}
}

func TestAllEightSignPatternsIsUnsat(t *testing.T) {
	// Every one of the 8 sign patterns over (x1, x2, x3) appears as a
	// clause, so every possible assignment falsifies exactly one of them:
	// no assignment can satisfy all 8 at once.
	clauses := [][3]int{
		{1, 2, 3}, {1, 2, -3}, {1, -2, 3}, {1, -2, -3},
		{-1, 2, 3}, {-1, 2, -3}, {-1, -2, 3}, {-1, -2, -3},
	}
	res, err := Run(3, clauses, nilTracer())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if res.Satisfiable {
		t.Fatalf("expected unsatisfiable")
	}
}

func TestChainOfClausesIsSatisfiable(t *testing.T) {
	// (x1 or x2 or x3) and (-x1 or x2 or x3) and (x1 or -x2 or x3): every
	// assignment with x3 = 1 satisfies all three; with x3 = 0 only
	// x1 = x2 = 1 does.
	res, err := Run(3, [][3]int{
		{1, 2, 3},
		{-1, 2, 3},
		{1, -2, 3},
	}, nilTracer())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !res.Satisfiable {
		t.Fatalf("expected satisfiable")
	}
	sols := enumerate.Solutions(res.H.H, res.N)
	want := map[[3]bool]bool{
		{false, false, true}: true,
		{false, true, true}:  true,
		{true, false, true}:  true,
		{true, true, true}:   true,
		{true, true, false}:  true,
	}
	if len(sols) != len(want) {
		t.Fatalf("got %d solutions, want %d", len(sols), len(want))
	}
	for _, s := range sols {
		key := [3]bool{s[0], s[1], s[2]}
		if !want[key] {
			t.Fatalf("unexpected solution %v", s)
		}
		delete(want, key)
	}
	if len(want) != 0 {
		t.Fatalf("missing expected solutions: %v", want)
	}
}
