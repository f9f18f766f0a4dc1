// Command sat3 solves 3-CNF instances via the GF(2) polynomial-merge
// algorithm and enumerates their solutions.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"sat3gf2/cnfio"
	"sat3gf2/enumerate"
	"sat3gf2/solve"
	"sat3gf2/trace"
)

func usage() {
	fmt.Println(`usage: sat3 <solve|merge> [options]

Subcommands:
  solve    Solve a DIMACS-lite 3-CNF file and print/save its solutions
           Flags:
             -in   <file>   input CNF file (required)
             -out  <file>   solution file (default: <in>.sol)
             -v             verbose: per-clause merge summary
             -vv            verbose: also the row clause 0 installs
             -digest        also write a sha3-256 digest alongside -out

  merge    Merge a single constraint vector into an existing row matrix
           Flags:
             -matrix <file>  input H matrix file
             -vector <file>  input vector file (row + monomials)
             -n      <int>   number of variables (required)
             -out    <file>  output matrix file (default: stdout)`)
	os.Exit(1)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	switch os.Args[1] {
	case "solve":
		runSolve(os.Args[2:])
	case "merge":
		runMerge(os.Args[2:])
	default:
		usage()
	}
}

func levelFromFlags(v, vv bool) trace.Level {
	switch {
	case vv:
		return trace.Debug
	case v:
		return trace.Info
	default:
		return trace.Silent
	}
}

func runSolve(args []string) {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	in := fs.String("in", "", "input CNF file")
	out := fs.String("out", "", "solution output file (default <in>.sol)")
	v := fs.Bool("v", false, "verbose per-clause summary")
	vv := fs.Bool("vv", false, "verbose, also the row clause 0 installs")
	digest := fs.Bool("digest", false, "also write a sha3-256 digest of the solutions")
	statsOut := fs.String("stats", "", "write recursion-depth statistics as JSON to this file")
	fs.Parse(args)

	if *in == "" {
		log.Fatal("solve: -in is required")
	}
	outPath := *out
	if outPath == "" {
		outPath = *in + ".sol"
	}

	f, err := os.Open(*in)
	if err != nil {
		log.Fatalf("solve: %v", err)
	}
	defer f.Close()

	cnf, err := cnfio.ParseDIMACS(f)
	if err != nil {
		log.Fatalf("solve: %v", err)
	}

	tr := trace.New(os.Stderr, levelFromFlags(*v, *vv))
	result, err := solve.Run(cnf.N, cnf.Clauses, tr)
	if err != nil {
		log.Fatalf("solve: %v", err)
	}
	tr.Infof("INFO: max recursion depth %d, total %d\n", result.Stats.MaxRecDepth, result.Stats.TotalRecDepth)

	if !result.Satisfiable {
		fmt.Println("INFO: NO SOLUTION FOUND!")
		return
	}

	sols := enumerate.Solutions(result.H.H, result.N)
	fmt.Printf("INFO: SOLUTION(S) FOUND! (%d)\n", len(sols))

	outFile, err := os.Create(outPath)
	if err != nil {
		log.Fatalf("solve: %v", err)
	}
	defer outFile.Close()
	if err := cnfio.WriteSolutions(outFile, sols); err != nil {
		log.Fatalf("solve: %v", err)
	}
	fmt.Printf("solutions written to %s\n", outPath)

	if *digest {
		d := cnfio.SolutionDigest(sols)
		digestFile, err := os.Create(outPath + ".sha3")
		if err != nil {
			log.Fatalf("solve: %v", err)
		}
		defer digestFile.Close()
		if err := cnfio.WriteDigest(digestFile, d); err != nil {
			log.Fatalf("solve: %v", err)
		}
		fmt.Printf("digest written to %s.sha3\n", outPath)
	}

	if *statsOut != "" {
		sf, err := os.Create(*statsOut)
		if err != nil {
			log.Fatalf("solve: %v", err)
		}
		defer sf.Close()
		enc := json.NewEncoder(sf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result.Stats); err != nil {
			log.Fatalf("solve: %v", err)
		}
	}
}

func runMerge(args []string) {
	fs := flag.NewFlagSet("merge", flag.ExitOnError)
	matrixPath := fs.String("matrix", "", "input H matrix file")
	vectorPath := fs.String("vector", "", "input vector file")
	n := fs.Int("n", 0, "number of variables")
	out := fs.String("out", "", "output matrix file (default stdout)")
	fs.Parse(args)

	if *matrixPath == "" || *vectorPath == "" || *n <= 0 {
		log.Fatal("merge: -matrix, -vector and -n are required")
	}

	mf, err := os.Open(*matrixPath)
	if err != nil {
		log.Fatalf("merge: %v", err)
	}
	defer mf.Close()
	H1, err := cnfio.ReadMatrix(mf)
	if err != nil {
		log.Fatalf("merge: %v", err)
	}

	vf, err := os.Open(*vectorPath)
	if err != nil {
		log.Fatalf("merge: %v", err)
	}
	defer vf.Close()
	row, v, err := cnfio.ReadVector(vf)
	if err != nil {
		log.Fatalf("merge: %v", err)
	}

	// A row already carrying more than its own trivial "alpha_k = alpha_k"
	// stipulation counts as constrained; a single-term row doesn't.
	rowConstraint := make([]bool, *n)
	for l := 0; l < *n; l++ {
		rowConstraint[l] = H1.Get(l).Len() > 1
	}

	H1 = solve.SimplifyMatrix(H1, *n, *n)
	F1, G1 := solve.SplitRows(H1, *n)
	sys := &solve.System{H: H1, F: F1, G: G1}

	vSimplified := solve.SimplifyVector(H1, v, row, *n)
	H2 := H1.Clone()
	H2.Set(row, vSimplified)
	F2, G2 := solve.SplitRows(H2, *n)

	sat, lev := solve.Merge(sys, H2, F2, G2, rowConstraint, row, *n, 0)
	fmt.Fprintf(os.Stderr, "INFO: recursion depth %d\n", lev)
	if !sat {
		fmt.Println("INFO: NO SOLUTION FOUND!")
		return
	}

	w := os.Stdout
	if *out != "" {
		outFile, err := os.Create(*out)
		if err != nil {
			log.Fatalf("merge: %v", err)
		}
		defer outFile.Close()
		if err := cnfio.WriteMatrix(outFile, sys.H); err != nil {
			log.Fatalf("merge: %v", err)
		}
		return
	}
	if err := cnfio.WriteMatrix(w, sys.H); err != nil {
		log.Fatalf("merge: %v", err)
	}
}
