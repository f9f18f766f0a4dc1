// Command sat3gen deterministically generates random 3-CNF instances for
// benchmarking the solver, seeded for reproducibility.
package main

import (
	"flag"
	"log"
	"os"

	"sat3gf2/cnfio"
)

func main() {
	n := flag.Int("n", 20, "number of variables")
	m := flag.Int("m", 80, "number of clauses")
	seed := flag.String("seed", "sat3gen", "PRNG seed string")
	out := flag.String("out", "", "output CNF file (default stdout)")
	flag.Parse()

	cnf, err := generateCNF(*n, *m, []byte(*seed))
	if err != nil {
		log.Fatalf("sat3gen: %v", err)
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("sat3gen: %v", err)
		}
		defer f.Close()
		w = f
	}
	if err := cnfio.WriteDIMACS(w, cnf); err != nil {
		log.Fatalf("sat3gen: %v", err)
	}
}
