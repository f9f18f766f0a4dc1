package main

import (
	"encoding/binary"
	"fmt"

	"github.com/tuneinsight/lattigo/v4/utils"

	"sat3gf2/cnfio"
)

// generateCNF deterministically draws a random 3-CNF instance from seed:
// m clauses over n variables, each clause three distinct variables with
// independently random polarity.
func generateCNF(n, m int, seed []byte) (*cnfio.CNF, error) {
	if n < 3 {
		return nil, fmt.Errorf("sat3gen: n must be >= 3, got %d", n)
	}
	prng, err := utils.NewKeyedPRNG(seed)
	if err != nil {
		return nil, fmt.Errorf("sat3gen: %w", err)
	}

	buf := make([]byte, 4)
	randUint32 := func() uint32 {
		if _, err := prng.Read(buf); err != nil {
			panic(fmt.Sprintf("sat3gen: PRNG read failed: %v", err))
		}
		return binary.BigEndian.Uint32(buf)
	}
	randIntn := func(bound int) int {
		return int(randUint32() % uint32(bound))
	}

	clauses := make([][3]int, m)
	for i := range clauses {
		used := make(map[int]bool, 3)
		var lits [3]int
		for j := 0; j < 3; j++ {
			var v int
			for {
				v = randIntn(n) + 1
				if !used[v] {
					break
				}
			}
			used[v] = true
			sign := 1
			if randIntn(2) == 0 {
				sign = -1
			}
			lits[j] = sign * v
		}
		clauses[i] = lits
	}

	return &cnfio.CNF{N: n, Clauses: clauses}, nil
}
