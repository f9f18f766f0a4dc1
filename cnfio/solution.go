package cnfio

import (
	"bufio"
	"fmt"
	"io"

	"golang.org/x/crypto/sha3"
)

// WriteSolutions writes one solution per line, "1" or "0" per variable
// separated by spaces, in the order enumerate.Solutions produced them.
func WriteSolutions(w io.Writer, solutions [][]bool) error {
	bw := bufio.NewWriter(w)
	for _, sol := range solutions {
		for i, v := range sol {
			if i > 0 {
				if _, err := bw.WriteString(" "); err != nil {
					return err
				}
			}
			b := "0"
			if v {
				b = "1"
			}
			if _, err := bw.WriteString(b); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SolutionDigest returns the sha3-256 digest of the solution list, each
// solution contributing one byte per variable (0x00/0x01) in the order
// given, so the digest certifies both the solution set and its ordering.
func SolutionDigest(solutions [][]bool) [32]byte {
	h := sha3.New256()
	for _, sol := range solutions {
		buf := make([]byte, len(sol))
		for i, v := range sol {
			if v {
				buf[i] = 1
			}
		}
		h.Write(buf)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// WriteDigest writes the hex-encoded digest followed by a newline,
// matching the ".sol.sha3" sidecar file convention.
func WriteDigest(w io.Writer, digest [32]byte) error {
	_, err := fmt.Fprintf(w, "%x\n", digest)
	return err
}
