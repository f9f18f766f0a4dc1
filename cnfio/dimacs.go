// Package cnfio reads and writes the solver's on-disk formats: a
// DIMACS-style CNF file, the sparse row-matrix/vector files the "merge"
// entry point consumes, and solution listings with a digest alongside.
package cnfio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseError reports a malformed line in a CNF file.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cnf: line %d: %s", e.Line, e.Msg)
}

// CNF is a parsed 3-CNF instance: N variables and a clause list, each
// clause exactly three non-zero literals with absolute value <= N.
type CNF struct {
	N       int
	Clauses [][3]int
}

// ParseDIMACS reads a DIMACS-lite 3-CNF: a "p cnf <n> <m>" header
// (comment lines starting with "c" are skipped before it) followed by m
// clause lines, each three literals terminated by a trailing 0.
func ParseDIMACS(r io.Reader) (*CNF, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)

	lineNo := 0
	var n, m int
	sawHeader := false
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
			return nil, &ParseError{lineNo, "expected header \"p cnf <n> <m>\""}
		}
		var err error
		n, err = strconv.Atoi(fields[2])
		if err != nil || n <= 0 {
			return nil, &ParseError{lineNo, "invalid variable count"}
		}
		m, err = strconv.Atoi(fields[3])
		if err != nil || m < 0 {
			return nil, &ParseError{lineNo, "invalid clause count"}
		}
		sawHeader = true
		break
	}
	if !sawHeader {
		return nil, &ParseError{lineNo, "missing \"p cnf\" header"}
	}

	out := &CNF{N: n, Clauses: make([][3]int, 0, m)}
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 4 {
			return nil, &ParseError{lineNo, "expected three literals and a trailing 0"}
		}
		var lits [3]int
		for i := 0; i < 3; i++ {
			v, err := strconv.Atoi(fields[i])
			if err != nil {
				return nil, &ParseError{lineNo, fmt.Sprintf("literal %q is not an integer", fields[i])}
			}
			if v == 0 || v > n || v < -n {
				return nil, &ParseError{lineNo, fmt.Sprintf("literal %d out of range for n=%d", v, n)}
			}
			lits[i] = v
		}
		if fields[3] != "0" {
			return nil, &ParseError{lineNo, "clause must terminate with 0"}
		}
		out.Clauses = append(out.Clauses, lits)
	}
	if len(out.Clauses) != m {
		return nil, &ParseError{lineNo, fmt.Sprintf("header declared %d clauses, found %d", m, len(out.Clauses))}
	}
	return out, nil
}

// WriteDIMACS serialises a CNF instance back to the same textual format
// ParseDIMACS accepts, primarily for the generator command.
func WriteDIMACS(w io.Writer, cnf *CNF) error {
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", cnf.N, len(cnf.Clauses)); err != nil {
		return err
	}
	for _, c := range cnf.Clauses {
		if _, err := fmt.Fprintf(w, "%d %d %d 0\n", c[0], c[1], c[2]); err != nil {
			return err
		}
	}
	return nil
}
