package cnfio

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"sat3gf2/matrix"
	"sat3gf2/poly"
)

// ReadMatrix reads a sparse row matrix: one line per row, "<row+1> m1 m2 ...",
// monomial indices in base 10, matching the merger's alternate file-driven
// entry point.
func ReadMatrix(r io.Reader) (*matrix.Row, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	out := matrix.New()
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		rowID, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, &ParseError{lineNo, "row id is not an integer"}
		}
		p := poly.New()
		for _, f := range fields[1:] {
			idx, ok := new(big.Int).SetString(f, 10)
			if !ok {
				return nil, &ParseError{lineNo, fmt.Sprintf("monomial %q is not an integer", f)}
			}
			p.XORInsert(idx)
		}
		out.Set(rowID-1, p)
	}
	return out, nil
}

// WriteMatrix serialises m in the format ReadMatrix accepts.
func WriteMatrix(w io.Writer, m *matrix.Row) error {
	for _, r := range m.RowsSorted() {
		if _, err := fmt.Fprintf(w, "%d", r+1); err != nil {
			return err
		}
		for _, mono := range m.Get(r).Monomials() {
			if _, err := fmt.Fprintf(w, " %s", mono.Text(10)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// ReadVector reads a single sparse row vector, "<row+1> m1 m2 ...", as used
// for the merge command's standalone constraint input.
func ReadVector(r io.Reader) (row int, p *poly.Poly, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	if !sc.Scan() {
		return 0, nil, fmt.Errorf("cnfio: empty vector file")
	}
	fields := strings.Fields(strings.TrimSpace(sc.Text()))
	if len(fields) == 0 {
		return 0, nil, fmt.Errorf("cnfio: empty vector line")
	}
	rowID, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, nil, fmt.Errorf("cnfio: row id is not an integer: %w", err)
	}
	p = poly.New()
	for _, f := range fields[1:] {
		idx, ok := new(big.Int).SetString(f, 10)
		if !ok {
			return 0, nil, fmt.Errorf("cnfio: monomial %q is not an integer", f)
		}
		p.XORInsert(idx)
	}
	return rowID - 1, p, nil
}
