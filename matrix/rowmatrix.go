// Package matrix implements the sparse row-indexed matrices (H, F, G) the
// solver accumulates its constraint system in: a mapping from row index to
// a single GF(2) polynomial (poly.Poly), with the insert/replace/delete/copy
// operations the clause merger and simplifier need.
package matrix

import (
	"sort"

	"sat3gf2/poly"
)

// Row is a sparse matrix over rows: a mapping row-index -> SparsePoly.
// A missing row reads as the empty polynomial, which the simplifier and the
// enumerator treat as alpha_(r+1) = 0; the trivial constraint
// "alpha_(r+1) equals itself" is stored explicitly as the single monomial
// alpha_(r+1).
type Row struct {
	rows map[int]*poly.Poly
}

// New returns an empty row matrix.
func New() *Row {
	return &Row{rows: make(map[int]*poly.Poly)}
}

// Get returns the polynomial at row r, or the empty polynomial if the row
// is absent.
func (m *Row) Get(r int) *poly.Poly {
	if m == nil {
		return poly.New()
	}
	if p, ok := m.rows[r]; ok {
		return p
	}
	return poly.New()
}

// Has reports whether row r is present (an explicitly-inserted empty row
// counts as present too).
func (m *Row) Has(r int) bool {
	_, ok := m.rows[r]
	return ok
}

// Set installs p at row r, replacing any prior content.
func (m *Row) Set(r int, p *poly.Poly) {
	m.rows[r] = p
}

// Delete removes row r entirely.
func (m *Row) Delete(r int) {
	delete(m.rows, r)
}

// Rows returns the set of present row indices in no particular order.
func (m *Row) Rows() []int {
	out := make([]int, 0, len(m.rows))
	for r := range m.rows {
		out = append(out, r)
	}
	// insertion order is irrelevant to correctness; callers that need a
	// stable order sort this slice themselves via RowsSorted.
	return out
}

// RowsSorted returns the present row indices in ascending order.
func (m *Row) RowsSorted() []int {
	rows := m.Rows()
	sort.Ints(rows)
	return rows
}

// Clone returns a deep copy of the row matrix.
func (m *Row) Clone() *Row {
	out := New()
	for r, p := range m.rows {
		out.rows[r] = p.Clone()
	}
	return out
}
