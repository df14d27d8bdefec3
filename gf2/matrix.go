// SPDX-License-Identifier: MIT

// Package gf2 - Matrix storage (row vectors) & safe accessors.
//
// Purpose:
//   - Hold a generator-style matrix as a slice of packed row Vectors.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Keep constructors strict (no ragged rows, no non-binary entries).
//   - Structural transforms (PadColumns, AppendRow, SelectColumns) always allocate
//     a new Matrix, so sibling branches of a search never observe each other's edits.

package gf2

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxRow    = "Row"
	ctxSelect = "SelectColumns"
)

// matrixErrorf wraps a sentinel with method context and coordinates.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a rows×cols matrix over GF(2).
//   - r, c hold the shape; a 0×c matrix is legal as an internal result (e.g. a trivial null space).
//   - rows holds r vectors, each of length c.
type Matrix struct {
	r, c int
	rows []Vector
}

var _ fmt.Stringer = (*Matrix)(nil)

// New creates an r×c zero matrix.
// Returns ErrInvalidDimensions if rows<=0 or cols<=0.
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return newZeroOK(rows, cols), nil
}

// newZeroOK is the internal constructor that allows empty shapes.
// Negative dimensions are a programmer error.
func newZeroOK(rows, cols int) *Matrix {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("gf2: newZeroOK(%d,%d): negative dimension", rows, cols))
	}
	m := &Matrix{r: rows, c: cols, rows: make([]Vector, rows)}
	for i := range m.rows {
		m.rows[i] = NewVector(cols)
	}

	return m
}

// Ones returns the rows×cols all-ones matrix. The 1×j all-ones matrix is the
// generator of the length-j repetition code.
func Ones(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	m := &Matrix{r: rows, c: cols, rows: make([]Vector, rows)}
	for i := range m.rows {
		m.rows[i] = OnesVector(cols)
	}

	return m, nil
}

// FromRows builds a matrix from 0/1 rows.
// MAIN DESCRIPTION:
//   - Ingest a rectangular bit array into packed storage.
//
// Errors:
//   - ErrInvalidDimensions if there are no rows or the first row is empty.
//   - ErrDimensionMismatch if rows have inconsistent lengths.
//   - ErrNonBinary if any entry is not 0 or 1.
//
// Complexity:
//   - Time O(r*c), Space O(r*w).
func FromRows(data [][]uint8) (*Matrix, error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(data[0])
	m := &Matrix{r: len(data), c: cols, rows: make([]Vector, len(data))}
	for i, row := range data {
		if len(row) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d entries, want %d: %w", i, len(row), cols, ErrDimensionMismatch)
		}
		v, err := VectorFromBits(row)
		if err != nil {
			return nil, fmt.Errorf("FromRows: row %d: %w", i, err)
		}
		m.rows[i] = v
	}

	return m, nil
}

// FromVectors builds a matrix whose rows are copies of vs.
// Returns ErrInvalidDimensions for an empty or zero-length input and
// ErrDimensionMismatch for vectors of different lengths.
func FromVectors(vs []Vector) (*Matrix, error) {
	if len(vs) == 0 || vs[0].Len() == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := fromVectorsZeroOK(vs[0].Len(), vs)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// fromVectorsZeroOK copies vs into a len(vs)×cols matrix; an empty vs is legal.
func fromVectorsZeroOK(cols int, vs []Vector) (*Matrix, error) {
	m := &Matrix{r: len(vs), c: cols, rows: make([]Vector, len(vs))}
	for i, v := range vs {
		if v.Len() != cols {
			return nil, fmt.Errorf("FromVectors: row %d has length %d, want %d: %w", i, v.Len(), cols, ErrDimensionMismatch)
		}
		m.rows[i] = v.Clone()
	}

	return m, nil
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix) Shape() (rows, cols int) { return m.r, m.c }

// checkIndex validates (row, col) against the shape.
func (m *Matrix) checkIndex(row, col int) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return ErrOutOfRange
	}

	return nil
}

// At returns the entry at (row, col) or ErrOutOfRange.
func (m *Matrix) At(row, col int) (uint8, error) {
	if err := m.checkIndex(row, col); err != nil {
		return 0, matrixErrorf(ctxAt, row, col, err)
	}

	return m.rows[row].Bit(col), nil
}

// Set assigns the entry at (row, col).
// Returns ErrOutOfRange for bad indices and ErrNonBinary for b > 1.
func (m *Matrix) Set(row, col int, b uint8) error {
	if err := m.checkIndex(row, col); err != nil {
		return matrixErrorf(ctxSet, row, col, err)
	}
	if b > 1 {
		return matrixErrorf(ctxSet, row, col, ErrNonBinary)
	}
	m.rows[row].SetBit(col, b)

	return nil
}

// Row returns a copy of row i or ErrOutOfRange.
func (m *Matrix) Row(i int) (Vector, error) {
	if i < 0 || i >= m.r {
		return Vector{}, matrixErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return m.rows[i].Clone(), nil
}

// RowVectors returns copies of all rows in order.
func (m *Matrix) RowVectors() []Vector {
	out := make([]Vector, m.r)
	for i, v := range m.rows {
		out[i] = v.Clone()
	}

	return out
}

// RowWeight returns the Hamming weight of row i, or -1 if i is out of range.
func (m *Matrix) RowWeight(i int) int {
	if i < 0 || i >= m.r {
		return -1
	}

	return m.rows[i].Weight()
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	cp := &Matrix{r: m.r, c: m.c, rows: make([]Vector, m.r)}
	for i, v := range m.rows {
		cp.rows[i] = v.Clone()
	}

	return cp
}

// Equal reports whether m and o have the same shape and entries.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.rows {
		if !m.rows[i].Equal(o.rows[i]) {
			return false
		}
	}

	return true
}

// PadColumns returns a copy of m extended with zero columns up to cols.
// Returns ErrDimensionMismatch if cols < m.Cols().
func (m *Matrix) PadColumns(cols int) (*Matrix, error) {
	if cols < m.c {
		return nil, fmt.Errorf("Matrix.PadColumns(%d) on %d columns: %w", cols, m.c, ErrDimensionMismatch)
	}
	out := &Matrix{r: m.r, c: cols, rows: make([]Vector, m.r)}
	for i, v := range m.rows {
		out.rows[i] = v.Resize(cols)
	}

	return out, nil
}

// AppendRow returns a new matrix equal to m with v added as the last row.
// Returns ErrDimensionMismatch if v.Len() != m.Cols().
func (m *Matrix) AppendRow(v Vector) (*Matrix, error) {
	if v.Len() != m.c {
		return nil, fmt.Errorf("Matrix.AppendRow: row length %d, want %d: %w", v.Len(), m.c, ErrDimensionMismatch)
	}
	out := &Matrix{r: m.r + 1, c: m.c, rows: make([]Vector, 0, m.r+1)}
	for _, row := range m.rows {
		out.rows = append(out.rows, row.Clone())
	}
	out.rows = append(out.rows, v.Clone())

	return out, nil
}

// SelectColumns returns the matrix made of the given columns, in the given order.
// Returns ErrInvalidDimensions for an empty selection and ErrOutOfRange for a bad index.
func (m *Matrix) SelectColumns(idx []int) (*Matrix, error) {
	if len(idx) == 0 {
		return nil, ErrInvalidDimensions
	}
	for _, j := range idx {
		if j < 0 || j >= m.c {
			return nil, matrixErrorf(ctxSelect, 0, j, ErrOutOfRange)
		}
	}
	out := newZeroOK(m.r, len(idx))
	for i, row := range m.rows {
		dst := out.rows[i]
		for p, j := range idx {
			if row.Bit(j) == 1 {
				dst.SetBit(p, 1)
			}
		}
	}

	return out, nil
}

// Column returns column j as a Vector of length Rows(), or ErrOutOfRange.
func (m *Matrix) Column(j int) (Vector, error) {
	if j < 0 || j >= m.c {
		return Vector{}, matrixErrorf("Column", 0, j, ErrOutOfRange)
	}
	col := NewVector(m.r)
	for i, row := range m.rows {
		if row.Bit(j) == 1 {
			col.SetBit(i, 1)
		}
	}

	return col, nil
}

// Support returns the indices of the columns that are non-zero, ascending.
func (m *Matrix) Support() []int {
	acc := NewVector(m.c)
	for _, row := range m.rows {
		for i := range acc.w {
			acc.w[i] |= row.w[i]
		}
	}

	return acc.Ones()
}

// IsSelfOrthogonal reports whether every pair of rows, including each row
// with itself, has inner product 0.
func (m *Matrix) IsSelfOrthogonal() bool {
	for i := 0; i < m.r; i++ {
		for j := i; j < m.r; j++ {
			if m.rows[i].Overlap(m.rows[j])&1 != 0 {
				return false
			}
		}
	}

	return true
}

// Key returns a compact string that identifies the shape and entries.
// Equal matrices have equal keys.
func (m *Matrix) Key() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(m.r))
	sb.WriteByte('x')
	sb.WriteString(strconv.Itoa(m.c))
	for _, row := range m.rows {
		sb.WriteByte(':')
		for i, x := range row.w {
			if i > 0 {
				sb.WriteByte('.')
			}
			sb.WriteString(strconv.FormatUint(x, 16))
		}
	}

	return sb.String()
}

// String renders one bracketed row per line:
//
//	[1 1 1 1 0 0]
//	[0 1 0 1 1 1]
func (m *Matrix) String() string {
	var sb strings.Builder
	for i, row := range m.rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(row.String())
	}

	return sb.String()
}
