// SPDX-License-Identifier: MIT

// Package gf2 - linear algebra over GF(2): echelon basis, rank, RREF, null space.
//
// AI-Hints:
//   - Basis is the cheap way to test span membership incrementally; prefer it
//     over recomputing Rank when vectors arrive one at a time.
//   - NullSpace of a generator matrix G is a generator of the dual code G⊥.

package gf2

import "fmt"

// Basis is an incremental echelon basis of a subspace of GF(2)^n.
// Every stored vector has a distinct pivot (its first set coordinate), which
// lets Reduce clear pivots left to right in a single pass.
type Basis struct {
	n       int
	byPivot map[int]Vector
	vecs    []Vector // reduced vectors in insertion order
}

// NewBasis returns an empty basis of GF(2)^n.
func NewBasis(n int) *Basis {
	return &Basis{n: n, byPivot: make(map[int]Vector)}
}

// Dim returns the dimension of the spanned subspace.
func (b *Basis) Dim() int { return len(b.vecs) }

// reduce returns v minus its projection on the basis; zero iff v is in the span.
func (b *Basis) reduce(v Vector) Vector {
	r := v.Clone()
	for {
		p := r.FirstSet()
		if p < 0 {
			return r
		}
		piv, ok := b.byPivot[p]
		if !ok {
			return r
		}
		r.xorInPlace(piv)
	}
}

// Reduce returns the residue of v modulo the span.
// Returns ErrDimensionMismatch if v.Len() differs from the ambient length.
func (b *Basis) Reduce(v Vector) (Vector, error) {
	if v.Len() != b.n {
		return Vector{}, fmt.Errorf("Basis.Reduce: length %d, want %d: %w", v.Len(), b.n, ErrDimensionMismatch)
	}

	return b.reduce(v), nil
}

// Contains reports whether v lies in the span.
func (b *Basis) Contains(v Vector) (bool, error) {
	r, err := b.Reduce(v)
	if err != nil {
		return false, err
	}

	return r.IsZero(), nil
}

// Add inserts v if it is independent of the current span and reports
// whether the dimension grew.
func (b *Basis) Add(v Vector) (bool, error) {
	r, err := b.Reduce(v)
	if err != nil {
		return false, err
	}
	if r.IsZero() {
		return false, nil
	}
	b.byPivot[r.FirstSet()] = r
	b.vecs = append(b.vecs, r)

	return true, nil
}

// Vectors returns copies of the stored (reduced) basis vectors in insertion order.
func (b *Basis) Vectors() []Vector {
	out := make([]Vector, len(b.vecs))
	for i, v := range b.vecs {
		out[i] = v.Clone()
	}

	return out
}

// Rank returns the dimension of the row space.
func (m *Matrix) Rank() int {
	b := NewBasis(m.c)
	for _, row := range m.rows {
		// Lengths always agree inside a Matrix.
		_, _ = b.Add(row)
	}

	return b.Dim()
}

// RREF returns the reduced row echelon form of m (zero rows dropped) and its
// pivot columns in ascending order.
// MAIN DESCRIPTION:
//   - Gauss–Jordan elimination on a copy; m is not modified.
//
// Implementation:
//   - Stage 1: scan columns left to right; pick the first row at or below the
//     current rank with a 1 in that column.
//   - Stage 2: swap it up and clear the column in every other row.
//
// Complexity:
//   - Time O(r·c·w), Space O(r·w).
func (m *Matrix) RREF() (*Matrix, []int) {
	rows := make([]Vector, m.r)
	for i, v := range m.rows {
		rows[i] = v.Clone()
	}
	pivots := make([]int, 0, m.r)
	rank := 0
	for col := 0; col < m.c && rank < len(rows); col++ {
		sel := -1
		for i := rank; i < len(rows); i++ {
			if rows[i].Bit(col) == 1 {
				sel = i
				break
			}
		}
		if sel < 0 {
			continue
		}
		rows[rank], rows[sel] = rows[sel], rows[rank]
		for i := range rows {
			if i != rank && rows[i].Bit(col) == 1 {
				rows[i].xorInPlace(rows[rank])
			}
		}
		pivots = append(pivots, col)
		rank++
	}
	out := &Matrix{r: rank, c: m.c, rows: rows[:rank]}

	return out, pivots
}

// NullSpace returns a basis of {x : m·xᵀ = 0} as the rows of a (c−rank)×c matrix.
// When m has full column rank the result has zero rows.
func (m *Matrix) NullSpace() *Matrix {
	rref, pivots := m.RREF()
	isPivot := make([]bool, m.c)
	for _, p := range pivots {
		isPivot[p] = true
	}
	out := &Matrix{r: 0, c: m.c}
	for f := 0; f < m.c; f++ {
		if isPivot[f] {
			continue
		}
		x := NewVector(m.c)
		x.SetBit(f, 1)
		for i, p := range pivots {
			if rref.rows[i].Bit(f) == 1 {
				x.SetBit(p, 1)
			}
		}
		out.rows = append(out.rows, x)
		out.r++
	}

	return out
}
