// SPDX-License-Identifier: MIT

// Package gf2 - Vector: packed bit storage & word-level arithmetic.
//
// Purpose:
//   - Store n bits in ⌈n/64⌉ uint64 words; bit j lives in word j/64 at position j%64.
//   - Keep the bits above n in the last word zero at all times, so Weight,
//     Equal and Key can work on whole words without masking.
//
// Complexity quicksheet:
//   - NewVector: O(w); Bit/SetBit: O(1); Weight/Dot/Xor/Equal: O(w).

package gf2

import (
	"fmt"
	"math/bits"
	"strings"
)

const wordBits = 64

// Vector is a fixed-length vector over GF(2).
// The zero value is the empty vector of length 0.
type Vector struct {
	n int      // number of coordinates
	w []uint64 // packed bits, len == wordsFor(n)
}

// wordsFor returns the number of uint64 words needed to hold n bits.
func wordsFor(n int) int { return (n + wordBits - 1) / wordBits }

// tailMask returns the mask of valid bits in the last word of an n-bit vector.
func tailMask(n int) uint64 {
	r := n % wordBits
	if r == 0 {
		return ^uint64(0)
	}

	return (uint64(1) << uint(r)) - 1
}

// NewVector returns the zero vector of length n. Negative n yields length 0.
func NewVector(n int) Vector {
	if n < 0 {
		n = 0
	}

	return Vector{n: n, w: make([]uint64, wordsFor(n))}
}

// OnesVector returns the all-ones vector of length n.
func OnesVector(n int) Vector {
	v := NewVector(n)
	for i := range v.w {
		v.w[i] = ^uint64(0)
	}
	if len(v.w) > 0 {
		v.w[len(v.w)-1] &= tailMask(n)
	}

	return v
}

// VectorFromBits builds a Vector from 0/1 entries.
// Returns ErrNonBinary if any entry is not 0 or 1.
func VectorFromBits(b []uint8) (Vector, error) {
	v := NewVector(len(b))
	for j, x := range b {
		switch x {
		case 0:
		case 1:
			v.w[j/wordBits] |= uint64(1) << uint(j%wordBits)
		default:
			return Vector{}, fmt.Errorf("VectorFromBits(%d): %w", j, ErrNonBinary)
		}
	}

	return v, nil
}

// Len returns the number of coordinates.
func (v Vector) Len() int { return v.n }

// Bit returns coordinate j (0 or 1). It panics if j is out of range,
// like slice indexing; use Matrix.At for a checked read.
func (v Vector) Bit(j int) uint8 {
	if j < 0 || j >= v.n {
		panic(fmt.Sprintf("gf2: Vector.Bit(%d) out of range [0,%d)", j, v.n))
	}

	return uint8(v.w[j/wordBits] >> uint(j%wordBits) & 1)
}

// SetBit assigns coordinate j. Any non-zero b sets the bit.
// It panics if j is out of range.
func (v Vector) SetBit(j int, b uint8) {
	if j < 0 || j >= v.n {
		panic(fmt.Sprintf("gf2: Vector.SetBit(%d) out of range [0,%d)", j, v.n))
	}
	m := uint64(1) << uint(j%wordBits)
	if b != 0 {
		v.w[j/wordBits] |= m
	} else {
		v.w[j/wordBits] &^= m
	}
}

// Weight returns the Hamming weight (number of ones).
func (v Vector) Weight() int {
	total := 0
	for _, x := range v.w {
		total += bits.OnesCount64(x)
	}

	return total
}

// Overlap returns the number of coordinates where both v and u are 1.
// Vectors of different lengths are compared on their common prefix.
func (v Vector) Overlap(u Vector) int {
	n := len(v.w)
	if len(u.w) < n {
		n = len(u.w)
	}
	total := 0
	for i := 0; i < n; i++ {
		total += bits.OnesCount64(v.w[i] & u.w[i])
	}

	return total
}

// Dot returns the standard GF(2) inner product of v and u.
// Returns ErrDimensionMismatch if the lengths differ.
func (v Vector) Dot(u Vector) (uint8, error) {
	if v.n != u.n {
		return 0, fmt.Errorf("Vector.Dot(%d,%d): %w", v.n, u.n, ErrDimensionMismatch)
	}

	return uint8(v.Overlap(u) & 1), nil
}

// Xor returns v+u as a new vector. Returns ErrDimensionMismatch if the lengths differ.
func (v Vector) Xor(u Vector) (Vector, error) {
	if v.n != u.n {
		return Vector{}, fmt.Errorf("Vector.Xor(%d,%d): %w", v.n, u.n, ErrDimensionMismatch)
	}
	out := v.Clone()
	out.xorInPlace(u)

	return out, nil
}

// xorInPlace adds u into v word by word. Lengths are the caller's responsibility.
func (v Vector) xorInPlace(u Vector) {
	for i := range v.w {
		v.w[i] ^= u.w[i]
	}
}

// IsZero reports whether every coordinate is 0.
func (v Vector) IsZero() bool {
	for _, x := range v.w {
		if x != 0 {
			return false
		}
	}

	return true
}

// FirstSet returns the smallest index holding a 1, or -1 for the zero vector.
func (v Vector) FirstSet() int {
	for i, x := range v.w {
		if x != 0 {
			return i*wordBits + bits.TrailingZeros64(x)
		}
	}

	return -1
}

// Ones returns the indices of the 1-coordinates in ascending order.
func (v Vector) Ones() []int {
	out := make([]int, 0, v.Weight())
	for i, x := range v.w {
		for x != 0 {
			tz := bits.TrailingZeros64(x)
			out = append(out, i*wordBits+tz)
			x &= x - 1
		}
	}

	return out
}

// Equal reports whether v and u have the same length and coordinates.
func (v Vector) Equal(u Vector) bool {
	if v.n != u.n {
		return false
	}
	for i := range v.w {
		if v.w[i] != u.w[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	cp := make([]uint64, len(v.w))
	copy(cp, v.w)

	return Vector{n: v.n, w: cp}
}

// Resize returns a copy of v with length n: longer vectors are zero-extended,
// shorter ones are truncated.
func (v Vector) Resize(n int) Vector {
	out := NewVector(n)
	copy(out.w, v.w)
	if len(out.w) > 0 {
		out.w[len(out.w)-1] &= tailMask(n)
	}

	return out
}

// Bits returns the coordinates as a 0/1 slice.
func (v Vector) Bits() []uint8 {
	out := make([]uint8, v.n)
	for j := range out {
		out[j] = v.Bit(j)
	}

	return out
}

// String renders v as "[1 0 1 1]".
func (v Vector) String() string {
	var sb strings.Builder
	sb.Grow(2*v.n + 2)
	sb.WriteByte('[')
	for j := 0; j < v.n; j++ {
		if j > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('0' + v.Bit(j))
	}
	sb.WriteByte(']')

	return sb.String()
}
