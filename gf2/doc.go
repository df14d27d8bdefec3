// SPDX-License-Identifier: MIT

// Package gf2 provides bit-packed vectors and matrices over the binary field GF(2).
//
// The package provides:
//
//   - Vector: a fixed-length bit vector packed into uint64 words, with
//     Weight, Dot (standard GF(2) inner product), Xor and Resize.
//   - Matrix: a rows×cols generator-style matrix whose rows are Vectors.
//     Construction (New, FromRows, FromVectors, Ones) validates shape and
//     entries; accessors (At, Set, Row) return errors instead of panicking.
//   - Linear algebra: Rank, RREF, NullSpace and an incremental echelon Basis
//     for span membership tests.
//   - Structural helpers used by code classification: PadColumns,
//     AppendRow, SelectColumns, Support and IsSelfOrthogonal. All of them
//     return new matrices; a Matrix is never modified behind a caller's back.
//
// Determinism:
//
//	Every routine scans rows and columns in index order; there is no map
//	iteration and no randomness, so equal inputs produce equal outputs.
//
// Complexity quicksheet (w = ⌈cols/64⌉):
//
//	At/Set: O(1); Weight/Dot/Xor: O(w); Rank/RREF: O(rows²·w); NullSpace: O(rows·cols·w).
//
// Errors are package sentinels (see errors.go) and must be matched with errors.Is.
package gf2
