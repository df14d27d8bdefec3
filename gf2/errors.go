// SPDX-License-Identifier: MIT
// Package gf2: sentinel error set.
// All algorithms return these sentinels (possibly wrapped with the method
// context via fmt.Errorf("Op: %w")); tests match them with errors.Is.
// Panics are reserved for programmer errors in private helpers.

package gf2

import "errors"

var (
	// ErrInvalidDimensions indicates negative (or, for public constructors, zero) dimensions.
	ErrInvalidDimensions = errors.New("gf2: dimensions must be > 0")

	// ErrDimensionMismatch indicates rows of inconsistent length, or operands
	// whose lengths do not agree (Dot, Xor, AppendRow).
	ErrDimensionMismatch = errors.New("gf2: dimension mismatch")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("gf2: index out of range")

	// ErrNonBinary indicates an entry other than 0 or 1 at ingestion.
	ErrNonBinary = errors.New("gf2: entry is not 0 or 1")

	// ErrNilMatrix indicates that a nil *Matrix was used.
	ErrNilMatrix = errors.New("gf2: nil matrix")
)
