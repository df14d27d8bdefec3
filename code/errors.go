package code

import "errors"

var (
	// ErrRank indicates that the generator rows are linearly dependent.
	ErrRank = errors.New("code: generator rows are not linearly independent")

	// ErrNilGenerator indicates that a nil generator matrix was supplied.
	ErrNilGenerator = errors.New("code: generator matrix is nil")

	// ErrInvalidDivisor indicates a non-positive weight divisor.
	ErrInvalidDivisor = errors.New("code: divisor must be positive")

	// ErrZeroDimension indicates that a derived code (e.g. the dual of a
	// code of dimension n) has no non-zero codeword.
	ErrZeroDimension = errors.New("code: code has dimension 0")

	// ErrTooManyCodewords indicates that a full codeword scan was requested for
	// a dimension above MaxScanDimension.
	ErrTooManyCodewords = errors.New("code: dimension too large for a codeword scan")
)
