package classify

import "errors"

var (
	// ErrClassification indicates an internal inconsistency: a matrix that
	// violates an invariant the classifier relies on (dependent rows, a
	// zero coordinate in a canonical child, an empty code).
	ErrClassification = errors.New("classify: classification failed")

	// ErrTooLarge indicates that a code exceeds the configured search limits
	// (dimension for canonical forms, coset bits for child generation).
	ErrTooLarge = errors.New("classify: code exceeds search limits")

	// ErrNilMatrix indicates that a nil matrix was passed in.
	ErrNilMatrix = errors.New("classify: matrix is nil")

	// ErrInvalidTarget indicates a target column count not greater than the parent's.
	ErrInvalidTarget = errors.New("classify: target columns must exceed parent columns")

	// ErrInvalidDivisor indicates a divisor that is not a positive even integer.
	ErrInvalidDivisor = errors.New("classify: divisor must be a positive even integer")

	// ErrNotSelfOrthogonal indicates a parent code that is not self-orthogonal.
	ErrNotSelfOrthogonal = errors.New("classify: parent code is not self-orthogonal")

	// ErrNotDivisible indicates a parent code with a codeword weight not divisible by the divisor.
	ErrNotDivisible = errors.New("classify: parent code weights not divisible by divisor")
)
