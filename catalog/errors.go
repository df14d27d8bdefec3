package catalog

import "errors"

var (
	// ErrNotFound indicates a missing catalog file opened with WithMustExist.
	ErrNotFound = errors.New("catalog: catalog file not found")

	// ErrRunNotFound indicates an unknown run identifier.
	ErrRunNotFound = errors.New("catalog: run not found")

	// ErrDuplicate indicates a code whose permutation class is already stored in the run.
	ErrDuplicate = errors.New("catalog: code class already stored in run")

	// ErrClosed indicates use of a closed Store.
	ErrClosed = errors.New("catalog: store is closed")

	// ErrCorrupt indicates a stored row that cannot be decoded.
	ErrCorrupt = errors.New("catalog: corrupt record")
)
