package code

import (
	"fmt"

	"github.com/katalvlaran/socodes/gf2"
)

// MaxScanDimension bounds the dimension accepted by full codeword scans
// (2^MaxScanDimension codewords).
const MaxScanDimension = 30

// LinearCode is a binary linear code with a fixed generator matrix.
type LinearCode struct {
	g *gf2.Matrix // owned copy, never mutated
}

// New wraps a copy of g as a LinearCode.
// Returns ErrNilGenerator for nil and ErrRank when rows are dependent.
func New(g *gf2.Matrix) (*LinearCode, error) {
	if g == nil {
		return nil, ErrNilGenerator
	}
	if r := g.Rank(); r != g.Rows() {
		return nil, fmt.Errorf("code.New: rank %d of %d rows: %w", r, g.Rows(), ErrRank)
	}

	return &LinearCode{g: g.Clone()}, nil
}

// Length returns the number of coordinates (generator columns).
func (c *LinearCode) Length() int { return c.g.Cols() }

// Dimension returns the number of generator rows.
func (c *LinearCode) Dimension() int { return c.g.Rows() }

// GeneratorMatrix returns a copy of the generator matrix.
func (c *LinearCode) GeneratorMatrix() *gf2.Matrix { return c.g.Clone() }

// String renders the code the way coding-theory systems print it:
// "[7, 3] linear code over GF(2)".
func (c *LinearCode) String() string {
	return fmt.Sprintf("[%d, %d] linear code over GF(2)", c.Length(), c.Dimension())
}

// IsSelfOrthogonal reports whether the code is contained in its dual.
func (c *LinearCode) IsSelfOrthogonal() bool { return c.g.IsSelfOrthogonal() }

// DivisibleBy reports whether every codeword weight is a multiple of b.
// For b = 2 and b = 4 the generator rows suffice (with self-orthogonality for 4);
// other divisors scan every codeword.
func (c *LinearCode) DivisibleBy(b int) (bool, error) {
	if b <= 0 {
		return false, fmt.Errorf("code.DivisibleBy(%d): %w", b, ErrInvalidDivisor)
	}
	switch b {
	case 1:
		return true, nil
	case 2:
		return c.rowsDivisibleBy(2), nil
	case 4:
		return c.rowsDivisibleBy(4) && c.IsSelfOrthogonal(), nil
	}
	if c.Dimension() > MaxScanDimension {
		return false, ErrTooManyCodewords
	}
	for w := range c.Codewords() {
		if w.Weight()%b != 0 {
			return false, nil
		}
	}

	return true, nil
}

// IsDoublyEven reports whether every codeword weight is divisible by 4.
func (c *LinearCode) IsDoublyEven() bool {
	ok, _ := c.DivisibleBy(4)

	return ok
}

func (c *LinearCode) rowsDivisibleBy(b int) bool {
	for i := 0; i < c.g.Rows(); i++ {
		if c.g.RowWeight(i)%b != 0 {
			return false
		}
	}

	return true
}

// Dual returns the dual code C⊥.
// Returns ErrZeroDimension when C is the whole space GF(2)^n.
func (c *LinearCode) Dual() (*LinearCode, error) {
	ns := c.g.NullSpace()
	if ns.Rows() == 0 {
		return nil, ErrZeroDimension
	}

	return New(ns)
}
