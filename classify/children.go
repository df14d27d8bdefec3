package classify

import (
	"fmt"
	"math/bits"

	"go.uber.org/zap"

	"github.com/katalvlaran/socodes/gf2"
)

// Children returns the canonical one-row extensions of parent to cols columns
// whose weights are divisible by divisor.
// MAIN DESCRIPTION:
//   - Each returned matrix has parent.Rows()+1 rows and cols columns, is the
//     canonical generator of a self-orthogonal code with full support, and
//     has every codeword weight divisible by divisor.
//   - Returned codes are pairwise inequivalent, and each is returned only from
//     (an equivalent of) its canonical parent, so no class is produced twice
//     across a whole search tree.
//
// Implementation:
//   - Stage 1: validate the request and canonicalise parent.
//   - Stage 2: build coset representatives of parent inside its dual.
//   - Stage 3: for each representative u, form w = (u | 1…1), test divisibility,
//     canonicalise parent+w, drop repeats and children of another parent.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidTarget, ErrInvalidDivisor for bad arguments.
//   - ErrNotSelfOrthogonal, ErrNotDivisible for an inadmissible parent.
//   - ErrTooLarge when the coset space or a dimension exceeds the limits.
//   - ErrClassification on internal inconsistency.
func (c *Classifier) Children(parent *gf2.Matrix, cols, divisor int) ([]*gf2.Matrix, error) {
	if parent == nil {
		return nil, ErrNilMatrix
	}
	m := parent.Cols()
	if cols <= m {
		return nil, fmt.Errorf("Children(%d): parent has %d columns: %w", cols, m, ErrInvalidTarget)
	}
	if divisor <= 0 || divisor%2 != 0 {
		return nil, fmt.Errorf("Children: divisor %d: %w", divisor, ErrInvalidDivisor)
	}
	if !parent.IsSelfOrthogonal() {
		return nil, ErrNotSelfOrthogonal
	}

	parentCanon, err := c.Canonical(parent)
	if err != nil {
		return nil, fmt.Errorf("Children: parent: %w", err)
	}
	parentKey := parentCanon.Key()

	parentWords, err := c.parentWords(parent, cols, divisor)
	if err != nil {
		return nil, err
	}

	reps := cosetBasis(parent)
	if len(reps) > c.opts.MaxCosetBits {
		return nil, fmt.Errorf("Children: %d coset bits > %d: %w", len(reps), c.opts.MaxCosetBits, ErrTooLarge)
	}
	padded, err := parent.PadColumns(cols)
	if err != nil {
		return nil, err
	}

	var (
		out  []*gf2.Matrix
		seen = make(map[string]struct{})
		u    = gf2.NewVector(m)
	)
	total := uint64(1) << uint(len(reps))
	for i := uint64(0); i < total; i++ {
		if i > 0 {
			// Gray-code walk: one representative changes per step.
			u, _ = u.Xor(reps[bits.TrailingZeros64(i)])
		}
		w := u.Resize(cols)
		for j := m; j < cols; j++ {
			w.SetBit(j, 1)
		}
		if !admissible(w, parentWords, divisor) {
			continue
		}

		child, err := padded.AppendRow(w)
		if err != nil {
			return nil, err
		}
		canon, err := c.Canonical(child)
		if err != nil {
			return nil, fmt.Errorf("Children: child: %w", err)
		}
		key := canon.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		cp, err := c.CanonicalParent(canon)
		if err != nil {
			return nil, err
		}
		cpKey, err := c.Key(cp)
		if err != nil {
			return nil, fmt.Errorf("Children: canonical parent: %w", err)
		}
		if cpKey != parentKey {
			continue
		}
		out = append(out, canon)
	}

	c.opts.Logger.Debug("children generated",
		zap.Int("parent_rows", parent.Rows()),
		zap.Int("parent_cols", m),
		zap.Int("cols", cols),
		zap.Int("divisor", divisor),
		zap.Int("cosets", int(total)),
		zap.Int("classes", len(seen)),
		zap.Int("children", len(out)),
	)

	return out, nil
}

// CanonicalParent shortens the canonical matrix g on its last coordinate and
// restricts the result to its support. g must be a canonical generator of a
// code with full support and dimension at least 2.
func (c *Classifier) CanonicalParent(g *gf2.Matrix) (*gf2.Matrix, error) {
	if g == nil {
		return nil, ErrNilMatrix
	}
	if g.Rows() < 2 {
		return nil, fmt.Errorf("CanonicalParent: dimension %d: %w", g.Rows(), ErrClassification)
	}
	last := g.Cols() - 1
	rows := g.RowVectors()
	pivot := -1
	kept := make([]gf2.Vector, 0, len(rows)-1)
	for i, v := range rows {
		if v.Bit(last) == 0 {
			kept = append(kept, v)
			continue
		}
		if pivot < 0 {
			pivot = i
			continue
		}
		x, _ := v.Xor(rows[pivot])
		kept = append(kept, x)
	}
	if pivot < 0 {
		return nil, fmt.Errorf("CanonicalParent: zero coordinate %d: %w", last, ErrClassification)
	}
	short, err := gf2.FromVectors(kept)
	if err != nil {
		return nil, fmt.Errorf("CanonicalParent: %w", err)
	}

	return short.SelectColumns(short.Support())
}

// cosetBasis returns vectors whose span complements the code of g inside its
// dual. For self-orthogonal g with r rows and m columns there are m−2r of them.
func cosetBasis(g *gf2.Matrix) []gf2.Vector {
	acc := gf2.NewBasis(g.Cols())
	for _, row := range g.RowVectors() {
		_, _ = acc.Add(row)
	}
	var reps []gf2.Vector
	for _, d := range g.NullSpace().RowVectors() {
		if added, _ := acc.Add(d); added {
			reps = append(reps, d)
		}
	}

	return reps
}

// parentWords validates that every parent codeword weight is divisible by
// divisor and returns the codewords padded to cols when the child test needs
// them (divisors other than 2 and 4).
func (c *Classifier) parentWords(parent *gf2.Matrix, cols, divisor int) ([]gf2.Vector, error) {
	for i := 0; i < parent.Rows(); i++ {
		if parent.RowWeight(i)%divisor != 0 {
			return nil, fmt.Errorf("Children: row %d weight %d: %w", i, parent.RowWeight(i), ErrNotDivisible)
		}
	}
	if divisor == 2 || divisor == 4 {
		// Self-orthogonal rows with weights ≡ 0 (mod 4) span a doubly-even code.
		return nil, nil
	}
	if parent.Rows() > c.opts.MaxDimension {
		return nil, fmt.Errorf("Children: dimension %d > %d: %w", parent.Rows(), c.opts.MaxDimension, ErrTooLarge)
	}
	rows := parent.RowVectors()
	total := 1 << uint(len(rows))
	words := make([]gf2.Vector, total)
	words[0] = gf2.NewVector(cols)
	for mask := 1; mask < total; mask++ {
		lo := bits.TrailingZeros(uint(mask))
		words[mask], _ = words[mask&^(1<<uint(lo))].Xor(rows[lo].Resize(cols))
		if words[mask].Weight()%divisor != 0 {
			return nil, fmt.Errorf("Children: codeword weight %d: %w", words[mask].Weight(), ErrNotDivisible)
		}
	}

	return words, nil
}

// admissible reports whether every word of the coset w + P has weight
// divisible by divisor. For 2 and 4 the weight of w decides for the coset.
func admissible(w gf2.Vector, parentWords []gf2.Vector, divisor int) bool {
	wt := w.Weight()
	if wt%divisor != 0 {
		return false
	}
	for _, p := range parentWords {
		if (wt+p.Weight()-2*w.Overlap(p))%divisor != 0 {
			return false
		}
	}

	return true
}
