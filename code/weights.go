package code

import (
	"iter"
	"math/bits"

	"github.com/katalvlaran/socodes/gf2"
)

// Codewords yields every codeword, starting with the zero word, in Gray-code
// order: consecutive words differ by exactly one generator row.
// Each yielded Vector is a fresh copy the caller may keep.
func (c *LinearCode) Codewords() iter.Seq[gf2.Vector] {
	return func(yield func(gf2.Vector) bool) {
		rows := c.g.RowVectors()
		cur := gf2.NewVector(c.Length())
		if !yield(cur.Clone()) {
			return
		}
		total := uint64(1) << uint(len(rows))
		for i := uint64(1); i < total; i++ {
			// Gray code i^(i>>1) flips the bit at the lowest set position of i.
			next, _ := cur.Xor(rows[bits.TrailingZeros64(i)])
			cur = next
			if !yield(cur.Clone()) {
				return
			}
		}
	}
}

// WeightDistribution returns A where A[w] is the number of codewords of weight w.
// Returns ErrTooManyCodewords above MaxScanDimension.
func (c *LinearCode) WeightDistribution() ([]int, error) {
	if c.Dimension() > MaxScanDimension {
		return nil, ErrTooManyCodewords
	}
	dist := make([]int, c.Length()+1)
	for w := range c.Codewords() {
		dist[w.Weight()]++
	}

	return dist, nil
}

// MinimumDistance returns the smallest non-zero codeword weight.
func (c *LinearCode) MinimumDistance() (int, error) {
	dist, err := c.WeightDistribution()
	if err != nil {
		return 0, err
	}

	return MinimumWeight(dist), nil
}

// MinimumWeight returns the smallest w >= 1 with dist[w] > 0, or 0 when the
// distribution has no non-zero codeword.
func MinimumWeight(dist []int) int {
	for w := 1; w < len(dist); w++ {
		if dist[w] > 0 {
			return w
		}
	}

	return 0
}
