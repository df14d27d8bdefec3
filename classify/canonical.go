package classify

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/socodes/gf2"
)

// Canonical returns the canonical generator matrix of the code spanned by g,
// using default limits.
func Canonical(g *gf2.Matrix) (*gf2.Matrix, error) {
	return New().Canonical(g)
}

// Key returns the canonical key of the code spanned by g: equal keys if and
// only if the codes are permutation-equivalent.
func Key(g *gf2.Matrix) (string, error) {
	return New().Key(g)
}

// Equivalent reports whether a and b span permutation-equivalent codes.
func Equivalent(a, b *gf2.Matrix) (bool, error) {
	c := New()
	ka, err := c.Key(a)
	if err != nil {
		return false, err
	}
	kb, err := c.Key(b)
	if err != nil {
		return false, err
	}

	return ka == kb, nil
}

// Key returns the canonical key of the code spanned by g.
func (c *Classifier) Key(g *gf2.Matrix) (string, error) {
	m, err := c.Canonical(g)
	if err != nil {
		return "", err
	}

	return m.Key(), nil
}

// Canonical returns the canonical generator matrix of the code spanned by g.
// MAIN DESCRIPTION:
//   - Choose, among all ordered bases of the code, the one maximising the
//     refinement key, then sort the columns by their final cell.
//
// Errors:
//   - ErrNilMatrix for nil input.
//   - ErrTooLarge when g.Rows() exceeds MaxDimension.
//   - ErrClassification when g has no rows or dependent rows.
//
// Determinism:
//   - Candidates are scanned in coefficient-mask order; the result depends only
//     on the code, never on the basis or column order of g.
func (c *Classifier) Canonical(g *gf2.Matrix) (*gf2.Matrix, error) {
	if g == nil {
		return nil, ErrNilMatrix
	}
	k, n := g.Shape()
	if k == 0 {
		return nil, fmt.Errorf("Canonical: empty code: %w", ErrClassification)
	}
	if k > c.opts.MaxDimension {
		return nil, fmt.Errorf("Canonical: dimension %d > %d: %w", k, c.opts.MaxDimension, ErrTooLarge)
	}
	if r := g.Rank(); r != k {
		return nil, fmt.Errorf("Canonical: rank %d of %d rows: %w", r, k, ErrClassification)
	}

	s := newSearcher(g)
	all := make([]int, n)
	for j := range all {
		all[j] = j
	}
	s.descend(0, [][]int{all})

	order := make([]int, 0, n)
	for _, cell := range s.bestCells {
		order = append(order, cell...)
	}
	rows := make([]gf2.Vector, k)
	for i, x := range s.bestChosen {
		w := s.words[x]
		row := gf2.NewVector(n)
		for p, j := range order {
			if w.Bit(j) == 1 {
				row.SetBit(p, 1)
			}
		}
		rows[i] = row
	}

	return gf2.FromVectors(rows)
}

// searcher holds the state of one canonical-form search.
type searcher struct {
	k      int
	words  []gf2.Vector // words[mask] = Σ rows[i] for bits i of mask
	inSpan []bool       // membership of masks in span(chosen)
	span   []int        // masks of span(chosen), 2^len(chosen) entries
	chosen []int        // masks of the chosen basis rows, in order
	cur    [][]int      // refinement key of the current path, one segment per level

	found      bool
	best       [][]int
	bestChosen []int
	bestCells  [][]int
}

func newSearcher(g *gf2.Matrix) *searcher {
	k, n := g.Shape()
	rows := g.RowVectors()
	total := 1 << uint(k)
	words := make([]gf2.Vector, total)
	words[0] = gf2.NewVector(n)
	for mask := 1; mask < total; mask++ {
		lo := bits.TrailingZeros(uint(mask))
		words[mask], _ = words[mask&^(1<<uint(lo))].Xor(rows[lo])
	}
	s := &searcher{
		k:      k,
		words:  words,
		inSpan: make([]bool, total),
		span:   make([]int, 1, total),
	}
	s.inSpan[0] = true

	return s
}

// descend explores every maximal next row at the given level.
func (s *searcher) descend(level int, cells [][]int) {
	if level == s.k {
		if !s.found || compareKeys(s.cur, s.best) > 0 {
			s.best = cloneKey(s.cur)
			s.bestChosen = append([]int(nil), s.chosen...)
			s.bestCells = cloneKey(cells)
			s.found = true
		}
		return
	}

	// Stage 1: the largest split among rows outside the current span.
	var top, ties []int
	buf := make([]int, len(cells))
	for x := 1; x < len(s.words); x++ {
		if s.inSpan[x] {
			continue
		}
		splitInto(buf, cells, s.words[x])
		switch c := compareInts(buf, top); {
		case top == nil || c > 0:
			top = append(top[:0], buf...)
			ties = append(ties[:0], x)
		case c == 0:
			ties = append(ties, x)
		}
	}

	// Stage 2: compare the extended prefix with the best complete key.
	s.cur = append(s.cur, top)
	defer func() { s.cur = s.cur[:level] }()
	if s.found {
		switch c := compareKeys(s.cur, s.best[:level+1]); {
		case c < 0:
			return
		case c > 0:
			s.found = false
		}
	}

	// Stage 3: recurse into every tie.
	for _, x := range ties {
		s.choose(x)
		s.descend(level+1, refine(cells, s.words[x]))
		s.unchoose()
	}
}

// choose appends mask x to the basis and closes the span under it.
func (s *searcher) choose(x int) {
	s.chosen = append(s.chosen, x)
	size := len(s.span)
	for i := 0; i < size; i++ {
		y := s.span[i] ^ x
		s.inSpan[y] = true
		s.span = append(s.span, y)
	}
}

// unchoose reverts the last choose.
func (s *searcher) unchoose() {
	s.chosen = s.chosen[:len(s.chosen)-1]
	half := len(s.span) / 2
	for _, y := range s.span[half:] {
		s.inSpan[y] = false
	}
	s.span = s.span[:half]
}

// splitInto writes, for each cell, the number of its coordinates where w is 1.
func splitInto(dst []int, cells [][]int, w gf2.Vector) {
	for i, cell := range cells {
		ones := 0
		for _, j := range cell {
			ones += int(w.Bit(j))
		}
		dst[i] = ones
	}
}

// refine splits every cell into its 1-part followed by its 0-part.
func refine(cells [][]int, w gf2.Vector) [][]int {
	out := make([][]int, 0, 2*len(cells))
	for _, cell := range cells {
		var ones, zeros []int
		for _, j := range cell {
			if w.Bit(j) == 1 {
				ones = append(ones, j)
			} else {
				zeros = append(zeros, j)
			}
		}
		if len(ones) > 0 {
			out = append(out, ones)
		}
		if len(zeros) > 0 {
			out = append(out, zeros)
		}
	}

	return out
}

// compareInts compares a and b lexicographically; a nil b compares below anything.
func compareInts(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		switch {
		case a[i] > b[i]:
			return 1
		case a[i] < b[i]:
			return -1
		}
	}
	switch {
	case len(a) > len(b):
		return 1
	case len(a) < len(b):
		return -1
	}

	return 0
}

// compareKeys compares two refinement keys segment by segment.
func compareKeys(a, b [][]int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareInts(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) > len(b):
		return 1
	case len(a) < len(b):
		return -1
	}

	return 0
}

func cloneKey(k [][]int) [][]int {
	out := make([][]int, len(k))
	for i, seg := range k {
		out[i] = append([]int(nil), seg...)
	}

	return out
}
