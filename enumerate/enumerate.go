package enumerate

import (
	"fmt"
	"iter"

	"go.uber.org/zap"

	"github.com/katalvlaran/socodes/code"
	"github.com/katalvlaran/socodes/gf2"
)

// walker is the immutable context of an enumeration, shared by every node.
type walker struct {
	n, k    int
	divisor int
	in, out Filter
	opts    Options
}

// SelfOrthogonal returns a lazy sequence of representatives of all permutation
// classes of self-orthogonal binary codes with length in [1, n], dimension in
// [1, k] and every weight divisible by the configured divisor.
//
// The divisor is validated before the sequence is built: an odd, zero or
// negative value returns ErrInvalidParameter and a nil sequence. k < 1 or
// n < 2 gives an empty sequence. Each range over the returned sequence is an
// independent traversal; breaking out of the loop early is safe.
//
// Example:
//
//	seq, err := enumerate.SelfOrthogonal(7, 3, enumerate.WithDoublyEven())
//	if err != nil { ... }
//	for c, err := range seq {
//		if err != nil { ... }
//		fmt.Println(c)
//	}
func SelfOrthogonal(n, k int, opts ...Option) (iter.Seq2[*code.LinearCode, error], error) {
	w, err := newWalker(n, k, opts)
	if err != nil {
		return nil, err
	}

	return w.all, nil
}

func newWalker(n, k int, opts []Option) (*walker, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := validateDivisor(o.Divisor); err != nil {
		return nil, err
	}
	in, out := filtersFor(n, k, o.Exact)

	return &walker{n: n, k: k, divisor: o.Divisor, in: in, out: out, opts: o}, nil
}

// validateDivisor reports a divisor that is not a positive even integer.
func validateDivisor(b int) error {
	if b <= 0 || b%2 != 0 {
		return fmt.Errorf("%w: b (%d) must be a positive even integer.", ErrInvalidParameter, b)
	}

	return nil
}

// seedWidths returns the lengths of the admitted repetition-code seeds, ascending.
func (w *walker) seedWidths() []int {
	if w.k < 1 || w.n < 2 {
		return nil
	}
	var widths []int
	for j := w.divisor; j <= w.n; j += w.divisor {
		if w.in.admit(j, 1) {
			widths = append(widths, j)
		}
	}

	return widths
}

// all walks every seed subtree in order.
func (w *walker) all(yield func(*code.LinearCode, error) bool) {
	t := &traversal{w: w, yield: yield}
	for _, j := range w.seedWidths() {
		if !t.seed(j) {
			break
		}
	}
	w.opts.Logger.Debug("enumeration finished",
		zap.Int("n", w.n),
		zap.Int("k", w.k),
		zap.Int("divisor", w.divisor),
		zap.Int("visited", t.visited),
		zap.Int("yielded", t.yielded),
	)
}

// subtree returns the sequence of codes below the length-j seed only.
func (w *walker) subtree(j int) iter.Seq2[*code.LinearCode, error] {
	return func(yield func(*code.LinearCode, error) bool) {
		t := &traversal{w: w, yield: yield}
		t.seed(j)
	}
}

// traversal holds the per-range state: the consumer callback and counters.
type traversal struct {
	w       *walker
	yield   func(*code.LinearCode, error) bool
	stopped bool
	visited int
	yielded int
}

// fail hands err to the consumer once and stops the traversal.
func (t *traversal) fail(err error) bool {
	if !t.stopped {
		t.stopped = true
		t.yield(nil, err)
	}

	return false
}

// seed visits the 1×j all-ones matrix as a depth-1 node.
func (t *traversal) seed(j int) bool {
	t.w.opts.Logger.Debug("seed", zap.Int("cols", j))
	m, err := gf2.Ones(1, j)
	if err != nil {
		return t.fail(fmt.Errorf("enumerate: seed %d: %w", j, err))
	}

	return t.visit(m, 1)
}

// visit emits parent if it passes the output filter, then expands it.
// It returns false once the consumer stopped or an error was reported.
func (t *traversal) visit(parent *gf2.Matrix, depth int) bool {
	w := t.w
	// 1. Cancellation check
	if err := w.opts.Ctx.Err(); err != nil {
		return t.fail(err)
	}
	t.visited++

	// 2. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(parent, depth); err != nil {
			return t.fail(fmt.Errorf("enumerate: OnVisit hook at depth %d: %w", depth, err))
		}
	}

	// 3. Output
	c, err := code.New(parent)
	if err != nil {
		return t.fail(err)
	}
	if w.out.AdmitCode(c) {
		t.yielded++
		if !t.yield(c, nil) {
			t.stopped = true
			return false
		}
	}

	// 4. Dimension ceiling and admission, once per node
	if parent.Rows() == w.k || !w.in.AdmitMatrix(parent) {
		return true
	}

	// 5. Children for every wider column count
	for nn := parent.Cols() + 1; nn <= w.n; nn++ {
		children, err := w.opts.Generator.Children(parent, nn, w.divisor)
		if err != nil {
			return t.fail(err)
		}
		for _, child := range children {
			if !t.visit(child, depth+1) {
				return false
			}
		}
	}

	return true
}
