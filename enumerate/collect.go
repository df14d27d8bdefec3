package enumerate

import (
	"context"
	"fmt"
	"iter"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/socodes/code"
)

// Shape is the (length, dimension) pair of a code.
type Shape struct {
	Length    int `json:"length" yaml:"length"`
	Dimension int `json:"dimension" yaml:"dimension"`
}

// String returns "[n, k]".
func (s Shape) String() string { return fmt.Sprintf("[%d, %d]", s.Length, s.Dimension) }

// ShapeOf returns the shape of c.
func ShapeOf(c *code.LinearCode) Shape {
	return Shape{Length: c.Length(), Dimension: c.Dimension()}
}

// Collect drains SelfOrthogonal(n, k, opts...) into a slice.
// The first error reported by the traversal is returned with no codes.
func Collect(n, k int, opts ...Option) ([]*code.LinearCode, error) {
	seq, err := SelfOrthogonal(n, k, opts...)
	if err != nil {
		return nil, err
	}

	return drain(seq)
}

func drain(seq iter.Seq2[*code.LinearCode, error]) ([]*code.LinearCode, error) {
	var out []*code.LinearCode
	for c, err := range seq {
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return out, nil
}

// CollectParallel returns the same codes as Collect, in the same order, while
// walking up to workers seed subtrees concurrently.
// MAIN DESCRIPTION:
//   - Every repetition-code seed roots an independent subtree; each subtree is
//     drained by its own goroutine into its own slot.
//   - Slots are concatenated in seed order once all workers finish.
//
// Errors:
//   - ErrInvalidParameter for a bad divisor (before any goroutine starts).
//   - The first traversal error; it cancels the remaining workers.
//
// Notes:
//   - workers <= 0 means one worker per seed.
//   - ctx overrides any WithContext option.
//   - An OnVisit hook is called from several goroutines and must be safe for that.
func CollectParallel(ctx context.Context, n, k, workers int, opts ...Option) ([]*code.LinearCode, error) {
	g, gctx := errgroup.WithContext(ctx)
	w, err := newWalker(n, k, append(opts[:len(opts):len(opts)], WithContext(gctx)))
	if err != nil {
		return nil, err
	}

	seeds := w.seedWidths()
	if workers > 0 {
		g.SetLimit(workers)
	}
	slots := make([][]*code.LinearCode, len(seeds))
	for i, j := range seeds {
		g.Go(func() error {
			codes, err := drain(w.subtree(j))
			if err != nil {
				return fmt.Errorf("CollectParallel: seed %d: %w", j, err)
			}
			slots[i] = codes
			w.opts.Logger.Debug("seed subtree collected", zap.Int("cols", j), zap.Int("codes", len(codes)))

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []*code.LinearCode
	for _, s := range slots {
		out = append(out, s...)
	}

	return out, nil
}

// Tally counts codes per shape.
func Tally(codes []*code.LinearCode) map[Shape]int {
	t := make(map[Shape]int)
	for _, c := range codes {
		t[ShapeOf(c)]++
	}

	return t
}
