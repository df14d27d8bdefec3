package enumerate

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/socodes/classify"
	"github.com/katalvlaran/socodes/gf2"
)

// ErrInvalidParameter is returned by SelfOrthogonal for a divisor that is not
// a positive even integer; the wrapped message reads
// "b (<value>) must be a positive even integer.".
var ErrInvalidParameter = errors.New("enumerate: invalid parameter")

// DefaultDivisor enumerates all self-orthogonal codes.
const DefaultDivisor = 2

// ChildGenerator produces the canonical one-row extensions of a parent matrix
// to cols columns with weights divisible by divisor. classify.Classifier is
// the production implementation.
type ChildGenerator interface {
	Children(parent *gf2.Matrix, cols, divisor int) ([]*gf2.Matrix, error)
}

var _ ChildGenerator = (*classify.Classifier)(nil)

// Option configures an enumeration.
type Option func(*Options)

// Options holds the configuration of one enumeration.
type Options struct {
	// Ctx allows cancellation; checked once per search node.
	Ctx context.Context

	// Divisor is b: every codeword weight is a multiple of it.
	// Must be a positive even integer.
	Divisor int

	// Exact restricts output to codes of length n and dimension k.
	Exact bool

	// Generator supplies canonical children. Defaults to classify.New().
	Generator ChildGenerator

	// Logger receives Debug-level traversal records. Defaults to zap.NewNop().
	Logger *zap.Logger

	// OnVisit, if non-nil, is called for every search node before it is
	// tested for output. Returning an error aborts the enumeration with it.
	OnVisit func(m *gf2.Matrix, depth int) error
}

// DefaultOptions returns:
//   - Background context
//   - Divisor 2 (all self-orthogonal codes)
//   - no size restriction
//   - a fresh classify.Classifier
//   - a no-op logger and no hook
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Divisor:   DefaultDivisor,
		Generator: classify.New(),
		Logger:    zap.NewNop(),
	}
}

// WithContext sets the cancellation context. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDivisor sets b. Validation happens in SelfOrthogonal so that a bad value
// is reported as an error rather than a panic.
func WithDivisor(b int) Option {
	return func(o *Options) { o.Divisor = b }
}

// WithDoublyEven is WithDivisor(4).
func WithDoublyEven() Option { return WithDivisor(4) }

// WithExactSize restricts output to [n, k] codes.
func WithExactSize() Option {
	return func(o *Options) { o.Exact = true }
}

// WithChildGenerator replaces the default classifier. A nil generator is ignored.
func WithChildGenerator(g ChildGenerator) Option {
	return func(o *Options) {
		if g != nil {
			o.Generator = g
		}
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnVisit installs a per-node hook.
func WithOnVisit(fn func(m *gf2.Matrix, depth int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}
