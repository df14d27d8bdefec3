package classify

import (
	"fmt"

	"go.uber.org/zap"
)

const (
	// DefaultMaxDimension bounds the code dimension accepted by Canonical
	// (the search scans 2^k codewords per level).
	DefaultMaxDimension = 20

	// DefaultMaxCosetBits bounds log2 of the number of cosets Children scans
	// for one (parent, cols) pair.
	DefaultMaxCosetBits = 26
)

// Option configures a Classifier.
type Option func(*Options)

// Options holds Classifier settings.
type Options struct {
	// Logger receives Debug-level records for each Children call.
	// Defaults to zap.NewNop().
	Logger *zap.Logger

	// MaxDimension is the largest dimension Canonical accepts.
	MaxDimension int

	// MaxCosetBits is the largest log2(#cosets) Children accepts.
	MaxCosetBits int
}

// DefaultOptions returns the default limits with a no-op logger.
func DefaultOptions() Options {
	return Options{
		Logger:       zap.NewNop(),
		MaxDimension: DefaultMaxDimension,
		MaxCosetBits: DefaultMaxCosetBits,
	}
}

// WithLogger sets the logger. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxDimension sets the dimension limit. It panics if d <= 0.
func WithMaxDimension(d int) Option {
	if d <= 0 {
		panic(fmt.Sprintf("classify: WithMaxDimension(%d): must be > 0", d))
	}

	return func(o *Options) { o.MaxDimension = d }
}

// WithMaxCosetBits sets the coset limit. It panics if b < 0.
func WithMaxCosetBits(b int) Option {
	if b < 0 {
		panic(fmt.Sprintf("classify: WithMaxCosetBits(%d): must be >= 0", b))
	}

	return func(o *Options) { o.MaxCosetBits = b }
}

// Classifier canonicalises binary codes and generates canonical children.
type Classifier struct {
	opts Options
}

// New returns a Classifier configured by opts.
func New(opts ...Option) *Classifier {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Classifier{opts: o}
}
