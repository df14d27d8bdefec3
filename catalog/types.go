package catalog

import (
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/socodes/classify"
	"github.com/katalvlaran/socodes/code"
)

// Params are the enumeration parameters recorded with a run.
type Params struct {
	N     int  `json:"n" yaml:"n"`
	K     int  `json:"k" yaml:"k"`
	B     int  `json:"b" yaml:"b"`
	Exact bool `json:"exact" yaml:"exact"`
}

// Run is one recorded enumeration.
type Run struct {
	ID         string    `json:"id" yaml:"id"`
	Params     Params    `json:"params" yaml:"params"`
	StartedAt  time.Time `json:"started_at" yaml:"started_at"`
	FinishedAt time.Time `json:"finished_at,omitempty" yaml:"finished_at,omitempty"`
	Finished   bool      `json:"finished" yaml:"finished"`
	Count      int       `json:"count" yaml:"count"`
}

// Entry is a stored code with its recorded invariants.
type Entry struct {
	Seq                int              `json:"seq" yaml:"seq"`
	Key                string           `json:"key" yaml:"key"`
	MinimumDistance    int              `json:"minimum_distance" yaml:"minimum_distance"`
	WeightDistribution []int            `json:"weight_distribution" yaml:"weight_distribution"`
	Code               *code.LinearCode `json:"-" yaml:"-"`
}

// Option configures a Store.
type Option func(*Options)

// Options holds Store settings.
type Options struct {
	// Logger receives Debug-level bookkeeping records. Defaults to zap.NewNop().
	Logger *zap.Logger

	// Classifier computes the canonical keys used for deduplication.
	Classifier *classify.Classifier

	// Now stamps run start and finish times.
	Now func() time.Time

	// MustExist makes Open fail with ErrNotFound instead of creating a new file.
	MustExist bool
}

// DefaultOptions returns a no-op logger, a default classifier and time.Now.
func DefaultOptions() Options {
	return Options{
		Logger:     zap.NewNop(),
		Classifier: classify.New(),
		Now:        time.Now,
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

// WithClassifier sets the classifier. A nil classifier is ignored.
func WithClassifier(c *classify.Classifier) Option {
	return func(o *Options) {
		if c != nil {
			o.Classifier = c
		}
	}
}

// WithMustExist makes Open refuse to create a missing catalog file.
// Readers use it so a mistyped path is reported rather than silently created.
func WithMustExist() Option {
	return func(o *Options) { o.MustExist = true }
}

// WithClock replaces time.Now. A nil function is ignored.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		if now != nil {
			o.Now = now
		}
	}
}
