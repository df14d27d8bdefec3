package main

import (
	"context"
	"fmt"
	"iter"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/socodes/catalog"
	"github.com/katalvlaran/socodes/classify"
	"github.com/katalvlaran/socodes/code"
	"github.com/katalvlaran/socodes/enumerate"
)

func (a *app) enumerateCmd() *cobra.Command {
	var (
		configFile string
		flags      = DefaultConfig()
	)
	cmd := &cobra.Command{
		Use:   "enumerate",
		Short: "list self-orthogonal codes up to equivalence",
		Example: `  socodes enumerate --n 7 --k 3
  socodes enumerate --n 8 --k 4 --b 4 --equal --format json
  socodes enumerate --config run.yaml --store codes.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, configFile, flags)
			if err != nil {
				return err
			}
			return a.runEnumerate(cmd, cfg)
		},
	}
	f := cmd.Flags()
	f.IntVar(&flags.N, "n", DefaultN, "maximum code length")
	f.IntVar(&flags.K, "k", DefaultK, "maximum code dimension")
	f.IntVar(&flags.B, "b", DefaultB, "weight divisor (positive even integer)")
	f.BoolVar(&flags.Equal, "equal", false, "only codes of length n and dimension k")
	f.StringVar(&flags.Format, "format", DefaultFormat, "output format: text, json or yaml")
	f.IntVar(&flags.Workers, "workers", DefaultWorkers, "parallel seed workers (>1 collects before printing)")
	f.StringVar(&flags.Store, "store", "", "record the run in this catalog file")
	f.StringVar(&configFile, "config", "", "config file path (yaml)")

	return cmd
}

// resolveConfig loads path (or the defaults) and applies explicitly set flags on top.
func resolveConfig(cmd *cobra.Command, path string, flags *Config) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = Load(path); err != nil {
			return nil, err
		}
	}
	f := cmd.Flags()
	if f.Changed("n") {
		cfg.N = flags.N
	}
	if f.Changed("k") {
		cfg.K = flags.K
	}
	if f.Changed("b") {
		cfg.B = flags.B
	}
	if f.Changed("equal") {
		cfg.Equal = flags.Equal
	}
	if f.Changed("format") {
		cfg.Format = flags.Format
	}
	if f.Changed("workers") {
		cfg.Workers = flags.Workers
	}
	if f.Changed("store") {
		cfg.Store = flags.Store
	}
	if !validFormat(cfg.Format) {
		return nil, fmt.Errorf("unknown format %q (want text, json or yaml)", cfg.Format)
	}

	return cfg, nil
}

func (a *app) runEnumerate(cmd *cobra.Command, cfg *Config) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []enumerate.Option{
		enumerate.WithDivisor(cfg.B),
		enumerate.WithLogger(a.logger),
		enumerate.WithChildGenerator(classify.New(classify.WithLogger(a.logger))),
	}
	if cfg.Equal {
		opts = append(opts, enumerate.WithExactSize())
	}

	var seq iter.Seq2[*code.LinearCode, error]
	if cfg.Workers > 1 {
		codes, err := enumerate.CollectParallel(ctx, cfg.N, cfg.K, cfg.Workers, opts...)
		if err != nil {
			return err
		}
		seq = values(codes)
	} else {
		var err error
		if seq, err = enumerate.SelfOrthogonal(cfg.N, cfg.K, append(opts, enumerate.WithContext(ctx))...); err != nil {
			return err
		}
	}

	rec, err := a.openRecorder(ctx, cfg)
	if err != nil {
		return err
	}
	defer rec.close()

	sink := &codeSink{w: cmd.OutOrStdout(), format: cfg.Format}
	for c, err := range seq {
		if err != nil {
			return err
		}
		if err := rec.put(ctx, c); err != nil {
			return err
		}
		if err := sink.add(c); err != nil {
			return err
		}
	}
	if err := sink.flush(); err != nil {
		return err
	}
	a.logger.Debug("enumeration done", zap.Int("codes", sink.count))

	return rec.finish(ctx, sink.count)
}

// values adapts a collected slice to the streaming loop.
func values(codes []*code.LinearCode) iter.Seq2[*code.LinearCode, error] {
	return func(yield func(*code.LinearCode, error) bool) {
		for _, c := range codes {
			if !yield(c, nil) {
				return
			}
		}
	}
}

// recorder writes a run to the catalog; the zero value records nothing.
type recorder struct {
	store  *catalog.Store
	run    catalog.Run
	logger *zap.Logger
}

func (a *app) openRecorder(ctx context.Context, cfg *Config) (*recorder, error) {
	if cfg.Store == "" {
		return &recorder{}, nil
	}
	store, err := catalog.Open(cfg.Store, catalog.WithLogger(a.logger))
	if err != nil {
		return nil, err
	}
	run, err := store.BeginRun(ctx, catalog.Params{N: cfg.N, K: cfg.K, B: cfg.B, Exact: cfg.Equal})
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return &recorder{store: store, run: run, logger: a.logger}, nil
}

func (r *recorder) put(ctx context.Context, c *code.LinearCode) error {
	if r.store == nil {
		return nil
	}

	return r.store.Put(ctx, r.run.ID, c)
}

func (r *recorder) finish(ctx context.Context, count int) error {
	if r.store == nil {
		return nil
	}
	if err := r.store.FinishRun(ctx, r.run.ID, count); err != nil {
		return err
	}
	r.logger.Info("run recorded",
		zap.String("run", r.run.ID),
		zap.String("store", r.store.Path()),
		zap.Int("codes", count),
	)

	return nil
}

func (r *recorder) close() {
	if r.store != nil {
		_ = r.store.Close()
	}
}

func (a *app) runsCmd() *cobra.Command {
	var storePath, format string
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "list recorded runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validFormat(format) {
				return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
			}
			store, err := catalog.Open(storePath, catalog.WithLogger(a.logger), catalog.WithMustExist())
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.Runs(cmd.Context())
			if err != nil {
				return err
			}
			return writeRuns(cmd.OutOrStdout(), format, runs)
		},
	}
	cmd.Flags().StringVar(&storePath, "store", "", "catalog file")
	cmd.Flags().StringVar(&format, "format", DefaultFormat, "output format: text, json or yaml")
	_ = cmd.MarkFlagRequired("store")

	return cmd
}

func (a *app) showCmd() *cobra.Command {
	var (
		storePath, runID, format string
		filter                   enumerate.Shape
	)
	cmd := &cobra.Command{
		Use:   "show",
		Short: "print the codes of a recorded run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validFormat(format) {
				return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
			}
			store, err := catalog.Open(storePath, catalog.WithLogger(a.logger), catalog.WithMustExist())
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.Entries(cmd.Context(), runID, filter)
			if err != nil {
				return err
			}
			return writeEntries(cmd.OutOrStdout(), format, entries)
		},
	}
	f := cmd.Flags()
	f.StringVar(&storePath, "store", "", "catalog file")
	f.StringVar(&runID, "run", "", "run identifier")
	f.IntVar(&filter.Length, "length", 0, "only codes of this length")
	f.IntVar(&filter.Dimension, "dim", 0, "only codes of this dimension")
	f.StringVar(&format, "format", DefaultFormat, "output format: text, json or yaml")
	_ = cmd.MarkFlagRequired("store")
	_ = cmd.MarkFlagRequired("run")

	return cmd
}
