package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/balancedforest/balance"
	"github.com/katalvlaran/balancedforest/caseio"
	"github.com/katalvlaran/balancedforest/planner"
)

// outputPathEnv names the file answers go to when --output is not given.
const outputPathEnv = "OUTPUT_PATH"

func newSolveCmd(a *app) *cobra.Command {
	var (
		input, output string
		workers       int
		maxCuts       int
		metrics       string
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Read cases and write one answer per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			if flags.Changed("workers") {
				a.cfg.Solve.Workers = workers
			}
			if flags.Changed("max-cuts") {
				a.cfg.Solve.MaxCuts = maxCuts
			}
			if flags.Changed("metrics") {
				a.cfg.Metrics.Exporter = metrics
			}
			if err := a.finish(cmd); err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if input != "" && input != "-" {
				f, err := os.Open(input)
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				defer f.Close()
				in = f
			}

			if output == "" {
				output = os.Getenv(outputPathEnv)
			}
			out := cmd.OutOrStdout()
			var file *os.File
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				file = f
				out = f
			}

			err := a.solve(cmd.Context(), cmd.ErrOrStderr(), in, out)
			if file != nil {
				if cerr := file.Close(); err == nil && cerr != nil {
					err = fmt.Errorf("close output: %w", cerr)
				}
			}

			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&input, "input", "i", "", "input file (default stdin)")
	flags.StringVarP(&output, "output", "o", "", "output file (default $"+outputPathEnv+", else stdout)")
	flags.IntVarP(&workers, "workers", "w", 0, "cases solved concurrently")
	flags.IntVar(&maxCuts, "max-cuts", planner.DefaultMaxCuts, "cut budget, 1 or 2")
	flags.StringVar(&metrics, "metrics", "none", "metrics exporter: none or stdout (stderr)")

	return cmd
}

// solve reads every case from in, solves them on a bounded worker pool and
// writes the answers to out in input order.
func (a *app) solve(ctx context.Context, metricsOut io.Writer, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	runID := uuid.NewString()
	log := a.log.With("run_id", runID)

	shutdown, err := initMetrics(ctx, a.cfg.Metrics, metricsOut)
	if err != nil {
		return err
	}
	defer func() {
		if serr := shutdown(context.Background()); serr != nil {
			log.Warn("metrics shutdown failed", "error", serr)
		}
	}()

	start := time.Now()
	cases, err := caseio.NewReader(in).ReadAll()
	if err != nil {
		return err
	}
	log.Info("cases loaded", "count", len(cases), "workers", a.cfg.Solve.Workers, "max_cuts", a.cfg.Solve.MaxCuts)

	answers := make([]int64, len(cases))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Solve.Workers)
	for i, c := range cases {
		i, c := i, c
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			caseLog := log.With("case", i+1)
			ans, err := c.Solve(
				planner.WithMaxCuts(a.cfg.Solve.MaxCuts),
				planner.WithLogger(caseLog),
			)
			if err != nil {
				return fmt.Errorf("case %d: %w", i+1, err)
			}
			answers[i] = ans
			caseLog.Debug("case solved", "nodes", len(c.Weights), "answer", ans)

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return err
	}

	if err = caseio.WriteResults(out, answers); err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	feasible := 0
	for _, ans := range answers {
		if ans != balance.Infeasible {
			feasible++
		}
	}
	log.Info("run complete", "cases", len(cases), "feasible", feasible, "elapsed", time.Since(start))

	return nil
}
