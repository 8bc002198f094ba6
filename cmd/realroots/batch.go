// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/realroots/poly"
	"github.com/katalvlaran/realroots/rootfinder"
)

// batchFile is the YAML document accepted by the batch command.
type batchFile struct {
	Jobs []batchJob `yaml:"jobs"`
}

// batchJob is one polynomial and its search interval.
type batchJob struct {
	Name       string `yaml:"name"`
	Polynomial string `yaml:"polynomial"`
	Left       string `yaml:"left"`
	Right      string `yaml:"right"`
	Closed     bool   `yaml:"closed"`
	Strategy   string `yaml:"strategy"`
}

func (a *app) batchCmd() *cobra.Command {
	var (
		finder  finderFlags
		workers int
	)
	cmd := &cobra.Command{
		Use:   "batch <jobs.yaml>",
		Short: "Isolate the roots of many polynomials concurrently",
		Long: `Batch reads a YAML file of jobs and isolates them concurrently,
one finder per goroutine. Results keep the input order; a failing job is
reported in its row and does not stop the others.

Example file:
  jobs:
    - name: golden
      polynomial: x^2 - x - 1
      left: 0
    - polynomial: x^5 - x - 1
      strategy: aberth`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *a.cfg
			if err := finder.apply(cmd, &cfg); err != nil {
				return err
			}
			if cmd.Flags().Changed("workers") {
				cfg.Workers = workers
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			jobs, err := readBatch(args[0])
			if err != nil {
				return err
			}
			opts, err := cfg.FinderOptions(a.logger)
			if err != nil {
				return err
			}
			results, err := runBatch(cmd.Context(), a.logger, jobs, opts, cfg.Workers, cfg.Output.Digits)
			if err != nil {
				return err
			}

			return render(out(cmd), cfg.Output.Format, results)
		},
	}
	finder.register(cmd)
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "concurrent finders")

	return cmd
}

func readBatch(path string) ([]batchJob, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read batch: %w", err)
	}
	var bf batchFile
	if err := yaml.Unmarshal(data, &bf); err != nil {
		return nil, fmt.Errorf("parse batch %s: %w", path, err)
	}

	return bf.Jobs, nil
}

// runBatch isolates every job with at most workers finders running at once.
// Job failures are recorded in the result; only cancellation aborts the batch.
func runBatch(ctx context.Context, logger *zap.Logger, jobs []batchJob, opts []rootfinder.Option, workers, digits int) ([]result, error) {
	results := make([]result, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, job := range jobs {
		g.Go(func() error {
			res, err := runJob(gctx, job, opts, digits)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				logger.Debug("job failed", zap.String("name", job.Name), zap.Error(err))
				res.Error = err.Error()
			}
			res.Name = job.Name
			if res.Polynomial == "" {
				res.Polynomial = job.Polynomial
			}
			results[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}

	return results, nil
}

func runJob(ctx context.Context, job batchJob, opts []rootfinder.Option, digits int) (result, error) {
	p, err := poly.Parse(job.Polynomial)
	if err != nil {
		return result{}, err
	}
	iv, err := buildInterval(job.Left, job.Right, job.Closed)
	if err != nil {
		return result{Interval: fmt.Sprintf("%s..%s", job.Left, job.Right)}, err
	}
	if job.Strategy != "" {
		s, err := rootfinder.ParseStrategy(job.Strategy)
		if err != nil {
			return result{Interval: iv.String()}, err
		}
		opts = append(opts[:len(opts):len(opts)], rootfinder.WithStrategy(s))
	}

	return isolate(ctx, p, iv, opts, digits)
}
