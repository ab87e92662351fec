package main

import (
	"fmt"
	"io"
	"time"

	"github.com/okian/huntersfinds/internal/adapters/timer"
	"github.com/okian/huntersfinds/internal/simulate"
	"github.com/spf13/cobra"
)

type simulateOutput struct {
	Submitted  int     `json:"submitted" yaml:"submitted"`
	Verified   int     `json:"verified" yaml:"verified"`
	Failed     int     `json:"failed" yaml:"failed"`
	FirstPlace int     `json:"first_place" yaml:"first_place"`
	MinScore   float64 `json:"min_score" yaml:"min_score"`
	MaxScore   float64 `json:"max_score" yaml:"max_score"`
	MeanScore  float64 `json:"mean_score" yaml:"mean_score"`
	Duration   string  `json:"duration" yaml:"duration"`
}

func (c *cli) simulateCmd() *cobra.Command {
	var (
		count   int
		seed    int64
		output  string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Submit random ratings and verify every ranking",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("count") {
				count = c.cfg.SimulateCount
			}
			if !cmd.Flags().Changed("seed") {
				seed = c.cfg.SimulateSeed
			}

			clock := timer.NewManualClock(time.Now())
			svc := c.newService(clock)
			defer func() { _ = svc.Close() }()

			stats, err := simulate.Run(cmd.Context(), svc, simulate.Config{
				Count:      count,
				Seed:       uint64(seed), //nolint:gosec // any bit pattern is a valid seed
				Categories: c.cfg.CategoryAverages,
				Recording:  c.cfg.RecordSubmissions,
				OutputFile: output,
				Verbose:    verbose,
				Clock:      clock,
				CloseDelay: c.cfg.CloseDelay(),
			})
			if stats == nil {
				return err
			}

			out := simulateOutput{
				Submitted:  stats.Submitted,
				Verified:   stats.Verified,
				Failed:     stats.Failed,
				FirstPlace: stats.FirstPlace,
				MinScore:   stats.MinScore,
				MaxScore:   stats.MaxScore,
				MeanScore:  stats.MeanScore,
				Duration:   stats.Duration.String(),
			}
			if rerr := render(cmd.OutOrStdout(), c.format, out, func(w io.Writer) error {
				_, werr := fmt.Fprintf(w, "submitted %d, verified %d, failed %d, first place %d\nscores %.1f..%.1f, mean %.2f, took %s\n",
					out.Submitted, out.Verified, out.Failed, out.FirstPlace, out.MinScore, out.MaxScore, out.MeanScore, out.Duration)
				return werr
			}); rerr != nil {
				return rerr
			}
			return err
		},
	}

	f := cmd.Flags()
	f.IntVar(&count, "count", 0, "number of submissions (default simulate_count)")
	f.Int64Var(&seed, "seed", 0, "generator seed (default simulate_seed)")
	f.StringVar(&output, "output", "", "write submissions to this JSON file")
	f.BoolVar(&verbose, "verbose", false, "log every submission at debug level")
	return cmd
}
