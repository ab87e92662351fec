package main

import (
	"fmt"
	"io"

	"github.com/okian/huntersfinds/internal/adapters/timer"
	"github.com/okian/huntersfinds/internal/domain/types"
	"github.com/spf13/cobra"
)

const defaultLeaderboardLimit = 10

func (c *cli) leaderboardCmd() *cobra.Command {
	var (
		kind  string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the best rated dishes or restaurants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			svc := c.newService(timer.RealClock{})
			defer func() { _ = svc.Close() }()

			var (
				entries []types.Entry
				err     error
			)
			switch kind {
			case "dishes":
				entries, err = svc.TopDishes(ctx, limit)
			case "restaurants":
				entries, err = svc.TopRestaurants(ctx, limit)
			default:
				return fmt.Errorf("unknown --kind %q: want dishes or restaurants", kind)
			}
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), c.format, entries, func(w io.Writer) error {
				for _, e := range entries {
					name := e.Name
					if e.Restaurant != "" {
						name += " @ " + e.Restaurant
					}
					if _, err := fmt.Fprintf(w, "%3d. %-40s %5.1f  %s\n", e.Rank, name, e.Score, e.Tier); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "dishes", "dishes or restaurants")
	cmd.Flags().IntVar(&limit, "limit", defaultLeaderboardLimit, "number of entries")
	return cmd
}
