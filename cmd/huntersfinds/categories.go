package main

import (
	"fmt"
	"io"

	"github.com/okian/huntersfinds/internal/adapters/timer"
	"github.com/spf13/cobra"
)

type categoryOutput struct {
	Name         string  `json:"name" yaml:"name"`
	AveragePrice float64 `json:"average_price" yaml:"average_price"`
}

func (c *cli) categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories [text]",
		Short: "List known dish categories, or those matching text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := c.newService(timer.RealClock{})
			defer func() { _ = svc.Close() }()
			table := svc.Engine().Categories()

			names := table.Categories()
			if len(args) == 1 {
				names = table.Suggest(args[0])
			}
			out := make([]categoryOutput, 0, len(names))
			for _, name := range names {
				avg, _ := table.Lookup(name)
				out = append(out, categoryOutput{Name: name, AveragePrice: avg})
			}

			return render(cmd.OutOrStdout(), c.format, out, func(w io.Writer) error {
				for _, o := range out {
					if _, err := fmt.Fprintf(w, "%-24s $%.2f\n", o.Name, o.AveragePrice); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}
