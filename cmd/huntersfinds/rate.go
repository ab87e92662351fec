package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/okian/huntersfinds/internal/adapters/timer"
	"github.com/okian/huntersfinds/internal/domain/model"
	"github.com/okian/huntersfinds/internal/domain/scoring"
	"github.com/spf13/cobra"
)

type neighbour struct {
	Name  string  `json:"name" yaml:"name"`
	Score float64 `json:"score" yaml:"score"`
}

type ratingOutput struct {
	ID         string     `json:"id" yaml:"id"`
	Restaurant string     `json:"restaurant" yaml:"restaurant"`
	Dish       string     `json:"dish" yaml:"dish"`
	Category   string     `json:"category" yaml:"category"`
	Price      float64    `json:"price" yaml:"price"`
	Taste      int        `json:"taste" yaml:"taste"`
	PriceValue int        `json:"price_value" yaml:"price_value"`
	Portion    int        `json:"portion" yaml:"portion"`
	Comment    string     `json:"comment,omitempty" yaml:"comment,omitempty"`
	Score      float64    `json:"score" yaml:"score"`
	Tier       string     `json:"tier" yaml:"tier"`
	Rank       int        `json:"rank" yaml:"rank"`
	Total      int        `json:"total" yaml:"total"`
	Top        neighbour  `json:"top" yaml:"top"`
	Above      *neighbour `json:"above,omitempty" yaml:"above,omitempty"`
	Below      *neighbour `json:"below,omitempty" yaml:"below,omitempty"`
}

func newRatingOutput(r model.SubmittedRating) ratingOutput {
	out := ratingOutput{
		ID:         r.ID,
		Restaurant: r.Restaurant,
		Dish:       r.DishName,
		Category:   r.Category,
		Price:      r.Price,
		Taste:      r.TasteScore,
		PriceValue: r.PriceScore,
		Portion:    r.PortionScore,
		Comment:    r.Comment,
		Score:      r.Score,
		Tier:       scoring.TierOf(r.Score).String(),
		Rank:       r.Ranking.Rank,
		Total:      r.Ranking.Total,
		Top:        neighbour{Name: r.Ranking.Top.Name, Score: r.Ranking.Top.Score},
	}
	if a := r.Ranking.Above; a != nil {
		out.Above = &neighbour{Name: a.Name, Score: a.Score}
	}
	if b := r.Ranking.Below; b != nil {
		out.Below = &neighbour{Name: b.Name, Score: b.Score}
	}
	return out
}

func (o ratingOutput) text(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s at %s\n  score %.1f (%s): taste %d, price-value %d, portion %d\n  rank #%d of %d, top is %s (%.1f)\n",
		o.Dish, o.Restaurant, o.Score, o.Tier, o.Taste, o.PriceValue, o.Portion, o.Rank, o.Total, o.Top.Name, o.Top.Score)
	if err != nil {
		return err
	}
	if o.Above != nil {
		if _, err := fmt.Fprintf(w, "  above: %s (%.1f)\n", o.Above.Name, o.Above.Score); err != nil {
			return err
		}
	}
	if o.Below != nil {
		if _, err := fmt.Fprintf(w, "  below: %s (%.1f)\n", o.Below.Name, o.Below.Score); err != nil {
			return err
		}
	}
	return nil
}

func (c *cli) rateCmd() *cobra.Command {
	var (
		restaurant, dish, category, price, comment string
		taste, portion                             int
	)

	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Score one dish and rank it against the catalog",
		Example: `  huntersfinds rate --restaurant "pizza haven" --dish margherita \
    --category "margherita pizza" --price 14.00 --taste 92 --portion 90`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			svc := c.newService(timer.RealClock{})
			if err := svc.Start(ctx); err != nil {
				return err
			}
			defer func() { _ = svc.Close() }()

			if err := svc.BeginSubmission(ctx); err != nil {
				return err
			}
			svc.SetRestaurant(ctx, restaurant)
			svc.SetDishName(ctx, dish)
			svc.SetComment(ctx, comment)
			if err := errors.Join(
				svc.SelectCategory(ctx, category),
				svc.SetPrice(ctx, price),
				svc.SetTasteScore(ctx, taste),
				svc.SetPortionScore(ctx, portion),
			); err != nil {
				return err
			}

			rating, ok, err := svc.Submit(ctx)
			if err != nil {
				return err
			}
			if !ok {
				return errors.New("rating is incomplete: restaurant, dish, category and price are required")
			}
			out := newRatingOutput(rating)
			return render(cmd.OutOrStdout(), c.format, out, out.text)
		},
	}

	f := cmd.Flags()
	f.StringVar(&restaurant, "restaurant", "", "restaurant name")
	f.StringVar(&dish, "dish", "", "dish name")
	f.StringVar(&category, "category", "", "known dish category, see the categories command")
	f.StringVar(&price, "price", "", "price paid, e.g. 12.50")
	f.IntVar(&taste, "taste", scoring.DefaultSubScore, "taste score 1-100")
	f.IntVar(&portion, "portion", scoring.DefaultSubScore, "portion score 1-100")
	f.StringVar(&comment, "comment", "", "free-text comment")
	return cmd
}
