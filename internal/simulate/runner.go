package simulate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/okian/huntersfinds/internal/domain/model"
	"github.com/okian/huntersfinds/internal/domain/scoring"
	"github.com/okian/huntersfinds/pkg/logger"
)

const (
	directoryPermission = 0o750
	filePermission      = 0o600
	maxReportedFailures = 5
)

// Run submits cfg.Count generated ratings through ctl and verifies each
// ranking. Verification failures are counted and returned together as
// ErrVerification once the run completes.
func Run(ctx context.Context, ctl Controller, cfg Config) (*Stats, error) {
	if cfg.Count < 1 {
		return nil, fmt.Errorf("%w: count must be at least 1", ErrInvalidConfig)
	}
	averages := cfg.Categories
	if len(averages) == 0 {
		averages = scoring.DefaultCategoryAverages()
	}

	log := logger.OrNop("simulate")
	stats := &Stats{StartTime: time.Now(), MinScore: math.Inf(1), MaxScore: math.Inf(-1)}

	catalog := ctl.Catalog()
	var restaurants []string
	for _, r := range catalog.Restaurants(ctx) {
		restaurants = append(restaurants, r.Name)
	}
	gen := newGenerator(cfg.Seed, averages, restaurants)
	total := catalog.Count(ctx, model.KindDish)

	log.Info(ctx, "starting simulation",
		logger.Int("count", cfg.Count),
		logger.Any("seed", cfg.Seed),
		logger.Int("catalog_dishes", total),
		logger.Bool("recording", cfg.Recording),
	)

	submissions := make([]Submission, 0, cfg.Count)
	var failures []string
	var sum float64

	for i := 0; i < cfg.Count; i++ {
		if err := ctx.Err(); err != nil {
			return stats, fmt.Errorf("simulation cancelled after %d submissions: %w", i, err)
		}

		d := gen.next()
		rating, err := submit(ctx, ctl, d)
		if err != nil {
			return stats, fmt.Errorf("submission %d: %w", i, err)
		}
		stats.Submitted++
		total++

		if verr := verifyRanking(rating, total); verr != nil {
			stats.Failed++
			failures = append(failures, fmt.Sprintf("%s: %v", rating.DishName, verr))
			log.Warn(ctx, "ranking check failed", logger.String("dish", rating.DishName), logger.Error(verr))
		} else {
			stats.Verified++
		}
		if !cfg.Recording {
			total--
		}

		if rating.Ranking.Rank == 1 {
			stats.FirstPlace++
		}
		sum += rating.Score
		stats.MinScore = math.Min(stats.MinScore, rating.Score)
		stats.MaxScore = math.Max(stats.MaxScore, rating.Score)
		submissions = append(submissions, Submission{
			ID:         rating.ID,
			Restaurant: rating.Restaurant,
			Dish:       rating.DishName,
			Category:   rating.Category,
			Price:      rating.Price,
			Taste:      rating.TasteScore,
			Portion:    rating.PortionScore,
			PriceValue: rating.PriceScore,
			Score:      rating.Score,
			Rank:       rating.Ranking.Rank,
			Total:      rating.Ranking.Total,
		})
		if cfg.Verbose {
			log.Debug(ctx, "submitted",
				logger.String("dish", rating.DishName),
				logger.Float64("score", rating.Score),
				logger.Int("rank", rating.Ranking.Rank),
				logger.Int("total", rating.Ranking.Total),
			)
		}

		if err := ctl.DismissResults(ctx); err != nil {
			return stats, fmt.Errorf("dismiss %d: %w", i, err)
		}
		if cfg.Clock != nil {
			cfg.Clock.Advance(cfg.CloseDelay)
		}
	}

	stats.MeanScore = sum / float64(stats.Submitted)
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	if cfg.OutputFile != "" {
		if err := writeSubmissions(cfg.OutputFile, submissions); err != nil {
			log.Warn(ctx, "failed to save submissions", logger.Error(err))
		} else {
			log.Info(ctx, "submissions saved", logger.String("file", cfg.OutputFile))
		}
	}

	log.Info(ctx, "simulation finished",
		logger.Int("submitted", stats.Submitted),
		logger.Int("verified", stats.Verified),
		logger.Int("failed", stats.Failed),
		logger.Float64("mean_score", stats.MeanScore),
		logger.String("duration", stats.Duration.String()),
	)

	if len(failures) > 0 {
		if len(failures) > maxReportedFailures {
			failures = append(failures[:maxReportedFailures], fmt.Sprintf("and %d more", len(failures)-maxReportedFailures))
		}
		return stats, fmt.Errorf("%w: %d of %d: %s", ErrVerification, stats.Failed, stats.Submitted, strings.Join(failures, "; "))
	}
	return stats, nil
}

func submit(ctx context.Context, ctl Controller, d draft) (model.SubmittedRating, error) {
	if err := ctl.BeginSubmission(ctx); err != nil {
		return model.SubmittedRating{}, err
	}
	ctl.SetRestaurant(ctx, d.restaurant)
	ctl.SetDishName(ctx, d.dish)
	ctl.SetComment(ctx, d.comment)
	err := errors.Join(
		ctl.SelectCategory(ctx, d.category),
		ctl.SetPrice(ctx, formatPrice(d.price)),
		ctl.SetTasteScore(ctx, d.taste),
		ctl.SetPortionScore(ctx, d.portion),
	)
	if err != nil {
		return model.SubmittedRating{}, err
	}

	rating, ok, err := ctl.Submit(ctx)
	if err != nil {
		return model.SubmittedRating{}, err
	}
	if !ok {
		return model.SubmittedRating{}, fmt.Errorf("%w: %q", ErrRejected, d.dish)
	}
	return rating, nil
}

func writeSubmissions(path string, submissions []Submission) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(submissions, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal submissions: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), filePermission); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
