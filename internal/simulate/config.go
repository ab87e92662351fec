// Package simulate drives randomized ratings through the controller and
// checks every ranking it gets back.
package simulate

import (
	"context"
	"time"

	"github.com/okian/huntersfinds/internal/adapters/repository"
	"github.com/okian/huntersfinds/internal/adapters/timer"
	"github.com/okian/huntersfinds/internal/domain/model"
)

// Controller is the part of the application controller a run drives.
type Controller interface {
	BeginSubmission(ctx context.Context) error
	SetRestaurant(ctx context.Context, name string)
	SetDishName(ctx context.Context, name string)
	SelectCategory(ctx context.Context, name string) error
	SetPrice(ctx context.Context, text string) error
	SetTasteScore(ctx context.Context, v int) error
	SetPortionScore(ctx context.Context, v int) error
	SetComment(ctx context.Context, comment string)
	Submit(ctx context.Context) (model.SubmittedRating, bool, error)
	DismissResults(ctx context.Context) error
	Catalog() repository.Catalog
}

// Config holds configuration for a simulation run.
type Config struct {
	Count      int                // submissions to generate
	Seed       uint64             // generator seed; the same seed yields the same drafts
	Categories map[string]float64 // category average prices, defaults to the built-in table
	Recording  bool               // the controller appends submissions to its catalog
	OutputFile string             // optional JSON dump of the submissions
	Verbose    bool

	// Clock and CloseDelay let a run finish each confirmation's exit delay
	// without waiting. A nil Clock assumes the controller closes at once.
	Clock      *timer.ManualClock
	CloseDelay time.Duration
}

// Submission is one generated rating and the ranking it received.
type Submission struct {
	ID         string  `json:"id"`
	Restaurant string  `json:"restaurant"`
	Dish       string  `json:"dish"`
	Category   string  `json:"category"`
	Price      float64 `json:"price"`
	Taste      int     `json:"taste"`
	Portion    int     `json:"portion"`
	PriceValue int     `json:"price_value"`
	Score      float64 `json:"score"`
	Rank       int     `json:"rank"`
	Total      int     `json:"total"`
}

// Stats holds run statistics.
type Stats struct {
	Submitted  int
	Verified   int
	Failed     int
	FirstPlace int
	MinScore   float64
	MaxScore   float64
	MeanScore  float64
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
}
