package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/okian/huntersfinds/internal/domain/leaderboard"
	"github.com/okian/huntersfinds/internal/domain/modal"
	"github.com/okian/huntersfinds/internal/domain/model"
	"github.com/okian/huntersfinds/internal/domain/scoring"
	"github.com/okian/huntersfinds/pkg/logger"
	"github.com/okian/huntersfinds/pkg/metrics"
)

// FlowState is the submission flow position.
type FlowState string

const (
	FlowIdle       FlowState = "idle"
	FlowEditing    FlowState = "editing"
	FlowConfirming FlowState = "confirming"
)

// Reasons a submit attempt is blocked.
const (
	BlockedConfirming = "confirmation_showing"
	BlockedRestaurant = "missing_restaurant"
	BlockedDishName   = "missing_dish_name"
	BlockedCategory   = "missing_category"
	BlockedPrice      = "missing_price"
)

func newDraft() model.SubmissionDraft {
	return model.SubmissionDraft{
		TasteScore:   scoring.DefaultSubScore,
		PortionScore: scoring.DefaultSubScore,
		PriceScore:   scoring.DefaultSubScore,
	}
}

// BeginSubmission opens the rating form. Values left from a form closed
// without submitting are kept.
func (s *Service) BeginSubmission(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.results.Phase() != modal.PhaseClosed {
		return ErrConfirmationShowing
	}
	s.beforeOpenLocked(model.ModalSubmission)
	s.submission.Open(struct{}{})
	s.logger.Debug(ctx, "submission opened")
	return nil
}

// CloseSubmission closes the form in two phases. The draft is retained.
func (s *Service) CloseSubmission(ctx context.Context) error {
	return s.CloseModal(ctx, model.ModalSubmission)
}

// DismissResults closes the confirmation. The draft resets once the close
// completes.
func (s *Service) DismissResults(ctx context.Context) error {
	return s.CloseModal(ctx, model.ModalResults)
}

// Flow returns the current submission flow state.
func (s *Service) Flow(_ context.Context) FlowState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flowLocked()
}

func (s *Service) flowLocked() FlowState {
	switch {
	case s.results.Phase() != modal.PhaseClosed:
		return FlowConfirming
	case s.submission.Phase() != modal.PhaseClosed:
		return FlowEditing
	default:
		return FlowIdle
	}
}

// SetRestaurant sets the restaurant name.
func (s *Service) SetRestaurant(_ context.Context, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Restaurant = name
}

// SetDishName sets the dish name.
func (s *Service) SetDishName(_ context.Context, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.DishName = name
}

// SetCategoryInput records typed category text. Text naming a known
// category exactly, ignoring case, resolves it; any other text clears the
// resolved category so Submit stays blocked until it resolves again.
func (s *Service) SetCategoryInput(_ context.Context, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft.CategoryInput = text
	name, ok := s.engine.Categories().Canonical(text)
	if !ok {
		s.draft.Category = ""
		return
	}
	s.draft.Category = name
	s.rederiveLocked()
}

// SelectCategory resolves the category explicitly, as picking a suggestion does.
func (s *Service) SelectCategory(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	canonical, ok := s.engine.Categories().Canonical(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	s.draft.Category = canonical
	s.draft.CategoryInput = canonical
	s.rederiveLocked()
	return nil
}

// SetPrice parses a decimal price. Empty text clears the price and leaves
// the price-value score as it was.
func (s *Service) SetPrice(_ context.Context, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		s.draft.PriceText = ""
		s.draft.Price = 0
		s.draft.HasPrice = false
		return nil
	}

	price, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return fmt.Errorf("%w: %q", ErrInvalidPrice, text)
	}
	s.draft.PriceText = trimmed
	s.draft.Price = price
	s.draft.HasPrice = true
	s.rederiveLocked()
	return nil
}

// SetTasteScore sets the taste sub-score.
func (s *Service) SetTasteScore(_ context.Context, v int) error {
	if !scoring.ValidSubScore(v) {
		return fmt.Errorf("%w: taste %d", ErrScoreOutOfRange, v)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.TasteScore = v
	return nil
}

// SetPortionScore sets the portion sub-score.
func (s *Service) SetPortionScore(_ context.Context, v int) error {
	if !scoring.ValidSubScore(v) {
		return fmt.Errorf("%w: portion %d", ErrScoreOutOfRange, v)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.PortionScore = v
	return nil
}

// SetComment sets the free-text comment.
func (s *Service) SetComment(_ context.Context, comment string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Comment = comment
}

// rederiveLocked refreshes the price-value score when price and a known
// category are both present.
func (s *Service) rederiveLocked() {
	if !s.draft.HasPrice || s.draft.Category == "" {
		metrics.RecordPriceValueDerivation(false)
		return
	}
	v, ok := s.engine.PriceValue(s.draft.Category, s.draft.Price)
	metrics.RecordPriceValueDerivation(ok)
	if ok {
		s.draft.PriceScore = v
	}
}

// CategorySuggestions lists known categories matching the typed text.
func (s *Service) CategorySuggestions(_ context.Context) []string {
	s.mu.Lock()
	input := s.draft.CategoryInput
	s.mu.Unlock()
	return s.engine.Categories().Suggest(input)
}

// Draft returns a copy of the current draft.
func (s *Service) Draft(_ context.Context) model.SubmissionDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// PreviewScore returns the composite score the draft would get now.
func (s *Service) PreviewScore(_ context.Context) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Composite(s.draft.TasteScore, s.draft.PriceScore, s.draft.PortionScore)
}

// CanSubmit reports whether Submit would go through.
func (s *Service) CanSubmit(_ context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.blockReasonLocked() == ""
}

func (s *Service) blockReasonLocked() string {
	switch {
	case s.flowLocked() == FlowConfirming:
		return BlockedConfirming
	case strings.TrimSpace(s.draft.Restaurant) == "":
		return BlockedRestaurant
	case strings.TrimSpace(s.draft.DishName) == "":
		return BlockedDishName
	case s.draft.Category == "":
		return BlockedCategory
	case !s.draft.HasPrice:
		return BlockedPrice
	default:
		return ""
	}
}

// Submit scores and ranks the draft and shows the confirmation. It returns
// ok=false with no error when a required field is missing; nothing changes
// in that case.
func (s *Service) Submit(ctx context.Context) (model.SubmittedRating, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if reason := s.blockReasonLocked(); reason != "" {
		metrics.RecordSubmissionBlocked(reason)
		s.logger.Debug(ctx, "submission blocked", logger.String("reason", reason))
		return model.SubmittedRating{}, false, nil
	}

	d := s.draft
	score := s.engine.Composite(d.TasteScore, d.PriceScore, d.PortionScore)
	rating := model.SubmittedRating{
		ID:           uuid.NewString(),
		Restaurant:   strings.TrimSpace(d.Restaurant),
		DishName:     strings.TrimSpace(d.DishName),
		Category:     d.Category,
		Price:        d.Price,
		TasteScore:   d.TasteScore,
		PortionScore: d.PortionScore,
		PriceScore:   d.PriceScore,
		Comment:      d.Comment,
		Score:        score,
		SubmittedAt:  s.clock.Now(),
	}

	ranking, err := leaderboard.Rank(rating.Item(), s.catalog.Dishes(ctx))
	if err != nil {
		metrics.RecordErrorByComponent("app", "ranking")
		return model.SubmittedRating{}, false, fmt.Errorf("rank submission: %w", err)
	}
	rating.Ranking = ranking

	if s.recordSubmissions {
		if err := s.catalog.AppendDish(ctx, rating.Item()); err != nil {
			metrics.RecordErrorByComponent("app", "record_submission")
			return model.SubmittedRating{}, false, fmt.Errorf("record submission: %w", err)
		}
	}

	// The form closes at once; the confirmation replaces it.
	s.scheduler.Cancel(string(model.ModalSubmission))
	s.submission.ForceClose()
	s.beforeOpenLocked(model.ModalResults)
	s.results.Open(rating)

	metrics.RecordSubmission(score, ranking.Rank)
	s.logger.Info(ctx, "rating submitted",
		logger.String("id", rating.ID),
		logger.String("dish", rating.DishName),
		logger.String("restaurant", rating.Restaurant),
		logger.Float64("score", score),
		logger.Int("rank", ranking.Rank),
		logger.Int("total", ranking.Total),
	)
	return rating, true, nil
}
