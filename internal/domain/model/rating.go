package model

import "time"

// SubmissionDraft holds the rating form while the user edits it.
type SubmissionDraft struct {
	Restaurant    string
	DishName      string
	CategoryInput string  // raw text typed into the category field
	Category      string  // resolved known category, empty until resolved
	PriceText     string  // raw price text as entered
	Price         float64 // parsed PriceText, valid when HasPrice
	HasPrice      bool
	TasteScore    int
	PortionScore  int
	PriceScore    int // derived from price and category, never edited directly
	Comment       string
}

// RankingResult places a newly scored item among existing items.
type RankingResult struct {
	Rank  int
	Total int
	Top   RatedItem
	Above *RatedItem // nil when Rank == 1
	Below *RatedItem // nil when Rank == Total
}

// SubmittedRating is the immutable result shown on the confirmation view.
type SubmittedRating struct {
	ID           string
	Restaurant   string
	DishName     string
	Category     string
	Price        float64
	TasteScore   int
	PortionScore int
	PriceScore   int
	Comment      string
	Score        float64
	Ranking      RankingResult
	SubmittedAt  time.Time
}

// Item returns the leaderboard view of the submitted dish.
func (r SubmittedRating) Item() RatedItem {
	return RatedItem{
		ID:         r.ID,
		Kind:       KindDish,
		Name:       r.DishName,
		Score:      r.Score,
		Restaurant: r.Restaurant,
		Cuisine:    r.Category,
		Price:      r.Price,
		NumRatings: 1,
	}
}
