// Package scoring turns sub-ratings into the single published score.
package scoring

import (
	"math"
)

// Sub-score bounds and the neutral default a new draft starts from.
const (
	MinSubScore     = 1
	MaxSubScore     = 100
	DefaultSubScore = 50
)

const (
	// sensitivity (beta) scales how far the price ratio moves the score.
	sensitivity = 0.5
	neutral     = 50.0

	// Each sub-score is weighted 0.33, so the weights sum to 0.99.
	// Published scores depend on this exact arithmetic.
	subScoreWeight = 0.33
)

// DerivePriceValueScore scores a price against its category average.
// A price equal to the average yields 50; cheaper raises it, pricier lowers
// it. The result is clamped to [1,100] and rounded.
func DerivePriceValueScore(actualPrice, categoryAveragePrice float64) int {
	r := actualPrice / categoryAveragePrice
	raw := neutral + (neutral*(1-r))/sensitivity
	if math.IsNaN(raw) {
		return DefaultSubScore
	}
	raw = math.Max(MinSubScore, math.Min(MaxSubScore, raw))
	return int(math.Round(raw))
}

// CompositeScore averages the three sub-scores with equal 0.33 weights and
// rounds to one decimal place.
func CompositeScore(taste, priceValue, portion int) float64 {
	sum := float64(taste)*subScoreWeight + float64(priceValue)*subScoreWeight + float64(portion)*subScoreWeight
	return math.Round(sum*10) / 10
}

// ValidSubScore reports whether v is inside [MinSubScore, MaxSubScore].
func ValidSubScore(v int) bool {
	return v >= MinSubScore && v <= MaxSubScore
}
