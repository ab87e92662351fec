package scoring

// Tier is a display classification of a composite score. It never affects ranking.
type Tier int

const (
	TierBase Tier = iota
	TierFair
	TierGood
	TierGreat
	TierElite
)

// TierOf classifies a score: >=96 elite, >=89 great, >=81 good, >=72 fair, else base.
func TierOf(score float64) Tier {
	switch {
	case score >= 96:
		return TierElite
	case score >= 89:
		return TierGreat
	case score >= 81:
		return TierGood
	case score >= 72:
		return TierFair
	default:
		return TierBase
	}
}

func (t Tier) String() string {
	switch t {
	case TierElite:
		return "elite"
	case TierGreat:
		return "great"
	case TierGood:
		return "good"
	case TierFair:
		return "fair"
	default:
		return "base"
	}
}
