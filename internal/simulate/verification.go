package simulate

import (
	"fmt"

	"github.com/okian/huntersfinds/internal/domain/model"
)

// verifyRanking checks one ranking against the candidate score and the
// leaderboard size it should have been computed over.
func verifyRanking(r model.SubmittedRating, wantTotal int) error {
	rk := r.Ranking
	switch {
	case rk.Total != wantTotal:
		return fmt.Errorf("total %d, want %d", rk.Total, wantTotal)
	case rk.Rank < 1 || rk.Rank > rk.Total:
		return fmt.Errorf("rank %d outside 1..%d", rk.Rank, rk.Total)
	case rk.Rank == 1 && rk.Above != nil:
		return fmt.Errorf("first place has an item above it")
	case rk.Rank > 1 && rk.Above == nil:
		return fmt.Errorf("rank %d has no item above it", rk.Rank)
	case rk.Rank == rk.Total && rk.Below != nil:
		return fmt.Errorf("last place has an item below it")
	case rk.Rank < rk.Total && rk.Below == nil:
		return fmt.Errorf("rank %d of %d has no item below it", rk.Rank, rk.Total)
	case rk.Above != nil && rk.Above.Score < r.Score:
		return fmt.Errorf("above item scores %.1f, under candidate %.1f", rk.Above.Score, r.Score)
	case rk.Below != nil && rk.Below.Score > r.Score:
		return fmt.Errorf("below item scores %.1f, over candidate %.1f", rk.Below.Score, r.Score)
	case rk.Top.Score < r.Score:
		return fmt.Errorf("top item scores %.1f, under candidate %.1f", rk.Top.Score, r.Score)
	case rk.Above != nil && rk.Top.Score < rk.Above.Score:
		return fmt.Errorf("top item scores %.1f, under the item above %.1f", rk.Top.Score, rk.Above.Score)
	case rk.Rank == 1 && rk.Top.ID != r.ID:
		return fmt.Errorf("first place but top is %q", rk.Top.ID)
	}
	return nil
}
