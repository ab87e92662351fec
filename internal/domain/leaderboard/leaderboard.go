// Package leaderboard locates a newly scored item among existing rated items.
//
// Ordering is score descending. Ties keep source order, so a candidate that
// ties existing items sorts after them.
package leaderboard

import (
	"fmt"
	"sort"

	"github.com/okian/huntersfinds/internal/domain/model"
)

// Sort returns a copy of items ordered by score descending, stable on ties.
func Sort(items []model.RatedItem) []model.RatedItem {
	out := make([]model.RatedItem, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// Rank inserts candidate into existing and reports its position and neighbours.
//
// The candidate is located by (Name, Score); an existing item sharing both
// sorts first and is taken as the match. existing is not modified.
func Rank(candidate model.RatedItem, existing []model.RatedItem) (model.RankingResult, error) {
	working := make([]model.RatedItem, 0, len(existing)+1)
	working = append(working, existing...)
	working = append(working, candidate)
	working = Sort(working)

	idx := -1
	for i, item := range working {
		if item.Name == candidate.Name && item.Score == candidate.Score {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.RankingResult{}, fmt.Errorf("%w: %q (score %v)", ErrRankInconsistent, candidate.Name, candidate.Score)
	}

	res := model.RankingResult{
		Rank:  idx + 1,
		Total: len(working),
		Top:   working[0],
	}
	if idx > 0 {
		above := working[idx-1]
		res.Above = &above
	}
	if idx < len(working)-1 {
		below := working[idx+1]
		res.Below = &below
	}
	return res, nil
}
