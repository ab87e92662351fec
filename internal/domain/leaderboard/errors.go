package leaderboard

import "errors"

// ErrRankInconsistent means the inserted candidate could not be found again
// after sorting. It signals a broken score (e.g. NaN), never a normal outcome.
var ErrRankInconsistent = errors.New("ranked candidate not found in working set")
