package repository

import "errors"

// Sentinel kinds for catalog errors.
var (
	ErrNotFound      = errors.New("catalog item not found")
	ErrInvalidLimit  = errors.New("invalid leaderboard limit")
	ErrInvalidItem   = errors.New("invalid catalog item")
	ErrDuplicateItem = errors.New("catalog item already exists")
)
