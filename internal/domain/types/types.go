// Package types contains read-side types shared by the controller and the CLI.
package types

// Entry is one leaderboard row.
type Entry struct {
	Rank       int     `json:"rank" yaml:"rank"`
	ID         string  `json:"id" yaml:"id"`
	Kind       string  `json:"kind" yaml:"kind"`
	Name       string  `json:"name" yaml:"name"`
	Restaurant string  `json:"restaurant,omitempty" yaml:"restaurant,omitempty"`
	Score      float64 `json:"score" yaml:"score"`
	Tier       string  `json:"tier" yaml:"tier"`
}
