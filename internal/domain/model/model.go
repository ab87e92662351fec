// Package model contains domain models passed between layers.
package model

import "time"

// ItemKind distinguishes rated items that share an identifier space per kind.
type ItemKind string

const (
	KindDish       ItemKind = "dish"
	KindRestaurant ItemKind = "restaurant"
)

// RatedItem is the leaderboard view of a dish or restaurant.
type RatedItem struct {
	ID         string
	Kind       ItemKind
	Name       string
	Score      float64
	Restaurant string  // dishes only
	Cuisine    string  // dish category for submissions, cuisine otherwise
	Price      float64 // dishes only
	NumRatings int
}

// Dish is a rated dish served by a restaurant.
type Dish struct {
	ID         string
	Name       string
	Restaurant string
	Cuisine    string
	Score      float64
	Price      float64
	NumRatings int
	Photos     int
	Comments   int
}

// Item returns the leaderboard view of the dish.
func (d Dish) Item() RatedItem {
	return RatedItem{
		ID:         d.ID,
		Kind:       KindDish,
		Name:       d.Name,
		Score:      d.Score,
		Restaurant: d.Restaurant,
		Cuisine:    d.Cuisine,
		Price:      d.Price,
		NumRatings: d.NumRatings,
	}
}

// Location places a restaurant on the map.
type Location struct {
	Lat     float64
	Lng     float64
	Address string
}

// ScoreSample is one user's recent score for a restaurant.
type ScoreSample struct {
	User    string
	Date    string
	Taste   int
	Portion int
	Overall int
}

// Restaurant is a rated restaurant with its best dishes.
type Restaurant struct {
	ID           string
	Name         string
	Cuisine      string
	Score        float64 // average of its ratings
	Location     Location
	RecentScores []ScoreSample
	TopDishes    []Dish
}

// Item returns the leaderboard view of the restaurant.
func (r Restaurant) Item() RatedItem {
	return RatedItem{
		ID:         r.ID,
		Kind:       KindRestaurant,
		Name:       r.Name,
		Score:      r.Score,
		Cuisine:    r.Cuisine,
		NumRatings: len(r.RecentScores),
	}
}

// User is another diner.
type User struct {
	ID       string
	Username string
	Ratings  int
	Location string
	Overlap  int // taste overlap percentage with the current user
}

// GroupMember is a member row inside a group.
type GroupMember struct {
	Username string
	Score    int
	Dishes   int
}

// GroupDish is a dish ranked inside a group.
type GroupDish struct {
	Name       string
	Restaurant string
	Score      float64
}

// Group is a diner group with its own member and dish rankings.
type Group struct {
	ID           string
	Name         string
	Members      int
	Score        int
	UniqueDishes int
	MembersList  []GroupMember
	Dishes       []GroupDish
}

// SavedEntry records one saved item.
type SavedEntry struct {
	ID      string
	Kind    ItemKind
	Name    string
	SavedAt time.Time
}
