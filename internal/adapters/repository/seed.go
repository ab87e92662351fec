package repository

import "github.com/okian/huntersfinds/internal/domain/model"

// SeedRestaurants returns the demo restaurants with their top dishes.
func SeedRestaurants() []model.Restaurant {
	return []model.Restaurant{
		{
			ID: "1", Name: "taco palace", Cuisine: "mexican", Score: 87,
			Location: model.Location{Lat: 37.8044, Lng: -122.2712, Address: "123 Telegraph Ave, Oakland, CA"},
			RecentScores: []model.ScoreSample{
				{User: "alice", Date: "2026-01-28", Taste: 85, Portion: 90, Overall: 87},
				{User: "bob", Date: "2026-01-27", Taste: 88, Portion: 85, Overall: 86},
				{User: "charlie", Date: "2026-01-26", Taste: 90, Portion: 88, Overall: 89},
				{User: "diana", Date: "2026-01-25", Taste: 82, Portion: 87, Overall: 84},
				{User: "evan", Date: "2026-01-24", Taste: 87, Portion: 89, Overall: 88},
			},
			TopDishes: []model.Dish{
				{ID: "d1", Name: "carne asada tacos", Score: 92, Price: 8.50, NumRatings: 24, Photos: 15, Comments: 18},
				{ID: "d2", Name: "california burrito", Score: 89, Price: 11.00, NumRatings: 18, Photos: 12, Comments: 14},
			},
		},
		{
			ID: "2", Name: "joe's diner", Cuisine: "american", Score: 82,
			Location: model.Location{Lat: 37.8088, Lng: -122.2690, Address: "456 Broadway, Oakland, CA"},
			RecentScores: []model.ScoreSample{
				{User: "frank", Date: "2026-01-29", Taste: 80, Portion: 85, Overall: 82},
				{User: "grace", Date: "2026-01-28", Taste: 82, Portion: 83, Overall: 82},
				{User: "henry", Date: "2026-01-27", Taste: 78, Portion: 84, Overall: 81},
				{User: "iris", Date: "2026-01-26", Taste: 84, Portion: 82, Overall: 83},
				{User: "jack", Date: "2026-01-25", Taste: 81, Portion: 80, Overall: 80},
			},
			TopDishes: []model.Dish{
				{ID: "d4", Name: "classic cheeseburger", Score: 88, Price: 12.00, NumRatings: 42, Photos: 28, Comments: 35},
			},
		},
		{
			ID: "3", Name: "pizza haven", Cuisine: "italian", Score: 91,
			Location: model.Location{Lat: 37.8100, Lng: -122.2620, Address: "789 College Ave, Oakland, CA"},
			RecentScores: []model.ScoreSample{
				{User: "kate", Date: "2026-01-30", Taste: 92, Portion: 90, Overall: 91},
				{User: "leo", Date: "2026-01-29", Taste: 90, Portion: 91, Overall: 90},
				{User: "mia", Date: "2026-01-28", Taste: 93, Portion: 89, Overall: 91},
				{User: "noah", Date: "2026-01-27", Taste: 89, Portion: 92, Overall: 90},
				{User: "olivia", Date: "2026-01-26", Taste: 91, Portion: 90, Overall: 90},
			},
			TopDishes: []model.Dish{
				{ID: "d7", Name: "margherita pizza", Score: 95, Price: 14.00, NumRatings: 56, Photos: 41, Comments: 48},
			},
		},
	}
}

// SeedGroups returns the demo groups.
func SeedGroups() []model.Group {
	return []model.Group{
		{
			ID: "1", Name: "foodie squad", Members: 45, Score: 247, UniqueDishes: 156,
			MembersList: []model.GroupMember{
				{Username: "alice", Score: 89, Dishes: 32},
				{Username: "bob", Score: 85, Dishes: 28},
				{Username: "charlie", Score: 92, Dishes: 41},
				{Username: "diana", Score: 81, Dishes: 25},
				{Username: "evan", Score: 88, Dishes: 30},
			},
			Dishes: []model.GroupDish{
				{Name: "carne asada tacos", Restaurant: "taco palace", Score: 92},
				{Name: "margherita pizza", Restaurant: "pizza haven", Score: 95},
				{Name: "classic cheeseburger", Restaurant: "joe's diner", Score: 88},
			},
		},
		{
			ID: "2", Name: "bay area eats", Members: 38, Score: 231, UniqueDishes: 142,
			MembersList: []model.GroupMember{
				{Username: "frank", Score: 87, Dishes: 29},
				{Username: "grace", Score: 90, Dishes: 35},
				{Username: "henry", Score: 83, Dishes: 27},
				{Username: "iris", Score: 86, Dishes: 31},
			},
			Dishes: []model.GroupDish{
				{Name: "california burrito", Restaurant: "taco palace", Score: 89},
				{Name: "margherita pizza", Restaurant: "pizza haven", Score: 95},
			},
		},
	}
}

// SeedUsers returns the demo users.
func SeedUsers() []model.User {
	return []model.User{
		{ID: "1", Username: "alice", Ratings: 47, Location: "oakland, ca", Overlap: 78},
		{ID: "2", Username: "bob", Ratings: 32, Location: "san francisco, ca", Overlap: 65},
	}
}
