// Package repository holds the rated catalog: restaurants, their dishes,
// groups and users, plus an ordered index per item kind.
package repository

import (
	"context"

	"github.com/okian/huntersfinds/internal/domain/model"
	"github.com/okian/huntersfinds/internal/domain/types"
)

// Catalog provides read access to the rated catalog and accepts new dishes.
type Catalog interface {
	// Dishes returns every dish in source order: seeded restaurants in order,
	// their top dishes in order, then appended dishes.
	Dishes(ctx context.Context) []model.RatedItem
	// Restaurants returns every restaurant in seed order.
	Restaurants(ctx context.Context) []model.RatedItem

	RestaurantByName(ctx context.Context, name string) (model.Restaurant, error)
	DishByID(ctx context.Context, id string) (model.Dish, error)
	GroupByName(ctx context.Context, name string) (model.Group, error)
	UserByName(ctx context.Context, username string) (model.User, error)
	Groups(ctx context.Context) []model.Group
	Users(ctx context.Context) []model.User

	// ProfileFor returns the user behind a group member row, synthesizing a
	// profile when the member is not a known user.
	ProfileFor(ctx context.Context, member model.GroupMember) model.User

	// TopN returns the best n items of kind, score desc, insertion order on ties.
	TopN(ctx context.Context, kind model.ItemKind, n int) ([]types.Entry, error)
	// Position returns the 1-based position of id within kind.
	Position(ctx context.Context, kind model.ItemKind, id string) (int, error)

	// AppendDish adds a dish rated in this session.
	AppendDish(ctx context.Context, item model.RatedItem) error

	Count(ctx context.Context, kind model.ItemKind) int
}
