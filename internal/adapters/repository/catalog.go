package repository

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"strings"
	"sync"

	"github.com/okian/huntersfinds/internal/domain/model"
	"github.com/okian/huntersfinds/internal/domain/scoring"
	"github.com/okian/huntersfinds/internal/domain/types"
	"github.com/okian/huntersfinds/pkg/metrics"
)

// MemoryCatalog is an in-memory Catalog safe for concurrent use.
type MemoryCatalog struct {
	mu sync.RWMutex

	seedRestaurants []model.Restaurant
	groups          []model.Group
	users           []model.User
	indexSeed       uint64

	restaurants []model.Restaurant
	dishes      map[string]model.Dish
	dishOrder   []string // source order

	byKind map[model.ItemKind]*index
}

var _ Catalog = (*MemoryCatalog)(nil)

// NewMemoryCatalog builds a catalog from the demo data unless options say otherwise.
func NewMemoryCatalog(opts ...Option) *MemoryCatalog {
	c := &MemoryCatalog{
		seedRestaurants: SeedRestaurants(),
		groups:          SeedGroups(),
		users:           SeedUsers(),
		indexSeed:       1,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.dishes = make(map[string]model.Dish)
	c.byKind = map[model.ItemKind]*index{
		model.KindDish:       newIndex(c.indexSeed),
		model.KindRestaurant: newIndex(c.indexSeed + 1),
	}

	for _, r := range c.seedRestaurants {
		r.TopDishes = append([]model.Dish(nil), r.TopDishes...)
		for i := range r.TopDishes {
			d := &r.TopDishes[i]
			if d.Restaurant == "" {
				d.Restaurant = r.Name
			}
			if d.Cuisine == "" {
				d.Cuisine = r.Cuisine
			}
			c.dishes[d.ID] = *d
			c.dishOrder = append(c.dishOrder, d.ID)
			c.byKind[model.KindDish].upsert(d.Item())
		}
		c.restaurants = append(c.restaurants, r)
		c.byKind[model.KindRestaurant].upsert(r.Item())
	}

	metrics.UpdateCatalogItems(string(model.KindDish), len(c.dishOrder))
	metrics.UpdateCatalogItems(string(model.KindRestaurant), len(c.restaurants))
	return c
}

// Dishes implements Catalog.Dishes.
func (c *MemoryCatalog) Dishes(_ context.Context) []model.RatedItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]model.RatedItem, len(c.dishOrder))
	for i, id := range c.dishOrder {
		out[i] = c.dishes[id].Item()
	}
	return out
}

// Restaurants implements Catalog.Restaurants.
func (c *MemoryCatalog) Restaurants(_ context.Context) []model.RatedItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]model.RatedItem, len(c.restaurants))
	for i, r := range c.restaurants {
		out[i] = r.Item()
	}
	return out
}

// RestaurantByName looks a restaurant up by case-insensitive name.
func (c *MemoryCatalog) RestaurantByName(_ context.Context, name string) (model.Restaurant, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, r := range c.restaurants {
		if strings.EqualFold(r.Name, name) {
			return r, nil
		}
	}
	metrics.RecordErrorByComponent("repository", "not_found")
	return model.Restaurant{}, fmt.Errorf("%w: restaurant %q", ErrNotFound, name)
}

// DishByID implements Catalog.DishByID.
func (c *MemoryCatalog) DishByID(_ context.Context, id string) (model.Dish, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	d, ok := c.dishes[id]
	if !ok {
		metrics.RecordErrorByComponent("repository", "not_found")
		return model.Dish{}, fmt.Errorf("%w: dish %q", ErrNotFound, id)
	}
	return d, nil
}

// GroupByName looks a group up by case-insensitive name.
func (c *MemoryCatalog) GroupByName(_ context.Context, name string) (model.Group, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, g := range c.groups {
		if strings.EqualFold(g.Name, name) {
			return g, nil
		}
	}
	metrics.RecordErrorByComponent("repository", "not_found")
	return model.Group{}, fmt.Errorf("%w: group %q", ErrNotFound, name)
}

// UserByName looks a user up by exact username.
func (c *MemoryCatalog) UserByName(_ context.Context, username string) (model.User, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, u := range c.users {
		if u.Username == username {
			return u, nil
		}
	}
	return model.User{}, fmt.Errorf("%w: user %q", ErrNotFound, username)
}

// Groups implements Catalog.Groups.
func (c *MemoryCatalog) Groups(_ context.Context) []model.Group {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.Group, len(c.groups))
	copy(out, c.groups)
	return out
}

// Users implements Catalog.Users.
func (c *MemoryCatalog) Users(_ context.Context) []model.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.User, len(c.users))
	copy(out, c.users)
	return out
}

// ProfileFor implements Catalog.ProfileFor. Unknown members get a profile
// whose ratings mirror their dish count and whose overlap falls in [60, 90).
func (c *MemoryCatalog) ProfileFor(ctx context.Context, member model.GroupMember) model.User {
	if u, err := c.UserByName(ctx, member.Username); err == nil {
		return u
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(member.Username))
	return model.User{
		ID:       "member:" + member.Username,
		Username: member.Username,
		Ratings:  member.Dishes,
		Location: "oakland, ca",
		Overlap:  60 + int(h.Sum32()%30),
	}
}

// TopN implements Catalog.TopN.
func (c *MemoryCatalog) TopN(_ context.Context, kind model.ItemKind, n int) ([]types.Entry, error) {
	if n < 1 {
		metrics.RecordErrorByComponent("repository", "invalid_limit")
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, n)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	idx, ok := c.byKind[kind]
	if !ok {
		return nil, fmt.Errorf("%w: kind %q", ErrInvalidItem, kind)
	}

	items := idx.top(n)
	out := make([]types.Entry, len(items))
	for i, it := range items {
		out[i] = types.Entry{
			Rank:       i + 1,
			ID:         it.ID,
			Kind:       string(it.Kind),
			Name:       it.Name,
			Restaurant: it.Restaurant,
			Score:      it.Score,
			Tier:       scoring.TierOf(it.Score).String(),
		}
	}
	return out, nil
}

// Position implements Catalog.Position in O(log n).
func (c *MemoryCatalog) Position(_ context.Context, kind model.ItemKind, id string) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx, ok := c.byKind[kind]
	if !ok {
		return 0, fmt.Errorf("%w: kind %q", ErrInvalidItem, kind)
	}
	pos, ok := idx.position(id)
	if !ok {
		metrics.RecordErrorByComponent("repository", "not_found")
		return 0, fmt.Errorf("%w: %s %q", ErrNotFound, kind, id)
	}
	return pos, nil
}

// AppendDish implements Catalog.AppendDish.
func (c *MemoryCatalog) AppendDish(_ context.Context, item model.RatedItem) error {
	if item.Kind != model.KindDish || item.ID == "" || item.Name == "" || math.IsNaN(item.Score) {
		metrics.RecordErrorByComponent("repository", "invalid_item")
		return fmt.Errorf("%w: %+v", ErrInvalidItem, item)
	}

	c.mu.Lock()
	if _, exists := c.dishes[item.ID]; exists {
		c.mu.Unlock()
		return fmt.Errorf("%w: dish %q", ErrDuplicateItem, item.ID)
	}
	c.dishes[item.ID] = model.Dish{
		ID:         item.ID,
		Name:       item.Name,
		Restaurant: item.Restaurant,
		Cuisine:    item.Cuisine,
		Score:      item.Score,
		Price:      item.Price,
		NumRatings: item.NumRatings,
	}
	c.dishOrder = append(c.dishOrder, item.ID)
	c.byKind[model.KindDish].upsert(item)
	count := len(c.dishOrder)
	c.mu.Unlock()

	metrics.UpdateCatalogItems(string(model.KindDish), count)
	return nil
}

// Count implements Catalog.Count.
func (c *MemoryCatalog) Count(_ context.Context, kind model.ItemKind) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if idx, ok := c.byKind[kind]; ok {
		return idx.count()
	}
	return 0
}
