package repository

import "github.com/okian/huntersfinds/internal/domain/model"

// Option applies a configuration option to the MemoryCatalog.
type Option func(*MemoryCatalog)

// WithRestaurants replaces the seeded restaurants and their dishes.
func WithRestaurants(restaurants []model.Restaurant) Option {
	return func(c *MemoryCatalog) {
		c.seedRestaurants = restaurants
	}
}

// WithGroups replaces the seeded groups.
func WithGroups(groups []model.Group) Option {
	return func(c *MemoryCatalog) {
		c.groups = groups
	}
}

// WithUsers replaces the seeded users.
func WithUsers(users []model.User) Option {
	return func(c *MemoryCatalog) {
		c.users = users
	}
}

// WithEmpty starts the catalog with no seed data.
func WithEmpty() Option {
	return func(c *MemoryCatalog) {
		c.seedRestaurants = nil
		c.groups = nil
		c.users = nil
	}
}

// WithIndexSeed fixes the random source for index priorities.
func WithIndexSeed(seed uint64) Option {
	return func(c *MemoryCatalog) {
		c.indexSeed = seed
	}
}
