package service

import (
	"context"

	"github.com/okian/huntersfinds/internal/adapters/repository"
	"github.com/okian/huntersfinds/internal/domain/model"
	"github.com/okian/huntersfinds/internal/domain/scoring"
	"github.com/okian/huntersfinds/internal/domain/types"
	"github.com/okian/huntersfinds/pkg/metrics"
)

// ToggleSaved saves or unsaves an item and returns whether it is now saved.
func (s *Service) ToggleSaved(ctx context.Context, id string, kind model.ItemKind, name string) bool {
	saved := s.saved.Toggle(ctx, id, kind, name)
	metrics.RecordSavedToggle(string(kind), saved)
	metrics.UpdateSavedItems(int(s.saved.Size()))
	return saved
}

// IsSaved reports whether an item is saved.
func (s *Service) IsSaved(ctx context.Context, id string, kind model.ItemKind) bool {
	return s.saved.IsSaved(ctx, id, kind)
}

// SavedItems lists saved items in save order.
func (s *Service) SavedItems(ctx context.Context) []model.SavedEntry {
	return s.saved.List(ctx)
}

// TopDishes returns the best n dishes.
func (s *Service) TopDishes(ctx context.Context, n int) ([]types.Entry, error) {
	return s.catalog.TopN(ctx, model.KindDish, n)
}

// TopRestaurants returns the best n restaurants.
func (s *Service) TopRestaurants(ctx context.Context, n int) ([]types.Entry, error) {
	return s.catalog.TopN(ctx, model.KindRestaurant, n)
}

// Catalog exposes the read side of the catalog.
func (s *Service) Catalog() repository.Catalog {
	return s.catalog
}

// Engine exposes the score engine.
func (s *Service) Engine() *scoring.Engine {
	return s.engine
}
