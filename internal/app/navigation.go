package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/okian/huntersfinds/internal/domain/modal"
	"github.com/okian/huntersfinds/internal/domain/modalstack"
	"github.com/okian/huntersfinds/internal/domain/model"
	"github.com/okian/huntersfinds/pkg/logger"
	"github.com/okian/huntersfinds/pkg/metrics"
)

// GroupView is the tab shown inside the group modal.
type GroupView string

const (
	GroupViewMembers GroupView = "members"
	GroupViewDishes  GroupView = "dishes"
)

// OpenDish shows a dish in its own modal.
func (s *Service) OpenDish(ctx context.Context, id string) error {
	d, err := s.catalog.DishByID(ctx, id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.beforeOpenLocked(model.ModalDish)
	s.dish.Open(d)
	return nil
}

// OpenRestaurant shows a restaurant in its own modal.
func (s *Service) OpenRestaurant(ctx context.Context, name string) error {
	r, err := s.catalog.RestaurantByName(ctx, name)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.beforeOpenLocked(model.ModalRestaurant)
	s.restaurant.Open(r)
	return nil
}

// OpenGroup shows a group in its own modal, on the members tab.
func (s *Service) OpenGroup(ctx context.Context, name string) error {
	g, err := s.catalog.GroupByName(ctx, name)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.beforeOpenLocked(model.ModalGroup)
	s.group.Open(g)
	s.groupView = GroupViewMembers
	return nil
}

// OpenUser shows a user profile in its own modal.
func (s *Service) OpenUser(ctx context.Context, username string) error {
	u, err := s.catalog.UserByName(ctx, username)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.beforeOpenLocked(model.ModalUser)
	s.user.Open(u)
	return nil
}

// OpenNewList opens the new-list form.
func (s *Service) OpenNewList(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.beforeOpenLocked(model.ModalNewList)
	s.newList.Open(struct{}{})
}

// SetNewListName sets the name typed into the new-list form.
func (s *Service) SetNewListName(_ context.Context, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.newListName = name
}

// OpenNewGroup opens the new-group form.
func (s *Service) OpenNewGroup(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.beforeOpenLocked(model.ModalNewGroup)
	s.newGroup.Open(struct{}{})
}

// SetNewGroupName sets the name typed into the new-group form.
func (s *Service) SetNewGroupName(_ context.Context, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.newGroupName = name
}

// SetGroupView switches the group modal tab.
func (s *Service) SetGroupView(_ context.Context, view GroupView) error {
	if view != GroupViewMembers && view != GroupViewDishes {
		return fmt.Errorf("%w: %q", ErrInvalidGroupView, view)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groupView = view
	return nil
}

// OpenNested navigates from the frame currently shown to target. With no
// stack yet, from is pushed first so that Back returns to it.
func (s *Service) OpenNested(ctx context.Context, from, target modal.Frame) error {
	if target.IsZero() {
		return fmt.Errorf("%w: empty target", ErrInvalidFrame)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.stack.IsActive() {
		if from.IsZero() {
			return fmt.Errorf("%w: empty container", ErrInvalidFrame)
		}
		if s.stack.Limit() < 2 {
			return s.overflowLocked(ctx, fmt.Errorf("%w: limit %d", modalstack.ErrOverflow, s.stack.Limit()))
		}
		if err := s.stack.Push(from); err != nil {
			return s.overflowLocked(ctx, err)
		}
	}
	if err := s.stack.Push(target); err != nil {
		return s.overflowLocked(ctx, err)
	}

	metrics.UpdateModalStackDepth(s.stack.Len())
	s.logger.Debug(ctx, "nested navigation",
		logger.String("kind", string(target.Kind())),
		logger.String("title", target.Title()),
		logger.Int("depth", s.stack.Len()),
	)
	return nil
}

func (s *Service) overflowLocked(ctx context.Context, err error) error {
	if errors.Is(err, modalstack.ErrOverflow) {
		metrics.RecordModalStackOverflow()
		s.logger.Warn(ctx, "modal stack limit reached", logger.Int("limit", s.stack.Limit()))
	}
	return err
}

// Back returns to the previous nested frame. Backing out of the first
// nested frame leaves nested navigation entirely.
func (s *Service) Back(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stack.Pop()
	metrics.UpdateModalStackDepth(s.stack.Len())
}

// CloseStack leaves nested navigation at once.
func (s *Service) CloseStack(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stack.Clear()
	metrics.UpdateModalStackDepth(0)
}

// MemberFrame returns the frame for a group member row.
func (s *Service) MemberFrame(ctx context.Context, member model.GroupMember) modal.Frame {
	return modal.UserFrame(s.catalog.ProfileFor(ctx, member))
}

// GroupDishFrame returns the frame for a dish listed in a group, resolved
// against the catalog by name and restaurant.
func (s *Service) GroupDishFrame(ctx context.Context, gd model.GroupDish) modal.Frame {
	for _, it := range s.catalog.Dishes(ctx) {
		if it.Name == gd.Name && it.Restaurant == gd.Restaurant {
			if d, err := s.catalog.DishByID(ctx, it.ID); err == nil {
				return modal.DishFrame(d)
			}
		}
	}
	return modal.DishFrame(model.Dish{Name: gd.Name, Restaurant: gd.Restaurant, Score: gd.Score})
}
