package service

import (
	"context"

	"github.com/okian/huntersfinds/internal/domain/modal"
	"github.com/okian/huntersfinds/internal/domain/model"
)

// SlotView is one top-level modal as it should be drawn.
type SlotView[T any] struct {
	Phase modal.Phase
	Value T
	// Present is true while the slot holds content, including while closing.
	Present bool
	// Suppressed is true when nested navigation covers this slot.
	Suppressed bool
}

// Visible reports whether the slot should be drawn.
func (v SlotView[T]) Visible() bool {
	return v.Present && !v.Suppressed && v.Phase != modal.PhaseClosed
}

// Closing reports whether the exit transition is running.
func (v SlotView[T]) Closing() bool {
	return v.Phase == modal.PhaseClosing
}

// StackView is the nested navigation state.
type StackView struct {
	Active    bool
	Top       modal.Frame
	Depth     int
	CanGoBack bool
}

// View is a consistent snapshot of everything the presentation layer draws.
type View struct {
	Flow       FlowState
	Draft      model.SubmissionDraft
	Stack      StackView
	Submission SlotView[struct{}]
	Results    SlotView[model.SubmittedRating]
	Dish       SlotView[model.Dish]
	Restaurant SlotView[model.Restaurant]
	Group      SlotView[model.Group]
	User       SlotView[model.User]
	NewList    SlotView[string]
	NewGroup   SlotView[string]
	GroupView  GroupView
}

func slotView[T any](sl *modal.Slot[T], suppressed bool) SlotView[T] {
	v, ok := sl.Value()
	return SlotView[T]{Phase: sl.Phase(), Value: v, Present: ok, Suppressed: ok && suppressed}
}

func nameView(sl *modal.Slot[struct{}], name string) SlotView[string] {
	_, ok := sl.Value()
	return SlotView[string]{Phase: sl.Phase(), Value: name, Present: ok}
}

// Presentation returns what to draw. While nested navigation is active it
// wins: the user, dish and group slots are reported suppressed.
func (s *Service) Presentation(_ context.Context) View {
	s.mu.Lock()
	defer s.mu.Unlock()

	top, active := s.stack.Top()
	return View{
		Flow:  s.flowLocked(),
		Draft: s.draft,
		Stack: StackView{
			Active:    active,
			Top:       top,
			Depth:     s.stack.Len(),
			CanGoBack: s.stack.CanGoBack(),
		},
		Submission: slotView(&s.submission, false),
		Results:    slotView(&s.results, false),
		Dish:       slotView(&s.dish, active),
		Restaurant: slotView(&s.restaurant, false),
		Group:      slotView(&s.group, active),
		User:       slotView(&s.user, active),
		NewList:    nameView(&s.newList, s.newListName),
		NewGroup:   nameView(&s.newGroup, s.newGroupName),
		GroupView:  s.groupView,
	}
}
