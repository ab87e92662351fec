// Package modalstack implements the nested navigation stack for detail views.
package modalstack

import (
	"fmt"
	"sync"
)

// DefaultLimit caps nesting depth. Real sessions stay in single digits.
const DefaultLimit = 50

// Stack is an ordered list of frames, oldest first. The last frame is the
// visible one. It is safe for concurrent use.
type Stack[T any] struct {
	mu     sync.RWMutex
	frames []T
	limit  int
}

// Option configures a Stack.
type Option func(*config)

type config struct {
	limit int
}

// WithLimit sets the maximum number of frames. Values below 1 are ignored.
func WithLimit(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.limit = n
		}
	}
}

// New creates an empty stack.
func New[T any](opts ...Option) *Stack[T] {
	c := &config{limit: DefaultLimit}
	for _, opt := range opts {
		opt(c)
	}
	return &Stack[T]{limit: c.limit}
}

// Push appends frame. At the limit it returns ErrOverflow and changes nothing.
func (s *Stack[T]) Push(frame T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.frames) >= s.limit {
		return fmt.Errorf("%w: limit %d", ErrOverflow, s.limit)
	}
	s.frames = append(s.frames, frame)
	return nil
}

// Pop drops the visible frame. A stack holding one frame collapses to empty,
// so backing out of the first nested view closes the whole stack.
func (s *Stack[T]) Pop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.frames) <= 1 {
		s.clearLocked()
		return
	}
	var zero T
	s.frames[len(s.frames)-1] = zero
	s.frames = s.frames[:len(s.frames)-1]
}

// Clear removes every frame.
func (s *Stack[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
}

func (s *Stack[T]) clearLocked() {
	s.frames = nil
}

// Top returns the visible frame.
func (s *Stack[T]) Top() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.frames) == 0 {
		var zero T
		return zero, false
	}
	return s.frames[len(s.frames)-1], true
}

// CanGoBack reports whether a pop would reveal another frame.
func (s *Stack[T]) CanGoBack() bool {
	return s.Len() > 1
}

// IsActive reports whether any frame is present.
func (s *Stack[T]) IsActive() bool {
	return s.Len() > 0
}

// Len returns the number of frames.
func (s *Stack[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.frames)
}

// Limit returns the configured maximum depth.
func (s *Stack[T]) Limit() int {
	return s.limit
}

// Frames returns a copy of the frames, oldest first.
func (s *Stack[T]) Frames() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, len(s.frames))
	copy(out, s.frames)
	return out
}
