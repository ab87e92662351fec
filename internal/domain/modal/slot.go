package modal

import "sync"

// Phase is the lifecycle state of a modal slot.
type Phase int

const (
	PhaseClosed Phase = iota
	PhaseOpen
	PhaseClosing // exit animation running, content still shown
)

func (p Phase) String() string {
	switch p {
	case PhaseOpen:
		return "open"
	case PhaseClosing:
		return "closing"
	default:
		return "closed"
	}
}

// Slot is a single modal with a generation counter. Every transition that
// can race a pending close bumps the generation, so a close completion
// scheduled against an older generation is ignored.
type Slot[T any] struct {
	mu    sync.Mutex
	phase Phase
	value T
	has   bool
	gen   uint64
}

// Open shows v from any phase and returns the new generation.
func (s *Slot[T]) Open(v T) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.phase = PhaseOpen
	s.value = v
	s.has = true
	s.gen++
	return s.gen
}

// BeginClose moves an open or closing slot to Closing and returns the
// generation a completion must carry. It returns false for a closed slot.
func (s *Slot[T]) BeginClose() (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == PhaseClosed {
		return s.gen, false
	}
	s.phase = PhaseClosing
	s.gen++
	return s.gen, true
}

// FinishClose completes a close started at gen. Stale generations and slots
// that are not closing are left untouched.
func (s *Slot[T]) FinishClose(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseClosing || s.gen != gen {
		return false
	}
	s.clearLocked()
	return true
}

// ForceClose closes immediately from any phase.
func (s *Slot[T]) ForceClose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
	s.gen++
}

func (s *Slot[T]) clearLocked() {
	var zero T
	s.phase = PhaseClosed
	s.value = zero
	s.has = false
}

// Value returns the content. It stays available while Closing.
func (s *Slot[T]) Value() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, s.has
}

// Phase returns the current phase.
func (s *Slot[T]) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Generation returns the current generation.
func (s *Slot[T]) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}
