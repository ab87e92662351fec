package timer

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/okian/huntersfinds/internal/domain/model"
	"github.com/okian/huntersfinds/pkg/logger"
)

// Sink receives events when their timer fires.
type Sink interface {
	// Post delivers ev. It returns false if the event was dropped.
	Post(ctx context.Context, ev model.Event) bool
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, ev model.Event) bool

// Post calls f.
func (f SinkFunc) Post(ctx context.Context, ev model.Event) bool { return f(ctx, ev) }

// Scheduler keeps at most one pending timer per key. Scheduling a key that
// is already pending cancels the old timer first.
type Scheduler struct {
	mu      sync.Mutex
	clock   Clock
	sink    Sink
	ctx     context.Context
	pending map[string]*entry
	tokens  uint64
	stopped bool
	logger  logger.Logger
}

type entry struct {
	timer Timer
	token uint64
}

// NewScheduler creates a scheduler posting to sink. ctx is handed to the
// sink on every delivery.
func NewScheduler(ctx context.Context, clock Clock, sink Sink, opts ...SchedulerOption) *Scheduler {
	if clock == nil {
		clock = RealClock{}
	}
	s := &Scheduler{
		clock:   clock,
		sink:    sink,
		ctx:     ctx,
		pending: make(map[string]*entry),
		logger:  logger.OrNop("scheduler"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Schedule posts ev after delay. It returns true if a pending timer for key
// was replaced. ev gets an ID and timestamp when they are empty.
func (s *Scheduler) Schedule(key string, delay time.Duration, ev model.Event) bool { //nolint:gocritic // hugeParam: Event is copied into the timer closure
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.TS.IsZero() {
		ev.TS = s.clock.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return false
	}
	replaced := s.cancelLocked(key)

	s.tokens++
	token := s.tokens
	e := &entry{token: token}
	s.pending[key] = e
	e.timer = s.clock.AfterFunc(delay, func() { s.fire(key, token, ev) })
	return replaced
}

func (s *Scheduler) fire(key string, token uint64, ev model.Event) { //nolint:gocritic // hugeParam: see Schedule
	s.mu.Lock()
	e, ok := s.pending[key]
	if !ok || e.token != token {
		s.mu.Unlock()
		return
	}
	delete(s.pending, key)
	s.mu.Unlock()

	if !s.sink.Post(s.ctx, ev) {
		s.logger.Warn(s.ctx, "timer event dropped",
			logger.String("key", key),
			logger.String("event_id", ev.ID),
		)
	}
}

// Cancel stops the pending timer for key. It reports whether one existed.
func (s *Scheduler) Cancel(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancelLocked(key)
}

func (s *Scheduler) cancelLocked(key string) bool {
	e, ok := s.pending[key]
	if !ok {
		return false
	}
	e.timer.Stop()
	delete(s.pending, key)
	return true
}

// Pending reports whether key has a timer waiting to fire.
func (s *Scheduler) Pending(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[key]
	return ok
}

// Len returns the number of pending timers.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Stop cancels every pending timer and rejects further scheduling.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.pending {
		s.cancelLocked(key)
	}
	s.stopped = true
}
