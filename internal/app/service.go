// Package service is the application state controller. It owns the rating
// draft, the modal slots, the navigation stack and the saved items, and
// funnels every mutation through its methods.
package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	eventqueue "github.com/okian/huntersfinds/internal/adapters/mq/queue"
	"github.com/okian/huntersfinds/internal/adapters/mq/worker"
	"github.com/okian/huntersfinds/internal/adapters/repository"
	"github.com/okian/huntersfinds/internal/adapters/timer"
	"github.com/okian/huntersfinds/internal/domain/modal"
	"github.com/okian/huntersfinds/internal/domain/modalstack"
	"github.com/okian/huntersfinds/internal/domain/model"
	"github.com/okian/huntersfinds/internal/domain/savedset"
	"github.com/okian/huntersfinds/internal/domain/scoring"
	"github.com/okian/huntersfinds/pkg/logger"
	"github.com/okian/huntersfinds/pkg/metrics"
)

// Default controller configuration constants.
const (
	DefaultCloseDelay     = 300 * time.Millisecond
	defaultQueueSize      = 1024
	dispatcherStopTimeout = 5 * time.Second
)

// closable is the type-erased view of a modal.Slot used for generic closing.
type closable interface {
	BeginClose() (uint64, bool)
	FinishClose(gen uint64) bool
	ForceClose()
	Phase() modal.Phase
}

// Service is the single owner of application state. It is safe for
// concurrent use; timer completions and callers serialize on one mutex.
type Service struct {
	mu sync.Mutex

	// Core components
	catalog   repository.Catalog
	engine    *scoring.Engine
	saved     savedset.Set
	clock     timer.Clock
	scheduler *timer.Scheduler
	stack     *modalstack.Stack[modal.Frame]

	// Configuration
	closeDelay        time.Duration
	stackLimit        int
	recordSubmissions bool
	queueSize         int

	// Submission flow
	draft model.SubmissionDraft

	// Top-level modal slots
	submission modal.Slot[struct{}]
	results    modal.Slot[model.SubmittedRating]
	dish       modal.Slot[model.Dish]
	restaurant modal.Slot[model.Restaurant]
	group      modal.Slot[model.Group]
	user       modal.Slot[model.User]
	newList    modal.Slot[struct{}]
	newGroup   modal.Slot[struct{}]
	slots      map[model.ModalID]closable

	groupView    GroupView
	newListName  string
	newGroupName string

	// Event loop, set between Start and Stop
	started    bool
	queue      atomic.Pointer[eventqueue.InMemoryQueue]
	dispatcher *worker.Dispatcher

	// Logging
	logger logger.Logger
}

// New constructs a Service with the demo catalog and default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		closeDelay: DefaultCloseDelay,
		stackLimit: modalstack.DefaultLimit,
		queueSize:  defaultQueueSize,
		groupView:  GroupViewMembers,
		logger:     logger.OrNop("app"),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.catalog == nil {
		s.catalog = repository.NewMemoryCatalog()
	}
	if s.engine == nil {
		s.engine = scoring.NewEngine()
	}
	if s.clock == nil {
		s.clock = timer.RealClock{}
	}
	if s.saved == nil {
		s.saved = savedset.New(savedset.WithClock(s.clock.Now))
	}

	s.stack = modalstack.New[modal.Frame](modalstack.WithLimit(s.stackLimit))
	s.scheduler = timer.NewScheduler(context.Background(), s.clock, timer.SinkFunc(s.post),
		timer.WithLogger(s.logger.Named("scheduler")))
	s.draft = newDraft()
	s.slots = map[model.ModalID]closable{
		model.ModalSubmission: &s.submission,
		model.ModalResults:    &s.results,
		model.ModalDish:       &s.dish,
		model.ModalRestaurant: &s.restaurant,
		model.ModalGroup:      &s.group,
		model.ModalUser:       &s.user,
		model.ModalNewList:    &s.newList,
		model.ModalNewGroup:   &s.newGroup,
	}
	return s
}

// Start runs the event loop: timer completions are queued and applied by a
// single dispatcher. Without Start they are applied on the timer goroutine.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	q := eventqueue.NewInMemoryQueue(
		eventqueue.WithCapacity(s.queueSize),
		eventqueue.WithBufferSize(s.queueSize),
	)
	s.dispatcher = worker.NewDispatcher(q, s,
		worker.WithName("app-dispatcher"),
		worker.WithLogger(s.logger.Named("dispatcher")),
	)
	go s.runDispatcher(ctx, s.dispatcher, q)
	s.queue.Store(q)
	s.started = true

	s.logger.Info(ctx, "controller started",
		logger.Int("queue_size", s.queueSize),
		logger.Int("close_delay_ms", int(s.closeDelay.Milliseconds())),
		logger.Int("stack_limit", s.stackLimit),
	)
	return nil
}

// runDispatcher runs d until Stop or until ctx ends. Once it returns the
// service falls back to inline completion and events still buffered in q are
// applied here.
func (s *Service) runDispatcher(ctx context.Context, d *worker.Dispatcher, q *eventqueue.InMemoryQueue) {
	d.Run(ctx)

	s.mu.Lock()
	if s.queue.CompareAndSwap(q, nil) {
		s.dispatcher = nil
		s.started = false
		s.logger.Info(context.Background(), "dispatcher exited, applying completions inline")
	}
	s.mu.Unlock()

	if err := q.Close(); err != nil {
		s.logger.Warn(context.Background(), "close event queue", logger.Error(err))
	}
	for ev := range q.Dequeue(context.Background()) {
		if err := s.Apply(context.Background(), ev); err != nil {
			s.logger.Error(context.Background(), "apply buffered event", logger.Error(err))
		}
	}
}

// Stop drains the event loop and returns to synchronous completion.
// Pending close timers keep running.
func (s *Service) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	d := s.dispatcher
	s.queue.Store(nil)
	s.dispatcher = nil
	s.started = false
	s.mu.Unlock()

	// The dispatcher applies events under s.mu, so drain without holding it.
	ctx, cancel := context.WithTimeout(context.Background(), dispatcherStopTimeout)
	defer cancel()
	if err := d.Shutdown(ctx); err != nil {
		s.logger.Warn(ctx, "dispatcher shutdown", logger.Error(err))
	}
	s.logger.Info(ctx, "controller stopped")
}

// Close stops the event loop and cancels every pending timer.
func (s *Service) Close() error {
	s.Stop()
	s.scheduler.Stop()
	return nil
}

// post is the scheduler sink.
func (s *Service) post(ctx context.Context, ev model.Event) bool { //nolint:gocritic // hugeParam: Event is passed by value for channel semantics
	if q := s.queue.Load(); q != nil {
		if q.Enqueue(ctx, ev) {
			return true
		}
		s.logger.Warn(ctx, "event queue rejected event, applying inline",
			logger.String("event_id", ev.ID),
			logger.String("modal", string(ev.Modal)),
		)
	}
	if err := s.Apply(ctx, ev); err != nil {
		s.logger.Error(ctx, "apply event", logger.Error(err))
		return false
	}
	return true
}

// Apply handles one controller event. A close completion clears its slot
// only if the slot is still closing at the generation the event carries.
func (s *Service) Apply(ctx context.Context, ev model.Event) error { //nolint:gocritic // hugeParam: Event is passed by value for channel semantics
	s.mu.Lock()
	defer s.mu.Unlock()

	switch ev.Kind {
	case model.EventCloseElapsed:
		return s.finishCloseLocked(ctx, ev.Modal, ev.Generation)
	default:
		metrics.RecordErrorByComponent("app", "unknown_event")
		return fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Kind)
	}
}

func (s *Service) slot(id model.ModalID) (closable, error) {
	sl, ok := s.slots[id]
	if !ok {
		metrics.RecordErrorByComponent("app", "unknown_modal")
		return nil, fmt.Errorf("%w: %q", ErrUnknownModal, id)
	}
	return sl, nil
}

// beforeOpenLocked supersedes any pending close of id.
func (s *Service) beforeOpenLocked(id model.ModalID) {
	if s.scheduler.Cancel(string(id)) {
		metrics.RecordCloseTimerSuperseded(string(id))
	}
	metrics.RecordModalOpen(string(id))
}

// beginCloseLocked starts the two-phase close of id. Closing a closed slot
// is a no-op.
func (s *Service) beginCloseLocked(ctx context.Context, id model.ModalID) error {
	sl, err := s.slot(id)
	if err != nil {
		return err
	}
	gen, ok := sl.BeginClose()
	if !ok {
		return nil
	}
	if s.closeDelay == 0 {
		s.scheduler.Cancel(string(id))
		return s.finishCloseLocked(ctx, id, gen)
	}

	ev := model.Event{Kind: model.EventCloseElapsed, Modal: id, Generation: gen}
	if s.scheduler.Schedule(string(id), s.closeDelay, ev) {
		metrics.RecordCloseTimerSuperseded(string(id))
	}
	s.logger.Debug(ctx, "modal closing",
		logger.String("modal", string(id)),
		logger.Any("generation", gen),
	)
	return nil
}

func (s *Service) finishCloseLocked(ctx context.Context, id model.ModalID, gen uint64) error {
	sl, err := s.slot(id)
	if err != nil {
		return err
	}
	if !sl.FinishClose(gen) {
		s.logger.Debug(ctx, "stale close ignored",
			logger.String("modal", string(id)),
			logger.Any("generation", gen),
		)
		return nil
	}

	switch id {
	case model.ModalResults:
		s.draft = newDraft()
	case model.ModalGroup:
		s.groupView = GroupViewMembers
	case model.ModalNewList:
		s.newListName = ""
	case model.ModalNewGroup:
		s.newGroupName = ""
	}
	metrics.RecordModalClose(string(id))
	return nil
}

// CloseModal starts the two-phase close of any top-level modal.
func (s *Service) CloseModal(ctx context.Context, id model.ModalID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.beginCloseLocked(ctx, id)
}

// GetStats returns controller statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":            s.started,
		"closeDelayMs":       s.closeDelay.Milliseconds(),
		"stackLimit":         s.stackLimit,
		"stackDepth":         s.stack.Len(),
		"savedItems":         s.saved.Size(),
		"pendingTimers":      s.scheduler.Len(),
		"recordSubmissions":  s.recordSubmissions,
		"catalogDishes":      s.catalog.Count(ctx, model.KindDish),
		"catalogRestaurants": s.catalog.Count(ctx, model.KindRestaurant),
	}
	if q := s.queue.Load(); q != nil {
		stats["queueLength"] = q.Len(ctx)
	}
	return stats
}
