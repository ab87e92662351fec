// Package worker drains the event queue into the application controller.
package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/okian/huntersfinds/internal/domain/model"
	"github.com/okian/huntersfinds/pkg/logger"
	"github.com/okian/huntersfinds/pkg/metrics"
)

// Event abstracts what the dispatcher reads off the queue.
type Event = model.Event

// Applier consumes one event. Implementations own all state the event touches.
type Applier interface {
	Apply(ctx context.Context, ev model.Event) error
}

// Queue defines how the dispatcher receives events.
type Queue interface {
	Dequeue(ctx context.Context) <-chan Event
}

// Worker is a long-running event consumer.
type Worker interface {
	// Run starts the loop until ctx is canceled, the queue closes, or
	// Shutdown forces a stop.
	Run(ctx context.Context)

	// Shutdown closes the queue when it can, lets queued events drain, and
	// waits for Run to return.
	Shutdown(ctx context.Context) error
}

// Dispatcher is the single consumer of the queue, so events are applied one
// at a time in enqueue order.
type Dispatcher struct {
	queue   Queue
	applier Applier
	name    string

	shutdown     chan struct{}
	shutdownOnce sync.Once
	done         chan struct{}
	started      chan struct{}
	startOnce    sync.Once

	logger logger.Logger
}

var _ Worker = (*Dispatcher)(nil)

// NewDispatcher creates a dispatcher for q that hands each event to a.
func NewDispatcher(q Queue, a Applier, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		queue:    q,
		applier:  a,
		name:     "dispatcher",
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
		started:  make(chan struct{}),
		logger:   logger.OrNop("dispatcher"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Name returns the dispatcher name.
func (d *Dispatcher) Name() string { return d.name }

// Run starts the dispatch loop. It must be called at most once.
func (d *Dispatcher) Run(ctx context.Context) {
	d.startOnce.Do(func() { close(d.started) })
	defer close(d.done)

	events := d.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-d.shutdown:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if err := d.dispatch(ctx, ev); err != nil {
				d.logger.Error(ctx, "error applying event",
					logger.String("worker", d.name),
					logger.String("event_id", ev.ID),
					logger.Error(err),
				)
			}
		}
	}
}

// Shutdown stops the dispatcher. If ctx ends before the queue drains, the
// loop is told to stop and the context error is returned without waiting
// for an in-flight event.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	if closer, ok := d.queue.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			d.logger.Error(ctx, "error closing queue", logger.Error(err))
		}
	} else {
		d.stop()
	}

	select {
	case <-d.started:
	default:
		// Never ran; make a later Run return at once.
		d.stop()
		return nil
	}

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		// The loop exits once the in-flight event returns.
		d.stop()
		d.logger.Warn(ctx, "shutdown timed out", logger.String("worker", d.name))
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

func (d *Dispatcher) stop() {
	d.shutdownOnce.Do(func() { close(d.shutdown) })
}

func (d *Dispatcher) dispatch(ctx context.Context, ev Event) error { //nolint:gocritic // hugeParam: Event is passed by value for channel semantics
	start := time.Now()
	defer func() {
		metrics.RecordDispatchLatency(float64(time.Since(start).Microseconds()) / 1000)
	}()

	if err := d.applier.Apply(ctx, ev); err != nil {
		metrics.RecordErrorByComponent("dispatcher", "apply_error")
		return fmt.Errorf("apply event %s (%s %s): %w", ev.ID, ev.Kind, ev.Modal, err)
	}
	return nil
}
