package timer_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/okian/huntersfinds/internal/adapters/timer"
	"github.com/okian/huntersfinds/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
	"go.uber.org/goleak"
)

var epoch = time.Date(2026, 1, 30, 12, 0, 0, 0, time.UTC)

type collector struct {
	mu     sync.Mutex
	events []model.Event
	accept bool
}

func (c *collector) Post(_ context.Context, ev model.Event) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, ev)
	return c.accept
}

func (c *collector) got() []model.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]model.Event(nil), c.events...)
}

func closeEv(m model.ModalID, gen uint64) model.Event {
	return model.Event{Kind: model.EventCloseElapsed, Modal: m, Generation: gen}
}

func TestManualClock(t *testing.T) {
	Convey("Given a manual clock", t, func() {
		c := timer.NewManualClock(epoch)
		var order []string

		c.AfterFunc(300*time.Millisecond, func() { order = append(order, "b") })
		c.AfterFunc(100*time.Millisecond, func() { order = append(order, "a") })
		stopped := c.AfterFunc(200*time.Millisecond, func() { order = append(order, "never") })

		Convey("When a timer is stopped and the clock advanced", func() {
			So(stopped.Stop(), ShouldBeTrue)
			So(stopped.Stop(), ShouldBeFalse)
			c.Advance(250 * time.Millisecond)

			Convey("Then only due timers should fire, in due order", func() {
				So(order, ShouldResemble, []string{"a"})
				So(c.Now().Equal(epoch.Add(250*time.Millisecond)), ShouldBeTrue)
				So(c.Pending(), ShouldEqual, 1)
			})

			Convey("And advanced past the rest", func() {
				c.Advance(time.Second)

				Convey("Then the remaining timer should fire once", func() {
					So(order, ShouldResemble, []string{"a", "b"})
					So(c.Pending(), ShouldEqual, 0)
				})
			})
		})

		Convey("When a callback schedules another due timer", func() {
			c.AfterFunc(50*time.Millisecond, func() {
				c.AfterFunc(10*time.Millisecond, func() { order = append(order, "chained") })
			})
			c.Advance(70 * time.Millisecond)

			Convey("Then the chained timer should also fire", func() {
				So(order, ShouldResemble, []string{"chained"})
			})
		})
	})
}

func TestScheduler(t *testing.T) {
	ctx := context.Background()

	Convey("Given a scheduler on a manual clock", t, func() {
		c := timer.NewManualClock(epoch)
		sink := &collector{accept: true}
		s := timer.NewScheduler(ctx, c, sink)

		Convey("When an event is scheduled", func() {
			replaced := s.Schedule("results", 300*time.Millisecond, closeEv(model.ModalResults, 2))

			Convey("Then it should be pending until the delay passes", func() {
				So(replaced, ShouldBeFalse)
				So(s.Pending("results"), ShouldBeTrue)
				c.Advance(299 * time.Millisecond)
				So(sink.got(), ShouldBeEmpty)
				c.Advance(time.Millisecond)
				got := sink.got()
				So(got, ShouldHaveLength, 1)
				So(got[0].Generation, ShouldEqual, 2)
				So(got[0].ID, ShouldNotBeEmpty)
				So(got[0].TS.Equal(epoch), ShouldBeTrue)
				So(s.Pending("results"), ShouldBeFalse)
			})
		})

		Convey("When the same key is scheduled twice", func() {
			s.Schedule("dish", 300*time.Millisecond, closeEv(model.ModalDish, 1))
			c.Advance(200 * time.Millisecond)
			replaced := s.Schedule("dish", 300*time.Millisecond, closeEv(model.ModalDish, 3))
			c.Advance(time.Second)

			Convey("Then only the replacement should fire", func() {
				So(replaced, ShouldBeTrue)
				got := sink.got()
				So(got, ShouldHaveLength, 1)
				So(got[0].Generation, ShouldEqual, 3)
			})
		})

		Convey("When different keys are scheduled", func() {
			s.Schedule("dish", 300*time.Millisecond, closeEv(model.ModalDish, 1))
			s.Schedule("group", 300*time.Millisecond, closeEv(model.ModalGroup, 1))

			Convey("Then they should not interfere", func() {
				So(s.Len(), ShouldEqual, 2)
				c.Advance(300 * time.Millisecond)
				So(sink.got(), ShouldHaveLength, 2)
			})
		})

		Convey("When a pending event is cancelled", func() {
			s.Schedule("user", 300*time.Millisecond, closeEv(model.ModalUser, 1))

			Convey("Then it should never fire", func() {
				So(s.Cancel("user"), ShouldBeTrue)
				So(s.Cancel("user"), ShouldBeFalse)
				c.Advance(time.Second)
				So(sink.got(), ShouldBeEmpty)
			})
		})

		Convey("When the scheduler is stopped", func() {
			s.Schedule("user", 300*time.Millisecond, closeEv(model.ModalUser, 1))
			s.Stop()

			Convey("Then pending and future events should be dropped", func() {
				So(s.Schedule("user", time.Millisecond, closeEv(model.ModalUser, 2)), ShouldBeFalse)
				c.Advance(time.Second)
				So(sink.got(), ShouldBeEmpty)
				So(s.Len(), ShouldEqual, 0)
			})
		})

		Convey("When the sink rejects an event", func() {
			sink.accept = false
			s.Schedule("results", time.Millisecond, closeEv(model.ModalResults, 1))

			Convey("Then the scheduler should carry on", func() {
				So(func() { c.Advance(time.Second) }, ShouldNotPanic)
				So(sink.got(), ShouldHaveLength, 1)
			})
		})
	})
}

func TestSchedulerRealClock(t *testing.T) {
	defer goleak.VerifyNone(t)

	fired := make(chan model.Event, 1)
	s := timer.NewScheduler(context.Background(), timer.RealClock{}, timer.SinkFunc(func(_ context.Context, ev model.Event) bool {
		fired <- ev
		return true
	}))

	s.Schedule("submission", 5*time.Millisecond, closeEv(model.ModalSubmission, 7))
	select {
	case ev := <-fired:
		if ev.Generation != 7 {
			t.Errorf("expected generation 7, got %d", ev.Generation)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timer did not fire")
	}

	s.Schedule("submission", time.Hour, closeEv(model.ModalSubmission, 8))
	s.Stop()
}
