package savedset_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/okian/huntersfinds/internal/domain/model"
	"github.com/okian/huntersfinds/internal/domain/savedset"
	. "github.com/smartystreets/goconvey/convey"
)

func ids(entries []model.SavedEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestMemorySet(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	Convey("Given an empty saved set", t, func() {
		s := savedset.New(savedset.WithClock(func() time.Time { return fixed }))

		Convey("Then nothing should be saved", func() {
			So(s.Size(), ShouldEqual, 0)
			So(s.IsSaved(ctx, "d1", model.KindDish), ShouldBeFalse)
			So(s.List(ctx), ShouldBeEmpty)
		})

		Convey("When an item is toggled", func() {
			saved := s.Toggle(ctx, "d1", model.KindDish, "carne asada tacos")

			Convey("Then it should be saved with its name and time", func() {
				So(saved, ShouldBeTrue)
				So(s.IsSaved(ctx, "d1", model.KindDish), ShouldBeTrue)
				So(s.Size(), ShouldEqual, 1)
				list := s.List(ctx)
				So(list, ShouldHaveLength, 1)
				So(list[0].Name, ShouldEqual, "carne asada tacos")
				So(list[0].Kind, ShouldEqual, model.KindDish)
				So(list[0].SavedAt.Equal(fixed), ShouldBeTrue)
			})

			Convey("And toggled again", func() {
				saved = s.Toggle(ctx, "d1", model.KindDish, "carne asada tacos")

				Convey("Then the set should be back to its prior state", func() {
					So(saved, ShouldBeFalse)
					So(s.IsSaved(ctx, "d1", model.KindDish), ShouldBeFalse)
					So(s.Size(), ShouldEqual, 0)
					So(s.List(ctx), ShouldBeEmpty)
				})
			})
		})

		Convey("When a dish and a restaurant share an id", func() {
			s.Toggle(ctx, "1", model.KindDish, "tacos")
			s.Toggle(ctx, "1", model.KindRestaurant, "tacos el gordo")

			Convey("Then both should be saved independently", func() {
				So(s.Size(), ShouldEqual, 2)
				s.Toggle(ctx, "1", model.KindDish, "tacos")
				So(s.IsSaved(ctx, "1", model.KindDish), ShouldBeFalse)
				So(s.IsSaved(ctx, "1", model.KindRestaurant), ShouldBeTrue)
			})
		})

		Convey("When several items are saved and a middle one removed", func() {
			for _, id := range []string{"a", "b", "c", "d"} {
				s.Toggle(ctx, id, model.KindDish, id)
			}
			s.Toggle(ctx, "b", model.KindDish, "b")

			Convey("Then the rest should keep save order", func() {
				So(ids(s.List(ctx)), ShouldResemble, []string{"a", "c", "d"})
			})

			Convey("And the tail and head are removed", func() {
				s.Toggle(ctx, "d", model.KindDish, "d")
				s.Toggle(ctx, "a", model.KindDish, "a")
				s.Toggle(ctx, "e", model.KindDish, "e")

				Convey("Then the list should stay linked", func() {
					So(ids(s.List(ctx)), ShouldResemble, []string{"c", "e"})
					So(s.Size(), ShouldEqual, 2)
				})
			})
		})
	})

	Convey("Given a saved set holding many items", t, func() {
		s := savedset.New()
		for i := 0; i < 100; i++ {
			id := fmt.Sprintf("d%d", i)
			s.Toggle(ctx, id, model.KindDish, id)
		}

		Convey("When an item is saved and unsaved again", func() {
			So(s.Toggle(ctx, "extra", model.KindDish, "extra"), ShouldBeTrue)
			So(s.Toggle(ctx, "extra", model.KindDish, "extra"), ShouldBeFalse)

			Convey("Then every earlier item should still be saved", func() {
				So(s.Size(), ShouldEqual, 100)
				So(s.IsSaved(ctx, "d0", model.KindDish), ShouldBeTrue)
				So(s.IsSaved(ctx, "d99", model.KindDish), ShouldBeTrue)
				So(s.IsSaved(ctx, "extra", model.KindDish), ShouldBeFalse)
				So(s.List(ctx)[0].ID, ShouldEqual, "d0")
			})
		})
	})
}

func TestMemorySetConcurrency(t *testing.T) {
	Convey("Given a saved set with concurrent access", t, func() {
		s := savedset.New()
		const numGoroutines = 10
		const itemsPerGoroutine = 50

		Convey("When goroutines toggle distinct items twice", func() {
			var wg sync.WaitGroup
			for i := 0; i < numGoroutines; i++ {
				wg.Add(1)
				go func(g int) {
					defer wg.Done()
					for j := 0; j < itemsPerGoroutine; j++ {
						id := fmt.Sprintf("item-%d-%d", g, j)
						s.Toggle(context.Background(), id, model.KindDish, id)
						s.Toggle(context.Background(), id, model.KindDish, id)
					}
				}(i)
			}
			wg.Wait()

			Convey("Then the set should be empty", func() {
				So(s.Size(), ShouldEqual, 0)
				So(s.List(context.Background()), ShouldBeEmpty)
			})
		})
	})
}
