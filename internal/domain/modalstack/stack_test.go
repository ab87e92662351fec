package modalstack_test

import (
	"errors"
	"testing"

	"github.com/okian/huntersfinds/internal/domain/modalstack"
	. "github.com/smartystreets/goconvey/convey"
)

func TestStack(t *testing.T) {
	Convey("Given an empty stack", t, func() {
		s := modalstack.New[string]()

		Convey("Then it should be inactive", func() {
			So(s.IsActive(), ShouldBeFalse)
			So(s.CanGoBack(), ShouldBeFalse)
			So(s.Len(), ShouldEqual, 0)
			So(s.Limit(), ShouldEqual, modalstack.DefaultLimit)
			_, ok := s.Top()
			So(ok, ShouldBeFalse)
		})

		Convey("When popping", func() {
			s.Pop()

			Convey("Then nothing should change", func() {
				So(s.Len(), ShouldEqual, 0)
			})
		})

		Convey("When two frames are pushed", func() {
			So(s.Push("A"), ShouldBeNil)
			So(s.Push("B"), ShouldBeNil)

			Convey("Then the last one should be visible", func() {
				top, ok := s.Top()
				So(ok, ShouldBeTrue)
				So(top, ShouldEqual, "B")
				So(s.CanGoBack(), ShouldBeTrue)
			})

			Convey("And popped once", func() {
				s.Pop()

				Convey("Then the first should remain", func() {
					So(s.Frames(), ShouldResemble, []string{"A"})
					So(s.CanGoBack(), ShouldBeFalse)
					So(s.IsActive(), ShouldBeTrue)
				})

				Convey("And popped again", func() {
					s.Pop()

					Convey("Then the stack should be empty", func() {
						So(s.Len(), ShouldEqual, 0)
						So(s.IsActive(), ShouldBeFalse)
					})
				})
			})
		})

		Convey("When three frames are pushed then popped twice", func() {
			So(s.Push("A"), ShouldBeNil)
			So(s.Push("B"), ShouldBeNil)
			So(s.Push("C"), ShouldBeNil)
			s.Pop()
			s.Pop()

			Convey("Then the first frame should stay on top", func() {
				So(s.Len(), ShouldEqual, 1)
				top, ok := s.Top()
				So(ok, ShouldBeTrue)
				So(top, ShouldEqual, "A")
			})

			Convey("And popped a third time", func() {
				s.Pop()

				Convey("Then the stack should collapse", func() {
					So(s.Len(), ShouldEqual, 0)
					So(s.IsActive(), ShouldBeFalse)
				})
			})
		})

		Convey("When cleared", func() {
			So(s.Push("A"), ShouldBeNil)
			So(s.Push("B"), ShouldBeNil)
			s.Clear()

			Convey("Then it should be empty", func() {
				So(s.Len(), ShouldEqual, 0)
			})
		})

		Convey("When frames are read", func() {
			So(s.Push("A"), ShouldBeNil)
			frames := s.Frames()
			frames[0] = "mutated"

			Convey("Then the copy should not alias the stack", func() {
				top, _ := s.Top()
				So(top, ShouldEqual, "A")
			})
		})
	})

	Convey("Given a stack with a limit of two", t, func() {
		s := modalstack.New[int](modalstack.WithLimit(2))
		So(s.Push(1), ShouldBeNil)
		So(s.Push(2), ShouldBeNil)

		Convey("When a third frame is pushed", func() {
			err := s.Push(3)

			Convey("Then it should be rejected without change", func() {
				So(errors.Is(err, modalstack.ErrOverflow), ShouldBeTrue)
				So(s.Frames(), ShouldResemble, []int{1, 2})
			})
		})
	})

	Convey("Given an invalid limit option", t, func() {
		s := modalstack.New[int](modalstack.WithLimit(0))

		Convey("Then the default limit should apply", func() {
			So(s.Limit(), ShouldEqual, modalstack.DefaultLimit)
		})
	})
}
