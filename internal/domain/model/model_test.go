package model_test

import (
	"testing"

	"github.com/okian/huntersfinds/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestItemViews(t *testing.T) {
	Convey("Given catalog entities", t, func() {
		Convey("When a dish is viewed as a rated item", func() {
			d := model.Dish{ID: "d7", Name: "margherita pizza", Restaurant: "pizza haven", Cuisine: "italian", Score: 95, Price: 14, NumRatings: 56}
			item := d.Item()

			Convey("Then it should keep its identity and score", func() {
				So(item.Kind, ShouldEqual, model.KindDish)
				So(item.ID, ShouldEqual, "d7")
				So(item.Score, ShouldEqual, 95)
				So(item.Restaurant, ShouldEqual, "pizza haven")
				So(item.Price, ShouldEqual, 14)
			})
		})

		Convey("When a restaurant is viewed as a rated item", func() {
			r := model.Restaurant{ID: "3", Name: "pizza haven", Cuisine: "italian", Score: 91,
				RecentScores: []model.ScoreSample{{User: "kate"}, {User: "leo"}}}
			item := r.Item()

			Convey("Then it should be ranked by its average score", func() {
				So(item.Kind, ShouldEqual, model.KindRestaurant)
				So(item.Score, ShouldEqual, 91)
				So(item.NumRatings, ShouldEqual, 2)
			})
		})

		Convey("When a submitted rating is viewed as a rated item", func() {
			r := model.SubmittedRating{ID: "s1", DishName: "ramen", Restaurant: "noodle bar", Category: "ramen", Price: 15, Score: 80.3}
			item := r.Item()

			Convey("Then it should be a single-rating dish", func() {
				So(item.Kind, ShouldEqual, model.KindDish)
				So(item.Name, ShouldEqual, "ramen")
				So(item.Score, ShouldEqual, 80.3)
				So(item.NumRatings, ShouldEqual, 1)
			})
		})
	})
}
