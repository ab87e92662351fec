package scoring_test

import (
	"testing"

	scoring "github.com/okian/huntersfinds/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCategoryTable(t *testing.T) {
	Convey("Given the default category table", t, func() {
		table := scoring.NewCategoryTable(scoring.DefaultCategoryAverages())

		Convey("When looking up a category in another case", func() {
			avg, ok := table.Lookup("Margherita PIZZA")

			Convey("Then it should match case-insensitively", func() {
				So(ok, ShouldBeTrue)
				So(avg, ShouldEqual, 14.00)
			})
		})

		Convey("When looking up a partial or padded name", func() {
			_, partial := table.Lookup("margherita")
			_, padded := table.Lookup(" cheeseburger")

			Convey("Then exact matching should reject both", func() {
				So(partial, ShouldBeFalse)
				So(padded, ShouldBeFalse)
			})
		})

		Convey("When asking for suggestions", func() {
			Convey("Then substring matches should be listed alphabetically", func() {
				So(table.Suggest("BUR"), ShouldResemble, []string{"california burrito", "cheeseburger"})
				So(table.Suggest("taco"), ShouldResemble, []string{"carne asada tacos"})
				So(table.Suggest(""), ShouldResemble, table.Categories())
				So(table.Suggest("sushi"), ShouldBeEmpty)
			})
		})

		Convey("When listing categories", func() {
			Convey("Then all four should be present in order", func() {
				So(table.Categories(), ShouldResemble, []string{
					"california burrito", "carne asada tacos", "cheeseburger", "margherita pizza",
				})
			})
		})

		Convey("When canonicalizing a name", func() {
			name, ok := table.Canonical("CheeseBurger")

			Convey("Then the stored lower-case form should be returned", func() {
				So(ok, ShouldBeTrue)
				So(name, ShouldEqual, "cheeseburger")
			})
		})
	})

	Convey("Given a table built from configuration", t, func() {
		table := scoring.NewCategoryTable(map[string]float64{"Ramen": 16, "water": 0})

		Convey("Then names should be lower-cased and free entries dropped", func() {
			_, ok := table.Lookup("ramen")
			So(ok, ShouldBeTrue)
			_, ok = table.Lookup("water")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestEngine(t *testing.T) {
	Convey("Given a default engine", t, func() {
		engine := scoring.NewEngine()

		Convey("When the category is known", func() {
			score, ok := engine.PriceValue("margherita pizza", 14.00)

			Convey("Then price-value should be derived", func() {
				So(ok, ShouldBeTrue)
				So(score, ShouldEqual, 50)
			})
		})

		Convey("When the category is unknown", func() {
			_, ok := engine.PriceValue("ramen", 14.00)

			Convey("Then derivation should be skipped", func() {
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When the price is negative", func() {
			_, ok := engine.PriceValue("cheeseburger", -1)

			Convey("Then derivation should be skipped", func() {
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When composite is requested", func() {
			So(engine.Composite(92, 50, 90), ShouldEqual, 76.6)
		})
	})

	Convey("Given an engine with configured averages", t, func() {
		engine := scoring.NewEngine(scoring.WithCategoryAverages(map[string]float64{"ramen": 16}))

		Convey("Then only the configured table should be used", func() {
			score, ok := engine.PriceValue("RAMEN", 16)
			So(ok, ShouldBeTrue)
			So(score, ShouldEqual, 50)
			_, ok = engine.PriceValue("cheeseburger", 12)
			So(ok, ShouldBeFalse)
		})
	})
}
