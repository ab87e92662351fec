package scoring_test

import (
	"math"
	"math/rand"
	"testing"

	scoring "github.com/okian/huntersfinds/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDerivePriceValueScore(t *testing.T) {
	Convey("Given a dish price and its category average", t, func() {
		Convey("When the price equals the average", func() {
			Convey("Then the score should be neutral for any positive price", func() {
				for _, p := range []float64{0.01, 1, 8.5, 14, 99.99, 12345.678} {
					So(scoring.DerivePriceValueScore(p, p), ShouldEqual, 50)
				}
			})
		})

		Convey("When the price is cheaper than average", func() {
			Convey("Then the score should rise above neutral", func() {
				So(scoring.DerivePriceValueScore(12.6, 14), ShouldEqual, 60)
				So(scoring.DerivePriceValueScore(11, 12), ShouldEqual, 58)
			})

			Convey("And half price should saturate at the maximum", func() {
				So(scoring.DerivePriceValueScore(7, 14), ShouldEqual, 100)
				So(scoring.DerivePriceValueScore(0.5, 14), ShouldEqual, 100)
			})
		})

		Convey("When the price is pricier than average", func() {
			Convey("Then the score should drop below neutral", func() {
				So(scoring.DerivePriceValueScore(9, 8.5), ShouldEqual, 44)
			})

			Convey("And a price 1.5x the average or more should clamp to the minimum", func() {
				So(scoring.DerivePriceValueScore(21, 14), ShouldEqual, 1)
				So(scoring.DerivePriceValueScore(1000, 14), ShouldEqual, 1)
			})
		})

		Convey("When random positive prices are scored", func() {
			rng := rand.New(rand.NewSource(7))

			Convey("Then every score should stay within [1,100]", func() {
				for i := 0; i < 5000; i++ {
					actual := rng.Float64()*200 + 0.001
					avg := rng.Float64()*50 + 0.001
					got := scoring.DerivePriceValueScore(actual, avg)
					So(got >= 1 && got <= 100, ShouldBeTrue)
				}
			})
		})
	})
}

func TestCompositeScore(t *testing.T) {
	Convey("Given three sub-scores", t, func() {
		Convey("When the scenario dish is scored", func() {
			Convey("Then taste 92, price-value 50, portion 90 should give 76.6", func() {
				So(scoring.CompositeScore(92, 50, 90), ShouldEqual, 76.6)
			})
		})

		Convey("When known values are scored", func() {
			Convey("Then the 0.33 weights should be applied per term", func() {
				So(scoring.CompositeScore(85, 90, 87), ShouldEqual, 86.5)
				So(scoring.CompositeScore(50, 50, 50), ShouldEqual, 49.5)
				So(scoring.CompositeScore(100, 100, 100), ShouldEqual, 99.0)
				So(scoring.CompositeScore(1, 1, 1), ShouldEqual, 1.0)
			})
		})

		Convey("When sweeping the sub-score range", func() {
			Convey("Then the result should match the per-term formula exactly", func() {
				for taste := 1; taste <= 100; taste += 3 {
					for pv := 1; pv <= 100; pv += 7 {
						for portion := 1; portion <= 100; portion += 5 {
							want := math.Round((float64(taste)*0.33+float64(pv)*0.33+float64(portion)*0.33)*10) / 10
							if got := scoring.CompositeScore(taste, pv, portion); got != want {
								So(got, ShouldEqual, want)
							}
						}
					}
				}
			})
		})
	})
}

func TestTierOf(t *testing.T) {
	Convey("Given composite scores at the tier boundaries", t, func() {
		cases := []struct {
			score float64
			want  string
		}{
			{100, "elite"}, {96, "elite"}, {95.9, "great"}, {89, "great"},
			{88.9, "good"}, {81, "good"}, {80.9, "fair"}, {72, "fair"},
			{71.9, "base"}, {1, "base"},
		}

		Convey("Then each score should map to its tier", func() {
			for _, c := range cases {
				So(scoring.TierOf(c.score).String(), ShouldEqual, c.want)
			}
		})
	})
}

func TestValidSubScore(t *testing.T) {
	Convey("Given sub-score bounds", t, func() {
		So(scoring.ValidSubScore(0), ShouldBeFalse)
		So(scoring.ValidSubScore(1), ShouldBeTrue)
		So(scoring.ValidSubScore(100), ShouldBeTrue)
		So(scoring.ValidSubScore(101), ShouldBeFalse)
	})
}
