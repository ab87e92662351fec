package simulate

import (
	"math"
	"math/rand/v2"
	"sort"
	"strconv"

	"github.com/google/uuid"
)

// Price spread around a category average, as a fraction of it.
const (
	priceSpreadMin = 0.4
	priceSpreadMax = 1.8
)

var comments = []string{"", "would order again", "a bit salty", "huge portion", "worth the wait"} //nolint:gochecknoglobals // fixed comment pool

type draft struct {
	restaurant string
	dish       string
	category   string
	price      float64
	taste      int
	portion    int
	comment    string
}

type generator struct {
	rng         *rand.Rand
	categories  []string
	averages    map[string]float64
	restaurants []string
}

func newGenerator(seed uint64, averages map[string]float64, restaurants []string) *generator {
	names := make([]string, 0, len(averages))
	for name := range averages {
		names = append(names, name)
	}
	sort.Strings(names)
	return &generator{
		rng:         rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		categories:  names,
		averages:    averages,
		restaurants: restaurants,
	}
}

func (g *generator) next() draft {
	category := g.categories[g.rng.IntN(len(g.categories))]
	spread := priceSpreadMin + g.rng.Float64()*(priceSpreadMax-priceSpreadMin)
	price := math.Round(g.averages[category]*spread*100) / 100

	restaurant := "pop-up kitchen"
	if len(g.restaurants) > 0 {
		restaurant = g.restaurants[g.rng.IntN(len(g.restaurants))]
	}

	return draft{
		restaurant: restaurant,
		dish:       category + " " + uuid.NewString()[:8],
		category:   category,
		price:      price,
		taste:      1 + g.rng.IntN(100),
		portion:    1 + g.rng.IntN(100),
		comment:    comments[g.rng.IntN(len(comments))],
	}
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', 2, 64)
}
