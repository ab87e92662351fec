package scoring

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithCategoryTable sets the category table used for price-value derivation.
func WithCategoryTable(t *CategoryTable) Option {
	return func(e *Engine) {
		if t != nil {
			e.categories = t
		}
	}
}

// WithCategoryAverages builds the category table from a name -> average map.
func WithCategoryAverages(averages map[string]float64) Option {
	return func(e *Engine) {
		if len(averages) > 0 {
			e.categories = NewCategoryTable(averages)
		}
	}
}

// Engine binds the pure score functions to a category table.
type Engine struct {
	categories *CategoryTable
}

// NewEngine creates an engine over the default category table unless overridden.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{categories: NewCategoryTable(DefaultCategoryAverages())}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Categories returns the engine's category table.
func (e *Engine) Categories() *CategoryTable {
	return e.categories
}

// PriceValue derives the price-value score for a price in category. It
// reports false when the category has no known average or the price is
// negative; callers then keep the score they already have.
func (e *Engine) PriceValue(category string, price float64) (int, bool) {
	avg, ok := e.categories.Lookup(category)
	if !ok || price < 0 {
		return 0, false
	}
	return DerivePriceValueScore(price, avg), true
}

// Composite computes the composite score of three sub-scores.
func (e *Engine) Composite(taste, priceValue, portion int) float64 {
	return CompositeScore(taste, priceValue, portion)
}
