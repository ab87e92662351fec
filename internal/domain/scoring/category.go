package scoring

import (
	"sort"
	"strings"
)

// CategoryTable maps dish categories to their average price.
// Lookups are case-insensitive exact matches.
type CategoryTable struct {
	averages map[string]float64
	names    []string
}

// DefaultCategoryAverages is the built-in category table.
func DefaultCategoryAverages() map[string]float64 {
	return map[string]float64{
		"carne asada tacos":  8.50,
		"cheeseburger":       12.00,
		"margherita pizza":   14.00,
		"california burrito": 11.00,
	}
}

// NewCategoryTable copies averages into a table. Names are stored lower-cased;
// entries with a non-positive average are dropped.
func NewCategoryTable(averages map[string]float64) *CategoryTable {
	t := &CategoryTable{averages: make(map[string]float64, len(averages))}
	for name, avg := range averages {
		if avg <= 0 {
			continue
		}
		key := strings.ToLower(name)
		if _, dup := t.averages[key]; !dup {
			t.names = append(t.names, key)
		}
		t.averages[key] = avg
	}
	sort.Strings(t.names)
	return t
}

// Lookup returns the average price of category.
func (t *CategoryTable) Lookup(category string) (float64, bool) {
	if t == nil {
		return 0, false
	}
	avg, ok := t.averages[strings.ToLower(category)]
	return avg, ok
}

// Canonical returns the stored name of category, if known.
func (t *CategoryTable) Canonical(category string) (string, bool) {
	key := strings.ToLower(category)
	if _, ok := t.Lookup(key); !ok {
		return "", false
	}
	return key, true
}

// Suggest lists categories containing input, case-insensitively, sorted.
// Empty input matches every category.
func (t *CategoryTable) Suggest(input string) []string {
	if t == nil {
		return nil
	}
	needle := strings.ToLower(input)
	var out []string
	for _, name := range t.names {
		if strings.Contains(name, needle) {
			out = append(out, name)
		}
	}
	return out
}

// Categories lists every known category, sorted.
func (t *CategoryTable) Categories() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.names...)
}
