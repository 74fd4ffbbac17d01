package models

import "strings"

// Category is one of the five filterable attributes. The string value doubles
// as the query parameter name and the callback payload prefix.
type Category string

const (
	CategoryBudget     Category = "budget"
	CategoryType       Category = "type"
	CategoryCuisine    Category = "cuisine"
	CategoryAtmosphere Category = "atmosphere"
	CategoryReason     Category = "reason"
)

// Categories lists the filter keys in wizard order.
var Categories = [5]Category{
	CategoryBudget,
	CategoryType,
	CategoryCuisine,
	CategoryAtmosphere,
	CategoryReason,
}

var categoryColumns = map[Category]string{
	CategoryBudget:     "Бюджет",
	CategoryType:       "Тип заведения",
	CategoryCuisine:    "Кухня",
	CategoryAtmosphere: "атмосфера",
	CategoryReason:     "повод",
}

// Column returns the restaurants_v2 column this category filters on. The
// mapping is fixed; user input never reaches query text through it.
func (c Category) Column() string {
	return categoryColumns[c]
}

func (c Category) Known() bool {
	_, ok := categoryColumns[c]
	return ok
}

// FilterSet holds at most one value per category. Empty, whitespace-only and
// "nan" values count as absent and must never constrain a query.
type FilterSet map[Category]string

// Get returns the trimmed filter value and whether it is present.
func (f FilterSet) Get(c Category) (string, bool) {
	v, ok := f[c]
	if !ok || IsMissing(v) {
		return "", false
	}
	return strings.TrimSpace(v), true
}

// Present returns the present categories in wizard order.
func (f FilterSet) Present() []Category {
	var present []Category
	for _, c := range Categories {
		if _, ok := f.Get(c); ok {
			present = append(present, c)
		}
	}
	return present
}
