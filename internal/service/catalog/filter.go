package catalog

import (
	"slices"

	"github.com/heartmarshall/mazag-backend/internal/domain"
)

// Filterable is a catalog record the filter engine can match.
type Filterable interface {
	SearchFields() []string
	CategoryValue() string
	// PriceValue reports false for records without a price.
	PriceValue() (float64, bool)
	RatingValue() float64
	LanguageValues() []string
	GenderValues() []string
	AgeGroupValues() []string
}

// Filter returns the items matching query and every active criterion, in
// their original order. Unset criteria are no-ops; items is never modified.
// Callers pass criteria.Search as query when the search lives in the criteria.
func Filter[T Filterable](items []T, query string, c domain.FilterCriteria) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if Matches(item, query, c) {
			out = append(out, item)
		}
	}
	return out
}

// Matches reports whether a single item passes every active predicate.
func Matches[T Filterable](item T, query string, c domain.FilterCriteria) bool {
	return matchText(item, query) &&
		matchCategory(item, c.Specializations) &&
		matchPrice(item, c.PriceRange) &&
		matchRating(item, c.MinRating) &&
		overlaps(item.LanguageValues(), c.Languages) &&
		overlaps(item.GenderValues(), c.Genders) &&
		overlaps(item.AgeGroupValues(), c.AgeGroups)
}

func matchText[T Filterable](item T, query string) bool {
	if domain.NormalizeText(query) == "" {
		return true
	}
	for _, field := range item.SearchFields() {
		if domain.ContainsFold(field, query) {
			return true
		}
	}
	return false
}

func matchCategory[T Filterable](item T, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	category := domain.NormalizeText(item.CategoryValue())
	return slices.ContainsFunc(selected, func(s string) bool {
		return domain.NormalizeText(s) == category
	})
}

func matchPrice[T Filterable](item T, r *domain.PriceRange) bool {
	if r == nil {
		return true
	}
	price, ok := item.PriceValue()
	if !ok {
		return true
	}
	return price >= r.Min && price <= r.Max
}

func matchRating[T Filterable](item T, minRating *float64) bool {
	if minRating == nil {
		return true
	}
	return item.RatingValue() >= *minRating
}

// overlaps is true when selected is empty or shares a member with values.
func overlaps(values, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, v := range values {
		nv := domain.NormalizeText(v)
		for _, s := range selected {
			if nv == domain.NormalizeText(s) {
				return true
			}
		}
	}
	return false
}
