package catalog

import (
	"slices"

	"github.com/heartmarshall/mazag-backend/internal/domain"
)

// FilterOptions lists the distinct values present in the catalog, sorted.
type FilterOptions struct {
	Specializations    []string `json:"specializations"`
	Languages          []string `json:"languages"`
	Genders            []string `json:"genders"`
	AgeGroups          []string `json:"ageGroups"`
	MinPrice           float64  `json:"minPrice"`
	MaxPrice           float64  `json:"maxPrice"`
	ExerciseCategories []string `json:"exerciseCategories"`
}

func buildOptions(cat domain.Catalog) FilterOptions {
	specs := map[string]struct{}{}
	langs := map[string]struct{}{}
	genders := map[string]struct{}{}
	ages := map[string]struct{}{}
	categories := map[string]struct{}{}

	var opts FilterOptions
	for i, t := range cat.Therapists {
		addNonEmpty(specs, t.Specialization)
		for _, l := range t.Languages {
			addNonEmpty(langs, l)
		}
		for _, g := range t.GenderValues() {
			addNonEmpty(genders, g)
		}
		for _, a := range t.AgeGroups {
			addNonEmpty(ages, a)
		}
		if i == 0 || t.Price < opts.MinPrice {
			opts.MinPrice = t.Price
		}
		if i == 0 || t.Price > opts.MaxPrice {
			opts.MaxPrice = t.Price
		}
	}
	for _, e := range cat.Exercises {
		addNonEmpty(categories, string(e.Category))
	}

	opts.Specializations = sortedKeys(specs)
	opts.Languages = sortedKeys(langs)
	opts.Genders = sortedKeys(genders)
	opts.AgeGroups = sortedKeys(ages)
	opts.ExerciseCategories = sortedKeys(categories)
	return opts
}

func (o FilterOptions) clone() FilterOptions {
	o.Specializations = slices.Clone(o.Specializations)
	o.Languages = slices.Clone(o.Languages)
	o.Genders = slices.Clone(o.Genders)
	o.AgeGroups = slices.Clone(o.AgeGroups)
	o.ExerciseCategories = slices.Clone(o.ExerciseCategories)
	return o
}

func addNonEmpty(set map[string]struct{}, v string) {
	if v != "" {
		set[v] = struct{}{}
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
