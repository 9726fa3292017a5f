package domain

import (
	"slices"
	"strconv"
	"strings"
)

// FilterField names a multi-select criterion.
type FilterField string

const (
	FilterFieldSpecialization FilterField = "specialization"
	FilterFieldLanguage       FilterField = "language"
	FilterFieldGender         FilterField = "gender"
	FilterFieldAgeGroup       FilterField = "ageGroup"
)

func (f FilterField) String() string { return string(f) }

func (f FilterField) IsValid() bool {
	switch f {
	case FilterFieldSpecialization, FilterFieldLanguage, FilterFieldGender, FilterFieldAgeGroup:
		return true
	}
	return false
}

// PriceRange is an inclusive price bound. Min greater than Max matches nothing.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterCriteria is the user-adjustable filter state over a catalog.
// The zero value is the empty state. Values are never mutated in place:
// every reducer method returns a new FilterCriteria.
type FilterCriteria struct {
	Search          string      `json:"search,omitempty"`
	Specializations []string    `json:"specializations,omitempty"`
	PriceRange      *PriceRange `json:"priceRange,omitempty"`
	MinRating       *float64    `json:"minRating,omitempty"`
	Languages       []string    `json:"languages,omitempty"`
	Genders         []string    `json:"genders,omitempty"`
	AgeGroups       []string    `json:"ageGroups,omitempty"`
}

// IsEmpty reports whether no criterion is active.
func (c FilterCriteria) IsEmpty() bool {
	return strings.TrimSpace(c.Search) == "" &&
		len(c.Specializations) == 0 &&
		c.PriceRange == nil &&
		c.MinRating == nil &&
		len(c.Languages) == 0 &&
		len(c.Genders) == 0 &&
		len(c.AgeGroups) == 0
}

// Values returns the selection for a multi-select field.
func (c FilterCriteria) Values(f FilterField) []string {
	switch f {
	case FilterFieldSpecialization:
		return c.Specializations
	case FilterFieldLanguage:
		return c.Languages
	case FilterFieldGender:
		return c.Genders
	case FilterFieldAgeGroup:
		return c.AgeGroups
	}
	return nil
}

// AddFilterValue selects v for field f. Already-selected values are kept once.
func (c FilterCriteria) AddFilterValue(f FilterField, v string) FilterCriteria {
	cur := c.Values(f)
	if v == "" || slices.Contains(cur, v) {
		return c
	}
	return c.withValues(f, append(slices.Clone(cur), v))
}

// RemoveFilterValue deselects v for field f.
func (c FilterCriteria) RemoveFilterValue(f FilterField, v string) FilterCriteria {
	cur := c.Values(f)
	if !slices.Contains(cur, v) {
		return c
	}
	next := make([]string, 0, len(cur)-1)
	for _, s := range cur {
		if s != v {
			next = append(next, s)
		}
	}
	return c.withValues(f, next)
}

// ToggleFilterValue removes v when selected, adds it otherwise.
func (c FilterCriteria) ToggleFilterValue(f FilterField, v string) FilterCriteria {
	if slices.Contains(c.Values(f), v) {
		return c.RemoveFilterValue(f, v)
	}
	return c.AddFilterValue(f, v)
}

// SetPriceRange sets the range. A nil range clears it.
func (c FilterCriteria) SetPriceRange(r *PriceRange) FilterCriteria {
	if r != nil {
		cp := *r
		r = &cp
	}
	c.PriceRange = r
	return c
}

// TogglePriceRange clears the range when r is already selected, sets it otherwise.
func (c FilterCriteria) TogglePriceRange(r PriceRange) FilterCriteria {
	if c.PriceRange != nil && *c.PriceRange == r {
		return c.SetPriceRange(nil)
	}
	return c.SetPriceRange(&r)
}

// SetMinRating sets the rating threshold. A nil threshold clears it.
func (c FilterCriteria) SetMinRating(v *float64) FilterCriteria {
	if v != nil {
		cp := *v
		v = &cp
	}
	c.MinRating = v
	return c
}

// ToggleMinRating clears the threshold when v is already selected, sets it otherwise.
func (c FilterCriteria) ToggleMinRating(v float64) FilterCriteria {
	if c.MinRating != nil && *c.MinRating == v {
		return c.SetMinRating(nil)
	}
	return c.SetMinRating(&v)
}

// SetSearch replaces the free-text search.
func (c FilterCriteria) SetSearch(q string) FilterCriteria {
	c.Search = q
	return c
}

// ClearAll resets every criterion and the search text.
func (c FilterCriteria) ClearAll() FilterCriteria {
	return FilterCriteria{}
}

// Key returns a canonical representation usable as a cache key.
// Criteria that differ only in selection order share a key. Text values are
// quoted, so separators inside a value cannot collide with the key layout.
func (c FilterCriteria) Key() string {
	var b strings.Builder
	b.WriteString("q=")
	b.WriteString(strconv.Quote(NormalizeText(c.Search)))
	writeSet(&b, "s", c.Specializations)
	writeSet(&b, "l", c.Languages)
	writeSet(&b, "g", c.Genders)
	writeSet(&b, "a", c.AgeGroups)
	if c.PriceRange != nil {
		b.WriteString("|p=")
		b.WriteString(strconv.FormatFloat(c.PriceRange.Min, 'f', -1, 64))
		b.WriteByte('-')
		b.WriteString(strconv.FormatFloat(c.PriceRange.Max, 'f', -1, 64))
	}
	if c.MinRating != nil {
		b.WriteString("|r=")
		b.WriteString(strconv.FormatFloat(*c.MinRating, 'f', -1, 64))
	}
	return b.String()
}

func (c FilterCriteria) withValues(f FilterField, values []string) FilterCriteria {
	switch f {
	case FilterFieldSpecialization:
		c.Specializations = values
	case FilterFieldLanguage:
		c.Languages = values
	case FilterFieldGender:
		c.Genders = values
	case FilterFieldAgeGroup:
		c.AgeGroups = values
	}
	return c
}

func writeSet(b *strings.Builder, tag string, values []string) {
	if len(values) == 0 {
		return
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	b.WriteByte('|')
	b.WriteString(tag)
	b.WriteByte('=')
	for i, v := range sorted {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Quote(v))
	}
}

// FilterAction is a single reducer step over FilterCriteria.
type FilterAction interface {
	Apply(FilterCriteria) FilterCriteria
}

// Reduce applies actions in order starting from c.
func (c FilterCriteria) Reduce(actions ...FilterAction) FilterCriteria {
	for _, a := range actions {
		c = a.Apply(c)
	}
	return c
}

// AddValue selects a value for a multi-select field.
type AddValue struct {
	Field FilterField
	Value string
}

func (a AddValue) Apply(c FilterCriteria) FilterCriteria { return c.AddFilterValue(a.Field, a.Value) }

// RemoveValue deselects a value for a multi-select field.
type RemoveValue struct {
	Field FilterField
	Value string
}

func (a RemoveValue) Apply(c FilterCriteria) FilterCriteria {
	return c.RemoveFilterValue(a.Field, a.Value)
}

// SetRange sets or, with a nil Range, clears the price range.
type SetRange struct {
	Range *PriceRange
}

func (a SetRange) Apply(c FilterCriteria) FilterCriteria { return c.SetPriceRange(a.Range) }

// SetRating sets or, with a nil Min, clears the rating threshold.
type SetRating struct {
	Min *float64
}

func (a SetRating) Apply(c FilterCriteria) FilterCriteria { return c.SetMinRating(a.Min) }

// Search sets the free-text search.
type Search struct {
	Query string
}

func (a Search) Apply(c FilterCriteria) FilterCriteria { return c.SetSearch(a.Query) }

// ClearAll resets the criteria.
type ClearAll struct{}

func (ClearAll) Apply(c FilterCriteria) FilterCriteria { return c.ClearAll() }
