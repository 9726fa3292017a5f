package domain

import (
	"math"
	"time"
)

// Therapist is a read-only catalog record.
type Therapist struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	Title             string      `json:"title"`
	Specialization    string      `json:"specialization"`
	Price             float64     `json:"price"`
	Rating            *float64    `json:"rating,omitempty"`
	ReviewCount       *int        `json:"reviewCount,omitempty"`
	Bio               string      `json:"bio"`
	Languages         []string    `json:"languages"`
	Gender            Gender      `json:"gender"`
	AgeGroups         []string    `json:"ageGroups"`
	YearsOfExperience int         `json:"yearsOfExperience"`
	Qualifications    []string    `json:"qualifications"`
	Approach          string      `json:"approach"`
	Availability      []time.Time `json:"availability"`
	Avatar            string      `json:"avatar"`
}

// RatingOrZero returns the rating, treating an unrated therapist as 0.
func (t Therapist) RatingOrZero() float64 {
	if t.Rating == nil {
		return 0
	}
	return *t.Rating
}

// IsAvailableAt reports whether slot is one of the therapist's listed slots.
func (t Therapist) IsAvailableAt(slot time.Time) bool {
	for _, s := range t.Availability {
		if s.Equal(slot) {
			return true
		}
	}
	return false
}

// Exercise is a read-only catalog record.
type Exercise struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Category        ExerciseCategory `json:"category"`
	DurationMinutes int              `json:"durationMinutes"`
	Description     string           `json:"description"`
	Difficulty      Difficulty       `json:"difficulty"`
	Benefits        []string         `json:"benefits"`
}

// ClampRating bounds a rating to [0,5] and rounds it to one decimal.
func ClampRating(v float64) float64 {
	v = math.Max(0, math.Min(5, v))
	return math.Round(v*10) / 10
}

// Filter attributes. The catalog filter reads records only through these.

func (t Therapist) SearchFields() []string {
	return []string{t.Name, t.Title, t.Specialization}
}

func (t Therapist) CategoryValue() string { return t.Specialization }

func (t Therapist) PriceValue() (float64, bool) { return t.Price, true }

func (t Therapist) RatingValue() float64 { return t.RatingOrZero() }

func (t Therapist) LanguageValues() []string { return t.Languages }

func (t Therapist) GenderValues() []string {
	if t.Gender == "" {
		return nil
	}
	return []string{string(t.Gender)}
}

func (t Therapist) AgeGroupValues() []string { return t.AgeGroups }

func (e Exercise) SearchFields() []string {
	return []string{e.Title, e.Description, string(e.Category)}
}

func (e Exercise) CategoryValue() string { return string(e.Category) }

// Exercises have no price dimension.
func (e Exercise) PriceValue() (float64, bool) { return 0, false }

// Exercises carry no rating.
func (e Exercise) RatingValue() float64 { return 0 }

func (e Exercise) LanguageValues() []string { return nil }

func (e Exercise) GenderValues() []string { return nil }

func (e Exercise) AgeGroupValues() []string { return nil }

// Catalog is a full snapshot of the static content collections.
type Catalog struct {
	Therapists []Therapist `json:"therapists"`
	Exercises  []Exercise  `json:"exercises"`
}
