package domain

import (
	"fmt"
	"slices"
	"time"
)

// Scale bounds shared by severityLevel and sleepQuality.
const (
	ScaleMin     = 1
	ScaleMax     = 10
	ScaleNeutral = 5
)

// OnboardingResponse is the user's questionnaire answers.
// Severity is self-rated wellbeing: 1 is the worst, 10 the best.
type OnboardingResponse struct {
	PrimaryConcern     []Concern          `json:"primaryConcern"`
	SeverityLevel      int                `json:"severityLevel"`
	TherapyExperience  TherapyExperience  `json:"therapyExperience"`
	TherapyApproach    []Approach         `json:"therapyApproach"`
	MoodPatterns       MoodPattern        `json:"moodPatterns"`
	SleepQuality       int                `json:"sleepQuality"`
	SupportSystem      SupportSystem      `json:"supportSystem"`
	WellnessGoals      []WellnessGoal     `json:"wellnessGoals"`
	PreferredExercises []ExerciseCategory `json:"preferredExercises"`
	CommunicationStyle CommunicationStyle `json:"communicationStyle"`
	CompletedAt        time.Time          `json:"completedAt,omitzero"`
}

// NewOnboardingResponse returns the questionnaire's initial answers.
func NewOnboardingResponse() OnboardingResponse {
	return OnboardingResponse{
		PrimaryConcern:     []Concern{},
		SeverityLevel:      ScaleNeutral,
		TherapyApproach:    []Approach{},
		SleepQuality:       ScaleNeutral,
		WellnessGoals:      []WellnessGoal{},
		PreferredExercises: []ExerciseCategory{},
	}
}

// Normalized returns a copy with every optional field defaulted: nil sets
// become empty, zero scales become ScaleNeutral, and duplicate set members
// are collapsed keeping the first occurrence.
func (r OnboardingResponse) Normalized() OnboardingResponse {
	out := r
	out.PrimaryConcern = dedupe(r.PrimaryConcern)
	out.TherapyApproach = dedupe(r.TherapyApproach)
	out.WellnessGoals = dedupe(r.WellnessGoals)
	out.PreferredExercises = dedupe(r.PreferredExercises)
	if out.SeverityLevel == 0 {
		out.SeverityLevel = ScaleNeutral
	}
	if out.SleepQuality == 0 {
		out.SleepQuality = ScaleNeutral
	}
	return out
}

// HasConcern reports whether c was picked as a primary concern.
func (r OnboardingResponse) HasConcern(c Concern) bool {
	return slices.Contains(r.PrimaryConcern, c)
}

// PrefersExercise reports whether c was picked as a preferred exercise kind.
func (r OnboardingResponse) PrefersExercise(c ExerciseCategory) bool {
	return slices.Contains(r.PreferredExercises, c)
}

// UsesApproach reports whether a was picked as an acceptable therapy approach.
func (r OnboardingResponse) UsesApproach(a Approach) bool {
	return slices.Contains(r.TherapyApproach, a)
}

// Validate checks the answers as captured by the questionnaire.
// Every failing field is reported.
func (r OnboardingResponse) Validate() error {
	var errs []FieldError

	if r.SeverityLevel < ScaleMin || r.SeverityLevel > ScaleMax {
		errs = append(errs, FieldError{Field: "severityLevel", Message: fmt.Sprintf("must be between %d and %d", ScaleMin, ScaleMax)})
	}
	if r.SleepQuality != 0 && (r.SleepQuality < ScaleMin || r.SleepQuality > ScaleMax) {
		errs = append(errs, FieldError{Field: "sleepQuality", Message: fmt.Sprintf("must be between %d and %d", ScaleMin, ScaleMax)})
	}
	if len(r.WellnessGoals) == 0 {
		errs = append(errs, FieldError{Field: "wellnessGoals", Message: "at least one required"})
	}

	errs = appendInvalid(errs, "primaryConcern", r.PrimaryConcern)
	errs = appendInvalid(errs, "therapyApproach", r.TherapyApproach)
	errs = appendInvalid(errs, "wellnessGoals", r.WellnessGoals)
	errs = appendInvalid(errs, "preferredExercises", r.PreferredExercises)

	if r.TherapyExperience != "" && !r.TherapyExperience.IsValid() {
		errs = append(errs, FieldError{Field: "therapyExperience", Message: "unknown value"})
	}
	if r.MoodPatterns != "" && !r.MoodPatterns.IsValid() {
		errs = append(errs, FieldError{Field: "moodPatterns", Message: "unknown value"})
	}
	if r.SupportSystem != "" && !r.SupportSystem.IsValid() {
		errs = append(errs, FieldError{Field: "supportSystem", Message: "unknown value"})
	}
	if r.CommunicationStyle != "" && !r.CommunicationStyle.IsValid() {
		errs = append(errs, FieldError{Field: "communicationStyle", Message: "unknown value"})
	}

	return NewValidationErrors(errs)
}

type validatable interface {
	comparable
	IsValid() bool
	String() string
}

func appendInvalid[T validatable](errs []FieldError, field string, values []T) []FieldError {
	for _, v := range values {
		if !v.IsValid() {
			errs = append(errs, FieldError{Field: field, Message: fmt.Sprintf("unknown value %q", v.String())})
		}
	}
	return errs
}

func dedupe[T comparable](values []T) []T {
	out := make([]T, 0, len(values))
	seen := make(map[T]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
