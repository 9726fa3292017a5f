package domain

import "testing"

func TestConcern_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		concern Concern
		want    bool
	}{
		{ConcernAnxiety, true},
		{ConcernDepression, true},
		{ConcernStress, true},
		{ConcernSleep, true},
		{ConcernWellness, true},
		{ConcernRelationships, true},
		{Concern("ANXIETY"), false},
		{Concern(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.concern), func(t *testing.T) {
			t.Parallel()
			if got := tt.concern.IsValid(); got != tt.want {
				t.Errorf("Concern(%q).IsValid() = %v, want %v", tt.concern, got, tt.want)
			}
		})
	}
}

func TestSupportSystem_IsValid(t *testing.T) {
	t.Parallel()

	for _, s := range []SupportSystem{SupportSystemStrong, SupportSystemModerate, SupportSystemLimited, SupportSystemPreferNot} {
		if !s.IsValid() {
			t.Errorf("SupportSystem(%q).IsValid() = false", s)
		}
	}
	if SupportSystem("prefer_not").IsValid() {
		t.Error("prefer_not should be invalid")
	}
}

func TestCommunicationStyle_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		style CommunicationStyle
		want  bool
	}{
		{CommunicationStyleDirect, true},
		{CommunicationStyleEmpathetic, true},
		{CommunicationStyleAnalytical, true},
		{CommunicationStyleCasual, true},
		{CommunicationStyle("formal"), false},
		{CommunicationStyle(""), false},
	}
	for _, tt := range tests {
		if got := tt.style.IsValid(); got != tt.want {
			t.Errorf("CommunicationStyle(%q).IsValid() = %v, want %v", tt.style, got, tt.want)
		}
	}
}

func TestExerciseCategory_IsValid(t *testing.T) {
	t.Parallel()

	valid := []ExerciseCategory{
		ExerciseCategoryBreathing, ExerciseCategoryMeditation, ExerciseCategoryJournaling,
		ExerciseCategoryRelaxation, ExerciseCategoryMovement, ExerciseCategoryVisualization,
	}
	for _, c := range valid {
		if !c.IsValid() {
			t.Errorf("ExerciseCategory(%q).IsValid() = false", c)
		}
	}
	if ExerciseCategory("yoga").IsValid() {
		t.Error("yoga should be invalid")
	}
}

func TestMood_IsValid(t *testing.T) {
	t.Parallel()

	for _, m := range []Mood{MoodHappy, MoodJoyful, MoodNeutral, MoodSad, MoodAngry} {
		if !m.IsValid() {
			t.Errorf("Mood(%q).IsValid() = false", m)
		}
	}
	if Mood("meh").IsValid() {
		t.Error("meh should be invalid")
	}
}

func TestMood_String(t *testing.T) {
	t.Parallel()
	if got := MoodSad.String(); got != "sad" {
		t.Errorf("got %q, want sad", got)
	}
}
