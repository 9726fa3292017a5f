package domain

// Concern is a primary concern tag picked during onboarding.
type Concern string

const (
	ConcernAnxiety       Concern = "anxiety"
	ConcernDepression    Concern = "depression"
	ConcernStress        Concern = "stress"
	ConcernSleep         Concern = "sleep"
	ConcernWellness      Concern = "wellness"
	ConcernRelationships Concern = "relationships"
)

func (c Concern) String() string { return string(c) }

func (c Concern) IsValid() bool {
	switch c {
	case ConcernAnxiety, ConcernDepression, ConcernStress, ConcernSleep, ConcernWellness, ConcernRelationships:
		return true
	}
	return false
}

// TherapyExperience describes the user's history with therapy. Empty means unanswered.
type TherapyExperience string

const (
	TherapyExperienceCurrently  TherapyExperience = "currently"
	TherapyExperiencePast       TherapyExperience = "past"
	TherapyExperienceInterested TherapyExperience = "interested"
	TherapyExperienceNever      TherapyExperience = "never"
)

func (e TherapyExperience) String() string { return string(e) }

func (e TherapyExperience) IsValid() bool {
	switch e {
	case TherapyExperienceCurrently, TherapyExperiencePast, TherapyExperienceInterested, TherapyExperienceNever:
		return true
	}
	return false
}

// Approach is a therapy approach the user is open to.
type Approach string

const (
	ApproachCBT         Approach = "cbt"
	ApproachTalk        Approach = "talk"
	ApproachMindfulness Approach = "mindfulness"
	ApproachJournaling  Approach = "journaling"
	ApproachBreathing   Approach = "breathing"
	ApproachMovement    Approach = "movement"
)

func (a Approach) String() string { return string(a) }

func (a Approach) IsValid() bool {
	switch a {
	case ApproachCBT, ApproachTalk, ApproachMindfulness, ApproachJournaling, ApproachBreathing, ApproachMovement:
		return true
	}
	return false
}

// MoodPattern is the time of day the user's mood tends to dip.
type MoodPattern string

const (
	MoodPatternMorning   MoodPattern = "morning"
	MoodPatternAfternoon MoodPattern = "afternoon"
	MoodPatternEvening   MoodPattern = "evening"
	MoodPatternNight     MoodPattern = "night"
	MoodPatternVaries    MoodPattern = "varies"
)

func (p MoodPattern) String() string { return string(p) }

func (p MoodPattern) IsValid() bool {
	switch p {
	case MoodPatternMorning, MoodPatternAfternoon, MoodPatternEvening, MoodPatternNight, MoodPatternVaries:
		return true
	}
	return false
}

// SupportSystem describes how much outside support the user has.
type SupportSystem string

const (
	SupportSystemStrong    SupportSystem = "strong"
	SupportSystemModerate  SupportSystem = "moderate"
	SupportSystemLimited   SupportSystem = "limited"
	SupportSystemPreferNot SupportSystem = "prefer-not"
)

func (s SupportSystem) String() string { return string(s) }

func (s SupportSystem) IsValid() bool {
	switch s {
	case SupportSystemStrong, SupportSystemModerate, SupportSystemLimited, SupportSystemPreferNot:
		return true
	}
	return false
}

// WellnessGoal is a goal tag picked during onboarding.
type WellnessGoal string

const (
	WellnessGoalReduceAnxiety   WellnessGoal = "reduce-anxiety"
	WellnessGoalBetterSleep     WellnessGoal = "better-sleep"
	WellnessGoalManageStress    WellnessGoal = "manage-stress"
	WellnessGoalImproveMood     WellnessGoal = "improve-mood"
	WellnessGoalBuildResilience WellnessGoal = "build-resilience"
	WellnessGoalSelfAwareness   WellnessGoal = "self-awareness"
)

func (g WellnessGoal) String() string { return string(g) }

func (g WellnessGoal) IsValid() bool {
	switch g {
	case WellnessGoalReduceAnxiety, WellnessGoalBetterSleep, WellnessGoalManageStress,
		WellnessGoalImproveMood, WellnessGoalBuildResilience, WellnessGoalSelfAwareness:
		return true
	}
	return false
}

// ExerciseCategory tags both catalog exercises and the user's preferred exercise kinds.
// Visualization only appears as a preference; the catalog ships none.
type ExerciseCategory string

const (
	ExerciseCategoryBreathing     ExerciseCategory = "breathing"
	ExerciseCategoryMeditation    ExerciseCategory = "meditation"
	ExerciseCategoryJournaling    ExerciseCategory = "journaling"
	ExerciseCategoryRelaxation    ExerciseCategory = "relaxation"
	ExerciseCategoryMovement      ExerciseCategory = "movement"
	ExerciseCategoryVisualization ExerciseCategory = "visualization"
)

func (c ExerciseCategory) String() string { return string(c) }

func (c ExerciseCategory) IsValid() bool {
	switch c {
	case ExerciseCategoryBreathing, ExerciseCategoryMeditation, ExerciseCategoryJournaling,
		ExerciseCategoryRelaxation, ExerciseCategoryMovement, ExerciseCategoryVisualization:
		return true
	}
	return false
}

// CommunicationStyle is how the user prefers the chatbot to talk to them.
type CommunicationStyle string

const (
	CommunicationStyleDirect     CommunicationStyle = "direct"
	CommunicationStyleEmpathetic CommunicationStyle = "empathetic"
	CommunicationStyleAnalytical CommunicationStyle = "analytical"
	CommunicationStyleCasual     CommunicationStyle = "casual"
)

func (s CommunicationStyle) String() string { return string(s) }

func (s CommunicationStyle) IsValid() bool {
	switch s {
	case CommunicationStyleDirect, CommunicationStyleEmpathetic, CommunicationStyleAnalytical, CommunicationStyleCasual:
		return true
	}
	return false
}

// Difficulty of a catalog exercise.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// Gender of a therapist as listed in the catalog.
type Gender string

const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
)

func (g Gender) String() string { return string(g) }

func (g Gender) IsValid() bool {
	switch g {
	case GenderFemale, GenderMale:
		return true
	}
	return false
}

// Mood is the mood the user picks on the home screen.
type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodJoyful  Mood = "joyful"
	MoodNeutral Mood = "neutral"
	MoodSad     Mood = "sad"
	MoodAngry   Mood = "angry"
)

func (m Mood) String() string { return string(m) }

func (m Mood) IsValid() bool {
	switch m {
	case MoodHappy, MoodJoyful, MoodNeutral, MoodSad, MoodAngry:
		return true
	}
	return false
}
