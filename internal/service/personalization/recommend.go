package personalization

import "github.com/heartmarshall/mazag-backend/internal/domain"

// Exercise names suggested by the recommendation rules.
const (
	Exercise478Breathing    = "4-7-8 Breathing"
	ExerciseBoxBreathing    = "Box Breathing"
	ExerciseBodyScan        = "Body Scan Meditation"
	ExerciseMindfulObserve  = "Mindful Observation"
	ExerciseGratitude       = "Gratitude Journal"
	ExerciseEmotionalCheck  = "Emotional Check-In"
	ExerciseWalkingMedit    = "Walking Meditation"
	ExerciseGentleStretches = "Gentle Stretching Flow"
)

// poorSleepThreshold is the sleepQuality at or below which sleep exercises are suggested.
const poorSleepThreshold = 5

// GreetingTier is the home greeting band chosen from severityLevel.
type GreetingTier int

const (
	// GreetingTierSupportive covers severity 1-3.
	GreetingTierSupportive GreetingTier = iota
	// GreetingTierProgress covers severity 4-7.
	GreetingTierProgress
	// GreetingTierGrowth covers severity 8-10.
	GreetingTierGrowth
)

// TierForSeverity maps a severity level to exactly one tier.
func TierForSeverity(severity int) GreetingTier {
	switch {
	case severity <= 3:
		return GreetingTierSupportive
	case severity <= 7:
		return GreetingTierProgress
	default:
		return GreetingTierGrowth
	}
}

func (t GreetingTier) String() string {
	switch t {
	case GreetingTierSupportive:
		return "supportive"
	case GreetingTierProgress:
		return "progress"
	case GreetingTierGrowth:
		return "growth"
	}
	return "unknown"
}

// MarshalText encodes the tier by name.
func (t GreetingTier) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// Messages returns the greeting and support message for the tier.
func (t GreetingTier) Messages() (greeting, support string) {
	switch t {
	case GreetingTierSupportive:
		return "We're here to support you through this", "Let's take small, manageable steps together"
	case GreetingTierProgress:
		return "Welcome back to your wellness journey", "You're making progress, keep going"
	case GreetingTierGrowth:
		return "Great to see you focusing on growth", "Let's maintain and enhance your wellbeing"
	}
	return "", ""
}

// Recommendations is the personalized content derived from an onboarding response.
type Recommendations struct {
	Tier            GreetingTier `json:"tier"`
	Greeting        string       `json:"greeting"`
	SupportMessage  string       `json:"supportMessage"`
	Exercises       []string     `json:"exercises"`
	Specializations []string     `json:"specializations"`
}

type exerciseRule struct {
	applies   func(r domain.OnboardingResponse) bool
	exercises []string
}

var exerciseRules = []exerciseRule{
	{
		applies: func(r domain.OnboardingResponse) bool {
			return r.PrefersExercise(domain.ExerciseCategoryBreathing) || r.HasConcern(domain.ConcernAnxiety)
		},
		exercises: []string{Exercise478Breathing, ExerciseBoxBreathing},
	},
	{
		applies: func(r domain.OnboardingResponse) bool {
			return r.PrefersExercise(domain.ExerciseCategoryMeditation) || r.HasConcern(domain.ConcernStress)
		},
		exercises: []string{ExerciseBodyScan, ExerciseMindfulObserve},
	},
	{
		applies: func(r domain.OnboardingResponse) bool {
			return r.PrefersExercise(domain.ExerciseCategoryJournaling) || r.HasConcern(domain.ConcernDepression)
		},
		exercises: []string{ExerciseGratitude, ExerciseEmotionalCheck},
	},
	{
		applies: func(r domain.OnboardingResponse) bool {
			return r.PrefersExercise(domain.ExerciseCategoryMovement)
		},
		exercises: []string{ExerciseWalkingMedit, ExerciseGentleStretches},
	},
	{
		applies: func(r domain.OnboardingResponse) bool {
			return r.SleepQuality <= poorSleepThreshold || r.HasConcern(domain.ConcernSleep)
		},
		exercises: []string{Exercise478Breathing, ExerciseBodyScan},
	},
}

type specializationRule struct {
	applies         func(r domain.OnboardingResponse) bool
	specializations []string
}

func concernRule(c domain.Concern, specs ...string) specializationRule {
	return specializationRule{
		applies:         func(r domain.OnboardingResponse) bool { return r.HasConcern(c) },
		specializations: specs,
	}
}

func approachRule(a domain.Approach, specs ...string) specializationRule {
	return specializationRule{
		applies:         func(r domain.OnboardingResponse) bool { return r.UsesApproach(a) },
		specializations: specs,
	}
}

var specializationRules = []specializationRule{
	concernRule(domain.ConcernAnxiety, "Anxiety", "Stress Management"),
	concernRule(domain.ConcernDepression, "Depression", "Mood Disorders"),
	concernRule(domain.ConcernRelationships, "Relationships", "Family Therapy"),
	concernRule(domain.ConcernStress, "Stress Management", "Burnout"),
	approachRule(domain.ApproachCBT, "Cognitive Behavioral Therapy"),
	approachRule(domain.ApproachMindfulness, "Mindfulness-Based Therapy"),
}

// Recommend maps an onboarding response to greeting, exercises and specializations.
// It is pure and total: sparse profiles are defaulted before any rule runs.
func Recommend(profile domain.OnboardingResponse) Recommendations {
	p := profile.Normalized()

	tier := TierForSeverity(p.SeverityLevel)
	greeting, support := tier.Messages()

	var exercises orderedSet
	for _, rule := range exerciseRules {
		if rule.applies(p) {
			exercises.add(rule.exercises...)
		}
	}

	var specs orderedSet
	for _, rule := range specializationRules {
		if rule.applies(p) {
			specs.add(rule.specializations...)
		}
	}

	return Recommendations{
		Tier:            tier,
		Greeting:        greeting,
		SupportMessage:  support,
		Exercises:       exercises.list(),
		Specializations: specs.list(),
	}
}

// orderedSet keeps first-occurrence order.
type orderedSet struct {
	items []string
	seen  map[string]struct{}
}

func (s *orderedSet) add(values ...string) {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	for _, v := range values {
		if _, ok := s.seen[v]; ok {
			continue
		}
		s.seen[v] = struct{}{}
		s.items = append(s.items, v)
	}
}

func (s *orderedSet) list() []string {
	if s.items == nil {
		return []string{}
	}
	return s.items
}
