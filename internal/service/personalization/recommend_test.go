package personalization

import (
	"testing"

	"github.com/heartmarshall/mazag-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profile(mutate func(p *domain.OnboardingResponse)) domain.OnboardingResponse {
	p := domain.NewOnboardingResponse()
	p.SleepQuality = 8
	p.WellnessGoals = []domain.WellnessGoal{domain.WellnessGoalImproveMood}
	if mutate != nil {
		mutate(&p)
	}
	return p
}

func TestTierForSeverity_Boundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		severity int
		want     GreetingTier
	}{
		{1, GreetingTierSupportive},
		{3, GreetingTierSupportive},
		{4, GreetingTierProgress},
		{7, GreetingTierProgress},
		{8, GreetingTierGrowth},
		{10, GreetingTierGrowth},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TierForSeverity(tt.severity), "severity %d", tt.severity)
	}
}

func TestRecommend_EverySeverityHasExactlyOneTier(t *testing.T) {
	t.Parallel()

	greetings := map[string]GreetingTier{}
	for _, tier := range []GreetingTier{GreetingTierSupportive, GreetingTierProgress, GreetingTierGrowth} {
		g, s := tier.Messages()
		require.NotEmpty(t, g)
		require.NotEmpty(t, s)
		greetings[g] = tier
	}

	for sev := domain.ScaleMin; sev <= domain.ScaleMax; sev++ {
		rec := Recommend(profile(func(p *domain.OnboardingResponse) { p.SeverityLevel = sev }))
		require.NotEmpty(t, rec.Greeting, "severity %d", sev)
		tier, ok := greetings[rec.Greeting]
		require.True(t, ok, "severity %d produced unknown greeting %q", sev, rec.Greeting)
		assert.Equal(t, rec.Tier, tier)
	}
}

func TestRecommend_AnxietyLowSeverity(t *testing.T) {
	t.Parallel()

	rec := Recommend(profile(func(p *domain.OnboardingResponse) {
		p.PrimaryConcern = []domain.Concern{domain.ConcernAnxiety}
		p.SeverityLevel = 2
		p.PreferredExercises = []domain.ExerciseCategory{}
	}))

	assert.Equal(t, GreetingTierSupportive, rec.Tier)
	assert.Equal(t, "We're here to support you through this", rec.Greeting)
	assert.Equal(t, "Let's take small, manageable steps together", rec.SupportMessage)
	assert.Equal(t, []string{Exercise478Breathing, ExerciseBoxBreathing}, rec.Exercises)
	assert.Equal(t, []string{"Anxiety", "Stress Management"}, rec.Specializations)
}

func TestRecommend_ExerciseRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(p *domain.OnboardingResponse)
		want   []string
	}{
		{
			name:   "nothing fires",
			mutate: func(p *domain.OnboardingResponse) {},
			want:   []string{},
		},
		{
			name: "breathing preference",
			mutate: func(p *domain.OnboardingResponse) {
				p.PreferredExercises = []domain.ExerciseCategory{domain.ExerciseCategoryBreathing}
			},
			want: []string{Exercise478Breathing, ExerciseBoxBreathing},
		},
		{
			name:   "stress concern",
			mutate: func(p *domain.OnboardingResponse) { p.PrimaryConcern = []domain.Concern{domain.ConcernStress} },
			want:   []string{ExerciseBodyScan, ExerciseMindfulObserve},
		},
		{
			name:   "depression concern",
			mutate: func(p *domain.OnboardingResponse) { p.PrimaryConcern = []domain.Concern{domain.ConcernDepression} },
			want:   []string{ExerciseGratitude, ExerciseEmotionalCheck},
		},
		{
			name: "movement preference",
			mutate: func(p *domain.OnboardingResponse) {
				p.PreferredExercises = []domain.ExerciseCategory{domain.ExerciseCategoryMovement}
			},
			want: []string{ExerciseWalkingMedit, ExerciseGentleStretches},
		},
		{
			name:   "poor sleep alone",
			mutate: func(p *domain.OnboardingResponse) { p.SleepQuality = 5 },
			want:   []string{Exercise478Breathing, ExerciseBodyScan},
		},
		{
			name:   "sleep concern with good sleep",
			mutate: func(p *domain.OnboardingResponse) { p.PrimaryConcern = []domain.Concern{domain.ConcernSleep} },
			want:   []string{Exercise478Breathing, ExerciseBodyScan},
		},
		{
			name: "sleep rule deduplicates against earlier rules",
			mutate: func(p *domain.OnboardingResponse) {
				p.PrimaryConcern = []domain.Concern{domain.ConcernAnxiety, domain.ConcernStress}
				p.SleepQuality = 3
			},
			want: []string{Exercise478Breathing, ExerciseBoxBreathing, ExerciseBodyScan, ExerciseMindfulObserve},
		},
		{
			name: "preference and concern for the same rule fire once",
			mutate: func(p *domain.OnboardingResponse) {
				p.PrimaryConcern = []domain.Concern{domain.ConcernDepression}
				p.PreferredExercises = []domain.ExerciseCategory{domain.ExerciseCategoryJournaling}
			},
			want: []string{ExerciseGratitude, ExerciseEmotionalCheck},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := Recommend(profile(tt.mutate))
			assert.Equal(t, tt.want, rec.Exercises)
		})
	}
}

func TestRecommend_SpecializationRules(t *testing.T) {
	t.Parallel()

	rec := Recommend(profile(func(p *domain.OnboardingResponse) {
		p.PrimaryConcern = []domain.Concern{
			domain.ConcernAnxiety, domain.ConcernDepression, domain.ConcernRelationships, domain.ConcernStress,
		}
		p.TherapyApproach = []domain.Approach{domain.ApproachMindfulness, domain.ApproachCBT}
	}))

	assert.Equal(t, []string{
		"Anxiety", "Stress Management",
		"Depression", "Mood Disorders",
		"Relationships", "Family Therapy",
		"Burnout",
		"Cognitive Behavioral Therapy",
		"Mindfulness-Based Therapy",
	}, rec.Specializations)
}

func TestRecommend_NoDuplicatesAndDeterministic(t *testing.T) {
	t.Parallel()

	p := profile(func(p *domain.OnboardingResponse) {
		p.PrimaryConcern = []domain.Concern{domain.ConcernAnxiety, domain.ConcernSleep, domain.ConcernStress, domain.ConcernAnxiety}
		p.PreferredExercises = []domain.ExerciseCategory{
			domain.ExerciseCategoryBreathing, domain.ExerciseCategoryMeditation, domain.ExerciseCategoryMovement,
		}
		p.TherapyApproach = []domain.Approach{domain.ApproachCBT, domain.ApproachCBT}
		p.SleepQuality = 2
	})

	first := Recommend(p)
	second := Recommend(p)

	assert.Equal(t, first, second)
	assert.ElementsMatch(t, first.Exercises, uniq(first.Exercises))
	assert.ElementsMatch(t, first.Specializations, uniq(first.Specializations))
}

func TestRecommend_SparseProfile(t *testing.T) {
	t.Parallel()

	// Zero scales default to the neutral value, which counts as poor sleep.
	rec := Recommend(domain.OnboardingResponse{})

	assert.Equal(t, GreetingTierProgress, rec.Tier)
	assert.Equal(t, []string{Exercise478Breathing, ExerciseBodyScan}, rec.Exercises)
	assert.Equal(t, []string{}, rec.Specializations)
}

func TestChatbotPersonality(t *testing.T) {
	t.Parallel()

	tests := []struct {
		style domain.CommunicationStyle
		want  string
	}{
		{domain.CommunicationStyleDirect, "Be concise and solution-focused. Provide clear action steps."},
		{domain.CommunicationStyleEmpathetic, "Be warm and understanding. Use supportive language and validate feelings."},
		{domain.CommunicationStyleAnalytical, "Be structured and logical. Explain the reasoning behind suggestions."},
		{domain.CommunicationStyleCasual, "Be friendly and conversational. Use a relaxed, approachable tone."},
		{"", "Be warm and understanding. Use supportive language and validate feelings."},
		{"sarcastic", "Be warm and understanding. Use supportive language and validate feelings."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ChatbotPersonality(tt.style), "style %q", tt.style)
	}
}

func uniq(values []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
