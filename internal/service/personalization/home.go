package personalization

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/mazag-backend/internal/domain"
	"github.com/heartmarshall/mazag-backend/pkg/ctxutil"
)

// HomeView is everything the home screen personalizes.
type HomeView struct {
	Salutation         string             `json:"salutation"`
	OnboardingComplete bool               `json:"onboardingComplete"`
	Recommendations    *Recommendations   `json:"recommendations,omitempty"`
	Personality        string             `json:"personality"`
	QuickActions       []QuickAction      `json:"quickActions"`
	MoodMessage        string             `json:"moodMessage"`
	MatchedTherapists  []domain.Therapist `json:"matchedTherapists"`
	Subscription       Subscription       `json:"subscription"`
}

// Subscription describes what the caller's tier allows.
// MessageLimitPerDay is domain.UnlimitedMessages for unlimited tiers.
type Subscription struct {
	Tier               domain.Tier `json:"tier"`
	MessageLimitPerDay int         `json:"messageLimitPerDay"`
	BookingDiscount    float64     `json:"bookingDiscount"`
}

func subscriptionFor(tier domain.Tier) Subscription {
	return Subscription{
		Tier:               tier,
		MessageLimitPerDay: tier.MessageLimit(),
		BookingDiscount:    tier.Discount(),
	}
}

// Home builds the home view for the caller. A missing or unreadable profile
// degrades to the non-personalized view instead of failing. Only an unknown
// mood is rejected.
func (s *Service) Home(ctx context.Context, mood domain.Mood) (*HomeView, error) {
	if mood != "" && !mood.IsValid() {
		return nil, domain.NewValidationError("mood", "unknown value")
	}

	view := &HomeView{
		Salutation:        Salutation(s.now()),
		Personality:       ChatbotPersonality(""),
		MatchedTherapists: []domain.Therapist{},
		Subscription:      subscriptionFor(domain.ParseTier(ctxutil.TierFromCtx(ctx))),
	}

	// Step 1: load the profile, falling back on any failure.
	profile, err := s.profiles.Load(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "profile load failed, using defaults", slog.String("error", err.Error()))
		profile = nil
	}

	view.QuickActions = ResolveQuickActions(profile)
	if profile == nil {
		view.MoodMessage = MoodRecommendation(mood, nil)
		return view, nil
	}

	// Step 2: personalize.
	rec := Recommend(*profile)
	view.OnboardingComplete = true
	view.Recommendations = &rec
	view.Personality = ChatbotPersonality(profile.CommunicationStyle)
	view.MoodMessage = MoodRecommendation(mood, &rec)

	// Step 3: matched therapists are best effort.
	if s.therapists != nil && len(rec.Specializations) > 0 {
		matched, err := s.therapists.RecommendedTherapists(ctx, rec.Specializations)
		if err != nil {
			s.log.WarnContext(ctx, "therapist matching failed", slog.String("error", err.Error()))
		} else {
			view.MatchedTherapists = matched
		}
	}

	return view, nil
}
