package personalization

import "github.com/heartmarshall/mazag-backend/internal/domain"

// MaxQuickActions is the number of shortcuts shown on the home view.
const MaxQuickActions = 4

// therapistSeverityThreshold is the severity at or below which a therapist shortcut is offered.
const therapistSeverityThreshold = 4

// QuickAction is a home-view shortcut.
type QuickAction struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Route string `json:"route"`
	Color string `json:"color"`
}

var (
	actionChat      = QuickAction{ID: "chat", Label: "Talk to Mazag", Icon: "chatbubbles", Route: "/chat", Color: "#2196F3"}
	actionBreathing = QuickAction{ID: "breathing", Label: "Breathing Exercise", Icon: "cloud", Route: "/exercises", Color: "#64B5F6"}
	actionJournal   = QuickAction{ID: "journal", Label: "Journal Entry", Icon: "create", Route: "/exercises", Color: "#FF9800"}
	actionTherapist = QuickAction{ID: "therapist", Label: "Find Therapist", Icon: "people", Route: "/therapists", Color: "#7B1FA2"}
)

// DefaultQuickActions returns the fixed non-personalized shortcut set.
func DefaultQuickActions() []QuickAction {
	return []QuickAction{
		{ID: "chat", Label: "Talk to Mazag", Icon: "chatbubble-ellipses", Route: "/chat", Color: "#4FC3F7"},
		{ID: "relax", Label: "Relaxation Exercise", Icon: "flower", Route: "/exercises", Color: "#BA68C8"},
		{ID: "journal", Label: "Journal Entry", Icon: "book", Route: "/journal", Color: "#FFB74D"},
		{ID: "tracker", Label: "Mood Tracker", Icon: "analytics", Route: "/tracker", Color: "#81D4FA"},
	}
}

// SelectActions builds the personalized shortcut list: chat first, then
// breathing, journal and therapist in priority order, capped at MaxQuickActions.
// A nil profile yields nil.
func SelectActions(profile *domain.OnboardingResponse) []QuickAction {
	if profile == nil {
		return nil
	}
	p := profile.Normalized()

	actions := []QuickAction{actionChat}
	if p.PrefersExercise(domain.ExerciseCategoryBreathing) || p.HasConcern(domain.ConcernAnxiety) {
		actions = append(actions, actionBreathing)
	}
	if p.PrefersExercise(domain.ExerciseCategoryJournaling) {
		actions = append(actions, actionJournal)
	}
	if p.HasConcern(domain.ConcernRelationships) || p.SeverityLevel <= therapistSeverityThreshold {
		actions = append(actions, actionTherapist)
	}

	if len(actions) > MaxQuickActions {
		actions = actions[:MaxQuickActions]
	}
	return actions
}

// ResolveQuickActions returns the personalized list only when it fills every
// slot. Otherwise the whole default set is used; the two are never mixed.
func ResolveQuickActions(profile *domain.OnboardingResponse) []QuickAction {
	actions := SelectActions(profile)
	if len(actions) == MaxQuickActions {
		return actions
	}
	return DefaultQuickActions()
}
