package personalization

import (
	"fmt"
	"time"

	"github.com/heartmarshall/mazag-backend/internal/domain"
)

// MoodRecommendation returns the home-screen line for the selected mood.
// With no mood selected it echoes the personalized greeting, or nothing when
// the user has no profile.
func MoodRecommendation(mood domain.Mood, rec *Recommendations) string {
	switch mood {
	case domain.MoodHappy:
		return "You're feeling great! Keep the momentum going with a gratitude journal."
	case domain.MoodJoyful:
		return "Your positive energy is wonderful! Share it by talking to Mazag."
	case domain.MoodNeutral:
		return "Take a moment for yourself with a quick 3-minute breathing exercise."
	case domain.MoodSad:
		return "We're here for you. Try a calming meditation or chat with Mazag."
	case domain.MoodAngry:
		return "Let's work through this together. A breathing exercise might help you feel centered."
	}
	if rec == nil {
		return ""
	}
	return fmt.Sprintf("%s. %s.", rec.Greeting, rec.SupportMessage)
}

// Salutation greets by time of day in t's location.
func Salutation(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "Good Morning,"
	case h < 18:
		return "Good Afternoon,"
	default:
		return "Good Evening,"
	}
}
