// Package canned provides an offline chat replier with fixed empathetic replies.
package canned

import (
	"context"
	"fmt"
	"math/rand/v2"
)

// Replier answers with one of four fixed replies picked at random.
type Replier struct {
	pick func(n int) int
}

// NewReplier creates a Replier backed by math/rand.
func NewReplier() *Replier {
	return &Replier{pick: rand.IntN}
}

// Reply ignores the personality directive; the replies are already empathetic.
func (r *Replier) Reply(_ context.Context, text, _ string) (string, error) {
	replies := []string{
		fmt.Sprintf(`I hear you. It sounds like "%s" is weighing on you — would you like to try a short breathing exercise or talk more about it?`, text),
		"Thank you for sharing that with me. How are you feeling right now? I'm here to listen and support you.",
		"That sounds challenging. Remember that it's okay to feel this way. Would you like to explore some coping strategies together?",
		"I understand. Sometimes talking about our feelings can help us process them better. What would be most helpful for you right now?",
	}
	return replies[r.pick(len(replies))], nil
}
