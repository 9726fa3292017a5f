package canned

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplier_Reply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pick int
		want string
	}{
		{0, `I hear you. It sounds like "rough day" is weighing on you — would you like to try a short breathing exercise or talk more about it?`},
		{1, "Thank you for sharing that with me. How are you feeling right now? I'm here to listen and support you."},
		{2, "That sounds challenging. Remember that it's okay to feel this way. Would you like to explore some coping strategies together?"},
		{3, "I understand. Sometimes talking about our feelings can help us process them better. What would be most helpful for you right now?"},
	}

	for _, tt := range tests {
		r := &Replier{pick: func(n int) int {
			assert.Equal(t, 4, n)
			return tt.pick
		}}
		got, err := r.Reply(context.Background(), "rough day", "")
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestNewReplier_AlwaysAnswers(t *testing.T) {
	t.Parallel()

	r := NewReplier()
	for range 20 {
		got, err := r.Reply(context.Background(), "hello", "be direct")
		require.NoError(t, err)
		assert.NotEmpty(t, got)
	}
}
