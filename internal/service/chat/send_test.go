package chat

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/mazag-backend/internal/domain"
	"github.com/heartmarshall/mazag-backend/internal/service/personalization"
	"github.com/heartmarshall/mazag-backend/pkg/ctxutil"
)

var fixedNow = time.Date(2026, 5, 10, 20, 0, 0, 0, time.UTC)

func newTestService(profiles profileLoader, r replier, obs *observerMock) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
	svc := NewService(logger, profiles, r, obs)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func noProfile() *profileLoaderMock {
	return &profileLoaderMock{
		LoadFunc: func(context.Context) (*domain.OnboardingResponse, error) { return nil, nil },
	}
}

func TestIsCrisis(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want bool
	}{
		{"I want to die", true},
		{"i WANT to DIE today", true},
		{"thinking about suicide", true},
		{"I could KILL MYSELF", true},
		{"I want to dine out", false},
		{"feeling low", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsCrisis(tt.text), tt.text)
	}
}

func TestService_Send_Crisis(t *testing.T) {
	t.Parallel()

	rep := &replierMock{}
	obs := &observerMock{}
	svc := newTestService(noProfile(), rep, obs)

	for _, text := range []string{"I want to die", "i want to die", "I WANT TO DIE"} {
		got, err := svc.Send(context.Background(), text)
		require.NoError(t, err)
		assert.Equal(t, CrisisMessage, got.Text)
		assert.True(t, got.Crisis)
		assert.False(t, got.Fallback)
		assert.Equal(t, fixedNow, got.CreatedAt)
	}

	assert.Empty(t, rep.ReplyCalls())
	calls := obs.ObserveChatReplyCalls()
	require.Len(t, calls, 3)
	assert.Equal(t, OutcomeCrisis, calls[0].Outcome)
}

func TestService_Send_LongCrisisMessage(t *testing.T) {
	t.Parallel()

	rep := &replierMock{}
	svc := newTestService(noProfile(), rep, &observerMock{})
	text := strings.Repeat("Today was long and I am tired. ", 70) + "I want to die"
	require.Greater(t, len([]rune(text)), MaxMessageLength)

	got, err := svc.Send(context.Background(), text)

	require.NoError(t, err)
	assert.Equal(t, CrisisMessage, got.Text)
	assert.True(t, got.Crisis)
	assert.Empty(t, rep.ReplyCalls())
}

func TestService_Send_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestService(noProfile(), &replierMock{}, &observerMock{})

	for _, text := range []string{"", "   \n\t", strings.Repeat("a", MaxMessageLength+1)} {
		_, err := svc.Send(context.Background(), text)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestService_Send_Personality(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		profile *domain.OnboardingResponse
		loadErr error
		want    string
	}{
		{
			name:    "stored style",
			profile: &domain.OnboardingResponse{CommunicationStyle: domain.CommunicationStyleDirect},
			want:    personalization.ChatbotPersonality(domain.CommunicationStyleDirect),
		},
		{
			name: "no profile",
			want: personalization.ChatbotPersonality(domain.CommunicationStyleEmpathetic),
		},
		{
			name:    "load failure",
			loadErr: domain.ErrUnavailable,
			want:    personalization.ChatbotPersonality(domain.CommunicationStyleEmpathetic),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			profiles := &profileLoaderMock{
				LoadFunc: func(context.Context) (*domain.OnboardingResponse, error) { return tt.profile, tt.loadErr },
			}
			rep := &replierMock{
				ReplyFunc: func(context.Context, string, string) (string, error) { return "hi there", nil },
			}
			obs := &observerMock{}
			svc := newTestService(profiles, rep, obs)

			got, err := svc.Send(context.Background(), "hello")
			require.NoError(t, err)
			assert.Equal(t, "hi there", got.Text)
			assert.False(t, got.Crisis)
			assert.False(t, got.Fallback)

			calls := rep.ReplyCalls()
			require.Len(t, calls, 1)
			assert.Equal(t, "hello", calls[0].Text)
			assert.Equal(t, tt.want, calls[0].Personality)

			obsCalls := obs.ObserveChatReplyCalls()
			require.Len(t, obsCalls, 1)
			assert.Equal(t, OutcomeReplied, obsCalls[0].Outcome)
		})
	}
}

func TestService_Send_Fallback(t *testing.T) {
	t.Parallel()

	rep := &replierMock{
		ReplyFunc: func(context.Context, string, string) (string, error) { return "", errors.New("timeout") },
	}
	obs := &observerMock{}
	svc := newTestService(noProfile(), rep, obs)

	got, err := svc.Send(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, FallbackMessage, got.Text)
	assert.True(t, got.Fallback)

	calls := obs.ObserveChatReplyCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, OutcomeFallback, calls[0].Outcome)
}

func TestService_Send_OnePendingPerOwner(t *testing.T) {
	t.Parallel()

	entered := make(chan struct{})
	unblock := make(chan struct{})
	rep := &replierMock{
		ReplyFunc: func(context.Context, string, string) (string, error) {
			close(entered)
			<-unblock
			return "done", nil
		},
	}
	svc := newTestService(noProfile(), rep, &observerMock{})

	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		_, firstErr = svc.Send(ctx, "first")
	}()
	<-entered

	_, err := svc.Send(ctx, "second")
	assert.ErrorIs(t, err, domain.ErrConflict)

	// Crisis replies never wait on the collaborator.
	got, err := svc.Send(ctx, "I want to die")
	require.NoError(t, err)
	assert.True(t, got.Crisis)

	close(unblock)
	wg.Wait()
	require.NoError(t, firstErr)

	// After completion the owner may send again.
	rep.ReplyFunc = func(context.Context, string, string) (string, error) { return "again", nil }
	got, err = svc.Send(ctx, "third")
	require.NoError(t, err)
	assert.Equal(t, "again", got.Text)
}
