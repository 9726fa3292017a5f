package chat

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/mazag-backend/internal/domain"
)

var _ profileLoader = &profileLoaderMock{}

type profileLoaderMock struct {
	LoadFunc func(ctx context.Context) (*domain.OnboardingResponse, error)

	calls struct {
		Load []struct {
			Ctx context.Context
		}
	}
	lockLoad sync.RWMutex
}

func (mock *profileLoaderMock) Load(ctx context.Context) (*domain.OnboardingResponse, error) {
	if mock.LoadFunc == nil {
		panic("profileLoaderMock.LoadFunc: method is nil but profileLoader.Load was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockLoad.Lock()
	mock.calls.Load = append(mock.calls.Load, callInfo)
	mock.lockLoad.Unlock()
	return mock.LoadFunc(ctx)
}

func (mock *profileLoaderMock) LoadCalls() []struct {
	Ctx context.Context
} {
	mock.lockLoad.RLock()
	calls := mock.calls.Load
	mock.lockLoad.RUnlock()
	return calls
}

var _ replier = &replierMock{}

type replierMock struct {
	ReplyFunc func(ctx context.Context, text string, personality string) (string, error)

	calls struct {
		Reply []struct {
			Ctx         context.Context
			Text        string
			Personality string
		}
	}
	lockReply sync.RWMutex
}

func (mock *replierMock) Reply(ctx context.Context, text string, personality string) (string, error) {
	if mock.ReplyFunc == nil {
		panic("replierMock.ReplyFunc: method is nil but replier.Reply was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Text        string
		Personality string
	}{Ctx: ctx, Text: text, Personality: personality}
	mock.lockReply.Lock()
	mock.calls.Reply = append(mock.calls.Reply, callInfo)
	mock.lockReply.Unlock()
	return mock.ReplyFunc(ctx, text, personality)
}

func (mock *replierMock) ReplyCalls() []struct {
	Ctx         context.Context
	Text        string
	Personality string
} {
	mock.lockReply.RLock()
	calls := mock.calls.Reply
	mock.lockReply.RUnlock()
	return calls
}

var _ observer = &observerMock{}

type observerMock struct {
	ObserveChatReplyFunc func(outcome string, d time.Duration)

	calls struct {
		ObserveChatReply []struct {
			Outcome string
			D       time.Duration
		}
	}
	lockObserveChatReply sync.RWMutex
}

func (mock *observerMock) ObserveChatReply(outcome string, d time.Duration) {
	callInfo := struct {
		Outcome string
		D       time.Duration
	}{Outcome: outcome, D: d}
	mock.lockObserveChatReply.Lock()
	mock.calls.ObserveChatReply = append(mock.calls.ObserveChatReply, callInfo)
	mock.lockObserveChatReply.Unlock()
	if mock.ObserveChatReplyFunc != nil {
		mock.ObserveChatReplyFunc(outcome, d)
	}
}

func (mock *observerMock) ObserveChatReplyCalls() []struct {
	Outcome string
	D       time.Duration
} {
	mock.lockObserveChatReply.RLock()
	calls := mock.calls.ObserveChatReply
	mock.lockObserveChatReply.RUnlock()
	return calls
}
