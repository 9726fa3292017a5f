package personalization

import (
	"context"
	"sync"

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

var _ therapistMatcher = &therapistMatcherMock{}

type therapistMatcherMock struct {
	RecommendedTherapistsFunc func(ctx context.Context, specializations []string) ([]domain.Therapist, error)

	calls struct {
		RecommendedTherapists []struct {
			Ctx             context.Context
			Specializations []string
		}
	}
	lockRecommendedTherapists sync.RWMutex
}

func (mock *therapistMatcherMock) RecommendedTherapists(ctx context.Context, specializations []string) ([]domain.Therapist, error) {
	if mock.RecommendedTherapistsFunc == nil {
		panic("therapistMatcherMock.RecommendedTherapistsFunc: method is nil but therapistMatcher.RecommendedTherapists was just called")
	}
	callInfo := struct {
		Ctx             context.Context
		Specializations []string
	}{Ctx: ctx, Specializations: specializations}
	mock.lockRecommendedTherapists.Lock()
	mock.calls.RecommendedTherapists = append(mock.calls.RecommendedTherapists, callInfo)
	mock.lockRecommendedTherapists.Unlock()
	return mock.RecommendedTherapistsFunc(ctx, specializations)
}

func (mock *therapistMatcherMock) RecommendedTherapistsCalls() []struct {
	Ctx             context.Context
	Specializations []string
} {
	mock.lockRecommendedTherapists.RLock()
	calls := mock.calls.RecommendedTherapists
	mock.lockRecommendedTherapists.RUnlock()
	return calls
}
