package onboarding

import (
	"context"
	"sync"

	"github.com/heartmarshall/mazag-backend/internal/domain"
)

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	GetFunc    func(ctx context.Context) (*domain.OnboardingResponse, error)
	PutFunc    func(ctx context.Context, resp domain.OnboardingResponse) error
	DeleteFunc func(ctx context.Context) error

	calls struct {
		Get []struct {
			Ctx context.Context
		}
		Put []struct {
			Ctx  context.Context
			Resp domain.OnboardingResponse
		}
		Delete []struct {
			Ctx context.Context
		}
	}
	lockGet    sync.RWMutex
	lockPut    sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *profileRepoMock) Get(ctx context.Context) (*domain.OnboardingResponse, error) {
	if mock.GetFunc == nil {
		panic("profileRepoMock.GetFunc: method is nil but profileRepo.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx)
}

func (mock *profileRepoMock) GetCalls() []struct {
	Ctx context.Context
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *profileRepoMock) Put(ctx context.Context, resp domain.OnboardingResponse) error {
	if mock.PutFunc == nil {
		panic("profileRepoMock.PutFunc: method is nil but profileRepo.Put was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Resp domain.OnboardingResponse
	}{Ctx: ctx, Resp: resp}
	mock.lockPut.Lock()
	mock.calls.Put = append(mock.calls.Put, callInfo)
	mock.lockPut.Unlock()
	return mock.PutFunc(ctx, resp)
}

func (mock *profileRepoMock) PutCalls() []struct {
	Ctx  context.Context
	Resp domain.OnboardingResponse
} {
	mock.lockPut.RLock()
	calls := mock.calls.Put
	mock.lockPut.RUnlock()
	return calls
}

func (mock *profileRepoMock) Delete(ctx context.Context) error {
	if mock.DeleteFunc == nil {
		panic("profileRepoMock.DeleteFunc: method is nil but profileRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx)
}

func (mock *profileRepoMock) DeleteCalls() []struct {
	Ctx context.Context
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
