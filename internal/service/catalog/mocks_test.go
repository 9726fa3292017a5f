package catalog

import (
	"context"
	"sync"

	"github.com/heartmarshall/mazag-backend/internal/domain"
)

var _ catalogSource = &catalogSourceMock{}

type catalogSourceMock struct {
	LoadFunc func(ctx context.Context) (*domain.Catalog, error)

	calls struct {
		Load []struct {
			Ctx context.Context
		}
	}
	lockLoad sync.RWMutex
}

func (mock *catalogSourceMock) Load(ctx context.Context) (*domain.Catalog, error) {
	if mock.LoadFunc == nil {
		panic("catalogSourceMock.LoadFunc: method is nil but catalogSource.Load was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockLoad.Lock()
	mock.calls.Load = append(mock.calls.Load, callInfo)
	mock.lockLoad.Unlock()
	return mock.LoadFunc(ctx)
}

func (mock *catalogSourceMock) LoadCalls() []struct {
	Ctx context.Context
} {
	mock.lockLoad.RLock()
	calls := mock.calls.Load
	mock.lockLoad.RUnlock()
	return calls
}
