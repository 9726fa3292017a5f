package booking

import (
	"context"
	"sync"

	"github.com/heartmarshall/mazag-backend/internal/domain"
)

var _ therapistLookup = &therapistLookupMock{}

type therapistLookupMock struct {
	TherapistFunc func(ctx context.Context, id string) (*domain.Therapist, error)

	calls struct {
		Therapist []struct {
			Ctx context.Context
			ID  string
		}
	}
	lockTherapist sync.RWMutex
}

func (mock *therapistLookupMock) Therapist(ctx context.Context, id string) (*domain.Therapist, error) {
	if mock.TherapistFunc == nil {
		panic("therapistLookupMock.TherapistFunc: method is nil but therapistLookup.Therapist was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockTherapist.Lock()
	mock.calls.Therapist = append(mock.calls.Therapist, callInfo)
	mock.lockTherapist.Unlock()
	return mock.TherapistFunc(ctx, id)
}

func (mock *therapistLookupMock) TherapistCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockTherapist.RLock()
	calls := mock.calls.Therapist
	mock.lockTherapist.RUnlock()
	return calls
}
