package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockLocker is a mock implementation of port.Locker.
type MockLocker struct {
	mock.Mock
}

func (m *MockLocker) Obtain(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, error) {
	args := m.Called(ctx, key, ttl)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(func(context.Context) error), args.Error(1)
}
