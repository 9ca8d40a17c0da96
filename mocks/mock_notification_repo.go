package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
)

// MockNotificationRepo is a mock implementation of port.NotificationRepository.
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepo) List(ctx context.Context, tenantID uuid.UUID, offset int, limit int) ([]domain.Notification, int, error) {
	args := m.Called(ctx, tenantID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Notification), args.Int(1), args.Error(2)
}

func (m *MockNotificationRepo) Stats(ctx context.Context, tenantID uuid.UUID, dayStart time.Time) (*domain.NotificationStats, error) {
	args := m.Called(ctx, tenantID, dayStart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NotificationStats), args.Error(1)
}

func (m *MockNotificationRepo) ClaimPending(ctx context.Context, limit int, maxAttempts int) ([]domain.Notification, error) {
	args := m.Called(ctx, limit, maxAttempts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepo) MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockNotificationRepo) MarkFailed(ctx context.Context, id uuid.UUID, lastErr string, final bool) error {
	args := m.Called(ctx, id, lastErr, final)
	return args.Error(0)
}
