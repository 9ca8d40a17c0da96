package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/service"
)

// MockNotificationService is a mock implementation of service.NotificationService.
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) List(ctx context.Context, tenantID uuid.UUID, offset int, limit int) ([]domain.Notification, int, error) {
	args := m.Called(ctx, tenantID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Notification), args.Int(1), args.Error(2)
}

func (m *MockNotificationService) Stats(ctx context.Context, tenantID uuid.UUID) (*domain.NotificationStats, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NotificationStats), args.Error(1)
}

func (m *MockNotificationService) NotifyLowStock(ctx context.Context, tenantID uuid.UUID, changes []domain.StockChange) error {
	args := m.Called(ctx, tenantID, changes)
	return args.Error(0)
}

func (m *MockNotificationService) NotifyRateUpdate(ctx context.Context, tenantID uuid.UUID, rates []domain.GoldRate) error {
	args := m.Called(ctx, tenantID, rates)
	return args.Error(0)
}

func (m *MockNotificationService) ShareInvoice(ctx context.Context, tenantID uuid.UUID, saleID uuid.UUID, input service.ShareInvoiceInput) (*domain.Notification, error) {
	args := m.Called(ctx, tenantID, saleID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *MockNotificationService) Deliver(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationService) DeliverPending(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
