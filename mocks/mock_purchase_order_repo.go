package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
)

// MockPurchaseOrderRepo is a mock implementation of port.PurchaseOrderRepository.
type MockPurchaseOrderRepo struct {
	mock.Mock
}

func (m *MockPurchaseOrderRepo) Create(ctx context.Context, po *domain.PurchaseOrder) error {
	args := m.Called(ctx, po)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepo) GetByID(ctx context.Context, tenantID uuid.UUID, poID uuid.UUID) (*domain.PurchaseOrder, error) {
	args := m.Called(ctx, tenantID, poID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepo) List(ctx context.Context, tenantID uuid.UUID, status domain.POStatus, offset int, limit int) ([]domain.PurchaseOrder, int, error) {
	args := m.Called(ctx, tenantID, status, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.PurchaseOrder), args.Int(1), args.Error(2)
}

func (m *MockPurchaseOrderRepo) MarkReceived(ctx context.Context, tenantID uuid.UUID, poID uuid.UUID, at time.Time) error {
	args := m.Called(ctx, tenantID, poID, at)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepo) ListReceived(ctx context.Context, tenantID uuid.UUID, window domain.DateRange) ([]domain.PurchaseOrder, error) {
	args := m.Called(ctx, tenantID, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepo) ListForReconciliation(ctx context.Context, tenantID uuid.UUID, window *domain.DateRange) ([]domain.PurchaseOrder, error) {
	args := m.Called(ctx, tenantID, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseOrder), args.Error(1)
}
