package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/service"
)

// MockPurchaseService is a mock implementation of service.PurchaseService.
type MockPurchaseService struct {
	mock.Mock
}

func (m *MockPurchaseService) CreateSupplier(ctx context.Context, tenantID uuid.UUID, input service.CreateSupplierInput) (*domain.Supplier, error) {
	args := m.Called(ctx, tenantID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

func (m *MockPurchaseService) GetSupplier(ctx context.Context, tenantID uuid.UUID, supplierID uuid.UUID) (*domain.Supplier, error) {
	args := m.Called(ctx, tenantID, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

func (m *MockPurchaseService) ListSuppliers(ctx context.Context, tenantID uuid.UUID, search string, offset int, limit int) ([]domain.Supplier, int, error) {
	args := m.Called(ctx, tenantID, search, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Supplier), args.Int(1), args.Error(2)
}

func (m *MockPurchaseService) UpdateSupplier(ctx context.Context, tenantID uuid.UUID, supplierID uuid.UUID, input service.UpdateSupplierInput) (*domain.Supplier, error) {
	args := m.Called(ctx, tenantID, supplierID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

func (m *MockPurchaseService) CreateOrder(ctx context.Context, tenantID uuid.UUID, userID uuid.UUID, input service.CreatePurchaseOrderInput) (*domain.PurchaseOrder, error) {
	args := m.Called(ctx, tenantID, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseService) GetOrder(ctx context.Context, tenantID uuid.UUID, poID uuid.UUID) (*domain.PurchaseOrder, error) {
	args := m.Called(ctx, tenantID, poID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseService) ListOrders(ctx context.Context, tenantID uuid.UUID, status domain.POStatus, offset int, limit int) ([]domain.PurchaseOrder, int, error) {
	args := m.Called(ctx, tenantID, status, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.PurchaseOrder), args.Int(1), args.Error(2)
}

func (m *MockPurchaseService) ReceiveOrder(ctx context.Context, tenantID uuid.UUID, userID uuid.UUID, poID uuid.UUID) (*domain.PurchaseOrder, error) {
	args := m.Called(ctx, tenantID, userID, poID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseService) CreateOldGold(ctx context.Context, tenantID uuid.UUID, userID uuid.UUID, input service.CreateOldGoldInput) (*domain.OldGoldExchange, error) {
	args := m.Called(ctx, tenantID, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OldGoldExchange), args.Error(1)
}

func (m *MockPurchaseService) ListOldGold(ctx context.Context, tenantID uuid.UUID, offset int, limit int) ([]domain.OldGoldExchange, int, error) {
	args := m.Called(ctx, tenantID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.OldGoldExchange), args.Int(1), args.Error(2)
}
