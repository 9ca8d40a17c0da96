package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
)

// MockSupplierRepo is a mock implementation of port.SupplierRepository.
type MockSupplierRepo struct {
	mock.Mock
}

func (m *MockSupplierRepo) Create(ctx context.Context, s *domain.Supplier) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSupplierRepo) GetByID(ctx context.Context, tenantID uuid.UUID, supplierID uuid.UUID) (*domain.Supplier, error) {
	args := m.Called(ctx, tenantID, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

func (m *MockSupplierRepo) List(ctx context.Context, tenantID uuid.UUID, search string, offset int, limit int) ([]domain.Supplier, int, error) {
	args := m.Called(ctx, tenantID, search, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Supplier), args.Int(1), args.Error(2)
}

func (m *MockSupplierRepo) Update(ctx context.Context, s *domain.Supplier) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSupplierRepo) AddPurchases(ctx context.Context, tenantID uuid.UUID, supplierID uuid.UUID, amount float64) error {
	args := m.Called(ctx, tenantID, supplierID, amount)
	return args.Error(0)
}

func (m *MockSupplierRepo) States(ctx context.Context, tenantID uuid.UUID, supplierIDs []uuid.UUID) (map[uuid.UUID]string, error) {
	args := m.Called(ctx, tenantID, supplierIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]string), args.Error(1)
}
