package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
)

// MockProductRepo is a mock implementation of port.ProductRepository.
type MockProductRepo struct {
	mock.Mock
}

func (m *MockProductRepo) Create(ctx context.Context, p *domain.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepo) GetByID(ctx context.Context, tenantID uuid.UUID, productID uuid.UUID) (*domain.Product, error) {
	args := m.Called(ctx, tenantID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepo) List(ctx context.Context, tenantID uuid.UUID, filter domain.ProductFilter, offset int, limit int) ([]domain.Product, int, error) {
	args := m.Called(ctx, tenantID, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Product), args.Int(1), args.Error(2)
}

func (m *MockProductRepo) ListLowStock(ctx context.Context, tenantID uuid.UUID) ([]domain.Product, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepo) ListByPurities(ctx context.Context, tenantID uuid.UUID, purities []string) ([]domain.Product, error) {
	args := m.Called(ctx, tenantID, purities)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepo) Update(ctx context.Context, p *domain.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepo) UpdatePricing(ctx context.Context, tenantID uuid.UUID, productID uuid.UUID, basePrice float64, sellingPrice float64) error {
	args := m.Called(ctx, tenantID, productID, basePrice, sellingPrice)
	return args.Error(0)
}

func (m *MockProductRepo) Delete(ctx context.Context, tenantID uuid.UUID, productID uuid.UUID) error {
	args := m.Called(ctx, tenantID, productID)
	return args.Error(0)
}

func (m *MockProductRepo) AdjustStock(ctx context.Context, tenantID uuid.UUID, productID uuid.UUID, delta int) (*domain.StockChange, error) {
	args := m.Called(ctx, tenantID, productID, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockChange), args.Error(1)
}
