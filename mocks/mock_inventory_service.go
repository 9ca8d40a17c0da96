package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/service"
)

// MockInventoryService is a mock implementation of service.InventoryService.
type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) CreateCategory(ctx context.Context, tenantID uuid.UUID, input service.CreateCategoryInput) (*domain.Category, error) {
	args := m.Called(ctx, tenantID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockInventoryService) ListCategories(ctx context.Context, tenantID uuid.UUID) ([]domain.Category, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockInventoryService) CreateProduct(ctx context.Context, tenantID uuid.UUID, input service.CreateProductInput) (*domain.Product, error) {
	args := m.Called(ctx, tenantID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockInventoryService) GetProduct(ctx context.Context, tenantID uuid.UUID, productID uuid.UUID) (*domain.Product, error) {
	args := m.Called(ctx, tenantID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockInventoryService) ListProducts(ctx context.Context, tenantID uuid.UUID, filter domain.ProductFilter, offset int, limit int) ([]domain.Product, int, error) {
	args := m.Called(ctx, tenantID, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Product), args.Int(1), args.Error(2)
}

func (m *MockInventoryService) UpdateProduct(ctx context.Context, tenantID uuid.UUID, productID uuid.UUID, input service.UpdateProductInput) (*domain.Product, error) {
	args := m.Called(ctx, tenantID, productID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockInventoryService) DeleteProduct(ctx context.Context, tenantID uuid.UUID, productID uuid.UUID) error {
	args := m.Called(ctx, tenantID, productID)
	return args.Error(0)
}

func (m *MockInventoryService) AdjustStock(ctx context.Context, tenantID uuid.UUID, userID uuid.UUID, productID uuid.UUID, input service.StockAdjustmentInput) (*domain.StockChange, error) {
	args := m.Called(ctx, tenantID, userID, productID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockChange), args.Error(1)
}

func (m *MockInventoryService) ListLowStock(ctx context.Context, tenantID uuid.UUID) ([]domain.Product, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockInventoryService) ListMovements(ctx context.Context, tenantID uuid.UUID, productID uuid.UUID, offset int, limit int) ([]domain.StockMovement, int, error) {
	args := m.Called(ctx, tenantID, productID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.StockMovement), args.Int(1), args.Error(2)
}

func (m *MockInventoryService) ApplyRates(ctx context.Context, tenantID uuid.UUID, rates map[string]float64) (int, int, error) {
	args := m.Called(ctx, tenantID, rates)
	return args.Int(0), args.Int(1), args.Error(2)
}
