package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/service"
)

// MockSaleService is a mock implementation of service.SaleService.
type MockSaleService struct {
	mock.Mock
}

func (m *MockSaleService) Create(ctx context.Context, tenantID uuid.UUID, userID uuid.UUID, input service.CreateSaleInput) (*domain.Sale, error) {
	args := m.Called(ctx, tenantID, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleService) GetByID(ctx context.Context, tenantID uuid.UUID, saleID uuid.UUID) (*domain.Sale, error) {
	args := m.Called(ctx, tenantID, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleService) List(ctx context.Context, tenantID uuid.UUID, filter domain.SaleFilter, offset int, limit int) ([]domain.Sale, int, error) {
	args := m.Called(ctx, tenantID, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Sale), args.Int(1), args.Error(2)
}

func (m *MockSaleService) Summary(ctx context.Context, tenantID uuid.UUID) (*domain.SalesSummary, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalesSummary), args.Error(1)
}
