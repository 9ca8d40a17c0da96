package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
)

// MockSaleRepo is a mock implementation of port.SaleRepository.
type MockSaleRepo struct {
	mock.Mock
}

func (m *MockSaleRepo) Create(ctx context.Context, s *domain.Sale) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSaleRepo) GetByID(ctx context.Context, tenantID uuid.UUID, saleID uuid.UUID) (*domain.Sale, error) {
	args := m.Called(ctx, tenantID, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleRepo) List(ctx context.Context, tenantID uuid.UUID, filter domain.SaleFilter, offset int, limit int) ([]domain.Sale, int, error) {
	args := m.Called(ctx, tenantID, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Sale), args.Int(1), args.Error(2)
}

func (m *MockSaleRepo) ListCompleted(ctx context.Context, tenantID uuid.UUID, window domain.DateRange) ([]domain.Sale, error) {
	args := m.Called(ctx, tenantID, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

func (m *MockSaleRepo) Summary(ctx context.Context, tenantID uuid.UUID, dayStart time.Time) (*domain.SalesSummary, error) {
	args := m.Called(ctx, tenantID, dayStart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalesSummary), args.Error(1)
}
