package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
)

// MockAnalyticsRepo is a mock implementation of port.AnalyticsRepository.
type MockAnalyticsRepo struct {
	mock.Mock
}

func (m *MockAnalyticsRepo) CustomerPurchases(ctx context.Context, tenantID uuid.UUID, customerID uuid.UUID) ([]domain.CustomerPurchase, error) {
	args := m.Called(ctx, tenantID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CustomerPurchase), args.Error(1)
}

func (m *MockAnalyticsRepo) TopCustomers(ctx context.Context, tenantID uuid.UUID, limit int) ([]domain.TopCustomer, error) {
	args := m.Called(ctx, tenantID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TopCustomer), args.Error(1)
}

func (m *MockAnalyticsRepo) DailySales(ctx context.Context, tenantID uuid.UUID, since time.Time) ([]domain.SalesTrend, error) {
	args := m.Called(ctx, tenantID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalesTrend), args.Error(1)
}

func (m *MockAnalyticsRepo) TopProducts(ctx context.Context, tenantID uuid.UUID, limit int) ([]domain.ProductPerformance, error) {
	args := m.Called(ctx, tenantID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProductPerformance), args.Error(1)
}

func (m *MockAnalyticsRepo) SalesWindows(ctx context.Context, tenantID uuid.UUID, w domain.DashboardWindows) (*domain.SalesWindows, error) {
	args := m.Called(ctx, tenantID, w)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalesWindows), args.Error(1)
}

func (m *MockAnalyticsRepo) StockTotals(ctx context.Context, tenantID uuid.UUID) (*domain.StockTotals, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockTotals), args.Error(1)
}
