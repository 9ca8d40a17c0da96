package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
)

// MockAnalyticsService is a mock implementation of service.AnalyticsService.
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) Customer(ctx context.Context, tenantID uuid.UUID, customerID uuid.UUID) (*domain.CustomerAnalytics, error) {
	args := m.Called(ctx, tenantID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomerAnalytics), args.Error(1)
}

func (m *MockAnalyticsService) TopCustomers(ctx context.Context, tenantID uuid.UUID, limit int) ([]domain.TopCustomer, error) {
	args := m.Called(ctx, tenantID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TopCustomer), args.Error(1)
}

func (m *MockAnalyticsService) SalesTrends(ctx context.Context, tenantID uuid.UUID, days int) ([]domain.SalesTrend, error) {
	args := m.Called(ctx, tenantID, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalesTrend), args.Error(1)
}

func (m *MockAnalyticsService) ProductPerformance(ctx context.Context, tenantID uuid.UUID, limit int) ([]domain.ProductPerformance, error) {
	args := m.Called(ctx, tenantID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProductPerformance), args.Error(1)
}

func (m *MockAnalyticsService) Dashboard(ctx context.Context, tenantID uuid.UUID) (*domain.DashboardSummary, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardSummary), args.Error(1)
}
