package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/service"
)

// MockGoldRateService is a mock implementation of service.GoldRateService.
type MockGoldRateService struct {
	mock.Mock
}

func (m *MockGoldRateService) SetRates(ctx context.Context, tenantID uuid.UUID, userID uuid.UUID, input service.SetRatesInput) (*service.CurrentRates, error) {
	args := m.Called(ctx, tenantID, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CurrentRates), args.Error(1)
}

func (m *MockGoldRateService) Current(ctx context.Context, tenantID uuid.UUID) (*service.CurrentRates, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CurrentRates), args.Error(1)
}

func (m *MockGoldRateService) History(ctx context.Context, tenantID uuid.UUID, purity string, days int) ([]service.RateHistoryItem, error) {
	args := m.Called(ctx, tenantID, purity, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.RateHistoryItem), args.Error(1)
}

func (m *MockGoldRateService) Latest(ctx context.Context, tenantID uuid.UUID, purity string) (*domain.GoldRate, error) {
	args := m.Called(ctx, tenantID, purity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GoldRate), args.Error(1)
}

func (m *MockGoldRateService) ApplyToProducts(ctx context.Context, tenantID uuid.UUID) (*service.ApplyRatesResult, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ApplyRatesResult), args.Error(1)
}
