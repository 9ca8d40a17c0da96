package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/pricing"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/service"
)

// MockKaratPricingService is a mock implementation of service.KaratPricingService.
type MockKaratPricingService struct {
	mock.Mock
}

func (m *MockKaratPricingService) Upsert(ctx context.Context, tenantID uuid.UUID, input service.UpsertKaratPricingInput) (*domain.KaratPricing, error) {
	args := m.Called(ctx, tenantID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.KaratPricing), args.Error(1)
}

func (m *MockKaratPricingService) Patch(ctx context.Context, tenantID uuid.UUID, karat string, input service.PatchKaratPricingInput) (*domain.KaratPricing, error) {
	args := m.Called(ctx, tenantID, karat, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.KaratPricing), args.Error(1)
}

func (m *MockKaratPricingService) Get(ctx context.Context, tenantID uuid.UUID, karat string) (*domain.KaratPricing, error) {
	args := m.Called(ctx, tenantID, karat)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.KaratPricing), args.Error(1)
}

func (m *MockKaratPricingService) List(ctx context.Context, tenantID uuid.UUID) ([]domain.KaratPricing, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.KaratPricing), args.Error(1)
}

func (m *MockKaratPricingService) Calculate(ctx context.Context, tenantID uuid.UUID, input pricing.Input) (*pricing.Breakdown, error) {
	args := m.Called(ctx, tenantID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.Breakdown), args.Error(1)
}

func (m *MockKaratPricingService) InitializeDefaults(ctx context.Context, tenantID uuid.UUID) ([]domain.KaratPricing, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.KaratPricing), args.Error(1)
}
