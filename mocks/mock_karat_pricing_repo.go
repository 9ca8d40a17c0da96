package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
)

// MockKaratPricingRepo is a mock implementation of port.KaratPricingRepository.
type MockKaratPricingRepo struct {
	mock.Mock
}

func (m *MockKaratPricingRepo) Upsert(ctx context.Context, kp *domain.KaratPricing) error {
	args := m.Called(ctx, kp)
	return args.Error(0)
}

func (m *MockKaratPricingRepo) Get(ctx context.Context, tenantID uuid.UUID, karat string) (*domain.KaratPricing, error) {
	args := m.Called(ctx, tenantID, karat)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.KaratPricing), args.Error(1)
}

func (m *MockKaratPricingRepo) List(ctx context.Context, tenantID uuid.UUID) ([]domain.KaratPricing, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.KaratPricing), args.Error(1)
}
