package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
)

// MockGoldRateRepo is a mock implementation of port.GoldRateRepository.
type MockGoldRateRepo struct {
	mock.Mock
}

func (m *MockGoldRateRepo) DeactivateDay(ctx context.Context, tenantID uuid.UUID, day time.Time) error {
	args := m.Called(ctx, tenantID, day)
	return args.Error(0)
}

func (m *MockGoldRateRepo) Create(ctx context.Context, r *domain.GoldRate) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockGoldRateRepo) Current(ctx context.Context, tenantID uuid.UUID) ([]domain.GoldRate, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GoldRate), args.Error(1)
}

func (m *MockGoldRateRepo) History(ctx context.Context, tenantID uuid.UUID, purity string, since time.Time) ([]domain.GoldRate, error) {
	args := m.Called(ctx, tenantID, purity, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GoldRate), args.Error(1)
}

func (m *MockGoldRateRepo) Latest(ctx context.Context, tenantID uuid.UUID, purity string) (*domain.GoldRate, error) {
	args := m.Called(ctx, tenantID, purity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GoldRate), args.Error(1)
}
