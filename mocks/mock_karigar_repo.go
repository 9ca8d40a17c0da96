package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
)

// MockKarigarRepo is a mock implementation of port.KarigarRepository.
type MockKarigarRepo struct {
	mock.Mock
}

func (m *MockKarigarRepo) Create(ctx context.Context, k *domain.Karigar) error {
	args := m.Called(ctx, k)
	return args.Error(0)
}

func (m *MockKarigarRepo) GetByID(ctx context.Context, tenantID uuid.UUID, karigarID uuid.UUID) (*domain.Karigar, error) {
	args := m.Called(ctx, tenantID, karigarID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Karigar), args.Error(1)
}

func (m *MockKarigarRepo) List(ctx context.Context, tenantID uuid.UUID, status domain.KarigarStatus, offset int, limit int) ([]domain.Karigar, int, error) {
	args := m.Called(ctx, tenantID, status, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Karigar), args.Int(1), args.Error(2)
}

func (m *MockKarigarRepo) Update(ctx context.Context, k *domain.Karigar) error {
	args := m.Called(ctx, k)
	return args.Error(0)
}

func (m *MockKarigarRepo) IncrementJobs(ctx context.Context, tenantID uuid.UUID, karigarID uuid.UUID) error {
	args := m.Called(ctx, tenantID, karigarID)
	return args.Error(0)
}

func (m *MockKarigarRepo) AddEarnings(ctx context.Context, tenantID uuid.UUID, karigarID uuid.UUID, amount float64) error {
	args := m.Called(ctx, tenantID, karigarID, amount)
	return args.Error(0)
}
