package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
)

// MockKarigarJobRepo is a mock implementation of port.KarigarJobRepository.
type MockKarigarJobRepo struct {
	mock.Mock
}

func (m *MockKarigarJobRepo) Create(ctx context.Context, j *domain.KarigarJob) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *MockKarigarJobRepo) GetByID(ctx context.Context, tenantID uuid.UUID, jobID uuid.UUID) (*domain.KarigarJob, error) {
	args := m.Called(ctx, tenantID, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.KarigarJob), args.Error(1)
}

func (m *MockKarigarJobRepo) List(ctx context.Context, tenantID uuid.UUID, filter domain.JobFilter, offset int, limit int) ([]domain.KarigarJob, int, error) {
	args := m.Called(ctx, tenantID, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.KarigarJob), args.Int(1), args.Error(2)
}

func (m *MockKarigarJobRepo) ListByKarigar(ctx context.Context, tenantID uuid.UUID, karigarID uuid.UUID) ([]domain.KarigarJob, error) {
	args := m.Called(ctx, tenantID, karigarID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.KarigarJob), args.Error(1)
}

func (m *MockKarigarJobRepo) Update(ctx context.Context, j *domain.KarigarJob) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}
