package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/service"
)

// MockKarigarService is a mock implementation of service.KarigarService.
type MockKarigarService struct {
	mock.Mock
}

func (m *MockKarigarService) Create(ctx context.Context, tenantID uuid.UUID, input service.CreateKarigarInput) (*domain.Karigar, error) {
	args := m.Called(ctx, tenantID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Karigar), args.Error(1)
}

func (m *MockKarigarService) GetByID(ctx context.Context, tenantID uuid.UUID, karigarID uuid.UUID) (*domain.Karigar, error) {
	args := m.Called(ctx, tenantID, karigarID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Karigar), args.Error(1)
}

func (m *MockKarigarService) List(ctx context.Context, tenantID uuid.UUID, status domain.KarigarStatus, offset int, limit int) ([]domain.Karigar, int, error) {
	args := m.Called(ctx, tenantID, status, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Karigar), args.Int(1), args.Error(2)
}

func (m *MockKarigarService) Update(ctx context.Context, tenantID uuid.UUID, karigarID uuid.UUID, input service.UpdateKarigarInput) (*domain.Karigar, error) {
	args := m.Called(ctx, tenantID, karigarID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Karigar), args.Error(1)
}

func (m *MockKarigarService) Summary(ctx context.Context, tenantID uuid.UUID, karigarID uuid.UUID) (*domain.KarigarSummary, error) {
	args := m.Called(ctx, tenantID, karigarID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.KarigarSummary), args.Error(1)
}

func (m *MockKarigarService) CreateJob(ctx context.Context, tenantID uuid.UUID, input service.CreateJobInput) (*domain.KarigarJob, error) {
	args := m.Called(ctx, tenantID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.KarigarJob), args.Error(1)
}

func (m *MockKarigarService) GetJob(ctx context.Context, tenantID uuid.UUID, jobID uuid.UUID) (*domain.KarigarJob, error) {
	args := m.Called(ctx, tenantID, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.KarigarJob), args.Error(1)
}

func (m *MockKarigarService) ListJobs(ctx context.Context, tenantID uuid.UUID, filter domain.JobFilter, offset int, limit int) ([]domain.KarigarJob, int, error) {
	args := m.Called(ctx, tenantID, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.KarigarJob), args.Int(1), args.Error(2)
}

func (m *MockKarigarService) UpdateJob(ctx context.Context, tenantID uuid.UUID, jobID uuid.UUID, input service.UpdateJobInput) (*domain.KarigarJob, error) {
	args := m.Called(ctx, tenantID, jobID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.KarigarJob), args.Error(1)
}
