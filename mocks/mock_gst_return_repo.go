package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
)

// MockGSTReturnRepo is a mock implementation of port.GSTReturnRepository.
type MockGSTReturnRepo struct {
	mock.Mock
}

func (m *MockGSTReturnRepo) InsertGSTR2A(ctx context.Context, records []domain.GSTR2ARecord) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

func (m *MockGSTReturnRepo) InsertGSTR2B(ctx context.Context, records []domain.GSTR2BRecord) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

func (m *MockGSTReturnRepo) ListGSTR2A(ctx context.Context, tenantID uuid.UUID, period string, offset int, limit int) ([]domain.GSTR2ARecord, int, error) {
	args := m.Called(ctx, tenantID, period, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.GSTR2ARecord), args.Int(1), args.Error(2)
}

func (m *MockGSTReturnRepo) ListGSTR2B(ctx context.Context, tenantID uuid.UUID, period string, offset int, limit int) ([]domain.GSTR2BRecord, int, error) {
	args := m.Called(ctx, tenantID, period, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.GSTR2BRecord), args.Int(1), args.Error(2)
}

func (m *MockGSTReturnRepo) AllGSTR2A(ctx context.Context, tenantID uuid.UUID, period string) ([]domain.GSTR2ARecord, error) {
	args := m.Called(ctx, tenantID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GSTR2ARecord), args.Error(1)
}

func (m *MockGSTReturnRepo) AllGSTR2B(ctx context.Context, tenantID uuid.UUID, period string) ([]domain.GSTR2BRecord, error) {
	args := m.Called(ctx, tenantID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GSTR2BRecord), args.Error(1)
}

func (m *MockGSTReturnRepo) MarkMatched(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) error {
	args := m.Called(ctx, tenantID, ids)
	return args.Error(0)
}

func (m *MockGSTReturnRepo) CreateImport(ctx context.Context, imp *domain.GSTReturnImport) error {
	args := m.Called(ctx, imp)
	return args.Error(0)
}

func (m *MockGSTReturnRepo) ListImports(ctx context.Context, tenantID uuid.UUID, period string) ([]domain.GSTReturnImport, error) {
	args := m.Called(ctx, tenantID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GSTReturnImport), args.Error(1)
}
