package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
)

// MockCounterRepo is a mock implementation of port.CounterRepository.
type MockCounterRepo struct {
	mock.Mock
}

func (m *MockCounterRepo) Bump(ctx context.Context, tenantID uuid.UUID, kind domain.CounterKind, year int) (int, bool, error) {
	args := m.Called(ctx, tenantID, kind, year)
	return args.Int(0), args.Bool(1), args.Error(2)
}

func (m *MockCounterRepo) Seed(ctx context.Context, tenantID uuid.UUID, kind domain.CounterKind, year int, seed int) (int, error) {
	args := m.Called(ctx, tenantID, kind, year, seed)
	return args.Int(0), args.Error(1)
}

func (m *MockCounterRepo) LastDocumentNumber(ctx context.Context, tenantID uuid.UUID, kind domain.CounterKind) (string, error) {
	args := m.Called(ctx, tenantID, kind)
	return args.String(0), args.Error(1)
}
