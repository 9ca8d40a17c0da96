package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
)

// MockOldGoldRepo is a mock implementation of port.OldGoldRepository.
type MockOldGoldRepo struct {
	mock.Mock
}

func (m *MockOldGoldRepo) Create(ctx context.Context, e *domain.OldGoldExchange) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockOldGoldRepo) List(ctx context.Context, tenantID uuid.UUID, offset int, limit int) ([]domain.OldGoldExchange, int, error) {
	args := m.Called(ctx, tenantID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.OldGoldExchange), args.Int(1), args.Error(2)
}
