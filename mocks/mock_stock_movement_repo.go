package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
)

// MockStockMovementRepo is a mock implementation of port.StockMovementRepository.
type MockStockMovementRepo struct {
	mock.Mock
}

func (m *MockStockMovementRepo) Create(ctx context.Context, movement *domain.StockMovement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockStockMovementRepo) ListByProduct(ctx context.Context, tenantID uuid.UUID, productID uuid.UUID, offset int, limit int) ([]domain.StockMovement, int, error) {
	args := m.Called(ctx, tenantID, productID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.StockMovement), args.Int(1), args.Error(2)
}
