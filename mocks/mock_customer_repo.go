package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
)

// MockCustomerRepo is a mock implementation of port.CustomerRepository.
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepo) GetByID(ctx context.Context, tenantID uuid.UUID, customerID uuid.UUID) (*domain.Customer, error) {
	args := m.Called(ctx, tenantID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepo) List(ctx context.Context, tenantID uuid.UUID, search string, offset int, limit int) ([]domain.Customer, int, error) {
	args := m.Called(ctx, tenantID, search, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Customer), args.Int(1), args.Error(2)
}

func (m *MockCustomerRepo) AddPurchases(ctx context.Context, tenantID uuid.UUID, customerID uuid.UUID, amount float64) error {
	args := m.Called(ctx, tenantID, customerID, amount)
	return args.Error(0)
}
