package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
)

// MockEInvoiceRepo is a mock implementation of port.EInvoiceRepository.
type MockEInvoiceRepo struct {
	mock.Mock
}

func (m *MockEInvoiceRepo) Create(ctx context.Context, e *domain.EInvoice) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEInvoiceRepo) GetByID(ctx context.Context, tenantID uuid.UUID, id uuid.UUID) (*domain.EInvoice, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EInvoice), args.Error(1)
}

func (m *MockEInvoiceRepo) GetBySale(ctx context.Context, tenantID uuid.UUID, saleID uuid.UUID) (*domain.EInvoice, error) {
	args := m.Called(ctx, tenantID, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EInvoice), args.Error(1)
}

func (m *MockEInvoiceRepo) Cancel(ctx context.Context, tenantID uuid.UUID, id uuid.UUID, reason string, at time.Time) error {
	args := m.Called(ctx, tenantID, id, reason, at)
	return args.Error(0)
}
