package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
)

// MockBarcodeRepo is a mock implementation of port.BarcodeRepository.
type MockBarcodeRepo struct {
	mock.Mock
}

func (m *MockBarcodeRepo) Create(ctx context.Context, b *domain.Barcode) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBarcodeRepo) GetByProduct(ctx context.Context, tenantID uuid.UUID, productID uuid.UUID) (*domain.Barcode, error) {
	args := m.Called(ctx, tenantID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Barcode), args.Error(1)
}

func (m *MockBarcodeRepo) GetByValue(ctx context.Context, tenantID uuid.UUID, value string) (*domain.Barcode, error) {
	args := m.Called(ctx, tenantID, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Barcode), args.Error(1)
}

func (m *MockBarcodeRepo) List(ctx context.Context, tenantID uuid.UUID, barcodeType domain.BarcodeType, offset int, limit int) ([]domain.Barcode, int, error) {
	args := m.Called(ctx, tenantID, barcodeType, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Barcode), args.Int(1), args.Error(2)
}

func (m *MockBarcodeRepo) DeleteByProduct(ctx context.Context, tenantID uuid.UUID, productID uuid.UUID) error {
	args := m.Called(ctx, tenantID, productID)
	return args.Error(0)
}
