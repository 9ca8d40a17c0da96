package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/service"
)

// MockBarcodeService is a mock implementation of service.BarcodeService.
type MockBarcodeService struct {
	mock.Mock
}

func (m *MockBarcodeService) Generate(ctx context.Context, tenantID uuid.UUID, userID uuid.UUID, input service.GenerateBarcodeInput) (*domain.Barcode, error) {
	args := m.Called(ctx, tenantID, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Barcode), args.Error(1)
}

func (m *MockBarcodeService) Regenerate(ctx context.Context, tenantID uuid.UUID, userID uuid.UUID, productID uuid.UUID, barcodeType domain.BarcodeType) (*domain.Barcode, error) {
	args := m.Called(ctx, tenantID, userID, productID, barcodeType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Barcode), args.Error(1)
}

func (m *MockBarcodeService) GenerateBulk(ctx context.Context, tenantID uuid.UUID, userID uuid.UUID, input service.BulkBarcodeInput) (*service.BulkBarcodeResult, error) {
	args := m.Called(ctx, tenantID, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BulkBarcodeResult), args.Error(1)
}

func (m *MockBarcodeService) Scan(ctx context.Context, tenantID uuid.UUID, value string) (*service.ScanResult, error) {
	args := m.Called(ctx, tenantID, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ScanResult), args.Error(1)
}

func (m *MockBarcodeService) GetByProduct(ctx context.Context, tenantID uuid.UUID, productID uuid.UUID) (*domain.Barcode, error) {
	args := m.Called(ctx, tenantID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Barcode), args.Error(1)
}

func (m *MockBarcodeService) List(ctx context.Context, tenantID uuid.UUID, barcodeType domain.BarcodeType, offset int, limit int) ([]domain.Barcode, int, error) {
	args := m.Called(ctx, tenantID, barcodeType, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Barcode), args.Int(1), args.Error(2)
}
