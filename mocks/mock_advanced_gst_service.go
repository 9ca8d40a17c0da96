package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/reconcile"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/service"
)

// MockAdvancedGSTService is a mock implementation of service.AdvancedGSTService.
type MockAdvancedGSTService struct {
	mock.Mock
}

func (m *MockAdvancedGSTService) Import(ctx context.Context, input service.ImportReturnInput) (*service.ImportResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ImportResult), args.Error(1)
}

func (m *MockAdvancedGSTService) ListGSTR2A(ctx context.Context, tenantID uuid.UUID, period string, offset int, limit int) ([]domain.GSTR2ARecord, int, error) {
	args := m.Called(ctx, tenantID, period, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.GSTR2ARecord), args.Int(1), args.Error(2)
}

func (m *MockAdvancedGSTService) ListGSTR2B(ctx context.Context, tenantID uuid.UUID, period string, offset int, limit int) ([]domain.GSTR2BRecord, int, error) {
	args := m.Called(ctx, tenantID, period, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.GSTR2BRecord), args.Int(1), args.Error(2)
}

func (m *MockAdvancedGSTService) ListImports(ctx context.Context, tenantID uuid.UUID, period string) ([]domain.GSTReturnImport, error) {
	args := m.Called(ctx, tenantID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GSTReturnImport), args.Error(1)
}

func (m *MockAdvancedGSTService) Reconcile(ctx context.Context, tenantID uuid.UUID, period string) (*reconcile.Report, error) {
	args := m.Called(ctx, tenantID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reconcile.Report), args.Error(1)
}

func (m *MockAdvancedGSTService) GenerateEInvoice(ctx context.Context, tenantID uuid.UUID, userID uuid.UUID, input service.GenerateEInvoiceInput) (*domain.EInvoice, error) {
	args := m.Called(ctx, tenantID, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EInvoice), args.Error(1)
}

func (m *MockAdvancedGSTService) CancelEInvoice(ctx context.Context, tenantID uuid.UUID, id uuid.UUID, input service.CancelEInvoiceInput) (*domain.EInvoice, error) {
	args := m.Called(ctx, tenantID, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EInvoice), args.Error(1)
}

func (m *MockAdvancedGSTService) GetEInvoiceBySale(ctx context.Context, tenantID uuid.UUID, saleID uuid.UUID) (*domain.EInvoice, error) {
	args := m.Called(ctx, tenantID, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EInvoice), args.Error(1)
}
