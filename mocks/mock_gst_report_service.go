package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/gstreport"
)

// MockGSTReportService is a mock implementation of service.GSTReportService.
type MockGSTReportService struct {
	mock.Mock
}

func (m *MockGSTReportService) GSTR1(ctx context.Context, tenantID uuid.UUID, from string, to string) (*gstreport.GSTR1, error) {
	args := m.Called(ctx, tenantID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gstreport.GSTR1), args.Error(1)
}

func (m *MockGSTReportService) HSNSummary(ctx context.Context, tenantID uuid.UUID, from string, to string) (*gstreport.HSNSummary, error) {
	args := m.Called(ctx, tenantID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gstreport.HSNSummary), args.Error(1)
}

func (m *MockGSTReportService) GSTR3B(ctx context.Context, tenantID uuid.UUID, from string, to string) (*gstreport.GSTR3B, error) {
	args := m.Called(ctx, tenantID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gstreport.GSTR3B), args.Error(1)
}

func (m *MockGSTReportService) ITCReconciliation(ctx context.Context, tenantID uuid.UUID, from string, to string) (*gstreport.ITCReconciliation, error) {
	args := m.Called(ctx, tenantID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gstreport.ITCReconciliation), args.Error(1)
}
