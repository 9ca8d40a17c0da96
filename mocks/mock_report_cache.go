package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockReportCache is a mock implementation of port.ReportCache.
type MockReportCache struct {
	mock.Mock
}

func (m *MockReportCache) FetchJSON(ctx context.Context, tenantID uuid.UUID, key string, dest any, loader func(ctx context.Context) (any, error)) error {
	args := m.Called(ctx, tenantID, key, dest, loader)
	return args.Error(0)
}

func (m *MockReportCache) Bump(ctx context.Context, tenantID uuid.UUID) error {
	args := m.Called(ctx, tenantID)
	return args.Error(0)
}
