package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
)

// MockDocumentNumberer is a mock implementation of service.DocumentNumberer.
type MockDocumentNumberer struct {
	mock.Mock
}

func (m *MockDocumentNumberer) Next(ctx context.Context, tenantID uuid.UUID, kind domain.CounterKind, prefix string) (string, error) {
	args := m.Called(ctx, tenantID, kind, prefix)
	return args.String(0), args.Error(1)
}
