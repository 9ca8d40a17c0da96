package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/port"
)

// MockTaskQueue is a mock implementation of port.TaskQueue.
type MockTaskQueue struct {
	mock.Mock
}

func (m *MockTaskQueue) EnqueueReprice(ctx context.Context, p port.RepricePayload) (string, error) {
	args := m.Called(ctx, p)
	return args.String(0), args.Error(1)
}

func (m *MockTaskQueue) EnqueueInvoiceEmail(ctx context.Context, p port.InvoiceEmailPayload) (string, error) {
	args := m.Called(ctx, p)
	return args.String(0), args.Error(1)
}
