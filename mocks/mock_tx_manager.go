package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockTxManager is a mock implementation of port.TxManager. When the
// expectation returns nil it runs fn with the caller's context, so repository
// calls inside the transaction hit their own mocks.
type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}
