package mocks

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/port"
)

// MockBroadcaster is a mock implementation of port.Broadcaster.
type MockBroadcaster struct {
	mock.Mock
}

func (m *MockBroadcaster) Publish(tenantID uuid.UUID, ev port.Event) {
	m.Called(tenantID, ev)
}
