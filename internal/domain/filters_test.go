package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
)

func TestParseDateRange(t *testing.T) {
	r, err := domain.ParseDateRange("2025-01-01", "2025-01-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), r.From)
	assert.Equal(t, time.Date(2025, 1, 31, 23, 59, 59, 999999999, time.UTC), r.To)

	_, err = domain.ParseDateRange("2025-02-01", "2025-01-31")
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

	_, err = domain.ParseDateRange("01/01/2025", "2025-01-31")
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestJobStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to domain.JobStatus
		want     bool
	}{
		{domain.JobPending, domain.JobInProgress, true},
		{domain.JobInProgress, domain.JobCompleted, true},
		{domain.JobCompleted, domain.JobDelivered, true},
		{domain.JobPending, domain.JobCancelled, true},
		{domain.JobInProgress, domain.JobCancelled, true},
		{domain.JobCompleted, domain.JobCancelled, false},
		{domain.JobDelivered, domain.JobPending, false},
		{domain.JobCancelled, domain.JobInProgress, false},
		{domain.JobCompleted, domain.JobInProgress, false},
		{domain.JobPending, domain.JobPending, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStockChange_CrossedLowStock(t *testing.T) {
	assert.True(t, domain.StockChange{IsLowStock: true, WasLowStock: false}.CrossedLowStock())
	assert.False(t, domain.StockChange{IsLowStock: true, WasLowStock: true}.CrossedLowStock())
	assert.False(t, domain.StockChange{IsLowStock: false}.CrossedLowStock())
}
