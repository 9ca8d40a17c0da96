package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/numbering"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/service"
	"github.com/cloudpospro-design/gold-jwellery-erp/mocks"
)

func TestDocumentNumberer_FirstInvoiceOfYear(t *testing.T) {
	counters := new(mocks.MockCounterRepo)
	n := service.NewDocumentNumberer(counters, numbering.PolicyReset)
	tenantID := uuid.New()
	year := time.Now().Year()

	counters.On("Bump", mock.Anything, tenantID, domain.CounterInvoice, year).Return(0, false, nil)
	counters.On("LastDocumentNumber", mock.Anything, tenantID, domain.CounterInvoice).Return("", nil)
	counters.On("Seed", mock.Anything, tenantID, domain.CounterInvoice, year, 0).Return(1, nil)

	got, err := n.Next(context.Background(), tenantID, domain.CounterInvoice, "INV")

	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("INV-%d-00001", year), got)
}

func TestDocumentNumberer_ExistingCounterIsBumped(t *testing.T) {
	counters := new(mocks.MockCounterRepo)
	n := service.NewDocumentNumberer(counters, numbering.PolicyReset)
	tenantID := uuid.New()
	year := time.Now().Year()

	counters.On("Bump", mock.Anything, tenantID, domain.CounterPO, year).Return(42, true, nil).Once()
	counters.On("Bump", mock.Anything, tenantID, domain.CounterPO, year).Return(43, true, nil).Once()

	first, err := n.Next(context.Background(), tenantID, domain.CounterPO, "PO")
	require.NoError(t, err)
	second, err := n.Next(context.Background(), tenantID, domain.CounterPO, "PO")
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("PO-%d-00042", year), first)
	assert.Equal(t, fmt.Sprintf("PO-%d-00043", year), second)
	assert.Less(t, first, second)
	counters.AssertNotCalled(t, "LastDocumentNumber", mock.Anything, mock.Anything, mock.Anything)
}

func TestDocumentNumberer_SeedsFromLastStoredNumber(t *testing.T) {
	counters := new(mocks.MockCounterRepo)
	n := service.NewDocumentNumberer(counters, numbering.PolicyReset)
	tenantID := uuid.New()
	year := time.Now().Year()
	last := fmt.Sprintf("INV-%d-00017", year)

	counters.On("Bump", mock.Anything, tenantID, domain.CounterInvoice, year).Return(0, false, nil)
	counters.On("LastDocumentNumber", mock.Anything, tenantID, domain.CounterInvoice).Return(last, nil)
	counters.On("Seed", mock.Anything, tenantID, domain.CounterInvoice, year, 17).Return(18, nil)

	got, err := n.Next(context.Background(), tenantID, domain.CounterInvoice, "INV")

	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("INV-%d-00018", year), got)
}

func TestDocumentNumberer_JobNumbersHaveNoYear(t *testing.T) {
	counters := new(mocks.MockCounterRepo)
	n := service.NewDocumentNumberer(counters, numbering.PolicyReset)
	tenantID := uuid.New()

	counters.On("Bump", mock.Anything, tenantID, domain.CounterJob, 0).Return(0, false, nil)
	counters.On("LastDocumentNumber", mock.Anything, tenantID, domain.CounterJob).Return("JOB-000009", nil)
	counters.On("Seed", mock.Anything, tenantID, domain.CounterJob, 0, 9).Return(10, nil)

	got, err := n.Next(context.Background(), tenantID, domain.CounterJob, "")

	require.NoError(t, err)
	assert.Equal(t, "JOB-000010", got)
}

func TestDocumentNumberer_StrictPolicyRejectsMalformed(t *testing.T) {
	counters := new(mocks.MockCounterRepo)
	n := service.NewDocumentNumberer(counters, numbering.PolicyStrict)
	tenantID := uuid.New()
	year := time.Now().Year()

	counters.On("Bump", mock.Anything, tenantID, domain.CounterInvoice, year).Return(0, false, nil)
	counters.On("LastDocumentNumber", mock.Anything, tenantID, domain.CounterInvoice).Return("garbage", nil)

	_, err := n.Next(context.Background(), tenantID, domain.CounterInvoice, "INV")

	assert.ErrorIs(t, err, domain.ErrMalformedDocumentNumber)
	counters.AssertNotCalled(t, "Seed", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
