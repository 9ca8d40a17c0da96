package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/logger"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/port"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/service"
	"github.com/cloudpospro-design/gold-jwellery-erp/mocks"
)

func newGoldRateService() (service.GoldRateService, *mocks.MockTxManager, *mocks.MockGoldRateRepo, *mocks.MockTaskQueue, *mocks.MockNotificationService) {
	tx := new(mocks.MockTxManager)
	rates := new(mocks.MockGoldRateRepo)
	queue := new(mocks.MockTaskQueue)
	notifier := new(mocks.MockNotificationService)
	svc := service.NewGoldRateService(service.GoldRateDeps{
		Tx:            tx,
		Rates:         rates,
		Queue:         queue,
		Notifications: notifier,
		Log:           logger.Discard(),
	})
	return svc, tx, rates, queue, notifier
}

func TestGoldRateService_SetRates(t *testing.T) {
	svc, tx, rates, _, notifier := newGoldRateService()
	tenantID, userID := uuid.New(), uuid.New()

	tx.On("RunInTx", mock.Anything).Return(nil)
	rates.On("DeactivateDay", mock.Anything, tenantID, mock.AnythingOfType("time.Time")).Return(nil)
	rates.On("Create", mock.Anything, mock.AnythingOfType("*domain.GoldRate")).Return(nil)
	notifier.On("NotifyRateUpdate", mock.Anything, tenantID, mock.MatchedBy(func(rs []domain.GoldRate) bool {
		return len(rs) == 2
	})).Return(nil)

	cur, err := svc.SetRates(context.Background(), tenantID, userID, service.SetRatesInput{Rates: []service.GoldRateEntry{
		{Purity: " 22k ", RatePerGram: 6500.456},
		{Purity: "24K", RatePerGram: 7100},
	}})

	require.NoError(t, err)
	require.Len(t, cur.Rates, 2)
	assert.Equal(t, "22K", cur.Rates[0].Purity)
	assert.Equal(t, 6500.46, cur.Rates[0].RatePerGram)
	assert.True(t, cur.Rates[0].IsActive)
	assert.Equal(t, userID, cur.Rates[1].CreatedBy)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), cur.Date)
	notifier.AssertExpectations(t)
}

func TestGoldRateService_SetRates_UnknownKarat(t *testing.T) {
	svc, tx, rates, _, notifier := newGoldRateService()

	tx.On("RunInTx", mock.Anything).Return(nil)
	rates.On("DeactivateDay", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	_, err := svc.SetRates(context.Background(), uuid.New(), uuid.New(), service.SetRatesInput{Rates: []service.GoldRateEntry{
		{Purity: "23K", RatePerGram: 6800},
	}})

	assert.ErrorIs(t, err, domain.ErrInvalidKarat)
	rates.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "NotifyRateUpdate", mock.Anything, mock.Anything, mock.Anything)
}

func TestGoldRateService_History_ComputesChange(t *testing.T) {
	svc, _, rates, _, _ := newGoldRateService()
	tenantID := uuid.New()
	d1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	rates.On("History", mock.Anything, tenantID, "22K", mock.AnythingOfType("time.Time")).Return([]domain.GoldRate{
		{Purity: "22K", RateDate: d1, RatePerGram: 6400},
		{Purity: "22K", RateDate: d1.AddDate(0, 0, 1), RatePerGram: 6500},
	}, nil)

	items, err := svc.History(context.Background(), tenantID, "22k", 7)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Nil(t, items[0].Change)
	require.NotNil(t, items[1].Change)
	assert.Equal(t, 100.0, *items[1].Change)
	assert.Equal(t, 1.56, *items[1].ChangePercentage)
	assert.Equal(t, "2025-01-02", items[1].Date)
}

func TestGoldRateService_ApplyToProducts(t *testing.T) {
	svc, _, rates, queue, _ := newGoldRateService()
	tenantID := uuid.New()

	rates.On("Current", mock.Anything, tenantID).Return([]domain.GoldRate{
		{Purity: "22K", RatePerGram: 6500},
		{Purity: "18K", RatePerGram: 5300},
	}, nil)
	queue.On("EnqueueReprice", mock.Anything, port.RepricePayload{
		TenantID: tenantID,
		Rates:    map[string]float64{"22K": 6500, "18K": 5300},
	}).Return("task-1", nil)

	res, err := svc.ApplyToProducts(context.Background(), tenantID)

	require.NoError(t, err)
	assert.Equal(t, "task-1", res.TaskID)
	assert.Len(t, res.Rates, 2)
}

func TestGoldRateService_ApplyToProducts_NoRates(t *testing.T) {
	svc, _, rates, queue, _ := newGoldRateService()

	rates.On("Current", mock.Anything, mock.Anything).Return([]domain.GoldRate{}, nil)

	_, err := svc.ApplyToProducts(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrGoldRateNotFound)
	queue.AssertNotCalled(t, "EnqueueReprice", mock.Anything, mock.Anything)
}
