package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/pricing"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/service"
	"github.com/cloudpospro-design/gold-jwellery-erp/mocks"
)

func TestKaratPricingService_Calculate_StoredTerms(t *testing.T) {
	repo := new(mocks.MockKaratPricingRepo)
	rates := new(mocks.MockGoldRateRepo)
	svc := service.NewKaratPricingService(repo, rates)
	tenantID := uuid.New()

	repo.On("Get", mock.Anything, tenantID, "22K").Return(&domain.KaratPricing{
		Karat:               "22K",
		BaseRatePerGram:     6000,
		MakingChargePerGram: 600,
		WastagePercentage:   2.5,
		GSTPercentage:       3,
	}, nil)

	b, err := svc.Calculate(context.Background(), tenantID, pricing.Input{
		Karat:            "22k",
		WeightGrams:      10,
		MakingChargeType: pricing.MakingPerGram,
	})

	require.NoError(t, err)
	assert.Equal(t, 60000.0, b.GoldValue)
	assert.Equal(t, 6000.0, b.MakingCharges)
	assert.Equal(t, 1500.0, b.WastageCharges)
	assert.Equal(t, 1012.5, b.CGST)
	assert.Equal(t, 1012.5, b.SGST)
	assert.Equal(t, 69525.0, b.GrandTotal)
	rates.AssertNotCalled(t, "Latest", mock.Anything, mock.Anything, mock.Anything)
}

func TestKaratPricingService_Calculate_FallsBackTo24KRate(t *testing.T) {
	repo := new(mocks.MockKaratPricingRepo)
	rates := new(mocks.MockGoldRateRepo)
	svc := service.NewKaratPricingService(repo, rates)
	tenantID := uuid.New()

	repo.On("Get", mock.Anything, tenantID, "22K").Return(nil, domain.ErrNotFound)
	rates.On("Latest", mock.Anything, tenantID, "24K").Return(&domain.GoldRate{Purity: "24K", RatePerGram: 7000}, nil)

	b, err := svc.Calculate(context.Background(), tenantID, pricing.Input{Karat: "22K", WeightGrams: 1})

	require.NoError(t, err)
	assert.Equal(t, 6412.0, b.RatePerGram)
}

func TestKaratPricingService_Calculate_NoTermsNoRate(t *testing.T) {
	repo := new(mocks.MockKaratPricingRepo)
	rates := new(mocks.MockGoldRateRepo)
	svc := service.NewKaratPricingService(repo, rates)
	tenantID := uuid.New()

	repo.On("Get", mock.Anything, tenantID, "18K").Return(nil, domain.ErrNotFound)
	rates.On("Latest", mock.Anything, tenantID, "24K").Return(nil, domain.ErrGoldRateNotFound)

	b, err := svc.Calculate(context.Background(), tenantID, pricing.Input{Karat: "18K", WeightGrams: 1})

	assert.Nil(t, b)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestKaratPricingService_Calculate_UnknownKarat(t *testing.T) {
	svc := service.NewKaratPricingService(new(mocks.MockKaratPricingRepo), new(mocks.MockGoldRateRepo))

	_, err := svc.Calculate(context.Background(), uuid.New(), pricing.Input{Karat: "23K", WeightGrams: 1})

	assert.ErrorIs(t, err, domain.ErrInvalidKarat)
}
