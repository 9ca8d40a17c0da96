package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/logger"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/port"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/service"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/validator"
	"github.com/cloudpospro-design/gold-jwellery-erp/mocks"
)

type inventoryMocks struct {
	tx            *mocks.MockTxManager
	categories    *mocks.MockCategoryRepo
	products      *mocks.MockProductRepo
	movements     *mocks.MockStockMovementRepo
	notifications *mocks.MockNotificationService
}

func newInventoryService(hsn *validator.HSNLookup) (service.InventoryService, *inventoryMocks) {
	m := &inventoryMocks{
		tx:            new(mocks.MockTxManager),
		categories:    new(mocks.MockCategoryRepo),
		products:      new(mocks.MockProductRepo),
		movements:     new(mocks.MockStockMovementRepo),
		notifications: new(mocks.MockNotificationService),
	}
	svc := service.NewInventoryService(service.InventoryDeps{
		Tx:            m.tx,
		Categories:    m.categories,
		Products:      m.products,
		Movements:     m.movements,
		Notifications: m.notifications,
		HSN:           hsn,
		Log:           logger.Discard(),
	})
	return svc, m
}

func TestInventoryService_CreateProduct_DerivesSellingPrice(t *testing.T) {
	svc, m := newInventoryService(nil)
	m.products.On("Create", mock.Anything, mock.AnythingOfType("*domain.Product")).Return(nil)

	p, err := svc.CreateProduct(context.Background(), uuid.New(), service.CreateProductInput{
		Name:      "Bangle",
		SKU:       "BNG-01",
		Purity:    "22k",
		BasePrice: 35000,
		Quantity:  10,
	})

	require.NoError(t, err)
	assert.Equal(t, 36050.0, p.SellingPrice)
	assert.Equal(t, 3.0, p.GSTRate)
	assert.Equal(t, "22K", p.Purity)
	assert.Equal(t, service.DefaultJewelleryHSN, p.HSNCode)
	assert.False(t, p.IsLowStock)
}

func TestInventoryService_CreateProduct_LowStockFlag(t *testing.T) {
	svc, m := newInventoryService(nil)
	m.products.On("Create", mock.Anything, mock.AnythingOfType("*domain.Product")).Return(nil)

	threshold := 3
	p, err := svc.CreateProduct(context.Background(), uuid.New(), service.CreateProductInput{
		Name:              "Chain",
		SKU:               "CHN-01",
		BasePrice:         1000,
		Quantity:          3,
		LowStockThreshold: &threshold,
	})

	require.NoError(t, err)
	assert.True(t, p.IsLowStock)
}

func TestInventoryService_CreateProduct_HSNMasterCheck(t *testing.T) {
	hsn := validator.NewHSNLookup([]port.HSNEntry{{Code: "7113", Description: "Articles of jewellery", GSTRate: 3}})
	svc, m := newInventoryService(hsn)
	m.products.On("Create", mock.Anything, mock.AnythingOfType("*domain.Product")).Return(nil)

	_, err := svc.CreateProduct(context.Background(), uuid.New(), service.CreateProductInput{
		Name: "Ring", SKU: "R-1", HSNCode: "71131910",
	})
	assert.NoError(t, err)

	_, err = svc.CreateProduct(context.Background(), uuid.New(), service.CreateProductInput{
		Name: "Coin", SKU: "C-1", HSNCode: "71081200",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidHSN)

	_, err = svc.CreateProduct(context.Background(), uuid.New(), service.CreateProductInput{
		Name: "Bad", SKU: "B-1", HSNCode: "71A",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidHSN)
	m.products.AssertNumberOfCalls(t, "Create", 1)
}

func TestInventoryService_AdjustStock_NotifiesOnCrossing(t *testing.T) {
	svc, m := newInventoryService(nil)
	tenantID, userID, productID := uuid.New(), uuid.New(), uuid.New()
	change := &domain.StockChange{ProductID: productID, Quantity: 2, Threshold: 5, IsLowStock: true}

	m.tx.On("RunInTx", mock.Anything).Return(nil)
	m.products.On("AdjustStock", mock.Anything, tenantID, productID, -3).Return(change, nil)
	m.movements.On("Create", mock.Anything, mock.MatchedBy(func(mv *domain.StockMovement) bool {
		return mv.Change == -3 && mv.QuantityAfter == 2 && mv.Reason == "damaged"
	})).Return(nil)
	m.notifications.On("NotifyLowStock", mock.Anything, tenantID, []domain.StockChange{*change}).Return(nil)

	got, err := svc.AdjustStock(context.Background(), tenantID, userID, productID, service.StockAdjustmentInput{
		QuantityChange: -3,
		Reason:         "damaged",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, got.Quantity)
	m.movements.AssertExpectations(t)
	m.notifications.AssertExpectations(t)
}

func TestInventoryService_AdjustStock_AlreadyLowDoesNotRenotify(t *testing.T) {
	svc, m := newInventoryService(nil)
	tenantID, productID := uuid.New(), uuid.New()
	change := &domain.StockChange{ProductID: productID, Quantity: 1, Threshold: 5, IsLowStock: true, WasLowStock: true}

	m.tx.On("RunInTx", mock.Anything).Return(nil)
	m.products.On("AdjustStock", mock.Anything, tenantID, productID, -1).Return(change, nil)
	m.movements.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.AdjustStock(context.Background(), tenantID, uuid.New(), productID, service.StockAdjustmentInput{QuantityChange: -1})

	require.NoError(t, err)
	m.notifications.AssertNotCalled(t, "NotifyLowStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestInventoryService_AdjustStock_Insufficient(t *testing.T) {
	svc, m := newInventoryService(nil)
	tenantID, productID := uuid.New(), uuid.New()

	m.tx.On("RunInTx", mock.Anything).Return(nil)
	m.products.On("AdjustStock", mock.Anything, tenantID, productID, -10).Return(nil, domain.ErrInsufficientStock)

	got, err := svc.AdjustStock(context.Background(), tenantID, uuid.New(), productID, service.StockAdjustmentInput{QuantityChange: -10})

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	m.movements.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestInventoryService_ApplyRates(t *testing.T) {
	svc, m := newInventoryService(nil)
	tenantID := uuid.New()
	ok, broken := uuid.New(), uuid.New()

	m.products.On("ListByPurities", mock.Anything, tenantID, []string{"22K"}).Return([]domain.Product{
		{ID: ok, Purity: "22K", GoldWeight: 5, MakingCharges: 2500, GSTRate: 3},
		{ID: broken, Purity: "22K", GoldWeight: 1, GSTRate: 3},
	}, nil)
	m.products.On("UpdatePricing", mock.Anything, tenantID, ok, 35000.0, 36050.0).Return(nil)
	m.products.On("UpdatePricing", mock.Anything, tenantID, broken, 6500.0, 6695.0).Return(errors.New("db down"))

	updated, failed, err := svc.ApplyRates(context.Background(), tenantID, map[string]float64{"22k": 6500})

	require.NoError(t, err)
	assert.Equal(t, 1, updated)
	assert.Equal(t, 1, failed)
	m.products.AssertExpectations(t)
}
