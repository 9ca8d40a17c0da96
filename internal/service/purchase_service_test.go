package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/logger"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/service"
	"github.com/cloudpospro-design/gold-jwellery-erp/mocks"
)

type purchaseMocks struct {
	tx        *mocks.MockTxManager
	tenants   *mocks.MockTenantRepo
	suppliers *mocks.MockSupplierRepo
	orders    *mocks.MockPurchaseOrderRepo
	products  *mocks.MockProductRepo
	movements *mocks.MockStockMovementRepo
	oldGold   *mocks.MockOldGoldRepo
	numbers   *mocks.MockDocumentNumberer
	cache     *mocks.MockReportCache
}

func newPurchaseService() (service.PurchaseService, *purchaseMocks) {
	m := &purchaseMocks{
		tx:        new(mocks.MockTxManager),
		tenants:   new(mocks.MockTenantRepo),
		suppliers: new(mocks.MockSupplierRepo),
		orders:    new(mocks.MockPurchaseOrderRepo),
		products:  new(mocks.MockProductRepo),
		movements: new(mocks.MockStockMovementRepo),
		oldGold:   new(mocks.MockOldGoldRepo),
		numbers:   new(mocks.MockDocumentNumberer),
		cache:     new(mocks.MockReportCache),
	}
	svc := service.NewPurchaseService(service.PurchaseDeps{
		Tx:          m.tx,
		Tenants:     m.tenants,
		Suppliers:   m.suppliers,
		Orders:      m.orders,
		Products:    m.products,
		Movements:   m.movements,
		OldGold:     m.oldGold,
		Numbers:     m.numbers,
		ReportCache: m.cache,
		Log:         logger.Discard(),
	})
	return svc, m
}

func TestPurchaseService_CreateSupplier_Defaults(t *testing.T) {
	svc, m := newPurchaseService()
	m.suppliers.On("Create", mock.Anything, mock.AnythingOfType("*domain.Supplier")).Return(nil)

	s, err := svc.CreateSupplier(context.Background(), uuid.New(), service.CreateSupplierInput{
		Name:  "Shree Bullion",
		Phone: "98765 43210",
		GSTIN: "27aapfu0939f1zv",
	})

	require.NoError(t, err)
	assert.Equal(t, "Net 30", s.PaymentTerms)
	assert.Equal(t, "+919876543210", s.Phone)
	assert.Equal(t, "27AAPFU0939F1ZV", s.GSTIN)
	assert.Equal(t, "Maharashtra", s.State)
}

func TestPurchaseService_CreateSupplier_InvalidPhone(t *testing.T) {
	svc, m := newPurchaseService()

	_, err := svc.CreateSupplier(context.Background(), uuid.New(), service.CreateSupplierInput{
		Name:  "Bad",
		Phone: "12",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidPhone)
	m.suppliers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPurchaseService_CreateOrder_Totals(t *testing.T) {
	svc, m := newPurchaseService()
	tenantID, userID, supplierID := uuid.New(), uuid.New(), uuid.New()
	ring, chain := uuid.New(), uuid.New()

	m.tenants.On("GetByID", mock.Anything, tenantID).Return(&domain.Tenant{ID: tenantID, POPrefix: "PO"}, nil)
	m.tx.On("RunInTx", mock.Anything).Return(nil)
	m.suppliers.On("GetByID", mock.Anything, tenantID, supplierID).Return(&domain.Supplier{
		ID: supplierID, Name: "Shree Bullion", GSTIN: "27AAPFU0939F1ZV", State: "Maharashtra",
	}, nil)
	m.products.On("GetByID", mock.Anything, tenantID, ring).Return(&domain.Product{ID: ring, Name: "Ring", GSTRate: 3}, nil)
	m.products.On("GetByID", mock.Anything, tenantID, chain).Return(&domain.Product{ID: chain, Name: "Chain", GSTRate: 3}, nil)
	m.numbers.On("Next", mock.Anything, tenantID, domain.CounterPO, "PO").Return("PO-2025-00001", nil)
	m.orders.On("Create", mock.Anything, mock.AnythingOfType("*domain.PurchaseOrder")).Return(nil)

	five := 5.0
	po, err := svc.CreateOrder(context.Background(), tenantID, userID, service.CreatePurchaseOrderInput{
		SupplierID: supplierID,
		Items: []service.PurchaseItemInput{
			{ProductID: ring, Quantity: 2, UnitPrice: 3000},
			{ProductID: chain, Quantity: 1, UnitPrice: 4000, GSTRate: &five},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "PO-2025-00001", po.PONumber)
	assert.Equal(t, "27AAPFU0939F1ZV", po.SupplierGSTIN)
	assert.Equal(t, "Maharashtra", po.SupplierState)
	assert.Equal(t, 10000.0, po.Subtotal)
	assert.Equal(t, 380.0, po.GSTTotal)
	assert.Equal(t, 10380.0, po.GrandTotal)
	assert.Equal(t, domain.POStatusPending, po.Status)
	require.Len(t, po.Items, 2)
	assert.Equal(t, 5.0, po.Items[1].GSTRate)
}

func TestPurchaseService_ReceiveOrder_IncrementsStockOnce(t *testing.T) {
	svc, m := newPurchaseService()
	tenantID, userID, poID, supplierID, productID := uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New()

	m.tx.On("RunInTx", mock.Anything).Return(nil)
	m.orders.On("MarkReceived", mock.Anything, tenantID, poID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	m.orders.On("GetByID", mock.Anything, tenantID, poID).Return(&domain.PurchaseOrder{
		ID: poID, PONumber: "PO-2025-00003", SupplierID: supplierID, GrandTotal: 6180,
		Items: []domain.PurchaseOrderItem{{ProductID: productID, ProductName: "Ring", Quantity: 2}},
	}, nil)
	m.products.On("AdjustStock", mock.Anything, tenantID, productID, 2).Return(&domain.StockChange{ProductID: productID, Quantity: 7}, nil)
	m.movements.On("Create", mock.Anything, mock.MatchedBy(func(mv *domain.StockMovement) bool {
		return mv.Change == 2 && mv.QuantityAfter == 7 && mv.Reason == "purchase" && mv.Reference == "PO-2025-00003"
	})).Return(nil)
	m.suppliers.On("AddPurchases", mock.Anything, tenantID, supplierID, 6180.0).Return(nil)
	m.cache.On("Bump", mock.Anything, tenantID).Return(nil)

	po, err := svc.ReceiveOrder(context.Background(), tenantID, userID, poID)
	require.NoError(t, err)
	assert.Equal(t, "PO-2025-00003", po.PONumber)

	m.orders.On("MarkReceived", mock.Anything, tenantID, poID, mock.AnythingOfType("time.Time")).Return(domain.ErrPOAlreadyReceived)
	_, err = svc.ReceiveOrder(context.Background(), tenantID, userID, poID)
	assert.ErrorIs(t, err, domain.ErrPOAlreadyReceived)

	m.products.AssertNumberOfCalls(t, "AdjustStock", 1)
	m.suppliers.AssertNumberOfCalls(t, "AddPurchases", 1)
	m.cache.AssertNumberOfCalls(t, "Bump", 1)
}

func TestPurchaseService_CreateOldGold_TotalValue(t *testing.T) {
	svc, m := newPurchaseService()
	m.oldGold.On("Create", mock.Anything, mock.AnythingOfType("*domain.OldGoldExchange")).Return(nil)

	e, err := svc.CreateOldGold(context.Background(), uuid.New(), uuid.New(), service.CreateOldGoldInput{
		CustomerName: "Meena",
		Purity:       "22k",
		Weight:       12.345,
		RatePerGram:  5800,
	})

	require.NoError(t, err)
	assert.Equal(t, "22K", e.Purity)
	assert.Equal(t, 71601.0, e.TotalValue)
}
