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

type saleFixture struct {
	tx            *mocks.MockTxManager
	tenants       *mocks.MockTenantRepo
	customers     *mocks.MockCustomerRepo
	products      *mocks.MockProductRepo
	movements     *mocks.MockStockMovementRepo
	sales         *mocks.MockSaleRepo
	numbers       *mocks.MockDocumentNumberer
	notifications *mocks.MockNotificationService
	cache         *mocks.MockReportCache
	svc           service.SaleService

	tenantID   uuid.UUID
	userID     uuid.UUID
	customerID uuid.UUID
	product    *domain.Product
}

func newSaleFixture(tenantState, customerState string) *saleFixture {
	f := &saleFixture{
		tx:            new(mocks.MockTxManager),
		tenants:       new(mocks.MockTenantRepo),
		customers:     new(mocks.MockCustomerRepo),
		products:      new(mocks.MockProductRepo),
		movements:     new(mocks.MockStockMovementRepo),
		sales:         new(mocks.MockSaleRepo),
		numbers:       new(mocks.MockDocumentNumberer),
		notifications: new(mocks.MockNotificationService),
		cache:         new(mocks.MockReportCache),
		tenantID:      uuid.New(),
		userID:        uuid.New(),
		customerID:    uuid.New(),
	}
	f.product = &domain.Product{
		ID:        uuid.New(),
		TenantID:  f.tenantID,
		Name:      "Gold Ring",
		SKU:       "RING-22K-01",
		HSNCode:   "71131910",
		BasePrice: 10000,
		GSTRate:   3,
		Quantity:  4,
	}
	f.svc = service.NewSaleService(service.SaleDeps{
		Tx:            f.tx,
		Tenants:       f.tenants,
		Customers:     f.customers,
		Products:      f.products,
		Movements:     f.movements,
		Sales:         f.sales,
		Numbers:       f.numbers,
		Notifications: f.notifications,
		ReportCache:   f.cache,
		Log:           logger.Discard(),
	})

	f.tenants.On("GetByID", mock.Anything, f.tenantID).Return(&domain.Tenant{
		ID: f.tenantID, State: tenantState, InvoicePrefix: "INV",
	}, nil)
	f.tx.On("RunInTx", mock.Anything).Return(nil)
	f.customers.On("GetByID", mock.Anything, f.tenantID, f.customerID).Return(&domain.Customer{
		ID: f.customerID, Name: "Asha", State: customerState,
	}, nil)
	f.products.On("GetByID", mock.Anything, f.tenantID, f.product.ID).Return(f.product, nil)
	return f
}

func (f *saleFixture) expectHappyPath(change *domain.StockChange) {
	f.products.On("AdjustStock", mock.Anything, f.tenantID, f.product.ID, -1).Return(change, nil)
	f.numbers.On("Next", mock.Anything, f.tenantID, domain.CounterInvoice, "INV").Return("INV-2025-00001", nil)
	f.sales.On("Create", mock.Anything, mock.AnythingOfType("*domain.Sale")).Return(nil)
	f.movements.On("Create", mock.Anything, mock.AnythingOfType("*domain.StockMovement")).Return(nil)
	f.customers.On("AddPurchases", mock.Anything, f.tenantID, f.customerID, mock.AnythingOfType("float64")).Return(nil)
	f.cache.On("Bump", mock.Anything, f.tenantID).Return(nil)
}

func (f *saleFixture) input() service.CreateSaleInput {
	return service.CreateSaleInput{
		CustomerID:    f.customerID,
		Items:         []service.SaleItemInput{{ProductID: f.product.ID, Quantity: 1}},
		PaymentMethod: domain.PaymentCash,
	}
}

func TestSaleService_Create_IntraStateSplitsCGSTAndSGST(t *testing.T) {
	f := newSaleFixture("Maharashtra", "maharashtra")
	f.expectHappyPath(&domain.StockChange{ProductID: f.product.ID, Quantity: 3, Threshold: 1})

	sale, err := f.svc.Create(context.Background(), f.tenantID, f.userID, f.input())

	require.NoError(t, err)
	assert.Equal(t, "INV-2025-00001", sale.InvoiceNumber)
	assert.Equal(t, 10000.0, sale.Subtotal)
	assert.Equal(t, 150.0, sale.CGST)
	assert.Equal(t, 150.0, sale.SGST)
	assert.Equal(t, 0.0, sale.IGST)
	assert.Equal(t, 300.0, sale.TotalTax)
	assert.Equal(t, 10300.0, sale.GrandTotal)
	assert.Equal(t, domain.SaleStatusCompleted, sale.Status)
	require.Len(t, sale.Items, 1)
	assert.Equal(t, "71131910", sale.Items[0].HSNCode)

	f.customers.AssertCalled(t, "AddPurchases", mock.Anything, f.tenantID, f.customerID, 10300.0)
	f.movements.AssertCalled(t, "Create", mock.Anything, mock.MatchedBy(func(m *domain.StockMovement) bool {
		return m.Change == -1 && m.QuantityAfter == 3 && m.Reason == "sale" && m.Reference == "INV-2025-00001"
	}))
	f.notifications.AssertNotCalled(t, "NotifyLowStock", mock.Anything, mock.Anything, mock.Anything)
	f.cache.AssertExpectations(t)
}

func TestSaleService_Create_InterStateUsesIGST(t *testing.T) {
	f := newSaleFixture("Maharashtra", "Karnataka")
	f.expectHappyPath(&domain.StockChange{ProductID: f.product.ID, Quantity: 3, Threshold: 1})

	sale, err := f.svc.Create(context.Background(), f.tenantID, f.userID, f.input())

	require.NoError(t, err)
	assert.Equal(t, 0.0, sale.CGST)
	assert.Equal(t, 0.0, sale.SGST)
	assert.Equal(t, 300.0, sale.IGST)
	assert.Equal(t, 10300.0, sale.GrandTotal)
}

func TestSaleService_Create_BlankCustomerStateIsInterState(t *testing.T) {
	f := newSaleFixture("Maharashtra", "")
	f.expectHappyPath(&domain.StockChange{ProductID: f.product.ID, Quantity: 3, Threshold: 1})

	sale, err := f.svc.Create(context.Background(), f.tenantID, f.userID, f.input())

	require.NoError(t, err)
	assert.Equal(t, 300.0, sale.IGST)
}

func TestSaleService_Create_UnitPriceOverride(t *testing.T) {
	f := newSaleFixture("Maharashtra", "Maharashtra")
	f.expectHappyPath(&domain.StockChange{ProductID: f.product.ID, Quantity: 3, Threshold: 1})

	in := f.input()
	price := 9000.0
	in.Items[0].UnitPrice = &price

	sale, err := f.svc.Create(context.Background(), f.tenantID, f.userID, in)

	require.NoError(t, err)
	assert.Equal(t, 9000.0, sale.Subtotal)
	assert.Equal(t, 9270.0, sale.GrandTotal)
}

func TestSaleService_Create_LowStockCrossingNotifies(t *testing.T) {
	f := newSaleFixture("Maharashtra", "Maharashtra")
	change := &domain.StockChange{ProductID: f.product.ID, Name: "Gold Ring", Quantity: 1, Threshold: 1, IsLowStock: true}
	f.expectHappyPath(change)
	f.notifications.On("NotifyLowStock", mock.Anything, f.tenantID, []domain.StockChange{*change}).Return(nil)

	_, err := f.svc.Create(context.Background(), f.tenantID, f.userID, f.input())

	require.NoError(t, err)
	f.notifications.AssertExpectations(t)
}

func TestSaleService_Create_InsufficientStock(t *testing.T) {
	f := newSaleFixture("Maharashtra", "Maharashtra")
	f.products.On("AdjustStock", mock.Anything, f.tenantID, f.product.ID, -1).Return(nil, domain.ErrInsufficientStock)

	sale, err := f.svc.Create(context.Background(), f.tenantID, f.userID, f.input())

	assert.Nil(t, sale)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	f.sales.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.numbers.AssertNotCalled(t, "Next", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.cache.AssertNotCalled(t, "Bump", mock.Anything, mock.Anything)
}

func TestSaleService_Create_Validation(t *testing.T) {
	f := newSaleFixture("Maharashtra", "Maharashtra")

	_, err := f.svc.Create(context.Background(), f.tenantID, f.userID, service.CreateSaleInput{
		CustomerID:    f.customerID,
		PaymentMethod: domain.PaymentCash,
	})
	assert.ErrorIs(t, err, domain.ErrEmptySale)

	in := f.input()
	in.PaymentMethod = "cheque"
	_, err = f.svc.Create(context.Background(), f.tenantID, f.userID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidPaymentMethod)

	f.tx.AssertNotCalled(t, "RunInTx", mock.Anything)
}

func TestSaleService_Create_OddPaiseTaxKeepsGrandTotalIdentity(t *testing.T) {
	f := newSaleFixture("Maharashtra", "Maharashtra")
	f.expectHappyPath(&domain.StockChange{ProductID: f.product.ID, Quantity: 3, Threshold: 1})

	in := f.input()
	price := 10000.33
	in.Items[0].UnitPrice = &price

	sale, err := f.svc.Create(context.Background(), f.tenantID, f.userID, in)

	require.NoError(t, err)
	assert.Equal(t, 10000.33, sale.Subtotal)
	assert.Equal(t, 300.01, sale.TotalTax)
	assert.Equal(t, 150.01, sale.CGST)
	assert.Equal(t, 150.01, sale.SGST)
	assert.Equal(t, 10300.34, sale.GrandTotal)
	assert.Equal(t, sale.Items[0].TotalAfterTax, sale.GrandTotal)
	f.customers.AssertCalled(t, "AddPurchases", mock.Anything, f.tenantID, f.customerID, 10300.34)
}
