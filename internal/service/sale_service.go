package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/logger"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/money"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/port"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/tax"
)

// SaleItemInput is one requested line. UnitPrice overrides the product's
// base price when set.
type SaleItemInput struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
	UnitPrice *float64  `json:"unit_price" binding:"omitempty,gte=0"`
}

// CreateSaleInput is the DTO for billing a sale.
type CreateSaleInput struct {
	CustomerID    uuid.UUID            `json:"customer_id" binding:"required"`
	Items         []SaleItemInput      `json:"items" binding:"required,min=1,dive"`
	PaymentMethod domain.PaymentMethod `json:"payment_method" binding:"required"`
	Notes         string               `json:"notes"`
}

// SaleService bills sales and exposes sale history.
type SaleService interface {
	Create(ctx context.Context, tenantID, userID uuid.UUID, input CreateSaleInput) (*domain.Sale, error)
	GetByID(ctx context.Context, tenantID, saleID uuid.UUID) (*domain.Sale, error)
	List(ctx context.Context, tenantID uuid.UUID, filter domain.SaleFilter, offset, limit int) ([]domain.Sale, int, error)
	Summary(ctx context.Context, tenantID uuid.UUID) (*domain.SalesSummary, error)
}

// SaleDeps groups the collaborators of SaleService.
type SaleDeps struct {
	Tx            port.TxManager
	Tenants       port.TenantRepository
	Customers     port.CustomerRepository
	Products      port.ProductRepository
	Movements     port.StockMovementRepository
	Sales         port.SaleRepository
	Numbers       DocumentNumberer
	Notifications NotificationService
	ReportCache   port.ReportCache
	Log           logrus.FieldLogger
}

type saleService struct {
	SaleDeps
}

// NewSaleService creates a new SaleService implementation.
func NewSaleService(d SaleDeps) SaleService {
	return &saleService{SaleDeps: d}
}

// Create bills a sale in a single transaction: stock is decremented with
// conditional updates, the invoice number is drawn, GST is split by the
// customer's state against the business state, and the customer's running
// total is increased. Nothing is written if any step fails.
func (s *saleService) Create(ctx context.Context, tenantID, userID uuid.UUID, input CreateSaleInput) (*domain.Sale, error) {
	if len(input.Items) == 0 {
		return nil, domain.ErrEmptySale
	}
	if !domain.ValidPaymentMethods[input.PaymentMethod] {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPaymentMethod, input.PaymentMethod)
	}
	tenant, err := s.Tenants.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	var (
		sale    *domain.Sale
		crossed []domain.StockChange
	)
	err = s.Tx.RunInTx(ctx, func(txCtx context.Context) error {
		crossed = crossed[:0]

		customer, err := s.Customers.GetByID(txCtx, tenantID, input.CustomerID)
		if err != nil {
			return err
		}

		items := make([]domain.SaleItem, 0, len(input.Items))
		changes := make([]*domain.StockChange, 0, len(input.Items))
		for _, in := range input.Items {
			product, err := s.Products.GetByID(txCtx, tenantID, in.ProductID)
			if err != nil {
				return err
			}
			change, err := s.Products.AdjustStock(txCtx, tenantID, in.ProductID, -in.Quantity)
			if err != nil {
				return err
			}
			changes = append(changes, change)
			if change.CrossedLowStock() {
				crossed = append(crossed, *change)
			}

			unit := product.BasePrice
			setIf(&unit, in.UnitPrice)
			line := tax.ComputeLine(float64(in.Quantity), unit, product.GSTRate)
			items = append(items, domain.SaleItem{
				ProductID:      product.ID,
				ProductName:    product.Name,
				SKU:            product.SKU,
				Quantity:       in.Quantity,
				UnitPrice:      money.Round(unit),
				HSNCode:        product.HSNCode,
				GSTRate:        product.GSTRate,
				TotalBeforeTax: line.TotalBeforeTax,
				TaxAmount:      line.TaxAmount,
				TotalAfterTax:  line.TotalAfterTax,
			})
		}

		number, err := s.Numbers.Next(txCtx, tenantID, domain.CounterInvoice, tenant.InvoicePrefix)
		if err != nil {
			return err
		}

		before := make([]float64, len(items))
		taxLines := make([]tax.LineItem, len(items))
		for i := range items {
			before[i] = items[i].TotalBeforeTax
			taxLines[i] = tax.LineItem{TaxAmount: items[i].TaxAmount}
		}
		subtotal := money.Round(money.Sum(before...))
		gst := tax.ComputeGST(taxLines, customer.State, tenant.State)

		sale = &domain.Sale{
			TenantID:      tenantID,
			InvoiceNumber: number,
			CustomerID:    customer.ID,
			CustomerName:  customer.Name,
			CustomerGSTIN: customer.GSTIN,
			CustomerState: customer.State,
			Items:         items,
			Subtotal:      subtotal,
			CGST:          gst.CGST,
			SGST:          gst.SGST,
			IGST:          gst.IGST,
			TotalTax:      gst.TotalTax,
			GrandTotal:    tax.GrandTotal(subtotal, gst),
			PaymentMethod: input.PaymentMethod,
			Status:        domain.SaleStatusCompleted,
			Notes:         input.Notes,
			CreatedBy:     userID,
		}
		if err := s.Sales.Create(txCtx, sale); err != nil {
			return err
		}

		for i, c := range changes {
			if err := s.Movements.Create(txCtx, &domain.StockMovement{
				TenantID:      tenantID,
				ProductID:     c.ProductID,
				Change:        -items[i].Quantity,
				QuantityAfter: c.Quantity,
				Reason:        "sale",
				Reference:     number,
				CreatedBy:     &userID,
			}); err != nil {
				return err
			}
		}

		return s.Customers.AddPurchases(txCtx, tenantID, customer.ID, sale.GrandTotal)
	})
	if err != nil {
		return nil, err
	}

	s.afterCommit(ctx, tenantID, sale, crossed)
	return sale, nil
}

// afterCommit runs side effects that must not fail the sale.
func (s *saleService) afterCommit(ctx context.Context, tenantID uuid.UUID, sale *domain.Sale, crossed []domain.StockChange) {
	if len(crossed) > 0 && s.Notifications != nil {
		if err := s.Notifications.NotifyLowStock(ctx, tenantID, crossed); err != nil {
			logger.LogError(s.Log, "service", "SaleCreate", "low stock alert", sale.InvoiceNumber, err)
		}
	}
	if s.ReportCache != nil {
		if err := s.ReportCache.Bump(ctx, tenantID); err != nil {
			logger.LogError(s.Log, "service", "SaleCreate", "bump report cache", sale.InvoiceNumber, err)
		}
	}
}

func (s *saleService) GetByID(ctx context.Context, tenantID, saleID uuid.UUID) (*domain.Sale, error) {
	return s.Sales.GetByID(ctx, tenantID, saleID)
}

func (s *saleService) List(ctx context.Context, tenantID uuid.UUID, filter domain.SaleFilter, offset, limit int) ([]domain.Sale, int, error) {
	return s.Sales.List(ctx, tenantID, filter, offset, limit)
}

func (s *saleService) Summary(ctx context.Context, tenantID uuid.UUID) (*domain.SalesSummary, error) {
	now := time.Now().UTC()
	return s.Sales.Summary(ctx, tenantID, time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC))
}
