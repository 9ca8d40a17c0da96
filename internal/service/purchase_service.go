package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/logger"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/money"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/port"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/tax"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/validator"
)

const defaultPaymentTerms = "Net 30"

// CreateSupplierInput is the DTO for registering a supplier.
type CreateSupplierInput struct {
	Name          string `json:"name" binding:"required"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone" binding:"required"`
	Email         string `json:"email" binding:"omitempty,email"`
	GSTIN         string `json:"gstin"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Pincode       string `json:"pincode"`
	PaymentTerms  string `json:"payment_terms"`
}

// UpdateSupplierInput is the DTO for updating a supplier.
type UpdateSupplierInput struct {
	Name          *string `json:"name"`
	ContactPerson *string `json:"contact_person"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email" binding:"omitempty,email"`
	GSTIN         *string `json:"gstin"`
	Address       *string `json:"address"`
	City          *string `json:"city"`
	State         *string `json:"state"`
	Pincode       *string `json:"pincode"`
	PaymentTerms  *string `json:"payment_terms"`
}

// PurchaseItemInput is one requested purchase order line. GSTRate defaults
// to the product's rate.
type PurchaseItemInput struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
	UnitPrice float64   `json:"unit_price" binding:"gte=0"`
	GSTRate   *float64  `json:"gst_rate" binding:"omitempty,gte=0,lte=28"`
}

// CreatePurchaseOrderInput is the DTO for raising a purchase order.
type CreatePurchaseOrderInput struct {
	SupplierID       uuid.UUID           `json:"supplier_id" binding:"required"`
	Items            []PurchaseItemInput `json:"items" binding:"required,min=1,dive"`
	ExpectedDelivery *time.Time          `json:"expected_delivery"`
	Notes            string              `json:"notes"`
}

// CreateOldGoldInput is the DTO for recording an old gold buy-back.
type CreateOldGoldInput struct {
	CustomerID   *uuid.UUID `json:"customer_id"`
	CustomerName string     `json:"customer_name" binding:"required"`
	Purity       string     `json:"purity" binding:"required,karat"`
	Weight       float64    `json:"weight" binding:"required,gt=0"`
	RatePerGram  float64    `json:"rate_per_gram" binding:"required,gt=0"`
	Notes        string     `json:"notes"`
}

// PurchaseService manages suppliers, purchase orders and old gold exchanges.
type PurchaseService interface {
	CreateSupplier(ctx context.Context, tenantID uuid.UUID, input CreateSupplierInput) (*domain.Supplier, error)
	GetSupplier(ctx context.Context, tenantID, supplierID uuid.UUID) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, tenantID uuid.UUID, search string, offset, limit int) ([]domain.Supplier, int, error)
	UpdateSupplier(ctx context.Context, tenantID, supplierID uuid.UUID, input UpdateSupplierInput) (*domain.Supplier, error)

	CreateOrder(ctx context.Context, tenantID, userID uuid.UUID, input CreatePurchaseOrderInput) (*domain.PurchaseOrder, error)
	GetOrder(ctx context.Context, tenantID, poID uuid.UUID) (*domain.PurchaseOrder, error)
	ListOrders(ctx context.Context, tenantID uuid.UUID, status domain.POStatus, offset, limit int) ([]domain.PurchaseOrder, int, error)
	ReceiveOrder(ctx context.Context, tenantID, userID, poID uuid.UUID) (*domain.PurchaseOrder, error)

	CreateOldGold(ctx context.Context, tenantID, userID uuid.UUID, input CreateOldGoldInput) (*domain.OldGoldExchange, error)
	ListOldGold(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.OldGoldExchange, int, error)
}

// PurchaseDeps groups the collaborators of PurchaseService.
type PurchaseDeps struct {
	Tx          port.TxManager
	Tenants     port.TenantRepository
	Suppliers   port.SupplierRepository
	Orders      port.PurchaseOrderRepository
	Products    port.ProductRepository
	Movements   port.StockMovementRepository
	OldGold     port.OldGoldRepository
	Numbers     DocumentNumberer
	ReportCache port.ReportCache
	Log         logrus.FieldLogger
}

type purchaseService struct {
	PurchaseDeps
}

// NewPurchaseService creates a new PurchaseService implementation.
func NewPurchaseService(d PurchaseDeps) PurchaseService {
	return &purchaseService{PurchaseDeps: d}
}

func (s *purchaseService) CreateSupplier(ctx context.Context, tenantID uuid.UUID, input CreateSupplierInput) (*domain.Supplier, error) {
	sup := &domain.Supplier{
		TenantID:      tenantID,
		Name:          strings.TrimSpace(input.Name),
		ContactPerson: input.ContactPerson,
		Phone:         input.Phone,
		Email:         input.Email,
		GSTIN:         input.GSTIN,
		Address:       input.Address,
		City:          input.City,
		State:         strings.TrimSpace(input.State),
		Pincode:       input.Pincode,
		PaymentTerms:  orDefault(input.PaymentTerms, defaultPaymentTerms),
	}
	if err := normalizeSupplier(sup); err != nil {
		return nil, err
	}
	if err := s.Suppliers.Create(ctx, sup); err != nil {
		return nil, err
	}
	return sup, nil
}

func (s *purchaseService) GetSupplier(ctx context.Context, tenantID, supplierID uuid.UUID) (*domain.Supplier, error) {
	return s.Suppliers.GetByID(ctx, tenantID, supplierID)
}

func (s *purchaseService) ListSuppliers(ctx context.Context, tenantID uuid.UUID, search string, offset, limit int) ([]domain.Supplier, int, error) {
	return s.Suppliers.List(ctx, tenantID, search, offset, limit)
}

func (s *purchaseService) UpdateSupplier(ctx context.Context, tenantID, supplierID uuid.UUID, input UpdateSupplierInput) (*domain.Supplier, error) {
	sup, err := s.Suppliers.GetByID(ctx, tenantID, supplierID)
	if err != nil {
		return nil, err
	}
	setIf(&sup.Name, input.Name)
	setIf(&sup.ContactPerson, input.ContactPerson)
	setIf(&sup.Phone, input.Phone)
	setIf(&sup.Email, input.Email)
	setIf(&sup.GSTIN, input.GSTIN)
	setIf(&sup.Address, input.Address)
	setIf(&sup.City, input.City)
	setIf(&sup.State, input.State)
	setIf(&sup.Pincode, input.Pincode)
	setIf(&sup.PaymentTerms, input.PaymentTerms)
	if err := normalizeSupplier(sup); err != nil {
		return nil, err
	}
	if err := s.Suppliers.Update(ctx, sup); err != nil {
		return nil, err
	}
	return sup, nil
}

func normalizeSupplier(sup *domain.Supplier) error {
	phone, err := validator.NormalizePhone(sup.Phone)
	if err != nil {
		return err
	}
	gstin, err := validator.NormalizeGSTIN(sup.GSTIN)
	if err != nil {
		return err
	}
	sup.Phone, sup.GSTIN = phone, gstin
	if sup.State == "" && gstin != "" {
		sup.State, _ = validator.StateName(gstin[:2])
	}
	return nil
}

func (s *purchaseService) CreateOrder(ctx context.Context, tenantID, userID uuid.UUID, input CreatePurchaseOrderInput) (*domain.PurchaseOrder, error) {
	tenant, err := s.Tenants.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	var po *domain.PurchaseOrder
	err = s.Tx.RunInTx(ctx, func(txCtx context.Context) error {
		sup, err := s.Suppliers.GetByID(txCtx, tenantID, input.SupplierID)
		if err != nil {
			return err
		}

		items := make([]domain.PurchaseOrderItem, 0, len(input.Items))
		var before, taxes []float64
		for _, in := range input.Items {
			product, err := s.Products.GetByID(txCtx, tenantID, in.ProductID)
			if err != nil {
				return err
			}
			rate := product.GSTRate
			setIf(&rate, in.GSTRate)
			line := tax.ComputeLine(float64(in.Quantity), in.UnitPrice, rate)
			items = append(items, domain.PurchaseOrderItem{
				ProductID:      product.ID,
				ProductName:    product.Name,
				Quantity:       in.Quantity,
				UnitPrice:      money.Round(in.UnitPrice),
				GSTRate:        rate,
				TotalBeforeTax: line.TotalBeforeTax,
				TaxAmount:      line.TaxAmount,
				TotalAfterTax:  line.TotalAfterTax,
			})
			before = append(before, line.TotalBeforeTax)
			taxes = append(taxes, line.TaxAmount)
		}

		number, err := s.Numbers.Next(txCtx, tenantID, domain.CounterPO, tenant.POPrefix)
		if err != nil {
			return err
		}

		subtotal := money.Round(money.Sum(before...))
		gstTotal := money.Round(money.Sum(taxes...))
		po = &domain.PurchaseOrder{
			TenantID:         tenantID,
			PONumber:         number,
			SupplierID:       sup.ID,
			SupplierName:     sup.Name,
			SupplierGSTIN:    sup.GSTIN,
			SupplierState:    sup.State,
			Items:            items,
			Subtotal:         subtotal,
			GSTTotal:         gstTotal,
			GrandTotal:       money.Round(money.Sum(subtotal, gstTotal)),
			Status:           domain.POStatusPending,
			OrderDate:        time.Now().UTC(),
			ExpectedDelivery: input.ExpectedDelivery,
			Notes:            input.Notes,
			CreatedBy:        userID,
		}
		return s.Orders.Create(txCtx, po)
	})
	if err != nil {
		return nil, err
	}
	return po, nil
}

func (s *purchaseService) GetOrder(ctx context.Context, tenantID, poID uuid.UUID) (*domain.PurchaseOrder, error) {
	return s.Orders.GetByID(ctx, tenantID, poID)
}

func (s *purchaseService) ListOrders(ctx context.Context, tenantID uuid.UUID, status domain.POStatus, offset, limit int) ([]domain.PurchaseOrder, int, error) {
	return s.Orders.List(ctx, tenantID, status, offset, limit)
}

// ReceiveOrder closes an open order. The status guard, the stock increments
// and the supplier total run in one transaction, so a second receive fails
// with ErrPOAlreadyReceived and changes nothing.
func (s *purchaseService) ReceiveOrder(ctx context.Context, tenantID, userID, poID uuid.UUID) (*domain.PurchaseOrder, error) {
	var po *domain.PurchaseOrder
	err := s.Tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.Orders.MarkReceived(txCtx, tenantID, poID, time.Now().UTC()); err != nil {
			return err
		}
		var err error
		if po, err = s.Orders.GetByID(txCtx, tenantID, poID); err != nil {
			return err
		}
		for _, it := range po.Items {
			change, err := s.Products.AdjustStock(txCtx, tenantID, it.ProductID, it.Quantity)
			if err != nil {
				return fmt.Errorf("receiving %s: %w", it.ProductName, err)
			}
			if err := s.Movements.Create(txCtx, &domain.StockMovement{
				TenantID:      tenantID,
				ProductID:     it.ProductID,
				Change:        it.Quantity,
				QuantityAfter: change.Quantity,
				Reason:        "purchase",
				Reference:     po.PONumber,
				CreatedBy:     &userID,
			}); err != nil {
				return err
			}
		}
		return s.Suppliers.AddPurchases(txCtx, tenantID, po.SupplierID, po.GrandTotal)
	})
	if err != nil {
		return nil, err
	}

	if s.ReportCache != nil {
		if err := s.ReportCache.Bump(ctx, tenantID); err != nil {
			logger.LogError(s.Log, "service", "ReceiveOrder", "bump report cache", poID, err)
		}
	}
	return po, nil
}

func (s *purchaseService) CreateOldGold(ctx context.Context, tenantID, userID uuid.UUID, input CreateOldGoldInput) (*domain.OldGoldExchange, error) {
	karat, _, err := normalizeKarat(input.Purity)
	if err != nil {
		return nil, err
	}
	e := &domain.OldGoldExchange{
		TenantID:     tenantID,
		CustomerID:   input.CustomerID,
		CustomerName: strings.TrimSpace(input.CustomerName),
		Purity:       karat,
		Weight:       money.RoundTo(input.Weight, 3),
		RatePerGram:  money.Round(input.RatePerGram),
		TotalValue:   money.Round(money.Mul(input.Weight, input.RatePerGram)),
		Notes:        input.Notes,
		CreatedBy:    userID,
	}
	if err := s.OldGold.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *purchaseService) ListOldGold(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.OldGoldExchange, int, error) {
	return s.OldGold.List(ctx, tenantID, offset, limit)
}
