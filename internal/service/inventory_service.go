package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/logger"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/money"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/port"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/pricing"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/tax"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/validator"
)

const (
	// DefaultJewelleryHSN is the HSN code of articles of jewellery of precious metal.
	DefaultJewelleryHSN = "71131900"
	defaultGSTRate      = 3.0
	defaultLowStock     = 5
)

// CreateCategoryInput is the DTO for creating a product category.
type CreateCategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	HSNCode     string `json:"hsn_code" binding:"omitempty,hsn"`
}

// CreateProductInput is the DTO for creating a product.
type CreateProductInput struct {
	Name              string   `json:"name" binding:"required"`
	SKU               string   `json:"sku" binding:"required"`
	Description       string   `json:"description"`
	Category          string   `json:"category"`
	GoldWeight        float64  `json:"gold_weight" binding:"gte=0"`
	Purity            string   `json:"purity" binding:"omitempty,karat"`
	MakingCharges     float64  `json:"making_charges" binding:"gte=0"`
	StoneWeight       float64  `json:"stone_weight" binding:"gte=0"`
	StoneCharges      float64  `json:"stone_charges" binding:"gte=0"`
	HallmarkNumber    string   `json:"hallmark_number"`
	HSNCode           string   `json:"hsn_code" binding:"omitempty,hsn"`
	BasePrice         float64  `json:"base_price" binding:"gte=0"`
	GSTRate           *float64 `json:"gst_rate" binding:"omitempty,gte=0,lte=28"`
	Quantity          int      `json:"quantity" binding:"gte=0"`
	LowStockThreshold *int     `json:"low_stock_threshold" binding:"omitempty,gte=0"`
}

// UpdateProductInput is the DTO for updating a product. Quantity changes go
// through AdjustStock.
type UpdateProductInput struct {
	Name              *string  `json:"name"`
	SKU               *string  `json:"sku"`
	Description       *string  `json:"description"`
	Category          *string  `json:"category"`
	GoldWeight        *float64 `json:"gold_weight" binding:"omitempty,gte=0"`
	Purity            *string  `json:"purity" binding:"omitempty,karat"`
	MakingCharges     *float64 `json:"making_charges" binding:"omitempty,gte=0"`
	StoneWeight       *float64 `json:"stone_weight" binding:"omitempty,gte=0"`
	StoneCharges      *float64 `json:"stone_charges" binding:"omitempty,gte=0"`
	HallmarkNumber    *string  `json:"hallmark_number"`
	HSNCode           *string  `json:"hsn_code" binding:"omitempty,hsn"`
	BasePrice         *float64 `json:"base_price" binding:"omitempty,gte=0"`
	GSTRate           *float64 `json:"gst_rate" binding:"omitempty,gte=0,lte=28"`
	LowStockThreshold *int     `json:"low_stock_threshold" binding:"omitempty,gte=0"`
}

// StockAdjustmentInput is the DTO for a manual stock change.
type StockAdjustmentInput struct {
	QuantityChange int    `json:"quantity_change" binding:"required,ne=0"`
	Reason         string `json:"reason" binding:"required"`
	Reference      string `json:"reference"`
}

// InventoryService manages categories, products and stock.
type InventoryService interface {
	CreateCategory(ctx context.Context, tenantID uuid.UUID, input CreateCategoryInput) (*domain.Category, error)
	ListCategories(ctx context.Context, tenantID uuid.UUID) ([]domain.Category, error)

	CreateProduct(ctx context.Context, tenantID uuid.UUID, input CreateProductInput) (*domain.Product, error)
	GetProduct(ctx context.Context, tenantID, productID uuid.UUID) (*domain.Product, error)
	ListProducts(ctx context.Context, tenantID uuid.UUID, filter domain.ProductFilter, offset, limit int) ([]domain.Product, int, error)
	UpdateProduct(ctx context.Context, tenantID, productID uuid.UUID, input UpdateProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, tenantID, productID uuid.UUID) error

	AdjustStock(ctx context.Context, tenantID, userID, productID uuid.UUID, input StockAdjustmentInput) (*domain.StockChange, error)
	ListLowStock(ctx context.Context, tenantID uuid.UUID) ([]domain.Product, error)
	ListMovements(ctx context.Context, tenantID, productID uuid.UUID, offset, limit int) ([]domain.StockMovement, int, error)

	// ApplyRates re-derives base and selling prices of every product whose
	// purity has a rate in rates.
	ApplyRates(ctx context.Context, tenantID uuid.UUID, rates map[string]float64) (updated, failed int, err error)
}

// InventoryDeps groups the collaborators of InventoryService.
type InventoryDeps struct {
	Tx            port.TxManager
	Categories    port.CategoryRepository
	Products      port.ProductRepository
	Movements     port.StockMovementRepository
	Notifications NotificationService
	HSN           *validator.HSNLookup
	Log           logrus.FieldLogger
}

type inventoryService struct {
	InventoryDeps
}

// NewInventoryService creates a new InventoryService implementation.
func NewInventoryService(d InventoryDeps) InventoryService {
	return &inventoryService{InventoryDeps: d}
}

func (s *inventoryService) CreateCategory(ctx context.Context, tenantID uuid.UUID, input CreateCategoryInput) (*domain.Category, error) {
	hsn, err := s.checkHSN(orDefault(input.HSNCode, DefaultJewelleryHSN))
	if err != nil {
		return nil, err
	}
	c := &domain.Category{
		TenantID:    tenantID,
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		HSNCode:     hsn,
	}
	if err := s.Categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *inventoryService) ListCategories(ctx context.Context, tenantID uuid.UUID) ([]domain.Category, error) {
	return s.Categories.List(ctx, tenantID)
}

func (s *inventoryService) CreateProduct(ctx context.Context, tenantID uuid.UUID, input CreateProductInput) (*domain.Product, error) {
	hsn, err := s.checkHSN(orDefault(input.HSNCode, DefaultJewelleryHSN))
	if err != nil {
		return nil, err
	}
	p := &domain.Product{
		TenantID:          tenantID,
		Name:              strings.TrimSpace(input.Name),
		SKU:               strings.TrimSpace(input.SKU),
		Description:       input.Description,
		Category:          input.Category,
		GoldWeight:        input.GoldWeight,
		Purity:            pricing.NormalizeKarat(input.Purity),
		MakingCharges:     input.MakingCharges,
		StoneWeight:       input.StoneWeight,
		StoneCharges:      input.StoneCharges,
		HallmarkNumber:    input.HallmarkNumber,
		HSNCode:           hsn,
		BasePrice:         money.Round(input.BasePrice),
		GSTRate:           defaultGSTRate,
		Quantity:          input.Quantity,
		LowStockThreshold: defaultLowStock,
	}
	setIf(&p.GSTRate, input.GSTRate)
	setIf(&p.LowStockThreshold, input.LowStockThreshold)
	reprice(p)

	if err := s.Products.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *inventoryService) GetProduct(ctx context.Context, tenantID, productID uuid.UUID) (*domain.Product, error) {
	return s.Products.GetByID(ctx, tenantID, productID)
}

func (s *inventoryService) ListProducts(ctx context.Context, tenantID uuid.UUID, filter domain.ProductFilter, offset, limit int) ([]domain.Product, int, error) {
	return s.Products.List(ctx, tenantID, filter, offset, limit)
}

func (s *inventoryService) UpdateProduct(ctx context.Context, tenantID, productID uuid.UUID, input UpdateProductInput) (*domain.Product, error) {
	p, err := s.Products.GetByID(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}

	if input.HSNCode != nil {
		hsn, err := s.checkHSN(*input.HSNCode)
		if err != nil {
			return nil, err
		}
		p.HSNCode = hsn
	}
	if input.Purity != nil {
		p.Purity = pricing.NormalizeKarat(*input.Purity)
	}
	setIf(&p.Name, input.Name)
	setIf(&p.SKU, input.SKU)
	setIf(&p.Description, input.Description)
	setIf(&p.Category, input.Category)
	setIf(&p.GoldWeight, input.GoldWeight)
	setIf(&p.MakingCharges, input.MakingCharges)
	setIf(&p.StoneWeight, input.StoneWeight)
	setIf(&p.StoneCharges, input.StoneCharges)
	setIf(&p.HallmarkNumber, input.HallmarkNumber)
	setIf(&p.BasePrice, input.BasePrice)
	setIf(&p.GSTRate, input.GSTRate)
	setIf(&p.LowStockThreshold, input.LowStockThreshold)
	reprice(p)

	if err := s.Products.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *inventoryService) DeleteProduct(ctx context.Context, tenantID, productID uuid.UUID) error {
	return s.Products.Delete(ctx, tenantID, productID)
}

func (s *inventoryService) AdjustStock(ctx context.Context, tenantID, userID, productID uuid.UUID, input StockAdjustmentInput) (*domain.StockChange, error) {
	var change *domain.StockChange
	err := s.Tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		change, err = s.Products.AdjustStock(txCtx, tenantID, productID, input.QuantityChange)
		if err != nil {
			return err
		}
		return s.Movements.Create(txCtx, &domain.StockMovement{
			TenantID:      tenantID,
			ProductID:     productID,
			Change:        input.QuantityChange,
			QuantityAfter: change.Quantity,
			Reason:        input.Reason,
			Reference:     input.Reference,
			CreatedBy:     &userID,
		})
	})
	if err != nil {
		return nil, err
	}

	if change.CrossedLowStock() {
		if err := s.Notifications.NotifyLowStock(ctx, tenantID, []domain.StockChange{*change}); err != nil {
			logger.LogError(s.Log, "service", "AdjustStock", "low stock alert", productID, err)
		}
	}
	return change, nil
}

func (s *inventoryService) ListLowStock(ctx context.Context, tenantID uuid.UUID) ([]domain.Product, error) {
	return s.Products.ListLowStock(ctx, tenantID)
}

func (s *inventoryService) ListMovements(ctx context.Context, tenantID, productID uuid.UUID, offset, limit int) ([]domain.StockMovement, int, error) {
	return s.Movements.ListByProduct(ctx, tenantID, productID, offset, limit)
}

func (s *inventoryService) ApplyRates(ctx context.Context, tenantID uuid.UUID, rates map[string]float64) (int, int, error) {
	normalized := make(map[string]float64, len(rates))
	purities := make([]string, 0, len(rates))
	for k, v := range rates {
		k = pricing.NormalizeKarat(k)
		normalized[k] = v
		purities = append(purities, k)
	}

	products, err := s.Products.ListByPurities(ctx, tenantID, purities)
	if err != nil {
		return 0, 0, fmt.Errorf("inventory.ApplyRates: %w", err)
	}

	updated, failed := 0, 0
	for i := range products {
		p := &products[i]
		p.BasePrice = money.Round(money.Sum(money.Mul(p.GoldWeight, normalized[p.Purity]), p.MakingCharges, p.StoneCharges))
		reprice(p)
		if err := s.Products.UpdatePricing(ctx, tenantID, p.ID, p.BasePrice, p.SellingPrice); err != nil {
			failed++
			logger.LogError(s.Log, "service", "ApplyRates", "update pricing", p.ID, err)
			continue
		}
		updated++
	}
	return updated, failed, nil
}

// checkHSN validates the code's shape and, once the HSN master is loaded,
// that it is a known code.
func (s *inventoryService) checkHSN(code string) (string, error) {
	code = strings.TrimSpace(code)
	if !validator.IsHSN(code) {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidHSN, code)
	}
	if s.HSN != nil && s.HSN.Loaded() && !s.HSN.Exists(code) {
		return "", fmt.Errorf("%w: %s is not in the HSN master", domain.ErrInvalidHSN, code)
	}
	return code, nil
}

// reprice derives the selling price and low-stock flag from the product's
// own fields.
func reprice(p *domain.Product) {
	p.SellingPrice = tax.SellingPrice(p.BasePrice, p.GSTRate)
	p.IsLowStock = tax.IsLowStock(p.Quantity, p.LowStockThreshold)
}
