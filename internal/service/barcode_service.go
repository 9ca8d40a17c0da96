package service

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/money"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/port"
)

const (
	barcodePrefix   = "GLD"
	barcodeAttempts = 3
	maxBulkBarcodes = 500
)

// GenerateBarcodeInput is the request body for assigning a product its label code.
type GenerateBarcodeInput struct {
	ProductID  uuid.UUID          `json:"product_id" binding:"required"`
	Type       domain.BarcodeType `json:"barcode_type"`
	CustomCode string             `json:"custom_code" binding:"omitempty,max=64,printascii"`
}

// BulkBarcodeInput assigns codes to many products at once.
type BulkBarcodeInput struct {
	ProductIDs []uuid.UUID        `json:"product_ids" binding:"required,min=1,max=500"`
	Type       domain.BarcodeType `json:"barcode_type"`
}

// BulkGenerated is one code created by a bulk run.
type BulkGenerated struct {
	ProductID uuid.UUID `json:"product_id"`
	Barcode   string    `json:"barcode"`
}

// BulkSkipped is a product a bulk run left alone.
type BulkSkipped struct {
	ProductID uuid.UUID `json:"product_id"`
	Reason    string    `json:"reason"`
}

// BulkBarcodeResult reports a bulk run.
type BulkBarcodeResult struct {
	Generated int             `json:"generated"`
	Skipped   int             `json:"skipped"`
	Details   BulkDetailLists `json:"details"`
}

// BulkDetailLists itemises a bulk run.
type BulkDetailLists struct {
	Generated []BulkGenerated `json:"generated"`
	Skipped   []BulkSkipped   `json:"skipped"`
}

// ScannedProduct describes the product behind a scanned code.
type ScannedProduct struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	SKU         string  `json:"sku"`
	Purity      string  `json:"gold_purity"`
	GoldWeight  float64 `json:"weight"`
	HSNCode     string  `json:"hsn_code"`
	Description string  `json:"description"`
}

// ScanPrice is the live price of a scanned product at the latest gold rate.
type ScanPrice struct {
	GoldRatePerGram float64 `json:"gold_rate_per_gram"`
	GoldValue       float64 `json:"gold_value"`
	MakingCharges   float64 `json:"making_charges"`
	GST             float64 `json:"gst"`
	Total           float64 `json:"total"`
}

// ScanStock is the stock position of a scanned product.
type ScanStock struct {
	Quantity          int  `json:"quantity_in_stock"`
	LowStockThreshold int  `json:"low_stock_threshold"`
	IsLowStock        bool `json:"is_low_stock"`
}

// ScanResult is the lookup of a scanned code. Found is false for an unknown
// code; Price is nil when no rate is on record for the product's purity.
type ScanResult struct {
	Found       bool            `json:"found"`
	ProductID   *uuid.UUID      `json:"product_id,omitempty"`
	ProductName string          `json:"product_name,omitempty"`
	Product     *ScannedProduct `json:"product_details,omitempty"`
	Price       *ScanPrice      `json:"price_info,omitempty"`
	Stock       *ScanStock      `json:"stock_info,omitempty"`
}

// BarcodeService assigns label codes to products and resolves scans.
type BarcodeService interface {
	Generate(ctx context.Context, tenantID, userID uuid.UUID, input GenerateBarcodeInput) (*domain.Barcode, error)
	Regenerate(ctx context.Context, tenantID, userID, productID uuid.UUID, barcodeType domain.BarcodeType) (*domain.Barcode, error)
	GenerateBulk(ctx context.Context, tenantID, userID uuid.UUID, input BulkBarcodeInput) (*BulkBarcodeResult, error)
	Scan(ctx context.Context, tenantID uuid.UUID, value string) (*ScanResult, error)
	GetByProduct(ctx context.Context, tenantID, productID uuid.UUID) (*domain.Barcode, error)
	List(ctx context.Context, tenantID uuid.UUID, barcodeType domain.BarcodeType, offset, limit int) ([]domain.Barcode, int, error)
}

// BarcodeDeps groups the collaborators of BarcodeService.
type BarcodeDeps struct {
	Tx       port.TxManager
	Barcodes port.BarcodeRepository
	Products port.ProductRepository
	Rates    port.GoldRateRepository
	Log      logrus.FieldLogger
	// Now and Digits default to time.Now and six random decimal digits.
	Now    func() time.Time
	Digits func() (string, error)
}

type barcodeService struct {
	BarcodeDeps
}

// NewBarcodeService creates a new BarcodeService implementation.
func NewBarcodeService(d BarcodeDeps) BarcodeService {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Digits == nil {
		d.Digits = randomDigits
	}
	return &barcodeService{BarcodeDeps: d}
}

func (s *barcodeService) Generate(ctx context.Context, tenantID, userID uuid.UUID, input GenerateBarcodeInput) (*domain.Barcode, error) {
	barcodeType, err := resolveBarcodeType(input.Type)
	if err != nil {
		return nil, err
	}
	product, err := s.Products.GetByID(ctx, tenantID, input.ProductID)
	if err != nil {
		return nil, err
	}
	if _, err := s.Barcodes.GetByProduct(ctx, tenantID, product.ID); err == nil {
		return nil, domain.ErrBarcodeExists
	} else if !errors.Is(err, domain.ErrBarcodeNotFound) {
		return nil, fmt.Errorf("barcodeService.Generate: %w", err)
	}

	if code := strings.TrimSpace(input.CustomCode); code != "" {
		b := s.newBarcode(tenantID, userID, product, barcodeType, code)
		if err := s.Barcodes.Create(ctx, b); err != nil {
			return nil, err
		}
		return b, nil
	}
	return s.createGenerated(ctx, tenantID, userID, product, barcodeType)
}

func (s *barcodeService) Regenerate(ctx context.Context, tenantID, userID, productID uuid.UUID, barcodeType domain.BarcodeType) (*domain.Barcode, error) {
	barcodeType, err := resolveBarcodeType(barcodeType)
	if err != nil {
		return nil, err
	}
	product, err := s.Products.GetByID(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}

	var out *domain.Barcode
	err = s.Tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.Barcodes.DeleteByProduct(txCtx, tenantID, productID); err != nil {
			return err
		}
		b, err := s.createGenerated(txCtx, tenantID, userID, product, barcodeType)
		if err != nil {
			return err
		}
		out = b
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("barcodeService.Regenerate: %w", err)
	}
	return out, nil
}

func (s *barcodeService) GenerateBulk(ctx context.Context, tenantID, userID uuid.UUID, input BulkBarcodeInput) (*BulkBarcodeResult, error) {
	if len(input.ProductIDs) == 0 || len(input.ProductIDs) > maxBulkBarcodes {
		return nil, fmt.Errorf("%w: between 1 and %d products", domain.ErrInvalidInput, maxBulkBarcodes)
	}
	barcodeType, err := resolveBarcodeType(input.Type)
	if err != nil {
		return nil, err
	}

	res := &BulkBarcodeResult{Details: BulkDetailLists{
		Generated: []BulkGenerated{},
		Skipped:   []BulkSkipped{},
	}}
	skip := func(id uuid.UUID, reason string) {
		res.Details.Skipped = append(res.Details.Skipped, BulkSkipped{ProductID: id, Reason: reason})
	}
	for _, id := range input.ProductIDs {
		product, err := s.Products.GetByID(ctx, tenantID, id)
		if errors.Is(err, domain.ErrProductNotFound) {
			skip(id, "product not found")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("barcodeService.GenerateBulk: %w", err)
		}

		b, err := s.createGenerated(ctx, tenantID, userID, product, barcodeType)
		if errors.Is(err, domain.ErrBarcodeExists) {
			skip(id, "barcode already exists")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("barcodeService.GenerateBulk: %w", err)
		}
		res.Details.Generated = append(res.Details.Generated, BulkGenerated{ProductID: id, Barcode: b.Value})
	}
	res.Generated = len(res.Details.Generated)
	res.Skipped = len(res.Details.Skipped)

	s.Log.WithFields(logrus.Fields{
		"tenant_id": tenantID,
		"generated": res.Generated,
		"skipped":   res.Skipped,
	}).Info("bulk barcodes generated")
	return res, nil
}

func (s *barcodeService) Scan(ctx context.Context, tenantID uuid.UUID, value string) (*ScanResult, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, fmt.Errorf("%w: barcode value is required", domain.ErrInvalidInput)
	}
	b, err := s.Barcodes.GetByValue(ctx, tenantID, value)
	if errors.Is(err, domain.ErrBarcodeNotFound) {
		return &ScanResult{Found: false}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("barcodeService.Scan: %w", err)
	}
	product, err := s.Products.GetByID(ctx, tenantID, b.ProductID)
	if errors.Is(err, domain.ErrProductNotFound) {
		return &ScanResult{Found: false}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("barcodeService.Scan: %w", err)
	}

	out := &ScanResult{
		Found:       true,
		ProductID:   &product.ID,
		ProductName: product.Name,
		Product: &ScannedProduct{
			Name:        product.Name,
			Category:    product.Category,
			SKU:         product.SKU,
			Purity:      product.Purity,
			GoldWeight:  product.GoldWeight,
			HSNCode:     product.HSNCode,
			Description: product.Description,
		},
		Stock: &ScanStock{
			Quantity:          product.Quantity,
			LowStockThreshold: product.LowStockThreshold,
			IsLowStock:        product.IsLowStock,
		},
	}

	rate, err := s.Rates.Latest(ctx, tenantID, product.Purity)
	switch {
	case errors.Is(err, domain.ErrGoldRateNotFound):
		// no rate for the purity yet
	case err != nil:
		return nil, fmt.Errorf("barcodeService.Scan: %w", err)
	default:
		out.Price = livePrice(product, rate.RatePerGram)
	}
	return out, nil
}

func (s *barcodeService) GetByProduct(ctx context.Context, tenantID, productID uuid.UUID) (*domain.Barcode, error) {
	return s.Barcodes.GetByProduct(ctx, tenantID, productID)
}

func (s *barcodeService) List(ctx context.Context, tenantID uuid.UUID, barcodeType domain.BarcodeType, offset, limit int) ([]domain.Barcode, int, error) {
	if barcodeType != "" && !barcodeType.Valid() {
		return nil, 0, fmt.Errorf("%w: unknown barcode type %q", domain.ErrInvalidInput, barcodeType)
	}
	return s.Barcodes.List(ctx, tenantID, barcodeType, offset, limit)
}

// createGenerated retries when a generated value collides with an existing one.
func (s *barcodeService) createGenerated(ctx context.Context, tenantID, userID uuid.UUID, product *domain.Product, barcodeType domain.BarcodeType) (*domain.Barcode, error) {
	var err error
	for i := 0; i < barcodeAttempts; i++ {
		var digits string
		if digits, err = s.Digits(); err != nil {
			return nil, err
		}
		code := barcodePrefix + s.Now().UTC().Format("060102") + digits
		b := s.newBarcode(tenantID, userID, product, barcodeType, code)
		if err = s.Barcodes.Create(ctx, b); err == nil {
			return b, nil
		}
		if !errors.Is(err, domain.ErrDuplicateBarcode) {
			return nil, err
		}
	}
	return nil, err
}

func (s *barcodeService) newBarcode(tenantID, userID uuid.UUID, product *domain.Product, barcodeType domain.BarcodeType, code string) *domain.Barcode {
	b := &domain.Barcode{
		TenantID:    tenantID,
		ProductID:   product.ID,
		ProductName: product.Name,
		Type:        barcodeType,
		Value:       code,
		CreatedBy:   userID,
		CreatedAt:   s.Now().UTC(),
	}
	if barcodeType == domain.BarcodeQR {
		b.QRData = qrPayload(product)
	}
	return b
}

type qrContent struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	SKU       string    `json:"sku"`
	Price     float64   `json:"price"`
	Purity    string    `json:"purity"`
	Weight    float64   `json:"weight"`
	HSN       string    `json:"hsn"`
}

func qrPayload(p *domain.Product) string {
	raw, _ := json.Marshal(qrContent{
		ProductID: p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		Price:     p.SellingPrice,
		Purity:    p.Purity,
		Weight:    p.GoldWeight,
		HSN:       p.HSNCode,
	})
	return string(raw)
}

// livePrice values the gold at rate, adds making charges and applies the
// product's GST rate to both.
func livePrice(p *domain.Product, rate float64) *ScanPrice {
	gold := money.Mul(p.GoldWeight, rate)
	taxable := money.Sum(gold, p.MakingCharges)
	gst := money.Percent(taxable, p.GSTRate)
	return &ScanPrice{
		GoldRatePerGram: rate,
		GoldValue:       gold,
		MakingCharges:   p.MakingCharges,
		GST:             gst,
		Total:           money.Round(money.Sum(taxable, gst)),
	}
}

func resolveBarcodeType(t domain.BarcodeType) (domain.BarcodeType, error) {
	if t == "" {
		return domain.BarcodeCode128, nil
	}
	if !t.Valid() {
		return "", fmt.Errorf("%w: unknown barcode type %q", domain.ErrInvalidInput, t)
	}
	return t, nil
}

func randomDigits() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
