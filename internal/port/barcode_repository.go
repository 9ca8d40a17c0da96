package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
)

// BarcodeRepository persists product label codes.
type BarcodeRepository interface {
	// Create returns domain.ErrBarcodeExists when the product already has a
	// barcode and domain.ErrDuplicateBarcode when the value is taken.
	Create(ctx context.Context, b *domain.Barcode) error
	GetByProduct(ctx context.Context, tenantID, productID uuid.UUID) (*domain.Barcode, error)
	GetByValue(ctx context.Context, tenantID uuid.UUID, value string) (*domain.Barcode, error)
	List(ctx context.Context, tenantID uuid.UUID, barcodeType domain.BarcodeType, offset, limit int) ([]domain.Barcode, int, error)
	// DeleteByProduct is a no-op when the product has no barcode.
	DeleteByProduct(ctx context.Context, tenantID, productID uuid.UUID) error
}
