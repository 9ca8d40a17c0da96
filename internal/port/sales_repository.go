package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
)

// SaleRepository defines the contract for sale persistence. Create and GetByID
// handle the sale's items together with the header.
type SaleRepository interface {
	Create(ctx context.Context, s *domain.Sale) error
	GetByID(ctx context.Context, tenantID, saleID uuid.UUID) (*domain.Sale, error)
	List(ctx context.Context, tenantID uuid.UUID, filter domain.SaleFilter, offset, limit int) ([]domain.Sale, int, error)
	// ListCompleted returns completed sales in the window with their items.
	ListCompleted(ctx context.Context, tenantID uuid.UUID, window domain.DateRange) ([]domain.Sale, error)
	Summary(ctx context.Context, tenantID uuid.UUID, dayStart time.Time) (*domain.SalesSummary, error)
}
