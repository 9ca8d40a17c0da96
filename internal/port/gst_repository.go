package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
)

// GSTReturnRepository persists imported GSTR-2A and GSTR-2B records.
type GSTReturnRepository interface {
	InsertGSTR2A(ctx context.Context, records []domain.GSTR2ARecord) error
	InsertGSTR2B(ctx context.Context, records []domain.GSTR2BRecord) error
	ListGSTR2A(ctx context.Context, tenantID uuid.UUID, period string, offset, limit int) ([]domain.GSTR2ARecord, int, error)
	ListGSTR2B(ctx context.Context, tenantID uuid.UUID, period string, offset, limit int) ([]domain.GSTR2BRecord, int, error)
	AllGSTR2A(ctx context.Context, tenantID uuid.UUID, period string) ([]domain.GSTR2ARecord, error)
	AllGSTR2B(ctx context.Context, tenantID uuid.UUID, period string) ([]domain.GSTR2BRecord, error)
	MarkMatched(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) error
	CreateImport(ctx context.Context, imp *domain.GSTReturnImport) error
	ListImports(ctx context.Context, tenantID uuid.UUID, period string) ([]domain.GSTReturnImport, error)
}

// EInvoiceRepository persists e-invoice registrations.
type EInvoiceRepository interface {
	// Create returns domain.ErrEInvoiceExists when the sale already has one.
	Create(ctx context.Context, e *domain.EInvoice) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.EInvoice, error)
	GetBySale(ctx context.Context, tenantID, saleID uuid.UUID) (*domain.EInvoice, error)
	// Cancel returns domain.ErrEInvoiceCancelled when already cancelled.
	Cancel(ctx context.Context, tenantID, id uuid.UUID, reason string, at time.Time) error
}
