package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/port"
)

type einvoiceRepo struct {
	db *sqlx.DB
}

// NewEInvoiceRepo creates a new PostgreSQL-backed EInvoiceRepository.
func NewEInvoiceRepo(db *sqlx.DB) port.EInvoiceRepository {
	return &einvoiceRepo{db: db}
}

func (r *einvoiceRepo) Create(ctx context.Context, e *domain.EInvoice) error {
	e.ID = uuid.New()
	e.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO einvoices (id, tenant_id, sale_id, invoice_number, irn, ack_number, ack_date,
			signed_qr_code, status, cancel_reason, cancelled_at, created_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		e.ID, e.TenantID, e.SaleID, e.InvoiceNumber, e.IRN, e.AckNumber, e.AckDate,
		e.SignedQRCode, e.Status, e.CancelReason, e.CancelledAt, e.CreatedBy, e.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEInvoiceExists
		}
		return fmt.Errorf("einvoiceRepo.Create: %w", err)
	}
	return nil
}

func (r *einvoiceRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.EInvoice, error) {
	var e domain.EInvoice
	err := r.db.GetContext(ctx, &e, "SELECT * FROM einvoices WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("einvoiceRepo.GetByID: %w", err)
	}
	return &e, nil
}

func (r *einvoiceRepo) GetBySale(ctx context.Context, tenantID, saleID uuid.UUID) (*domain.EInvoice, error) {
	var e domain.EInvoice
	err := r.db.GetContext(ctx, &e, "SELECT * FROM einvoices WHERE sale_id = $1 AND tenant_id = $2", saleID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("einvoiceRepo.GetBySale: %w", err)
	}
	return &e, nil
}

func (r *einvoiceRepo) Cancel(ctx context.Context, tenantID, id uuid.UUID, reason string, at time.Time) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE einvoices SET status = $1, cancel_reason = $2, cancelled_at = $3
		 WHERE id = $4 AND tenant_id = $5 AND status = $6`,
		domain.EInvoiceCancelled, reason, at, id, tenantID, domain.EInvoiceGenerated)
	if err != nil {
		return fmt.Errorf("einvoiceRepo.Cancel: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows > 0 {
		return nil
	}
	if _, err := r.GetByID(ctx, tenantID, id); err != nil {
		return err
	}
	return domain.ErrEInvoiceCancelled
}
