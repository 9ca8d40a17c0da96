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

type barcodeRepo struct {
	db *sqlx.DB
}

// NewBarcodeRepo creates a new PostgreSQL-backed BarcodeRepository.
func NewBarcodeRepo(db *sqlx.DB) port.BarcodeRepository {
	return &barcodeRepo{db: db}
}

func (r *barcodeRepo) Create(ctx context.Context, b *domain.Barcode) error {
	b.ID = uuid.New()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}

	_, err := ext(ctx, r.db).ExecContext(ctx,
		`INSERT INTO barcodes (id, tenant_id, product_id, product_name, barcode_type, barcode_value,
			qr_data, created_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		b.ID, b.TenantID, b.ProductID, b.ProductName, b.Type, b.Value, b.QRData, b.CreatedBy, b.CreatedAt)
	if err != nil {
		if constraint, ok := uniqueConstraint(err); ok {
			if constraint == "barcodes_tenant_value_key" {
				return domain.ErrDuplicateBarcode
			}
			return domain.ErrBarcodeExists
		}
		return fmt.Errorf("barcodeRepo.Create: %w", err)
	}
	return nil
}

func (r *barcodeRepo) GetByProduct(ctx context.Context, tenantID, productID uuid.UUID) (*domain.Barcode, error) {
	return r.getOne(ctx, "barcodeRepo.GetByProduct",
		"SELECT * FROM barcodes WHERE tenant_id = $1 AND product_id = $2", tenantID, productID)
}

func (r *barcodeRepo) GetByValue(ctx context.Context, tenantID uuid.UUID, value string) (*domain.Barcode, error) {
	return r.getOne(ctx, "barcodeRepo.GetByValue",
		"SELECT * FROM barcodes WHERE tenant_id = $1 AND barcode_value = $2", tenantID, value)
}

func (r *barcodeRepo) getOne(ctx context.Context, op, query string, args ...any) (*domain.Barcode, error) {
	var b domain.Barcode
	if err := sqlx.GetContext(ctx, ext(ctx, r.db), &b, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBarcodeNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &b, nil
}

func (r *barcodeRepo) List(ctx context.Context, tenantID uuid.UUID, barcodeType domain.BarcodeType, offset, limit int) ([]domain.Barcode, int, error) {
	cond := "tenant_id = $1"
	args := []any{tenantID}
	if barcodeType != "" {
		args = append(args, barcodeType)
		cond += " AND barcode_type = $2"
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM barcodes WHERE "+cond, args...); err != nil {
		return nil, 0, fmt.Errorf("barcodeRepo.List count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM barcodes WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		cond, len(args)+1, len(args)+2)
	barcodes := []domain.Barcode{}
	if err := r.db.SelectContext(ctx, &barcodes, query, append(args, limit, offset)...); err != nil {
		return nil, 0, fmt.Errorf("barcodeRepo.List: %w", err)
	}
	return barcodes, total, nil
}

func (r *barcodeRepo) DeleteByProduct(ctx context.Context, tenantID, productID uuid.UUID) error {
	_, err := ext(ctx, r.db).ExecContext(ctx,
		"DELETE FROM barcodes WHERE tenant_id = $1 AND product_id = $2", tenantID, productID)
	if err != nil {
		return fmt.Errorf("barcodeRepo.DeleteByProduct: %w", err)
	}
	return nil
}
