package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/port"
)

// insertBatch keeps named batch inserts well under the 65535 parameter limit.
const insertBatch = 500

type gstReturnRepo struct {
	db *sqlx.DB
}

// NewGSTReturnRepo creates a new PostgreSQL-backed GSTReturnRepository.
func NewGSTReturnRepo(db *sqlx.DB) port.GSTReturnRepository {
	return &gstReturnRepo{db: db}
}

const insertGSTR2A = `INSERT INTO gstr2a_records (id, tenant_id, filing_period, supplier_gstin, invoice_number,
	invoice_date, invoice_value, place_of_supply, reverse_charge, taxable_value, cgst, sgst, igst, cess,
	matched, imported_at)
	VALUES (:id, :tenant_id, :filing_period, :supplier_gstin, :invoice_number, :invoice_date, :invoice_value,
	:place_of_supply, :reverse_charge, :taxable_value, :cgst, :sgst, :igst, :cess, :matched, :imported_at)`

const insertGSTR2B = `INSERT INTO gstr2b_records (id, tenant_id, filing_period, supplier_gstin, supplier_name,
	invoice_number, invoice_date, invoice_value, taxable_value, cgst, sgst, igst, itc_available, imported_at)
	VALUES (:id, :tenant_id, :filing_period, :supplier_gstin, :supplier_name, :invoice_number, :invoice_date,
	:invoice_value, :taxable_value, :cgst, :sgst, :igst, :itc_available, :imported_at)`

func (r *gstReturnRepo) InsertGSTR2A(ctx context.Context, records []domain.GSTR2ARecord) error {
	now := time.Now().UTC()
	for i := range records {
		records[i].ID = uuid.New()
		records[i].ImportedAt = now
	}
	q := ext(ctx, r.db)
	for start := 0; start < len(records); start += insertBatch {
		end := min(start+insertBatch, len(records))
		if _, err := sqlx.NamedExecContext(ctx, q, insertGSTR2A, records[start:end]); err != nil {
			return fmt.Errorf("gstReturnRepo.InsertGSTR2A: %w", err)
		}
	}
	return nil
}

func (r *gstReturnRepo) InsertGSTR2B(ctx context.Context, records []domain.GSTR2BRecord) error {
	now := time.Now().UTC()
	for i := range records {
		records[i].ID = uuid.New()
		records[i].ImportedAt = now
	}
	q := ext(ctx, r.db)
	for start := 0; start < len(records); start += insertBatch {
		end := min(start+insertBatch, len(records))
		if _, err := sqlx.NamedExecContext(ctx, q, insertGSTR2B, records[start:end]); err != nil {
			return fmt.Errorf("gstReturnRepo.InsertGSTR2B: %w", err)
		}
	}
	return nil
}

func (r *gstReturnRepo) ListGSTR2A(ctx context.Context, tenantID uuid.UUID, period string, offset, limit int) ([]domain.GSTR2ARecord, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM gstr2a_records WHERE tenant_id = $1 AND filing_period = $2", tenantID, period)
	if err != nil {
		return nil, 0, fmt.Errorf("gstReturnRepo.ListGSTR2A count: %w", err)
	}

	var recs []domain.GSTR2ARecord
	err = r.db.SelectContext(ctx, &recs,
		`SELECT * FROM gstr2a_records WHERE tenant_id = $1 AND filing_period = $2
		 ORDER BY supplier_gstin, invoice_number LIMIT $3 OFFSET $4`,
		tenantID, period, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("gstReturnRepo.ListGSTR2A: %w", err)
	}
	return recs, total, nil
}

func (r *gstReturnRepo) ListGSTR2B(ctx context.Context, tenantID uuid.UUID, period string, offset, limit int) ([]domain.GSTR2BRecord, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM gstr2b_records WHERE tenant_id = $1 AND filing_period = $2", tenantID, period)
	if err != nil {
		return nil, 0, fmt.Errorf("gstReturnRepo.ListGSTR2B count: %w", err)
	}

	var recs []domain.GSTR2BRecord
	err = r.db.SelectContext(ctx, &recs,
		`SELECT * FROM gstr2b_records WHERE tenant_id = $1 AND filing_period = $2
		 ORDER BY supplier_gstin, invoice_number LIMIT $3 OFFSET $4`,
		tenantID, period, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("gstReturnRepo.ListGSTR2B: %w", err)
	}
	return recs, total, nil
}

// AllGSTR2A returns every record of the period in import order, which is the
// order the matcher walks them in.
func (r *gstReturnRepo) AllGSTR2A(ctx context.Context, tenantID uuid.UUID, period string) ([]domain.GSTR2ARecord, error) {
	var recs []domain.GSTR2ARecord
	err := r.db.SelectContext(ctx, &recs,
		"SELECT * FROM gstr2a_records WHERE tenant_id = $1 AND filing_period = $2 ORDER BY imported_at, id",
		tenantID, period)
	if err != nil {
		return nil, fmt.Errorf("gstReturnRepo.AllGSTR2A: %w", err)
	}
	return recs, nil
}

func (r *gstReturnRepo) AllGSTR2B(ctx context.Context, tenantID uuid.UUID, period string) ([]domain.GSTR2BRecord, error) {
	var recs []domain.GSTR2BRecord
	err := r.db.SelectContext(ctx, &recs,
		"SELECT * FROM gstr2b_records WHERE tenant_id = $1 AND filing_period = $2 ORDER BY imported_at, id",
		tenantID, period)
	if err != nil {
		return nil, fmt.Errorf("gstReturnRepo.AllGSTR2B: %w", err)
	}
	return recs, nil
}

func (r *gstReturnRepo) MarkMatched(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	query, args, err := sqlx.In("UPDATE gstr2a_records SET matched = true WHERE tenant_id = ? AND id IN (?)", tenantID, ids)
	if err != nil {
		return fmt.Errorf("gstReturnRepo.MarkMatched build: %w", err)
	}
	if _, err := ext(ctx, r.db).ExecContext(ctx, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("gstReturnRepo.MarkMatched: %w", err)
	}
	return nil
}

func (r *gstReturnRepo) CreateImport(ctx context.Context, imp *domain.GSTReturnImport) error {
	imp.ID = uuid.New()
	imp.CreatedAt = time.Now().UTC()

	_, err := ext(ctx, r.db).ExecContext(ctx,
		`INSERT INTO gst_return_imports (id, tenant_id, kind, filing_period, object_key, file_name,
			record_count, imported_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		imp.ID, imp.TenantID, imp.Kind, imp.FilingPeriod, imp.ObjectKey, imp.FileName,
		imp.RecordCount, imp.ImportedBy, imp.CreatedAt)
	if err != nil {
		return fmt.Errorf("gstReturnRepo.CreateImport: %w", err)
	}
	return nil
}

func (r *gstReturnRepo) ListImports(ctx context.Context, tenantID uuid.UUID, period string) ([]domain.GSTReturnImport, error) {
	var imps []domain.GSTReturnImport
	err := r.db.SelectContext(ctx, &imps,
		"SELECT * FROM gst_return_imports WHERE tenant_id = $1 AND filing_period = $2 ORDER BY created_at DESC",
		tenantID, period)
	if err != nil {
		return nil, fmt.Errorf("gstReturnRepo.ListImports: %w", err)
	}
	return imps, nil
}
