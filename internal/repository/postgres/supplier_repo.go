package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/port"
)

type supplierRepo struct {
	db *sqlx.DB
}

// NewSupplierRepo creates a new PostgreSQL-backed SupplierRepository.
func NewSupplierRepo(db *sqlx.DB) port.SupplierRepository {
	return &supplierRepo{db: db}
}

func (r *supplierRepo) Create(ctx context.Context, s *domain.Supplier) error {
	s.ID = uuid.New()
	now := time.Now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO suppliers (id, tenant_id, name, contact_person, phone, email, gstin, address, city,
			state, pincode, payment_terms, total_purchases, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		s.ID, s.TenantID, s.Name, s.ContactPerson, s.Phone, s.Email, s.GSTIN, s.Address, s.City,
		s.State, s.Pincode, s.PaymentTerms, s.TotalPurchases, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicatePhone
		}
		return fmt.Errorf("supplierRepo.Create: %w", err)
	}
	return nil
}

func (r *supplierRepo) GetByID(ctx context.Context, tenantID, supplierID uuid.UUID) (*domain.Supplier, error) {
	var s domain.Supplier
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &s,
		"SELECT * FROM suppliers WHERE id = $1 AND tenant_id = $2", supplierID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSupplierNotFound
		}
		return nil, fmt.Errorf("supplierRepo.GetByID: %w", err)
	}
	return &s, nil
}

func (r *supplierRepo) List(ctx context.Context, tenantID uuid.UUID, search string, offset, limit int) ([]domain.Supplier, int, error) {
	cond := "tenant_id = $1"
	args := []any{tenantID}
	if s := strings.TrimSpace(search); s != "" {
		args = append(args, "%"+s+"%")
		cond += " AND (name ILIKE $2 OR contact_person ILIKE $2 OR phone ILIKE $2 OR gstin ILIKE $2)"
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM suppliers WHERE "+cond, args...); err != nil {
		return nil, 0, fmt.Errorf("supplierRepo.List count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM suppliers WHERE %s ORDER BY name LIMIT $%d OFFSET $%d",
		cond, len(args)+1, len(args)+2)
	var suppliers []domain.Supplier
	if err := r.db.SelectContext(ctx, &suppliers, query, append(args, limit, offset)...); err != nil {
		return nil, 0, fmt.Errorf("supplierRepo.List: %w", err)
	}
	return suppliers, total, nil
}

func (r *supplierRepo) Update(ctx context.Context, s *domain.Supplier) error {
	s.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE suppliers SET name = $1, contact_person = $2, phone = $3, email = $4, gstin = $5,
			address = $6, city = $7, state = $8, pincode = $9, payment_terms = $10, updated_at = $11
		 WHERE id = $12 AND tenant_id = $13`,
		s.Name, s.ContactPerson, s.Phone, s.Email, s.GSTIN,
		s.Address, s.City, s.State, s.Pincode, s.PaymentTerms, s.UpdatedAt,
		s.ID, s.TenantID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicatePhone
		}
		return fmt.Errorf("supplierRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrSupplierNotFound
	}
	return nil
}

func (r *supplierRepo) AddPurchases(ctx context.Context, tenantID, supplierID uuid.UUID, amount float64) error {
	result, err := ext(ctx, r.db).ExecContext(ctx,
		`UPDATE suppliers SET total_purchases = total_purchases + $1, updated_at = $2
		 WHERE id = $3 AND tenant_id = $4`,
		amount, time.Now().UTC(), supplierID, tenantID)
	if err != nil {
		return fmt.Errorf("supplierRepo.AddPurchases: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrSupplierNotFound
	}
	return nil
}

func (r *supplierRepo) States(ctx context.Context, tenantID uuid.UUID, supplierIDs []uuid.UUID) (map[uuid.UUID]string, error) {
	out := make(map[uuid.UUID]string, len(supplierIDs))
	if len(supplierIDs) == 0 {
		return out, nil
	}
	query, args, err := sqlx.In("SELECT id, state FROM suppliers WHERE tenant_id = ? AND id IN (?)", tenantID, supplierIDs)
	if err != nil {
		return nil, fmt.Errorf("supplierRepo.States build: %w", err)
	}
	var rows []struct {
		ID    uuid.UUID `db:"id"`
		State string    `db:"state"`
	}
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("supplierRepo.States: %w", err)
	}
	for _, row := range rows {
		out[row.ID] = row.State
	}
	return out, nil
}
