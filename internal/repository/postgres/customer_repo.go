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

type customerRepo struct {
	db *sqlx.DB
}

// NewCustomerRepo creates a new PostgreSQL-backed CustomerRepository.
func NewCustomerRepo(db *sqlx.DB) port.CustomerRepository {
	return &customerRepo{db: db}
}

func (r *customerRepo) Create(ctx context.Context, c *domain.Customer) error {
	c.ID = uuid.New()
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO customers (id, tenant_id, name, email, phone, gstin, address, city, state, pincode,
			total_purchases, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		c.ID, c.TenantID, c.Name, c.Email, c.Phone, c.GSTIN, c.Address, c.City, c.State, c.Pincode,
		c.TotalPurchases, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicatePhone
		}
		return fmt.Errorf("customerRepo.Create: %w", err)
	}
	return nil
}

func (r *customerRepo) GetByID(ctx context.Context, tenantID, customerID uuid.UUID) (*domain.Customer, error) {
	var c domain.Customer
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &c,
		"SELECT * FROM customers WHERE id = $1 AND tenant_id = $2", customerID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("customerRepo.GetByID: %w", err)
	}
	return &c, nil
}

func (r *customerRepo) List(ctx context.Context, tenantID uuid.UUID, search string, offset, limit int) ([]domain.Customer, int, error) {
	cond := "tenant_id = $1"
	args := []any{tenantID}
	if s := strings.TrimSpace(search); s != "" {
		args = append(args, "%"+s+"%")
		cond += " AND (name ILIKE $2 OR phone ILIKE $2 OR email ILIKE $2)"
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM customers WHERE "+cond, args...); err != nil {
		return nil, 0, fmt.Errorf("customerRepo.List count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM customers WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		cond, len(args)+1, len(args)+2)
	var customers []domain.Customer
	if err := r.db.SelectContext(ctx, &customers, query, append(args, limit, offset)...); err != nil {
		return nil, 0, fmt.Errorf("customerRepo.List: %w", err)
	}
	return customers, total, nil
}

// AddPurchases only ever increases the running total.
func (r *customerRepo) AddPurchases(ctx context.Context, tenantID, customerID uuid.UUID, amount float64) error {
	if amount < 0 {
		return fmt.Errorf("customerRepo.AddPurchases: %w: negative amount", domain.ErrInvalidInput)
	}
	result, err := ext(ctx, r.db).ExecContext(ctx,
		`UPDATE customers SET total_purchases = total_purchases + $1, updated_at = $2
		 WHERE id = $3 AND tenant_id = $4`,
		amount, time.Now().UTC(), customerID, tenantID)
	if err != nil {
		return fmt.Errorf("customerRepo.AddPurchases: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}
