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

type productRepo struct {
	db *sqlx.DB
}

// NewProductRepo creates a new PostgreSQL-backed ProductRepository.
func NewProductRepo(db *sqlx.DB) port.ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, p *domain.Product) error {
	p.ID = uuid.New()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	query := `INSERT INTO products (id, tenant_id, name, sku, description, category, gold_weight, purity,
		making_charges, stone_weight, stone_charges, hallmark_number, hsn_code, base_price, gst_rate,
		selling_price, quantity, low_stock_threshold, is_low_stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`

	_, err := ext(ctx, r.db).ExecContext(ctx, query,
		p.ID, p.TenantID, p.Name, p.SKU, p.Description, p.Category, p.GoldWeight, p.Purity,
		p.MakingCharges, p.StoneWeight, p.StoneCharges, p.HallmarkNumber, p.HSNCode, p.BasePrice, p.GSTRate,
		p.SellingPrice, p.Quantity, p.LowStockThreshold, p.IsLowStock, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSKU
		}
		return fmt.Errorf("productRepo.Create: %w", err)
	}
	return nil
}

func (r *productRepo) GetByID(ctx context.Context, tenantID, productID uuid.UUID) (*domain.Product, error) {
	var p domain.Product
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &p,
		"SELECT * FROM products WHERE id = $1 AND tenant_id = $2", productID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("productRepo.GetByID: %w", err)
	}
	return &p, nil
}

func (r *productRepo) List(ctx context.Context, tenantID uuid.UUID, filter domain.ProductFilter, offset, limit int) ([]domain.Product, int, error) {
	where := []string{"tenant_id = $1"}
	args := []any{tenantID}
	if s := strings.TrimSpace(filter.Search); s != "" {
		args = append(args, "%"+s+"%")
		where = append(where, fmt.Sprintf("(name ILIKE $%d OR sku ILIKE $%d)", len(args), len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.LowStockOnly {
		where = append(where, "is_low_stock = true")
	}
	cond := strings.Join(where, " AND ")

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM products WHERE "+cond, args...); err != nil {
		return nil, 0, fmt.Errorf("productRepo.List count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM products WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		cond, len(args)+1, len(args)+2)
	var products []domain.Product
	if err := r.db.SelectContext(ctx, &products, query, append(args, limit, offset)...); err != nil {
		return nil, 0, fmt.Errorf("productRepo.List: %w", err)
	}
	return products, total, nil
}

func (r *productRepo) ListLowStock(ctx context.Context, tenantID uuid.UUID) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.SelectContext(ctx, &products,
		"SELECT * FROM products WHERE tenant_id = $1 AND is_low_stock = true ORDER BY quantity, name", tenantID)
	if err != nil {
		return nil, fmt.Errorf("productRepo.ListLowStock: %w", err)
	}
	return products, nil
}

func (r *productRepo) ListByPurities(ctx context.Context, tenantID uuid.UUID, purities []string) ([]domain.Product, error) {
	if len(purities) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In("SELECT * FROM products WHERE tenant_id = ? AND purity IN (?) ORDER BY id", tenantID, purities)
	if err != nil {
		return nil, fmt.Errorf("productRepo.ListByPurities build: %w", err)
	}
	var products []domain.Product
	if err := r.db.SelectContext(ctx, &products, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("productRepo.ListByPurities: %w", err)
	}
	return products, nil
}

// Update stores every editable field except quantity, which only moves
// through AdjustStock. The low-stock flag is recomputed from the stored
// quantity and the new threshold, and both are written back to p.
func (r *productRepo) Update(ctx context.Context, p *domain.Product) error {
	p.UpdatedAt = time.Now().UTC()
	query := `UPDATE products SET name = $1, sku = $2, description = $3, category = $4, gold_weight = $5,
		purity = $6, making_charges = $7, stone_weight = $8, stone_charges = $9, hallmark_number = $10,
		hsn_code = $11, base_price = $12, gst_rate = $13, selling_price = $14,
		low_stock_threshold = $15, is_low_stock = quantity <= $15, updated_at = $16
		WHERE id = $17 AND tenant_id = $18
		RETURNING quantity, is_low_stock`
	err := ext(ctx, r.db).QueryRowxContext(ctx, query,
		p.Name, p.SKU, p.Description, p.Category, p.GoldWeight,
		p.Purity, p.MakingCharges, p.StoneWeight, p.StoneCharges, p.HallmarkNumber,
		p.HSNCode, p.BasePrice, p.GSTRate, p.SellingPrice,
		p.LowStockThreshold, p.UpdatedAt,
		p.ID, p.TenantID).Scan(&p.Quantity, &p.IsLowStock)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrProductNotFound
		}
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSKU
		}
		return fmt.Errorf("productRepo.Update: %w", err)
	}
	return nil
}

// UpdatePricing stores the new prices. The low-stock flag is rewritten from the
// row's own quantity so it is never stale after a reprice.
func (r *productRepo) UpdatePricing(ctx context.Context, tenantID, productID uuid.UUID, basePrice, sellingPrice float64) error {
	result, err := ext(ctx, r.db).ExecContext(ctx,
		`UPDATE products SET base_price = $1, selling_price = $2,
			is_low_stock = quantity <= low_stock_threshold, updated_at = $3
		 WHERE id = $4 AND tenant_id = $5`,
		basePrice, sellingPrice, time.Now().UTC(), productID, tenantID)
	if err != nil {
		return fmt.Errorf("productRepo.UpdatePricing: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *productRepo) Delete(ctx context.Context, tenantID, productID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM products WHERE id = $1 AND tenant_id = $2", productID, tenantID)
	if err != nil {
		return fmt.Errorf("productRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

const adjustStockQuery = `
WITH prev AS (
	SELECT id, quantity, is_low_stock FROM products
	WHERE id = $1 AND tenant_id = $2
	FOR UPDATE
)
UPDATE products p
SET quantity = p.quantity + $3,
	is_low_stock = (p.quantity + $3) <= p.low_stock_threshold,
	updated_at = $4
FROM prev
WHERE p.id = prev.id AND p.quantity + $3 >= 0
RETURNING p.id, p.name, p.sku, p.quantity, p.low_stock_threshold, p.is_low_stock,
	prev.is_low_stock AS was_low_stock, prev.quantity AS previous_quantity`

func (r *productRepo) AdjustStock(ctx context.Context, tenantID, productID uuid.UUID, delta int) (*domain.StockChange, error) {
	q := ext(ctx, r.db)
	var change domain.StockChange
	err := sqlx.GetContext(ctx, q, &change, adjustStockQuery, productID, tenantID, delta, time.Now().UTC())
	if err == nil {
		return &change, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("productRepo.AdjustStock: %w", err)
	}

	// no row updated: either the product is missing or stock would go negative
	var name string
	err = sqlx.GetContext(ctx, q, &name,
		"SELECT name FROM products WHERE id = $1 AND tenant_id = $2", productID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("productRepo.AdjustStock lookup: %w", err)
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrInsufficientStock, name)
}
