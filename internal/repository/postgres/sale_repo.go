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

type saleRepo struct {
	db *sqlx.DB
}

// NewSaleRepo creates a new PostgreSQL-backed SaleRepository.
func NewSaleRepo(db *sqlx.DB) port.SaleRepository {
	return &saleRepo{db: db}
}

// Create inserts the sale header and its items. Callers run it inside a
// transaction so a failed item insert leaves no header behind.
func (r *saleRepo) Create(ctx context.Context, s *domain.Sale) error {
	q := ext(ctx, r.db)
	s.ID = uuid.New()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}

	_, err := q.ExecContext(ctx,
		`INSERT INTO sales (id, tenant_id, invoice_number, customer_id, customer_name, customer_gstin,
			customer_state, subtotal, cgst, sgst, igst, total_tax, grand_total, payment_method, status,
			notes, created_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		s.ID, s.TenantID, s.InvoiceNumber, s.CustomerID, s.CustomerName, s.CustomerGSTIN,
		s.CustomerState, s.Subtotal, s.CGST, s.SGST, s.IGST, s.TotalTax, s.GrandTotal, s.PaymentMethod, s.Status,
		s.Notes, s.CreatedBy, s.CreatedAt)
	if err != nil {
		if constraint, ok := uniqueConstraint(err); ok {
			return fmt.Errorf("saleRepo.Create: duplicate invoice number (%s): %w", constraint, err)
		}
		return fmt.Errorf("saleRepo.Create: %w", err)
	}

	for i := range s.Items {
		it := &s.Items[i]
		it.ID = uuid.New()
		it.SaleID = s.ID
		it.LineNo = i + 1
		_, err := q.ExecContext(ctx,
			`INSERT INTO sale_items (id, sale_id, line_no, product_id, product_name, sku, quantity, unit_price,
				hsn_code, gst_rate, total_before_tax, tax_amount, total_after_tax)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			it.ID, it.SaleID, it.LineNo, it.ProductID, it.ProductName, it.SKU, it.Quantity, it.UnitPrice,
			it.HSNCode, it.GSTRate, it.TotalBeforeTax, it.TaxAmount, it.TotalAfterTax)
		if err != nil {
			return fmt.Errorf("saleRepo.Create item %d: %w", it.LineNo, err)
		}
	}
	return nil
}

func (r *saleRepo) GetByID(ctx context.Context, tenantID, saleID uuid.UUID) (*domain.Sale, error) {
	var s domain.Sale
	err := r.db.GetContext(ctx, &s,
		"SELECT * FROM sales WHERE id = $1 AND tenant_id = $2", saleID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSaleNotFound
		}
		return nil, fmt.Errorf("saleRepo.GetByID: %w", err)
	}
	err = r.db.SelectContext(ctx, &s.Items,
		"SELECT * FROM sale_items WHERE sale_id = $1 ORDER BY line_no", s.ID)
	if err != nil {
		return nil, fmt.Errorf("saleRepo.GetByID items: %w", err)
	}
	return &s, nil
}

func (r *saleRepo) List(ctx context.Context, tenantID uuid.UUID, filter domain.SaleFilter, offset, limit int) ([]domain.Sale, int, error) {
	where := []string{"tenant_id = $1"}
	args := []any{tenantID}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		where = append(where, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		where = append(where, fmt.Sprintf("created_at <= $%d", len(args)))
	}
	cond := strings.Join(where, " AND ")

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM sales WHERE "+cond, args...); err != nil {
		return nil, 0, fmt.Errorf("saleRepo.List count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM sales WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		cond, len(args)+1, len(args)+2)
	var sales []domain.Sale
	if err := r.db.SelectContext(ctx, &sales, query, append(args, limit, offset)...); err != nil {
		return nil, 0, fmt.Errorf("saleRepo.List: %w", err)
	}
	return sales, total, nil
}

func (r *saleRepo) ListCompleted(ctx context.Context, tenantID uuid.UUID, window domain.DateRange) ([]domain.Sale, error) {
	var sales []domain.Sale
	err := r.db.SelectContext(ctx, &sales,
		`SELECT * FROM sales
		 WHERE tenant_id = $1 AND status = $2 AND created_at >= $3 AND created_at <= $4
		 ORDER BY created_at, invoice_number`,
		tenantID, domain.SaleStatusCompleted, window.From, window.To)
	if err != nil {
		return nil, fmt.Errorf("saleRepo.ListCompleted: %w", err)
	}
	if len(sales) == 0 {
		return sales, nil
	}

	ids := make([]uuid.UUID, len(sales))
	index := make(map[uuid.UUID]int, len(sales))
	for i := range sales {
		ids[i] = sales[i].ID
		index[sales[i].ID] = i
	}
	query, args, err := sqlx.In("SELECT * FROM sale_items WHERE sale_id IN (?) ORDER BY sale_id, line_no", ids)
	if err != nil {
		return nil, fmt.Errorf("saleRepo.ListCompleted items build: %w", err)
	}
	var items []domain.SaleItem
	if err := r.db.SelectContext(ctx, &items, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("saleRepo.ListCompleted items: %w", err)
	}
	for _, it := range items {
		s := &sales[index[it.SaleID]]
		s.Items = append(s.Items, it)
	}
	return sales, nil
}

func (r *saleRepo) Summary(ctx context.Context, tenantID uuid.UUID, dayStart time.Time) (*domain.SalesSummary, error) {
	var sum domain.SalesSummary
	err := r.db.GetContext(ctx, &sum,
		`SELECT COUNT(*) AS total_sales,
			COALESCE(SUM(grand_total), 0) AS total_revenue,
			COUNT(*) FILTER (WHERE created_at >= $2) AS today_sales,
			COALESCE(SUM(grand_total) FILTER (WHERE created_at >= $2), 0) AS today_revenue
		 FROM sales WHERE tenant_id = $1 AND status = $3`,
		tenantID, dayStart, domain.SaleStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("saleRepo.Summary: %w", err)
	}
	return &sum, nil
}
