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

type purchaseOrderRepo struct {
	db *sqlx.DB
}

// NewPurchaseOrderRepo creates a new PostgreSQL-backed PurchaseOrderRepository.
func NewPurchaseOrderRepo(db *sqlx.DB) port.PurchaseOrderRepository {
	return &purchaseOrderRepo{db: db}
}

func (r *purchaseOrderRepo) Create(ctx context.Context, po *domain.PurchaseOrder) error {
	q := ext(ctx, r.db)
	po.ID = uuid.New()
	now := time.Now().UTC()
	po.CreatedAt = now
	po.UpdatedAt = now
	if po.OrderDate.IsZero() {
		po.OrderDate = now
	}

	_, err := q.ExecContext(ctx,
		`INSERT INTO purchase_orders (id, tenant_id, po_number, supplier_id, supplier_name, supplier_gstin,
			supplier_state, subtotal, gst_total, grand_total, status, order_date, expected_delivery,
			received_date, notes, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		po.ID, po.TenantID, po.PONumber, po.SupplierID, po.SupplierName, po.SupplierGSTIN,
		po.SupplierState, po.Subtotal, po.GSTTotal, po.GrandTotal, po.Status, po.OrderDate, po.ExpectedDelivery,
		po.ReceivedDate, po.Notes, po.CreatedBy, po.CreatedAt, po.UpdatedAt)
	if err != nil {
		return fmt.Errorf("purchaseOrderRepo.Create: %w", err)
	}

	for i := range po.Items {
		it := &po.Items[i]
		it.ID = uuid.New()
		it.PurchaseID = po.ID
		it.LineNo = i + 1
		_, err := q.ExecContext(ctx,
			`INSERT INTO purchase_order_items (id, purchase_order_id, line_no, product_id, product_name,
				quantity, unit_price, gst_rate, total_before_tax, tax_amount, total_after_tax)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			it.ID, it.PurchaseID, it.LineNo, it.ProductID, it.ProductName,
			it.Quantity, it.UnitPrice, it.GSTRate, it.TotalBeforeTax, it.TaxAmount, it.TotalAfterTax)
		if err != nil {
			return fmt.Errorf("purchaseOrderRepo.Create item %d: %w", it.LineNo, err)
		}
	}
	return nil
}

func (r *purchaseOrderRepo) GetByID(ctx context.Context, tenantID, poID uuid.UUID) (*domain.PurchaseOrder, error) {
	q := ext(ctx, r.db)
	var po domain.PurchaseOrder
	err := sqlx.GetContext(ctx, q, &po,
		"SELECT * FROM purchase_orders WHERE id = $1 AND tenant_id = $2", poID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("purchaseOrderRepo.GetByID: %w", err)
	}
	err = sqlx.SelectContext(ctx, q, &po.Items,
		"SELECT * FROM purchase_order_items WHERE purchase_order_id = $1 ORDER BY line_no", po.ID)
	if err != nil {
		return nil, fmt.Errorf("purchaseOrderRepo.GetByID items: %w", err)
	}
	return &po, nil
}

func (r *purchaseOrderRepo) List(ctx context.Context, tenantID uuid.UUID, status domain.POStatus, offset, limit int) ([]domain.PurchaseOrder, int, error) {
	cond := "tenant_id = $1"
	args := []any{tenantID}
	if status != "" {
		args = append(args, status)
		cond += " AND status = $2"
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM purchase_orders WHERE "+cond, args...); err != nil {
		return nil, 0, fmt.Errorf("purchaseOrderRepo.List count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM purchase_orders WHERE %s ORDER BY order_date DESC, created_at DESC LIMIT $%d OFFSET $%d",
		cond, len(args)+1, len(args)+2)
	var orders []domain.PurchaseOrder
	if err := r.db.SelectContext(ctx, &orders, query, append(args, limit, offset)...); err != nil {
		return nil, 0, fmt.Errorf("purchaseOrderRepo.List: %w", err)
	}
	return orders, total, nil
}

func (r *purchaseOrderRepo) MarkReceived(ctx context.Context, tenantID, poID uuid.UUID, at time.Time) error {
	q := ext(ctx, r.db)
	result, err := q.ExecContext(ctx,
		`UPDATE purchase_orders SET status = $1, received_date = $2, updated_at = $2
		 WHERE id = $3 AND tenant_id = $4 AND status NOT IN ($5, $6)`,
		domain.POStatusReceived, at, poID, tenantID, domain.POStatusReceived, domain.POStatusCancelled)
	if err != nil {
		return fmt.Errorf("purchaseOrderRepo.MarkReceived: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows > 0 {
		return nil
	}

	var status domain.POStatus
	err = sqlx.GetContext(ctx, q, &status,
		"SELECT status FROM purchase_orders WHERE id = $1 AND tenant_id = $2", poID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("purchaseOrderRepo.MarkReceived lookup: %w", err)
	}
	if status == domain.POStatusCancelled {
		return domain.ErrPOCancelled
	}
	return domain.ErrPOAlreadyReceived
}

func (r *purchaseOrderRepo) ListReceived(ctx context.Context, tenantID uuid.UUID, window domain.DateRange) ([]domain.PurchaseOrder, error) {
	var orders []domain.PurchaseOrder
	err := r.db.SelectContext(ctx, &orders,
		`SELECT * FROM purchase_orders
		 WHERE tenant_id = $1 AND status = $2 AND order_date >= $3 AND order_date <= $4
		 ORDER BY order_date`,
		tenantID, domain.POStatusReceived, window.From, window.To)
	if err != nil {
		return nil, fmt.Errorf("purchaseOrderRepo.ListReceived: %w", err)
	}
	return orders, nil
}

func (r *purchaseOrderRepo) ListForReconciliation(ctx context.Context, tenantID uuid.UUID, window *domain.DateRange) ([]domain.PurchaseOrder, error) {
	query := "SELECT * FROM purchase_orders WHERE tenant_id = $1"
	args := []any{tenantID}
	if window != nil {
		query += " AND order_date >= $2 AND order_date <= $3"
		args = append(args, window.From, window.To)
	}
	query += " ORDER BY order_date, created_at"

	var orders []domain.PurchaseOrder
	if err := r.db.SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("purchaseOrderRepo.ListForReconciliation: %w", err)
	}
	return orders, nil
}
