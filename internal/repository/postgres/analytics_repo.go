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

type analyticsRepo struct {
	db *sqlx.DB
}

// NewAnalyticsRepo creates a new PostgreSQL-backed AnalyticsRepository.
func NewAnalyticsRepo(db *sqlx.DB) port.AnalyticsRepository {
	return &analyticsRepo{db: db}
}

func (r *analyticsRepo) CustomerPurchases(ctx context.Context, tenantID, customerID uuid.UUID) ([]domain.CustomerPurchase, error) {
	out := []domain.CustomerPurchase{}
	err := r.db.SelectContext(ctx, &out,
		`SELECT s.id, s.invoice_number, s.created_at, s.grand_total, s.payment_method,
			(SELECT COUNT(*) FROM sale_items i WHERE i.sale_id = s.id) AS items_count
		 FROM sales s
		 WHERE s.tenant_id = $1 AND s.customer_id = $2 AND s.status = $3
		 ORDER BY s.created_at DESC, s.invoice_number DESC`,
		tenantID, customerID, domain.SaleStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("analyticsRepo.CustomerPurchases: %w", err)
	}
	return out, nil
}

func (r *analyticsRepo) TopCustomers(ctx context.Context, tenantID uuid.UUID, limit int) ([]domain.TopCustomer, error) {
	out := []domain.TopCustomer{}
	err := r.db.SelectContext(ctx, &out,
		`SELECT c.id AS customer_id, c.name AS customer_name, c.phone,
			SUM(s.grand_total) AS total_spent,
			COUNT(*) AS total_orders,
			MAX(s.created_at) AS last_purchase
		 FROM sales s
		 JOIN customers c ON c.id = s.customer_id
		 WHERE s.tenant_id = $1 AND s.status = $2
		 GROUP BY c.id, c.name, c.phone
		 ORDER BY total_spent DESC, c.name
		 LIMIT $3`,
		tenantID, domain.SaleStatusCompleted, limit)
	if err != nil {
		return nil, fmt.Errorf("analyticsRepo.TopCustomers: %w", err)
	}
	return out, nil
}

func (r *analyticsRepo) DailySales(ctx context.Context, tenantID uuid.UUID, since time.Time) ([]domain.SalesTrend, error) {
	out := []domain.SalesTrend{}
	err := r.db.SelectContext(ctx, &out,
		`SELECT (created_at AT TIME ZONE 'UTC')::date AS day,
			SUM(grand_total) AS total_sales,
			COUNT(*) AS orders_count
		 FROM sales
		 WHERE tenant_id = $1 AND status = $2 AND created_at >= $3
		 GROUP BY day
		 ORDER BY day`,
		tenantID, domain.SaleStatusCompleted, since)
	if err != nil {
		return nil, fmt.Errorf("analyticsRepo.DailySales: %w", err)
	}
	return out, nil
}

func (r *analyticsRepo) TopProducts(ctx context.Context, tenantID uuid.UUID, limit int) ([]domain.ProductPerformance, error) {
	out := []domain.ProductPerformance{}
	err := r.db.SelectContext(ctx, &out,
		`SELECT i.product_id,
			MAX(i.product_name) AS product_name,
			MAX(i.sku) AS sku,
			COALESCE(MAX(p.category), 'Unknown') AS category,
			SUM(i.quantity) AS quantity_sold,
			SUM(i.total_after_tax) AS revenue
		 FROM sale_items i
		 JOIN sales s ON s.id = i.sale_id
		 LEFT JOIN products p ON p.id = i.product_id
		 WHERE s.tenant_id = $1 AND s.status = $2
		 GROUP BY i.product_id
		 HAVING SUM(i.quantity) > 0
		 ORDER BY revenue DESC, product_name
		 LIMIT $3`,
		tenantID, domain.SaleStatusCompleted, limit)
	if err != nil {
		return nil, fmt.Errorf("analyticsRepo.TopProducts: %w", err)
	}
	return out, nil
}

func (r *analyticsRepo) SalesWindows(ctx context.Context, tenantID uuid.UUID, w domain.DashboardWindows) (*domain.SalesWindows, error) {
	var out domain.SalesWindows
	err := r.db.GetContext(ctx, &out,
		`SELECT COALESCE(SUM(grand_total), 0) AS total_revenue,
			COUNT(*) AS total_orders,
			COALESCE(SUM(grand_total) FILTER (WHERE created_at >= $3), 0) AS today_revenue,
			COUNT(*) FILTER (WHERE created_at >= $3) AS today_orders,
			COALESCE(SUM(grand_total) FILTER (WHERE created_at >= $4), 0) AS month_revenue,
			COUNT(*) FILTER (WHERE created_at >= $4) AS month_orders,
			COALESCE(SUM(grand_total) FILTER (WHERE created_at >= $5 AND created_at < $4), 0) AS last_month_revenue,
			COUNT(*) FILTER (WHERE created_at >= $5 AND created_at < $4) AS last_month_orders,
			COUNT(DISTINCT customer_id) FILTER (WHERE created_at >= $6) AS active_customers
		 FROM sales WHERE tenant_id = $1 AND status = $2`,
		tenantID, domain.SaleStatusCompleted, w.DayStart, w.MonthStart, w.LastMonthStart, w.ActiveSince)
	if err != nil {
		return nil, fmt.Errorf("analyticsRepo.SalesWindows: %w", err)
	}
	return &out, nil
}

func (r *analyticsRepo) StockTotals(ctx context.Context, tenantID uuid.UUID) (*domain.StockTotals, error) {
	var out domain.StockTotals
	err := r.db.GetContext(ctx, &out,
		`SELECT COUNT(*) AS total_products,
			COUNT(*) FILTER (WHERE is_low_stock) AS low_stock_products,
			COALESCE(SUM(base_price * quantity), 0) AS total_inventory_value,
			(SELECT COUNT(*) FROM customers WHERE tenant_id = $1) AS total_customers
		 FROM products WHERE tenant_id = $1`,
		tenantID)
	if err != nil {
		return nil, fmt.Errorf("analyticsRepo.StockTotals: %w", err)
	}
	return &out, nil
}
