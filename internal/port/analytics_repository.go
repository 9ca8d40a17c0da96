package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
)

// AnalyticsRepository aggregates completed sales. Only sales with status
// completed are counted.
type AnalyticsRepository interface {
	// CustomerPurchases returns the customer's invoices, newest first.
	CustomerPurchases(ctx context.Context, tenantID, customerID uuid.UUID) ([]domain.CustomerPurchase, error)
	// TopCustomers returns customers with at least one sale, highest spend first.
	TopCustomers(ctx context.Context, tenantID uuid.UUID, limit int) ([]domain.TopCustomer, error)
	// DailySales returns one row per day with sales since the given instant, oldest first.
	DailySales(ctx context.Context, tenantID uuid.UUID, since time.Time) ([]domain.SalesTrend, error)
	// TopProducts returns products by revenue, highest first.
	TopProducts(ctx context.Context, tenantID uuid.UUID, limit int) ([]domain.ProductPerformance, error)
	SalesWindows(ctx context.Context, tenantID uuid.UUID, w domain.DashboardWindows) (*domain.SalesWindows, error)
	StockTotals(ctx context.Context, tenantID uuid.UUID) (*domain.StockTotals, error)
}
