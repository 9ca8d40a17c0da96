package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/money"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/port"
)

const (
	maxAnalyticsLimit  = 100
	dashboardTopN      = 5
	activeCustomerDays = 30
)

// AnalyticsService reports on customers, products and sales over completed
// invoices. Sales trends and the dashboard are cached per tenant until the
// next sale or purchase receipt.
type AnalyticsService interface {
	Customer(ctx context.Context, tenantID, customerID uuid.UUID) (*domain.CustomerAnalytics, error)
	TopCustomers(ctx context.Context, tenantID uuid.UUID, limit int) ([]domain.TopCustomer, error)
	SalesTrends(ctx context.Context, tenantID uuid.UUID, days int) ([]domain.SalesTrend, error)
	ProductPerformance(ctx context.Context, tenantID uuid.UUID, limit int) ([]domain.ProductPerformance, error)
	Dashboard(ctx context.Context, tenantID uuid.UUID) (*domain.DashboardSummary, error)
}

// AnalyticsDeps groups the collaborators of AnalyticsService.
type AnalyticsDeps struct {
	Analytics port.AnalyticsRepository
	Customers port.CustomerRepository
	Cache     port.ReportCache
	// Now defaults to time.Now.
	Now func() time.Time
}

type analyticsService struct {
	AnalyticsDeps
}

// NewAnalyticsService creates a new AnalyticsService implementation.
func NewAnalyticsService(d AnalyticsDeps) AnalyticsService {
	if d.Now == nil {
		d.Now = time.Now
	}
	return &analyticsService{AnalyticsDeps: d}
}

func (s *analyticsService) Customer(ctx context.Context, tenantID, customerID uuid.UUID) (*domain.CustomerAnalytics, error) {
	customer, err := s.Customers.GetByID(ctx, tenantID, customerID)
	if err != nil {
		return nil, err
	}
	history, err := s.Analytics.CustomerPurchases(ctx, tenantID, customerID)
	if err != nil {
		return nil, fmt.Errorf("analyticsService.Customer: %w", err)
	}

	totals := make([]float64, len(history))
	for i := range history {
		totals[i] = history[i].TotalAmount
	}
	spent := money.Sum(totals...)

	out := &domain.CustomerAnalytics{
		CustomerID:        customer.ID,
		CustomerName:      customer.Name,
		TotalPurchases:    money.Round(spent),
		TotalOrders:       len(history),
		AverageOrderValue: average(spent, len(history)),
		PurchaseHistory:   history,
	}
	if len(history) == 0 {
		// No purchases yet; the customer's own creation date stands in.
		first := customer.CreatedAt
		out.FirstPurchaseDate = &first
		return out, nil
	}
	last, first := history[0].InvoiceDate, history[len(history)-1].InvoiceDate
	out.LastPurchaseDate = &last
	out.FirstPurchaseDate = &first
	return out, nil
}

func (s *analyticsService) TopCustomers(ctx context.Context, tenantID uuid.UUID, limit int) ([]domain.TopCustomer, error) {
	if err := checkLimit(limit); err != nil {
		return nil, err
	}
	rows, err := s.Analytics.TopCustomers(ctx, tenantID, limit)
	if err != nil {
		return nil, fmt.Errorf("analyticsService.TopCustomers: %w", err)
	}
	for i := range rows {
		rows[i].AverageOrderValue = average(rows[i].TotalSpent, rows[i].TotalOrders)
		rows[i].TotalSpent = money.Round(rows[i].TotalSpent)
	}
	return rows, nil
}

func (s *analyticsService) SalesTrends(ctx context.Context, tenantID uuid.UUID, days int) ([]domain.SalesTrend, error) {
	if days < 1 || days > 365 {
		return nil, fmt.Errorf("%w: days must be between 1 and 365", domain.ErrInvalidInput)
	}
	today := startOfDay(s.Now())
	since := today.AddDate(0, 0, -days)

	var out []domain.SalesTrend
	key := fmt.Sprintf("trends:%s:%d", today.Format(time.DateOnly), days)
	err := s.Cache.FetchJSON(ctx, tenantID, key, &out, func(ctx context.Context) (any, error) {
		rows, err := s.Analytics.DailySales(ctx, tenantID, since)
		if err != nil {
			return nil, err
		}
		for i := range rows {
			rows[i].AverageOrderValue = average(rows[i].TotalSales, rows[i].OrdersCount)
			rows[i].TotalSales = money.Round(rows[i].TotalSales)
		}
		return rows, nil
	})
	if err != nil {
		return nil, fmt.Errorf("analyticsService.SalesTrends: %w", err)
	}
	return out, nil
}

func (s *analyticsService) ProductPerformance(ctx context.Context, tenantID uuid.UUID, limit int) ([]domain.ProductPerformance, error) {
	if err := checkLimit(limit); err != nil {
		return nil, err
	}
	rows, err := s.topProducts(ctx, tenantID, limit)
	if err != nil {
		return nil, fmt.Errorf("analyticsService.ProductPerformance: %w", err)
	}
	return rows, nil
}

func (s *analyticsService) Dashboard(ctx context.Context, tenantID uuid.UUID) (*domain.DashboardSummary, error) {
	w := dashboardWindows(s.Now())

	// Sales figures only move on a sale or receipt, which bumps the cache.
	// Stock and customer counts change without one and are read fresh.
	var out domain.DashboardSummary
	key := "dashboard:" + w.DayStart.Format(time.DateOnly)
	err := s.Cache.FetchJSON(ctx, tenantID, key, &out, func(ctx context.Context) (any, error) {
		return s.dashboardSales(ctx, tenantID, w)
	})
	if err != nil {
		return nil, fmt.Errorf("analyticsService.Dashboard: %w", err)
	}

	stock, err := s.Analytics.StockTotals(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("analyticsService.Dashboard: %w", err)
	}
	out.TotalProducts = stock.TotalProducts
	out.LowStockProducts = stock.LowStockProducts
	out.TotalInventoryValue = money.Round(stock.TotalInventoryValue)
	out.TotalCustomers = stock.TotalCustomers
	return &out, nil
}

func (s *analyticsService) dashboardSales(ctx context.Context, tenantID uuid.UUID, w domain.DashboardWindows) (*domain.DashboardSummary, error) {
	sales, err := s.Analytics.SalesWindows(ctx, tenantID, w)
	if err != nil {
		return nil, err
	}
	products, err := s.topProducts(ctx, tenantID, dashboardTopN)
	if err != nil {
		return nil, err
	}
	customers, err := s.TopCustomers(ctx, tenantID, dashboardTopN)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardSummary{
		TotalRevenue:      money.Round(sales.TotalRevenue),
		TotalOrders:       sales.TotalOrders,
		AverageOrderValue: average(sales.TotalRevenue, sales.TotalOrders),
		TodayRevenue:      money.Round(sales.TodayRevenue),
		TodayOrders:       sales.TodayOrders,
		MonthRevenue:      money.Round(sales.MonthRevenue),
		MonthOrders:       sales.MonthOrders,
		RevenueGrowth:     growth(sales.MonthRevenue, sales.LastMonthRevenue),
		OrdersGrowth:      growth(float64(sales.MonthOrders), float64(sales.LastMonthOrders)),
		ActiveCustomers:   sales.ActiveCustomers,
		TopProducts:       products,
		TopCustomers:      customers,
	}, nil
}

func (s *analyticsService) topProducts(ctx context.Context, tenantID uuid.UUID, limit int) ([]domain.ProductPerformance, error) {
	rows, err := s.Analytics.TopProducts(ctx, tenantID, limit)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].AveragePrice = average(rows[i].Revenue, rows[i].QuantitySold)
		rows[i].Revenue = money.Round(rows[i].Revenue)
	}
	return rows, nil
}

// dashboardWindows slices time at UTC day and month boundaries. Last month
// runs up to, not including, the first of this month.
func dashboardWindows(now time.Time) domain.DashboardWindows {
	day := startOfDay(now)
	month := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	return domain.DashboardWindows{
		DayStart:       day,
		MonthStart:     month,
		LastMonthStart: month.AddDate(0, -1, 0),
		ActiveSince:    day.AddDate(0, 0, -activeCustomerDays),
	}
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func checkLimit(limit int) error {
	if limit < 1 || limit > maxAnalyticsLimit {
		return fmt.Errorf("%w: limit must be between 1 and %d", domain.ErrInvalidInput, maxAnalyticsLimit)
	}
	return nil
}

// average returns total/count rounded to two decimals, or 0 for no orders.
func average(total float64, count int) float64 {
	if count <= 0 {
		return 0
	}
	return money.Round(money.Share(total, float64(count)))
}

// growth is the percentage change from previous to current, 0 when there is
// no previous figure.
func growth(current, previous float64) float64 {
	if previous <= 0 {
		return 0
	}
	return money.Round(money.Share(money.Sum(current, -previous), previous) * 100)
}
