package domain

import (
	"time"

	"github.com/google/uuid"
)

// CustomerPurchase is one completed invoice in a customer's history.
type CustomerPurchase struct {
	SaleID        uuid.UUID     `db:"id" json:"sale_id"`
	InvoiceNumber string        `db:"invoice_number" json:"invoice_number"`
	InvoiceDate   time.Time     `db:"created_at" json:"invoice_date"`
	TotalAmount   float64       `db:"grand_total" json:"total_amount"`
	ItemsCount    int           `db:"items_count" json:"items_count"`
	PaymentMethod PaymentMethod `db:"payment_method" json:"payment_method"`
}

// CustomerAnalytics summarises what one customer has bought.
type CustomerAnalytics struct {
	CustomerID        uuid.UUID          `json:"customer_id"`
	CustomerName      string             `json:"customer_name"`
	TotalPurchases    float64            `json:"total_purchases"`
	TotalOrders       int                `json:"total_orders"`
	AverageOrderValue float64            `json:"average_order_value"`
	FirstPurchaseDate *time.Time         `json:"first_purchase_date"`
	LastPurchaseDate  *time.Time         `json:"last_purchase_date"`
	PurchaseHistory   []CustomerPurchase `json:"purchase_history"`
}

// TopCustomer ranks a customer by completed spend.
type TopCustomer struct {
	CustomerID        uuid.UUID `db:"customer_id" json:"customer_id"`
	CustomerName      string    `db:"customer_name" json:"customer_name"`
	Phone             string    `db:"phone" json:"phone"`
	TotalSpent        float64   `db:"total_spent" json:"total_spent"`
	TotalOrders       int       `db:"total_orders" json:"total_orders"`
	AverageOrderValue float64   `db:"-" json:"average_order_value"`
	LastPurchase      time.Time `db:"last_purchase" json:"last_purchase"`
}

// SalesTrend is one day of completed sales.
type SalesTrend struct {
	Date              time.Time `db:"day" json:"date"`
	TotalSales        float64   `db:"total_sales" json:"total_sales"`
	OrdersCount       int       `db:"orders_count" json:"orders_count"`
	AverageOrderValue float64   `db:"-" json:"average_order_value"`
}

// ProductPerformance ranks a product by revenue from completed sales.
type ProductPerformance struct {
	ProductID    uuid.UUID `db:"product_id" json:"product_id"`
	ProductName  string    `db:"product_name" json:"product_name"`
	SKU          string    `db:"sku" json:"sku"`
	Category     string    `db:"category" json:"category"`
	QuantitySold int       `db:"quantity_sold" json:"quantity_sold"`
	Revenue      float64   `db:"revenue" json:"revenue"`
	AveragePrice float64   `db:"-" json:"average_price"`
}

// DashboardWindows are the instants the dashboard slices completed sales by.
type DashboardWindows struct {
	DayStart       time.Time
	MonthStart     time.Time
	LastMonthStart time.Time
	ActiveSince    time.Time
}

// SalesWindows holds completed sales totals per dashboard window.
type SalesWindows struct {
	TotalRevenue     float64 `db:"total_revenue"`
	TotalOrders      int     `db:"total_orders"`
	TodayRevenue     float64 `db:"today_revenue"`
	TodayOrders      int     `db:"today_orders"`
	MonthRevenue     float64 `db:"month_revenue"`
	MonthOrders      int     `db:"month_orders"`
	LastMonthRevenue float64 `db:"last_month_revenue"`
	LastMonthOrders  int     `db:"last_month_orders"`
	ActiveCustomers  int     `db:"active_customers"`
}

// StockTotals holds the catalogue counts shown on the dashboard.
type StockTotals struct {
	TotalProducts       int     `db:"total_products"`
	LowStockProducts    int     `db:"low_stock_products"`
	TotalInventoryValue float64 `db:"total_inventory_value"`
	TotalCustomers      int     `db:"total_customers"`
}

// DashboardSummary is the business overview.
type DashboardSummary struct {
	TotalRevenue        float64              `json:"total_revenue"`
	TotalOrders         int                  `json:"total_orders"`
	AverageOrderValue   float64              `json:"average_order_value"`
	TodayRevenue        float64              `json:"today_revenue"`
	TodayOrders         int                  `json:"today_orders"`
	MonthRevenue        float64              `json:"month_revenue"`
	MonthOrders         int                  `json:"month_orders"`
	RevenueGrowth       float64              `json:"revenue_growth"`
	OrdersGrowth        float64              `json:"orders_growth"`
	TotalProducts       int                  `json:"total_products"`
	LowStockProducts    int                  `json:"low_stock_products"`
	TotalInventoryValue float64              `json:"total_inventory_value"`
	TotalCustomers      int                  `json:"total_customers"`
	ActiveCustomers     int                  `json:"active_customers"`
	TopProducts         []ProductPerformance `json:"top_products"`
	TopCustomers        []TopCustomer        `json:"top_customers"`
}
