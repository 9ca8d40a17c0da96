package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/service"
)

// AnalyticsHandler serves customer, product and sales analytics.
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// intQuery reads an integer query param within [lo, hi], writing a 400 when
// it is malformed or out of range.
func intQuery(c *gin.Context, name, def string, lo, hi int) (int, bool) {
	v, err := strconv.Atoi(c.DefaultQuery(name, def))
	if err != nil || v < lo || v > hi {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR",
			name+" must be between "+strconv.Itoa(lo)+" and "+strconv.Itoa(hi))
		return 0, false
	}
	return v, true
}

// Customer handles GET /api/v1/analytics/customers/:id
// @Summary Customer analytics
// @Description Purchase history, totals and first and last purchase of one customer
// @Tags analytics
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} Response{data=domain.CustomerAnalytics} "Customer analytics"
// @Failure 404 {object} ErrorResponseBody "Customer not found"
// @Security BearerAuth
// @Router /analytics/customers/{id} [get]
func (h *AnalyticsHandler) Customer(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	customerID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	a, err := h.analyticsService.Customer(c.Request.Context(), tenantID, customerID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, a)
}

// TopCustomers handles GET /api/v1/analytics/top-customers
// @Summary Top customers by spend
// @Tags analytics
// @Produce json
// @Param limit query int false "1 to 100" default(10)
// @Success 200 {object} Response{data=[]domain.TopCustomer} "Customers"
// @Failure 400 {object} ErrorResponseBody "Invalid limit"
// @Security BearerAuth
// @Router /analytics/top-customers [get]
func (h *AnalyticsHandler) TopCustomers(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	limit, ok := intQuery(c, "limit", "10", 1, 100)
	if !ok {
		return
	}

	rows, err := h.analyticsService.TopCustomers(c.Request.Context(), tenantID, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rows)
}

// SalesTrends handles GET /api/v1/analytics/sales-trends
// @Summary Daily sales trend
// @Tags analytics
// @Produce json
// @Param days query int false "Look-back window, 1 to 365" default(30)
// @Success 200 {object} Response{data=[]domain.SalesTrend} "One row per day with sales"
// @Failure 400 {object} ErrorResponseBody "Invalid days"
// @Security BearerAuth
// @Router /analytics/sales-trends [get]
func (h *AnalyticsHandler) SalesTrends(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	days, ok := intQuery(c, "days", "30", 1, 365)
	if !ok {
		return
	}

	rows, err := h.analyticsService.SalesTrends(c.Request.Context(), tenantID, days)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rows)
}

// ProductPerformance handles GET /api/v1/analytics/product-performance
// @Summary Top products by revenue
// @Tags analytics
// @Produce json
// @Param limit query int false "1 to 100" default(10)
// @Success 200 {object} Response{data=[]domain.ProductPerformance} "Products"
// @Failure 400 {object} ErrorResponseBody "Invalid limit"
// @Security BearerAuth
// @Router /analytics/product-performance [get]
func (h *AnalyticsHandler) ProductPerformance(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	limit, ok := intQuery(c, "limit", "10", 1, 100)
	if !ok {
		return
	}

	rows, err := h.analyticsService.ProductPerformance(c.Request.Context(), tenantID, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rows)
}

// Dashboard handles GET /api/v1/analytics/dashboard
// @Summary Business dashboard
// @Description Revenue by day and month with month-on-month growth, stock and customer counts, top five products and customers
// @Tags analytics
// @Produce json
// @Success 200 {object} Response{data=domain.DashboardSummary} "Dashboard"
// @Security BearerAuth
// @Router /analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	d, err := h.analyticsService.Dashboard(c.Request.Context(), tenantID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, d)
}
