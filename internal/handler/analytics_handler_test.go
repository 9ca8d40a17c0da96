package handler_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/handler"
	"github.com/cloudpospro-design/gold-jwellery-erp/mocks"
)

func TestAnalyticsHandler_SalesTrends_DaysValidation(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		days   int
		status int
	}{
		{"default", "", 30, http.StatusOK},
		{"explicit", "?days=7", 7, http.StatusOK},
		{"zero", "?days=0", 0, http.StatusBadRequest},
		{"too long", "?days=366", 0, http.StatusBadRequest},
		{"not a number", "?days=week", 0, http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(mocks.MockAnalyticsService)
			h := handler.NewAnalyticsHandler(svc)
			tenantID := uuid.New()
			if tc.status == http.StatusOK {
				svc.On("SalesTrends", mock.Anything, tenantID, tc.days).Return([]domain.SalesTrend{}, nil)
			}

			c, w := newContext(http.MethodGet, "/api/v1/analytics/sales-trends"+tc.query, nil)
			setAuthContext(c, tenantID, uuid.New(), "manager")

			h.SalesTrends(c)

			assert.Equal(t, tc.status, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestAnalyticsHandler_TopCustomers_LimitCapped(t *testing.T) {
	svc := new(mocks.MockAnalyticsService)
	h := handler.NewAnalyticsHandler(svc)

	c, w := newContext(http.MethodGet, "/api/v1/analytics/top-customers?limit=500", nil)
	setAuthContext(c, uuid.New(), uuid.New(), "manager")

	h.TopCustomers(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "TopCustomers", mock.Anything, mock.Anything, mock.Anything)
}

func TestAnalyticsHandler_Customer_NotFound(t *testing.T) {
	svc := new(mocks.MockAnalyticsService)
	h := handler.NewAnalyticsHandler(svc)
	tenantID, customerID := uuid.New(), uuid.New()
	svc.On("Customer", mock.Anything, tenantID, customerID).Return(nil, domain.ErrCustomerNotFound)

	c, w := newContext(http.MethodGet, "/api/v1/analytics/customers/"+customerID.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: customerID.String()}}
	setAuthContext(c, tenantID, uuid.New(), "manager")

	h.Customer(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "CUSTOMER_NOT_FOUND", decodeResponse(t, w).Error.Code)
}

func TestAnalyticsHandler_Dashboard(t *testing.T) {
	svc := new(mocks.MockAnalyticsService)
	h := handler.NewAnalyticsHandler(svc)
	tenantID := uuid.New()
	svc.On("Dashboard", mock.Anything, tenantID).Return(&domain.DashboardSummary{TotalOrders: 4}, nil)

	c, w := newContext(http.MethodGet, "/api/v1/analytics/dashboard", nil)
	setAuthContext(c, tenantID, uuid.New(), "staff")

	h.Dashboard(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeResponse(t, w).Success)
}
