package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/handler"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/logger"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/router"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/service"
	"github.com/cloudpospro-design/gold-jwellery-erp/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fixture struct {
	engine    *gin.Engine
	auth      *mocks.MockAuthService
	customers *mocks.MockCustomerService
}

func newFixture(swagger bool) *fixture {
	authSvc := new(mocks.MockAuthService)
	customerSvc := new(mocks.MockCustomerService)
	h := router.Handlers{
		Auth:         handler.NewAuthHandler(authSvc),
		Tenant:       handler.NewTenantHandler(new(mocks.MockTenantService)),
		User:         handler.NewUserHandler(new(mocks.MockUserService)),
		Health:       handler.NewHealthHandler(nil, nil),
		Inventory:    handler.NewInventoryHandler(new(mocks.MockInventoryService)),
		Customer:     handler.NewCustomerHandler(customerSvc),
		Sale:         handler.NewSaleHandler(new(mocks.MockSaleService)),
		GoldRate:     handler.NewGoldRateHandler(new(mocks.MockGoldRateService)),
		KaratPricing: handler.NewKaratPricingHandler(new(mocks.MockKaratPricingService)),
		Purchase:     handler.NewPurchaseHandler(new(mocks.MockPurchaseService)),
		Karigar:      handler.NewKarigarHandler(new(mocks.MockKarigarService)),
		GSTReport:    handler.NewGSTReportHandler(new(mocks.MockGSTReportService), new(mocks.MockTenantService)),
		AdvancedGST:  handler.NewAdvancedGSTHandler(new(mocks.MockAdvancedGSTService)),
		Analytics:    handler.NewAnalyticsHandler(new(mocks.MockAnalyticsService)),
		Barcode:      handler.NewBarcodeHandler(new(mocks.MockBarcodeService)),
		Notification: handler.NewNotificationHandler(new(mocks.MockNotificationService)),
		WS:           handler.NewWSHandler(nil),
	}
	r := router.Setup(authSvc, h, router.Options{
		Log:            logger.Discard(),
		AllowedOrigins: []string{"http://localhost:3000"},
		EnableSwagger:  swagger,
	})
	return &fixture{engine: r, auth: authSvc, customers: customerSvc}
}

func (f *fixture) do(method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, http.NoBody)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

func (f *fixture) tokenFor(token string, role domain.UserRole) uuid.UUID {
	tenantID := uuid.New()
	f.auth.On("ValidateToken", token).Return(&service.Claims{
		TenantID: tenantID,
		UserID:   uuid.New(),
		Email:    "staff@lakshmi.in",
		Role:     role,
	}, nil)
	return tenantID
}

func TestSetup_Liveness(t *testing.T) {
	f := newFixture(false)

	w := f.do(http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestSetup_ProtectedRoutesRequireToken(t *testing.T) {
	f := newFixture(false)

	for _, path := range []string{
		"/api/v1/customers",
		"/api/v1/gst-reports/gstr1",
		"/api/v1/advanced-gst/reconciliation/012025",
		"/api/v1/analytics/dashboard",
		"/api/v1/barcodes",
		"/api/v1/admin/tenants",
	} {
		t.Run(path, func(t *testing.T) {
			w := f.do(http.MethodGet, path, "")
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestSetup_RoleGates(t *testing.T) {
	f := newFixture(false)
	f.tokenFor("staff-token", domain.RoleStaff)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/purchases/suppliers"},
		{http.MethodGet, "/api/v1/karigars"},
		{http.MethodGet, "/api/v1/gst-reports/gstr3b"},
		{http.MethodPost, "/api/v1/gold-rates"},
		{http.MethodPut, "/api/v1/settings/business"},
		{http.MethodPost, "/api/v1/barcodes/generate"},
		{http.MethodPost, "/api/v1/barcodes/generate-bulk"},
		{http.MethodGet, "/api/v1/admin/tenants"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := f.do(tt.method, tt.path, "staff-token")
			assert.Equal(t, http.StatusForbidden, w.Code)
		})
	}
}

func TestSetup_StaffReachesCustomerList(t *testing.T) {
	f := newFixture(false)
	tenantID := f.tokenFor("staff-token", domain.RoleStaff)
	f.customers.On("List", mock.Anything, tenantID, "", 0, 20).Return([]domain.Customer{}, 0, nil)

	w := f.do(http.MethodGet, "/api/v1/customers", "staff-token")

	assert.Equal(t, http.StatusOK, w.Code)
	f.customers.AssertExpectations(t)
}

func TestSetup_SwaggerToggle(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, newFixture(false).do(http.MethodGet, "/swagger/index.html", "").Code)
	assert.Equal(t, http.StatusOK, newFixture(true).do(http.MethodGet, "/swagger/index.html", "").Code)
}

func TestSetup_WebsocketNeedsQueryToken(t *testing.T) {
	f := newFixture(false)

	w := f.do(http.MethodGet, "/ws", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
