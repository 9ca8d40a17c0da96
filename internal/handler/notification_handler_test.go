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
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/service"
	"github.com/cloudpospro-design/gold-jwellery-erp/mocks"
)

func TestNotificationHandler_ShareInvoice(t *testing.T) {
	tenantID, saleID := uuid.New(), uuid.New()

	tests := []struct {
		name   string
		body   any
		input  service.ShareInvoiceInput
		err    error
		status int
	}{
		{"customer email on file", nil, service.ShareInvoiceInput{}, nil, http.StatusAccepted},
		{"override", map[string]string{"email": "accounts@asha.in"}, service.ShareInvoiceInput{Email: "accounts@asha.in"}, nil, http.StatusAccepted},
		{"no address", nil, service.ShareInvoiceInput{}, domain.ErrInvalidInput, http.StatusBadRequest},
		{"unknown sale", nil, service.ShareInvoiceInput{}, domain.ErrSaleNotFound, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mocks.MockNotificationService)
			h := handler.NewNotificationHandler(svc)
			var n *domain.Notification
			if tt.err == nil {
				n = &domain.Notification{RecipientEmail: "asha@example.in"}
			}
			svc.On("ShareInvoice", mock.Anything, tenantID, saleID, tt.input).Return(n, tt.err)

			c, w := newContext(http.MethodPost, "/api/v1/notifications/invoice/"+saleID.String(), tt.body)
			c.Params = gin.Params{{Key: "sale_id", Value: saleID.String()}}
			setAuthContext(c, tenantID, uuid.New(), "staff")

			h.ShareInvoice(c)

			assert.Equal(t, tt.status, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestNotificationHandler_ShareInvoice_BadEmail(t *testing.T) {
	svc := new(mocks.MockNotificationService)
	h := handler.NewNotificationHandler(svc)

	saleID := uuid.New()
	c, w := newContext(http.MethodPost, "/x", map[string]string{"email": "not-an-email"})
	c.Params = gin.Params{{Key: "sale_id", Value: saleID.String()}}
	setAuthContext(c, uuid.New(), uuid.New(), "staff")

	h.ShareInvoice(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNotificationHandler_Stats(t *testing.T) {
	svc := new(mocks.MockNotificationService)
	h := handler.NewNotificationHandler(svc)

	tenantID := uuid.New()
	svc.On("Stats", mock.Anything, tenantID).Return(&domain.NotificationStats{TotalSent: 4, ByType: map[string]int{"stock_alert": 4}}, nil)

	c, w := newContext(http.MethodGet, "/api/v1/notifications/stats", nil)
	setAuthContext(c, tenantID, uuid.New(), "staff")

	h.Stats(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w).Data.(map[string]any)
	assert.Equal(t, float64(4), data["total_sent"])
}
