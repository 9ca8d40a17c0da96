package handler_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/handler"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/service"
	"github.com/cloudpospro-design/gold-jwellery-erp/mocks"
)

func TestGoldRateHandler_SetRates_Validation(t *testing.T) {
	svc := new(mocks.MockGoldRateService)
	h := handler.NewGoldRateHandler(svc)

	c, w := newContext(http.MethodPost, "/api/v1/gold-rates", map[string]any{
		"rates": []map[string]any{{"purity": "22K", "rate_per_gram": 0}},
	})
	setAuthContext(c, uuid.New(), uuid.New(), "manager")

	h.SetRates(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGoldRateHandler_ApplyToProducts_Accepted(t *testing.T) {
	svc := new(mocks.MockGoldRateService)
	h := handler.NewGoldRateHandler(svc)

	tenantID := uuid.New()
	svc.On("ApplyToProducts", mock.Anything, tenantID).
		Return(&service.ApplyRatesResult{TaskID: "task-1", Rates: map[string]float64{"22K": 6500}}, nil)

	c, w := newContext(http.MethodPost, "/api/v1/gold-rates/apply-to-products", nil)
	setAuthContext(c, tenantID, uuid.New(), "manager")

	h.ApplyToProducts(c)

	assert.Equal(t, http.StatusAccepted, w.Code)
	data := decodeResponse(t, w).Data.(map[string]any)
	assert.Equal(t, "task-1", data["task_id"])
}

func TestGoldRateHandler_History(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"default window", "", http.StatusOK},
		{"explicit", "?purity=22K&days=7", http.StatusOK},
		{"zero days", "?days=0", http.StatusBadRequest},
		{"too long", "?days=1000", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mocks.MockGoldRateService)
			h := handler.NewGoldRateHandler(svc)
			svc.On("History", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]service.RateHistoryItem{}, nil)

			c, w := newContext(http.MethodGet, "/api/v1/gold-rates/history"+tt.query, nil)
			setAuthContext(c, uuid.New(), uuid.New(), "staff")

			h.History(c)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestGoldRateHandler_Current_NoRates(t *testing.T) {
	svc := new(mocks.MockGoldRateService)
	h := handler.NewGoldRateHandler(svc)
	svc.On("Current", mock.Anything, mock.Anything).Return(nil, domain.ErrGoldRateNotFound)

	c, w := newContext(http.MethodGet, "/api/v1/gold-rates/current", nil)
	setAuthContext(c, uuid.New(), uuid.New(), "staff")

	h.Current(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
