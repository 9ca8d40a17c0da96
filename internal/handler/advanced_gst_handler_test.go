package handler_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/handler"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/reconcile"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/service"
	"github.com/cloudpospro-design/gold-jwellery-erp/mocks"
)

func multipartImport(t *testing.T, period string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if content != nil {
		fw, err := mw.CreateFormFile("file", "gstr2a_012025.json")
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.WriteField("filing_period", period))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/advanced-gst/gstr2a/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestAdvancedGSTHandler_ImportGSTR2A(t *testing.T) {
	svc := new(mocks.MockAdvancedGSTService)
	h := handler.NewAdvancedGSTHandler(svc)

	tenantID, userID := uuid.New(), uuid.New()
	payload := []byte(`{"b2b":[]}`)
	svc.On("Import", mock.Anything, service.ImportReturnInput{
		TenantID:     tenantID,
		UserID:       userID,
		Kind:         domain.ReturnGSTR2A,
		FilingPeriod: "012025",
		FileName:     "gstr2a_012025.json",
		Data:         payload,
	}).Return(&service.ImportResult{Imported: 0, FilingPeriod: "012025"}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = multipartImport(t, "012025", payload)
	setAuthContext(c, tenantID, userID, "manager")

	h.ImportGSTR2A(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
}

func TestAdvancedGSTHandler_Import_MissingFile(t *testing.T) {
	svc := new(mocks.MockAdvancedGSTService)
	h := handler.NewAdvancedGSTHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = multipartImport(t, "012025", nil)
	setAuthContext(c, uuid.New(), uuid.New(), "manager")

	h.ImportGSTR2B(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "MISSING_FILE", decodeResponse(t, w).Error.Code)
}

func TestAdvancedGSTHandler_Import_BadPeriod(t *testing.T) {
	svc := new(mocks.MockAdvancedGSTService)
	h := handler.NewAdvancedGSTHandler(svc)
	svc.On("Import", mock.Anything, mock.AnythingOfType("service.ImportReturnInput")).Return(nil, domain.ErrInvalidFilingPeriod)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = multipartImport(t, "2025-01", []byte(`{}`))
	setAuthContext(c, uuid.New(), uuid.New(), "manager")

	h.ImportGSTR2A(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_FILING_PERIOD", decodeResponse(t, w).Error.Code)
}

func TestAdvancedGSTHandler_Reconcile(t *testing.T) {
	tenantID := uuid.New()

	tests := []struct {
		name   string
		rep    *reconcile.Report
		err    error
		status int
	}{
		{"report", &reconcile.Report{FilingPeriod: "012025", MatchedCount: 3}, nil, http.StatusOK},
		{"already running", nil, domain.ErrLockHeld, http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mocks.MockAdvancedGSTService)
			h := handler.NewAdvancedGSTHandler(svc)
			svc.On("Reconcile", mock.Anything, tenantID, "012025").Return(tt.rep, tt.err)

			c, w := newContext(http.MethodGet, "/api/v1/advanced-gst/reconciliation/012025", nil)
			c.Params = gin.Params{{Key: "period", Value: "012025"}}
			setAuthContext(c, tenantID, uuid.New(), "manager")

			h.Reconcile(c)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestAdvancedGSTHandler_EInvoice(t *testing.T) {
	tenantID, userID, saleID := uuid.New(), uuid.New(), uuid.New()

	t.Run("duplicate generate", func(t *testing.T) {
		svc := new(mocks.MockAdvancedGSTService)
		h := handler.NewAdvancedGSTHandler(svc)
		svc.On("GenerateEInvoice", mock.Anything, tenantID, userID, service.GenerateEInvoiceInput{SaleID: saleID}).
			Return(nil, domain.ErrEInvoiceExists)

		c, w := newContext(http.MethodPost, "/api/v1/advanced-gst/einvoice/generate", map[string]any{"sale_id": saleID})
		setAuthContext(c, tenantID, userID, "manager")

		h.GenerateEInvoice(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("cancel with short reason", func(t *testing.T) {
		svc := new(mocks.MockAdvancedGSTService)
		h := handler.NewAdvancedGSTHandler(svc)
		id := uuid.New()
		svc.On("CancelEInvoice", mock.Anything, tenantID, id, service.CancelEInvoiceInput{Reason: "typo"}).
			Return(nil, domain.ErrCancelReasonTooShort)

		c, w := newContext(http.MethodPost, "/x", map[string]any{"reason": "typo"})
		c.Params = gin.Params{{Key: "id", Value: id.String()}}
		setAuthContext(c, tenantID, userID, "manager")

		h.CancelEInvoice(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "CANCEL_REASON_TOO_SHORT", decodeResponse(t, w).Error.Code)
	})
}
