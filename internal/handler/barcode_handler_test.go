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

func TestBarcodeHandler_Generate(t *testing.T) {
	tests := []struct {
		name   string
		body   any
		err    error
		status int
		code   string
	}{
		{"created", map[string]any{"product_id": uuid.New().String()}, nil, http.StatusCreated, ""},
		{"missing product id", map[string]any{"barcode_type": "qr_code"}, nil, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"already labelled", map[string]any{"product_id": uuid.New().String()}, domain.ErrBarcodeExists, http.StatusConflict, "BARCODE_EXISTS"},
		{"code taken", map[string]any{"product_id": uuid.New().String(), "custom_code": "TAKEN"}, domain.ErrDuplicateBarcode, http.StatusConflict, "DUPLICATE_BARCODE"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(mocks.MockBarcodeService)
			h := handler.NewBarcodeHandler(svc)
			if tc.err != nil {
				svc.On("Generate", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, tc.err)
			} else {
				svc.On("Generate", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(&domain.Barcode{Value: "GLD250315042917"}, nil)
			}

			c, w := newContext(http.MethodPost, "/api/v1/barcodes/generate", tc.body)
			setAuthContext(c, uuid.New(), uuid.New(), "manager")

			h.Generate(c)

			assert.Equal(t, tc.status, w.Code)
			if tc.code != "" {
				assert.Equal(t, tc.code, decodeResponse(t, w).Error.Code)
			}
		})
	}
}

func TestBarcodeHandler_Scan_UnknownCodeIsNotAnError(t *testing.T) {
	svc := new(mocks.MockBarcodeService)
	h := handler.NewBarcodeHandler(svc)
	tenantID := uuid.New()
	svc.On("Scan", mock.Anything, tenantID, "NOPE").Return(&service.ScanResult{Found: false}, nil)

	c, w := newContext(http.MethodPost, "/api/v1/barcodes/scan?barcode_value=NOPE", nil)
	setAuthContext(c, tenantID, uuid.New(), "staff")

	h.Scan(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w).Data.(map[string]any)
	assert.Equal(t, false, data["found"])
}

func TestBarcodeHandler_GetByProduct_NotFound(t *testing.T) {
	svc := new(mocks.MockBarcodeService)
	h := handler.NewBarcodeHandler(svc)
	tenantID, productID := uuid.New(), uuid.New()
	svc.On("GetByProduct", mock.Anything, tenantID, productID).Return(nil, domain.ErrBarcodeNotFound)

	c, w := newContext(http.MethodGet, "/api/v1/barcodes/product/"+productID.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: productID.String()}}
	setAuthContext(c, tenantID, uuid.New(), "staff")

	h.GetByProduct(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "BARCODE_NOT_FOUND", decodeResponse(t, w).Error.Code)
}

func TestBarcodeHandler_List_PassesTypeFilter(t *testing.T) {
	svc := new(mocks.MockBarcodeService)
	h := handler.NewBarcodeHandler(svc)
	tenantID := uuid.New()
	svc.On("List", mock.Anything, tenantID, domain.BarcodeQR, 0, 20).Return([]domain.Barcode{}, 0, nil)

	c, w := newContext(http.MethodGet, "/api/v1/barcodes?barcode_type=qr_code", nil)
	setAuthContext(c, tenantID, uuid.New(), "staff")

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}
