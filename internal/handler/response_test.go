package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/handler"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"product not found", domain.ErrProductNotFound, http.StatusNotFound, "PRODUCT_NOT_FOUND"},
		{"wrapped not found", fmt.Errorf("saleRepo.GetByID: %w", domain.ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"duplicate sku", domain.ErrDuplicateSKU, http.StatusConflict, "DUPLICATE_SKU"},
		{"double receive", domain.ErrPOAlreadyReceived, http.StatusConflict, "PO_ALREADY_RECEIVED"},
		{"einvoice exists", domain.ErrEInvoiceExists, http.StatusConflict, "EINVOICE_EXISTS"},
		{"lock held", domain.ErrLockHeld, http.StatusConflict, "OPERATION_IN_PROGRESS"},
		{"insufficient stock", domain.ErrInsufficientStock, http.StatusBadRequest, "INSUFFICIENT_STOCK"},
		{"filing period", domain.ErrInvalidFilingPeriod, http.StatusBadRequest, "INVALID_FILING_PERIOD"},
		{"credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"tenant inactive", domain.ErrTenantInactive, http.StatusForbidden, "TENANT_INACTIVE"},
		{"malformed number", domain.ErrMalformedDocumentNumber, http.StatusInternalServerError, "MALFORMED_DOCUMENT_NUMBER"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code, _ := handler.MapDomainError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestMapDomainError_KeepsWrappedDetailFor4xx(t *testing.T) {
	err := fmt.Errorf("%w: Gold Ring", domain.ErrInsufficientStock)

	_, _, msg := handler.MapDomainError(err)

	assert.Contains(t, msg, "Gold Ring")
}

func TestMapDomainError_HidesInternalDetail(t *testing.T) {
	_, _, msg := handler.MapDomainError(errors.New("pq: connection refused"))

	assert.Equal(t, "an internal error occurred", msg)
}
