package handler_test

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/csvexport"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/gstreport"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/handler"
	"github.com/cloudpospro-design/gold-jwellery-erp/mocks"
)

func newGSTReportHandler() (*handler.GSTReportHandler, *mocks.MockGSTReportService, *mocks.MockTenantService) {
	reports := new(mocks.MockGSTReportService)
	tenants := new(mocks.MockTenantService)
	return handler.NewGSTReportHandler(reports, tenants), reports, tenants
}

func exportReport() *gstreport.GSTR1 {
	return &gstreport.GSTR1{
		Period: gstreport.Period{From: "2025-01-01", To: "2025-01-31"},
		B2BInvoices: []gstreport.B2BInvoice{{
			InvoiceNumber: "INV-2025-00001", InvoiceDate: "2025-01-15", CustomerName: "Asha Traders",
			CustomerGSTIN: "27AAPFU0939F1ZV", CustomerState: "Maharashtra",
			InvoiceValue: 10300, TaxableValue: 10000, CGST: 150, SGST: 150, TotalTax: 300,
		}},
		B2CInvoices: []gstreport.B2CInvoice{},
	}
}

func TestGSTReportHandler_GSTR1_RequiresWindow(t *testing.T) {
	h, reports, _ := newGSTReportHandler()

	c, w := newContext(http.MethodGet, "/api/v1/gst-reports/gstr1?from_date=2025-01-01", nil)
	setAuthContext(c, uuid.New(), uuid.New(), "manager")

	h.GSTR1(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	reports.AssertNotCalled(t, "GSTR1", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGSTReportHandler_GSTR3B_InvalidRange(t *testing.T) {
	h, reports, _ := newGSTReportHandler()

	tenantID := uuid.New()
	reports.On("GSTR3B", mock.Anything, tenantID, "2025-02-01", "2025-01-01").Return(nil, domain.ErrInvalidDateRange)

	c, w := newContext(http.MethodGet, "/api/v1/gst-reports/gstr3b?from_date=2025-02-01&to_date=2025-01-01", nil)
	setAuthContext(c, tenantID, uuid.New(), "manager")

	h.GSTR3B(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_DATE_RANGE", decodeResponse(t, w).Error.Code)
}

func TestGSTReportHandler_ExportCSV(t *testing.T) {
	h, reports, tenants := newGSTReportHandler()

	tenantID := uuid.New()
	reports.On("GSTR1", mock.Anything, tenantID, "2025-01-01", "2025-01-31").Return(exportReport(), nil)
	tenants.On("GetByID", mock.Anything, tenantID).Return(&domain.Tenant{ID: tenantID, Name: "Lakshmi Jewellers"}, nil)

	c, w := newContext(http.MethodGet, "/api/v1/gst-reports/gstr1/export?from_date=2025-01-01&to_date=2025-01-31", nil)
	setAuthContext(c, tenantID, uuid.New(), "manager")

	h.ExportGSTR1(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "Lakshmi_Jewellers_GSTR1_2025-01-01_2025-01-31.csv")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), csvexport.BOM))
	assert.Contains(t, w.Body.String(), "INV-2025-00001")
	reports.AssertNotCalled(t, "HSNSummary", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGSTReportHandler_ExportXLSX(t *testing.T) {
	h, reports, tenants := newGSTReportHandler()

	tenantID := uuid.New()
	reports.On("GSTR1", mock.Anything, tenantID, "2025-01-01", "2025-01-31").Return(exportReport(), nil)
	reports.On("HSNSummary", mock.Anything, tenantID, "2025-01-01", "2025-01-31").Return(&gstreport.HSNSummary{
		Items: []gstreport.HSNItem{{HSNCode: "71131910", Description: "Gold Ring", UQC: "NOS", TotalQuantity: 1}},
	}, nil)
	tenants.On("GetByID", mock.Anything, tenantID).Return(nil, domain.ErrNotFound)

	c, w := newContext(http.MethodGet, "/api/v1/gst-reports/gstr1/export?from_date=2025-01-01&to_date=2025-01-31&format=XLSX", nil)
	setAuthContext(c, tenantID, uuid.New(), "manager")

	h.ExportGSTR1(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "business_GSTR1_")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.Equal(t, []string{"B2B", "B2C", "HSN"}, f.GetSheetList())
}

func TestGSTReportHandler_ExportBadFormat(t *testing.T) {
	h, _, _ := newGSTReportHandler()

	c, w := newContext(http.MethodGet, "/api/v1/gst-reports/gstr1/export?from_date=2025-01-01&to_date=2025-01-31&format=pdf", nil)
	setAuthContext(c, uuid.New(), uuid.New(), "manager")

	h.ExportGSTR1(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
