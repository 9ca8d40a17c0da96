package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/csvexport"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/gstreport"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// GSTReportHandler serves GSTR-1, HSN, GSTR-3B and ITC views plus the GSTR-1 export.
type GSTReportHandler struct {
	reportService service.GSTReportService
	tenantService service.TenantService
}

// NewGSTReportHandler creates a new GSTReportHandler.
func NewGSTReportHandler(reportService service.GSTReportService, tenantService service.TenantService) *GSTReportHandler {
	return &GSTReportHandler{reportService: reportService, tenantService: tenantService}
}

func dateWindow(c *gin.Context) (from, to string, ok bool) {
	from, to = c.Query("from_date"), c.Query("to_date")
	if from == "" || to == "" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "from_date and to_date are required")
		return "", "", false
	}
	return from, to, true
}

// GSTR1 handles GET /api/v1/gst-reports/gstr1
// @Summary GSTR-1 outward supplies
// @Description Sales in the window split into B2B (customer has a GSTIN) and B2C
// @Tags gst-reports
// @Produce json
// @Param from_date query string true "YYYY-MM-DD"
// @Param to_date query string true "YYYY-MM-DD"
// @Success 200 {object} Response{data=gstreport.GSTR1} "GSTR-1"
// @Failure 400 {object} ErrorResponseBody "Invalid date range"
// @Security BearerAuth
// @Router /gst-reports/gstr1 [get]
func (h *GSTReportHandler) GSTR1(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	from, to, ok := dateWindow(c)
	if !ok {
		return
	}

	r, err := h.reportService.GSTR1(c.Request.Context(), tenantID, from, to)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, r)
}

// HSNSummary handles GET /api/v1/gst-reports/hsn-summary
// @Summary HSN-wise summary
// @Description Sale tax is imputed to HSN lines in proportion to their share of the subtotal
// @Tags gst-reports
// @Produce json
// @Param from_date query string true "YYYY-MM-DD"
// @Param to_date query string true "YYYY-MM-DD"
// @Success 200 {object} Response{data=gstreport.HSNSummary} "HSN summary"
// @Failure 400 {object} ErrorResponseBody "Invalid date range"
// @Security BearerAuth
// @Router /gst-reports/hsn-summary [get]
func (h *GSTReportHandler) HSNSummary(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	from, to, ok := dateWindow(c)
	if !ok {
		return
	}

	r, err := h.reportService.HSNSummary(c.Request.Context(), tenantID, from, to)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, r)
}

// GSTR3B handles GET /api/v1/gst-reports/gstr3b
// @Summary GSTR-3B summary
// @Description Output tax against input tax credit. Net amounts never go below zero.
// @Tags gst-reports
// @Produce json
// @Param from_date query string true "YYYY-MM-DD"
// @Param to_date query string true "YYYY-MM-DD"
// @Success 200 {object} Response{data=gstreport.GSTR3B} "GSTR-3B"
// @Failure 400 {object} ErrorResponseBody "Invalid date range"
// @Security BearerAuth
// @Router /gst-reports/gstr3b [get]
func (h *GSTReportHandler) GSTR3B(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	from, to, ok := dateWindow(c)
	if !ok {
		return
	}

	r, err := h.reportService.GSTR3B(c.Request.Context(), tenantID, from, to)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, r)
}

// ITCReconciliation handles GET /api/v1/gst-reports/itc-reconciliation
// @Summary ITC reconciliation view
// @Tags gst-reports
// @Produce json
// @Param from_date query string true "YYYY-MM-DD"
// @Param to_date query string true "YYYY-MM-DD"
// @Success 200 {object} Response{data=gstreport.ITCReconciliation} "ITC view"
// @Failure 400 {object} ErrorResponseBody "Invalid date range"
// @Security BearerAuth
// @Router /gst-reports/itc-reconciliation [get]
func (h *GSTReportHandler) ITCReconciliation(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	from, to, ok := dateWindow(c)
	if !ok {
		return
	}

	r, err := h.reportService.ITCReconciliation(c.Request.Context(), tenantID, from, to)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, r)
}

// ExportGSTR1 handles GET /api/v1/gst-reports/gstr1/export
// @Summary Download GSTR-1
// @Description CSV (UTF-8 with BOM) or an XLSX workbook with B2B, B2C and HSN sheets
// @Tags gst-reports
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param from_date query string true "YYYY-MM-DD"
// @Param to_date query string true "YYYY-MM-DD"
// @Param format query string false "csv or xlsx" default(csv)
// @Success 200 {file} file "GSTR-1 file"
// @Failure 400 {object} ErrorResponseBody "Invalid date range or format"
// @Security BearerAuth
// @Router /gst-reports/gstr1/export [get]
func (h *GSTReportHandler) ExportGSTR1(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	from, to, ok := dateWindow(c)
	if !ok {
		return
	}
	format := strings.ToLower(c.DefaultQuery("format", "csv"))
	if format != "csv" && format != "xlsx" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "format must be csv or xlsx")
		return
	}

	ctx := c.Request.Context()
	r, err := h.reportService.GSTR1(ctx, tenantID, from, to)
	if err != nil {
		HandleError(c, err)
		return
	}

	var hsn *gstreport.HSNSummary
	if format == "xlsx" {
		if hsn, err = h.reportService.HSNSummary(ctx, tenantID, from, to); err != nil {
			HandleError(c, err)
			return
		}
	}

	business := ""
	if t, err := h.tenantService.GetByID(ctx, tenantID); err == nil {
		business = t.Name
	}
	filename := csvexport.BuildFilename(business, from, to, format)

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	if format == "xlsx" {
		c.Header("Content-Type", xlsxContentType)
		c.Status(http.StatusOK)
		if err := csvexport.WriteXLSX(c.Writer, r, hsn); err != nil {
			Logger.WithError(err).Error("gstr1 xlsx export")
		}
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)
	if err := csvexport.WriteCSV(c.Writer, r); err != nil {
		Logger.WithError(err).Error("gstr1 csv export")
	}
}
