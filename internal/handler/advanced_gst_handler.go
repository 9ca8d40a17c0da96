package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/service"
)

// Upper bound on what is read into memory. The configured import limit is
// enforced by the service and is expected to be below this.
const maxImportRead = 64 << 20

// AdvancedGSTHandler handles return imports, reconciliation and e-invoicing.
type AdvancedGSTHandler struct {
	gstService service.AdvancedGSTService
}

// NewAdvancedGSTHandler creates a new AdvancedGSTHandler.
func NewAdvancedGSTHandler(gstService service.AdvancedGSTService) *AdvancedGSTHandler {
	return &AdvancedGSTHandler{gstService: gstService}
}

// ImportGSTR2A handles POST /api/v1/advanced-gst/gstr2a/import
// @Summary Import a GSTR-2A file
// @Description Archives the portal JSON and stores its B2B invoices for the filing period
// @Tags advanced-gst
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "GSTR-2A JSON"
// @Param filing_period formData string true "MMYYYY"
// @Success 201 {object} Response{data=service.ImportResult} "Imported"
// @Failure 400 {object} ErrorResponseBody "Invalid file or filing period"
// @Security BearerAuth
// @Router /advanced-gst/gstr2a/import [post]
func (h *AdvancedGSTHandler) ImportGSTR2A(c *gin.Context) {
	h.importReturn(c, domain.ReturnGSTR2A)
}

// ImportGSTR2B handles POST /api/v1/advanced-gst/gstr2b/import
// @Summary Import a GSTR-2B file
// @Description Archives the portal JSON and stores its invoices with available ITC
// @Tags advanced-gst
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "GSTR-2B JSON"
// @Param filing_period formData string true "MMYYYY"
// @Success 201 {object} Response{data=service.ImportResult} "Imported"
// @Failure 400 {object} ErrorResponseBody "Invalid file or filing period"
// @Security BearerAuth
// @Router /advanced-gst/gstr2b/import [post]
func (h *AdvancedGSTHandler) ImportGSTR2B(c *gin.Context) {
	h.importReturn(c, domain.ReturnGSTR2B)
}

func (h *AdvancedGSTHandler) importReturn(c *gin.Context, kind domain.ReturnKind) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, maxImportRead+1))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_IMPORT_FILE", "could not read file")
		return
	}

	res, err := h.gstService.Import(c.Request.Context(), service.ImportReturnInput{
		TenantID:     tenantID,
		UserID:       userID,
		Kind:         kind,
		FilingPeriod: c.PostForm("filing_period"),
		FileName:     header.Filename,
		Data:         data,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, res)
}

// ListGSTR2A handles GET /api/v1/advanced-gst/gstr2a/:period
// @Summary List imported GSTR-2A records
// @Tags advanced-gst
// @Produce json
// @Param period path string true "MMYYYY"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.GSTR2ARecord,meta=PagMeta} "Records"
// @Failure 400 {object} ErrorResponseBody "Invalid filing period"
// @Security BearerAuth
// @Router /advanced-gst/gstr2a/{period} [get]
func (h *AdvancedGSTHandler) ListGSTR2A(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	offset, limit := pagination(c)

	recs, total, err := h.gstService.ListGSTR2A(c.Request.Context(), tenantID, c.Param("period"), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, recs, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// ListGSTR2B handles GET /api/v1/advanced-gst/gstr2b/:period
// @Summary List imported GSTR-2B records
// @Tags advanced-gst
// @Produce json
// @Param period path string true "MMYYYY"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.GSTR2BRecord,meta=PagMeta} "Records"
// @Failure 400 {object} ErrorResponseBody "Invalid filing period"
// @Security BearerAuth
// @Router /advanced-gst/gstr2b/{period} [get]
func (h *AdvancedGSTHandler) ListGSTR2B(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	offset, limit := pagination(c)

	recs, total, err := h.gstService.ListGSTR2B(c.Request.Context(), tenantID, c.Param("period"), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, recs, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// ListImports handles GET /api/v1/advanced-gst/imports/:period
// @Summary Archived return files of a period
// @Tags advanced-gst
// @Produce json
// @Param period path string true "MMYYYY"
// @Success 200 {object} Response{data=[]domain.GSTReturnImport} "Imports"
// @Security BearerAuth
// @Router /advanced-gst/imports/{period} [get]
func (h *AdvancedGSTHandler) ListImports(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	imps, err := h.gstService.ListImports(c.Request.Context(), tenantID, c.Param("period"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, imps)
}

// Reconcile handles GET /api/v1/advanced-gst/reconciliation/:period
// @Summary Reconcile GSTR-2A against purchases
// @Description Matches supplier invoices to purchase orders within one rupee and flags matched records
// @Tags advanced-gst
// @Produce json
// @Param period path string true "MMYYYY"
// @Success 200 {object} Response{data=reconcile.Report} "Report"
// @Failure 400 {object} ErrorResponseBody "Invalid filing period"
// @Failure 409 {object} ErrorResponseBody "Reconciliation already running"
// @Security BearerAuth
// @Router /advanced-gst/reconciliation/{period} [get]
func (h *AdvancedGSTHandler) Reconcile(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	rep, err := h.gstService.Reconcile(c.Request.Context(), tenantID, c.Param("period"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rep)
}

// GenerateEInvoice handles POST /api/v1/advanced-gst/einvoice/generate
// @Summary Generate an e-invoice
// @Description Simulated IRN registration for a sale
// @Tags advanced-gst
// @Accept json
// @Produce json
// @Param request body service.GenerateEInvoiceInput true "Sale"
// @Success 201 {object} Response{data=domain.EInvoice} "E-invoice"
// @Failure 404 {object} ErrorResponseBody "Sale not found"
// @Failure 409 {object} ErrorResponseBody "E-invoice already exists"
// @Security BearerAuth
// @Router /advanced-gst/einvoice/generate [post]
func (h *AdvancedGSTHandler) GenerateEInvoice(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.GenerateEInvoiceInput
	if !bindJSON(c, &input) {
		return
	}

	e, err := h.gstService.GenerateEInvoice(c.Request.Context(), tenantID, userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, e)
}

// CancelEInvoice handles POST /api/v1/advanced-gst/einvoice/:id/cancel
// @Summary Cancel an e-invoice
// @Tags advanced-gst
// @Accept json
// @Produce json
// @Param id path string true "E-invoice ID (UUID)"
// @Param request body service.CancelEInvoiceInput true "Reason (at least 10 characters)"
// @Success 200 {object} Response{data=domain.EInvoice} "Cancelled"
// @Failure 400 {object} ErrorResponseBody "Reason too short"
// @Failure 409 {object} ErrorResponseBody "Already cancelled"
// @Security BearerAuth
// @Router /advanced-gst/einvoice/{id}/cancel [post]
func (h *AdvancedGSTHandler) CancelEInvoice(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var input service.CancelEInvoiceInput
	if !bindJSON(c, &input) {
		return
	}

	e, err := h.gstService.CancelEInvoice(c.Request.Context(), tenantID, id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, e)
}

// GetEInvoiceBySale handles GET /api/v1/advanced-gst/einvoice/sale/:sale_id
// @Summary E-invoice of a sale
// @Tags advanced-gst
// @Produce json
// @Param sale_id path string true "Sale ID (UUID)"
// @Success 200 {object} Response{data=domain.EInvoice} "E-invoice"
// @Failure 404 {object} ErrorResponseBody "No e-invoice for sale"
// @Security BearerAuth
// @Router /advanced-gst/einvoice/sale/{sale_id} [get]
func (h *AdvancedGSTHandler) GetEInvoiceBySale(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	saleID, ok := parseUUIDParam(c, "sale_id")
	if !ok {
		return
	}

	e, err := h.gstService.GetEInvoiceBySale(c.Request.Context(), tenantID, saleID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, e)
}
