package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/service"
)

// BarcodeHandler handles product label codes and scans.
type BarcodeHandler struct {
	barcodeService service.BarcodeService
}

// NewBarcodeHandler creates a new BarcodeHandler.
func NewBarcodeHandler(barcodeService service.BarcodeService) *BarcodeHandler {
	return &BarcodeHandler{barcodeService: barcodeService}
}

// List handles GET /api/v1/barcodes
// @Summary List barcodes
// @Tags barcodes
// @Produce json
// @Param barcode_type query string false "barcode or qr_code"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination" default(20)
// @Success 200 {object} Response{data=[]domain.Barcode} "Barcodes, newest first"
// @Failure 400 {object} ErrorResponseBody "Unknown barcode type"
// @Security BearerAuth
// @Router /barcodes [get]
func (h *BarcodeHandler) List(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	offset, limit := pagination(c)

	barcodes, total, err := h.barcodeService.List(c.Request.Context(), tenantID,
		domain.BarcodeType(c.Query("barcode_type")), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, barcodes, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByProduct handles GET /api/v1/barcodes/product/:id
// @Summary Barcode of a product
// @Tags barcodes
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} Response{data=domain.Barcode} "Barcode"
// @Failure 404 {object} ErrorResponseBody "Product has no barcode"
// @Security BearerAuth
// @Router /barcodes/product/{id} [get]
func (h *BarcodeHandler) GetByProduct(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	productID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	b, err := h.barcodeService.GetByProduct(c.Request.Context(), tenantID, productID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, b)
}

// Generate handles POST /api/v1/barcodes/generate
// @Summary Assign a product its barcode
// @Description Uses custom_code when given, otherwise GLD followed by the date as YYMMDD and six random digits
// @Tags barcodes
// @Accept json
// @Produce json
// @Param request body service.GenerateBarcodeInput true "Product and symbology"
// @Success 201 {object} Response{data=domain.Barcode} "Barcode created"
// @Failure 404 {object} ErrorResponseBody "Product not found"
// @Failure 409 {object} ErrorResponseBody "Product already has a barcode or the code is taken"
// @Security BearerAuth
// @Router /barcodes/generate [post]
func (h *BarcodeHandler) Generate(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.GenerateBarcodeInput
	if !bindJSON(c, &input) {
		return
	}

	b, err := h.barcodeService.Generate(c.Request.Context(), tenantID, userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, b)
}

// Regenerate handles POST /api/v1/barcodes/regenerate/:id
// @Summary Replace a product's barcode with a fresh generated one
// @Tags barcodes
// @Produce json
// @Param id path string true "Product ID"
// @Param barcode_type query string false "barcode or qr_code" default(barcode)
// @Success 200 {object} Response{data=domain.Barcode} "New barcode"
// @Failure 404 {object} ErrorResponseBody "Product not found"
// @Security BearerAuth
// @Router /barcodes/regenerate/{id} [post]
func (h *BarcodeHandler) Regenerate(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	productID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	b, err := h.barcodeService.Regenerate(c.Request.Context(), tenantID, userID, productID,
		domain.BarcodeType(c.Query("barcode_type")))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, b)
}

// GenerateBulk handles POST /api/v1/barcodes/generate-bulk
// @Summary Generate barcodes for many products
// @Description Missing products and products that already have a barcode are skipped
// @Tags barcodes
// @Accept json
// @Produce json
// @Param request body service.BulkBarcodeInput true "Products"
// @Success 200 {object} Response{data=service.BulkBarcodeResult} "Generated and skipped products"
// @Security BearerAuth
// @Router /barcodes/generate-bulk [post]
func (h *BarcodeHandler) GenerateBulk(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.BulkBarcodeInput
	if !bindJSON(c, &input) {
		return
	}

	res, err := h.barcodeService.GenerateBulk(c.Request.Context(), tenantID, userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, res)
}

// Scan handles POST /api/v1/barcodes/scan
// @Summary Look up a scanned code
// @Description Product details, stock position and a live price at the latest gold rate. An unknown code returns found=false.
// @Tags barcodes
// @Produce json
// @Param barcode_value query string true "Scanned code"
// @Success 200 {object} Response{data=service.ScanResult} "Scan result"
// @Failure 400 {object} ErrorResponseBody "Missing code"
// @Security BearerAuth
// @Router /barcodes/scan [post]
func (h *BarcodeHandler) Scan(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	res, err := h.barcodeService.Scan(c.Request.Context(), tenantID, c.Query("barcode_value"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, res)
}
